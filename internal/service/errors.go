package service

import "errors"

var (
	ErrInvalid   = errors.New("invalid")
	ErrParse     = errors.New("org parse failed")
	ErrTransform = errors.New("outline transform failed")
)
