package service

import (
	"context"
	"fmt"
	"os"
	"strings"

	"org2opml/internal/config"
	"org2opml/internal/opml"
	"org2opml/internal/org"
	"org2opml/internal/outline"
	"org2opml/pkg/logger"
)

type OrgLoader interface {
	Load(ctx context.Context, path string) (*org.Node, error)
}

type ConvertService interface {
	Convert(ctx context.Context, inputPath string) (ConvertResult, error)
}

type ConvertResult struct {
	InputPath  string
	OutputPath string
	Outlines   int
}

type fileLoader struct{}

// NewFileLoader reads org files from disk.
func NewFileLoader() OrgLoader {
	return fileLoader{}
}

func (fileLoader) Load(ctx context.Context, path string) (*org.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return org.Load(path)
}

type convertService struct {
	loader      OrgLoader
	transformer *outline.Transformer
}

func NewConvertService(loader OrgLoader, transformer *outline.Transformer) ConvertService {
	if loader == nil {
		loader = NewFileLoader()
	}
	if transformer == nil {
		transformer = outline.New(outline.Options{})
	}
	return &convertService{loader: loader, transformer: transformer}
}

// Convert writes inputPath + ".opml". Nothing is written unless the whole
// document was built and encoded.
func (s *convertService) Convert(ctx context.Context, inputPath string) (ConvertResult, error) {
	if strings.TrimSpace(inputPath) == "" {
		return ConvertResult{}, ErrInvalid
	}

	root, err := s.loader.Load(ctx, inputPath)
	if err != nil {
		logger.Error("load org file", "module", "service", "action", "load", "resource", "document", "result", "failed", "input", inputPath, "error", err)
		return ConvertResult{}, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if root == nil {
		root = &org.Node{}
	}
	logger.Debug("org file loaded", "module", "service", "action", "load", "resource", "document", "result", "ok", "input", inputPath, "top_level", len(root.Children))

	doc, err := s.transformer.Document(root)
	if err != nil {
		logger.Error("transform outline", "module", "service", "action", "transform", "resource", "document", "result", "failed", "input", inputPath, "error", err)
		return ConvertResult{}, fmt.Errorf("%w: %w", ErrTransform, err)
	}

	data, err := opml.Encode(doc)
	if err != nil {
		return ConvertResult{}, fmt.Errorf("encode opml: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return ConvertResult{}, err
	}

	outputPath := config.OutputPath(inputPath)
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		logger.Error("write opml", "module", "service", "action", "write", "resource", "document", "result", "failed", "output", outputPath, "error", err)
		return ConvertResult{}, fmt.Errorf("write %s: %w", outputPath, err)
	}

	result := ConvertResult{
		InputPath:  inputPath,
		OutputPath: outputPath,
		Outlines:   doc.Count(),
	}
	logger.Info("conversion completed", "module", "service", "action", "convert", "resource", "document", "result", "ok", "input", inputPath, "output", outputPath, "outlines", result.Outlines)
	return result, nil
}
