package outline

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"org2opml/internal/opml"
)

var ErrBodyListMismatch = errors.New("outline: body list line does not match bullet grammar")

// listSpace is the set matched by \s in Go regexps. Detection and parsing both
// trim with it so a line accepted as a bullet always parses.
const listSpace = "\t\n\f\r "

const (
	bulletPrefix   = "- "
	completeMarker = "[X] "
	indentWidth    = 2
)

var listItemPattern = regexp.MustCompile(`^(\s*)- (\[.\] )?(.*)$`)

func applyBody(o *opml.Outline, body string) error {
	if body == "" {
		return nil
	}
	if isBodyList(body) {
		return appendBodyList(o, body)
	}
	o.Note = body
	return nil
}

// isBodyList reports whether every non-blank line of body is a "- " bullet.
func isBodyList(body string) bool {
	content := strings.Trim(body, listSpace)
	for _, line := range strings.Split(content, "\n") {
		line = strings.Trim(line, listSpace)
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, bulletPrefix) {
			return false
		}
	}
	return true
}

// appendBodyList nests bullets under owner by indentation, two whitespace
// characters per level. parents[l] is the outline that receives the next item
// at level l. Entries are never cleared, so an item that skips a level lands
// on whatever was last open there; with no entry at all it falls back to the
// nearest shallower level.
func appendBodyList(owner *opml.Outline, body string) error {
	content := strings.Trim(body, listSpace)
	parents := map[int]*opml.Outline{0: owner}

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, listSpace)
		if line == "" {
			continue
		}
		m := listItemPattern.FindStringSubmatch(line)
		if m == nil {
			return fmt.Errorf("%w: %q", ErrBodyListMismatch, line)
		}
		level := len(m[1]) / indentWidth

		item := &opml.Outline{Text: m[3]}
		if m[2] != "" {
			item.Checkbox = true
			item.Complete = m[2] == completeMarker
		}
		parentAt(parents, level).Add(item)
		parents[level+1] = item
	}
	return nil
}

func parentAt(parents map[int]*opml.Outline, level int) *opml.Outline {
	for l := level; l > 0; l-- {
		if p, ok := parents[l]; ok {
			return p
		}
	}
	return parents[0]
}
