package outline

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrInvalidKeywords = errors.New("outline: invalid keyword table")

// Keyword is one task state. Done keywords mark an outline complete.
type Keyword struct {
	Name string `yaml:"name"`
	Done bool   `yaml:"done"`
}

// KeywordTable is ordered; heading prefixes are tried in this order.
type KeywordTable []Keyword

// DefaultKeywords returns the built-in task states.
func DefaultKeywords() KeywordTable {
	return KeywordTable{
		{Name: "TODO"},
		{Name: "ACTIVE"},
		{Name: "WAITING"},
		{Name: "DONE", Done: true},
		{Name: "WONT", Done: true},
	}
}

// MatchPrefix returns the first keyword that heading starts with, followed by
// a single space, and the heading with that prefix removed.
func (t KeywordTable) MatchPrefix(heading string) (Keyword, string, bool) {
	for _, kw := range t {
		prefix := kw.Name + " "
		if strings.HasPrefix(heading, prefix) {
			return kw, heading[len(prefix):], true
		}
	}
	return Keyword{}, heading, false
}

func (t KeywordTable) IsDone(name string) bool {
	for _, kw := range t {
		if kw.Name == name {
			return kw.Done
		}
	}
	return false
}

type keywordFile struct {
	Keywords []Keyword `yaml:"keywords"`
}

// LoadKeywordTable reads a YAML keyword table:
//
//	keywords:
//	  - name: TODO
//	  - name: DONE
//	    done: true
//
// An empty path yields DefaultKeywords.
func LoadKeywordTable(path string) (KeywordTable, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultKeywords(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("outline: read keywords %s: %w", path, err)
	}
	var parsed keywordFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("outline: parse keywords %s: %w", path, err)
	}
	table := KeywordTable(parsed.Keywords)
	if err := table.validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidKeywords, path, err)
	}
	return table, nil
}

func (t KeywordTable) validate() error {
	if len(t) == 0 {
		return errors.New("no keywords")
	}
	seen := make(map[string]bool, len(t))
	for i, kw := range t {
		if kw.Name == "" || strings.ContainsAny(kw.Name, " \t\r\n") {
			return fmt.Errorf("keywords[%d]: name must be a single word", i)
		}
		if seen[kw.Name] {
			return fmt.Errorf("keywords[%d]: duplicate %q", i, kw.Name)
		}
		seen[kw.Name] = true
	}
	return nil
}
