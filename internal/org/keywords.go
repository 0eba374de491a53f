package org

import "strings"

// todoKeywords maps a TODO keyword to whether it marks the done state.
type todoKeywords map[string]bool

func defaultKeywords() todoKeywords {
	return todoKeywords{"TODO": false, "DONE": true}
}

// scanKeywords collects #+TODO, #+SEQ_TODO and #+TYP_TODO declarations. Any
// declaration replaces the default TODO | DONE pair; several lines accumulate.
func scanKeywords(lines []string) todoKeywords {
	var declared todoKeywords
	for _, line := range lines {
		m := settingPattern.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		if declared == nil {
			declared = todoKeywords{}
		}
		parseKeywordLine(m[2], declared)
	}
	if len(declared) == 0 {
		return defaultKeywords()
	}
	return declared
}

// parseKeywordLine reads "TODO NEXT(n) | DONE(d!) CANCELLED". Without a bar the
// last keyword is the done one.
func parseKeywordLine(value string, into todoKeywords) {
	active, done, hasBar := strings.Cut(value, "|")
	activeWords := keywordFields(active)
	doneWords := keywordFields(done)
	if !hasBar && len(activeWords) > 0 {
		doneWords = activeWords[len(activeWords)-1:]
		activeWords = activeWords[:len(activeWords)-1]
	}
	for _, word := range activeWords {
		into[word] = false
	}
	for _, word := range doneWords {
		into[word] = true
	}
}

func keywordFields(s string) []string {
	fields := strings.Fields(s)
	words := make([]string, 0, len(fields))
	for _, field := range fields {
		if i := strings.IndexByte(field, '('); i > 0 {
			field = field[:i]
		}
		words = append(words, field)
	}
	return words
}
