package org

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

var (
	headlinePattern = regexp.MustCompile(`^(\*+)(?:[ \t]+(.*))?$`)
	priorityPattern = regexp.MustCompile(`^\[#([^\]\s])\](?:[ \t]+|$)`)
	tagsPattern     = regexp.MustCompile(`(?:^|[ \t]+)(:(?:[\p{L}\p{N}_@#%]+:)+)[ \t]*$`)
	settingPattern  = regexp.MustCompile(`^#\+(TODO|SEQ_TODO|TYP_TODO):(.*)$`)
	drawerPattern   = regexp.MustCompile(`^[ \t]*:([\w-]+):[ \t]*$`)
	drawerEnd       = regexp.MustCompile(`(?i)^[ \t]*:END:[ \t]*$`)
	planningPattern = regexp.MustCompile(`^[ \t]*(SCHEDULED|DEADLINE|CLOSED|CLOCK):`)
)

// Node is one headline of an org document. The document itself is the root
// node at level 0 with an empty heading.
type Node struct {
	Level    int
	Heading  string
	Todo     string
	Done     bool
	Priority string
	Tags     []string
	Body     string
	Children []*Node
}

// Load parses the org file at path.
func Load(path string) (*Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("org: open %s: %w", path, err)
	}
	defer f.Close()

	root, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("org: parse %s: %w", path, err)
	}
	return root, nil
}

// Parse reads a whole org document and returns its root node.
func Parse(r io.Reader) (*Node, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}

	keywords := scanKeywords(lines)

	root := &Node{}
	stack := []*Node{root}
	current := root
	var body []string

	flush := func() {
		current.Body = cleanBody(body)
		body = nil
	}

	for _, line := range lines {
		m := headlinePattern.FindStringSubmatch(line)
		if m == nil {
			body = append(body, line)
			continue
		}
		flush()

		node := parseHeadline(len(m[1]), m[2], keywords)
		for len(stack) > 1 && stack[len(stack)-1].Level >= node.Level {
			stack = stack[:len(stack)-1]
		}
		parent := stack[len(stack)-1]
		parent.Children = append(parent.Children, node)
		stack = append(stack, node)
		current = node
	}
	flush()

	return root, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("org: read: %w", err)
	}
	return lines, nil
}

func parseHeadline(level int, title string, keywords todoKeywords) *Node {
	node := &Node{Level: level}
	title = strings.TrimSpace(title)

	if word, rest, _ := strings.Cut(title, " "); word != "" {
		if done, ok := keywords[word]; ok {
			node.Todo = word
			node.Done = done
			title = strings.TrimLeft(rest, " \t")
		}
	}

	if m := priorityPattern.FindStringSubmatch(title); m != nil {
		node.Priority = m[1]
		title = title[len(m[0]):]
	}

	if loc := tagsPattern.FindStringSubmatchIndex(title); loc != nil {
		node.Tags = splitTags(title[loc[2]:loc[3]])
		title = title[:loc[0]]
	}

	node.Heading = strings.TrimSpace(title)
	return node
}

func splitTags(group string) []string {
	var tags []string
	seen := map[string]bool{}
	for _, tag := range strings.Split(strings.Trim(group, ":"), ":") {
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags
}

// cleanBody drops drawers and planning lines, trims surrounding blank lines
// and removes the indentation shared by all remaining lines. A drawer opener
// with no matching :END: is kept as text.
func cleanBody(lines []string) string {
	kept := make([]string, 0, len(lines))
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if drawerPattern.MatchString(line) && !drawerEnd.MatchString(line) {
			if end := drawerClose(lines, i+1); end >= 0 {
				i = end
				continue
			}
		}
		if planningPattern.MatchString(line) {
			continue
		}
		kept = append(kept, line)
	}

	start, end := 0, len(kept)
	for start < end && strings.TrimSpace(kept[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(kept[end-1]) == "" {
		end--
	}
	return strings.Join(dedent(kept[start:end]), "\n")
}

func dedent(lines []string) []string {
	common := ""
	first := true
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if first {
			common, first = indent, false
			continue
		}
		for !strings.HasPrefix(indent, common) {
			common = common[:len(common)-1]
		}
	}
	if common == "" {
		return lines
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = strings.TrimPrefix(line, common)
	}
	return out
}

func drawerClose(lines []string, from int) int {
	for j := from; j < len(lines); j++ {
		if drawerEnd.MatchString(lines[j]) {
			return j
		}
	}
	return -1
}
