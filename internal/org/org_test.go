package org_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"org2opml/internal/org"
)

const sampleOrg = `#+TITLE: Sample

* TODO [#A] Write report :work:urgent:
  SCHEDULED: <2024-05-01 Wed>
  :PROPERTIES:
  :ID: 1234
  :END:
  Draft the quarterly report.
** DONE Collect numbers
- [X] sales
- [ ] marketing
* Plain heading
** Nested
*** Deeper
* :home:
`

func TestParse_Tree(t *testing.T) {
	root, err := org.Parse(strings.NewReader(sampleOrg))
	require.NoError(t, err)
	require.Equal(t, 0, root.Level)
	require.Len(t, root.Children, 3)

	report := root.Children[0]
	require.Equal(t, 1, report.Level)
	require.Equal(t, "Write report", report.Heading)
	require.Equal(t, "TODO", report.Todo)
	require.False(t, report.Done)
	require.Equal(t, "A", report.Priority)
	require.Equal(t, []string{"work", "urgent"}, report.Tags)
	require.Equal(t, "Draft the quarterly report.", report.Body)

	require.Len(t, report.Children, 1)
	collect := report.Children[0]
	require.Equal(t, "Collect numbers", collect.Heading)
	require.Equal(t, "DONE", collect.Todo)
	require.True(t, collect.Done)
	require.Equal(t, "- [X] sales\n- [ ] marketing", collect.Body)

	plain := root.Children[1]
	require.Equal(t, "Plain heading", plain.Heading)
	require.Empty(t, plain.Todo)
	require.Empty(t, plain.Priority)
	require.Empty(t, plain.Tags)
	require.Len(t, plain.Children, 1)
	require.Len(t, plain.Children[0].Children, 1)
	require.Equal(t, "Deeper", plain.Children[0].Children[0].Heading)

	tagOnly := root.Children[2]
	require.Empty(t, tagOnly.Heading)
	require.Equal(t, []string{"home"}, tagOnly.Tags)
}

func TestParse_LevelJumpAttachesToNearestShallower(t *testing.T) {
	root, err := org.Parse(strings.NewReader("* a\n*** c\n** b\n"))
	require.NoError(t, err)
	require.Len(t, root.Children, 1)

	a := root.Children[0]
	require.Len(t, a.Children, 2)
	require.Equal(t, "c", a.Children[0].Heading)
	require.Equal(t, 3, a.Children[0].Level)
	require.Equal(t, "b", a.Children[1].Heading)
}

func TestParse_InBufferKeywords(t *testing.T) {
	input := `#+TODO: NEXT(n) WAITING | FINISHED CANCELLED
* NEXT call Bob
* CANCELLED trip
* TODO not a keyword here
`
	root, err := org.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, root.Children, 3)

	require.Equal(t, "NEXT", root.Children[0].Todo)
	require.False(t, root.Children[0].Done)
	require.Equal(t, "call Bob", root.Children[0].Heading)

	require.Equal(t, "CANCELLED", root.Children[1].Todo)
	require.True(t, root.Children[1].Done)

	require.Empty(t, root.Children[2].Todo)
	require.Equal(t, "TODO not a keyword here", root.Children[2].Heading)
}

func TestParse_KeywordLineWithoutBar(t *testing.T) {
	root, err := org.Parse(strings.NewReader("#+SEQ_TODO: OPEN CLOSED\n* CLOSED ticket\n"))
	require.NoError(t, err)
	require.Equal(t, "CLOSED", root.Children[0].Todo)
	require.True(t, root.Children[0].Done)
}

func TestParse_BodyEdgeCases(t *testing.T) {
	input := "* note\n\n  first\n\n  :not-a-drawer:\n  second\nCLOSED: [2024-01-01]\n\n"
	root, err := org.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, "first\n\n:not-a-drawer:\nsecond", root.Children[0].Body)
}

func TestParse_BodyDedent(t *testing.T) {
	root, err := org.Parse(strings.NewReader("* list\n  - a\n    - b\n  - c\n\t\n"))
	require.NoError(t, err)
	require.Equal(t, "- a\n  - b\n- c", root.Children[0].Body)
}

func TestParse_EmptyHeadlineAndStarsOnly(t *testing.T) {
	root, err := org.Parse(strings.NewReader("*\n** child\n*bold* text\n"))
	require.NoError(t, err)
	require.Len(t, root.Children, 1)
	require.Empty(t, root.Children[0].Heading)
	require.Len(t, root.Children[0].Children, 1)
	require.Equal(t, "*bold* text", root.Children[0].Children[0].Body)
}

func TestParse_DuplicateTags(t *testing.T) {
	root, err := org.Parse(strings.NewReader("* heading :b:a:b:\n"))
	require.NoError(t, err)
	require.Equal(t, []string{"b", "a"}, root.Children[0].Tags)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.org")
	require.NoError(t, os.WriteFile(path, []byte("* one\n* two\n"), 0o644))

	root, err := org.Load(path)
	require.NoError(t, err)
	require.Len(t, root.Children, 2)

	_, err = org.Load(filepath.Join(t.TempDir(), "missing.org"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
