package opml

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOPML_ParseAndEncode(t *testing.T) {
	opmlData := `<?xml version="1.0" encoding="UTF-8"?>
<opml version="2.0">
	<head></head>
	<body>
		<outline text="Project" checkbox="true">
			<outline text="Step" checkbox="true" complete="true" _note="first line&#xA;second line"/>
		</outline>
	</body>
</opml>`

	doc, err := Parse(strings.NewReader(opmlData))
	require.NoError(t, err)
	require.Equal(t, "2.0", doc.Version)
	require.Len(t, doc.Body.Outlines, 1)

	project := doc.Body.Outlines[0]
	require.Equal(t, "Project", project.Text)
	require.True(t, project.Checkbox)
	require.False(t, project.Complete)
	require.Len(t, project.Outlines, 1)

	step := project.Outlines[0]
	require.True(t, step.Complete)
	require.Equal(t, "first line\nsecond line", step.Note)

	encoded, err := Encode(doc)
	require.NoError(t, err)
	require.Contains(t, string(encoded), `complete="true"`)
	require.Contains(t, string(encoded), `_note="first line&#xA;second line"`)
}

func TestEncode_DeclarationAndTabs(t *testing.T) {
	doc := NewDocument()
	parent := &Outline{Text: "parent"}
	parent.Add(&Outline{Text: "child"})
	doc.Add(parent)

	encoded, err := Encode(doc)
	require.NoError(t, err)

	out := string(encoded)
	require.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`))
	require.Contains(t, out, `<opml version="2.0">`)
	require.Contains(t, out, "\n\t<head></head>\n")
	require.Contains(t, out, "\n\t\t<outline text=\"parent\">\n\t\t\t<outline text=\"child\"></outline>\n")
}

func TestEncode_OmitsFalseFlags(t *testing.T) {
	doc := NewDocument()
	doc.Add(&Outline{Text: "plain"})

	encoded, err := Encode(doc)
	require.NoError(t, err)
	require.NotContains(t, string(encoded), "checkbox")
	require.NotContains(t, string(encoded), "complete")
	require.NotContains(t, string(encoded), "_note")
}

func TestDocument_Count(t *testing.T) {
	doc := NewDocument()
	a := &Outline{Text: "a"}
	a.Add(&Outline{Text: "a1"})
	a.Outlines[0].Add(&Outline{Text: "a1x"})
	doc.Add(a)
	doc.Add(&Outline{Text: "b"})

	require.Equal(t, 4, doc.Count())
	require.Equal(t, 3, a.Count())

	roundTrip, err := Encode(doc)
	require.NoError(t, err)
	parsed, err := Parse(bytes.NewReader(roundTrip))
	require.NoError(t, err)
	require.Equal(t, 4, parsed.Count())
}
