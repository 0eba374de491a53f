// Package outline turns a parsed org tree into OPML outlines.
//
// Each retained org node becomes one outline. The heading keyword and the
// explicit TODO field both set task flags; a body made only of "- " bullets
// becomes nested child outlines, any other body is kept verbatim as _note;
// tags and priority are appended to the text as "#" suffixes.
package outline

import (
	"fmt"

	"org2opml/internal/opml"
	"org2opml/internal/org"
)

type Options struct {
	Keywords KeywordTable
	TagOrder TagOrder
}

type Transformer struct {
	keywords KeywordTable
	tagOrder TagOrder
}

// New returns a Transformer. Zero options fall back to DefaultKeywords and
// insertion-ordered tags.
func New(opts Options) *Transformer {
	keywords := opts.Keywords
	if len(keywords) == 0 {
		keywords = DefaultKeywords()
	}
	tagOrder := opts.TagOrder
	if tagOrder == "" {
		tagOrder = TagOrderInsertion
	}
	return &Transformer{keywords: keywords, tagOrder: tagOrder}
}

// Document builds the OPML document for an org root. Top-level outlines keep
// document order.
func (t *Transformer) Document(root *org.Node) (opml.Document, error) {
	doc := opml.NewDocument()
	if root == nil {
		return doc, nil
	}
	for _, child := range root.Children {
		o, err := t.Node(child)
		if err != nil {
			return opml.Document{}, err
		}
		if o != nil {
			doc.Add(o)
		}
	}
	return doc, nil
}

// Node converts n and its subtree. It returns nil when n has neither a heading
// nor children.
func (t *Transformer) Node(n *org.Node) (*opml.Outline, error) {
	if n.Heading == "" && len(n.Children) == 0 {
		return nil, nil
	}

	o := &opml.Outline{}
	t.applyHeading(o, n.Heading)
	t.applyTodo(o, n)
	if err := applyBody(o, n.Body); err != nil {
		return nil, fmt.Errorf("outline: body of %q: %w", n.Heading, err)
	}
	t.appendTags(o, n.Tags)
	applyPriority(o, n.Priority)

	for _, child := range n.Children {
		c, err := t.Node(child)
		if err != nil {
			return nil, err
		}
		if c != nil {
			o.Add(c)
		}
	}
	return o, nil
}

func (t *Transformer) applyHeading(o *opml.Outline, heading string) {
	if heading == "" {
		return
	}
	kw, rest, ok := t.keywords.MatchPrefix(heading)
	if ok {
		o.Checkbox = true
		if kw.Done {
			o.Complete = true
		}
	}
	o.Text = rest
}

// applyTodo only ever raises flags, so it composes with applyHeading in any order.
func (t *Transformer) applyTodo(o *opml.Outline, n *org.Node) {
	if n.Todo == "" {
		return
	}
	o.Checkbox = true
	if n.Done || t.keywords.IsDone(n.Todo) {
		o.Complete = true
	}
}

func (t *Transformer) appendTags(o *opml.Outline, tags []string) {
	text := o.Text
	for _, tag := range t.tagOrder.apply(tags) {
		text += " #" + tag
	}
	if text != "" {
		o.Text = text
	}
}

func applyPriority(o *opml.Outline, priority string) {
	if priority == "" {
		return
	}
	o.Text += " #" + priority
}
