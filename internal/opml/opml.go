package opml

import (
	"bytes"
	"encoding/xml"
	"io"
)

const Version = "2.0"

type Document struct {
	XMLName xml.Name `xml:"opml"`
	Version string   `xml:"version,attr"`
	Head    Head     `xml:"head"`
	Body    Body     `xml:"body"`
}

// Head is always written empty.
type Head struct{}

type Body struct {
	Outlines []*Outline `xml:"outline"`
}

// Outline is one <outline> element. Checkbox and Complete are written as "true"
// and left out entirely when false, as is an empty note.
type Outline struct {
	Text     string     `xml:"text,attr,omitempty"`
	Checkbox bool       `xml:"checkbox,attr,omitempty"`
	Complete bool       `xml:"complete,attr,omitempty"`
	Note     string     `xml:"_note,attr,omitempty"`
	Outlines []*Outline `xml:"outline,omitempty"`
}

func NewDocument() Document {
	return Document{Version: Version}
}

func (d *Document) Add(o *Outline) {
	d.Body.Outlines = append(d.Body.Outlines, o)
}

func (o *Outline) Add(child *Outline) {
	o.Outlines = append(o.Outlines, child)
}

// Count returns the number of outlines in the subtree rooted at o, o included.
func (o *Outline) Count() int {
	n := 1
	for _, child := range o.Outlines {
		n += child.Count()
	}
	return n
}

// Count returns the number of outline elements in the whole body.
func (d Document) Count() int {
	n := 0
	for _, o := range d.Body.Outlines {
		n += o.Count()
	}
	return n
}

func Parse(r io.Reader) (Document, error) {
	decoder := xml.NewDecoder(r)
	var doc Document
	if err := decoder.Decode(&doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// Encode writes doc with an XML declaration and tab indentation.
func Encode(doc Document) ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteString(xml.Header)
	encoder := xml.NewEncoder(buf)
	encoder.Indent("", "\t")
	if err := encoder.Encode(doc); err != nil {
		return nil, err
	}
	if err := encoder.Flush(); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
