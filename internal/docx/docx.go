// Package docx writes minimal WordprocessingML (.docx) files. A .docx is a
// zip container with a fixed set of XML parts; this writer emits just the
// parts Word and LibreOffice need to open a text document: content types,
// the package relationships and the document body itself.
package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

const (
	contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

	packageRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

	documentRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
</Relationships>`

	documentOpen = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`

	documentClose = `<w:sectPr><w:pgSz w:w="11906" w:h="16838"/></w:sectPr></w:body></w:document>`
)

type paragraph struct {
	text     string
	bold     bool
	centered bool
	size     int // half-points, 0 for default
}

// Builder accumulates paragraphs and produces the finished document bytes
type Builder struct {
	paragraphs []paragraph
}

// NewBuilder creates an empty document builder
func NewBuilder() *Builder {
	return &Builder{}
}

// AddHeading appends a bold, centered title line
func (b *Builder) AddHeading(text string) {
	b.paragraphs = append(b.paragraphs, paragraph{text: text, bold: true, centered: true, size: 32})
}

// AddParagraph appends a body paragraph. Newlines inside the text become
// line breaks within the paragraph.
func (b *Builder) AddParagraph(text string) {
	b.paragraphs = append(b.paragraphs, paragraph{text: text})
}

// AddBoldParagraph appends a bold body paragraph
func (b *Builder) AddBoldParagraph(text string) {
	b.paragraphs = append(b.paragraphs, paragraph{text: text, bold: true})
}

// AddCenteredParagraph appends a centered body paragraph
func (b *Builder) AddCenteredParagraph(text string) {
	b.paragraphs = append(b.paragraphs, paragraph{text: text, centered: true})
}

// AddEmptyLine appends an empty paragraph
func (b *Builder) AddEmptyLine() {
	b.paragraphs = append(b.paragraphs, paragraph{})
}

// ProduceBytes renders the document into a finished .docx byte slice
func (b *Builder) ProduceBytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := b.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteTo writes the finished .docx container to w
func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	counter := &countingWriter{w: w}
	zw := zip.NewWriter(counter)

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", packageRelsXML},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/document.xml", b.documentXML()},
	}

	for _, part := range parts {
		f, err := zw.Create(part.name)
		if err != nil {
			return counter.n, fmt.Errorf("failed to create part %s: %w", part.name, err)
		}
		if _, err := f.Write([]byte(part.content)); err != nil {
			return counter.n, fmt.Errorf("failed to write part %s: %w", part.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return counter.n, fmt.Errorf("failed to finalize document: %w", err)
	}

	return counter.n, nil
}

func (b *Builder) documentXML() string {
	var sb strings.Builder
	sb.WriteString(documentOpen)

	for _, p := range b.paragraphs {
		sb.WriteString("<w:p>")

		if p.centered || p.bold || p.size > 0 {
			sb.WriteString("<w:pPr>")
			if p.centered {
				sb.WriteString(`<w:jc w:val="center"/>`)
			}
			sb.WriteString("</w:pPr>")
		}

		lines := strings.Split(p.text, "\n")
		for i, line := range lines {
			if i > 0 {
				sb.WriteString("<w:r><w:br/></w:r>")
			}
			if line == "" {
				continue
			}
			sb.WriteString("<w:r>")
			if p.bold || p.size > 0 {
				sb.WriteString("<w:rPr>")
				if p.bold {
					sb.WriteString("<w:b/>")
				}
				if p.size > 0 {
					fmt.Fprintf(&sb, `<w:sz w:val="%d"/>`, p.size)
				}
				sb.WriteString("</w:rPr>")
			}
			sb.WriteString(`<w:t xml:space="preserve">`)
			sb.WriteString(escape(line))
			sb.WriteString("</w:t></w:r>")
		}

		sb.WriteString("</w:p>")
	}

	sb.WriteString(documentClose)
	return sb.String()
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

func escape(s string) string {
	var buf bytes.Buffer
	// EscapeText only fails on a failing writer; bytes.Buffer never does
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
