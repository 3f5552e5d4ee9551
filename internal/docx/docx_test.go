package docx

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"
)

func readPart(t *testing.T, data []byte, name string) string {
	t.Helper()

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("output is not a valid zip: %v", err)
	}

	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", name, err)
		}
		defer rc.Close()
		content, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		return string(content)
	}

	t.Fatalf("part %s missing from container", name)
	return ""
}

func TestProduceBytesContainer(t *testing.T) {
	b := NewBuilder()
	b.AddHeading("ДОГОВОР ЗА ВРАБОТУВАЊЕ")
	b.AddEmptyLine()
	b.AddParagraph("Склучен помеѓу работодавачот и работникот.")

	data, err := b.ProduceBytes()
	if err != nil {
		t.Fatalf("ProduceBytes: %v", err)
	}

	for _, part := range []string{"[Content_Types].xml", "_rels/.rels", "word/document.xml", "word/_rels/document.xml.rels"} {
		readPart(t, data, part)
	}

	doc := readPart(t, data, "word/document.xml")
	if !strings.Contains(doc, "ДОГОВОР ЗА ВРАБОТУВАЊЕ") {
		t.Error("heading text missing from document body")
	}
	if !strings.Contains(doc, `<w:jc w:val="center"/>`) {
		t.Error("heading should be centered")
	}
}

func TestDocumentXMLEscapesText(t *testing.T) {
	b := NewBuilder()
	b.AddParagraph(`Плата < 50.000 & "додатоци"`)

	doc := b.documentXML()

	if strings.Contains(doc, `< 50`) {
		t.Error("raw < leaked into XML")
	}
	if !strings.Contains(doc, "&lt; 50.000 &amp;") {
		t.Errorf("expected escaped text, got: %s", doc)
	}
}

func TestNewlinesBecomeLineBreaks(t *testing.T) {
	b := NewBuilder()
	b.AddParagraph("прв ред\nвтор ред")

	doc := b.documentXML()

	if !strings.Contains(doc, "<w:br/>") {
		t.Error("newline should render as a line break")
	}
	if strings.Count(doc, "<w:p>") != 1 {
		t.Errorf("multi-line text should stay one paragraph, got %d", strings.Count(doc, "<w:p>"))
	}
}
