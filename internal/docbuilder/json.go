package docbuilder

import (
	"fmt"

	"github.com/georgkoester/sbom2doc/internal/output"
)

// JSONBuilder captures the document as a structured node list.
type JSONBuilder struct {
	doc     jsonDocument
	columns []string
	rows    [][]string
}

type jsonDocument struct {
	Contents []jsonNode `json:"contents"`
}

type jsonNode struct {
	Type    string     `json:"type"`
	Level   int        `json:"level,omitempty"`
	Text    string     `json:"text,omitempty"`
	Columns []string   `json:"columns,omitempty"`
	Rows    [][]string `json:"rows,omitempty"`
}

// NewJSONBuilder returns an empty JSON document.
func NewJSONBuilder() *JSONBuilder {
	return &JSONBuilder{}
}

func (b *JSONBuilder) Heading(level int, text string) {
	b.doc.Contents = append(b.doc.Contents, jsonNode{Type: "heading", Level: level, Text: text})
}

func (b *JSONBuilder) Paragraph(text string) {
	b.doc.Contents = append(b.doc.Contents, jsonNode{Type: "paragraph", Text: text})
}

func (b *JSONBuilder) SmallParagraph(text string) {
	b.Paragraph(text)
}

func (b *JSONBuilder) CreateTable(columns []string, widths []int) {
	b.columns = columns
	b.rows = nil
}

func (b *JSONBuilder) AddRow(cells []string) {
	b.rows = append(b.rows, cells)
}

func (b *JSONBuilder) ShowTable(widths []int) {
	b.doc.Contents = append(b.doc.Contents, jsonNode{Type: "table", Columns: b.columns, Rows: b.rows})
	b.columns, b.rows = nil, nil
}

func (b *JSONBuilder) Publish(dest string) error {
	if dest == "" {
		return fmt.Errorf("json output requires a destination file")
	}
	return output.WriteJSON(dest, b.doc)
}
