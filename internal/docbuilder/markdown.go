package docbuilder

import (
	"fmt"
	"os"
	"strings"
)

// MarkdownBuilder renders GitHub-flavored Markdown.
type MarkdownBuilder struct {
	out     strings.Builder
	columns []string
	rows    [][]string
}

// NewMarkdownBuilder returns an empty Markdown document.
func NewMarkdownBuilder() *MarkdownBuilder {
	return &MarkdownBuilder{}
}

func (b *MarkdownBuilder) Heading(level int, text string) {
	b.out.WriteString(fmt.Sprintf("\n%s %s\n\n", strings.Repeat("#", level), text))
}

func (b *MarkdownBuilder) Paragraph(text string) {
	b.out.WriteString(text + "\n\n")
}

// SmallParagraph renders as a fenced block so long license texts keep
// their line structure.
func (b *MarkdownBuilder) SmallParagraph(text string) {
	b.out.WriteString("```\n" + strings.TrimRight(text, "\n") + "\n```\n\n")
}

func (b *MarkdownBuilder) CreateTable(columns []string, widths []int) {
	b.columns = columns
	b.rows = nil
}

func (b *MarkdownBuilder) AddRow(cells []string) {
	b.rows = append(b.rows, cells)
}

func (b *MarkdownBuilder) ShowTable(widths []int) {
	b.out.WriteString("| " + strings.Join(b.columns, " | ") + " |\n")
	sep := make([]string, len(b.columns))
	for i := range sep {
		sep[i] = "---"
	}
	b.out.WriteString("| " + strings.Join(sep, " | ") + " |\n")
	for _, row := range b.rows {
		escaped := make([]string, len(row))
		for i, c := range row {
			escaped[i] = strings.ReplaceAll(c, "|", "\\|")
		}
		b.out.WriteString("| " + strings.Join(escaped, " | ") + " |\n")
	}
	b.out.WriteString("\n")
	b.columns, b.rows = nil, nil
}

func (b *MarkdownBuilder) Publish(dest string) error {
	if dest == "" {
		return fmt.Errorf("markdown output requires a destination file")
	}
	return os.WriteFile(dest, []byte(b.out.String()), 0o644)
}
