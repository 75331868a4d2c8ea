package docbuilder

import (
	"fmt"
	"os"
	"strings"
)

// ConsoleBuilder renders plain text suitable for a terminal.
type ConsoleBuilder struct {
	out     strings.Builder
	columns []string
	rows    [][]string
}

// NewConsoleBuilder returns an empty console document.
func NewConsoleBuilder() *ConsoleBuilder {
	return &ConsoleBuilder{}
}

func (b *ConsoleBuilder) Heading(level int, text string) {
	underline := "="
	if level > 1 {
		underline = "-"
	}
	b.out.WriteString("\n" + text + "\n")
	b.out.WriteString(strings.Repeat(underline, len(text)) + "\n\n")
}

func (b *ConsoleBuilder) Paragraph(text string) {
	b.out.WriteString(text + "\n\n")
}

func (b *ConsoleBuilder) SmallParagraph(text string) {
	b.Paragraph(text)
}

func (b *ConsoleBuilder) CreateTable(columns []string, widths []int) {
	b.columns = columns
	b.rows = nil
}

func (b *ConsoleBuilder) AddRow(cells []string) {
	b.rows = append(b.rows, cells)
}

func (b *ConsoleBuilder) ShowTable(widths []int) {
	cellWidths := make([]int, len(b.columns))
	for i, c := range b.columns {
		cellWidths[i] = len(c)
	}
	for _, row := range b.rows {
		for i, cell := range row {
			if i < len(cellWidths) && len(cell) > cellWidths[i] {
				cellWidths[i] = len(cell)
			}
		}
	}

	writeRow := func(cells []string) {
		for i, cell := range cells {
			w := 0
			if i < len(cellWidths) {
				w = cellWidths[i]
			}
			b.out.WriteString(fmt.Sprintf("%-*s  ", w, cell))
		}
		b.out.WriteString("\n")
	}

	writeRow(b.columns)
	sep := make([]string, len(b.columns))
	for i := range sep {
		sep[i] = strings.Repeat("-", cellWidths[i])
	}
	writeRow(sep)
	for _, row := range b.rows {
		writeRow(row)
	}
	b.out.WriteString("\n")
	b.columns, b.rows = nil, nil
}

// Publish writes to dest, or to stdout when dest is empty.
func (b *ConsoleBuilder) Publish(dest string) error {
	if dest == "" {
		_, err := fmt.Fprint(os.Stdout, b.out.String())
		return err
	}
	return os.WriteFile(dest, []byte(b.out.String()), 0o644)
}
