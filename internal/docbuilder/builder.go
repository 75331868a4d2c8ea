// Package docbuilder renders a document through a small capability set of
// heading/paragraph/table calls. Backends exist for console text, Markdown,
// JSON and PDF; the report emitter drives them without knowing the format.
package docbuilder

import "fmt"

// Builder is the document capability set the report emitter drives.
type Builder interface {
	Heading(level int, text string)
	Paragraph(text string)
	// SmallParagraph renders long body text (license texts, copyright
	// notices) in a compact style where the format supports one.
	SmallParagraph(text string)
	CreateTable(columns []string, widths []int)
	AddRow(cells []string)
	ShowTable(widths []int)
	// Publish writes the document to dest; the console backend treats an
	// empty dest as stdout.
	Publish(dest string) error
}

// New returns the builder for a format name. Supported formats are
// console, markdown, json and pdf.
func New(format string) (Builder, error) {
	switch format {
	case "console", "":
		return NewConsoleBuilder(), nil
	case "markdown":
		return NewMarkdownBuilder(), nil
	case "json":
		return NewJSONBuilder(), nil
	case "pdf":
		return NewPDFBuilder(), nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
}

// EnsureLen truncates text to at most max characters, keeping the first
// max-3 and appending "...". max below 3 is a programmer error.
func EnsureLen(text string, max int) string {
	if max < 3 {
		panic(fmt.Sprintf("EnsureLen: max must be at least 3, got %d", max))
	}
	if len(text) <= max {
		return text
	}
	return text[:max-3] + "..."
}
