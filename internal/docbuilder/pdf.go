package docbuilder

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// PDFBuilder renders an A4 PDF document.
type PDFBuilder struct {
	pdf     *gofpdf.Fpdf
	columns []string
	rows    [][]string
}

// NewPDFBuilder returns a PDF document with the first page opened.
func NewPDFBuilder() *PDFBuilder {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.AddPage()
	return &PDFBuilder{pdf: pdf}
}

func (b *PDFBuilder) Heading(level int, text string) {
	size := 16.0
	if level > 1 {
		size = 13.0
	}
	b.pdf.SetFont("Helvetica", "B", size)
	b.pdf.MultiCell(0, size/2, text, "", "L", false)
	b.pdf.Ln(2)
	b.pdf.SetFont("Helvetica", "", 10)
}

func (b *PDFBuilder) Paragraph(text string) {
	b.pdf.MultiCell(0, 5, text, "", "L", false)
	b.pdf.Ln(3)
}

func (b *PDFBuilder) SmallParagraph(text string) {
	b.pdf.SetFont("Helvetica", "", 8)
	b.pdf.MultiCell(0, 4, text, "", "L", false)
	b.pdf.Ln(3)
	b.pdf.SetFont("Helvetica", "", 10)
}

func (b *PDFBuilder) CreateTable(columns []string, widths []int) {
	b.columns = columns
	b.rows = nil
}

func (b *PDFBuilder) AddRow(cells []string) {
	b.rows = append(b.rows, cells)
}

func (b *PDFBuilder) ShowTable(widths []int) {
	colWidth := 180.0 / float64(len(b.columns))

	b.pdf.SetFont("Helvetica", "B", 10)
	for _, c := range b.columns {
		b.pdf.CellFormat(colWidth, 7, c, "1", 0, "L", false, 0, "")
	}
	b.pdf.Ln(-1)

	b.pdf.SetFont("Helvetica", "", 10)
	for _, row := range b.rows {
		for i := 0; i < len(b.columns); i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			b.pdf.CellFormat(colWidth, 6, cell, "1", 0, "L", false, 0, "")
		}
		b.pdf.Ln(-1)
	}
	b.pdf.Ln(4)
	b.columns, b.rows = nil, nil
}

func (b *PDFBuilder) Publish(dest string) error {
	if dest == "" {
		return fmt.Errorf("pdf output requires a destination file")
	}
	if err := b.pdf.OutputFileAndClose(dest); err != nil {
		return fmt.Errorf("writing PDF: %w", err)
	}
	return nil
}
