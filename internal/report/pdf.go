package report

import (
	"bytes"
	"fmt"
	"strconv"

	"catalog_service/internal/domain"

	"github.com/jung-kurt/gofpdf"
)

// Column widths in millimetres for the product table on an A4 portrait page.
var columns = []struct {
	header string
	width  float64
	align  string
}{
	{"ID", 20, "C"},
	{"Nom", 90, "L"},
	{"Prix", 35, "R"},
	{"Catégorie ID", 35, "C"},
}

type PDFExporter struct{}

func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

func (e *PDFExporter) ContentType() string {
	return "application/pdf"
}

// Export lays out one table row per product under the given title.
func (e *PDFExporter) Export(title string, products []domain.Product) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(title, true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, tr(title), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Arial", "B", 12)
	for i, col := range columns {
		ln := 0
		if i == len(columns)-1 {
			ln = 1
		}
		pdf.CellFormat(col.width, 10, tr(col.header), "1", ln, "C", false, 0, "")
	}

	pdf.SetFont("Arial", "", 12)
	for _, p := range products {
		cells := []string{
			strconv.Itoa(p.ID),
			p.Nom,
			p.Prix.StringFixed(2),
			strconv.Itoa(p.CategorieID),
		}
		for i, col := range columns {
			ln := 0
			if i == len(columns)-1 {
				ln = 1
			}
			pdf.CellFormat(col.width, 10, tr(cells[i]), "1", ln, col.align, false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("could not render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
