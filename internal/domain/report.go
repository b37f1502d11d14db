package domain

// ReportExporter renders a product listing into a downloadable document.
type ReportExporter interface {
	Export(title string, products []Product) ([]byte, error)
	ContentType() string
}
