package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
)

const (
	ProductReportTitle    = "Liste des Produits"
	ProductReportFilename = "produits.pdf"
)

type ReportUseCase interface {
	// RenderProductReport returns the product listing document and its content type.
	RenderProductReport(ctx context.Context) ([]byte, string, error)
	// SaveProductReport renders the listing into the report directory and returns the file path.
	SaveProductReport(ctx context.Context) (string, error)
}

type reportUseCase struct {
	productRepo domain.ProductRepository
	exporter    domain.ReportExporter
	dir         string
	log         *logrus.Logger
}

func NewReportUseCase(pRepo domain.ProductRepository, exporter domain.ReportExporter, dir string, logger *logrus.Logger) ReportUseCase {
	return &reportUseCase{
		productRepo: pRepo,
		exporter:    exporter,
		dir:         dir,
		log:         logger,
	}
}

func (uc *reportUseCase) RenderProductReport(ctx context.Context) ([]byte, string, error) {
	products, err := uc.productRepo.ListProducts(ctx)
	if err != nil {
		uc.log.Errorf("Use Case: Failed to load products for report: %v", err)
		return nil, "", fmt.Errorf("could not load products for report: %w", err)
	}

	doc, err := uc.exporter.Export(ProductReportTitle, products)
	if err != nil {
		uc.log.Errorf("Use Case: Failed to export product report: %v", err)
		return nil, "", fmt.Errorf("could not export product report: %w", err)
	}

	uc.log.Infof("Use Case: Rendered product report with %d lines (%d bytes)", len(products), len(doc))
	return doc, uc.exporter.ContentType(), nil
}

func (uc *reportUseCase) SaveProductReport(ctx context.Context) (string, error) {
	doc, _, err := uc.RenderProductReport(ctx)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(uc.dir, 0o755); err != nil {
		uc.log.Errorf("Use Case: Failed to create report directory %s: %v", uc.dir, err)
		return "", fmt.Errorf("could not create report directory: %w", err)
	}
	path := filepath.Join(uc.dir, ProductReportFilename)
	if err := writeFileAtomic(uc.dir, path, doc); err != nil {
		uc.log.Errorf("Use Case: Failed to write product report to %s: %v", path, err)
		return "", fmt.Errorf("could not save product report: %w", err)
	}

	uc.log.Infof("Use Case: Product report saved to %s", path)
	return path, nil
}

// writeFileAtomic writes data to a temporary file in dir and renames it over path.
// Readers of path see either the previous report or the new one, never a partial file.
func writeFileAtomic(dir, path string, data []byte) error {
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
