package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
)

type ProductUseCase interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	ListProductsByCategory(ctx context.Context, categoryID int) ([]domain.Product, error)
	GetProductByID(ctx context.Context, id int) (*domain.Product, error)
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id int, product *domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int) error
}

type productUseCase struct {
	productRepo  domain.ProductRepository
	categoryRepo domain.CategoryRepository
	log          *logrus.Logger
}

func NewProductUseCase(pRepo domain.ProductRepository, cRepo domain.CategoryRepository, logger *logrus.Logger) ProductUseCase {
	return &productUseCase{
		productRepo:  pRepo,
		categoryRepo: cRepo,
		log:          logger,
	}
}

func (uc *productUseCase) validate(product *domain.Product) error {
	product.Nom = strings.TrimSpace(product.Nom)
	if product.Nom == "" {
		uc.log.Warn("Use Case: Product name is empty")
		return fmt.Errorf("product name cannot be empty: %w", domain.ErrInvalidInput)
	}
	if utf8.RuneCountInString(product.Nom) > domain.MaxNomLength {
		uc.log.Warnf("Use Case: Product name exceeds %d characters", domain.MaxNomLength)
		return fmt.Errorf("product name too long: %w", domain.ErrInvalidInput)
	}
	product.Prix = product.Prix.Round(domain.PrixScale)
	if product.Prix.IsNegative() {
		uc.log.Warnf("Use Case: Product '%s' has negative price: %s", product.Nom, product.Prix)
		return fmt.Errorf("product price cannot be negative: %w", domain.ErrInvalidInput)
	}
	if product.Prix.GreaterThanOrEqual(domain.MaxPrix) {
		uc.log.Warnf("Use Case: Product '%s' price %s is out of range", product.Nom, product.Prix)
		return fmt.Errorf("product price must be below %s: %w", domain.MaxPrix, domain.ErrInvalidInput)
	}
	if product.CategorieID <= 0 {
		uc.log.Warnf("Use Case: Product '%s' has invalid category ID: %d", product.Nom, product.CategorieID)
		return fmt.Errorf("invalid category ID %d: %w", product.CategorieID, domain.ErrInvalidInput)
	}
	return nil
}

// ensureCategory runs the dedicated lookup that guards product writes.
func (uc *productUseCase) ensureCategory(ctx context.Context, categoryID int) error {
	exists, err := uc.categoryRepo.CategoryExists(ctx, categoryID)
	if err != nil {
		uc.log.Errorf("Use Case: Failed to verify category ID %d: %v", categoryID, err)
		return err
	}
	if !exists {
		uc.log.Warnf("Use Case: Category ID %d does not exist", categoryID)
		return fmt.Errorf("category with id %d: %w", categoryID, domain.ErrInvalidCategoryReference)
	}
	return nil
}

func (uc *productUseCase) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := uc.validate(product); err != nil {
		return nil, err
	}
	if err := uc.ensureCategory(ctx, product.CategorieID); err != nil {
		return nil, err
	}

	uc.log.Infof("Use Case: Attempting to create product '%s'", product.Nom)
	created, err := uc.productRepo.CreateProduct(ctx, product)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create product '%s': %v", product.Nom, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Product '%s' created successfully with ID %d", created.Nom, created.ID)
	return created, nil
}

func (uc *productUseCase) GetProductByID(ctx context.Context, id int) (*domain.Product, error) {
	if id <= 0 {
		uc.log.Warnf("Use Case: Attempted to get product with invalid ID: %d", id)
		return nil, fmt.Errorf("invalid product ID %d: %w", id, domain.ErrInvalidInput)
	}

	product, err := uc.productRepo.GetProductByID(ctx, id)
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to get product ID %d: %v", id, err)
		return nil, err
	}
	return product, nil
}

// UpdateProduct replaces nom, prix and categorie_id. The category reference is
// checked before the update is attempted.
func (uc *productUseCase) UpdateProduct(ctx context.Context, id int, product *domain.Product) (*domain.Product, error) {
	if id <= 0 {
		uc.log.Warnf("Use Case: Attempted update with invalid product ID: %d", id)
		return nil, fmt.Errorf("invalid product ID %d: %w", id, domain.ErrInvalidInput)
	}
	if err := uc.validate(product); err != nil {
		return nil, err
	}
	if err := uc.ensureCategory(ctx, product.CategorieID); err != nil {
		return nil, err
	}

	product.ID = id
	uc.log.Infof("Use Case: Attempting to update product ID %d", id)
	updated, err := uc.productRepo.UpdateProduct(ctx, product)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to update product ID %d: %v", id, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Product updated successfully for ID %d", updated.ID)
	return updated, nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id int) error {
	if id <= 0 {
		uc.log.Warnf("Use Case: Attempted delete with invalid product ID: %d", id)
		return fmt.Errorf("invalid product ID %d: %w", id, domain.ErrInvalidInput)
	}
	if err := uc.productRepo.DeleteProduct(ctx, id); err != nil {
		uc.log.Errorf("Use Case: Repository failed to delete product ID %d: %v", id, err)
		return err
	}
	uc.log.Infof("Use Case: Product ID %d deleted", id)
	return nil
}

func (uc *productUseCase) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := uc.productRepo.ListProducts(ctx)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list products: %v", err)
		return nil, fmt.Errorf("could not retrieve products: %w", err)
	}
	uc.log.Debugf("Use Case: Retrieved %d products", len(products))
	return products, nil
}

// ListProductsByCategory returns an empty slice, not an error, for an unknown category.
func (uc *productUseCase) ListProductsByCategory(ctx context.Context, categoryID int) ([]domain.Product, error) {
	if categoryID <= 0 {
		uc.log.Warnf("Use Case: Attempted list by category with invalid category ID: %d", categoryID)
		return nil, fmt.Errorf("invalid category ID %d: %w", categoryID, domain.ErrInvalidInput)
	}
	products, err := uc.productRepo.ListProductsByCategory(ctx, categoryID)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list products for category %d: %v", categoryID, err)
		return nil, fmt.Errorf("could not retrieve products for category %d: %w", categoryID, err)
	}
	uc.log.Debugf("Use Case: Retrieved %d products for category %d", len(products), categoryID)
	return products, nil
}
