package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
)

const productColumns = `id, nom, prix, categorie_id`

type postgresProductRepository struct {
	db      *sql.DB
	timeout time.Duration
	log     *logrus.Logger
}

func NewPostgresProductRepository(db *sql.DB, timeout time.Duration, logger *logrus.Logger) domain.ProductRepository {
	return &postgresProductRepository{
		db:      db,
		timeout: timeout,
		log:     logger,
	}
}

func scanProduct(s scanner) (*domain.Product, error) {
	product := &domain.Product{}
	var categoryID sql.NullInt64
	if err := s.Scan(&product.ID, &product.Nom, &product.Prix, &categoryID); err != nil {
		return nil, err
	}
	if categoryID.Valid {
		product.CategorieID = int(categoryID.Int64)
	}
	return product, nil
}

// classify translates store constraint violations into domain errors.
func (r *postgresProductRepository) classify(err error, product *domain.Product) error {
	switch pqErrorCode(err) {
	case foreignKeyViolation:
		r.log.Warnf("Product '%s' references non-existent category ID: %d", product.Nom, product.CategorieID)
		return fmt.Errorf("category with id %d: %w", product.CategorieID, domain.ErrInvalidCategoryReference)
	case checkViolation:
		r.log.Warnf("Check constraint violation for product '%s': %v", product.Nom, err)
		return fmt.Errorf("product data constraint violation: %w", domain.ErrInvalidInput)
	}
	if isDataOutOfRange(err) {
		r.log.Warnf("Product '%s' exceeds column limits: %v", product.Nom, err)
		return fmt.Errorf("product data out of range: %w", domain.ErrInvalidInput)
	}
	return nil
}

func (r *postgresProductRepository) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	ctx, cancel := queryContext(ctx, r.timeout)
	defer cancel()

	query := `
        INSERT INTO produits (nom, prix, categorie_id)
        VALUES ($1, $2, $3)
        RETURNING ` + productColumns

	created, err := scanProduct(r.db.QueryRowContext(ctx, query, product.Nom, product.Prix, product.CategorieID))
	if err != nil {
		if classified := r.classify(err, product); classified != nil {
			return nil, classified
		}
		r.log.Errorf("Failed to create product '%s': %v", product.Nom, err)
		return nil, fmt.Errorf("could not create product: %w", err)
	}
	r.log.Infof("Product created successfully with ID: %d, Nom: %s", created.ID, created.Nom)
	return created, nil
}

func (r *postgresProductRepository) GetProductByID(ctx context.Context, id int) (*domain.Product, error) {
	ctx, cancel := queryContext(ctx, r.timeout)
	defer cancel()

	query := `SELECT ` + productColumns + ` FROM produits WHERE id = $1`
	product, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Warnf("Product with ID %d not found", id)
			return nil, fmt.Errorf("product with id %d: %w", id, domain.ErrProductNotFound)
		}
		r.log.Errorf("Failed to get product by ID %d: %v", id, err)
		return nil, fmt.Errorf("could not get product by id: %w", err)
	}
	return product, nil
}

func (r *postgresProductRepository) UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	ctx, cancel := queryContext(ctx, r.timeout)
	defer cancel()

	query := `
        UPDATE produits
        SET nom = $1, prix = $2, categorie_id = $3
        WHERE id = $4
        RETURNING ` + productColumns

	updated, err := scanProduct(r.db.QueryRowContext(ctx, query, product.Nom, product.Prix, product.CategorieID, product.ID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Warnf("Product with ID %d not found for update", product.ID)
			return nil, fmt.Errorf("product with id %d: %w", product.ID, domain.ErrProductNotFound)
		}
		if classified := r.classify(err, product); classified != nil {
			return nil, classified
		}
		r.log.Errorf("Failed to update product ID %d: %v", product.ID, err)
		return nil, fmt.Errorf("could not update product: %w", err)
	}
	r.log.Infof("Product updated successfully with ID: %d", updated.ID)
	return updated, nil
}

func (r *postgresProductRepository) DeleteProduct(ctx context.Context, id int) error {
	ctx, cancel := queryContext(ctx, r.timeout)
	defer cancel()

	result, err := r.db.ExecContext(ctx, `DELETE FROM produits WHERE id = $1`, id)
	if err != nil {
		r.log.Errorf("Failed to delete product ID %d: %v", id, err)
		return fmt.Errorf("could not delete product: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.Errorf("Failed to get rows affected after deleting product ID %d: %v", id, err)
		return fmt.Errorf("could not confirm product deletion: %w", err)
	}
	if rowsAffected == 0 {
		r.log.Debugf("Delete of product ID %d matched no row", id)
		return nil
	}
	r.log.Infof("Product deleted successfully with ID: %d", id)
	return nil
}

func (r *postgresProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	ctx, cancel := queryContext(ctx, r.timeout)
	defer cancel()

	query := `SELECT ` + productColumns + ` FROM produits ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.log.Errorf("Failed to list products: %v", err)
		return nil, fmt.Errorf("could not list products: %w", err)
	}
	defer rows.Close()

	products, err := r.collect(rows)
	if err != nil {
		return nil, err
	}
	r.log.Debugf("Retrieved %d products", len(products))
	return products, nil
}

func (r *postgresProductRepository) ListProductsByCategory(ctx context.Context, categoryID int) ([]domain.Product, error) {
	ctx, cancel := queryContext(ctx, r.timeout)
	defer cancel()

	query := `SELECT ` + productColumns + ` FROM produits WHERE categorie_id = $1 ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, query, categoryID)
	if err != nil {
		r.log.Errorf("Failed to list products for category %d: %v", categoryID, err)
		return nil, fmt.Errorf("could not list products by category: %w", err)
	}
	defer rows.Close()

	products, err := r.collect(rows)
	if err != nil {
		return nil, err
	}
	r.log.Debugf("Retrieved %d products for category %d", len(products), categoryID)
	return products, nil
}

func (r *postgresProductRepository) CountProducts(ctx context.Context) (int, error) {
	ctx, cancel := queryContext(ctx, r.timeout)
	defer cancel()

	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM produits`).Scan(&count); err != nil {
		r.log.Errorf("Failed to count products: %v", err)
		return 0, fmt.Errorf("could not count products: %w", err)
	}
	return count, nil
}

func (r *postgresProductRepository) collect(rows *sql.Rows) ([]domain.Product, error) {
	products := []domain.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			r.log.Errorf("Failed to scan product row: %v", err)
			return nil, fmt.Errorf("error scanning product data: %w", err)
		}
		products = append(products, *product)
	}
	if err := rows.Err(); err != nil {
		r.log.Errorf("Error during products list iteration: %v", err)
		return nil, fmt.Errorf("error iterating products: %w", err)
	}
	return products, nil
}
