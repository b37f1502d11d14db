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

type postgresCategoryRepository struct {
	db      *sql.DB
	timeout time.Duration
	log     *logrus.Logger
}

func NewPostgresCategoryRepository(db *sql.DB, timeout time.Duration, logger *logrus.Logger) domain.CategoryRepository {
	return &postgresCategoryRepository{
		db:      db,
		timeout: timeout,
		log:     logger,
	}
}

func (r *postgresCategoryRepository) CreateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	ctx, cancel := queryContext(ctx, r.timeout)
	defer cancel()

	query := `INSERT INTO categories (nom) VALUES ($1) RETURNING id, nom`
	created := &domain.Category{}
	err := r.db.QueryRowContext(ctx, query, category.Nom).Scan(&created.ID, &created.Nom)
	if err != nil {
		if isDataOutOfRange(err) {
			r.log.Warnf("Category name exceeds column limits: %v", err)
			return nil, fmt.Errorf("category data out of range: %w", domain.ErrInvalidInput)
		}
		r.log.Errorf("Failed to create category '%s': %v", category.Nom, err)
		return nil, fmt.Errorf("could not create category: %w", err)
	}
	r.log.Infof("Category created successfully with ID: %d, Nom: %s", created.ID, created.Nom)
	return created, nil
}

func (r *postgresCategoryRepository) GetCategoryByID(ctx context.Context, id int) (*domain.Category, error) {
	ctx, cancel := queryContext(ctx, r.timeout)
	defer cancel()

	query := `SELECT id, nom FROM categories WHERE id = $1`
	category := &domain.Category{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&category.ID, &category.Nom)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Warnf("Category with ID %d not found", id)
			return nil, fmt.Errorf("category with id %d: %w", id, domain.ErrCategoryNotFound)
		}
		r.log.Errorf("Failed to get category by ID %d: %v", id, err)
		return nil, fmt.Errorf("could not get category by id: %w", err)
	}
	return category, nil
}

func (r *postgresCategoryRepository) CategoryExists(ctx context.Context, id int) (bool, error) {
	ctx, cancel := queryContext(ctx, r.timeout)
	defer cancel()

	query := `SELECT EXISTS (SELECT 1 FROM categories WHERE id = $1)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		r.log.Errorf("Failed to check category ID %d: %v", id, err)
		return false, fmt.Errorf("could not check category existence: %w", err)
	}
	return exists, nil
}

func (r *postgresCategoryRepository) UpdateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	ctx, cancel := queryContext(ctx, r.timeout)
	defer cancel()

	query := `UPDATE categories SET nom = $1 WHERE id = $2 RETURNING id, nom`
	updated := &domain.Category{}
	err := r.db.QueryRowContext(ctx, query, category.Nom, category.ID).Scan(&updated.ID, &updated.Nom)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Warnf("Category with ID %d not found for update", category.ID)
			return nil, fmt.Errorf("category with id %d: %w", category.ID, domain.ErrCategoryNotFound)
		}
		if isDataOutOfRange(err) {
			r.log.Warnf("Category name for ID %d exceeds column limits: %v", category.ID, err)
			return nil, fmt.Errorf("category data out of range: %w", domain.ErrInvalidInput)
		}
		r.log.Errorf("Failed to update category ID %d: %v", category.ID, err)
		return nil, fmt.Errorf("could not update category: %w", err)
	}
	r.log.Infof("Category updated successfully with ID: %d", updated.ID)
	return updated, nil
}

func (r *postgresCategoryRepository) DeleteCategory(ctx context.Context, id int) (int64, error) {
	ctx, cancel := queryContext(ctx, r.timeout)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.log.Errorf("Failed to begin transaction for deleting category ID %d: %v", id, err)
		return 0, fmt.Errorf("could not begin category deletion: %w", err)
	}
	defer rollback(tx)

	result, err := tx.ExecContext(ctx, `DELETE FROM produits WHERE categorie_id = $1`, id)
	if err != nil {
		r.log.Errorf("Failed to delete products of category ID %d: %v", id, err)
		return 0, fmt.Errorf("could not delete products of category: %w", err)
	}
	removed, err := result.RowsAffected()
	if err != nil {
		r.log.Errorf("Failed to get rows affected after deleting products of category ID %d: %v", id, err)
		return 0, fmt.Errorf("could not confirm product deletion: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id); err != nil {
		r.log.Errorf("Failed to delete category ID %d: %v", id, err)
		return 0, fmt.Errorf("could not delete category: %w", err)
	}

	if err := tx.Commit(); err != nil {
		r.log.Errorf("Failed to commit deletion of category ID %d: %v", id, err)
		return 0, fmt.Errorf("could not commit category deletion: %w", err)
	}

	r.log.Infof("Category ID %d deleted together with %d products", id, removed)
	return removed, nil
}

func (r *postgresCategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	ctx, cancel := queryContext(ctx, r.timeout)
	defer cancel()

	query := `SELECT id, nom FROM categories ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.log.Errorf("Failed to list categories: %v", err)
		return nil, fmt.Errorf("could not list categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.Nom); err != nil {
			r.log.Errorf("Failed to scan category row: %v", err)
			return nil, fmt.Errorf("error scanning category data: %w", err)
		}
		categories = append(categories, category)
	}

	if err = rows.Err(); err != nil {
		r.log.Errorf("Error during categories list iteration: %v", err)
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	r.log.Debugf("Retrieved %d categories", len(categories))
	return categories, nil
}

func (r *postgresCategoryRepository) CountCategories(ctx context.Context) (int, error) {
	ctx, cancel := queryContext(ctx, r.timeout)
	defer cancel()

	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories`).Scan(&count); err != nil {
		r.log.Errorf("Failed to count categories: %v", err)
		return 0, fmt.Errorf("could not count categories: %w", err)
	}
	return count, nil
}
