package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
)

type CategoryUseCase interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategoryByID(ctx context.Context, id int) (*domain.Category, error)
	CreateCategory(ctx context.Context, nom string) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id int, nom string) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id int) error
}

type categoryUseCase struct {
	categoryRepo domain.CategoryRepository
	log          *logrus.Logger
}

func NewCategoryUseCase(repo domain.CategoryRepository, logger *logrus.Logger) CategoryUseCase {
	return &categoryUseCase{
		categoryRepo: repo,
		log:          logger,
	}
}

func (uc *categoryUseCase) normalizeName(nom string) (string, error) {
	nom = strings.TrimSpace(nom)
	if nom == "" {
		uc.log.Warn("Use Case: Category name is empty")
		return "", fmt.Errorf("category name cannot be empty: %w", domain.ErrInvalidInput)
	}
	if utf8.RuneCountInString(nom) > domain.MaxNomLength {
		uc.log.Warnf("Use Case: Category name exceeds %d characters", domain.MaxNomLength)
		return "", fmt.Errorf("category name too long: %w", domain.ErrInvalidInput)
	}
	return nom, nil
}

func (uc *categoryUseCase) CreateCategory(ctx context.Context, nom string) (*domain.Category, error) {
	nom, err := uc.normalizeName(nom)
	if err != nil {
		return nil, err
	}

	uc.log.Infof("Use Case: Attempting to create category with name '%s'", nom)
	created, err := uc.categoryRepo.CreateCategory(ctx, &domain.Category{Nom: nom})
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create category '%s': %v", nom, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Category '%s' created successfully with ID %d", created.Nom, created.ID)
	return created, nil
}

func (uc *categoryUseCase) GetCategoryByID(ctx context.Context, id int) (*domain.Category, error) {
	if id <= 0 {
		uc.log.Warnf("Use Case: Attempted to get category with invalid ID: %d", id)
		return nil, fmt.Errorf("invalid category ID %d: %w", id, domain.ErrInvalidInput)
	}

	category, err := uc.categoryRepo.GetCategoryByID(ctx, id)
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to get category ID %d: %v", id, err)
		return nil, err
	}
	return category, nil
}

func (uc *categoryUseCase) UpdateCategory(ctx context.Context, id int, nom string) (*domain.Category, error) {
	if id <= 0 {
		uc.log.Warnf("Use Case: Attempted update with invalid ID: %d", id)
		return nil, fmt.Errorf("invalid category ID %d: %w", id, domain.ErrInvalidInput)
	}
	nom, err := uc.normalizeName(nom)
	if err != nil {
		return nil, err
	}

	uc.log.Infof("Use Case: Attempting to update category ID %d", id)
	updated, err := uc.categoryRepo.UpdateCategory(ctx, &domain.Category{ID: id, Nom: nom})
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to update category ID %d: %v", id, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Category updated successfully for ID %d", updated.ID)
	return updated, nil
}

func (uc *categoryUseCase) DeleteCategory(ctx context.Context, id int) error {
	if id <= 0 {
		uc.log.Warnf("Use Case: Attempted delete with invalid ID: %d", id)
		return fmt.Errorf("invalid category ID %d: %w", id, domain.ErrInvalidInput)
	}

	uc.log.Infof("Use Case: Attempting to delete category ID %d with its products", id)
	removed, err := uc.categoryRepo.DeleteCategory(ctx, id)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to delete category ID %d: %v", id, err)
		return err
	}

	uc.log.Infof("Use Case: Category ID %d deleted, %d products removed", id, removed)
	return nil
}

func (uc *categoryUseCase) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := uc.categoryRepo.ListCategories(ctx)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list categories: %v", err)
		return nil, fmt.Errorf("could not retrieve categories: %w", err)
	}

	uc.log.Debugf("Use Case: Retrieved %d categories", len(categories))
	return categories, nil
}
