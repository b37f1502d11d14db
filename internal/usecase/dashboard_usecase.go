package usecase

import (
	"context"
	"fmt"

	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
)

type DashboardUseCase interface {
	Summary(ctx context.Context) (*domain.Dashboard, error)
}

type dashboardUseCase struct {
	categoryRepo domain.CategoryRepository
	productRepo  domain.ProductRepository
	log          *logrus.Logger
}

func NewDashboardUseCase(cRepo domain.CategoryRepository, pRepo domain.ProductRepository, logger *logrus.Logger) DashboardUseCase {
	return &dashboardUseCase{
		categoryRepo: cRepo,
		productRepo:  pRepo,
		log:          logger,
	}
}

func (uc *dashboardUseCase) Summary(ctx context.Context) (*domain.Dashboard, error) {
	categories, err := uc.categoryRepo.CountCategories(ctx)
	if err != nil {
		uc.log.Errorf("Use Case: Failed to count categories: %v", err)
		return nil, fmt.Errorf("could not build dashboard: %w", err)
	}
	products, err := uc.productRepo.CountProducts(ctx)
	if err != nil {
		uc.log.Errorf("Use Case: Failed to count products: %v", err)
		return nil, fmt.Errorf("could not build dashboard: %w", err)
	}
	return &domain.Dashboard{Categories: categories, Produits: products}, nil
}
