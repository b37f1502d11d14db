package delivery

import (
	"context"

	"catalog_service/internal/domain"

	"github.com/stretchr/testify/mock"
)

type mockCategoryUseCase struct {
	mock.Mock
}

func (m *mockCategoryUseCase) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	categories, _ := args.Get(0).([]domain.Category)
	return categories, args.Error(1)
}

func (m *mockCategoryUseCase) GetCategoryByID(ctx context.Context, id int) (*domain.Category, error) {
	args := m.Called(ctx, id)
	category, _ := args.Get(0).(*domain.Category)
	return category, args.Error(1)
}

func (m *mockCategoryUseCase) CreateCategory(ctx context.Context, nom string) (*domain.Category, error) {
	args := m.Called(ctx, nom)
	category, _ := args.Get(0).(*domain.Category)
	return category, args.Error(1)
}

func (m *mockCategoryUseCase) UpdateCategory(ctx context.Context, id int, nom string) (*domain.Category, error) {
	args := m.Called(ctx, id, nom)
	category, _ := args.Get(0).(*domain.Category)
	return category, args.Error(1)
}

func (m *mockCategoryUseCase) DeleteCategory(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

type mockProductUseCase struct {
	mock.Mock
}

func (m *mockProductUseCase) ListProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]domain.Product)
	return products, args.Error(1)
}

func (m *mockProductUseCase) ListProductsByCategory(ctx context.Context, categoryID int) ([]domain.Product, error) {
	args := m.Called(ctx, categoryID)
	products, _ := args.Get(0).([]domain.Product)
	return products, args.Error(1)
}

func (m *mockProductUseCase) GetProductByID(ctx context.Context, id int) (*domain.Product, error) {
	args := m.Called(ctx, id)
	product, _ := args.Get(0).(*domain.Product)
	return product, args.Error(1)
}

func (m *mockProductUseCase) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	args := m.Called(ctx, product)
	created, _ := args.Get(0).(*domain.Product)
	return created, args.Error(1)
}

func (m *mockProductUseCase) UpdateProduct(ctx context.Context, id int, product *domain.Product) (*domain.Product, error) {
	args := m.Called(ctx, id, product)
	updated, _ := args.Get(0).(*domain.Product)
	return updated, args.Error(1)
}

func (m *mockProductUseCase) DeleteProduct(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

type mockDashboardUseCase struct {
	mock.Mock
}

func (m *mockDashboardUseCase) Summary(ctx context.Context) (*domain.Dashboard, error) {
	args := m.Called(ctx)
	summary, _ := args.Get(0).(*domain.Dashboard)
	return summary, args.Error(1)
}

type mockReportUseCase struct {
	mock.Mock
}

func (m *mockReportUseCase) RenderProductReport(ctx context.Context) ([]byte, string, error) {
	args := m.Called(ctx)
	doc, _ := args.Get(0).([]byte)
	return doc, args.String(1), args.Error(2)
}

func (m *mockReportUseCase) SaveProductReport(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}
