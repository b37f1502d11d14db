package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"catalog_service/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productRowColumns = []string{"id", "nom", "prix", "categorie_id"}

func TestCreateProduct(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresProductRepository(db, testTimeout, newTestLogger())

	prix := decimal.RequireFromString("1.5")
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO produits (nom, prix, categorie_id)`)).
		WithArgs("Apple", prix, 1).
		WillReturnRows(sqlmock.NewRows(productRowColumns).AddRow(10, "Apple", "1.50", 1))

	created, err := repo.CreateProduct(context.Background(), &domain.Product{Nom: "Apple", Prix: prix, CategorieID: 1})
	require.NoError(t, err)
	assert.Equal(t, 10, created.ID)
	assert.Equal(t, "Apple", created.Nom)
	assert.True(t, prix.Equal(created.Prix))
	assert.Equal(t, 1, created.CategorieID)
}

func TestCreateProductForeignKeyViolation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresProductRepository(db, testTimeout, newTestLogger())

	mock.ExpectQuery("INSERT INTO produits").
		WillReturnError(&pq.Error{Code: "23503", Message: "violates foreign key constraint"})

	_, err := repo.CreateProduct(context.Background(), &domain.Product{Nom: "Apple", Prix: decimal.NewFromInt(1), CategorieID: 999})
	assert.ErrorIs(t, err, domain.ErrInvalidCategoryReference)
}

func TestCreateProductCheckViolation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresProductRepository(db, testTimeout, newTestLogger())

	mock.ExpectQuery("INSERT INTO produits").
		WillReturnError(&pq.Error{Code: "23514", Message: "violates check constraint"})

	_, err := repo.CreateProduct(context.Background(), &domain.Product{Nom: "Apple", Prix: decimal.NewFromInt(-1), CategorieID: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductWritesOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		query string
		code  pq.ErrorCode
		write func(domain.ProductRepository, *domain.Product) error
	}{
		{"create numeric overflow", "INSERT INTO produits", "22003", func(r domain.ProductRepository, p *domain.Product) error {
			_, err := r.CreateProduct(context.Background(), p)
			return err
		}},
		{"create name too long", "INSERT INTO produits", "22001", func(r domain.ProductRepository, p *domain.Product) error {
			_, err := r.CreateProduct(context.Background(), p)
			return err
		}},
		{"update numeric overflow", "UPDATE produits", "22003", func(r domain.ProductRepository, p *domain.Product) error {
			_, err := r.UpdateProduct(context.Background(), p)
			return err
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewPostgresProductRepository(db, testTimeout, newTestLogger())

			mock.ExpectQuery(tt.query).WillReturnError(&pq.Error{Code: tt.code})

			err := tt.write(repo, &domain.Product{ID: 4, Nom: "Apple", Prix: decimal.NewFromInt(123456789), CategorieID: 1})
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestGetProductByIDNullCategory(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresProductRepository(db, testTimeout, newTestLogger())

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, nom, prix, categorie_id FROM produits WHERE id = $1`)).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows(productRowColumns).AddRow(3, "Orphan", "2.00", nil))

	product, err := repo.GetProductByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Zero(t, product.CategorieID)
}

func TestGetProductByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresProductRepository(db, testTimeout, newTestLogger())

	mock.ExpectQuery("SELECT id, nom, prix, categorie_id FROM produits").
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows(productRowColumns))

	_, err := repo.GetProductByID(context.Background(), 3)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestUpdateProduct(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresProductRepository(db, testTimeout, newTestLogger())

	prix := decimal.RequireFromString("2.25")
	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE produits`)).
		WithArgs("Pear", prix, 2, 10).
		WillReturnRows(sqlmock.NewRows(productRowColumns).AddRow(10, "Pear", "2.25", 2))

	updated, err := repo.UpdateProduct(context.Background(), &domain.Product{ID: 10, Nom: "Pear", Prix: prix, CategorieID: 2})
	require.NoError(t, err)
	assert.Equal(t, "Pear", updated.Nom)
	assert.Equal(t, 2, updated.CategorieID)
}

func TestUpdateProductNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresProductRepository(db, testTimeout, newTestLogger())

	mock.ExpectQuery("UPDATE produits").WillReturnRows(sqlmock.NewRows(productRowColumns))

	_, err := repo.UpdateProduct(context.Background(), &domain.Product{ID: 77, Nom: "Pear", Prix: decimal.NewFromInt(1), CategorieID: 2})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestUpdateProductForeignKeyViolation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresProductRepository(db, testTimeout, newTestLogger())

	mock.ExpectQuery("UPDATE produits").WillReturnError(&pq.Error{Code: "23503"})

	_, err := repo.UpdateProduct(context.Background(), &domain.Product{ID: 1, Nom: "Pear", Prix: decimal.NewFromInt(1), CategorieID: 2})
	assert.ErrorIs(t, err, domain.ErrInvalidCategoryReference)
}

func TestDeleteProductIsIdempotent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresProductRepository(db, testTimeout, newTestLogger())

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM produits WHERE id = $1`)).
		WithArgs(8).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM produits WHERE id = $1`)).
		WithArgs(8).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.DeleteProduct(context.Background(), 8))
	assert.NoError(t, repo.DeleteProduct(context.Background(), 8))
}

func TestDeleteProductStoreFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresProductRepository(db, testTimeout, newTestLogger())

	mock.ExpectExec("DELETE FROM produits").WillReturnError(sql.ErrConnDone)

	assert.ErrorIs(t, repo.DeleteProduct(context.Background(), 8), sql.ErrConnDone)
}

func TestListProductsByCategory(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresProductRepository(db, testTimeout, newTestLogger())

	mock.ExpectQuery(regexp.QuoteMeta(`FROM produits WHERE categorie_id = $1 ORDER BY id ASC`)).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(productRowColumns).
			AddRow(1, "Apple", "1.50", 1).
			AddRow(2, "Banana", "0.99", 1))

	products, err := repo.ListProductsByCategory(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Banana", products[1].Nom)
	assert.Equal(t, "0.99", products[1].Prix.String())
}

func TestListProductsByCategoryEmpty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresProductRepository(db, testTimeout, newTestLogger())

	mock.ExpectQuery("FROM produits WHERE categorie_id").
		WithArgs(9).
		WillReturnRows(sqlmock.NewRows(productRowColumns))

	products, err := repo.ListProductsByCategory(context.Background(), 9)
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestListProductsScanFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresProductRepository(db, testTimeout, newTestLogger())

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, nom, prix, categorie_id FROM produits ORDER BY id ASC`)).
		WillReturnRows(sqlmock.NewRows(productRowColumns).AddRow(1, "Apple", "not-a-number", 1))

	_, err := repo.ListProducts(context.Background())
	assert.Error(t, err)
}

func TestCountProducts(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresProductRepository(db, testTimeout, newTestLogger())

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM produits`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	count, err := repo.CountProducts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, count)
}
