package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// PrixScale is the number of decimal places kept for a price.
const PrixScale = 2

// MaxPrix is the exclusive upper bound of a stored price (NUMERIC(10,2)).
var MaxPrix = decimal.New(1, 8)

type Product struct {
	ID          int             `json:"id"`
	Nom         string          `json:"nom"`
	Prix        decimal.Decimal `json:"prix"`
	CategorieID int             `json:"categorie_id"` // 0 when the stored reference is NULL
}

type ProductRepository interface {
	ListProducts(ctx context.Context) ([]Product, error)
	ListProductsByCategory(ctx context.Context, categoryID int) ([]Product, error)
	GetProductByID(ctx context.Context, id int) (*Product, error)
	CreateProduct(ctx context.Context, product *Product) (*Product, error)
	UpdateProduct(ctx context.Context, product *Product) (*Product, error)
	DeleteProduct(ctx context.Context, id int) error
	CountProducts(ctx context.Context) (int, error)
}
