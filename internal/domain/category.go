package domain

import "context"

// MaxNomLength is the longest name, in characters, a category or product can carry.
const MaxNomLength = 255

type Category struct {
	ID  int    `json:"id"`
	Nom string `json:"nom"`
}

type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]Category, error)
	GetCategoryByID(ctx context.Context, id int) (*Category, error)
	CategoryExists(ctx context.Context, id int) (bool, error)
	CreateCategory(ctx context.Context, category *Category) (*Category, error)
	UpdateCategory(ctx context.Context, category *Category) (*Category, error)
	// DeleteCategory removes the category and every product referencing it,
	// returning how many products went with it.
	DeleteCategory(ctx context.Context, id int) (int64, error)
	CountCategories(ctx context.Context) (int, error)
}
