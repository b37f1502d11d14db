package domain

import "errors"

var (
	ErrCategoryNotFound         = errors.New("category not found")
	ErrProductNotFound          = errors.New("product not found")
	ErrInvalidCategoryReference = errors.New("referenced category does not exist")
	ErrInvalidInput             = errors.New("invalid input")
)
