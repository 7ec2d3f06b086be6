package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ProductRepository defines the persistence interface for products
type ProductRepository interface {
	// FindByID retrieves a product by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindAll retrieves all products
	FindAll(ctx context.Context) ([]*Product, error)

	// Search retrieves products whose name or description contains the query,
	// case-insensitively. An empty query matches everything.
	Search(ctx context.Context, query string) ([]*Product, error)

	// Save persists a product (insert or update)
	Save(ctx context.Context, product *Product) error

	// Delete removes a product by its ID
	Delete(ctx context.Context, id uuid.UUID) error
}
