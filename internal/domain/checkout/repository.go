package checkout

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the persistence interface for checkouts.
// Save must apply an optimistic version check and fail with a
// concurrency conflict when the stored version moved on.
type Repository interface {
	// FindByCustomer retrieves the current checkout of a customer
	FindByCustomer(ctx context.Context, customerID uuid.UUID) (*Checkout, error)

	// FindByID retrieves a checkout by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Checkout, error)

	// Save persists a checkout and its items (insert or update)
	Save(ctx context.Context, checkout *Checkout) error

	// Delete removes a checkout and its items; the referenced address and
	// payment method stay untouched
	Delete(ctx context.Context, id uuid.UUID) error
}
