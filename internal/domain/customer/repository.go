package customer

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the persistence interface for customers.
// Save cascades the owned collections; Delete cascades everything the
// customer owns, including its current checkout.
type Repository interface {
	// FindByID retrieves a customer by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)

	// FindByUsername retrieves a customer by its unique username
	FindByUsername(ctx context.Context, username string) (*Customer, error)

	// FindOwnerOfOrder retrieves the customer that owns the given order
	FindOwnerOfOrder(ctx context.Context, orderID uuid.UUID) (*Customer, error)

	// FindAll retrieves all customers
	FindAll(ctx context.Context) ([]*Customer, error)

	// Save persists a customer and its owned collections (insert or update)
	Save(ctx context.Context, customer *Customer) error

	// Delete removes a customer and everything it owns
	Delete(ctx context.Context, id uuid.UUID) error
}
