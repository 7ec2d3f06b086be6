package catalog

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/shoppy/backend/internal/domain/shared"
)

// Product represents a catalog product aggregate root
// Stock is checked by the checkout flow but only decremented by
// administrative updates, never by adding an item to a cart.
type Product struct {
	shared.BaseAggregateRoot
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
}

// NewProduct creates a new product
func NewProduct(name, description string, price decimal.Decimal, stock int) (*Product, error) {
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Product price cannot be negative")
	}
	if stock < 0 {
		return nil, shared.NewDomainError("INVALID_STOCK", "Product stock cannot be negative")
	}

	return &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Description:       description,
		Price:             price,
		Stock:             stock,
	}, nil
}

// Update replaces the mutable product attributes
func (p *Product) Update(name, description string, price decimal.Decimal, stock int) error {
	if err := validateProductName(name); err != nil {
		return err
	}
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Product price cannot be negative")
	}
	if stock < 0 {
		return shared.NewDomainError("INVALID_STOCK", "Product stock cannot be negative")
	}

	p.Name = name
	p.Description = description
	p.Price = price
	p.Stock = stock
	p.UpdatedAt = time.Now()

	return nil
}

// HasStock checks whether the requested quantity is available
func (p *Product) HasStock(quantity int) bool {
	return quantity <= p.Stock
}

func validateProductName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}
