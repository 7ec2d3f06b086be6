package checkout

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shoppy/backend/internal/domain/customer"
	"github.com/shoppy/backend/internal/domain/shared"
)

// Item is a (product, quantity) line within a checkout. Product name and
// price are snapshotted at add time so summary generation needs no
// catalog lookup.
type Item struct {
	ID          uuid.UUID
	ProductID   uuid.UUID
	ProductName string
	Price       decimal.Decimal
	Quantity    int
}

// NewItem creates a new checkout item
func NewItem(productID uuid.UUID, productName string, price decimal.Decimal, quantity int) (*Item, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Product ID cannot be empty")
	}
	if quantity < 1 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Quantity must be at least 1")
	}

	return &Item{
		ID:          uuid.New(),
		ProductID:   productID,
		ProductName: productName,
		Price:       price,
		Quantity:    quantity,
	}, nil
}

// Checkout is the active cart aggregate, owned one-to-one by a customer.
// Address and payment method are held by reference; deleting the checkout
// never deletes them. An empty checkout is never persisted: it is created
// on first item add and deleted when the last item is removed.
type Checkout struct {
	shared.BaseAggregateRoot
	CustomerID    uuid.UUID
	Address       *customer.Address
	PaymentMethod *customer.PaymentMethod
	Items         []Item
}

// NewCheckout creates a new empty checkout for a customer
func NewCheckout(customerID uuid.UUID) (*Checkout, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Customer ID cannot be empty")
	}

	return &Checkout{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CustomerID:        customerID,
		Items:             make([]Item, 0),
	}, nil
}

// AddItem appends an item. At most one item per product may exist.
func (c *Checkout) AddItem(item Item) error {
	if c.FindItemByProduct(item.ProductID) != nil {
		return shared.NewDomainError("ALREADY_EXISTS", "product already existing")
	}

	c.Items = append(c.Items, item)
	c.UpdatedAt = time.Now()

	return nil
}

// FindItem returns the item with the given ID, or nil
func (c *Checkout) FindItem(id uuid.UUID) *Item {
	for idx := range c.Items {
		if c.Items[idx].ID == id {
			return &c.Items[idx]
		}
	}
	return nil
}

// FindItemByProduct returns the item for the given product, or nil
func (c *Checkout) FindItemByProduct(productID uuid.UUID) *Item {
	for idx := range c.Items {
		if c.Items[idx].ProductID == productID {
			return &c.Items[idx]
		}
	}
	return nil
}

// ContainsProduct reports whether an item for the product exists
func (c *Checkout) ContainsProduct(productID uuid.UUID) bool {
	return c.FindItemByProduct(productID) != nil
}

// UpdateItem replaces the quantity of the existing item for the incoming
// item's product. Fails when no such item exists.
func (c *Checkout) UpdateItem(item Item) error {
	existing := c.FindItemByProduct(item.ProductID)
	if existing == nil {
		return shared.NewDomainError("NOT_FOUND", "product not found")
	}

	existing.Quantity = item.Quantity
	c.UpdatedAt = time.Now()

	return nil
}

// DeleteItem removes the item with the given ID, reporting whether a
// removal occurred
func (c *Checkout) DeleteItem(id uuid.UUID) bool {
	for idx := range c.Items {
		if c.Items[idx].ID == id {
			c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
			c.UpdatedAt = time.Now()
			return true
		}
	}
	return false
}

// DeleteItemByProduct removes the item for the given product, reporting
// whether a removal occurred
func (c *Checkout) DeleteItemByProduct(productID uuid.UUID) bool {
	for idx := range c.Items {
		if c.Items[idx].ProductID == productID {
			c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
			c.UpdatedAt = time.Now()
			return true
		}
	}
	return false
}

// IsEmpty reports whether the checkout has no items
func (c *Checkout) IsEmpty() bool {
	return len(c.Items) == 0
}

// AssignAddress sets the delivery address reference; nil clears it
func (c *Checkout) AssignAddress(address *customer.Address) {
	c.Address = address
	c.UpdatedAt = time.Now()
}

// AssignPaymentMethod sets the payment method reference; nil clears it
func (c *Checkout) AssignPaymentMethod(paymentMethod *customer.PaymentMethod) {
	c.PaymentMethod = paymentMethod
	c.UpdatedAt = time.Now()
}
