package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shoppy/backend/internal/domain/checkout"
)

// CheckoutModel is the persistence model for the Checkout aggregate root.
// Address and payment method are plain id columns, not foreign keys, so
// rewriting the customer's child rows never invalidates a checkout row.
// The repository resolves them back to entities on load.
type CheckoutModel struct {
	AggregateModel
	CustomerID      uuid.UUID            `gorm:"type:uuid;uniqueIndex;not null"`
	AddressID       *uuid.UUID           `gorm:"type:uuid"`
	PaymentMethodID *uuid.UUID           `gorm:"type:uuid"`
	Items           []*CheckoutItemModel `gorm:"foreignKey:CheckoutID"`
}

// TableName returns the table name for GORM
func (CheckoutModel) TableName() string {
	return "checkouts"
}

// ToDomain converts the persistence model to a domain Checkout aggregate.
// The address and payment method references stay nil; the repository fills
// them in from the owning customer.
func (m *CheckoutModel) ToDomain() *checkout.Checkout {
	items := make([]checkout.Item, 0, len(m.Items))
	for _, item := range m.Items {
		items = append(items, item.ToDomain())
	}

	return &checkout.Checkout{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		CustomerID:        m.CustomerID,
		Items:             items,
	}
}

// FromDomain populates the persistence model from a domain Checkout aggregate.
func (m *CheckoutModel) FromDomain(c *checkout.Checkout) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.CustomerID = c.CustomerID

	m.AddressID = nil
	if c.Address != nil {
		id := c.Address.ID
		m.AddressID = &id
	}

	m.PaymentMethodID = nil
	if c.PaymentMethod != nil {
		id := c.PaymentMethod.ID
		m.PaymentMethodID = &id
	}

	m.Items = make([]*CheckoutItemModel, 0, len(c.Items))
	for _, item := range c.Items {
		m.Items = append(m.Items, CheckoutItemModelFromDomain(c.ID, item))
	}
}

// CheckoutModelFromDomain creates a new persistence model from a domain Checkout aggregate.
func CheckoutModelFromDomain(c *checkout.Checkout) *CheckoutModel {
	m := &CheckoutModel{}
	m.FromDomain(c)
	return m
}

// CheckoutItemModel is the persistence model for a cart line.
type CheckoutItemModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key"`
	CheckoutID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null"`
	ProductName string          `gorm:"type:varchar(200);not null"`
	Price       decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Quantity    int             `gorm:"not null"`
}

// TableName returns the table name for GORM
func (CheckoutItemModel) TableName() string {
	return "checkout_items"
}

// ToDomain converts the persistence model to a domain checkout Item.
func (m *CheckoutItemModel) ToDomain() checkout.Item {
	return checkout.Item{
		ID:          m.ID,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		Price:       m.Price,
		Quantity:    m.Quantity,
	}
}

// CheckoutItemModelFromDomain creates a new persistence model from a domain checkout Item.
func CheckoutItemModelFromDomain(checkoutID uuid.UUID, item checkout.Item) *CheckoutItemModel {
	return &CheckoutItemModel{
		ID:          item.ID,
		CheckoutID:  checkoutID,
		ProductID:   item.ProductID,
		ProductName: item.ProductName,
		Price:       item.Price,
		Quantity:    item.Quantity,
	}
}
