package models

import (
	"github.com/google/uuid"
	"github.com/shoppy/backend/internal/domain/customer"
	"github.com/shoppy/backend/internal/domain/geography"
)

// CustomerModel is the persistence model for the Customer aggregate root.
// Addresses, payment methods and orders are owned rows keyed by customer_id.
type CustomerModel struct {
	AggregateModel
	Username       string                `gorm:"type:varchar(100);uniqueIndex;not null"`
	Name           string                `gorm:"type:varchar(100);not null"`
	Surname        string                `gorm:"type:varchar(100);not null"`
	Email          string                `gorm:"type:varchar(200)"`
	Addresses      []*AddressModel       `gorm:"foreignKey:CustomerID"`
	PaymentMethods []*PaymentMethodModel `gorm:"foreignKey:CustomerID"`
	Orders         []*OrderModel         `gorm:"foreignKey:CustomerID"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer aggregate.
func (m *CustomerModel) ToDomain() *customer.Customer {
	addresses := make([]*customer.Address, 0, len(m.Addresses))
	for _, address := range m.Addresses {
		addresses = append(addresses, address.ToDomain())
	}

	paymentMethods := make([]*customer.PaymentMethod, 0, len(m.PaymentMethods))
	for _, paymentMethod := range m.PaymentMethods {
		paymentMethods = append(paymentMethods, paymentMethod.ToDomain())
	}

	orders := make([]*customer.Order, 0, len(m.Orders))
	for _, order := range m.Orders {
		orders = append(orders, order.ToDomain())
	}

	return &customer.Customer{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Username:          m.Username,
		Name:              m.Name,
		Surname:           m.Surname,
		Email:             m.Email,
		Addresses:         addresses,
		PaymentMethods:    paymentMethods,
		Orders:            orders,
	}
}

// FromDomain populates the persistence model from a domain Customer aggregate.
func (m *CustomerModel) FromDomain(c *customer.Customer) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.Username = c.Username
	m.Name = c.Name
	m.Surname = c.Surname
	m.Email = c.Email

	m.Addresses = make([]*AddressModel, 0, len(c.Addresses))
	for _, address := range c.Addresses {
		m.Addresses = append(m.Addresses, AddressModelFromDomain(c.ID, address))
	}

	m.PaymentMethods = make([]*PaymentMethodModel, 0, len(c.PaymentMethods))
	for _, paymentMethod := range c.PaymentMethods {
		m.PaymentMethods = append(m.PaymentMethods, PaymentMethodModelFromDomain(c.ID, paymentMethod))
	}

	m.Orders = make([]*OrderModel, 0, len(c.Orders))
	for _, order := range c.Orders {
		m.Orders = append(m.Orders, OrderModelFromDomain(c.ID, order))
	}
}

// CustomerModelFromDomain creates a new persistence model from a domain Customer aggregate.
func CustomerModelFromDomain(c *customer.Customer) *CustomerModel {
	m := &CustomerModel{}
	m.FromDomain(c)
	return m
}

// AddressModel is the persistence model for a customer delivery address.
type AddressModel struct {
	BaseModel
	CustomerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Country      string    `gorm:"type:varchar(100);not null"`
	City         string    `gorm:"type:varchar(100);not null"`
	State        string    `gorm:"type:varchar(100);not null"`
	ZipCode      string    `gorm:"type:varchar(20);not null"`
	AddressLine1 string    `gorm:"type:varchar(200);not null"`
	AddressLine2 string    `gorm:"type:varchar(200);not null"`
}

// TableName returns the table name for GORM
func (AddressModel) TableName() string {
	return "customer_addresses"
}

// ToDomain converts the persistence model to a domain Address entity.
func (m *AddressModel) ToDomain() *customer.Address {
	return &customer.Address{
		BaseEntity:   m.BaseModel.ToDomain(),
		Country:      geography.Country(m.Country),
		City:         geography.City(m.City),
		State:        geography.State(m.State),
		ZipCode:      m.ZipCode,
		AddressLine1: m.AddressLine1,
		AddressLine2: m.AddressLine2,
	}
}

// AddressModelFromDomain creates a new persistence model from a domain Address entity.
func AddressModelFromDomain(customerID uuid.UUID, a *customer.Address) *AddressModel {
	m := &AddressModel{}
	m.FromDomainBaseEntity(a.BaseEntity)
	m.CustomerID = customerID
	m.Country = a.Country.String()
	m.City = a.City.String()
	m.State = a.State.String()
	m.ZipCode = a.ZipCode
	m.AddressLine1 = a.AddressLine1
	m.AddressLine2 = a.AddressLine2
	return m
}

// PaymentMethodModel is the persistence model for a stored card.
type PaymentMethodModel struct {
	BaseModel
	CustomerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	CardNumber     string    `gorm:"type:varchar(30);not null"`
	CardHolder     string    `gorm:"type:varchar(100);not null"`
	ExpirationDate string    `gorm:"type:varchar(10);not null"`
	SecurityCode   string    `gorm:"type:varchar(10);not null"`
}

// TableName returns the table name for GORM
func (PaymentMethodModel) TableName() string {
	return "customer_payment_methods"
}

// ToDomain converts the persistence model to a domain PaymentMethod entity.
func (m *PaymentMethodModel) ToDomain() *customer.PaymentMethod {
	return &customer.PaymentMethod{
		BaseEntity:     m.BaseModel.ToDomain(),
		CardNumber:     m.CardNumber,
		CardHolder:     m.CardHolder,
		ExpirationDate: m.ExpirationDate,
		SecurityCode:   m.SecurityCode,
	}
}

// PaymentMethodModelFromDomain creates a new persistence model from a domain PaymentMethod entity.
func PaymentMethodModelFromDomain(customerID uuid.UUID, p *customer.PaymentMethod) *PaymentMethodModel {
	m := &PaymentMethodModel{}
	m.FromDomainBaseEntity(p.BaseEntity)
	m.CustomerID = customerID
	m.CardNumber = p.CardNumber
	m.CardHolder = p.CardHolder
	m.ExpirationDate = p.ExpirationDate
	m.SecurityCode = p.SecurityCode
	return m
}

// OrderModel is the persistence model for a finalized order.
type OrderModel struct {
	BaseModel
	CustomerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Summary        string    `gorm:"type:text;not null"`
	DeliveryStatus string    `gorm:"type:varchar(20);not null"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts the persistence model to a domain Order entity.
func (m *OrderModel) ToDomain() *customer.Order {
	return &customer.Order{
		BaseEntity:     m.BaseModel.ToDomain(),
		Summary:        m.Summary,
		DeliveryStatus: customer.DeliveryStatus(m.DeliveryStatus),
	}
}

// OrderModelFromDomain creates a new persistence model from a domain Order entity.
func OrderModelFromDomain(customerID uuid.UUID, o *customer.Order) *OrderModel {
	m := &OrderModel{}
	m.FromDomainBaseEntity(o.BaseEntity)
	m.CustomerID = customerID
	m.Summary = o.Summary
	m.DeliveryStatus = o.DeliveryStatus.String()
	return m
}
