package customer

import (
	"github.com/google/uuid"
	"github.com/shoppy/backend/internal/domain/shared"
)

// Customer is the identity-linked aggregate root. It owns its addresses,
// payment methods and order history; the current checkout references the
// customer from the checkout side.
type Customer struct {
	shared.BaseAggregateRoot
	Username       string
	Name           string
	Surname        string
	Email          string
	Addresses      []*Address
	PaymentMethods []*PaymentMethod
	Orders         []*Order
}

// NewCustomer creates a new customer from identity claims
func NewCustomer(username, name, surname, email string) (*Customer, error) {
	if username == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Username cannot be empty")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Name cannot be empty")
	}
	if surname == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Surname cannot be empty")
	}

	return &Customer{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Username:          username,
		Name:              name,
		Surname:           surname,
		Email:             email,
		Addresses:         make([]*Address, 0),
		PaymentMethods:    make([]*PaymentMethod, 0),
		Orders:            make([]*Order, 0),
	}, nil
}

// AddAddress appends an address, rejecting structural duplicates
func (c *Customer) AddAddress(address *Address) error {
	if err := c.checkForDuplicatedAddresses(address); err != nil {
		return err
	}
	c.Addresses = append(c.Addresses, address)
	c.Touch()
	return nil
}

// FindAddress returns the address with the given ID
func (c *Customer) FindAddress(id uuid.UUID) (*Address, error) {
	for _, address := range c.Addresses {
		if address.ID == id {
			return address, nil
		}
	}
	return nil, shared.NewDomainError("NOT_FOUND", "Address not found")
}

// UpdateAddress replaces the fields of an existing address.
// The duplicate check runs against the incoming value first, matching
// the add path.
func (c *Customer) UpdateAddress(id uuid.UUID, incoming *Address) error {
	if err := c.checkForDuplicatedAddresses(incoming); err != nil {
		return err
	}
	current, err := c.FindAddress(id)
	if err != nil {
		return err
	}
	if err := current.Update(incoming.Country, incoming.City, incoming.State, incoming.ZipCode, incoming.AddressLine1, incoming.AddressLine2); err != nil {
		return err
	}
	c.Touch()
	return nil
}

// RemoveAddress deletes the address with the given ID
func (c *Customer) RemoveAddress(id uuid.UUID) error {
	for idx, address := range c.Addresses {
		if address.ID == id {
			c.Addresses = append(c.Addresses[:idx], c.Addresses[idx+1:]...)
			c.Touch()
			return nil
		}
	}
	return shared.NewDomainError("NOT_FOUND", "Address not found")
}

func (c *Customer) checkForDuplicatedAddresses(address *Address) error {
	for _, existing := range c.Addresses {
		if existing.Equals(address) {
			return shared.NewDomainError("ALREADY_EXISTS", "Address already existing")
		}
	}
	return nil
}

// AddPaymentMethod appends a payment method, rejecting duplicate card numbers
func (c *Customer) AddPaymentMethod(paymentMethod *PaymentMethod) error {
	if err := c.checkForDuplicatedPaymentMethods(paymentMethod); err != nil {
		return err
	}
	c.PaymentMethods = append(c.PaymentMethods, paymentMethod)
	c.Touch()
	return nil
}

// FindPaymentMethod returns the payment method with the given ID
func (c *Customer) FindPaymentMethod(id uuid.UUID) (*PaymentMethod, error) {
	for _, paymentMethod := range c.PaymentMethods {
		if paymentMethod.ID == id {
			return paymentMethod, nil
		}
	}
	return nil, shared.NewDomainError("NOT_FOUND", "Payment method not found")
}

// UpdatePaymentMethod replaces the fields of an existing payment method.
// The duplicate check only applies when the card number changes.
func (c *Customer) UpdatePaymentMethod(id uuid.UUID, incoming *PaymentMethod) error {
	current, err := c.FindPaymentMethod(id)
	if err != nil {
		return err
	}
	if current.CardNumber != incoming.CardNumber {
		if err := c.checkForDuplicatedPaymentMethods(incoming); err != nil {
			return err
		}
	}
	if err := current.Update(incoming.CardNumber, incoming.CardHolder, incoming.ExpirationDate, incoming.SecurityCode); err != nil {
		return err
	}
	c.Touch()
	return nil
}

// RemovePaymentMethod deletes the payment method with the given ID
func (c *Customer) RemovePaymentMethod(id uuid.UUID) error {
	for idx, paymentMethod := range c.PaymentMethods {
		if paymentMethod.ID == id {
			c.PaymentMethods = append(c.PaymentMethods[:idx], c.PaymentMethods[idx+1:]...)
			c.Touch()
			return nil
		}
	}
	return shared.NewDomainError("NOT_FOUND", "Payment method not exists")
}

func (c *Customer) checkForDuplicatedPaymentMethods(paymentMethod *PaymentMethod) error {
	for _, existing := range c.PaymentMethods {
		if existing.Equals(paymentMethod) {
			return shared.NewDomainError("ALREADY_EXISTS", "Payment method already existing")
		}
	}
	return nil
}

// AddOrder appends a finalized order to the customer's history
func (c *Customer) AddOrder(order *Order) {
	c.Orders = append(c.Orders, order)
	c.Touch()
}

// FindOrder returns the order with the given ID
func (c *Customer) FindOrder(id uuid.UUID) (*Order, error) {
	for _, order := range c.Orders {
		if order.ID == id {
			return order, nil
		}
	}
	return nil, shared.NewDomainError("NOT_FOUND", "Order not found")
}

// RemoveOrder deletes the order with the given ID
func (c *Customer) RemoveOrder(id uuid.UUID) error {
	for idx, order := range c.Orders {
		if order.ID == id {
			c.Orders = append(c.Orders[:idx], c.Orders[idx+1:]...)
			c.Touch()
			return nil
		}
	}
	return shared.NewDomainError("NOT_FOUND", "Order not found")
}
