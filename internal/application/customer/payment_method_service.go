package customer

import (
	"context"

	"github.com/google/uuid"
	"github.com/shoppy/backend/internal/domain/customer"
)

// PaymentMethodService manages the stored payment methods of a customer
type PaymentMethodService struct {
	customerService *CustomerService
	customers       customer.Repository
}

// NewPaymentMethodService creates a new PaymentMethodService
func NewPaymentMethodService(customerService *CustomerService, customers customer.Repository) *PaymentMethodService {
	return &PaymentMethodService{
		customerService: customerService,
		customers:       customers,
	}
}

// List returns all payment methods of the principal's customer
func (s *PaymentMethodService) List(ctx context.Context, principal Principal) ([]*PaymentMethodResponse, error) {
	c, err := s.customerService.ResolveOrCreate(ctx, principal)
	if err != nil {
		return nil, err
	}
	return ToPaymentMethodResponses(c.PaymentMethods), nil
}

// Get returns a single payment method by ID
func (s *PaymentMethodService) Get(ctx context.Context, principal Principal, paymentMethodID uuid.UUID) (*PaymentMethodResponse, error) {
	c, err := s.customerService.ResolveOrCreate(ctx, principal)
	if err != nil {
		return nil, err
	}

	paymentMethod, err := c.FindPaymentMethod(paymentMethodID)
	if err != nil {
		return nil, err
	}
	return ToPaymentMethodResponse(paymentMethod), nil
}

// Add creates a new payment method for the principal's customer
func (s *PaymentMethodService) Add(ctx context.Context, principal Principal, req PaymentMethodRequest) (*PaymentMethodResponse, error) {
	c, err := s.customerService.ResolveOrCreate(ctx, principal)
	if err != nil {
		return nil, err
	}

	paymentMethod, err := customer.NewPaymentMethod(req.CardNumber, req.CardHolder, req.ExpirationDate, req.SecurityCode)
	if err != nil {
		return nil, err
	}

	if err := c.AddPaymentMethod(paymentMethod); err != nil {
		return nil, err
	}

	if err := s.customers.Save(ctx, c); err != nil {
		return nil, err
	}

	return ToPaymentMethodResponse(paymentMethod), nil
}

// Update replaces an existing payment method
func (s *PaymentMethodService) Update(ctx context.Context, principal Principal, paymentMethodID uuid.UUID, req PaymentMethodRequest) (*PaymentMethodResponse, error) {
	c, err := s.customerService.ResolveOrCreate(ctx, principal)
	if err != nil {
		return nil, err
	}

	incoming, err := customer.NewPaymentMethod(req.CardNumber, req.CardHolder, req.ExpirationDate, req.SecurityCode)
	if err != nil {
		return nil, err
	}

	if err := c.UpdatePaymentMethod(paymentMethodID, incoming); err != nil {
		return nil, err
	}

	if err := s.customers.Save(ctx, c); err != nil {
		return nil, err
	}

	updated, err := c.FindPaymentMethod(paymentMethodID)
	if err != nil {
		return nil, err
	}
	return ToPaymentMethodResponse(updated), nil
}

// Remove deletes a payment method from the principal's customer
func (s *PaymentMethodService) Remove(ctx context.Context, principal Principal, paymentMethodID uuid.UUID) error {
	c, err := s.customerService.ResolveOrCreate(ctx, principal)
	if err != nil {
		return err
	}

	if err := c.RemovePaymentMethod(paymentMethodID); err != nil {
		return err
	}

	return s.customers.Save(ctx, c)
}
