package customer

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shoppy/backend/internal/domain/customer"
	"github.com/shoppy/backend/internal/domain/shared"
)

// OrderService exposes the orders a checkout produced. Orders are owned
// by their customer; administrative operations locate the owner first.
type OrderService struct {
	customerService *CustomerService
	customers       customer.Repository
}

// NewOrderService creates a new OrderService
func NewOrderService(customerService *CustomerService, customers customer.Repository) *OrderService {
	return &OrderService{
		customerService: customerService,
		customers:       customers,
	}
}

// List returns all orders of the principal's customer
func (s *OrderService) List(ctx context.Context, principal Principal) ([]*OrderResponse, error) {
	c, err := s.customerService.ResolveOrCreate(ctx, principal)
	if err != nil {
		return nil, err
	}
	return ToOrderResponses(c.Orders), nil
}

// ListByUsername returns all orders of the named customer
func (s *OrderService) ListByUsername(ctx context.Context, username string) ([]*OrderResponse, error) {
	c, err := s.customers.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Customer not found")
		}
		return nil, err
	}
	return ToOrderResponses(c.Orders), nil
}

// Get returns a single order of the principal's customer
func (s *OrderService) Get(ctx context.Context, principal Principal, orderID uuid.UUID) (*OrderResponse, error) {
	c, err := s.customerService.ResolveOrCreate(ctx, principal)
	if err != nil {
		return nil, err
	}

	order, err := c.FindOrder(orderID)
	if err != nil {
		return nil, err
	}
	return ToOrderResponse(order), nil
}

// AdvanceDeliveryStatus moves an order to the requested delivery status
func (s *OrderService) AdvanceDeliveryStatus(ctx context.Context, orderID uuid.UUID, req UpdateOrderRequest) (*OrderResponse, error) {
	c, err := s.findOwner(ctx, orderID)
	if err != nil {
		return nil, err
	}

	order, err := c.FindOrder(orderID)
	if err != nil {
		return nil, err
	}

	if err := order.AdvanceDeliveryStatus(customer.DeliveryStatus(req.DeliveryStatus)); err != nil {
		return nil, err
	}

	if err := s.customers.Save(ctx, c); err != nil {
		return nil, err
	}

	return ToOrderResponse(order), nil
}

// Remove deletes an order from its owning customer
func (s *OrderService) Remove(ctx context.Context, orderID uuid.UUID) error {
	c, err := s.findOwner(ctx, orderID)
	if err != nil {
		return err
	}

	if err := c.RemoveOrder(orderID); err != nil {
		return err
	}

	return s.customers.Save(ctx, c)
}

func (s *OrderService) findOwner(ctx context.Context, orderID uuid.UUID) (*customer.Customer, error) {
	c, err := s.customers.FindOwnerOfOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Order not found")
		}
		return nil, err
	}
	return c, nil
}
