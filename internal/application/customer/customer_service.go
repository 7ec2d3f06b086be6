package customer

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shoppy/backend/internal/domain/customer"
	"github.com/shoppy/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// CustomerService manages customer records. Records are created lazily
// from the authenticated principal, so the customer directory never has
// an explicit signup step.
type CustomerService struct {
	customers customer.Repository
	logger    *zap.Logger
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customers customer.Repository, logger *zap.Logger) *CustomerService {
	return &CustomerService{
		customers: customers,
		logger:    logger,
	}
}

// ResolveOrCreate finds the customer for the principal, creating one
// from the principal's profile if it does not exist yet.
func (s *CustomerService) ResolveOrCreate(ctx context.Context, principal Principal) (*customer.Customer, error) {
	existing, err := s.customers.FindByUsername(ctx, principal.Username)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	created, err := customer.NewCustomer(principal.Username, principal.GivenName, principal.FamilyName, principal.Email)
	if err != nil {
		return nil, err
	}

	if err := s.customers.Save(ctx, created); err != nil {
		return nil, err
	}

	s.logger.Info("customer created",
		zap.String("customer_id", created.ID.String()),
		zap.String("username", created.Username),
	)

	return created, nil
}

// GetProfile returns the principal's customer profile
func (s *CustomerService) GetProfile(ctx context.Context, principal Principal) (*CustomerResponse, error) {
	c, err := s.ResolveOrCreate(ctx, principal)
	if err != nil {
		return nil, err
	}
	return ToCustomerResponse(c), nil
}

// GetByUsername returns a customer by username
func (s *CustomerService) GetByUsername(ctx context.Context, username string) (*CustomerResponse, error) {
	c, err := s.customers.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Customer not found")
		}
		return nil, err
	}
	return ToCustomerResponse(c), nil
}

// Get returns a customer by ID
func (s *CustomerService) Get(ctx context.Context, id uuid.UUID) (*CustomerResponse, error) {
	c, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToCustomerResponse(c), nil
}

// List returns all customers
func (s *CustomerService) List(ctx context.Context) ([]*CustomerResponse, error) {
	all, err := s.customers.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*CustomerResponse, 0, len(all))
	for _, c := range all {
		responses = append(responses, ToCustomerResponse(c))
	}
	return responses, nil
}

// DeleteByUsername removes a customer record and everything it owns
func (s *CustomerService) DeleteByUsername(ctx context.Context, username string) error {
	c, err := s.customers.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("NOT_FOUND", "Customer not found")
		}
		return err
	}

	return s.customers.Delete(ctx, c.ID)
}

func (s *CustomerService) findByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	c, err := s.customers.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Customer not found")
		}
		return nil, err
	}
	return c, nil
}
