package customer

import (
	"context"

	"github.com/google/uuid"
	"github.com/shoppy/backend/internal/domain/customer"
	"github.com/shoppy/backend/internal/domain/geography"
)

// AddressService manages the delivery addresses of a customer
type AddressService struct {
	customerService *CustomerService
	customers       customer.Repository
}

// NewAddressService creates a new AddressService
func NewAddressService(customerService *CustomerService, customers customer.Repository) *AddressService {
	return &AddressService{
		customerService: customerService,
		customers:       customers,
	}
}

// List returns all addresses of the principal's customer
func (s *AddressService) List(ctx context.Context, principal Principal) ([]*AddressResponse, error) {
	c, err := s.customerService.ResolveOrCreate(ctx, principal)
	if err != nil {
		return nil, err
	}
	return ToAddressResponses(c.Addresses), nil
}

// Get returns a single address by ID
func (s *AddressService) Get(ctx context.Context, principal Principal, addressID uuid.UUID) (*AddressResponse, error) {
	c, err := s.customerService.ResolveOrCreate(ctx, principal)
	if err != nil {
		return nil, err
	}

	address, err := c.FindAddress(addressID)
	if err != nil {
		return nil, err
	}
	return ToAddressResponse(address), nil
}

// Add creates a new address for the principal's customer
func (s *AddressService) Add(ctx context.Context, principal Principal, req AddressRequest) (*AddressResponse, error) {
	c, err := s.customerService.ResolveOrCreate(ctx, principal)
	if err != nil {
		return nil, err
	}

	address, err := buildAddress(req)
	if err != nil {
		return nil, err
	}

	if err := c.AddAddress(address); err != nil {
		return nil, err
	}

	if err := s.customers.Save(ctx, c); err != nil {
		return nil, err
	}

	return ToAddressResponse(address), nil
}

// Update replaces an existing address
func (s *AddressService) Update(ctx context.Context, principal Principal, addressID uuid.UUID, req AddressRequest) (*AddressResponse, error) {
	c, err := s.customerService.ResolveOrCreate(ctx, principal)
	if err != nil {
		return nil, err
	}

	incoming, err := buildAddress(req)
	if err != nil {
		return nil, err
	}

	if err := c.UpdateAddress(addressID, incoming); err != nil {
		return nil, err
	}

	if err := s.customers.Save(ctx, c); err != nil {
		return nil, err
	}

	updated, err := c.FindAddress(addressID)
	if err != nil {
		return nil, err
	}
	return ToAddressResponse(updated), nil
}

// Remove deletes an address from the principal's customer
func (s *AddressService) Remove(ctx context.Context, principal Principal, addressID uuid.UUID) error {
	c, err := s.customerService.ResolveOrCreate(ctx, principal)
	if err != nil {
		return err
	}

	if err := c.RemoveAddress(addressID); err != nil {
		return err
	}

	return s.customers.Save(ctx, c)
}

func buildAddress(req AddressRequest) (*customer.Address, error) {
	country, err := geography.ParseCountry(req.Country)
	if err != nil {
		return nil, err
	}
	city, err := geography.ParseCity(req.City)
	if err != nil {
		return nil, err
	}
	state, err := geography.ParseState(req.State)
	if err != nil {
		return nil, err
	}

	return customer.NewAddress(country, city, state, req.ZipCode, req.AddressLine1, req.AddressLine2)
}
