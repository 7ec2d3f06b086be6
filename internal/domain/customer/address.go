package customer

import (
	"strings"

	"github.com/shoppy/backend/internal/domain/geography"
	"github.com/shoppy/backend/internal/domain/shared"
)

// Address is a delivery address owned by a customer. Checkouts reference
// it, they never copy it.
type Address struct {
	shared.BaseEntity
	Country      geography.Country
	City         geography.City
	State        geography.State
	ZipCode      string
	AddressLine1 string
	AddressLine2 string
}

// NewAddress creates a new address after validating the geographic containment chain
func NewAddress(country geography.Country, city geography.City, state geography.State, zipCode, line1, line2 string) (*Address, error) {
	if err := validateAddressFields(zipCode, line1, line2); err != nil {
		return nil, err
	}
	if err := geography.ValidateLocation(country, city, state, zipCode); err != nil {
		return nil, err
	}

	return &Address{
		BaseEntity:   shared.NewBaseEntity(),
		Country:      country,
		City:         city,
		State:        state,
		ZipCode:      zipCode,
		AddressLine1: line1,
		AddressLine2: line2,
	}, nil
}

// Update replaces the address fields, revalidating the location
func (a *Address) Update(country geography.Country, city geography.City, state geography.State, zipCode, line1, line2 string) error {
	if err := validateAddressFields(zipCode, line1, line2); err != nil {
		return err
	}
	if err := geography.ValidateLocation(country, city, state, zipCode); err != nil {
		return err
	}

	a.Country = country
	a.City = city
	a.State = state
	a.ZipCode = zipCode
	a.AddressLine1 = line1
	a.AddressLine2 = line2
	a.Touch()

	return nil
}

// Equals reports structural equality, used for duplicate detection.
// Zip and address lines compare case-insensitively.
func (a *Address) Equals(other *Address) bool {
	if other == nil {
		return false
	}
	return a.Country == other.Country &&
		a.City == other.City &&
		a.State == other.State &&
		strings.EqualFold(a.ZipCode, other.ZipCode) &&
		strings.EqualFold(a.AddressLine1, other.AddressLine1) &&
		strings.EqualFold(a.AddressLine2, other.AddressLine2)
}

func validateAddressFields(zipCode, line1, line2 string) error {
	if zipCode == "" {
		return shared.NewDomainError("INVALID_INPUT", "Zip code cannot be empty")
	}
	if line1 == "" {
		return shared.NewDomainError("INVALID_INPUT", "Address line 1 cannot be empty")
	}
	if line2 == "" {
		return shared.NewDomainError("INVALID_INPUT", "Address line 2 cannot be empty")
	}
	return nil
}
