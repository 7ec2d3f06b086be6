package customer

import (
	"strings"

	"github.com/shoppy/backend/internal/domain/shared"
)

// maskedDigits is how many leading card digits may ever leave the domain.
const maskedDigits = 4

// PaymentMethod is a stored card credential owned by a customer.
// The card is stored, never charged.
type PaymentMethod struct {
	shared.BaseEntity
	CardNumber     string
	CardHolder     string
	ExpirationDate string
	SecurityCode   string
}

// NewPaymentMethod creates a new card payment method
func NewPaymentMethod(cardNumber, cardHolder, expirationDate, securityCode string) (*PaymentMethod, error) {
	if err := validateCard(cardNumber, cardHolder, expirationDate, securityCode); err != nil {
		return nil, err
	}

	return &PaymentMethod{
		BaseEntity:     shared.NewBaseEntity(),
		CardNumber:     cardNumber,
		CardHolder:     cardHolder,
		ExpirationDate: expirationDate,
		SecurityCode:   securityCode,
	}, nil
}

// Update replaces the card fields
func (p *PaymentMethod) Update(cardNumber, cardHolder, expirationDate, securityCode string) error {
	if err := validateCard(cardNumber, cardHolder, expirationDate, securityCode); err != nil {
		return err
	}

	p.CardNumber = cardNumber
	p.CardHolder = cardHolder
	p.ExpirationDate = expirationDate
	p.SecurityCode = securityCode
	p.Touch()

	return nil
}

// Equals reports duplicate equality, which is by card number only
func (p *PaymentMethod) Equals(other *PaymentMethod) bool {
	return other != nil && p.CardNumber == other.CardNumber
}

// StartingNumbers returns the first four digits of the card number,
// the only part allowed in summaries and responses.
func (p *PaymentMethod) StartingNumbers() string {
	return p.CardNumber[:maskedDigits]
}

// MaskedNumber returns the card number with everything past the
// starting digits replaced by asterisks.
func (p *PaymentMethod) MaskedNumber() string {
	return p.StartingNumbers() + strings.Repeat("*", len(p.CardNumber)-maskedDigits)
}

func validateCard(cardNumber, cardHolder, expirationDate, securityCode string) error {
	if len(cardNumber) < maskedDigits {
		return shared.NewDomainError("INVALID_INPUT", "Card number is too short")
	}
	if cardHolder == "" {
		return shared.NewDomainError("INVALID_INPUT", "Card holder cannot be empty")
	}
	if expirationDate == "" {
		return shared.NewDomainError("INVALID_INPUT", "Expiration date cannot be empty")
	}
	if securityCode == "" {
		return shared.NewDomainError("INVALID_INPUT", "Security code cannot be empty")
	}
	return nil
}
