package customer

import (
	"time"

	"github.com/shoppy/backend/internal/domain/customer"
)

// Principal identifies the authenticated user whose customer record the
// services operate on. A customer record is created lazily from it the
// first time a request needs one.
type Principal struct {
	Username   string
	GivenName  string
	FamilyName string
	Email      string
}

// AddressRequest is the input for creating or updating an address
type AddressRequest struct {
	Country      string `json:"country" binding:"required"`
	City         string `json:"city" binding:"required"`
	State        string `json:"state" binding:"required"`
	ZipCode      string `json:"zipCode" binding:"required"`
	AddressLine1 string `json:"addressLine1" binding:"required"`
	AddressLine2 string `json:"addressLine2"`
}

// AddressResponse is the public view of an address
type AddressResponse struct {
	ID           string `json:"id"`
	Country      string `json:"country"`
	CountryName  string `json:"countryName"`
	City         string `json:"city"`
	CityName     string `json:"cityName"`
	State        string `json:"state"`
	StateName    string `json:"stateName"`
	ZipCode      string `json:"zipCode"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
}

// PaymentMethodRequest is the input for creating or updating a payment method
type PaymentMethodRequest struct {
	CardNumber     string `json:"cardNumber" binding:"required,min=4"`
	CardHolder     string `json:"cardHolder" binding:"required"`
	ExpirationDate string `json:"expirationDate" binding:"required"`
	SecurityCode   string `json:"securityCode" binding:"required"`
}

// PaymentMethodResponse is the public view of a payment method.
// The card number is masked and the security code never leaves the server.
type PaymentMethodResponse struct {
	ID             string `json:"id"`
	CardNumber     string `json:"cardNumber"`
	CardHolder     string `json:"cardHolder"`
	ExpirationDate string `json:"expirationDate"`
}

// UpdateOrderRequest is the input for advancing an order's delivery status
type UpdateOrderRequest struct {
	DeliveryStatus string `json:"deliveryStatus" binding:"required"`
}

// OrderResponse is the public view of an order
type OrderResponse struct {
	ID             string    `json:"id"`
	Summary        string    `json:"summary"`
	DeliveryStatus string    `json:"deliveryStatus"`
	CreatedAt      time.Time `json:"createdAt"`
}

// CustomerResponse is the public view of a customer
type CustomerResponse struct {
	ID             string                   `json:"id"`
	Username       string                   `json:"username"`
	Name           string                   `json:"name"`
	Surname        string                   `json:"surname"`
	Email          string                   `json:"email"`
	Addresses      []*AddressResponse       `json:"addresses"`
	PaymentMethods []*PaymentMethodResponse `json:"paymentMethods"`
}

// ToAddressResponse converts a domain address to its public view
func ToAddressResponse(address *customer.Address) *AddressResponse {
	return &AddressResponse{
		ID:           address.ID.String(),
		Country:      address.Country.String(),
		CountryName:  address.Country.DisplayName(),
		City:         address.City.String(),
		CityName:     address.City.DisplayName(),
		State:        address.State.String(),
		StateName:    address.State.DisplayName(),
		ZipCode:      address.ZipCode,
		AddressLine1: address.AddressLine1,
		AddressLine2: address.AddressLine2,
	}
}

// ToAddressResponses converts a slice of domain addresses
func ToAddressResponses(addresses []*customer.Address) []*AddressResponse {
	responses := make([]*AddressResponse, 0, len(addresses))
	for _, address := range addresses {
		responses = append(responses, ToAddressResponse(address))
	}
	return responses
}

// ToPaymentMethodResponse converts a domain payment method to its public view
func ToPaymentMethodResponse(paymentMethod *customer.PaymentMethod) *PaymentMethodResponse {
	return &PaymentMethodResponse{
		ID:             paymentMethod.ID.String(),
		CardNumber:     paymentMethod.MaskedNumber(),
		CardHolder:     paymentMethod.CardHolder,
		ExpirationDate: paymentMethod.ExpirationDate,
	}
}

// ToPaymentMethodResponses converts a slice of domain payment methods
func ToPaymentMethodResponses(paymentMethods []*customer.PaymentMethod) []*PaymentMethodResponse {
	responses := make([]*PaymentMethodResponse, 0, len(paymentMethods))
	for _, paymentMethod := range paymentMethods {
		responses = append(responses, ToPaymentMethodResponse(paymentMethod))
	}
	return responses
}

// ToOrderResponse converts a domain order to its public view
func ToOrderResponse(order *customer.Order) *OrderResponse {
	return &OrderResponse{
		ID:             order.ID.String(),
		Summary:        order.Summary,
		DeliveryStatus: order.DeliveryStatus.String(),
		CreatedAt:      order.CreatedAt,
	}
}

// ToOrderResponses converts a slice of domain orders
func ToOrderResponses(orders []*customer.Order) []*OrderResponse {
	responses := make([]*OrderResponse, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, ToOrderResponse(order))
	}
	return responses
}

// ToCustomerResponse converts a domain customer to its public view
func ToCustomerResponse(c *customer.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:             c.ID.String(),
		Username:       c.Username,
		Name:           c.Name,
		Surname:        c.Surname,
		Email:          c.Email,
		Addresses:      ToAddressResponses(c.Addresses),
		PaymentMethods: ToPaymentMethodResponses(c.PaymentMethods),
	}
}
