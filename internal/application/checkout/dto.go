package checkout

import (
	"github.com/shopspring/decimal"
	customerapp "github.com/shoppy/backend/internal/application/customer"
	"github.com/shoppy/backend/internal/domain/checkout"
)

// AddItemRequest is the input for adding or updating a cart item
type AddItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// ItemResponse is the public view of a cart item
type ItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
}

// CheckoutResponse is the public view of a checkout
type CheckoutResponse struct {
	ID            string                             `json:"id"`
	Items         []*ItemResponse                    `json:"items"`
	Address       *customerapp.AddressResponse       `json:"address"`
	PaymentMethod *customerapp.PaymentMethodResponse `json:"paymentMethod"`
}

// ToItemResponse converts a domain item to its public view
func ToItemResponse(item checkout.Item) *ItemResponse {
	return &ItemResponse{
		ID:          item.ID.String(),
		ProductID:   item.ProductID.String(),
		ProductName: item.ProductName,
		Price:       item.Price,
		Quantity:    item.Quantity,
	}
}

// ToItemResponses converts a slice of domain items
func ToItemResponses(items []checkout.Item) []*ItemResponse {
	responses := make([]*ItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, ToItemResponse(item))
	}
	return responses
}

// ToCheckoutResponse converts a domain checkout to its public view
func ToCheckoutResponse(c *checkout.Checkout) *CheckoutResponse {
	resp := &CheckoutResponse{
		ID:    c.ID.String(),
		Items: ToItemResponses(c.Items),
	}
	if c.Address != nil {
		resp.Address = customerapp.ToAddressResponse(c.Address)
	}
	if c.PaymentMethod != nil {
		resp.PaymentMethod = customerapp.ToPaymentMethodResponse(c.PaymentMethod)
	}
	return resp
}
