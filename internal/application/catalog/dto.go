package catalog

import (
	"github.com/shopspring/decimal"
	"github.com/shoppy/backend/internal/domain/catalog"
)

// CreateProductRequest is the input for product creation
type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required,max=200"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Stock       int             `json:"stock" binding:"min=0"`
}

// UpdateProductRequest is the input for product updates
type UpdateProductRequest struct {
	Name        string          `json:"name" binding:"required,max=200"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Stock       int             `json:"stock" binding:"min=0"`
}

// ProductResponse is the public view of a product
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
}

// ToProductResponse converts a domain product to its public view
func ToProductResponse(product *catalog.Product) *ProductResponse {
	return &ProductResponse{
		ID:          product.ID.String(),
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Stock:       product.Stock,
	}
}

// ToProductResponses converts a slice of domain products
func ToProductResponses(products []*catalog.Product) []*ProductResponse {
	responses := make([]*ProductResponse, 0, len(products))
	for _, product := range products {
		responses = append(responses, ToProductResponse(product))
	}
	return responses
}
