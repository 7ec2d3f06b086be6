package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shoppy/backend/internal/domain/catalog"
	"github.com/shoppy/backend/internal/domain/shared"
)

// ProductService handles product-related business operations
type ProductService struct {
	products catalog.ProductRepository
}

// NewProductService creates a new ProductService
func NewProductService(products catalog.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

// Create creates a new product
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	product, err := catalog.NewProduct(req.Name, req.Description, req.Price, req.Stock)
	if err != nil {
		return nil, err
	}

	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}

	return ToProductResponse(product), nil
}

// Get returns a product by ID
func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.findProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// List returns all products
func (s *ProductService) List(ctx context.Context) ([]*ProductResponse, error) {
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToProductResponses(products), nil
}

// Search returns products whose name matches the query
func (s *ProductService) Search(ctx context.Context, query string) ([]*ProductResponse, error) {
	products, err := s.products.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	return ToProductResponses(products), nil
}

// Update replaces a product's attributes
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.findProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := product.Update(req.Name, req.Description, req.Price, req.Stock); err != nil {
		return nil, err
	}

	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}

	return ToProductResponse(product), nil
}

// Delete removes a product from the catalog
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.findProduct(ctx, id); err != nil {
		return err
	}
	return s.products.Delete(ctx, id)
}

func (s *ProductService) findProduct(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "product not found")
		}
		return nil, err
	}
	return product, nil
}
