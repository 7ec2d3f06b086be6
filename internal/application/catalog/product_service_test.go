package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shoppy/backend/internal/domain/catalog"
	"github.com/shoppy/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context) ([]*catalog.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Search(ctx context.Context, query string) ([]*catalog.Product, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestProduct(t *testing.T, name string) *catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct(name, "A test product", decimal.NewFromInt(49), 10)
	require.NoError(t, err)
	return product
}

func TestProductService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates valid product", func(t *testing.T) {
		repo := new(MockProductRepository)
		service := NewProductService(repo)

		repo.On("Save", ctx, mock.AnythingOfType("*catalog.Product")).Return(nil)

		resp, err := service.Create(ctx, CreateProductRequest{
			Name:        "Keyboard",
			Description: "Mechanical keyboard",
			Price:       decimal.NewFromInt(49),
			Stock:       10,
		})
		require.NoError(t, err)
		assert.Equal(t, "Keyboard", resp.Name)
		assert.Equal(t, 10, resp.Stock)
		repo.AssertExpectations(t)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		repo := new(MockProductRepository)
		service := NewProductService(repo)

		_, err := service.Create(ctx, CreateProductRequest{
			Name:  "Keyboard",
			Price: decimal.NewFromInt(-1),
		})
		require.Error(t, err)
		repo.AssertNotCalled(t, "Save")
	})
}

func TestProductService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("returns existing product", func(t *testing.T) {
		repo := new(MockProductRepository)
		service := NewProductService(repo)
		product := newTestProduct(t, "Keyboard")

		repo.On("FindByID", ctx, product.ID).Return(product, nil)

		resp, err := service.Get(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, product.ID.String(), resp.ID)
	})

	t.Run("unknown product", func(t *testing.T) {
		repo := new(MockProductRepository)
		service := NewProductService(repo)
		id := uuid.New()

		repo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		_, err := service.Get(ctx, id)
		require.Error(t, err)
		assert.EqualError(t, err, "product not found")
	})
}

func TestProductService_List(t *testing.T) {
	ctx := context.Background()
	repo := new(MockProductRepository)
	service := NewProductService(repo)

	products := []*catalog.Product{newTestProduct(t, "Keyboard"), newTestProduct(t, "Mouse")}
	repo.On("FindAll", ctx).Return(products, nil)

	resp, err := service.List(ctx)
	require.NoError(t, err)
	assert.Len(t, resp, 2)
}

func TestProductService_Search(t *testing.T) {
	ctx := context.Background()
	repo := new(MockProductRepository)
	service := NewProductService(repo)

	repo.On("Search", ctx, "key").Return([]*catalog.Product{newTestProduct(t, "Keyboard")}, nil)

	resp, err := service.Search(ctx, "key")
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "Keyboard", resp[0].Name)
}

func TestProductService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("updates existing product", func(t *testing.T) {
		repo := new(MockProductRepository)
		service := NewProductService(repo)
		product := newTestProduct(t, "Keyboard")

		repo.On("FindByID", ctx, product.ID).Return(product, nil)
		repo.On("Save", ctx, product).Return(nil)

		resp, err := service.Update(ctx, product.ID, UpdateProductRequest{
			Name:        "Keyboard v2",
			Description: "Updated",
			Price:       decimal.NewFromInt(59),
			Stock:       5,
		})
		require.NoError(t, err)
		assert.Equal(t, "Keyboard v2", resp.Name)
		assert.Equal(t, 5, resp.Stock)
	})

	t.Run("unknown product", func(t *testing.T) {
		repo := new(MockProductRepository)
		service := NewProductService(repo)
		id := uuid.New()

		repo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		_, err := service.Update(ctx, id, UpdateProductRequest{
			Name:  "Keyboard",
			Price: decimal.NewFromInt(49),
		})
		require.Error(t, err)
		assert.EqualError(t, err, "product not found")
	})
}

func TestProductService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes existing product", func(t *testing.T) {
		repo := new(MockProductRepository)
		service := NewProductService(repo)
		product := newTestProduct(t, "Keyboard")

		repo.On("FindByID", ctx, product.ID).Return(product, nil)
		repo.On("Delete", ctx, product.ID).Return(nil)

		require.NoError(t, service.Delete(ctx, product.ID))
		repo.AssertExpectations(t)
	})

	t.Run("unknown product", func(t *testing.T) {
		repo := new(MockProductRepository)
		service := NewProductService(repo)
		id := uuid.New()

		repo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		err := service.Delete(ctx, id)
		require.Error(t, err)
		assert.EqualError(t, err, "product not found")
		repo.AssertNotCalled(t, "Delete")
	})
}
