package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	tests := []struct {
		name        string
		productName string
		price       decimal.Decimal
		stock       int
		wantErr     bool
	}{
		{
			name:        "valid product",
			productName: "Keyboard",
			price:       decimal.NewFromInt(49),
			stock:       10,
		},
		{
			name:        "empty name",
			productName: "",
			price:       decimal.NewFromInt(49),
			stock:       10,
			wantErr:     true,
		},
		{
			name:        "negative price",
			productName: "Keyboard",
			price:       decimal.NewFromInt(-1),
			stock:       10,
			wantErr:     true,
		},
		{
			name:        "negative stock",
			productName: "Keyboard",
			price:       decimal.NewFromInt(49),
			stock:       -1,
			wantErr:     true,
		},
		{
			name:        "zero price and stock allowed",
			productName: "Sticker",
			price:       decimal.Zero,
			stock:       0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product, err := NewProduct(tt.productName, "a description", tt.price, tt.stock)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, product)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.productName, product.Name)
			assert.NotEqual(t, product.ID.String(), "00000000-0000-0000-0000-000000000000")
		})
	}
}

func TestProductHasStock(t *testing.T) {
	product, err := NewProduct("Mouse", "", decimal.NewFromInt(20), 5)
	require.NoError(t, err)

	assert.True(t, product.HasStock(5))
	assert.True(t, product.HasStock(1))
	assert.False(t, product.HasStock(6))
}

func TestProductUpdate(t *testing.T) {
	product, err := NewProduct("Mouse", "old", decimal.NewFromInt(20), 5)
	require.NoError(t, err)

	require.NoError(t, product.Update("Gaming Mouse", "new", decimal.NewFromInt(35), 8))
	assert.Equal(t, "Gaming Mouse", product.Name)
	assert.Equal(t, 8, product.Stock)

	err = product.Update("", "new", decimal.NewFromInt(35), 8)
	assert.Error(t, err)
	assert.Equal(t, "Gaming Mouse", product.Name)
}
