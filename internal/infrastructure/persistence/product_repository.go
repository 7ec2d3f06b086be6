package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shoppy/backend/internal/domain/catalog"
	"github.com/shoppy/backend/internal/domain/shared"
	"github.com/shoppy/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormProductRepository implements catalog.ProductRepository using GORM
type GormProductRepository struct {
	db *Database
}

// NewGormProductRepository creates a new GORM product repository
func NewGormProductRepository(db *Database) *GormProductRepository {
	return &GormProductRepository{db: db}
}

var _ catalog.ProductRepository = (*GormProductRepository)(nil)

// FindByID retrieves a product by its ID
func (r *GormProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	var model models.ProductModel
	err := r.db.DB.WithContext(ctx).First(&model, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll retrieves all products ordered by name
func (r *GormProductRepository) FindAll(ctx context.Context) ([]*catalog.Product, error) {
	var productModels []models.ProductModel
	err := r.db.DB.WithContext(ctx).Order("name ASC").Find(&productModels).Error
	if err != nil {
		return nil, err
	}
	return toDomainProducts(productModels), nil
}

// Search retrieves products whose name or description contains the query,
// case-insensitively. LOWER(...) LIKE is used instead of ILIKE so the
// query also runs on SQLite in tests.
func (r *GormProductRepository) Search(ctx context.Context, query string) ([]*catalog.Product, error) {
	if query == "" {
		return r.FindAll(ctx)
	}

	pattern := "%" + query + "%"
	var productModels []models.ProductModel
	err := r.db.DB.WithContext(ctx).
		Where("LOWER(name) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", pattern, pattern).
		Order("name ASC").
		Find(&productModels).Error
	if err != nil {
		return nil, err
	}
	return toDomainProducts(productModels), nil
}

// Save persists a product (insert or update)
func (r *GormProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	model := models.ProductModelFromDomain(product)
	return r.db.DB.WithContext(ctx).Save(model).Error
}

// Delete removes a product by its ID
func (r *GormProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).Delete(&models.ProductModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func toDomainProducts(productModels []models.ProductModel) []*catalog.Product {
	products := make([]*catalog.Product, 0, len(productModels))
	for idx := range productModels {
		products = append(products, productModels[idx].ToDomain())
	}
	return products
}
