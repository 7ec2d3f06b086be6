package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shoppy/backend/internal/domain/checkout"
	"github.com/shoppy/backend/internal/domain/shared"
	"github.com/shoppy/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCheckoutRepository implements checkout.Repository using GORM
type GormCheckoutRepository struct {
	db *Database
}

// NewGormCheckoutRepository creates a new GORM checkout repository
func NewGormCheckoutRepository(db *Database) *GormCheckoutRepository {
	return &GormCheckoutRepository{db: db}
}

var _ checkout.Repository = (*GormCheckoutRepository)(nil)

// FindByCustomer retrieves the current checkout of a customer
func (r *GormCheckoutRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) (*checkout.Checkout, error) {
	return r.findOne(ctx, "customer_id = ?", customerID)
}

// FindByID retrieves a checkout by its ID
func (r *GormCheckoutRepository) FindByID(ctx context.Context, id uuid.UUID) (*checkout.Checkout, error) {
	return r.findOne(ctx, "id = ?", id)
}

// Save persists the checkout with an optimistic version check and
// replaces the item rows. The in-memory version is bumped after a
// successful update so the caller can keep saving the same instance.
func (r *GormCheckoutRepository) Save(ctx context.Context, chk *checkout.Checkout) error {
	model := models.CheckoutModelFromDomain(chk)
	updated := false

	err := r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.CheckoutModel{}).Where("id = ?", model.ID).Count(&count).Error; err != nil {
			return err
		}

		if count == 0 {
			if err := tx.Omit(clause.Associations).Create(model).Error; err != nil {
				return err
			}
		} else {
			result := tx.Model(&models.CheckoutModel{}).
				Where("id = ? AND version = ?", model.ID, model.Version).
				Updates(map[string]any{
					"customer_id":       model.CustomerID,
					"address_id":        model.AddressID,
					"payment_method_id": model.PaymentMethodID,
					"updated_at":        model.UpdatedAt,
					"version":           model.Version + 1,
				})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return shared.ErrConcurrencyConflict
			}
			updated = true
		}

		if err := tx.Delete(&models.CheckoutItemModel{}, "checkout_id = ?", model.ID).Error; err != nil {
			return err
		}
		if len(model.Items) == 0 {
			return nil
		}
		return tx.Create(model.Items).Error
	})
	if err != nil {
		return err
	}

	if updated {
		chk.IncrementVersion()
	}
	return nil
}

// Delete removes a checkout and its items; the referenced address and
// payment method belong to the customer and stay untouched.
func (r *GormCheckoutRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.CheckoutItemModel{}, "checkout_id = ?", id).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.CheckoutModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// findOne loads a checkout and resolves the address and payment method
// references through the owning customer's child tables.
func (r *GormCheckoutRepository) findOne(ctx context.Context, query string, arg any) (*checkout.Checkout, error) {
	var model models.CheckoutModel
	err := r.db.DB.WithContext(ctx).Preload("Items").First(&model, query, arg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}

	chk := model.ToDomain()

	if model.AddressID != nil {
		var addressModel models.AddressModel
		err := r.db.DB.WithContext(ctx).First(&addressModel, "id = ?", *model.AddressID).Error
		if err == nil {
			chk.Address = addressModel.ToDomain()
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if model.PaymentMethodID != nil {
		var paymentMethodModel models.PaymentMethodModel
		err := r.db.DB.WithContext(ctx).First(&paymentMethodModel, "id = ?", *model.PaymentMethodID).Error
		if err == nil {
			chk.PaymentMethod = paymentMethodModel.ToDomain()
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	return chk, nil
}
