package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shoppy/backend/internal/domain/customer"
	"github.com/shoppy/backend/internal/domain/shared"
	"github.com/shoppy/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCustomerRepository implements customer.Repository using GORM
type GormCustomerRepository struct {
	db *Database
}

// NewGormCustomerRepository creates a new GORM customer repository
func NewGormCustomerRepository(db *Database) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

var _ customer.Repository = (*GormCustomerRepository)(nil)

// FindByID retrieves a customer with its owned collections
func (r *GormCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	return r.findOne(ctx, "id = ?", id)
}

// FindByUsername retrieves a customer by its unique username
func (r *GormCustomerRepository) FindByUsername(ctx context.Context, username string) (*customer.Customer, error) {
	return r.findOne(ctx, "username = ?", username)
}

// FindAll retrieves all customers with their owned collections
func (r *GormCustomerRepository) FindAll(ctx context.Context) ([]*customer.Customer, error) {
	var customerModels []models.CustomerModel
	err := r.db.DB.WithContext(ctx).
		Preload("Addresses").
		Preload("PaymentMethods").
		Preload("Orders").
		Order("username ASC").
		Find(&customerModels).Error
	if err != nil {
		return nil, err
	}

	customers := make([]*customer.Customer, 0, len(customerModels))
	for idx := range customerModels {
		customers = append(customers, customerModels[idx].ToDomain())
	}
	return customers, nil
}

// FindOwnerOfOrder retrieves the customer that owns the given order
func (r *GormCustomerRepository) FindOwnerOfOrder(ctx context.Context, orderID uuid.UUID) (*customer.Customer, error) {
	var orderModel models.OrderModel
	err := r.db.DB.WithContext(ctx).First(&orderModel, "id = ?", orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return r.FindByID(ctx, orderModel.CustomerID)
}

// Save persists the customer row and reconciles the owned collections:
// current rows are upserted, rows no longer on the aggregate are deleted.
func (r *GormCustomerRepository) Save(ctx context.Context, c *customer.Customer) error {
	model := models.CustomerModelFromDomain(c)

	return r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(model).Error; err != nil {
			return err
		}

		addressIDs := make([]uuid.UUID, 0, len(model.Addresses))
		for _, address := range model.Addresses {
			if err := tx.Save(address).Error; err != nil {
				return err
			}
			addressIDs = append(addressIDs, address.ID)
		}
		if err := deleteOrphans(tx, &models.AddressModel{}, c.ID, addressIDs); err != nil {
			return err
		}

		paymentMethodIDs := make([]uuid.UUID, 0, len(model.PaymentMethods))
		for _, paymentMethod := range model.PaymentMethods {
			if err := tx.Save(paymentMethod).Error; err != nil {
				return err
			}
			paymentMethodIDs = append(paymentMethodIDs, paymentMethod.ID)
		}
		if err := deleteOrphans(tx, &models.PaymentMethodModel{}, c.ID, paymentMethodIDs); err != nil {
			return err
		}

		orderIDs := make([]uuid.UUID, 0, len(model.Orders))
		for _, order := range model.Orders {
			if err := tx.Save(order).Error; err != nil {
				return err
			}
			orderIDs = append(orderIDs, order.ID)
		}
		return deleteOrphans(tx, &models.OrderModel{}, c.ID, orderIDs)
	})
}

// Delete removes a customer with everything it owns, including the
// current checkout.
func (r *GormCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var checkoutModel models.CheckoutModel
		err := tx.First(&checkoutModel, "customer_id = ?", id).Error
		if err == nil {
			if err := tx.Delete(&models.CheckoutItemModel{}, "checkout_id = ?", checkoutModel.ID).Error; err != nil {
				return err
			}
			if err := tx.Delete(&checkoutModel).Error; err != nil {
				return err
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := tx.Delete(&models.AddressModel{}, "customer_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.PaymentMethodModel{}, "customer_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.OrderModel{}, "customer_id = ?", id).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.CustomerModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

func (r *GormCustomerRepository) findOne(ctx context.Context, query string, arg any) (*customer.Customer, error) {
	var model models.CustomerModel
	err := r.db.DB.WithContext(ctx).
		Preload("Addresses").
		Preload("PaymentMethods").
		Preload("Orders").
		First(&model, query, arg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// deleteOrphans removes child rows of the customer whose IDs are no
// longer part of the aggregate.
func deleteOrphans(tx *gorm.DB, model any, customerID uuid.UUID, keptIDs []uuid.UUID) error {
	if len(keptIDs) == 0 {
		return tx.Delete(model, "customer_id = ?", customerID).Error
	}
	return tx.Delete(model, "customer_id = ? AND id NOT IN ?", customerID, keptIDs).Error
}
