package checkout

import (
	"context"
	"errors"

	"github.com/google/uuid"
	customerapp "github.com/shoppy/backend/internal/application/customer"
	"github.com/shoppy/backend/internal/domain/catalog"
	"github.com/shoppy/backend/internal/domain/checkout"
	"github.com/shoppy/backend/internal/domain/customer"
	"github.com/shoppy/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// Service drives the checkout flow: cart mutations, address and payment
// selection, and turning the cart into an order.
//
// A checkout only exists while it has items. It is created when the
// first item is added and deleted when the last item is removed or an
// order is placed.
type Service struct {
	checkouts       checkout.Repository
	customers       customer.Repository
	products        catalog.ProductRepository
	customerService *customerapp.CustomerService
	logger          *zap.Logger
}

// NewService creates a new checkout Service
func NewService(
	checkouts checkout.Repository,
	customers customer.Repository,
	products catalog.ProductRepository,
	customerService *customerapp.CustomerService,
	logger *zap.Logger,
) *Service {
	return &Service{
		checkouts:       checkouts,
		customers:       customers,
		products:        products,
		customerService: customerService,
		logger:          logger,
	}
}

// Get returns the current checkout of the principal's customer
func (s *Service) Get(ctx context.Context, principal customerapp.Principal) (*CheckoutResponse, error) {
	_, chk, err := s.getCheckout(ctx, principal)
	if err != nil {
		return nil, err
	}
	return ToCheckoutResponse(chk), nil
}

// ListItems returns the items of the current checkout
func (s *Service) ListItems(ctx context.Context, principal customerapp.Principal) ([]*ItemResponse, error) {
	_, chk, err := s.getCheckout(ctx, principal)
	if err != nil {
		return nil, err
	}
	return ToItemResponses(chk.Items), nil
}

// GetAddress returns the delivery address assigned to the checkout
func (s *Service) GetAddress(ctx context.Context, principal customerapp.Principal) (*customerapp.AddressResponse, error) {
	_, chk, err := s.getCheckout(ctx, principal)
	if err != nil {
		return nil, err
	}
	if chk.Address == nil {
		return nil, nil
	}
	return customerapp.ToAddressResponse(chk.Address), nil
}

// GetPaymentMethod returns the payment method assigned to the checkout
func (s *Service) GetPaymentMethod(ctx context.Context, principal customerapp.Principal) (*customerapp.PaymentMethodResponse, error) {
	_, chk, err := s.getCheckout(ctx, principal)
	if err != nil {
		return nil, err
	}
	if chk.PaymentMethod == nil {
		return nil, nil
	}
	return customerapp.ToPaymentMethodResponse(chk.PaymentMethod), nil
}

// AddItem puts a product into the cart. The stock check happens before
// the cart is touched so a failed add leaves the checkout unchanged.
func (s *Service) AddItem(ctx context.Context, principal customerapp.Principal, productID uuid.UUID, quantity int) (*ItemResponse, error) {
	product, err := s.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !product.HasStock(quantity) {
		return nil, shared.ErrInsufficientStock
	}

	chk, err := s.getCheckoutOrCreate(ctx, principal)
	if err != nil {
		return nil, err
	}

	item, err := checkout.NewItem(product.ID, product.Name, product.Price, quantity)
	if err != nil {
		return nil, err
	}

	if err := chk.AddItem(*item); err != nil {
		return nil, err
	}

	if err := s.checkouts.Save(ctx, chk); err != nil {
		return nil, err
	}

	return ToItemResponse(*item), nil
}

// UpdateItem changes the quantity of a product already in the cart
func (s *Service) UpdateItem(ctx context.Context, principal customerapp.Principal, productID uuid.UUID, quantity int) (*ItemResponse, error) {
	product, err := s.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !product.HasStock(quantity) {
		return nil, shared.ErrInsufficientStock
	}

	_, chk, err := s.getCheckout(ctx, principal)
	if err != nil {
		return nil, err
	}

	item, err := checkout.NewItem(product.ID, product.Name, product.Price, quantity)
	if err != nil {
		return nil, err
	}

	if err := chk.UpdateItem(*item); err != nil {
		return nil, err
	}

	if err := s.checkouts.Save(ctx, chk); err != nil {
		return nil, err
	}

	return ToItemResponse(*chk.FindItemByProduct(productID)), nil
}

// RemoveItem takes a product out of the cart. Removing the last item
// deletes the checkout itself.
func (s *Service) RemoveItem(ctx context.Context, principal customerapp.Principal, productID uuid.UUID) error {
	_, chk, err := s.getCheckout(ctx, principal)
	if err != nil {
		return err
	}

	if !chk.DeleteItemByProduct(productID) {
		return shared.NewDomainError("NOT_FOUND", "product not found")
	}

	if chk.IsEmpty() {
		return s.checkouts.Delete(ctx, chk.ID)
	}
	return s.checkouts.Save(ctx, chk)
}

// AssignAddress attaches one of the customer's addresses to the checkout
func (s *Service) AssignAddress(ctx context.Context, principal customerapp.Principal, addressID uuid.UUID) error {
	c, chk, err := s.getCheckout(ctx, principal)
	if err != nil {
		return err
	}

	address, err := c.FindAddress(addressID)
	if err != nil {
		return err
	}

	chk.AssignAddress(address)
	return s.checkouts.Save(ctx, chk)
}

// ClearAddress removes the delivery address from the checkout
func (s *Service) ClearAddress(ctx context.Context, principal customerapp.Principal) error {
	_, chk, err := s.getCheckout(ctx, principal)
	if err != nil {
		return err
	}

	chk.AssignAddress(nil)
	return s.checkouts.Save(ctx, chk)
}

// AssignPaymentMethod attaches one of the customer's payment methods to the checkout
func (s *Service) AssignPaymentMethod(ctx context.Context, principal customerapp.Principal, paymentMethodID uuid.UUID) error {
	c, chk, err := s.getCheckout(ctx, principal)
	if err != nil {
		return err
	}

	paymentMethod, err := c.FindPaymentMethod(paymentMethodID)
	if err != nil {
		return err
	}

	chk.AssignPaymentMethod(paymentMethod)
	return s.checkouts.Save(ctx, chk)
}

// ClearPaymentMethod removes the payment method from the checkout
func (s *Service) ClearPaymentMethod(ctx context.Context, principal customerapp.Principal) error {
	_, chk, err := s.getCheckout(ctx, principal)
	if err != nil {
		return err
	}

	chk.AssignPaymentMethod(nil)
	return s.checkouts.Save(ctx, chk)
}

// ProcessOrder finalizes the checkout into an order on the customer and
// deletes the checkout.
func (s *Service) ProcessOrder(ctx context.Context, principal customerapp.Principal) (*customerapp.OrderResponse, error) {
	c, chk, err := s.getCheckout(ctx, principal)
	if err != nil {
		return nil, err
	}

	order, err := checkout.Finalize(chk)
	if err != nil {
		return nil, err
	}

	c.AddOrder(order)
	if err := s.customers.Save(ctx, c); err != nil {
		return nil, err
	}

	if err := s.checkouts.Delete(ctx, chk.ID); err != nil {
		return nil, err
	}

	s.logger.Info("order placed",
		zap.String("customer_id", c.ID.String()),
		zap.String("order_id", order.ID.String()),
	)

	return customerapp.ToOrderResponse(order), nil
}

// getCheckout resolves the customer and its current checkout, failing
// when no checkout exists.
func (s *Service) getCheckout(ctx context.Context, principal customerapp.Principal) (*customer.Customer, *checkout.Checkout, error) {
	c, err := s.customerService.ResolveOrCreate(ctx, principal)
	if err != nil {
		return nil, nil, err
	}

	chk, err := s.checkouts.FindByCustomer(ctx, c.ID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, nil, shared.NewDomainError("NOT_FOUND", "checkout is not present")
		}
		return nil, nil, err
	}

	return c, chk, nil
}

// getCheckoutOrCreate resolves the current checkout, creating a fresh
// one when the customer has none.
func (s *Service) getCheckoutOrCreate(ctx context.Context, principal customerapp.Principal) (*checkout.Checkout, error) {
	c, err := s.customerService.ResolveOrCreate(ctx, principal)
	if err != nil {
		return nil, err
	}

	chk, err := s.checkouts.FindByCustomer(ctx, c.ID)
	if err == nil {
		return chk, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	return checkout.NewCheckout(c.ID)
}

func (s *Service) findProduct(ctx context.Context, productID uuid.UUID) (*catalog.Product, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "product not found")
		}
		return nil, err
	}
	return product, nil
}
