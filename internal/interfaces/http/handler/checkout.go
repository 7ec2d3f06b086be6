package handler

import (
	"github.com/gin-gonic/gin"
	checkoutapp "github.com/shoppy/backend/internal/application/checkout"
)

// CheckoutHandler exposes the checkout flow: cart mutations, address
// and payment selection, and order placement.
type CheckoutHandler struct {
	BaseHandler
	checkoutService *checkoutapp.Service
}

// NewCheckoutHandler creates a new CheckoutHandler
func NewCheckoutHandler(checkoutService *checkoutapp.Service) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// RegisterRoutes registers checkout routes
func (h *CheckoutHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/checkout")
	{
		group.GET("", h.Get)

		group.GET("/products", h.ListItems)
		group.POST("/products/:productId", h.AddItem)
		group.PUT("/products/:productId", h.UpdateItem)
		group.DELETE("/products/:productId", h.RemoveItem)

		group.GET("/address", h.GetAddress)
		group.POST("/address/:id", h.AssignAddress)
		group.DELETE("/address", h.ClearAddress)

		group.GET("/billing", h.GetPaymentMethod)
		group.POST("/billing/:id", h.AssignPaymentMethod)
		group.DELETE("/billing", h.ClearPaymentMethod)

		group.POST("/order", h.ProcessOrder)
	}
}

// Get returns the caller's current checkout
func (h *CheckoutHandler) Get(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	chk, err := h.checkoutService.Get(c.Request.Context(), principal)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, chk)
}

// ListItems returns the items of the caller's checkout
func (h *CheckoutHandler) ListItems(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	items, err := h.checkoutService.ListItems(c.Request.Context(), principal)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}

// AddItem puts a product into the cart, creating the checkout when
// the cart is the caller's first.
func (h *CheckoutHandler) AddItem(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	productID, err := parseIDParam(c, "productId")
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	var req checkoutapp.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	item, err := h.checkoutService.AddItem(c.Request.Context(), principal, productID, req.Quantity)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, item)
}

// UpdateItem changes the quantity of a product already in the cart
func (h *CheckoutHandler) UpdateItem(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	productID, err := parseIDParam(c, "productId")
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	var req checkoutapp.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	item, err := h.checkoutService.UpdateItem(c.Request.Context(), principal, productID, req.Quantity)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, item)
}

// RemoveItem takes a product out of the cart
func (h *CheckoutHandler) RemoveItem(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	productID, err := parseIDParam(c, "productId")
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.checkoutService.RemoveItem(c.Request.Context(), principal, productID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// GetAddress returns the delivery address assigned to the checkout
func (h *CheckoutHandler) GetAddress(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	address, err := h.checkoutService.GetAddress(c.Request.Context(), principal)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, address)
}

// AssignAddress attaches one of the caller's addresses to the checkout
func (h *CheckoutHandler) AssignAddress(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid address ID")
		return
	}

	if err := h.checkoutService.AssignAddress(c.Request.Context(), principal, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, nil)
}

// ClearAddress removes the delivery address from the checkout
func (h *CheckoutHandler) ClearAddress(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	if err := h.checkoutService.ClearAddress(c.Request.Context(), principal); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// GetPaymentMethod returns the payment method assigned to the checkout
func (h *CheckoutHandler) GetPaymentMethod(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	paymentMethod, err := h.checkoutService.GetPaymentMethod(c.Request.Context(), principal)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, paymentMethod)
}

// AssignPaymentMethod attaches one of the caller's payment methods to the checkout
func (h *CheckoutHandler) AssignPaymentMethod(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid payment method ID")
		return
	}

	if err := h.checkoutService.AssignPaymentMethod(c.Request.Context(), principal, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, nil)
}

// ClearPaymentMethod removes the payment method from the checkout
func (h *CheckoutHandler) ClearPaymentMethod(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	if err := h.checkoutService.ClearPaymentMethod(c.Request.Context(), principal); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ProcessOrder finalizes the checkout into an order
func (h *CheckoutHandler) ProcessOrder(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	order, err := h.checkoutService.ProcessOrder(c.Request.Context(), principal)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, order)
}
