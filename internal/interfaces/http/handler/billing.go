package handler

import (
	"github.com/gin-gonic/gin"
	customerapp "github.com/shoppy/backend/internal/application/customer"
)

// BillingHandler exposes the caller's stored payment methods
type BillingHandler struct {
	BaseHandler
	paymentMethodService *customerapp.PaymentMethodService
}

// NewBillingHandler creates a new BillingHandler
func NewBillingHandler(paymentMethodService *customerapp.PaymentMethodService) *BillingHandler {
	return &BillingHandler{paymentMethodService: paymentMethodService}
}

// RegisterRoutes registers billing routes
func (h *BillingHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/billing")
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)
		group.POST("", h.Create)
		group.PUT("/:id", h.Update)
		group.DELETE("/:id", h.Delete)
	}
}

// List returns all payment methods of the caller
func (h *BillingHandler) List(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	paymentMethods, err := h.paymentMethodService.List(c.Request.Context(), principal)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, paymentMethods)
}

// Get returns a single payment method
func (h *BillingHandler) Get(c *gin.Context) {
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

	paymentMethod, err := h.paymentMethodService.Get(c.Request.Context(), principal, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, paymentMethod)
}

// Create stores a new payment method for the caller
func (h *BillingHandler) Create(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req customerapp.PaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	paymentMethod, err := h.paymentMethodService.Add(c.Request.Context(), principal, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, paymentMethod)
}

// Update replaces an existing payment method
func (h *BillingHandler) Update(c *gin.Context) {
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

	var req customerapp.PaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	paymentMethod, err := h.paymentMethodService.Update(c.Request.Context(), principal, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, paymentMethod)
}

// Delete removes a payment method
func (h *BillingHandler) Delete(c *gin.Context) {
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

	if err := h.paymentMethodService.Remove(c.Request.Context(), principal, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
