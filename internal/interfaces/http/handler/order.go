package handler

import (
	"github.com/gin-gonic/gin"
	customerapp "github.com/shoppy/backend/internal/application/customer"
	"github.com/shoppy/backend/internal/domain/identity"
	"github.com/shoppy/backend/internal/interfaces/http/middleware"
)

// OrderHandler exposes placed orders. Everyone sees their own orders;
// updating delivery status and removing orders require the admin role.
type OrderHandler struct {
	BaseHandler
	orderService *customerapp.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService *customerapp.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// RegisterRoutes registers order routes
func (h *OrderHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/orders")
	{
		group.GET("", h.List)
		group.GET("/:username", h.ListByUsername)

		admin := group.Group("", middleware.RequireRole(identity.RoleAdmin))
		{
			admin.PUT("/:id", h.Update)
			admin.DELETE("/:id", h.Delete)
		}
	}
}

// List returns the caller's own orders
func (h *OrderHandler) List(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	orders, err := h.orderService.List(c.Request.Context(), principal)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, orders)
}

// ListByUsername returns the orders of the named customer
func (h *OrderHandler) ListByUsername(c *gin.Context) {
	orders, err := h.orderService.ListByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, orders)
}

// Update advances the delivery status of an order
func (h *OrderHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	var req customerapp.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	order, err := h.orderService.AdvanceDeliveryStatus(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// Delete removes an order
func (h *OrderHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	if err := h.orderService.Remove(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
