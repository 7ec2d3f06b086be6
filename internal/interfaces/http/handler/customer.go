package handler

import (
	"github.com/gin-gonic/gin"
	customerapp "github.com/shoppy/backend/internal/application/customer"
	"github.com/shoppy/backend/internal/domain/identity"
	"github.com/shoppy/backend/internal/interfaces/http/middleware"
)

// CustomerHandler exposes the customer directory
type CustomerHandler struct {
	BaseHandler
	customerService *customerapp.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(customerService *customerapp.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// RegisterRoutes registers customer routes
func (h *CustomerHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/customers")
	{
		group.GET("", h.GetProfile)

		admin := group.Group("", middleware.RequireRole(identity.RoleAdmin))
		{
			admin.GET("/all", h.List)
			admin.GET("/:username", h.GetByUsername)
			admin.DELETE("/:username", h.Delete)
		}
	}
}

// GetProfile returns the caller's customer record, creating it on first access
func (h *CustomerHandler) GetProfile(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	profile, err := h.customerService.GetProfile(c.Request.Context(), principal)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, profile)
}

// List returns all customers
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.customerService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, customers)
}

// GetByUsername returns a customer by username
func (h *CustomerHandler) GetByUsername(c *gin.Context) {
	profile, err := h.customerService.GetByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, profile)
}

// Delete removes a customer and everything it owns
func (h *CustomerHandler) Delete(c *gin.Context) {
	if err := h.customerService.DeleteByUsername(c.Request.Context(), c.Param("username")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
