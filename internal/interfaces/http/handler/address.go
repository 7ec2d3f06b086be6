package handler

import (
	"github.com/gin-gonic/gin"
	customerapp "github.com/shoppy/backend/internal/application/customer"
	"github.com/shoppy/backend/internal/domain/geography"
)

// AddressHandler exposes the caller's delivery addresses
type AddressHandler struct {
	BaseHandler
	addressService *customerapp.AddressService
}

// NewAddressHandler creates a new AddressHandler
func NewAddressHandler(addressService *customerapp.AddressService) *AddressHandler {
	return &AddressHandler{addressService: addressService}
}

// RegisterRoutes registers address routes
func (h *AddressHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/addresses")
	{
		group.GET("", h.List)
		group.GET("/locations", h.Locations)
		group.GET("/:id", h.Get)
		group.POST("", h.Create)
		group.PUT("/:id", h.Update)
		group.DELETE("/:id", h.Delete)
	}
}

// List returns all addresses of the caller
func (h *AddressHandler) List(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	addresses, err := h.addressService.List(c.Request.Context(), principal)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, addresses)
}

// locationState is one selectable state with its valid zip codes
type locationState struct {
	Code     string   `json:"code"`
	Name     string   `json:"name"`
	ZipCodes []string `json:"zipCodes"`
}

// locationCity is one selectable city with its states
type locationCity struct {
	Code   string          `json:"code"`
	Name   string          `json:"name"`
	States []locationState `json:"states"`
}

// locationCountry is one selectable country with its cities
type locationCountry struct {
	Code   string         `json:"code"`
	Name   string         `json:"name"`
	Cities []locationCity `json:"cities"`
}

// Locations returns the selectable delivery geography tree
func (h *AddressHandler) Locations(c *gin.Context) {
	countries := make([]locationCountry, 0)
	for _, country := range geography.Countries() {
		cities := make([]locationCity, 0)
		for _, city := range country.Cities() {
			states := make([]locationState, 0)
			for _, state := range city.States() {
				states = append(states, locationState{
					Code:     state.String(),
					Name:     state.DisplayName(),
					ZipCodes: state.ZipCodes(),
				})
			}
			cities = append(cities, locationCity{
				Code:   city.String(),
				Name:   city.DisplayName(),
				States: states,
			})
		}
		countries = append(countries, locationCountry{
			Code:   country.String(),
			Name:   country.DisplayName(),
			Cities: cities,
		})
	}
	h.Success(c, countries)
}

// Get returns a single address
func (h *AddressHandler) Get(c *gin.Context) {
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

	address, err := h.addressService.Get(c.Request.Context(), principal, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, address)
}

// Create adds a new address for the caller
func (h *AddressHandler) Create(c *gin.Context) {
	principal, ok := getPrincipal(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req customerapp.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	address, err := h.addressService.Add(c.Request.Context(), principal, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, address)
}

// Update replaces an existing address
func (h *AddressHandler) Update(c *gin.Context) {
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

	var req customerapp.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	address, err := h.addressService.Update(c.Request.Context(), principal, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, address)
}

// Delete removes an address
func (h *AddressHandler) Delete(c *gin.Context) {
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

	if err := h.addressService.Remove(c.Request.Context(), principal, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
