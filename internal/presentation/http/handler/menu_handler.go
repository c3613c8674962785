package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mekdahl/barkassa-api/internal/application/service"
	"github.com/mekdahl/barkassa-api/internal/presentation/http/dto/request"
	"github.com/mekdahl/barkassa-api/internal/presentation/http/dto/response"
)

// MenuHandler handles menu catalog HTTP requests
type MenuHandler struct {
	menuService *service.MenuService
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(menuService *service.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// List handles listing all menu items
func (h *MenuHandler) List(c *gin.Context) {
	items, err := h.menuService.ListItems(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu items retrieved successfully", items)
}

// Get handles retrieving a single menu item
func (h *MenuHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid menu item ID")
		return
	}

	item, err := h.menuService.GetItem(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu item retrieved successfully", item)
}

// Create handles adding a menu item
func (h *MenuHandler) Create(c *gin.Context) {
	var req request.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.menuService.CreateItem(c.Request.Context(), &service.MenuItemInput{
		Name:      req.Name,
		Price:     req.Price,
		Category:  req.Category,
		Available: req.Available,
		Special:   req.Special,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Menu item created successfully", item)
}

// Update handles editing a menu item
func (h *MenuHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid menu item ID")
		return
	}

	var req request.UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.menuService.UpdateItem(c.Request.Context(), id, &service.MenuItemInput{
		Name:      req.Name,
		Price:     req.Price,
		Category:  req.Category,
		Available: req.Available,
		Special:   req.Special,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu item updated successfully", item)
}

// SetAvailability handles toggling whether an item can be sold
func (h *MenuHandler) SetAvailability(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid menu item ID")
		return
	}

	var req request.SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Available flag is required")
		return
	}

	item, err := h.menuService.SetAvailability(c.Request.Context(), id, *req.Available)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Menu item availability updated", item)
}

// Delete handles removing a menu item
func (h *MenuHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid menu item ID")
		return
	}

	if err := h.menuService.DeleteItem(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
