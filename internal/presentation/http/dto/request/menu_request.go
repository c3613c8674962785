package request

// CreateMenuItemRequest is the payload for adding a menu item. Price is
// in öre.
type CreateMenuItemRequest struct {
	Name      string `json:"name" binding:"required"`
	Price     int64  `json:"price" binding:"min=0"`
	Category  string `json:"category" binding:"required"`
	Available *bool  `json:"available"`
	Special   bool   `json:"special"`
}

// UpdateMenuItemRequest is the payload for editing a menu item.
type UpdateMenuItemRequest struct {
	Name      string `json:"name" binding:"required"`
	Price     int64  `json:"price" binding:"min=0"`
	Category  string `json:"category" binding:"required"`
	Available *bool  `json:"available"`
	Special   bool   `json:"special"`
}

// SetAvailabilityRequest toggles an item's availability.
type SetAvailabilityRequest struct {
	Available *bool `json:"available" binding:"required"`
}
