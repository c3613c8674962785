package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/mekdahl/barkassa-api/internal/domain/enum"
	"gorm.io/gorm"
)

// MenuItem represents a sellable item in the venue's catalog. Its name
// is the item's identity: the catalog never holds two items with the
// same name. Prices are stored in öre and never leave integer math.
type MenuItem struct {
	ID       uuid.UUID     `gorm:"type:uuid;primary_key" json:"id"`
	Name     string        `gorm:"size:255;uniqueIndex;not null" json:"name"`
	Price    int64         `gorm:"not null" json:"price"`
	Category enum.Category `gorm:"size:50;not null" json:"category"`
	// Available is nullable: nil means availability is not tracked for
	// this item.
	Available *bool `json:"available,omitempty"`
	// Special marks an item whose price is an already-realized sale
	// amount rather than a per-unit price. Repeated sales of a special
	// accumulate by summing price, not quantity.
	Special   bool           `gorm:"not null;default:false" json:"special"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new menu item
func (m *MenuItem) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the MenuItem model
func (MenuItem) TableName() string {
	return "menu_items"
}

// Snapshot captures the item's sale-time state. Sale records store the
// snapshot, not a reference, so later catalog edits never rewrite
// history.
func (m *MenuItem) Snapshot() Item {
	return Item{
		Name:     m.Name,
		Price:    m.Price,
		Category: m.Category,
		Special:  m.Special,
	}
}

// Item is the immutable sale-time snapshot of a menu item. It is the
// unit of identity for receipt lines and report rows.
type Item struct {
	Name     string        `json:"name"`
	Price    int64         `json:"price"`
	Category enum.Category `json:"category"`
	Special  bool          `json:"special"`
}

// SameLine reports whether two item snapshots belong to the same
// receipt line. Names must match; beyond that a price match is required
// unless either item is special, because specials carry varying
// cumulative prices under one name.
func (i Item) SameLine(other Item) bool {
	if i.Name != other.Name {
		return false
	}
	if i.Special || other.Special {
		return true
	}
	return i.Price == other.Price
}
