package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mekdahl/barkassa-api/internal/domain/enum"
	"gorm.io/gorm"
)

// ErrInvalidQuantity is returned when a sale row carries a quantity
// below one.
var ErrInvalidQuantity = errors.New("sale quantity must be at least 1")

// Sale is one line of a transaction: an immutable fact recorded at sale
// time. Rows are only ever inserted, never updated, so the item fields
// are a snapshot of the menu item as it was sold (catalog prices can
// change later). All rows of one transaction share the same SoldAt
// timestamp.
type Sale struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	SoldAt        time.Time          `gorm:"not null;index" json:"sold_at"`
	ItemName      string             `gorm:"size:255;not null" json:"item_name"`
	UnitPrice     int64              `gorm:"not null" json:"unit_price"`
	Quantity      int                `gorm:"not null" json:"quantity"`
	Special       bool               `gorm:"not null;default:false" json:"special"`
	Category      enum.Category      `gorm:"size:50;not null" json:"category"`
	PaymentMethod enum.PaymentMethod `gorm:"size:50;not null;index" json:"payment_method"`
	CreatedAt     time.Time          `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new sale row
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}

// Item returns the sale-time item snapshot carried by this row.
func (s *Sale) Item() Item {
	return Item{
		Name:     s.ItemName,
		Price:    s.UnitPrice,
		Category: s.Category,
		Special:  s.Special,
	}
}

// LineTotal returns this row's contribution in öre: price times
// quantity, or just the price for a special (its price is already the
// realized amount).
func (s *Sale) LineTotal() int64 {
	if s.Special {
		return s.UnitPrice
	}
	return s.UnitPrice * int64(s.Quantity)
}
