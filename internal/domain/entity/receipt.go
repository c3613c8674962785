package entity

import (
	"time"

	"github.com/mekdahl/barkassa-api/internal/domain/enum"
)

// ReceiptLine is one merged line of a receipt.
type ReceiptLine struct {
	Item     Item `json:"item"`
	Quantity int  `json:"quantity"`
}

// Total returns the line's amount in öre. A special line's price is the
// accumulated amount itself; a regular line multiplies by quantity.
func (l *ReceiptLine) Total() int64 {
	if l.Item.Special {
		return l.Item.Price
	}
	return l.Item.Price * int64(l.Quantity)
}

// Receipt is an insertion-ordered collection of merged item lines for
// one transaction or one aggregation group (all sales under one payment
// method in a period). It is built through Insert during aggregation
// and read-only afterwards.
type Receipt struct {
	Timestamp time.Time
	Payment   enum.PaymentMethod

	lines []*ReceiptLine
	total int64
}

// NewReceipt creates an empty receipt seeded with its group's timestamp
// and payment method.
func NewReceipt(timestamp time.Time, payment enum.PaymentMethod) *Receipt {
	return &Receipt{Timestamp: timestamp, Payment: payment}
}

// Insert merges (item, amount) into the receipt. An existing line
// matches per Item.SameLine; specials accumulate by summing price while
// regular items accumulate quantity. New lines keep insertion order.
// The running total is maintained here so Total is O(1).
func (r *Receipt) Insert(item Item, amount int) {
	for _, line := range r.lines {
		if !line.Item.SameLine(item) {
			continue
		}
		if line.Item.Special || item.Special {
			contribution := item.Price
			if !item.Special {
				contribution = item.Price * int64(amount)
			}
			if !line.Item.Special {
				// Fold the regular line's realized amount into a
				// cumulative special price so no money is lost in the
				// conversion.
				line.Item.Price = line.Total()
				line.Item.Special = true
				line.Quantity = 1
			}
			line.Item.Price += contribution
			r.total += contribution
		} else {
			line.Quantity += amount
			r.total += item.Price * int64(amount)
		}
		return
	}

	line := &ReceiptLine{Item: item, Quantity: amount}
	r.lines = append(r.lines, line)
	r.total += line.Total()
}

// Lines returns the receipt's lines in insertion order. The slice is
// shared; callers must not mutate it.
func (r *Receipt) Lines() []*ReceiptLine {
	return r.lines
}

// Total returns the receipt sum in öre, maintained incrementally at
// insert time.
func (r *Receipt) Total() int64 {
	return r.total
}

// IsEmpty reports whether the receipt holds no lines.
func (r *Receipt) IsEmpty() bool {
	return len(r.lines) == 0
}
