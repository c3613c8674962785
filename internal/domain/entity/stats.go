package entity

import (
	"sort"

	"github.com/mekdahl/barkassa-api/internal/domain/enum"
)

// StatsCell is one cell of the item-by-payment-method grid.
type StatsCell struct {
	// Quantity is the accumulated unit count. It stays zero for special
	// items, whose accumulated figure is an amount, not a count.
	Quantity int   `json:"quantity"`
	Amount   int64 `json:"amount"`
}

// Stats is the cross-tabulation of a closed set of receipts: for every
// distinct item and payment method encountered, the accumulated
// quantity and amount, plus row, column and grand totals. It is built
// once by BuildStats and read-only afterwards.
//
// Ordering is deterministic. Payment methods keep their first-encounter
// order. Items are split into regular items first, ordered by name then
// price, followed by specials in first-encounter order. The same rule
// serves both the live summary and the printed report.
type Stats struct {
	Payments []enum.PaymentMethod `json:"payments"`
	Items    []Item               `json:"items"`
	// Cells is indexed [item][payment], aligned with Items and
	// Payments. Pairs with no sales hold the zero cell.
	Cells        [][]StatsCell `json:"cells"`
	RowTotals    []int64       `json:"row_totals"`
	ColumnTotals []int64       `json:"column_totals"`
	GrandTotal   int64         `json:"grand_total"`
}

// BuildStats derives the cross-tabulation from receipts already grouped
// by payment method. The receipts' slice order defines the payment
// column order. The whole input is aggregated in memory before totals
// are taken; nothing is streamed.
func BuildStats(receipts []*Receipt) *Stats {
	s := &Stats{}

	// Distinct items across all receipts, deduplicated by the same-line
	// rule, in first-encounter order.
	for _, r := range receipts {
		s.Payments = append(s.Payments, r.Payment)
		for _, line := range r.Lines() {
			if s.itemIndex(line.Item) < 0 {
				s.Items = append(s.Items, line.Item)
			}
		}
	}

	// Regular items first ordered by (name, price); specials after, in
	// the order they were first seen.
	sort.SliceStable(s.Items, func(i, j int) bool {
		a, b := s.Items[i], s.Items[j]
		if a.Special != b.Special {
			return !a.Special
		}
		if a.Special {
			return false
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.Price < b.Price
	})

	s.Cells = make([][]StatsCell, len(s.Items))
	for i := range s.Cells {
		s.Cells[i] = make([]StatsCell, len(s.Payments))
	}

	for col, r := range receipts {
		for _, line := range r.Lines() {
			row := s.itemIndex(line.Item)
			cell := &s.Cells[row][col]
			if !line.Item.Special {
				cell.Quantity += line.Quantity
			}
			cell.Amount += line.Total()
		}
	}

	s.RowTotals = make([]int64, len(s.Items))
	s.ColumnTotals = make([]int64, len(s.Payments))
	for i := range s.Items {
		for j := range s.Payments {
			amount := s.Cells[i][j].Amount
			s.RowTotals[i] += amount
			s.ColumnTotals[j] += amount
			s.GrandTotal += amount
		}
	}

	return s
}

// itemIndex returns the row index of the item matching per the
// same-line rule, or -1.
func (s *Stats) itemIndex(item Item) int {
	for i, existing := range s.Items {
		if existing.SameLine(item) {
			return i
		}
	}
	return -1
}

// Cell returns the accumulated cell for an (item, payment) pair by row
// and column index.
func (s *Stats) Cell(item, payment int) StatsCell {
	return s.Cells[item][payment]
}

// IsEmpty reports whether the date range matched no sales at all.
// Callers render a distinct "no sales" state instead of an empty table.
func (s *Stats) IsEmpty() bool {
	return len(s.Items) == 0 && len(s.Payments) == 0
}
