package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mekdahl/barkassa-api/internal/domain/enum"
)

func beer() Item {
	return Item{Name: "Beer", Price: 6500, Category: enum.CategoryAlcohol}
}

func tab() Item {
	return Item{Name: "Open Tab", Price: 0, Category: enum.CategoryOther, Special: true}
}

// sumLines recomputes the total from scratch so tests can check the
// incrementally maintained one against it.
func sumLines(r *Receipt) int64 {
	var sum int64
	for _, line := range r.Lines() {
		sum += line.Total()
	}
	return sum
}

func TestReceiptInsertMergesSameLine(t *testing.T) {
	r := NewReceipt(time.Now(), enum.PaymentCash)

	r.Insert(beer(), 1)
	r.Insert(Item{Name: "Shot", Price: 4000, Category: enum.CategoryAlcohol}, 2)
	r.Insert(beer(), 1)

	lines := r.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "Beer", lines[0].Item.Name)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, "Shot", lines[1].Item.Name)
	assert.Equal(t, 2, lines[1].Quantity)
	assert.Equal(t, int64(2*6500+2*4000), r.Total())
	assert.Equal(t, sumLines(r), r.Total())
}

func TestReceiptInsertKeepsDistinctPricesApart(t *testing.T) {
	r := NewReceipt(time.Now(), enum.PaymentCard)

	r.Insert(beer(), 1)
	discounted := beer()
	discounted.Price = 5000
	r.Insert(discounted, 1)

	require.Len(t, r.Lines(), 2)
	assert.Equal(t, int64(6500+5000), r.Total())
}

func TestReceiptInsertAccumulatesSpecialPrice(t *testing.T) {
	r := NewReceipt(time.Now(), enum.PaymentSwish)

	first := tab()
	first.Price = 3000
	r.Insert(first, 1)

	second := tab()
	second.Price = 2000
	r.Insert(second, 1)

	lines := r.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, int64(5000), lines[0].Item.Price)
	assert.Equal(t, 1, lines[0].Quantity)
	assert.Equal(t, int64(5000), r.Total())
}

func TestReceiptInsertSpecialOverRegularConservesMoney(t *testing.T) {
	r := NewReceipt(time.Now(), enum.PaymentCash)

	r.Insert(beer(), 2)

	special := beer()
	special.Special = true
	special.Price = 1000
	r.Insert(special, 1)

	lines := r.Lines()
	require.Len(t, lines, 1)
	assert.True(t, lines[0].Item.Special)
	assert.Equal(t, int64(2*6500+1000), r.Total())
	assert.Equal(t, sumLines(r), r.Total())
}

func TestReceiptTotalMatchesLinesAfterEveryInsert(t *testing.T) {
	r := NewReceipt(time.Now(), enum.PaymentCash)

	inserts := []struct {
		item   Item
		amount int
	}{
		{beer(), 1},
		{Item{Name: "Wine", Price: 9000, Category: enum.CategoryAlcohol}, 3},
		{tabWithPrice(2500), 1},
		{beer(), 4},
		{tabWithPrice(1500), 1},
	}

	for _, in := range inserts {
		r.Insert(in.item, in.amount)
		assert.Equal(t, sumLines(r), r.Total())
	}
}

func tabWithPrice(price int64) Item {
	item := tab()
	item.Price = price
	return item
}

func TestReceiptIsEmpty(t *testing.T) {
	r := NewReceipt(time.Now(), enum.PaymentCash)
	assert.True(t, r.IsEmpty())

	r.Insert(beer(), 1)
	assert.False(t, r.IsEmpty())
}

func TestItemSameLine(t *testing.T) {
	a := beer()
	b := beer()
	assert.True(t, a.SameLine(b))

	b.Price = 5000
	assert.False(t, a.SameLine(b))

	b.Special = true
	assert.True(t, a.SameLine(b), "specials merge regardless of price")

	c := tab()
	d := tab()
	d.Price = 999
	assert.True(t, c.SameLine(d))

	e := beer()
	f := Item{Name: "Wine", Price: 6500, Category: enum.CategoryAlcohol}
	assert.False(t, e.SameLine(f))
}
