package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/mekdahl/barkassa-api/internal/domain/entity"
	"github.com/mekdahl/barkassa-api/internal/domain/repository"
)

// fakeSaleRepository keeps rows in memory in insertion order, the same
// contract the SQL implementation provides.
type fakeSaleRepository struct {
	rows []repository.SaleRow
	err  error
}

func (f *fakeSaleRepository) CreateBatch(_ context.Context, sales []entity.Sale) error {
	if f.err != nil {
		return f.err
	}
	for _, s := range sales {
		f.rows = append(f.rows, repository.SaleRow{
			SoldAt:        s.SoldAt,
			ItemName:      s.ItemName,
			UnitPrice:     s.UnitPrice,
			Quantity:      s.Quantity,
			Special:       s.Special,
			Category:      s.Category.String(),
			PaymentMethod: s.PaymentMethod.String(),
		})
	}
	return nil
}

func (f *fakeSaleRepository) Rows(_ context.Context, from, to time.Time) ([]repository.SaleRow, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []repository.SaleRow
	for _, row := range f.rows {
		if !row.SoldAt.Before(from) && row.SoldAt.Before(to) {
			out = append(out, row)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].SoldAt.Before(out[j].SoldAt) })
	return out, nil
}

func (f *fakeSaleRepository) RowsAt(_ context.Context, soldAt time.Time) ([]repository.SaleRow, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []repository.SaleRow
	for _, row := range f.rows {
		if row.SoldAt.Equal(soldAt) {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeSaleRepository) RecentRows(_ context.Context, n int) ([]repository.SaleRow, error) {
	if f.err != nil {
		return nil, f.err
	}
	var stamps []time.Time
	seen := make(map[time.Time]bool)
	for _, row := range f.rows {
		if !seen[row.SoldAt] {
			seen[row.SoldAt] = true
			stamps = append(stamps, row.SoldAt)
		}
	}
	sort.Slice(stamps, func(i, j int) bool { return stamps[i].After(stamps[j]) })
	if len(stamps) > n {
		stamps = stamps[:n]
	}

	var out []repository.SaleRow
	for _, stamp := range stamps {
		for _, row := range f.rows {
			if row.SoldAt.Equal(stamp) {
				out = append(out, row)
			}
		}
	}
	return out, nil
}

func (f *fakeSaleRepository) List(_ context.Context, params *repository.SaleFilterParams) ([]entity.Sale, int64, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	var out []entity.Sale
	for _, row := range f.rows {
		sale, err := decodeRow(row)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, sale)
	}
	return out, int64(len(out)), nil
}

// fakeMenuRepository is an in-memory catalog keyed by name.
type fakeMenuRepository struct {
	items []entity.MenuItem
}

func (f *fakeMenuRepository) add(item entity.MenuItem) {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	f.items = append(f.items, item)
}

func (f *fakeMenuRepository) Create(_ context.Context, item *entity.MenuItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	f.items = append(f.items, *item)
	return nil
}

func (f *fakeMenuRepository) Update(_ context.Context, item *entity.MenuItem) error {
	for i := range f.items {
		if f.items[i].ID == item.ID {
			f.items[i] = *item
			return nil
		}
	}
	return nil
}

func (f *fakeMenuRepository) Delete(_ context.Context, id uuid.UUID) error {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeMenuRepository) GetByID(_ context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			item := f.items[i]
			return &item, nil
		}
	}
	return nil, nil
}

func (f *fakeMenuRepository) GetByName(_ context.Context, name string) (*entity.MenuItem, error) {
	for i := range f.items {
		if f.items[i].Name == name {
			item := f.items[i]
			return &item, nil
		}
	}
	return nil, nil
}

func (f *fakeMenuRepository) List(_ context.Context) ([]entity.MenuItem, error) {
	out := make([]entity.MenuItem, len(f.items))
	copy(out, f.items)
	return out, nil
}
