package repository

import (
	"context"
	"time"

	"github.com/mekdahl/barkassa-api/internal/domain/entity"
	"github.com/mekdahl/barkassa-api/internal/domain/enum"
	"github.com/mekdahl/barkassa-api/pkg/pagination"
)

// SaleRow is a raw persisted sale row as the storage layer returns it.
// Enumerated columns stay text-typed here; decoding them (and rejecting
// unknown values) is the aggregation core's job, so a bad row fails the
// report instead of silently defaulting.
type SaleRow struct {
	SoldAt        time.Time
	ItemName      string
	UnitPrice     int64
	Quantity      int
	Special       bool
	Category      string
	PaymentMethod string
}

// SaleFilterParams holds filters for listing persisted sales.
type SaleFilterParams struct {
	Pagination *pagination.PaginationParams
	Method     *enum.PaymentMethod
	From       *time.Time
	To         *time.Time
}

// SaleRepository defines persistence for sale rows. Rows are insert-only.
type SaleRepository interface {
	// CreateBatch persists all rows of one transaction atomically.
	CreateBatch(ctx context.Context, sales []entity.Sale) error

	// Rows returns raw rows with from <= sold_at < to, ordered by
	// sold_at then insertion order. Row order is authoritative for
	// aggregation.
	Rows(ctx context.Context, from, to time.Time) ([]SaleRow, error)

	// RowsAt returns the raw rows of the single transaction stamped
	// with the given timestamp.
	RowsAt(ctx context.Context, soldAt time.Time) ([]SaleRow, error)

	// RecentRows returns the rows of the most recent n transactions
	// (distinct timestamps), newest transaction first, rows of one
	// transaction in insertion order.
	RecentRows(ctx context.Context, n int) ([]SaleRow, error)

	// List returns decoded sale entities with pagination, for the
	// administrative sale listing.
	List(ctx context.Context, params *SaleFilterParams) ([]entity.Sale, int64, error)
}
