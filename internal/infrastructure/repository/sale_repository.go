package repository

import (
	"context"
	"time"

	"github.com/mekdahl/barkassa-api/internal/domain/entity"
	domainRepo "github.com/mekdahl/barkassa-api/internal/domain/repository"
	"gorm.io/gorm"
)

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *gorm.DB) domainRepo.SaleRepository {
	return &saleRepository{db: db}
}

func (r *saleRepository) CreateBatch(ctx context.Context, sales []entity.Sale) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&sales).Error
	})
}

// Rows returns raw rows in the half-open window [from, to). Enumerated
// columns are returned as stored text; decoding belongs to the
// aggregation core. Order is authoritative: sold_at, then insertion
// order within a transaction.
func (r *saleRepository) Rows(ctx context.Context, from, to time.Time) ([]domainRepo.SaleRow, error) {
	var rows []domainRepo.SaleRow

	err := r.db.WithContext(ctx).Raw(`
		SELECT sold_at, item_name, unit_price, quantity, special, category, payment_method
		FROM sales
		WHERE sold_at >= ? AND sold_at < ?
		ORDER BY sold_at ASC, created_at ASC
	`, from, to).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *saleRepository) RowsAt(ctx context.Context, soldAt time.Time) ([]domainRepo.SaleRow, error) {
	var rows []domainRepo.SaleRow

	err := r.db.WithContext(ctx).Raw(`
		SELECT sold_at, item_name, unit_price, quantity, special, category, payment_method
		FROM sales
		WHERE sold_at = ?
		ORDER BY created_at ASC
	`, soldAt).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *saleRepository) RecentRows(ctx context.Context, n int) ([]domainRepo.SaleRow, error) {
	var rows []domainRepo.SaleRow

	err := r.db.WithContext(ctx).Raw(`
		SELECT sold_at, item_name, unit_price, quantity, special, category, payment_method
		FROM sales
		WHERE sold_at IN (
			SELECT DISTINCT sold_at FROM sales ORDER BY sold_at DESC LIMIT ?
		)
		ORDER BY sold_at DESC, created_at ASC
	`, n).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *saleRepository) List(ctx context.Context, params *domainRepo.SaleFilterParams) ([]entity.Sale, int64, error) {
	var sales []entity.Sale
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Sale{})

	if params.Method != nil {
		query = query.Where("payment_method = ?", *params.Method)
	}
	if params.From != nil {
		query = query.Where("sold_at >= ?", *params.From)
	}
	if params.To != nil {
		query = query.Where("sold_at < ?", *params.To)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("sold_at DESC, created_at ASC").
		Find(&sales).Error

	return sales, total, err
}
