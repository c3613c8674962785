package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mekdahl/barkassa-api/internal/domain/entity"
	"github.com/mekdahl/barkassa-api/internal/domain/enum"
	"github.com/mekdahl/barkassa-api/internal/domain/repository"
)

// GroupBy selects the dimension raw sale rows are folded on.
type GroupBy int

const (
	// GroupByTimestamp folds each distinct transaction timestamp into
	// its own receipt. Used for recent-activity views and reprints.
	GroupByTimestamp GroupBy = iota
	// GroupByPayment collapses all transactions sharing a payment
	// method across the whole query window into one receipt. Used for
	// period summaries.
	GroupByPayment
)

// Summary is the result of a period report: receipts grouped by payment
// method plus the derived cross-tabulation.
type Summary struct {
	From     time.Time         `json:"from"`
	To       time.Time         `json:"to"`
	Receipts []*entity.Receipt `json:"-"`
	Stats    *entity.Stats     `json:"stats"`
}

// ReportService folds persisted sale rows into receipts and period
// summaries. It holds no state beyond the injected repository; separate
// report builds may run concurrently.
type ReportService struct {
	saleRepo repository.SaleRepository
}

// NewReportService creates a new report service
func NewReportService(saleRepo repository.SaleRepository) *ReportService {
	return &ReportService{saleRepo: saleRepo}
}

// decodeRow converts a raw storage row into a sale record, rejecting
// unknown enumerated values and invalid quantities. Any failure aborts
// the aggregation that requested it: a single bad row must never leak
// into a financial total.
func decodeRow(row repository.SaleRow) (entity.Sale, error) {
	category, err := enum.ParseCategory(row.Category)
	if err != nil {
		return entity.Sale{}, fmt.Errorf("decode sale row %q: %w", row.ItemName, err)
	}
	method, err := enum.ParsePaymentMethod(row.PaymentMethod)
	if err != nil {
		return entity.Sale{}, fmt.Errorf("decode sale row %q: %w", row.ItemName, err)
	}
	if row.Quantity < 1 {
		return entity.Sale{}, fmt.Errorf("decode sale row %q: %w", row.ItemName, entity.ErrInvalidQuantity)
	}
	return entity.Sale{
		SoldAt:        row.SoldAt,
		ItemName:      row.ItemName,
		UnitPrice:     row.UnitPrice,
		Quantity:      row.Quantity,
		Special:       row.Special,
		Category:      category,
		PaymentMethod: method,
	}, nil
}

// Aggregate folds an ordered row stream into receipts, one per group
// key, in the order groups are first encountered. Row order is
// preserved into each receipt, and the sum over all output receipts
// equals the sum of the input rows' line totals exactly.
func (s *ReportService) Aggregate(rows []repository.SaleRow, groupBy GroupBy) ([]*entity.Receipt, error) {
	byKey := make(map[string]*entity.Receipt)
	var receipts []*entity.Receipt

	for _, row := range rows {
		sale, err := decodeRow(row)
		if err != nil {
			return nil, err
		}

		var key string
		switch groupBy {
		case GroupByPayment:
			key = sale.PaymentMethod.String()
		default:
			key = sale.SoldAt.Format(time.RFC3339Nano)
		}

		receipt, ok := byKey[key]
		if !ok {
			receipt = entity.NewReceipt(sale.SoldAt, sale.PaymentMethod)
			byKey[key] = receipt
			receipts = append(receipts, receipt)
		}
		receipt.Insert(sale.Item(), sale.Quantity)
	}

	return receipts, nil
}

// BuildSummary builds the period report for the inclusive calendar-date
// range [from, to]: receipts grouped by payment method and the Stats
// cross-tabulation over them. An empty range is not an error; the
// resulting Stats reports IsEmpty.
func (s *ReportService) BuildSummary(ctx context.Context, from, to time.Time) (*Summary, error) {
	start := startOfDay(from)
	end := startOfDay(to).AddDate(0, 0, 1)

	rows, err := s.saleRepo.Rows(ctx, start, end)
	if err != nil {
		return nil, err
	}

	receipts, err := s.Aggregate(rows, GroupByPayment)
	if err != nil {
		return nil, err
	}

	return &Summary{
		From:     start,
		To:       end,
		Receipts: receipts,
		Stats:    entity.BuildStats(receipts),
	}, nil
}

// RecentReceipts returns the latest n transactions as receipts, newest
// first.
func (s *ReportService) RecentReceipts(ctx context.Context, n int) ([]*entity.Receipt, error) {
	rows, err := s.saleRepo.RecentRows(ctx, n)
	if err != nil {
		return nil, err
	}
	return s.Aggregate(rows, GroupByTimestamp)
}

// ReceiptAt rebuilds the receipt of a single transaction for reprint.
func (s *ReportService) ReceiptAt(ctx context.Context, soldAt time.Time) (*entity.Receipt, error) {
	rows, err := s.saleRepo.RowsAt(ctx, soldAt)
	if err != nil {
		return nil, err
	}
	receipts, err := s.Aggregate(rows, GroupByTimestamp)
	if err != nil {
		return nil, err
	}
	if len(receipts) == 0 {
		return nil, nil
	}
	return receipts[0], nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
