package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mekdahl/barkassa-api/internal/domain/enum"
	"github.com/mekdahl/barkassa-api/internal/domain/repository"
)

func saleRow(soldAt time.Time, name string, price int64, qty int, special bool, category, method string) repository.SaleRow {
	return repository.SaleRow{
		SoldAt:        soldAt,
		ItemName:      name,
		UnitPrice:     price,
		Quantity:      qty,
		Special:       special,
		Category:      category,
		PaymentMethod: method,
	}
}

func TestAggregateByTimestamp(t *testing.T) {
	svc := NewReportService(&fakeSaleRepository{})
	first := time.Date(2026, 6, 12, 19, 30, 0, 0, time.UTC)
	second := first.Add(5 * time.Minute)

	rows := []repository.SaleRow{
		saleRow(first, "Beer", 6500, 2, false, "alcohol", "cash"),
		saleRow(first, "Wine", 9000, 1, false, "alcohol", "cash"),
		saleRow(second, "Beer", 6500, 1, false, "alcohol", "card"),
	}

	receipts, err := svc.Aggregate(rows, GroupByTimestamp)
	require.NoError(t, err)
	require.Len(t, receipts, 2)

	assert.Equal(t, first, receipts[0].Timestamp)
	assert.Equal(t, int64(2*6500+9000), receipts[0].Total())
	assert.Equal(t, second, receipts[1].Timestamp)
	assert.Equal(t, int64(6500), receipts[1].Total())
}

func TestAggregateByPaymentMergesAcrossTransactions(t *testing.T) {
	svc := NewReportService(&fakeSaleRepository{})
	base := time.Date(2026, 6, 12, 19, 0, 0, 0, time.UTC)

	rows := []repository.SaleRow{
		saleRow(base, "Beer", 6500, 1, false, "alcohol", "cash"),
		saleRow(base.Add(time.Minute), "Beer", 6500, 2, false, "alcohol", "cash"),
		saleRow(base.Add(2*time.Minute), "Beer", 6500, 1, false, "alcohol", "swish"),
	}

	receipts, err := svc.Aggregate(rows, GroupByPayment)
	require.NoError(t, err)
	require.Len(t, receipts, 2)

	assert.Equal(t, enum.PaymentCash, receipts[0].Payment)
	require.Len(t, receipts[0].Lines(), 1)
	assert.Equal(t, 3, receipts[0].Lines()[0].Quantity)
	assert.Equal(t, enum.PaymentSwish, receipts[1].Payment)
}

func TestAggregateConservesMoney(t *testing.T) {
	svc := NewReportService(&fakeSaleRepository{})
	base := time.Date(2026, 6, 12, 18, 0, 0, 0, time.UTC)

	rows := []repository.SaleRow{
		saleRow(base, "Beer", 6500, 3, false, "alcohol", "cash"),
		saleRow(base, "Open Tab", 4000, 1, true, "other", "cash"),
		saleRow(base.Add(time.Hour), "Open Tab", 2500, 1, true, "other", "card"),
		saleRow(base.Add(2*time.Hour), "Wine", 9000, 2, false, "alcohol", "swish"),
	}

	var want int64
	for _, row := range rows {
		if row.Special {
			want += row.UnitPrice
		} else {
			want += row.UnitPrice * int64(row.Quantity)
		}
	}

	for _, groupBy := range []GroupBy{GroupByTimestamp, GroupByPayment} {
		receipts, err := svc.Aggregate(rows, groupBy)
		require.NoError(t, err)

		var got int64
		for _, r := range receipts {
			got += r.Total()
		}
		assert.Equal(t, want, got)
	}
}

func TestAggregateRejectsUnknownPaymentMethod(t *testing.T) {
	svc := NewReportService(&fakeSaleRepository{})
	base := time.Date(2026, 6, 12, 18, 0, 0, 0, time.UTC)

	rows := []repository.SaleRow{
		saleRow(base, "Beer", 6500, 1, false, "alcohol", "cash"),
		saleRow(base, "Wine", 9000, 1, false, "alcohol", "bitcoin"),
	}

	receipts, err := svc.Aggregate(rows, GroupByPayment)
	require.Error(t, err)
	assert.Nil(t, receipts)

	var unknown *enum.UnknownValueError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "payment method", unknown.Kind)
}

func TestAggregateRejectsInvalidQuantity(t *testing.T) {
	svc := NewReportService(&fakeSaleRepository{})
	base := time.Date(2026, 6, 12, 18, 0, 0, 0, time.UTC)

	rows := []repository.SaleRow{
		saleRow(base, "Beer", 6500, 0, false, "alcohol", "cash"),
	}

	_, err := svc.Aggregate(rows, GroupByTimestamp)
	assert.Error(t, err)
}

func TestBuildSummaryDateBounds(t *testing.T) {
	repo := &fakeSaleRepository{}
	svc := NewReportService(repo)
	ctx := context.Background()

	inside := time.Date(2026, 6, 12, 23, 59, 0, 0, time.UTC)
	lastDay := time.Date(2026, 6, 14, 0, 0, 1, 0, time.UTC)
	after := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

	repo.rows = []repository.SaleRow{
		saleRow(inside, "Beer", 6500, 1, false, "alcohol", "cash"),
		saleRow(lastDay, "Wine", 9000, 1, false, "alcohol", "card"),
		saleRow(after, "Beer", 6500, 5, false, "alcohol", "cash"),
	}

	from := time.Date(2026, 6, 12, 15, 30, 0, 0, time.UTC)
	to := time.Date(2026, 6, 14, 8, 0, 0, 0, time.UTC)

	summary, err := svc.BuildSummary(ctx, from, to)
	require.NoError(t, err)

	// Both bound dates are inclusive whole days; the day after is out.
	assert.Equal(t, int64(6500+9000), summary.Stats.GrandTotal)
	assert.Equal(t, time.Date(2026, 6, 12, 0, 0, 0, 0, time.UTC), summary.From)
	assert.Equal(t, time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC), summary.To)
}

func TestBuildSummaryEmptyRange(t *testing.T) {
	svc := NewReportService(&fakeSaleRepository{})

	summary, err := svc.BuildSummary(context.Background(), time.Now(), time.Now())
	require.NoError(t, err)
	assert.True(t, summary.Stats.IsEmpty())
	assert.Empty(t, summary.Receipts)
}

func TestRecentReceiptsNewestFirst(t *testing.T) {
	repo := &fakeSaleRepository{}
	svc := NewReportService(repo)
	base := time.Date(2026, 6, 12, 18, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		repo.rows = append(repo.rows, saleRow(base.Add(time.Duration(i)*time.Minute), "Beer", 6500, 1, false, "alcohol", "cash"))
	}

	receipts, err := svc.RecentReceipts(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, receipts, 3)
	assert.Equal(t, base.Add(4*time.Minute), receipts[0].Timestamp)
	assert.Equal(t, base.Add(2*time.Minute), receipts[2].Timestamp)
}

func TestReceiptAt(t *testing.T) {
	repo := &fakeSaleRepository{}
	svc := NewReportService(repo)
	soldAt := time.Date(2026, 6, 12, 20, 15, 0, 0, time.UTC)

	repo.rows = []repository.SaleRow{
		saleRow(soldAt, "Beer", 6500, 2, false, "alcohol", "swish"),
		saleRow(soldAt, "Wine", 9000, 1, false, "alcohol", "swish"),
	}

	receipt, err := svc.ReceiptAt(context.Background(), soldAt)
	require.NoError(t, err)
	require.NotNil(t, receipt)
	assert.Equal(t, int64(2*6500+9000), receipt.Total())

	missing, err := svc.ReceiptAt(context.Background(), soldAt.Add(time.Hour))
	require.NoError(t, err)
	assert.Nil(t, missing)
}
