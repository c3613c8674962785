package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mekdahl/barkassa-api/internal/domain/entity"
	"github.com/mekdahl/barkassa-api/internal/domain/enum"
	"github.com/mekdahl/barkassa-api/internal/domain/repository"
	"github.com/mekdahl/barkassa-api/pkg/apperror"
	"github.com/mekdahl/barkassa-api/pkg/pagination"
)

// SaleService records transactions against the menu catalog.
type SaleService struct {
	saleRepo repository.SaleRepository
	menuRepo repository.MenuRepository
}

// NewSaleService creates a new sale service
func NewSaleService(saleRepo repository.SaleRepository, menuRepo repository.MenuRepository) *SaleService {
	return &SaleService{saleRepo: saleRepo, menuRepo: menuRepo}
}

// SaleItemInput is one line of a transaction being rung up.
type SaleItemInput struct {
	Name     string
	Quantity int
	// Amount is the realized amount in öre for a special item. Ignored
	// for regular items, whose price comes from the catalog.
	Amount int64
}

// RecordSaleInput is a complete transaction: several lines settled with
// one payment method.
type RecordSaleInput struct {
	Method enum.PaymentMethod
	Items  []SaleItemInput
}

// RecordSale snapshots catalog prices, persists the transaction's rows
// atomically and returns the resulting receipt. All rows share one
// timestamp, which is the transaction's identity for later reprints.
func (s *SaleService) RecordSale(ctx context.Context, input *RecordSaleInput) (*entity.Receipt, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("A sale needs at least one item")
	}
	if _, err := enum.ParsePaymentMethod(input.Method.String()); err != nil {
		return nil, apperror.NewBadRequestError(err.Error())
	}

	catalog, err := s.menuRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]*entity.MenuItem, len(catalog))
	for i := range catalog {
		byName[catalog[i].Name] = &catalog[i]
	}

	soldAt := time.Now()
	receipt := entity.NewReceipt(soldAt, input.Method)
	sales := make([]entity.Sale, 0, len(input.Items))

	for _, line := range input.Items {
		menuItem, ok := byName[line.Name]
		if !ok {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Menu item %q", line.Name))
		}
		if menuItem.Available != nil && !*menuItem.Available {
			return nil, apperror.NewConflictError(fmt.Sprintf("%q is not available", line.Name))
		}
		if line.Quantity < 1 {
			return nil, apperror.NewBadRequestError(entity.ErrInvalidQuantity.Error())
		}

		item := menuItem.Snapshot()
		if item.Special && line.Amount > 0 {
			item.Price = line.Amount
		}

		sales = append(sales, entity.Sale{
			SoldAt:        soldAt,
			ItemName:      item.Name,
			UnitPrice:     item.Price,
			Quantity:      line.Quantity,
			Special:       item.Special,
			Category:      item.Category,
			PaymentMethod: input.Method,
		})
		receipt.Insert(item, line.Quantity)
	}

	if err := s.saleRepo.CreateBatch(ctx, sales); err != nil {
		return nil, err
	}

	return receipt, nil
}

// ListSales lists persisted sale rows with filtering and pagination.
func (s *SaleService) ListSales(ctx context.Context, params *repository.SaleFilterParams) (*pagination.PaginatedResult[entity.Sale], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	sales, total, err := s.saleRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	p := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(sales, p), nil
}
