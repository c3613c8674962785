package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mekdahl/barkassa-api/internal/application/service"
	"github.com/mekdahl/barkassa-api/internal/domain/enum"
	"github.com/mekdahl/barkassa-api/internal/domain/repository"
	"github.com/mekdahl/barkassa-api/internal/presentation/http/dto/request"
	"github.com/mekdahl/barkassa-api/internal/presentation/http/dto/response"
	"github.com/mekdahl/barkassa-api/pkg/pagination"
)

// SaleHandler handles sale HTTP requests
type SaleHandler struct {
	saleService *service.SaleService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(saleService *service.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// Record handles ringing up a transaction
func (h *SaleHandler) Record(c *gin.Context) {
	var req request.RecordSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	method, err := enum.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	input := &service.RecordSaleInput{Method: method}
	for _, item := range req.Items {
		input.Items = append(input.Items, service.SaleItemInput{
			Name:     item.Name,
			Quantity: item.Quantity,
			Amount:   item.Amount,
		})
	}

	receipt, err := h.saleService.RecordSale(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sale recorded successfully", response.NewReceiptResponse(receipt))
}

// List handles listing raw sale rows with filters and pagination
func (h *SaleHandler) List(c *gin.Context) {
	var filter request.SaleFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.SaleFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
	}

	if filter.Method != "" {
		method, err := enum.ParsePaymentMethod(filter.Method)
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		params.Method = &method
	}

	if filter.From != "" {
		from, err := time.ParseInLocation("2006-01-02", filter.From, time.Local)
		if err != nil {
			response.BadRequest(c, "Invalid from date, expected YYYY-MM-DD")
			return
		}
		params.From = &from
	}

	if filter.To != "" {
		to, err := time.ParseInLocation("2006-01-02", filter.To, time.Local)
		if err != nil {
			response.BadRequest(c, "Invalid to date, expected YYYY-MM-DD")
			return
		}
		params.To = &to
	}

	result, err := h.saleService.ListSales(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Sales retrieved successfully", result)
}
