package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mekdahl/barkassa-api/internal/application/service"
	"github.com/mekdahl/barkassa-api/internal/presentation/http/dto/request"
	"github.com/mekdahl/barkassa-api/internal/presentation/http/dto/response"
)

// PrinterHandler handles receipt printing HTTP requests
type PrinterHandler struct {
	printerService *service.PrinterService
}

// NewPrinterHandler creates a new printer handler
func NewPrinterHandler(printerService *service.PrinterService) *PrinterHandler {
	return &PrinterHandler{printerService: printerService}
}

// Status handles reporting printer connectivity
func (h *PrinterHandler) Status(c *gin.Context) {
	response.OK(c, "Printer status retrieved successfully", h.printerService.GetStatus())
}

// PrintReceipt handles reprinting one receipt by transaction timestamp
func (h *PrinterHandler) PrintReceipt(c *gin.Context) {
	soldAt, err := time.Parse(time.RFC3339Nano, c.Param("timestamp"))
	if err != nil {
		response.BadRequest(c, "Invalid timestamp, expected RFC 3339")
		return
	}

	receipt, err := h.printerService.PrintReceipt(c.Request.Context(), soldAt)
	if err != nil {
		respondAggregationError(c, err)
		return
	}

	response.OK(c, "Receipt sent to printer", response.NewReceiptResponse(receipt))
}

// PrintSummary handles printing the period cross-tabulation
func (h *PrinterHandler) PrintSummary(c *gin.Context) {
	var req request.SummaryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Both from and to dates are required")
		return
	}

	from, err := time.ParseInLocation("2006-01-02", req.From, time.Local)
	if err != nil {
		response.BadRequest(c, "Invalid from date, expected YYYY-MM-DD")
		return
	}
	to, err := time.ParseInLocation("2006-01-02", req.To, time.Local)
	if err != nil {
		response.BadRequest(c, "Invalid to date, expected YYYY-MM-DD")
		return
	}
	if to.Before(from) {
		response.BadRequest(c, "The to date cannot precede the from date")
		return
	}

	summary, err := h.printerService.PrintSummary(c.Request.Context(), from, to)
	if err != nil {
		respondAggregationError(c, err)
		return
	}

	response.OK(c, "Summary sent to printer", gin.H{
		"from":        summary.From,
		"to":          summary.To.AddDate(0, 0, -1),
		"grand_total": summary.Stats.GrandTotal,
	})
}
