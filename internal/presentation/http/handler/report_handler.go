package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mekdahl/barkassa-api/internal/application/service"
	"github.com/mekdahl/barkassa-api/internal/presentation/http/dto/request"
	"github.com/mekdahl/barkassa-api/internal/presentation/http/dto/response"
)

// ReportHandler handles receipt and summary HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Recent handles listing the most recent receipts
func (h *ReportHandler) Recent(c *gin.Context) {
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			response.BadRequest(c, "Invalid limit")
			return
		}
		limit = n
	}

	receipts, err := h.reportService.RecentReceipts(c.Request.Context(), limit)
	if err != nil {
		respondAggregationError(c, err)
		return
	}

	response.OK(c, "Recent receipts retrieved successfully", response.NewReceiptResponses(receipts))
}

// Get handles retrieving one receipt by its transaction timestamp
func (h *ReportHandler) Get(c *gin.Context) {
	soldAt, err := time.Parse(time.RFC3339Nano, c.Param("timestamp"))
	if err != nil {
		response.BadRequest(c, "Invalid timestamp, expected RFC 3339")
		return
	}

	receipt, err := h.reportService.ReceiptAt(c.Request.Context(), soldAt)
	if err != nil {
		respondAggregationError(c, err)
		return
	}
	if receipt == nil {
		response.NotFound(c, "Receipt not found")
		return
	}

	response.OK(c, "Receipt retrieved successfully", response.NewReceiptResponse(receipt))
}

// Summary handles building the period cross-tabulation
func (h *ReportHandler) Summary(c *gin.Context) {
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

	summary, err := h.reportService.BuildSummary(c.Request.Context(), from, to)
	if err != nil {
		respondAggregationError(c, err)
		return
	}

	// Summary.To is the exclusive query bound; echo the inclusive
	// calendar date the caller asked for.
	response.OK(c, "Summary retrieved successfully", gin.H{
		"from":     summary.From,
		"to":       summary.To.AddDate(0, 0, -1),
		"receipts": response.NewReceiptResponses(summary.Receipts),
		"stats":    summary.Stats,
	})
}
