package response

import (
	"time"

	"github.com/mekdahl/barkassa-api/internal/domain/entity"
	"github.com/mekdahl/barkassa-api/internal/domain/enum"
)

// ReceiptLineResponse is one merged receipt line.
type ReceiptLineResponse struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"`
	Special  bool   `json:"special"`
	Total    int64  `json:"total"`
}

// ReceiptResponse is the JSON shape of a receipt.
type ReceiptResponse struct {
	Timestamp     time.Time             `json:"timestamp"`
	PaymentMethod enum.PaymentMethod    `json:"payment_method"`
	Lines         []ReceiptLineResponse `json:"lines"`
	Total         int64                 `json:"total"`
}

// NewReceiptResponse flattens a receipt for the API.
func NewReceiptResponse(r *entity.Receipt) *ReceiptResponse {
	resp := &ReceiptResponse{
		Timestamp:     r.Timestamp,
		PaymentMethod: r.Payment,
		Lines:         make([]ReceiptLineResponse, 0, len(r.Lines())),
		Total:         r.Total(),
	}
	for _, line := range r.Lines() {
		resp.Lines = append(resp.Lines, ReceiptLineResponse{
			Name:     line.Item.Name,
			Quantity: line.Quantity,
			Price:    line.Item.Price,
			Special:  line.Item.Special,
			Total:    line.Total(),
		})
	}
	return resp
}

// NewReceiptResponses flattens a receipt slice.
func NewReceiptResponses(receipts []*entity.Receipt) []*ReceiptResponse {
	out := make([]*ReceiptResponse, 0, len(receipts))
	for _, r := range receipts {
		out = append(out, NewReceiptResponse(r))
	}
	return out
}
