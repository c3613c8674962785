package request

// SaleItemRequest is one line of a transaction being recorded. Amount
// is the realized öre amount for special items and ignored otherwise.
type SaleItemRequest struct {
	Name     string `json:"name" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
	Amount   int64  `json:"amount" binding:"min=0"`
}

// RecordSaleRequest is a complete transaction.
type RecordSaleRequest struct {
	PaymentMethod string            `json:"payment_method" binding:"required"`
	Items         []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UnlockRequest carries the register PIN.
type UnlockRequest struct {
	PIN string `json:"pin" binding:"required"`
}
