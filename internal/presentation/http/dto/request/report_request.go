package request

// SaleFilterRequest carries list filters for raw sale rows. Dates are
// YYYY-MM-DD.
type SaleFilterRequest struct {
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
	Method  string `form:"method"`
	From    string `form:"from"`
	To      string `form:"to"`
}

// SummaryRequest bounds a period report. Both dates are inclusive.
type SummaryRequest struct {
	From string `form:"from" binding:"required"`
	To   string `form:"to" binding:"required"`
}
