package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mekdahl/barkassa-api/internal/domain/entity"
	"github.com/mekdahl/barkassa-api/pkg/apperror"
	"github.com/mekdahl/barkassa-api/pkg/printer"
)

// VenueHeader is printed at the top of every receipt and summary.
type VenueHeader struct {
	Name    string
	Address string
	Phone   string
}

// PrinterService renders receipts and period summaries to ESC/POS and
// sends them to the configured printer.
type PrinterService struct {
	printer     printer.Printer
	reports     *ReportService
	header      VenueHeader
	printerType string
	width       int
}

// NewPrinterService creates a new printer service.
func NewPrinterService(p printer.Printer, reports *ReportService, header VenueHeader, printerType string, width int) *PrinterService {
	if width <= 0 {
		width = 32
	}
	return &PrinterService{
		printer:     p,
		reports:     reports,
		header:      header,
		printerType: printerType,
		width:       width,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// PrintReceipt rebuilds the transaction at the given timestamp and
// prints it.
func (s *PrinterService) PrintReceipt(ctx context.Context, soldAt time.Time) (*entity.Receipt, error) {
	receipt, err := s.reports.ReceiptAt(ctx, soldAt)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, apperror.NewNotFoundError("Receipt")
	}

	if err := s.printer.Print(s.FormatReceipt(receipt)); err != nil {
		log.Printf("Printer error (receipt %s): %v", soldAt.Format(time.RFC3339), err)
		return receipt, fmt.Errorf("failed to print receipt: %w", err)
	}
	return receipt, nil
}

// PrintSummary builds the period summary for [from, to] and prints it.
func (s *PrinterService) PrintSummary(ctx context.Context, from, to time.Time) (*Summary, error) {
	summary, err := s.reports.BuildSummary(ctx, from, to)
	if err != nil {
		return nil, err
	}

	if err := s.printer.Print(s.FormatSummary(summary)); err != nil {
		log.Printf("Printer error (summary %s): %v", from.Format("2006-01-02"), err)
		return summary, fmt.Errorf("failed to print summary: %w", err)
	}
	return summary, nil
}

// FormatReceipt converts a receipt into ESC/POS bytes.
func (s *PrinterService) FormatReceipt(r *entity.Receipt) []byte {
	doc := printer.NewDocument(s.width)

	s.printHeader(doc)

	doc.SetAlign(printer.AlignLeft).
		Separator('-').
		KeyValue("Date:", r.Timestamp.Format("2006-01-02 15:04")).
		KeyValue("Payment:", r.Payment.Label()).
		Separator('-')

	for _, line := range r.Lines() {
		if line.Item.Special {
			doc.KeyValue(line.Item.Name, Amount(line.Total()))
			continue
		}
		doc.ItemLine(line.Quantity, line.Item.Name, Amount(line.Total()))
		if line.Quantity > 1 {
			doc.TextF("  @ %s each", Amount(line.Item.Price))
		}
	}

	doc.Separator('-').
		SetBold(true).
		KeyValue("TOTAL:", Amount(r.Total())).
		SetBold(false)

	s.printFooter(doc)
	return doc.Bytes()
}

// FormatSummary converts a period summary into ESC/POS bytes: one
// column per payment method plus a row-total column, one row per item,
// then column totals and the grand total.
func (s *PrinterService) FormatSummary(sum *Summary) []byte {
	doc := printer.NewDocument(s.width)

	s.printHeader(doc)

	doc.SetAlign(printer.AlignLeft).
		Separator('-').
		KeyValue("From:", sum.From.Format("2006-01-02")).
		KeyValue("To:", sum.To.AddDate(0, 0, -1).Format("2006-01-02")).
		Separator('-')

	stats := sum.Stats
	if stats.IsEmpty() {
		doc.SetAlign(printer.AlignCenter).
			LineFeed().
			Text("No sales in this period").
			LineFeed().
			SetAlign(printer.AlignLeft)
		doc.FeedLines(3).PartialCut()
		return doc.Bytes()
	}

	headings := make([]string, 0, len(stats.Payments)+1)
	headings = append(headings, "")
	for _, method := range stats.Payments {
		headings = append(headings, method.Label())
	}
	doc.SetBold(true).Columns(headings).SetBold(false)

	cells := make([]string, len(stats.Payments)+1)
	for i, item := range stats.Items {
		cells[0] = item.Name
		for j := range stats.Payments {
			cell := stats.Cell(i, j)
			switch {
			case cell.Amount == 0 && cell.Quantity == 0:
				cells[j+1] = "-"
			case item.Special:
				cells[j+1] = Amount(cell.Amount)
			default:
				cells[j+1] = fmt.Sprintf("%d", cell.Quantity)
			}
		}
		doc.Columns(cells)
		doc.KeyValue("", Amount(stats.RowTotals[i]))
	}

	doc.Separator('-')
	for j, method := range stats.Payments {
		doc.KeyValue(method.Label()+":", Amount(stats.ColumnTotals[j]))
	}
	doc.SetBold(true).
		KeyValue("TOTAL:", Amount(stats.GrandTotal)).
		SetBold(false)

	s.printFooter(doc)
	return doc.Bytes()
}

func (s *PrinterService) printHeader(doc *printer.Document) {
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(s.header.Name).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if s.header.Address != "" {
		doc.Text(s.header.Address)
	}
	if s.header.Phone != "" {
		doc.Text(s.header.Phone)
	}
}

func (s *PrinterService) printFooter(doc *printer.Document) {
	doc.Separator('-').
		SetAlign(printer.AlignCenter).
		LineFeed().
		Text("Valkommen ater!").
		LineFeed().
		SetAlign(printer.AlignLeft).
		FeedLines(3).
		PartialCut()
}

// Amount formats öre as kronor with two decimals using integer math
// only.
func Amount(ore int64) string {
	sign := ""
	if ore < 0 {
		sign = "-"
		ore = -ore
	}
	return fmt.Sprintf("%s%d.%02d", sign, ore/100, ore%100)
}
