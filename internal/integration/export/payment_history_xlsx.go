// Package export renders domain data as downloadable documents.
package export

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/apptask/backend/internal/application/adapter"
	"github.com/apptask/backend/internal/domain/entity"
)

// SheetName is the worksheet holding the payment history.
const SheetName = "Payments"

const dateLayout = "2006-01-02 15:04:05"

var headers = []string{"ID", "Date", "Amount", "Deleted"}

// paymentHistoryXLSX renders a payment history as an Excel workbook.
type paymentHistoryXLSX struct{}

// NewPaymentHistoryXLSX creates the XLSX payment history exporter.
func NewPaymentHistoryXLSX() adapter.PaymentHistoryExporter {
	return &paymentHistoryXLSX{}
}

// ContentType returns the XLSX MIME type.
func (e *paymentHistoryXLSX) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Extension returns the XLSX file extension.
func (e *paymentHistoryXLSX) Extension() string {
	return "xlsx"
}

// Export writes one row per payment followed by the payment total and the user's balance.
func (e *paymentHistoryXLSX) Export(user *entity.User, payments []*entity.UserPaymentTransaction) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 2}) // 0.00
	if err != nil {
		return nil, fmt.Errorf("failed to create money style: %w", err)
	}

	for i, h := range headers {
		if err := setCell(f, i+1, 1, h); err != nil {
			return nil, err
		}
	}

	total := decimal.Zero
	for i, p := range payments {
		row := i + 2
		amount := p.AmountOrZero()
		total = total.Add(amount)

		values := []interface{}{p.ID, p.Date.UTC().Format(dateLayout), amount.InexactFloat64(), yesNo(p.Deleted)}
		for col, v := range values {
			if err := setCell(f, col+1, row, v); err != nil {
				return nil, err
			}
		}
	}

	summaryRow := len(payments) + 3
	summary := []struct {
		label string
		value decimal.Decimal
	}{
		{"Total", total},
		{"Balance", user.Balance},
	}
	for i, s := range summary {
		row := summaryRow + i
		if err := setCell(f, 2, row, s.label); err != nil {
			return nil, err
		}
		if err := setCell(f, 3, row, s.value.InexactFloat64()); err != nil {
			return nil, err
		}
	}

	lastRow := summaryRow + len(summary) - 1
	if err := f.SetCellStyle(SheetName, "C2", fmt.Sprintf("C%d", lastRow), moneyStyle); err != nil {
		return nil, fmt.Errorf("failed to style amounts: %w", err)
	}

	if err := f.SetColWidth(SheetName, "B", "B", 20); err != nil {
		return nil, fmt.Errorf("failed to set column width: %w", err)
	}
	if err := f.SetColWidth(SheetName, "C", "C", 14); err != nil {
		return nil, fmt.Errorf("failed to set column width: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func setCell(f *excelize.File, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("failed to resolve cell: %w", err)
	}
	if err := f.SetCellValue(SheetName, cell, value); err != nil {
		return fmt.Errorf("failed to set cell %s: %w", cell, err)
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
