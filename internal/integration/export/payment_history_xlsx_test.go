package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/apptask/backend/internal/domain/entity"
)

func TestPaymentHistoryXLSXExport(t *testing.T) {
	user := entity.NewUser("bob", "Bob")
	user.Balance = decimal.RequireFromString("75.00")

	date := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	first := entity.NewUserPaymentTransaction(user.ID, decimal.RequireFromString("50.00"))
	first.ID, first.Date = 1, date
	second := entity.NewUserPaymentTransaction(user.ID, decimal.RequireFromString("25.00"))
	second.ID, second.Date, second.Deleted = 2, date.Add(time.Hour), true

	exporter := NewPaymentHistoryXLSX()
	data, err := exporter.Export(user, []*entity.UserPaymentTransaction{first, second})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exporter.Extension() != "xlsx" {
		t.Errorf("unexpected extension %s", exporter.Extension())
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed to read workbook: %v", err)
	}
	defer f.Close()

	raw := excelize.Options{RawCellValue: true}
	tests := []struct {
		cell string
		want string
	}{
		{"A1", "ID"},
		{"C1", "Amount"},
		{"A2", "1"},
		{"B2", "2024-03-01 10:30:00"},
		{"C2", "50"},
		{"A3", "2"},
		{"C3", "25"},
		{"D2", "no"},
		{"D3", "yes"},
		{"B5", "Total"},
		{"C5", "75"},
		{"B6", "Balance"},
		{"C6", "75"},
	}

	for _, tt := range tests {
		t.Run(tt.cell, func(t *testing.T) {
			got, err := f.GetCellValue(SheetName, tt.cell, raw)
			if err != nil {
				t.Fatalf("failed to read %s: %v", tt.cell, err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestPaymentHistoryXLSXExportEmpty(t *testing.T) {
	user := entity.NewUser("empty", "Empty")

	data, err := NewPaymentHistoryXLSX().Export(user, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed to read workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("failed to read rows: %v", err)
	}
	if len(rows) == 0 || rows[0][0] != "ID" {
		t.Errorf("expected a header row, got %v", rows)
	}
}
