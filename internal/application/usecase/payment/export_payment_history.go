package payment

import (
	"context"
	"fmt"

	"github.com/apptask/backend/internal/application/adapter"
)

// ExportPaymentHistoryInput represents the input for exporting a user's payment history.
type ExportPaymentHistoryInput struct {
	UserID int64
}

// ExportPaymentHistoryOutput holds the rendered document.
type ExportPaymentHistoryOutput struct {
	FileName    string
	ContentType string
	Content     []byte
}

// ExportPaymentHistoryUseCase renders a user's payment history as a document.
type ExportPaymentHistoryUseCase struct {
	history  *GetPaymentHistoryUseCase
	exporter adapter.PaymentHistoryExporter
}

// NewExportPaymentHistoryUseCase creates a new ExportPaymentHistoryUseCase instance.
func NewExportPaymentHistoryUseCase(history *GetPaymentHistoryUseCase, exporter adapter.PaymentHistoryExporter) *ExportPaymentHistoryUseCase {
	return &ExportPaymentHistoryUseCase{
		history:  history,
		exporter: exporter,
	}
}

// Execute loads the history and renders it.
func (uc *ExportPaymentHistoryUseCase) Execute(ctx context.Context, input ExportPaymentHistoryInput) (*ExportPaymentHistoryOutput, error) {
	history, err := uc.history.Execute(ctx, GetPaymentHistoryInput{UserID: input.UserID})
	if err != nil {
		return nil, err
	}

	content, err := uc.exporter.Export(history.User, history.Payments)
	if err != nil {
		return nil, fmt.Errorf("failed to export payment history: %w", err)
	}

	return &ExportPaymentHistoryOutput{
		FileName:    fmt.Sprintf("payment-history-%s.%s", history.User.Username, uc.exporter.Extension()),
		ContentType: uc.exporter.ContentType(),
		Content:     content,
	}, nil
}
