package adapter

import "github.com/apptask/backend/internal/domain/entity"

// PaymentHistoryExporter renders a user's payment ledger as a downloadable document.
type PaymentHistoryExporter interface {
	// Export renders the payments of user and returns the document bytes.
	Export(user *entity.User, payments []*entity.UserPaymentTransaction) ([]byte, error)

	// ContentType returns the MIME type of the rendered document.
	ContentType() string

	// Extension returns the file extension of the rendered document, without the dot.
	Extension() string
}
