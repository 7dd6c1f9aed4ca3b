package payment

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/apptask/backend/internal/application/adapter"
	"github.com/apptask/backend/internal/domain/entity"
	domainerror "github.com/apptask/backend/internal/domain/error"
	"github.com/apptask/backend/internal/infra/db/dbtest"
	"github.com/apptask/backend/internal/integration/persistence"
)

func setup(t *testing.T) (adapter.UserRepository, adapter.PaymentRepository, *entity.User) {
	t.Helper()

	db := dbtest.Open(t)
	users := persistence.NewUserRepository(db)
	payments := persistence.NewPaymentRepository(db)

	bob := entity.NewUser("bob", "Bob")
	if err := users.Create(context.Background(), bob); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return users, payments, bob
}

func balanceOf(t *testing.T, users adapter.UserRepository, id int64) string {
	t.Helper()

	user, err := users.FindActiveByID(context.Background(), id)
	if err != nil || user == nil {
		t.Fatalf("failed to load user %d: %v", id, err)
	}
	return user.Balance.StringFixed(2)
}

func TestPaymentBalanceScenario(t *testing.T) {
	users, payments, bob := setup(t)
	ctx := context.Background()
	createPayment := NewCreatePaymentUseCase(payments)

	if got := balanceOf(t, users, bob.ID); got != "0.00" {
		t.Fatalf("expected initial balance 0.00, got %s", got)
	}

	first, err := createPayment.Execute(ctx, CreatePaymentInput{UserID: bob.ID, Amount: decimal.RequireFromString("50.00")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := balanceOf(t, users, bob.ID); got != "50.00" {
		t.Errorf("expected balance 50.00, got %s", got)
	}

	second, err := createPayment.Execute(ctx, CreatePaymentInput{UserID: bob.ID, Amount: decimal.RequireFromString("25.00")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := balanceOf(t, users, bob.ID); got != "75.00" {
		t.Errorf("expected balance 75.00, got %s", got)
	}

	history, err := NewGetPaymentHistoryUseCase(users, payments).Execute(ctx, GetPaymentHistoryInput{UserID: bob.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(history.Payments) != 2 || history.Payments[0].ID != first.ID || history.Payments[1].ID != second.ID {
		t.Fatalf("expected both payments in creation order, got %+v", history.Payments)
	}

	amount := decimal.RequireFromString("40.00")
	if _, err := NewUpdatePaymentUseCase(payments).Execute(ctx, UpdatePaymentInput{PaymentID: second.ID, Amount: &amount}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := balanceOf(t, users, bob.ID); got != "90.00" {
		t.Errorf("expected balance 90.00 after amount change, got %s", got)
	}

	if err := NewDeletePaymentUseCase(payments).Execute(ctx, DeletePaymentInput{PaymentID: first.ID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := balanceOf(t, users, bob.ID); got != "90.00" {
		t.Errorf("expected deleting a payment to keep the balance, got %s", got)
	}

	history, err = NewGetPaymentHistoryUseCase(users, payments).Execute(ctx, GetPaymentHistoryInput{UserID: bob.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sum := decimal.Zero
	for _, p := range history.Payments {
		sum = sum.Add(p.AmountOrZero())
	}
	if sum.StringFixed(2) != "90.00" {
		t.Errorf("expected history to sum to the balance, got %s", sum.StringFixed(2))
	}
}

func TestCreatePaymentUseCaseValidation(t *testing.T) {
	users, payments, bob := setup(t)
	ctx := context.Background()
	createPayment := NewCreatePaymentUseCase(payments)

	tests := []struct {
		name     string
		userID   int64
		amount   string
		wantCode domainerror.ErrorCode
	}{
		{name: "zero amount", userID: bob.ID, amount: "0", wantCode: domainerror.ErrCodeInvalidRequest},
		{name: "negative amount", userID: bob.ID, amount: "-5", wantCode: domainerror.ErrCodeInvalidRequest},
		{name: "unknown user", userID: 31337, amount: "5", wantCode: domainerror.ErrCodeUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := createPayment.Execute(ctx, CreatePaymentInput{UserID: tt.userID, Amount: decimal.RequireFromString(tt.amount)})

			var domainErr *domainerror.DomainError
			if !errors.As(err, &domainErr) {
				t.Fatalf("expected a domain error, got %v", err)
			}
			if domainErr.Code != tt.wantCode {
				t.Errorf("expected code %d, got %d", tt.wantCode, domainErr.Code)
			}
		})
	}

	if got := balanceOf(t, users, bob.ID); got != "0.00" {
		t.Errorf("expected failed payments to keep the balance, got %s", got)
	}
}

func TestUpdatePaymentUseCaseEmptyPatch(t *testing.T) {
	users, payments, bob := setup(t)
	ctx := context.Background()

	created, err := NewCreatePaymentUseCase(payments).Execute(ctx, CreatePaymentInput{UserID: bob.ID, Amount: decimal.NewFromInt(10)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := NewUpdatePaymentUseCase(payments).Execute(ctx, UpdatePaymentInput{PaymentID: created.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Payment.AmountOrZero().Equal(decimal.NewFromInt(10)) {
		t.Errorf("expected amount 10, got %s", out.Payment.AmountOrZero())
	}
	if got := balanceOf(t, users, bob.ID); got != "10.00" {
		t.Errorf("expected balance 10.00, got %s", got)
	}

	_, err = NewUpdatePaymentUseCase(payments).Execute(ctx, UpdatePaymentInput{PaymentID: 999})
	if !errors.Is(err, domainerror.ErrUserPaymentTransactionNotFound) {
		t.Errorf("expected ErrUserPaymentTransactionNotFound, got %v", err)
	}
}

type fakeExporter struct {
	gotUser     *entity.User
	gotPayments int
}

func (f *fakeExporter) Export(user *entity.User, payments []*entity.UserPaymentTransaction) ([]byte, error) {
	f.gotUser = user
	f.gotPayments = len(payments)
	return []byte("report"), nil
}

func (f *fakeExporter) ContentType() string { return "text/plain" }

func (f *fakeExporter) Extension() string { return "txt" }

func TestExportPaymentHistoryUseCase(t *testing.T) {
	users, payments, bob := setup(t)
	ctx := context.Background()

	if _, err := NewCreatePaymentUseCase(payments).Execute(ctx, CreatePaymentInput{UserID: bob.ID, Amount: decimal.NewFromInt(3)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	exporter := &fakeExporter{}
	exportHistory := NewExportPaymentHistoryUseCase(NewGetPaymentHistoryUseCase(users, payments), exporter)

	out, err := exportHistory.Execute(ctx, ExportPaymentHistoryInput{UserID: bob.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exporter.gotUser == nil || exporter.gotUser.ID != bob.ID || exporter.gotPayments != 1 {
		t.Errorf("exporter received unexpected input: %+v", exporter)
	}
	if !strings.HasSuffix(out.FileName, ".txt") || out.ContentType != "text/plain" || string(out.Content) != "report" {
		t.Errorf("unexpected output: %+v", out)
	}

	_, err = exportHistory.Execute(ctx, ExportPaymentHistoryInput{UserID: 4040})
	if !errors.Is(err, domainerror.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
