package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/apptask/backend/internal/domain/entity"
	domainerror "github.com/apptask/backend/internal/domain/error"
	"github.com/apptask/backend/internal/infra/db/dbtest"
)

func TestPaymentRepositoryCreateIncrementsBalance(t *testing.T) {
	db := dbtest.Open(t)
	users := NewUserRepository(db)
	payments := NewPaymentRepository(db)
	ctx := context.Background()

	bob := entity.NewUser("bob", "Bob")
	if err := users.Create(ctx, bob); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, amount := range []string{"50.00", "25.00"} {
		payment := entity.NewUserPaymentTransaction(bob.ID, decimal.RequireFromString(amount))
		if err := payments.CreateWithBalanceIncrement(ctx, payment); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if payment.ID == 0 {
			t.Fatal("expected payment ID to be assigned")
		}
	}

	reloaded, err := users.FindActiveByID(ctx, bob.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reloaded.Balance.Equal(decimal.RequireFromString("75")) {
		t.Errorf("expected balance 75.00, got %s", reloaded.Balance.StringFixed(2))
	}

	history, err := payments.FindAllByUserID(ctx, bob.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 payments, got %d", len(history))
	}
	if !history[0].AmountOrZero().Equal(decimal.NewFromInt(50)) || !history[1].AmountOrZero().Equal(decimal.NewFromInt(25)) {
		t.Errorf("expected history in creation order, got %s then %s",
			history[0].AmountOrZero(), history[1].AmountOrZero())
	}
}

func TestPaymentRepositoryCreateUnknownUserRollsBack(t *testing.T) {
	db := dbtest.Open(t)
	users := NewUserRepository(db)
	payments := NewPaymentRepository(db)
	ctx := context.Background()

	ghost := entity.NewUser("ghost", "Ghost")
	if err := users.Create(ctx, ghost); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := users.SoftDelete(ctx, ghost.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, userID := range []int64{ghost.ID, 4242} {
		payment := entity.NewUserPaymentTransaction(userID, decimal.NewFromInt(10))
		err := payments.CreateWithBalanceIncrement(ctx, payment)
		if !errors.Is(err, domainerror.ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound for user %d, got %v", userID, err)
		}
	}

	var count int64
	db.Table("user_payment_transactions").Count(&count)
	if count != 0 {
		t.Errorf("expected no payment rows, got %d", count)
	}
}

func TestPaymentRepositoryUpdateAmountAdjustsBalance(t *testing.T) {
	db := dbtest.Open(t)
	users := NewUserRepository(db)
	payments := NewPaymentRepository(db)
	ctx := context.Background()

	bob := entity.NewUser("bob", "Bob")
	if err := users.Create(ctx, bob); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first := entity.NewUserPaymentTransaction(bob.ID, decimal.NewFromInt(50))
	second := entity.NewUserPaymentTransaction(bob.ID, decimal.NewFromInt(25))
	for _, p := range []*entity.UserPaymentTransaction{first, second} {
		if err := payments.CreateWithBalanceIncrement(ctx, p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	updated, err := payments.UpdateAmount(ctx, second.ID, decimal.NewFromInt(40))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !updated.AmountOrZero().Equal(decimal.NewFromInt(40)) {
		t.Errorf("expected amount 40, got %s", updated.AmountOrZero())
	}

	reloaded, err := users.FindActiveByID(ctx, bob.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reloaded.Balance.Equal(decimal.NewFromInt(90)) {
		t.Errorf("expected balance 90.00, got %s", reloaded.Balance.StringFixed(2))
	}

	if _, err := payments.SoftDelete(ctx, first.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = payments.UpdateAmount(ctx, first.ID, decimal.NewFromInt(1))
	if !errors.Is(err, domainerror.ErrUserPaymentTransactionNotFound) {
		t.Fatalf("expected ErrUserPaymentTransactionNotFound, got %v", err)
	}

	history, err := payments.FindAllByUserID(ctx, bob.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(history) != 2 || !history[0].Deleted {
		t.Errorf("expected the deleted payment to stay in the history, got %+v", history)
	}
}
