package user

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/apptask/backend/internal/application/adapter"
	"github.com/apptask/backend/internal/domain/entity"
	domainerror "github.com/apptask/backend/internal/domain/error"
	"github.com/apptask/backend/internal/infra/db/dbtest"
	"github.com/apptask/backend/internal/integration/persistence"
)

func strPtr(s string) *string { return &s }

func TestCreateUserUseCase(t *testing.T) {
	db := dbtest.Open(t)
	repo := persistence.NewUserRepository(db)
	ctx := context.Background()
	createUser := NewCreateUserUseCase(repo)

	out, err := createUser.Execute(ctx, CreateUserInput{Username: "bob", FullName: "Bob Smith"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := NewGetUserUseCase(repo).Execute(ctx, GetUserInput{UserID: out.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.User.Username != "bob" || got.User.FullName != "Bob Smith" || !got.User.Balance.IsZero() {
		t.Errorf("unexpected user: %+v", got.User)
	}

	tests := []struct {
		name     string
		username string
		wantErr  error
	}{
		{name: "duplicate username", username: "bob", wantErr: domainerror.ErrUsernameExists},
		{name: "different case is allowed", username: "Bob", wantErr: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := createUser.Execute(ctx, CreateUserInput{Username: tt.username, FullName: "Other"})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	var count int64
	db.Table("users").Count(&count)
	if count != 2 {
		t.Errorf("expected duplicate to perform no write, got %d users", count)
	}
}

func TestCreateUserUseCaseDeletedUsernameStaysReserved(t *testing.T) {
	repo := persistence.NewUserRepository(dbtest.Open(t))
	ctx := context.Background()

	out, err := NewCreateUserUseCase(repo).Execute(ctx, CreateUserInput{Username: "alice"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := NewDeleteUserUseCase(repo).Execute(ctx, DeleteUserInput{UserID: out.ID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = NewCreateUserUseCase(repo).Execute(ctx, CreateUserInput{Username: "alice"})
	if !errors.Is(err, domainerror.ErrUsernameExists) {
		t.Fatalf("expected ErrUsernameExists, got %v", err)
	}
}

func TestUpdateUserUseCase(t *testing.T) {
	repo := persistence.NewUserRepository(dbtest.Open(t))
	ctx := context.Background()

	bob, err := NewCreateUserUseCase(repo).Execute(ctx, CreateUserInput{Username: "bob", FullName: "Bob"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := NewCreateUserUseCase(repo).Execute(ctx, CreateUserInput{Username: "carol", FullName: "Carol"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updateUser := NewUpdateUserUseCase(repo)

	tests := []struct {
		name         string
		input        UpdateUserInput
		wantErr      error
		wantUsername string
		wantFullName string
	}{
		{
			name:         "empty patch keeps fields",
			input:        UpdateUserInput{UserID: bob.ID},
			wantUsername: "bob",
			wantFullName: "Bob",
		},
		{
			name:         "same username is not a conflict",
			input:        UpdateUserInput{UserID: bob.ID, Username: strPtr("bob"), FullName: strPtr("Robert")},
			wantUsername: "bob",
			wantFullName: "Robert",
		},
		{
			name:    "rename to taken username",
			input:   UpdateUserInput{UserID: bob.ID, Username: strPtr("carol")},
			wantErr: domainerror.ErrUsernameExists,
		},
		{
			name:         "rename to free username",
			input:        UpdateUserInput{UserID: bob.ID, Username: strPtr("rob")},
			wantUsername: "rob",
			wantFullName: "Robert",
		},
		{
			name:    "unknown user",
			input:   UpdateUserInput{UserID: 999, FullName: strPtr("Nobody")},
			wantErr: domainerror.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := updateUser.Execute(ctx, tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			got, err := NewGetUserUseCase(repo).Execute(ctx, GetUserInput{UserID: bob.ID})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.User.Username != tt.wantUsername || got.User.FullName != tt.wantFullName {
				t.Errorf("expected %s/%s, got %s/%s", tt.wantUsername, tt.wantFullName, got.User.Username, got.User.FullName)
			}
		})
	}
}

func TestDeleteUserUseCase(t *testing.T) {
	repo := persistence.NewUserRepository(dbtest.Open(t))
	ctx := context.Background()

	out, err := NewCreateUserUseCase(repo).Execute(ctx, CreateUserInput{Username: "dave"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	deleteUser := NewDeleteUserUseCase(repo)
	if err := deleteUser.Execute(ctx, DeleteUserInput{UserID: out.ID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = NewGetUserUseCase(repo).Execute(ctx, GetUserInput{UserID: out.ID})
	if !errors.Is(err, domainerror.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound after delete, got %v", err)
	}

	list, err := NewListUsersUseCase(repo).Execute(ctx, ListUsersInput{Page: entity.PageRequest{Size: 20}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if list.Page.TotalElements != 0 {
		t.Errorf("expected deleted user to be absent from list, got %d", list.Page.TotalElements)
	}

	if err := deleteUser.Execute(ctx, DeleteUserInput{UserID: out.ID}); err != nil {
		t.Errorf("expected deleting again to succeed, got %v", err)
	}

	err = deleteUser.Execute(ctx, DeleteUserInput{UserID: 404})
	var domainErr *domainerror.DomainError
	if !errors.As(err, &domainErr) || domainErr.Code != domainerror.ErrCodeUserNotFound {
		t.Errorf("expected USER_NOT_FOUND domain error, got %v", err)
	}
}

func TestListUserProductsUseCase(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()
	users := persistence.NewUserRepository(db)
	transactions := persistence.NewTransactionRepository(db)
	categories := persistence.NewCategoryRepository(db)
	products := persistence.NewProductRepository(db)
	items := persistence.NewTransactionItemRepository(db)

	bob := entity.NewUser("bob", "Bob")
	category := entity.NewCategory("Fruit", nil, 1)
	for _, err := range []error{users.Create(ctx, bob), categories.Create(ctx, category)} {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	apple := entity.NewProduct("Apple", 100, category.ID)
	if err := products.Create(ctx, apple); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	purchase := entity.NewTransaction(bob.ID, decimal.NewFromInt(6))
	if err := transactions.Create(ctx, purchase); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	line := entity.NewTransactionItem(purchase.ID, apple.ID, 3, decimal.NewFromInt(2), decimal.NewFromInt(6))
	if err := items.Create(ctx, line); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	listProducts := NewListUserProductsUseCase(users, items)

	out, err := listProducts.Execute(ctx, ListUserProductsInput{UserID: bob.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Products) != 1 || out.Products[0].Name != "Apple" || out.Products[0].Count != 3 {
		t.Errorf("unexpected products: %+v", out.Products)
	}

	if _, err := users.SoftDelete(ctx, bob.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = listProducts.Execute(ctx, ListUserProductsInput{UserID: bob.ID})
	if !errors.Is(err, domainerror.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound for a deleted user, got %v", err)
	}
}

// topUpAfterLoad credits the user right after the update use case has read them.
type topUpAfterLoad struct {
	adapter.UserRepository
	payments adapter.PaymentRepository
	amount   decimal.Decimal
}

func (r *topUpAfterLoad) FindActiveByID(ctx context.Context, id int64) (*entity.User, error) {
	user, err := r.UserRepository.FindActiveByID(ctx, id)
	if err != nil || user == nil {
		return user, err
	}
	if err := r.payments.CreateWithBalanceIncrement(ctx, entity.NewUserPaymentTransaction(id, r.amount)); err != nil {
		return nil, err
	}
	return user, nil
}

func TestUpdateUserUseCaseKeepsConcurrentTopUp(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()
	users := persistence.NewUserRepository(db)
	payments := persistence.NewPaymentRepository(db)

	bob := entity.NewUser("bob", "Bob")
	if err := users.Create(ctx, bob); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	repo := &topUpAfterLoad{UserRepository: users, payments: payments, amount: decimal.NewFromInt(50)}
	out, err := NewUpdateUserUseCase(repo).Execute(ctx, UpdateUserInput{UserID: bob.ID, Username: strPtr("robert")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.User.Username != "robert" {
		t.Errorf("expected username robert, got %s", out.User.Username)
	}

	got, err := users.FindActiveByID(ctx, bob.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Balance.StringFixed(2) != "50.00" {
		t.Errorf("expected balance 50.00 after rename, got %s", got.Balance.StringFixed(2))
	}
}
