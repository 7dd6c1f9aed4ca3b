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

func TestUserRepositoryDuplicateUsername(t *testing.T) {
	repo := NewUserRepository(dbtest.Open(t))
	ctx := context.Background()

	if err := repo.Create(ctx, entity.NewUser("bob", "Bob One")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := repo.Create(ctx, entity.NewUser("bob", "Bob Two"))
	if !errors.Is(err, domainerror.ErrUsernameExists) {
		t.Fatalf("expected ErrUsernameExists, got %v", err)
	}
}

func TestUserRepositoryExistsByUsernameIncludesDeleted(t *testing.T) {
	repo := NewUserRepository(dbtest.Open(t))
	ctx := context.Background()

	user := entity.NewUser("alice", "Alice")
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.SoftDelete(ctx, user.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		username string
		want     bool
	}{
		{"alice", true},
		{"Alice", false},
		{"carol", false},
	}

	for _, tt := range tests {
		t.Run(tt.username, func(t *testing.T) {
			got, err := repo.ExistsByUsername(ctx, tt.username)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestUserRepositoryUpdateProfile(t *testing.T) {
	db := dbtest.Open(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	bob := entity.NewUser("bob", "Bob")
	carol := entity.NewUser("carol", "Carol")
	for _, u := range []*entity.User{bob, carol} {
		if err := repo.Create(ctx, u); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if err := db.Table("users").Where("id = ?", bob.ID).Update("balance", decimal.NewFromInt(75)).Error; err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// bob still holds the zero balance read before the credit above.
	bob.Username = "robert"
	bob.FullName = "Robert"
	updated, err := repo.UpdateProfile(ctx, bob)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Username != "robert" || updated.FullName != "Robert" {
		t.Errorf("unexpected profile: %+v", updated)
	}
	if updated.Balance.StringFixed(2) != "75.00" {
		t.Errorf("expected balance 75.00 to survive, got %s", updated.Balance.StringFixed(2))
	}

	bob.Username = "carol"
	if _, err := repo.UpdateProfile(ctx, bob); !errors.Is(err, domainerror.ErrUsernameExists) {
		t.Errorf("expected ErrUsernameExists, got %v", err)
	}

	if _, err := repo.SoftDelete(ctx, carol.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	carol.FullName = "Gone"
	got, err := repo.UpdateProfile(ctx, carol)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for a deleted user, got %+v", got)
	}
}
