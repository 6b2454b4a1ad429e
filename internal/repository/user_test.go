package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/evolverse/api/internal/model"
)

func TestUserRepository_Create_AssignsID(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository()
	user := &model.User{Username: "bleulion", Password: "hashed"}

	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if user.ID == "" {
		t.Error("expected Create to assign an ID")
	}

	got, err := repo.GetByID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected stored user, got nil")
	}
	if got.Username != "bleulion" {
		t.Errorf("expected username 'bleulion', got %q", got.Username)
	}
}

func TestUserRepository_Create_DistinctIDs(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository()
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		user := &model.User{Username: fmt.Sprintf("keeper-%d", i), Password: "hashed"}
		if err := repo.Create(context.Background(), user); err != nil {
			t.Fatalf("Create %d failed: %v", i, err)
		}
		if seen[user.ID] {
			t.Fatalf("duplicate identifier %q on create %d", user.ID, i)
		}
		seen[user.ID] = true
	}
	if len(seen) != 20 {
		t.Errorf("expected 20 distinct identifiers, got %d", len(seen))
	}
}

func TestUserRepository_Create_DuplicateUsername(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository()
	if err := repo.Create(context.Background(), &model.User{Username: "keeper", Password: "a"}); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	err := repo.Create(context.Background(), &model.User{Username: "keeper", Password: "b"})
	if !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestUserRepository_GetByUsername_CaseSensitive(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository()
	if err := repo.Create(context.Background(), &model.User{Username: "Keeper", Password: "a"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := repo.GetByUsername(context.Background(), "Keeper")
	if err != nil {
		t.Fatalf("GetByUsername failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected exact-case match")
	}

	miss, err := repo.GetByUsername(context.Background(), "keeper")
	if err != nil {
		t.Fatalf("GetByUsername failed: %v", err)
	}
	if miss != nil {
		t.Error("lookup is case-sensitive, expected nil for different casing")
	}
}

func TestUserRepository_GetByID_Absent(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository()

	got, err := repo.GetByID(context.Background(), "no-such-id")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for absent user, got %+v", got)
	}
}
