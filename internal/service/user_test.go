package service

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/evolverse/api/internal/model"
	"github.com/evolverse/api/internal/repository"
)

func TestUserService_Register_HashesPassword(t *testing.T) {
	t.Parallel()

	repo := repository.NewUserRepository()
	svc := NewUserService(repo)

	user, err := svc.Register(context.Background(), &model.CreateUserRequest{
		Username: "  bleulion  ",
		Password: "sovereign-key",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.Username != "bleulion" {
		t.Errorf("expected trimmed username, got %q", user.Username)
	}
	if user.Password == "sovereign-key" {
		t.Error("plaintext password must not be stored")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("sovereign-key")); err != nil {
		t.Errorf("stored hash does not verify: %v", err)
	}

	stored, err := repo.GetByUsername(context.Background(), "bleulion")
	if err != nil {
		t.Fatalf("GetByUsername failed: %v", err)
	}
	if stored == nil {
		t.Fatal("registered user not retrievable")
	}
}

func TestUserService_Register_Validation(t *testing.T) {
	t.Parallel()

	svc := NewUserService(repository.NewUserRepository())

	_, err := svc.Register(context.Background(), &model.CreateUserRequest{Username: "   ", Password: "x"})
	if !errors.Is(err, ErrUsernameRequired) {
		t.Errorf("expected ErrUsernameRequired, got %v", err)
	}

	_, err = svc.Register(context.Background(), &model.CreateUserRequest{Username: "bleulion", Password: ""})
	if !errors.Is(err, ErrPasswordRequired) {
		t.Errorf("expected ErrPasswordRequired, got %v", err)
	}
}

func TestUserService_Register_DuplicateUsername(t *testing.T) {
	t.Parallel()

	svc := NewUserService(repository.NewUserRepository())

	if _, err := svc.Register(context.Background(), &model.CreateUserRequest{Username: "keeper", Password: "a"}); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}

	_, err := svc.Register(context.Background(), &model.CreateUserRequest{Username: "keeper", Password: "b"})
	if !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("expected ErrUsernameTaken, got %v", err)
	}
}
