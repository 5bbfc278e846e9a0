package users

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"skillgap-backend/internal/shared/auth"
)

const testSecret = "test-secret"

func TestRegisterHashesPassword(t *testing.T) {
	svc := NewService(NewMemoryRepo(), testSecret)

	user, err := svc.Register(context.Background(), "dana@example.com", "hunter2", "Dana")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.PasswordHash == "hunter2" || user.PasswordHash == "" {
		t.Fatal("password must be stored as a bcrypt hash")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter2")); err != nil {
		t.Errorf("stored hash does not verify: %v", err)
	}
	if user.ID == "" {
		t.Error("expected generated user id")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewService(NewMemoryRepo(), testSecret)

	if _, err := svc.Register(context.Background(), "dana@example.com", "hunter2", "Dana"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := svc.Register(context.Background(), "DANA@example.com", "other", "Other")
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestRegisterMissingFields(t *testing.T) {
	svc := NewService(NewMemoryRepo(), testSecret)

	if _, err := svc.Register(context.Background(), "", "hunter2", ""); err == nil {
		t.Error("expected error for missing email")
	}
	if _, err := svc.Register(context.Background(), "dana@example.com", "", ""); err == nil {
		t.Error("expected error for missing password")
	}
}

func TestLoginSuccessIssuesToken(t *testing.T) {
	svc := NewService(NewMemoryRepo(), testSecret)
	if _, err := svc.Register(context.Background(), "dana@example.com", "hunter2", "Dana"); err != nil {
		t.Fatalf("register: %v", err)
	}

	user, token, err := svc.Login(context.Background(), "dana@example.com", "hunter2")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.Name != "Dana" {
		t.Errorf("name = %q", user.Name)
	}
	claims, err := auth.Verify(testSecret, token)
	if err != nil {
		t.Fatalf("token does not verify: %v", err)
	}
	if claims.Email != "dana@example.com" {
		t.Errorf("claims email = %q", claims.Email)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := NewService(NewMemoryRepo(), testSecret)
	if _, err := svc.Register(context.Background(), "dana@example.com", "hunter2", "Dana"); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, _, err := svc.Login(context.Background(), "dana@example.com", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewService(NewMemoryRepo(), testSecret)

	_, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
