package service

import (
	"errors"
	"testing"
	"time"

	"skill_roadmap_backend/internal/config"
	"skill_roadmap_backend/internal/repository"
	"skill_roadmap_backend/internal/util"
)

func newAuthFixture(t *testing.T) *AuthService {
	t.Helper()
	db := newTestDB(t)
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpireTime = time.Hour
	return NewAuthService(repository.NewUserRepository(db), cfg)
}

func TestRegisterLowercasesEmail(t *testing.T) {
	svc := newAuthFixture(t)

	user, err := svc.Register("Ada", "Ada@Example.COM", "correct-horse")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Email != "ada@example.com" {
		t.Fatalf("expected lowercased email, got %q", user.Email)
	}
	if user.Password == "correct-horse" {
		t.Fatalf("password stored in plain text")
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := newAuthFixture(t)

	if _, err := svc.Register("Ada", "ada@example.com", "correct-horse"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := svc.Register("Other", "ADA@example.com", "another-pass")
	if !errors.Is(err, util.ErrEmailRegistered) {
		t.Fatalf("expected ErrEmailRegistered, got %v", err)
	}
}

func TestLoginIssuesToken(t *testing.T) {
	svc := newAuthFixture(t)

	if _, err := svc.Register("Ada", "ada@example.com", "correct-horse"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user, token, err := svc.Login("ada@example.com", "correct-horse")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a token")
	}

	claims, err := util.ParseJWT(token, "test-secret")
	if err != nil {
		t.Fatalf("token does not parse: %v", err)
	}
	if claims.UserID != user.ID {
		t.Fatalf("expected claims for user %d, got %d", user.ID, claims.UserID)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newAuthFixture(t)

	if _, err := svc.Register("Ada", "ada@example.com", "correct-horse"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, _, err := svc.Login("ada@example.com", "wrong"); !errors.Is(err, util.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login("nobody@example.com", "whatever"); !errors.Is(err, util.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
