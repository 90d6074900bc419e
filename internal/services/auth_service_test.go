package services

import (
	"errors"
	"testing"
	"time"

	"taskflow-api/internal/config"
	"taskflow-api/internal/dto"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	cfg := &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: time.Hour,
	}
	return NewAuthService(newTestDB(t), cfg)
}

func TestRegister_ReturnsTokenPair(t *testing.T) {
	svc := newAuthService(t)

	resp, err := svc.Register(&dto.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "hunter22",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Error("expected both tokens to be issued")
	}
	if resp.User.Email != "alice@example.com" {
		t.Errorf("unexpected user email: %q", resp.User.Email)
	}
}

func TestRegister_DuplicateEmailCaseInsensitive(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register(&dto.RegisterRequest{Name: "Alice", Email: "Alice@Example.com", Password: "hunter22"})
	if err != nil {
		t.Fatalf("first Register failed: %v", err)
	}

	_, err = svc.Register(&dto.RegisterRequest{Name: "Imposter", Email: "alice@example.COM", Password: "hunter22"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestRegister_RejectsShortPassword(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register(&dto.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "short"})
	if err == nil {
		t.Fatal("expected validation error for a 5-character password")
	}
}

func TestLogin_WrongPasswordAndUnknownEmailLookAlike(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register(&dto.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "hunter22"})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	_, wrongPass := svc.Login(&dto.LoginRequest{Email: "alice@example.com", Password: "wrong"})
	_, unknown := svc.Login(&dto.LoginRequest{Email: "nobody@example.com", Password: "hunter22"})

	if !errors.Is(wrongPass, ErrInvalidCredentials) || !errors.Is(unknown, ErrInvalidCredentials) {
		t.Fatalf("both failures must be ErrInvalidCredentials, got %v and %v", wrongPass, unknown)
	}
}

func TestLogin_AcceptsMixedCaseEmail(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register(&dto.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "hunter22"})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	resp, err := svc.Login(&dto.LoginRequest{Email: "ALICE@example.com", Password: "hunter22"})
	if err != nil {
		t.Fatalf("mixed-case login failed: %v", err)
	}
	if resp.AccessToken == "" {
		t.Error("expected an access token")
	}
}

func TestRefresh_RotatesAndRevokesOldToken(t *testing.T) {
	svc := newAuthService(t)

	registered, err := svc.Register(&dto.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "hunter22"})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	refreshed, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: registered.RefreshToken})
	if err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if refreshed.RefreshToken == registered.RefreshToken {
		t.Error("refresh must rotate the token")
	}

	// The original token is single-use.
	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: registered.RefreshToken})
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("reused token: expected ErrInvalidToken, got %v", err)
	}
}

func TestLogout_RevokesRefreshToken(t *testing.T) {
	svc := newAuthService(t)

	registered, err := svc.Register(&dto.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "hunter22"})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if err := svc.Logout(&dto.LogoutRequest{RefreshToken: registered.RefreshToken}); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}

	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: registered.RefreshToken})
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("after logout: expected ErrInvalidToken, got %v", err)
	}
}
