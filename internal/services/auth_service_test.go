package services

import (
	"errors"
	"testing"
	"time"

	"github.com/dabson254/lapor-hilang/internal/config"
	"github.com/dabson254/lapor-hilang/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

func testAuthService() *AuthService {
	// Token generation and verification never touch the database.
	return NewAuthService(nil, &config.Config{JWTSecret: "test-secret-do-not-use"})
}

func TestSessionToken_RoundTrip(t *testing.T) {
	svc := testAuthService()
	admin := &models.Admin{ID: 7, Name: "Petugas Satu", Username: "petugas1"}

	token, err := svc.GenerateSessionToken(admin)
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	adminID, username, err := svc.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if adminID != 7 {
		t.Errorf("admin id = %d, want 7", adminID)
	}
	if username != "petugas1" {
		t.Errorf("username = %q, want %q", username, "petugas1")
	}
}

func TestVerifyToken_RejectsTampered(t *testing.T) {
	svc := testAuthService()
	token, err := svc.GenerateSessionToken(&models.Admin{ID: 1, Username: "admin"})
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}

	// Flip one character somewhere in the signature segment.
	tampered := []byte(token)
	last := len(tampered) - 1
	if tampered[last] == 'A' {
		tampered[last] = 'B'
	} else {
		tampered[last] = 'A'
	}

	if _, _, err := svc.VerifyToken(string(tampered)); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for tampered credential, got %v", err)
	}
}

func TestVerifyToken_RejectsExpired(t *testing.T) {
	svc := testAuthService()

	claims := jwt.MapClaims{
		"sub":      "1",
		"admin_id": 1,
		"username": "admin",
		"iat":      time.Now().Add(-25 * time.Hour).Unix(),
		"exp":      time.Now().Add(-1 * time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("test-secret-do-not-use"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, _, err := svc.VerifyToken(expired); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired credential, got %v", err)
	}
}

func TestVerifyToken_RejectsWrongSecret(t *testing.T) {
	other := NewAuthService(nil, &config.Config{JWTSecret: "another-secret"})
	token, err := other.GenerateSessionToken(&models.Admin{ID: 1, Username: "admin"})
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}

	svc := testAuthService()
	if _, _, err := svc.VerifyToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for foreign-secret credential, got %v", err)
	}
}

func TestVerifyToken_RejectsMalformed(t *testing.T) {
	svc := testAuthService()

	for _, token := range []string{"", "not-a-jwt", "a.b", "a.b.c.d"} {
		if _, _, err := svc.VerifyToken(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("token %q: expected ErrInvalidToken, got %v", token, err)
		}
	}
}

func TestVerifyToken_RejectsMissingClaims(t *testing.T) {
	svc := testAuthService()

	claims := jwt.MapClaims{
		"sub": "1",
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("test-secret-do-not-use"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, _, err := svc.VerifyToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken when admin claims are absent, got %v", err)
	}
}
