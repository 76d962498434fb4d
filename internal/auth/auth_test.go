package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/showerplanner/internal/models"
	"github.com/mmynk/showerplanner/internal/storage"
)

// fakeUsers is an in-memory UserStorage.
type fakeUsers struct {
	users   map[string]*models.User
	failGet error
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{users: make(map[string]*models.User)}
}

func (f *fakeUsers) CreateUser(_ context.Context, user *models.User) error {
	if _, ok := f.users[user.Username]; ok {
		return fmt.Errorf("%w: %s", storage.ErrUserExists, user.Username)
	}
	cp := *user
	f.users[user.Username] = &cp
	return nil
}

func (f *fakeUsers) GetUser(_ context.Context, username string) (*models.User, error) {
	if f.failGet != nil {
		return nil, f.failGet
	}
	u, ok := f.users[username]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func newTestAuthenticator() (*PasswordAuthenticator, *fakeUsers) {
	users := newFakeUsers()
	return NewPasswordAuthenticator(users).WithCost(bcrypt.MinCost), users
}

func TestRegister(t *testing.T) {
	a, users := newTestAuthenticator()
	ctx := context.Background()

	user, err := a.Register(ctx, "  ana ", "ana@example.com", "Ana", "correct horse")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.Username != "ana" {
		t.Errorf("username: expected 'ana', got %q", user.Username)
	}
	if user.PasswordHash == "correct horse" || !IsHashed(user.PasswordHash) {
		t.Errorf("password stored as %q, expected a bcrypt hash", user.PasswordHash)
	}
	if _, ok := users.users["ana"]; !ok {
		t.Error("expected user to be persisted")
	}
}

func TestRegister_Errors(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{name: "weak password", username: "bob", password: "short", wantErr: ErrWeakPassword},
		{name: "password over 72 bytes", username: "bob", password: strings.Repeat("x", 80), wantErr: ErrWeakPassword},
		{name: "multibyte password over 72 bytes", username: "bob", password: strings.Repeat("ç", 40), wantErr: ErrWeakPassword},
		{name: "missing username", username: "  ", password: "long enough", wantErr: ErrMissingUsername},
		{name: "taken username", username: "ana", password: "long enough", wantErr: ErrUsernameTaken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _ := newTestAuthenticator()
			if _, err := a.Register(context.Background(), "ana", "", "Ana", "correct horse"); err != nil {
				t.Fatalf("seed Register failed: %v", err)
			}

			_, err := a.Register(context.Background(), tt.username, "", "", tt.password)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestRegister_StorageFailure(t *testing.T) {
	a, users := newTestAuthenticator()
	users.failGet = fmt.Errorf("%w: sheet offline", storage.ErrUnavailable)

	_, err := a.Register(context.Background(), "ana", "", "", "correct horse")
	if !errors.Is(err, storage.ErrUnavailable) {
		t.Errorf("expected storage error to be wrapped, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	a, users := newTestAuthenticator()
	ctx := context.Background()
	if _, err := a.Register(ctx, "ana", "ana@example.com", "Ana", "correct horse"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	users.users["legacy"] = &models.User{Username: "legacy", PasswordHash: "plaintext123"}

	user, err := a.Authenticate(ctx, "ana", "correct horse")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if user.Email != "ana@example.com" {
		t.Errorf("email: expected 'ana@example.com', got %q", user.Email)
	}

	for _, tc := range []struct{ username, password string }{
		{"ana", "wrong password"},
		{"nobody", "correct horse"},
		{"legacy", "plaintext123"},
	} {
		if _, err := a.Authenticate(ctx, tc.username, tc.password); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Authenticate(%q): expected ErrInvalidCredentials, got %v", tc.username, err)
		}
	}

	users.failGet = fmt.Errorf("%w: sheet offline", storage.ErrUnavailable)
	_, err = a.Authenticate(ctx, "ana", "correct horse")
	if errors.Is(err, ErrInvalidCredentials) || !errors.Is(err, storage.ErrUnavailable) {
		t.Errorf("expected storage failure, got %v", err)
	}
}

func TestIsHashed(t *testing.T) {
	hash, err := HashPassword("correct horse")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if !IsHashed(hash) {
		t.Errorf("IsHashed(%q) = false", hash)
	}
	for _, s := range []string{"", "plaintext", "$2b$"} {
		if IsHashed(s) {
			t.Errorf("IsHashed(%q) = true", s)
		}
	}
}

func TestJWTManager(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	user := &models.User{Username: "ana"}

	token, err := m.Generate(user)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	claims, err := m.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.Username != "ana" || claims.Subject != "ana" {
		t.Errorf("claims: expected username 'ana', got %q / %q", claims.Username, claims.Subject)
	}
	if claims.ID == "" {
		t.Error("expected token ID")
	}

	other, err := m.Generate(user)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	otherClaims, err := m.Validate(other)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if otherClaims.ID == claims.ID {
		t.Error("expected distinct token IDs")
	}
}

func TestJWTManager_Rejects(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	user := &models.User{Username: "ana"}

	expired, err := NewJWTManager("test-secret", -time.Minute).Generate(user)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	wrongKey, err := NewJWTManager("other-secret", time.Hour).Generate(user)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{Username: "ana"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("SignedString failed: %v", err)
	}
	valid, err := m.Generate(user)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	tampered := valid[:strings.LastIndexByte(valid, '.')] + ".AAAA"

	for name, token := range map[string]string{
		"expired":   expired,
		"wrong key": wrongKey,
		"alg none":  noneAlg,
		"tampered":  tampered,
		"garbage":   "not-a-token",
	} {
		if _, err := m.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("%s: expected ErrInvalidToken, got %v", name, err)
		}
	}
}
