package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bankcore/client-registry/internal/core/domain"
)

type stubAuthRepo struct {
	byUsername map[string]*domain.User
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{byUsername: make(map[string]*domain.User)}
}

func (r *stubAuthRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := r.byUsername[user.Username]; ok {
		return nil, domain.ErrUserExists
	}
	clone := *user
	clone.ID = "user_1"
	r.byUsername[user.Username] = &clone
	return &clone, nil
}

func (r *stubAuthRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	user, ok := r.byUsername[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func TestAuth_RegisterAndLogin(t *testing.T) {
	svc := NewAuthService(newStubAuthRepo(), "secret", 0)

	user, err := svc.Register(context.Background(), "alice", "s3cret", "alice@example.com", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.PasswordHash == "s3cret" {
		t.Fatalf("password must be stored hashed")
	}

	token, logged, err := svc.Login(context.Background(), "alice", "s3cret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if logged.Username != "alice" {
		t.Fatalf("expected alice, got %s", logged.Username)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token should verify: %v", err)
	}
	if claims["username"] != "alice" || claims["role"] != domain.RoleAdmin {
		t.Fatalf("unexpected claims: %v", claims)
	}
}

func TestAuth_LoginWrongPassword(t *testing.T) {
	svc := NewAuthService(newStubAuthRepo(), "secret", 0)

	if _, err := svc.Register(context.Background(), "bob", "hunter2", "", domain.RoleOperator); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, _, err := svc.Login(context.Background(), "bob", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuth_RegisterRejectsUnknownRole(t *testing.T) {
	svc := NewAuthService(newStubAuthRepo(), "secret", 0)

	_, err := svc.Register(context.Background(), "carol", "pw", "", "superuser")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
