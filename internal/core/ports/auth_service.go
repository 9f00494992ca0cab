package ports

import (
	"context"

	"github.com/bankcore/client-registry/internal/core/domain"
)

// AuthService defines registration and login use cases.
type AuthService interface {
	Register(ctx context.Context, username, password, email, role string) (*domain.User, error)
	// Login returns a signed JWT and the authenticated user.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
