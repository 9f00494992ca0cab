package ports

import (
	"context"

	"github.com/bankcore/client-registry/internal/core/domain"
)

// AuthRepository defines persistence operations for API users.
type AuthRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}
