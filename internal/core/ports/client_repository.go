package ports

import (
	"context"

	"github.com/bankcore/client-registry/internal/core/domain"
)

// ClientRepository defines persistence operations for clients.
type ClientRepository interface {
	// Create persists a new client and returns it with its store-assigned id.
	Create(ctx context.Context, c *domain.Client) (*domain.Client, error)
	FindAll(ctx context.Context) ([]*domain.Client, error)
	// FindByID returns domain.ErrClientNotFound when no record matches.
	FindByID(ctx context.Context, id int64) (*domain.Client, error)
	// FindByProductID returns every client whose join set contains productID.
	FindByProductID(ctx context.Context, productID int64) ([]*domain.Client, error)
	// Update overwrites the stored record wholesale, join set included.
	Update(ctx context.Context, c *domain.Client) error
	Delete(ctx context.Context, id int64) error
}

// ProductRepository defines read and seed access to the bank product catalog.
// After seeding the catalog is read-only.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.BankProduct) (*domain.BankProduct, error)
	ExistsByType(ctx context.Context, t domain.ProductType) (bool, error)
	// FindByType returns domain.ErrProductCatalogEmpty when the catalog holds
	// no row for a valid type, which indicates a seeding defect.
	FindByType(ctx context.Context, t domain.ProductType) (*domain.BankProduct, error)
	// FindByTypes returns the catalog rows matching any of the given types.
	FindByTypes(ctx context.Context, types []domain.ProductType) ([]*domain.BankProduct, error)
	// FindByIDs returns the catalog rows for the given ids, preserving order.
	FindByIDs(ctx context.Context, ids []int64) ([]*domain.BankProduct, error)
}
