package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bankcore/client-registry/internal/core/domain"
	"github.com/bankcore/client-registry/internal/core/ports"
)

// CatalogSeeder guarantees the bank product catalog invariant: exactly one
// row per product type. It runs once at startup, before the API accepts
// traffic that depends on product validation.
type CatalogSeeder struct {
	products ports.ProductRepository
	logger   zerolog.Logger
}

func NewCatalogSeeder(products ports.ProductRepository, logger zerolog.Logger) *CatalogSeeder {
	return &CatalogSeeder{products: products, logger: logger}
}

// Seed inserts one BankProduct row per enum member, skipping types that
// already have a row. Running it repeatedly never produces duplicates.
func (s *CatalogSeeder) Seed(ctx context.Context) error {
	for _, t := range domain.AllProductTypes() {
		exists, err := s.products.ExistsByType(ctx, t)
		if err != nil {
			return fmt.Errorf("check product %s: %w", t, err)
		}
		if exists {
			continue
		}

		if _, err := s.products.Create(ctx, &domain.BankProduct{ProductType: t}); err != nil {
			return fmt.Errorf("seed product %s: %w", t, err)
		}
		s.logger.Info().Str("product_type", string(t)).Msg("bank product seeded")
	}
	return nil
}
