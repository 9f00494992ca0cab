package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/bankcore/client-registry/internal/core/domain"
)

func TestSeed_CreatesOneRowPerProductType(t *testing.T) {
	repo := &stubProductRepo{}
	seeder := NewCatalogSeeder(repo, zerolog.Nop())

	if err := seeder.Seed(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := len(domain.AllProductTypes())
	if len(repo.rows) != want {
		t.Fatalf("expected %d rows, got %d", want, len(repo.rows))
	}

	seen := make(map[domain.ProductType]int)
	for _, row := range repo.rows {
		seen[row.ProductType]++
	}
	for _, pt := range domain.AllProductTypes() {
		if seen[pt] != 1 {
			t.Fatalf("expected exactly one row for %s, got %d", pt, seen[pt])
		}
	}
}

func TestSeed_IsIdempotent(t *testing.T) {
	repo := &stubProductRepo{}
	seeder := NewCatalogSeeder(repo, zerolog.Nop())

	if err := seeder.Seed(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := seeder.Seed(context.Background()); err != nil {
		t.Fatalf("unexpected error on second run: %v", err)
	}

	if want := len(domain.AllProductTypes()); len(repo.rows) != want {
		t.Fatalf("second seed run must not duplicate rows: expected %d, got %d", want, len(repo.rows))
	}
}
