package ports

import (
	"context"
	"time"
)

// CreateClientInput carries the full payload for creating or fully replacing
// a client. ProductTypes is nil when the caller omitted the product list;
// a non-nil empty slice means "replace with no subscriptions".
type CreateClientInput struct {
	DocumentType string
	Document     string
	FirstName    string
	LastName     string
	Street       string
	StreetNumber int
	PostalCode   string
	Landline     string
	Mobile       string
	ProductTypes []string
}

// UpdateClientInput carries a partial update. Nil fields are left untouched;
// non-nil fields overwrite, including the product list (wholesale replacement).
type UpdateClientInput struct {
	DocumentType *string
	Document     *string
	FirstName    *string
	LastName     *string
	Street       *string
	StreetNumber *int
	PostalCode   *string
	Landline     *string
	Mobile       *string
	ProductTypes []string
}

// ClientResult is the service-level view of a client returned by every
// operation. ProductTypes mirrors the entity's join set: nil when the
// association was never populated, empty when explicitly set to nothing.
type ClientResult struct {
	ID           int64
	DocumentType string
	Document     string
	FirstName    string
	LastName     string
	Street       string
	StreetNumber int
	PostalCode   string
	Landline     string
	Mobile       string
	ProductTypes []string
	CreatedAt    time.Time
	ModifiedAt   time.Time
}

// ClientService defines the client lifecycle use cases. It is the sole writer
// of client records; every mutation path funnels through it.
type ClientService interface {
	Create(ctx context.Context, input CreateClientInput) (*ClientResult, error)
	FindAll(ctx context.Context) ([]*ClientResult, error)
	FindByID(ctx context.Context, id int64) (*ClientResult, error)
	FindByProductType(ctx context.Context, token string) ([]*ClientResult, error)
	Update(ctx context.Context, id int64, input CreateClientInput) (*ClientResult, error)
	PartialUpdate(ctx context.Context, id int64, input UpdateClientInput) (*ClientResult, error)
	UpdatePhone(ctx context.Context, id int64, phone string) (*ClientResult, error)
	DeleteByID(ctx context.Context, id int64) error
}
