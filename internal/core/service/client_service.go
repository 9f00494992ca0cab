package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/bankcore/client-registry/internal/core/domain"
	"github.com/bankcore/client-registry/internal/core/ports"
)

// ClientService implements the client lifecycle: create, read, full replace,
// partial merge, phone-only update and delete. It is the only writer of
// client records and owns the enum validation of inbound tokens.
type ClientService struct {
	clients  ports.ClientRepository
	products ports.ProductRepository
	cache    ports.ClientCache
	logger   zerolog.Logger
}

func NewClientService(clients ports.ClientRepository, products ports.ProductRepository, cache ports.ClientCache, logger zerolog.Logger) *ClientService {
	return &ClientService{clients: clients, products: products, cache: cache, logger: logger}
}

// resolveProducts turns external product tokens into the ids of existing
// catalog rows. A nil token slice means "absent" and resolves to nil without
// touching the catalog. Unknown tokens fail with ErrInvalidEnumValue; valid
// tokens that match zero catalog rows fail with ErrProductCatalogEmpty,
// which signals a seeding defect rather than a bad request.
func (s *ClientService) resolveProducts(ctx context.Context, tokens []string) ([]int64, error) {
	types, err := domain.ParseProductTypes(tokens)
	if err != nil {
		return nil, err
	}
	if types == nil {
		return nil, nil
	}

	rows, err := s.products.FindByTypes(ctx, types)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 && len(types) > 0 {
		s.logger.Error().Strs("product_types", tokens).Msg("validated product types have no catalog rows")
		return nil, domain.ErrProductCatalogEmpty
	}

	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	return ids, nil
}

// buildClient validates the enum fields of a full payload and assembles a
// Client entity. Nothing is persisted here; callers fail before any store
// write when validation rejects the input.
func (s *ClientService) buildClient(ctx context.Context, input ports.CreateClientInput) (*domain.Client, error) {
	docType, err := domain.ParseDocumentType(input.DocumentType)
	if err != nil {
		return nil, err
	}
	productIDs, err := s.resolveProducts(ctx, input.ProductTypes)
	if err != nil {
		return nil, err
	}

	return &domain.Client{
		DocumentType: docType,
		Document:     input.Document,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Street:       input.Street,
		StreetNumber: input.StreetNumber,
		PostalCode:   input.PostalCode,
		Landline:     input.Landline,
		Mobile:       input.Mobile,
		ProductIDs:   productIDs,
	}, nil
}

func (s *ClientService) Create(ctx context.Context, input ports.CreateClientInput) (*ports.ClientResult, error) {
	s.logger.Info().Str("document", input.Document).Msg("creating client")

	client, err := s.buildClient(ctx, input)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	client.CreatedAt = now
	client.ModifiedAt = now

	created, err := s.clients.Create(ctx, client)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create client")
		return nil, err
	}

	s.logger.Info().Int64("client_id", created.ID).Msg("client created")
	return s.toResult(ctx, created)
}

func (s *ClientService) FindAll(ctx context.Context) ([]*ports.ClientResult, error) {
	clients, err := s.clients.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]*ports.ClientResult, 0, len(clients))
	for _, c := range clients {
		r, err := s.toResult(ctx, c)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	s.logger.Info().Int("count", len(results)).Msg("clients listed")
	return results, nil
}

func (s *ClientService) FindByID(ctx context.Context, id int64) (*ports.ClientResult, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, id); ok {
			return cached, nil
		}
	}

	client, err := s.clients.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result, err := s.toResult(ctx, client)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Set(ctx, result)
	}
	return result, nil
}

func (s *ClientService) FindByProductType(ctx context.Context, token string) ([]*ports.ClientResult, error) {
	types, err := domain.ParseProductTypes([]string{token})
	if err != nil {
		return nil, err
	}

	product, err := s.products.FindByType(ctx, types[0])
	if err != nil {
		return nil, err
	}

	clients, err := s.clients.FindByProductID(ctx, product.ID)
	if err != nil {
		return nil, err
	}

	results := make([]*ports.ClientResult, 0, len(clients))
	for _, c := range clients {
		r, err := s.toResult(ctx, c)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	s.logger.Info().Str("product_type", token).Int("count", len(results)).Msg("clients found by product")
	return results, nil
}

// Update replaces every mutable field from the full payload, blank values
// included. Only the id and the creation timestamp survive.
func (s *ClientService) Update(ctx context.Context, id int64, input ports.CreateClientInput) (*ports.ClientResult, error) {
	existing, err := s.clients.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	client, err := s.buildClient(ctx, input)
	if err != nil {
		return nil, err
	}
	client.ID = id
	client.CreatedAt = existing.CreatedAt
	client.ModifiedAt = time.Now().UTC()

	if err := s.clients.Update(ctx, client); err != nil {
		s.logger.Error().Err(err).Int64("client_id", id).Msg("failed to update client")
		return nil, err
	}
	s.invalidate(ctx, id)

	s.logger.Info().Int64("client_id", id).Msg("client updated")
	return s.toResult(ctx, client)
}

// PartialUpdate overwrites only the fields present in the input. A present
// product list replaces the join set wholesale; an absent one leaves it
// untouched. The modification timestamp advances on every successful call,
// even when the supplied values equal the stored ones.
func (s *ClientService) PartialUpdate(ctx context.Context, id int64, input ports.UpdateClientInput) (*ports.ClientResult, error) {
	client, err := s.clients.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.FirstName != nil {
		client.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		client.LastName = *input.LastName
	}
	if input.Document != nil {
		client.Document = *input.Document
	}
	if input.Street != nil {
		client.Street = *input.Street
	}
	if input.StreetNumber != nil {
		client.StreetNumber = *input.StreetNumber
	}
	if input.PostalCode != nil {
		client.PostalCode = *input.PostalCode
	}
	if input.Landline != nil {
		client.Landline = *input.Landline
	}
	if input.Mobile != nil {
		client.Mobile = *input.Mobile
	}

	if input.DocumentType != nil {
		docType, err := domain.ParseDocumentType(*input.DocumentType)
		if err != nil {
			return nil, err
		}
		client.DocumentType = docType
	}

	if input.ProductTypes != nil {
		productIDs, err := s.resolveProducts(ctx, input.ProductTypes)
		if err != nil {
			return nil, err
		}
		client.ProductIDs = productIDs
	}

	client.ModifiedAt = time.Now().UTC()

	if err := s.clients.Update(ctx, client); err != nil {
		s.logger.Error().Err(err).Int64("client_id", id).Msg("failed to partially update client")
		return nil, err
	}
	s.invalidate(ctx, id)

	s.logger.Info().Int64("client_id", id).Msg("client partially updated")
	return s.toResult(ctx, client)
}

// UpdatePhone overwrites the landline field. The original API named this
// path "telefono" and pointed it at the landline, not the validated mobile;
// the behavior is kept as-is.
func (s *ClientService) UpdatePhone(ctx context.Context, id int64, phone string) (*ports.ClientResult, error) {
	client, err := s.clients.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	client.Landline = phone
	client.ModifiedAt = time.Now().UTC()

	if err := s.clients.Update(ctx, client); err != nil {
		s.logger.Error().Err(err).Int64("client_id", id).Msg("failed to update client phone")
		return nil, err
	}
	s.invalidate(ctx, id)

	s.logger.Info().Int64("client_id", id).Msg("client phone updated")
	return s.toResult(ctx, client)
}

// DeleteByID removes a client and its product associations. Existence is
// checked with a prior read so a missing id surfaces as ErrClientNotFound
// instead of a silent no-op.
func (s *ClientService) DeleteByID(ctx context.Context, id int64) error {
	if _, err := s.clients.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.clients.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Int64("client_id", id).Msg("failed to delete client")
		return err
	}
	s.invalidate(ctx, id)

	s.logger.Info().Int64("client_id", id).Msg("client deleted")
	return nil
}

func (s *ClientService) invalidate(ctx context.Context, id int64) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, id)
	}
}

// toResult maps an entity to its response form. Product ids are rendered as
// canonical enum names, never raw ids; a nil join set stays nil so the
// transport layer can distinguish "never populated" from "empty".
func (s *ClientService) toResult(ctx context.Context, c *domain.Client) (*ports.ClientResult, error) {
	var productTypes []string
	if c.ProductIDs != nil {
		rows, err := s.products.FindByIDs(ctx, c.ProductIDs)
		if err != nil {
			return nil, err
		}
		productTypes = make([]string, 0, len(rows))
		for _, row := range rows {
			productTypes = append(productTypes, string(row.ProductType))
		}
	}

	return &ports.ClientResult{
		ID:           c.ID,
		DocumentType: string(c.DocumentType),
		Document:     c.Document,
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		Street:       c.Street,
		StreetNumber: c.StreetNumber,
		PostalCode:   c.PostalCode,
		Landline:     c.Landline,
		Mobile:       c.Mobile,
		ProductTypes: productTypes,
		CreatedAt:    c.CreatedAt,
		ModifiedAt:   c.ModifiedAt,
	}, nil
}
