package domain

import (
	"errors"
	"fmt"
	"time"
)

// DocumentType is the closed set of identity documents accepted for a client.
type DocumentType string

const (
	DocumentDNI       DocumentType = "DNI"
	DocumentPasaporte DocumentType = "PASAPORTE"
	DocumentCUIT      DocumentType = "CUIT"
	DocumentCUIL      DocumentType = "CUIL"
)

// ProductType is the closed set of banking products a client can subscribe to.
type ProductType string

const (
	ProductCheq            ProductType = "CHEQ"
	ProductCajaAhorro      ProductType = "CAJA_AHORRO"
	ProductCuentaCorriente ProductType = "CUENTA_CORRIENTE"
	ProductTarjetaCredito  ProductType = "TARJETA_CREDITO"
	ProductPlazoFijo       ProductType = "PLAZO_FIJO"
	ProductPrestamo        ProductType = "PRESTAMO"
)

var ErrClientNotFound = errors.New("client not found")
var ErrInvalidEnumValue = errors.New("invalid enum value")
var ErrProductCatalogEmpty = errors.New("no matching bank products in catalog")

var documentTypes = map[DocumentType]struct{}{
	DocumentDNI:       {},
	DocumentPasaporte: {},
	DocumentCUIT:      {},
	DocumentCUIL:      {},
}

// AllProductTypes returns every member of the closed product set, in a stable
// order. The catalog seeder creates exactly one BankProduct row per member.
func AllProductTypes() []ProductType {
	return []ProductType{
		ProductCheq,
		ProductCajaAhorro,
		ProductCuentaCorriente,
		ProductTarjetaCredito,
		ProductPlazoFijo,
		ProductPrestamo,
	}
}

var productTypes = map[ProductType]struct{}{
	ProductCheq:            {},
	ProductCajaAhorro:      {},
	ProductCuentaCorriente: {},
	ProductTarjetaCredito:  {},
	ProductPlazoFijo:       {},
	ProductPrestamo:        {},
}

// ParseDocumentType resolves an external token into a DocumentType.
// Matching is case-sensitive against the canonical names; an unknown token
// yields ErrInvalidEnumValue wrapping the offending value.
func ParseDocumentType(token string) (DocumentType, error) {
	dt := DocumentType(token)
	if _, ok := documentTypes[dt]; !ok {
		return "", fmt.Errorf("%w: document type %q", ErrInvalidEnumValue, token)
	}
	return dt, nil
}

// ParseProductTypes resolves a list of external tokens into ProductTypes.
// A nil input means the caller did not supply a product list and resolves to
// nil; an empty (non-nil) input resolves to an empty slice. The first unknown
// token fails the whole call with ErrInvalidEnumValue — no partial results.
func ParseProductTypes(tokens []string) ([]ProductType, error) {
	if tokens == nil {
		return nil, nil
	}
	resolved := make([]ProductType, 0, len(tokens))
	for _, token := range tokens {
		pt := ProductType(token)
		if _, ok := productTypes[pt]; !ok {
			return nil, fmt.Errorf("%w: product type %q", ErrInvalidEnumValue, token)
		}
		resolved = append(resolved, pt)
	}
	return resolved, nil
}

// BankProduct is a catalog row binding a product type to a persisted id.
// Rows are seeded once at startup and never mutated or deleted afterwards.
type BankProduct struct {
	ID          int64       `bson:"_id"`
	ProductType ProductType `bson:"product_type"`
}

// Client is the primary mutable entity: a bank customer and its subscriptions.
//
// ProductIDs is the Client↔BankProduct join set. A nil slice means the
// association was never populated; an empty slice means it was explicitly set
// to nothing. The distinction survives persistence and mapping.
type Client struct {
	ID           int64        `bson:"_id"`
	DocumentType DocumentType `bson:"document_type"`
	Document     string       `bson:"document"`
	FirstName    string       `bson:"first_name"`
	LastName     string       `bson:"last_name"`
	Street       string       `bson:"street"`
	StreetNumber int          `bson:"street_number"`
	PostalCode   string       `bson:"postal_code"`
	Landline     string       `bson:"landline,omitempty"`
	Mobile       string       `bson:"mobile"`
	ProductIDs   []int64      `bson:"product_ids"`
	CreatedAt    time.Time    `bson:"created_at"`
	ModifiedAt   time.Time    `bson:"modified_at"`
}
