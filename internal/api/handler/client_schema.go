package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

// createClientRequest is the full payload used by POST /clients and
// PUT /clients/:id. JSON field names follow the registry's public contract.
// The product list is optional: absent means "no association", an empty list
// means "explicitly none". The landline (telefono) is intentionally left
// unvalidated while the mobile (celular) must be 6–15 digits.
type createClientRequest struct {
	DocumentType string   `json:"tipoDocumento"        validate:"required"`
	Document     string   `json:"documento"            validate:"required,min=7,max=15"`
	FirstName    string   `json:"nombre"               validate:"required"`
	LastName     string   `json:"apellido"             validate:"required"`
	Street       string   `json:"calle"                validate:"required"`
	StreetNumber *int     `json:"numero"               validate:"required"`
	PostalCode   string   `json:"codigoPostal"         validate:"required"`
	Landline     string   `json:"telefono"`
	Mobile       string   `json:"celular"              validate:"required,phone"`
	ProductTypes []string `json:"productoBancarioList"`
}

// updateClientRequest is the partial payload used by PATCH /clients/:id.
// Every field is optional; only non-null fields are applied. "Present but
// empty" is distinct from "absent", which is why everything is a pointer.
type updateClientRequest struct {
	DocumentType *string  `json:"tipoDocumento"`
	Document     *string  `json:"documento"            validate:"omitempty,min=7,max=15"`
	FirstName    *string  `json:"nombre"`
	LastName     *string  `json:"apellido"`
	Street       *string  `json:"calle"`
	StreetNumber *int     `json:"numero"`
	PostalCode   *string  `json:"codigoPostal"`
	Landline     *string  `json:"telefono"`
	Mobile       *string  `json:"celular"              validate:"omitempty,phone"`
	ProductTypes []string `json:"productoBancarioList"`
}

// phoneUpdateRequest is the payload for PATCH /clients/:id/telefono.
// Despite the field name, it overwrites the landline attribute.
type phoneUpdateRequest struct {
	Phone string `json:"telefono"`
}

// --- Response types ---

// clientResponse is the public view of a client. ProductTypes renders the
// association as canonical enum names; it is null when the association was
// never populated and an empty array when it was explicitly set to nothing.
type clientResponse struct {
	ID           int64     `json:"id"`
	DocumentType string    `json:"tipoDocumento"`
	Document     string    `json:"documento"`
	FirstName    string    `json:"nombre"`
	LastName     string    `json:"apellido"`
	Street       string    `json:"calle"`
	StreetNumber int       `json:"numero"`
	PostalCode   string    `json:"codigoPostal"`
	Landline     string    `json:"telefono"`
	Mobile       string    `json:"celular"`
	ProductTypes []string  `json:"productoBancarioList"`
	CreatedAt    time.Time `json:"fechaCreacion"`
	ModifiedAt   time.Time `json:"fechaModificacion"`
}
