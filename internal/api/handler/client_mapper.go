package handler

import "github.com/bankcore/client-registry/internal/core/ports"

func toCreateInput(req createClientRequest) ports.CreateClientInput {
	streetNumber := 0
	if req.StreetNumber != nil {
		streetNumber = *req.StreetNumber
	}
	return ports.CreateClientInput{
		DocumentType: req.DocumentType,
		Document:     req.Document,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Street:       req.Street,
		StreetNumber: streetNumber,
		PostalCode:   req.PostalCode,
		Landline:     req.Landline,
		Mobile:       req.Mobile,
		ProductTypes: req.ProductTypes,
	}
}

func toUpdateInput(req updateClientRequest) ports.UpdateClientInput {
	return ports.UpdateClientInput{
		DocumentType: req.DocumentType,
		Document:     req.Document,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Street:       req.Street,
		StreetNumber: req.StreetNumber,
		PostalCode:   req.PostalCode,
		Landline:     req.Landline,
		Mobile:       req.Mobile,
		ProductTypes: req.ProductTypes,
	}
}

func toClientResponse(r *ports.ClientResult) clientResponse {
	return clientResponse{
		ID:           r.ID,
		DocumentType: r.DocumentType,
		Document:     r.Document,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Street:       r.Street,
		StreetNumber: r.StreetNumber,
		PostalCode:   r.PostalCode,
		Landline:     r.Landline,
		Mobile:       r.Mobile,
		ProductTypes: r.ProductTypes,
		CreatedAt:    r.CreatedAt,
		ModifiedAt:   r.ModifiedAt,
	}
}

func toClientResponses(results []*ports.ClientResult) []clientResponse {
	responses := make([]clientResponse, 0, len(results))
	for _, r := range results {
		responses = append(responses, toClientResponse(r))
	}
	return responses
}
