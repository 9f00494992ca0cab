package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/bankcore/client-registry/internal/api/metrics"
	"github.com/bankcore/client-registry/internal/core/ports"
)

// ClientHandler handles HTTP requests for the client lifecycle.
type ClientHandler struct {
	service ports.ClientService
}

func NewClientHandler(service ports.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

// clientID parses the :id path parameter. A non-numeric id is a 400 at the
// boundary, before anything reaches the service.
func clientID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "client id must be an integer")
	}
	return id, nil
}

// Create handles POST /clients.
//
// @Summary      Create a new client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createClientRequest  true  "Client details"
// @Success      201   {object}  clientResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /clients [post]
func (h *ClientHandler) Create(c echo.Context) error {
	var req createClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Create(c.Request().Context(), toCreateInput(req))
	if err != nil {
		return err
	}

	metrics.ClientsCreatedTotal.WithLabelValues(result.DocumentType).Inc()
	return c.JSON(http.StatusCreated, toClientResponse(result))
}

// GetAll handles GET /clients.
//
// @Summary      List all clients
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   clientResponse
// @Failure      401  {object}  errorResponse
// @Router       /clients [get]
func (h *ClientHandler) GetAll(c echo.Context) error {
	results, err := h.service.FindAll(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toClientResponses(results))
}

// GetByID handles GET /clients/:id.
//
// @Summary      Get a client by id
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Client id"
// @Success      200  {object}  clientResponse
// @Failure      404  {object}  errorResponse
// @Router       /clients/{id} [get]
func (h *ClientHandler) GetByID(c echo.Context) error {
	id, err := clientID(c)
	if err != nil {
		return err
	}

	result, err := h.service.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toClientResponse(result))
}

// GetByProductType handles GET /clients/producto/:tipoProductoBancario.
// A valid type with zero subscribers returns an empty list, not an error.
//
// @Summary      List clients subscribed to a bank product
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        tipoProductoBancario  path      string  true  "Product type (e.g. CHEQ)"
// @Success      200  {array}   clientResponse
// @Failure      400  {object}  errorResponse
// @Router       /clients/producto/{tipoProductoBancario} [get]
func (h *ClientHandler) GetByProductType(c echo.Context) error {
	results, err := h.service.FindByProductType(c.Request().Context(), c.Param("tipoProductoBancario"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toClientResponses(results))
}

// Update handles PUT /clients/:id — full replace.
//
// @Summary      Replace a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                  true  "Client id"
// @Param        body  body      createClientRequest  true  "Complete client details"
// @Success      200   {object}  clientResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /clients/{id} [put]
func (h *ClientHandler) Update(c echo.Context) error {
	id, err := clientID(c)
	if err != nil {
		return err
	}

	var req createClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Update(c.Request().Context(), id, toCreateInput(req))
	if err != nil {
		return err
	}

	metrics.ClientMutationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, toClientResponse(result))
}

// PartialUpdate handles PATCH /clients/:id — merge semantics.
//
// @Summary      Partially update a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                  true  "Client id"
// @Param        body  body      updateClientRequest  true  "Fields to change"
// @Success      200   {object}  clientResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /clients/{id} [patch]
func (h *ClientHandler) PartialUpdate(c echo.Context) error {
	id, err := clientID(c)
	if err != nil {
		return err
	}

	var req updateClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.PartialUpdate(c.Request().Context(), id, toUpdateInput(req))
	if err != nil {
		return err
	}

	metrics.ClientMutationsTotal.WithLabelValues("partial_update").Inc()
	return c.JSON(http.StatusOK, toClientResponse(result))
}

// UpdatePhone handles PATCH /clients/:id/telefono.
//
// @Summary      Update a client's phone
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                 true  "Client id"
// @Param        body  body      phoneUpdateRequest  true  "New phone"
// @Success      200   {object}  clientResponse
// @Failure      404   {object}  errorResponse
// @Router       /clients/{id}/telefono [patch]
func (h *ClientHandler) UpdatePhone(c echo.Context) error {
	id, err := clientID(c)
	if err != nil {
		return err
	}

	var req phoneUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	result, err := h.service.UpdatePhone(c.Request().Context(), id, req.Phone)
	if err != nil {
		return err
	}

	metrics.ClientMutationsTotal.WithLabelValues("phone_update").Inc()
	return c.JSON(http.StatusOK, toClientResponse(result))
}

// Delete handles DELETE /clients/:id.
//
// @Summary      Delete a client
// @Tags         clients
// @Security     BearerAuth
// @Param        id  path  int  true  "Client id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /clients/{id} [delete]
func (h *ClientHandler) Delete(c echo.Context) error {
	id, err := clientID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteByID(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.ClientMutationsTotal.WithLabelValues("delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
