package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Hritik-Singh067/crm-backend/internal/core/ports"
)

// ClientHandler maps HTTP verbs on /client to the clients resource.
type ClientHandler struct {
	service ports.ClientService
}

func NewClientHandler(service ports.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

type createClientRequest struct {
	Email   string `json:"email" form:"email"`
	Name    string `json:"name" form:"name"`
	Contact string `json:"contact" form:"contact"`
	Address string `json:"address" form:"address"`
}

// List returns every client, unfiltered and unpaginated.
//
// @Summary      List all clients
// @Tags         clients
// @Produce      json
// @Success      200  {array}  domain.Client
// @Router       /client [get]
func (h *ClientHandler) List(c echo.Context) error {
	clients, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clients)
}

// Create registers a new client. The response is a bare acknowledgement sent
// before the write is confirmed; the generated id is not returned.
//
// @Summary      Register a new client
// @Tags         clients
// @Accept       json
// @Produce      plain
// @Param        body  body  createClientRequest  true  "Client details"
// @Success      200   {string}  string  "ok"
// @Router       /client [post]
func (h *ClientHandler) Create(c echo.Context) error {
	var req createClientRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "invalid payload")
	}

	h.service.Create(c.Request().Context(), ports.CreateClientInput{
		Email:   req.Email,
		Name:    req.Name,
		Contact: req.Contact,
		Address: req.Address,
	})
	return c.String(http.StatusOK, "ok")
}

// Update merge-patches the supplied fields onto the client identified by the
// uid field. Every field in the payload writes through unchanged.
//
// @Summary      Partially update a client
// @Tags         clients
// @Accept       json
// @Produce      plain
// @Success      200  {string}  string  "successfully patched"
// @Router       /client [patch]
func (h *ClientHandler) Update(c echo.Context) error {
	fields := map[string]any{}
	if err := c.Bind(&fields); err != nil {
		return c.String(http.StatusBadRequest, "invalid payload")
	}

	id, _ := fields["uid"].(string)
	if err := h.service.Update(c.Request().Context(), id, fields); err != nil {
		return err
	}
	return c.String(http.StatusOK, "successfully patched")
}

// Delete removes the client identified by the uid query parameter. The
// response is the fixed success text whether or not a record matched.
//
// @Summary      Delete a client by id
// @Tags         clients
// @Produce      plain
// @Param        uid  query  string  true  "Client id"
// @Success      200  {string}  string  "deleted successfully"
// @Router       /client [delete]
func (h *ClientHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.QueryParam("uid")); err != nil {
		return err
	}
	return c.String(http.StatusOK, "deleted successfully")
}
