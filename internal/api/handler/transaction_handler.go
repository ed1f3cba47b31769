package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Hritik-Singh067/crm-backend/internal/core/ports"
)

// TransactionHandler maps HTTP verbs on /transaction to the transactions
// resource.
type TransactionHandler struct {
	service ports.TransactionService
}

func NewTransactionHandler(service ports.TransactionService) *TransactionHandler {
	return &TransactionHandler{service: service}
}

type createTransactionRequest struct {
	StoreID  string   `json:"store_id" form:"store_id" validate:"required"`
	UID      string   `json:"uid" form:"uid" validate:"required"`
	Amount   *float64 `json:"amount" form:"amount" validate:"required"`
	Detail   string   `json:"detail" form:"detail"`
	Category string   `json:"category" form:"category"`
}

// List returns every transaction, unfiltered and unpaginated.
//
// @Summary      List all transactions
// @Tags         transactions
// @Produce      json
// @Success      200  {array}  domain.Transaction
// @Router       /transaction [get]
func (h *TransactionHandler) List(c echo.Context) error {
	txs, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, txs)
}

// Create records a new transaction. StoreID, UID, and Amount must be present;
// the category silently normalizes to Others when absent or unknown. The
// response is a bare acknowledgement sent before the write is confirmed.
//
// @Summary      Record a new transaction
// @Tags         transactions
// @Accept       json
// @Produce      plain
// @Param        body  body  createTransactionRequest  true  "Transaction details"
// @Success      200   {string}  string  "ok"
// @Failure      400   {string}  string
// @Router       /transaction [post]
func (h *TransactionHandler) Create(c echo.Context) error {
	var req createTransactionRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return c.String(http.StatusBadRequest, err.Error())
	}

	h.service.Create(c.Request().Context(), ports.CreateTransactionInput{
		StoreID:  req.StoreID,
		UID:      req.UID,
		Amount:   *req.Amount,
		Detail:   req.Detail,
		Category: req.Category,
	})
	return c.String(http.StatusOK, "ok")
}

// Update merge-patches the supplied fields onto the transaction identified
// by the order_id field. Every field in the payload writes through unchanged.
//
// @Summary      Partially update a transaction
// @Tags         transactions
// @Accept       json
// @Produce      plain
// @Success      200  {string}  string  "successfully patched"
// @Router       /transaction [patch]
func (h *TransactionHandler) Update(c echo.Context) error {
	fields := map[string]any{}
	if err := c.Bind(&fields); err != nil {
		return c.String(http.StatusBadRequest, "invalid payload")
	}

	id, _ := fields["order_id"].(string)
	if err := h.service.Update(c.Request().Context(), id, fields); err != nil {
		return err
	}
	return c.String(http.StatusOK, "successfully patched")
}

// Delete removes the transaction identified by the order_id query parameter.
// The response is the fixed success text whether or not a record matched.
//
// @Summary      Delete a transaction by id
// @Tags         transactions
// @Produce      plain
// @Param        order_id  query  string  true  "Transaction id"
// @Success      200  {string}  string  "deleted successfully"
// @Router       /transaction [delete]
func (h *TransactionHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.QueryParam("order_id")); err != nil {
		return err
	}
	return c.String(http.StatusOK, "deleted successfully")
}
