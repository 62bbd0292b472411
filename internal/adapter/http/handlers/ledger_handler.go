package handlers

import (
	"net/http"

	request "afclean/internal/adapter/http/dto/request"
	response "afclean/internal/adapter/http/dto/response"
	"afclean/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// LedgerHandler exposes manual bookkeeping over the ledger.

type LedgerHandler struct {
	usecase usecase.ILedgerUseCase
}

func NewLedgerHandler(uc usecase.ILedgerUseCase) *LedgerHandler {
	return &LedgerHandler{usecase: uc}
}

// ListEntries godoc
// @Summary  List ledger entries, newest first
// @Tags     ledger
// @Produce  json
// @Success  200 {array} response.LedgerEntryResponse
// @Router   /ledger [get]
func (h *LedgerHandler) ListEntries(c *gin.Context) {
	entries, err := h.usecase.ListEntries(c.Request.Context())
	if err != nil {
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLedgerEntries(entries))
}

// CreateEntry godoc
// @Summary  Record a manual income or expense
// @Tags     ledger
// @Accept   json
// @Produce  json
// @Param    entry body request.CreateLedgerEntryRequest true "Entry"
// @Success  201 {object} response.LedgerEntryResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /ledger [post]
func (h *LedgerHandler) CreateEntry(c *gin.Context) {
	var payload request.CreateLedgerEntryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	e, err := h.usecase.CreateEntry(c.Request.Context(), payload.ResolveInput())
	if err != nil {
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromLedgerEntry(e))
}

// UpdateEntry godoc
// @Summary  Patch kind, description, amount or date of an entry
// @Tags     ledger
// @Accept   json
// @Produce  json
// @Param    id path string true "Entry ID"
// @Success  200 {object} response.ChangesResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Router   /ledger/{id} [patch]
func (h *LedgerHandler) UpdateEntry(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	changed, err := h.usecase.UpdateEntry(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		abortWith(c, mapError(err))
		return
	}
	if changed == 0 {
		abortWith(c, errEntryNotFound)
		return
	}
	c.JSON(http.StatusOK, response.ChangesResponse{Changes: changed})
}

// DeleteEntry godoc
// @Summary  Delete one ledger entry
// @Tags     ledger
// @Produce  json
// @Param    id path string true "Entry ID"
// @Success  200 {object} response.ChangesResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /ledger/{id} [delete]
func (h *LedgerHandler) DeleteEntry(c *gin.Context) {
	changed, err := h.usecase.DeleteEntry(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWith(c, mapError(err))
		return
	}
	if changed == 0 {
		abortWith(c, errEntryNotFound)
		return
	}
	c.JSON(http.StatusOK, response.ChangesResponse{Changes: changed})
}

// DeleteAll godoc
// @Summary  Clear the ledger
// @Tags     ledger
// @Produce  json
// @Success  200 {object} response.ChangesResponse
// @Router   /ledger [delete]
func (h *LedgerHandler) DeleteAll(c *gin.Context) {
	changed, err := h.usecase.DeleteAll(c.Request.Context())
	if err != nil {
		abortWith(c, mapError(err))
		return
	}
	logrus.WithField("changed", changed).Warn("[ledger][handler] ledger cleared")
	c.JSON(http.StatusOK, response.ChangesResponse{Changes: changed})
}
