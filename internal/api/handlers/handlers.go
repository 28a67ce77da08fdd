// Package handlers implements the gin HTTP handlers over the store.
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/manusware/context-manager/internal/store"
)

// Handler bundles the store behind the HTTP surface.
type Handler struct {
	store *store.Store
}

// New creates a Handler.
func New(s *store.Store) *Handler {
	return &Handler{store: s}
}

// paramID parses the :id path parameter. On failure it writes the error
// response and reports false.
func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// respondError maps store errors to HTTP statuses.
func respondError(c *gin.Context, err error, notFoundMsg, internalMsg string) {
	var verr *store.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": internalMsg})
	}
}
