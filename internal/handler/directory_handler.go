package handler

import (
	"github.com/gin-gonic/gin"

	"orderscope/internal/service"
)

// DirectoryHandler handles customer and product read endpoints.
type DirectoryHandler struct {
	directory service.DirectoryService
}

// NewDirectoryHandler creates a new DirectoryHandler.
func NewDirectoryHandler(directory service.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{directory: directory}
}

// ListCustomers handles GET /customers
func (h *DirectoryHandler) ListCustomers(c *gin.Context) {
	offset, limit := pagination(c)
	customers, total, err := h.directory.ListCustomers(c.Request.Context(), offset, limit)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondPaginated(c, customers, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// ListProducts handles GET /products
func (h *DirectoryHandler) ListProducts(c *gin.Context) {
	offset, limit := pagination(c)
	products, total, err := h.directory.ListProducts(c.Request.Context(), offset, limit)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondPaginated(c, products, PagMeta{Total: total, Offset: offset, Limit: limit})
}
