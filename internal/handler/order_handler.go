package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"orderscope/internal/service"
)

// OrderHandler handles order read endpoints.
type OrderHandler struct {
	orders service.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orders service.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// List handles GET /orders
func (h *OrderHandler) List(c *gin.Context) {
	offset, limit := pagination(c)
	orders, total, err := h.orders.List(c.Request.Context(), offset, limit)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondPaginated(c, orders, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /orders/:id
func (h *OrderHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "id must be a valid uuid")
		return
	}
	order, err := h.orders.GetWithItems(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, order)
}
