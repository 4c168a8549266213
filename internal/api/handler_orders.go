package api

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"bling-api-backend/internal/model"
)

// ListOrders handles GET /orders.
func (h *Handler) ListOrders(c *gin.Context) {
	var paging model.Paging
	if err := c.ShouldBindQuery(&paging); err != nil {
		respondError(c, bindingError(err))
		return
	}

	raw, err := h.client.ListOrders(c.Request.Context(), paging.Page, paging.Limit)
	if err != nil {
		respondError(c, err)
		return
	}
	writeList(c, raw)
}

// GetOrder handles GET /orders/:id.
func (h *Handler) GetOrder(c *gin.Context) {
	id := c.Param("id")
	raw, err := h.client.GetOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	writeEntity(c, raw, fmt.Sprintf("order %s", id))
}

// ListContacts handles GET /contacts.
func (h *Handler) ListContacts(c *gin.Context) {
	var paging model.Paging
	if err := c.ShouldBindQuery(&paging); err != nil {
		respondError(c, bindingError(err))
		return
	}

	raw, err := h.client.ListContacts(c.Request.Context(), paging.Page, paging.Limit)
	if err != nil {
		respondError(c, err)
		return
	}
	writeList(c, raw)
}
