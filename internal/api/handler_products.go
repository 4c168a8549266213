package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"bling-api-backend/internal/bling"
	"bling-api-backend/internal/model"
)

var emptyList = json.RawMessage("[]")

// ListProducts handles GET /products.
func (h *Handler) ListProducts(c *gin.Context) {
	var paging model.Paging
	if err := c.ShouldBindQuery(&paging); err != nil {
		respondError(c, bindingError(err))
		return
	}

	raw, err := h.client.ListProducts(c.Request.Context(), paging.Page, paging.Limit)
	if err != nil {
		respondError(c, err)
		return
	}
	writeList(c, raw)
}

// GetProduct handles GET /products/:id.
func (h *Handler) GetProduct(c *gin.Context) {
	id := c.Param("id")
	raw, err := h.client.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	writeEntity(c, raw, fmt.Sprintf("product %s", id))
}

// CreateProduct handles POST /products.
func (h *Handler) CreateProduct(c *gin.Context) {
	var req model.ProductCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindingError(err))
		return
	}
	req.ApplyDefaults()

	raw, err := h.client.CreateProduct(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.ApiResponse{
		Success: true,
		Message: "Produto criado com sucesso",
		Data:    raw,
	})
}

// UpdateProduct handles PUT /products/:id. Only supplied fields are forwarded.
func (h *Handler) UpdateProduct(c *gin.Context) {
	var req model.ProductUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindingError(err))
		return
	}

	payload := req.Payload()
	if len(payload) == 0 {
		respondError(c, fmt.Errorf("%w: no fields to update", ErrValidation))
		return
	}

	raw, err := h.client.UpdateProduct(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.ApiResponse{
		Success: true,
		Message: "Produto atualizado com sucesso",
		Data:    raw,
	})
}

// writeList unwraps the envelope and writes its data, or [] when absent.
func writeList(c *gin.Context, raw json.RawMessage) {
	data, err := bling.Unwrap(raw)
	if err != nil {
		respondError(c, err)
		return
	}
	if len(data) == 0 || string(data) == "null" {
		data = emptyList
	}
	c.Data(http.StatusOK, gin.MIMEJSON, data)
}

// writeEntity unwraps the envelope and answers 404 when the data is empty.
func writeEntity(c *gin.Context, raw json.RawMessage, what string) {
	data, err := bling.Unwrap(raw)
	if err != nil {
		respondError(c, err)
		return
	}
	if bling.IsEmptyData(data) {
		respondError(c, fmt.Errorf("%s: %w", what, ErrNotFound))
		return
	}
	c.Data(http.StatusOK, gin.MIMEJSON, data)
}
