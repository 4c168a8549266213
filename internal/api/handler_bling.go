package api

import (
	"fmt"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"

	"bling-api-backend/internal/model"
)

// GetUserInfo handles GET /api/bling/user.
func (h *Handler) GetUserInfo(c *gin.Context) {
	raw, err := h.client.GetUserInfo(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	writeEntity(c, raw, "user")
}

// CustomRequest handles POST /api/bling/custom. The remote body is returned
// untouched.
func (h *Handler) CustomRequest(c *gin.Context) {
	var req model.CustomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindingError(err))
		return
	}

	method := req.NormalizedMethod()
	if !slices.Contains(model.CustomMethods, method) {
		respondError(c, fmt.Errorf("%w: unsupported method %q", ErrValidation, req.Method))
		return
	}

	raw, err := h.client.Custom(c.Request.Context(), method, req.Endpoint, req.Query(), req.Body())
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, gin.MIMEJSON, raw)
}
