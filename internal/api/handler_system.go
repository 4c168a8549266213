package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bling-api-backend/internal/bling"
)

const (
	appName     = "Bling API Application"
	appVersion  = "1.0.0"
	serviceName = "bling-api-application"
)

// Root handles GET /.
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": appName,
		"status":  "running",
		"version": appVersion,
		"docs":    "/docs",
	})
}

// Health handles GET /health.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": serviceName,
	})
}

// configResponse never carries the token itself.
type configResponse struct {
	BlingAPIURL     string `json:"bling_api_url"`
	Port            int    `json:"port"`
	Debug           bool   `json:"debug"`
	TokenConfigured bool   `json:"token_configured"`
}

// GetConfig handles GET /api/config.
func (h *Handler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, configResponse{
		BlingAPIURL:     h.cfg.Bling.APIURL,
		Port:            h.cfg.Server.Port,
		Debug:           h.cfg.Server.Debug,
		TokenConfigured: h.cfg.Bling.TokenConfigured(),
	})
}

// CheckBlingConfig handles GET /api/bling/test. It only inspects the local
// configuration and never contacts the remote API.
func (h *Handler) CheckBlingConfig(c *gin.Context) {
	if !h.cfg.Bling.TokenConfigured() {
		respondError(c, bling.ErrConfiguration)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Conexão com Bling configurada",
		"api_url": h.cfg.Bling.APIURL,
		"status":  "ready",
	})
}

// PingBling handles GET /api/bling/ping. The outcome of the remote call is
// reported in the body; the status is always 200.
func (h *Handler) PingBling(c *gin.Context) {
	c.JSON(http.StatusOK, h.client.TestConnection(c.Request.Context()))
}
