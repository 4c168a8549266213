package api

import (
	"context"
	"encoding/json"
	"net/url"

	"go.uber.org/zap"

	"bling-api-backend/config"
	"bling-api-backend/internal/bling"
)

// BlingClient is the subset of *bling.Client the handlers depend on.
type BlingClient interface {
	ListProducts(ctx context.Context, page, limit int) (json.RawMessage, error)
	GetProduct(ctx context.Context, id string) (json.RawMessage, error)
	CreateProduct(ctx context.Context, payload any) (json.RawMessage, error)
	UpdateProduct(ctx context.Context, id string, payload any) (json.RawMessage, error)
	ListOrders(ctx context.Context, page, limit int) (json.RawMessage, error)
	GetOrder(ctx context.Context, id string) (json.RawMessage, error)
	ListContacts(ctx context.Context, page, limit int) (json.RawMessage, error)
	GetUserInfo(ctx context.Context) (json.RawMessage, error)
	Custom(ctx context.Context, method, endpoint string, params url.Values, body any) (json.RawMessage, error)
	TestConnection(ctx context.Context) bling.ConnectionStatus
}

// Handler holds shared dependencies for API handlers.
type Handler struct {
	cfg    *config.Config
	client BlingClient
	logger *zap.Logger
}

// NewHandler creates a new API handler.
func NewHandler(cfg *config.Config, client BlingClient, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		cfg:    cfg,
		client: client,
		logger: logger,
	}
}
