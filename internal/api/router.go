package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"bling-api-backend/config"
	"bling-api-backend/internal/logger"
	"bling-api-backend/internal/model"
	"bling-api-backend/internal/mw"
)

// NewRouter creates and configures the gin engine, wrapped with CORS.
func NewRouter(cfg *config.Config, client BlingClient, log *zap.Logger) http.Handler {
	if log == nil {
		log = zap.NewNop()
	}

	r := gin.New()
	r.Use(
		logger.Recovery(log),
		mw.RequestID(),
		logger.GinMiddleware(log),
		otelgin.Middleware(serviceName),
	)

	handler := NewHandler(cfg, client, log)

	r.GET("/", handler.Root)
	r.GET("/health", handler.Health)

	// API group
	api := r.Group("/api")
	{
		api.GET("/config", handler.GetConfig)
		api.GET("/bling/test", handler.CheckBlingConfig)
		api.GET("/bling/ping", handler.PingBling)
		api.GET("/bling/user", handler.GetUserInfo)
		api.POST("/bling/custom", handler.CustomRequest)
	}

	products := r.Group("/products")
	{
		products.GET("", handler.ListProducts)
		products.GET("/:id", handler.GetProduct)
		products.POST("", handler.CreateProduct)
		products.PUT("/:id", handler.UpdateProduct)
	}

	orders := r.Group("/orders")
	{
		orders.GET("", handler.ListOrders)
		orders.GET("/:id", handler.GetOrder)
	}

	r.GET("/contacts", handler.ListContacts)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "route not found"})
	})

	return mw.CORS(cfg.Server.CORSOrigins)(r)
}
