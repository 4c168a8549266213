package bling

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"bling-api-backend/config"
)

// maxErrorBody bounds how much of a failed response is kept in the error.
const maxErrorBody = 512

// Client is the single point of outbound communication with the Bling API.
// It holds no mutable state after construction and is safe for concurrent use.
type Client struct {
	baseURL string
	token   string
	client  *http.Client
	logger  *zap.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client. The caller owns its timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// WithLogger sets the logger used for outbound calls.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// NewClient creates a client for the configured Bling base URL and token.
func NewClient(cfg config.BlingConfig, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(cfg.APIURL, "/"),
		token:   strings.TrimSpace(cfg.APIToken),
		logger:  zap.NewNop(),
	}

	var transport http.RoundTripper = http.DefaultTransport
	var proxyErr error
	if cfg.HTTPProxy != "" {
		proxyURL, err := url.Parse(cfg.HTTPProxy)
		if err != nil {
			proxyErr = err
		} else {
			transport = &http.Transport{Proxy: http.ProxyURL(proxyURL)}
		}
	}
	c.client = &http.Client{
		Transport: transport,
		Timeout:   cfg.Timeout,
	}

	for _, opt := range opts {
		opt(c)
	}

	if proxyErr != nil {
		c.logger.Warn("invalid bling proxy URL, continuing without proxy",
			zap.String("proxy", cfg.HTTPProxy),
			zap.Error(proxyErr),
		)
	}
	return c
}

// BaseURL returns the configured API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// TokenConfigured reports whether requests can be issued at all.
func (c *Client) TokenConfigured() bool {
	return c.token != ""
}

// Request issues one call to the Bling API and returns the raw JSON body.
// path is joined to the base URL; leading slashes are stripped.
func (c *Client) Request(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	if c.token == "" {
		return nil, ErrConfiguration
	}

	fullURL := c.baseURL + "/" + strings.TrimLeft(path, "/")

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request payload: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("bling request", zap.String("method", method), zap.String("url", fullURL))

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("bling request failed", zap.String("method", method), zap.String("url", fullURL), zap.Error(err))
		return nil, &RemoteCallError{Method: method, URL: fullURL, Cause: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RemoteCallError{Method: method, URL: fullURL, StatusCode: resp.StatusCode, Cause: fmt.Errorf("failed to read response body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("bling returned non-2xx status",
			zap.String("method", method),
			zap.String("url", fullURL),
			zap.Int("status", resp.StatusCode),
		)
		return nil, &RemoteCallError{
			Method:     method,
			URL:        fullURL,
			StatusCode: resp.StatusCode,
			Cause:      fmt.Errorf("%s: %s", http.StatusText(resp.StatusCode), snippet(raw)),
		}
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return json.RawMessage("null"), nil
	}
	if !json.Valid(raw) {
		return nil, fmt.Errorf("%w: %s %s returned %q", ErrMalformedResponse, method, fullURL, snippet(raw))
	}
	return json.RawMessage(raw), nil
}

// ListProducts fetches one page of products.
func (c *Client) ListProducts(ctx context.Context, page, limit int) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, "produtos?"+pagingQuery(page, limit), nil)
}

// GetProduct fetches a single product.
func (c *Client) GetProduct(ctx context.Context, id string) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, "produtos/"+url.PathEscape(id), nil)
}

// CreateProduct creates a product with the given payload.
func (c *Client) CreateProduct(ctx context.Context, payload any) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodPost, "produtos", payload)
}

// UpdateProduct sends a partial update for a product.
func (c *Client) UpdateProduct(ctx context.Context, id string, payload any) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodPut, "produtos/"+url.PathEscape(id), payload)
}

// ListOrders fetches one page of orders.
func (c *Client) ListOrders(ctx context.Context, page, limit int) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, "pedidos?"+pagingQuery(page, limit), nil)
}

// GetOrder fetches a single order.
func (c *Client) GetOrder(ctx context.Context, id string) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, "pedidos/"+url.PathEscape(id), nil)
}

// ListContacts fetches one page of contacts.
func (c *Client) ListContacts(ctx context.Context, page, limit int) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, "contatos?"+pagingQuery(page, limit), nil)
}

// GetUserInfo fetches the account the token belongs to.
func (c *Client) GetUserInfo(ctx context.Context) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, "me", nil)
}

// Custom forwards an arbitrary call. params are appended to any query string
// already present in endpoint; a nil body sends no payload.
func (c *Client) Custom(ctx context.Context, method, endpoint string, params url.Values, body any) (json.RawMessage, error) {
	path := endpoint
	if len(params) > 0 {
		sep := "?"
		if strings.Contains(endpoint, "?") {
			sep = "&"
		}
		path += sep + params.Encode()
	}
	return c.Request(ctx, method, path, body)
}

// ConnectionStatus is the outcome of TestConnection.
type ConnectionStatus struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// TestConnection performs a minimal product listing and reports the outcome
// as data. It never returns an error.
func (c *Client) TestConnection(ctx context.Context) ConnectionStatus {
	raw, err := c.Request(ctx, http.MethodGet, "produtos?limite=1", nil)
	if err != nil {
		return ConnectionStatus{
			Success: false,
			Message: "Erro na conexão com Bling: " + err.Error(),
		}
	}
	return ConnectionStatus{
		Success: true,
		Message: "Conexão com Bling estabelecida com sucesso",
		Data:    raw,
	}
}

func pagingQuery(page, limit int) string {
	q := url.Values{}
	q.Set("pagina", strconv.Itoa(page))
	q.Set("limite", strconv.Itoa(limit))
	return q.Encode()
}

func snippet(b []byte) string {
	s := strings.TrimSpace(string(b))
	if len(s) <= maxErrorBody {
		return s
	}
	cut := maxErrorBody
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
