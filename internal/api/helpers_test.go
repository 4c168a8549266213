package api

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"bling-api-backend/config"
	"bling-api-backend/internal/bling"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type recordedRequest struct {
	Method string
	Path   string
	Query  map[string][]string
	Body   string
}

// fakeBling stands in for the remote ERP and records every call it receives.
type fakeBling struct {
	mu       sync.Mutex
	requests []recordedRequest
	status   int
	body     string
}

func (f *fakeBling) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	f.requests = append(f.requests, recordedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
		Body:   string(body),
	})
	status, respBody := f.status, f.body
	f.mu.Unlock()

	if status == 0 {
		status = http.StatusOK
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(respBody))
}

func (f *fakeBling) calls() []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedRequest(nil), f.requests...)
}

func (f *fakeBling) respond(status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status, f.body = status, body
}

func testConfig(apiURL, token string) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 3000, CORSOrigins: []string{"*"}},
		Bling: config.BlingConfig{
			APIURL:   apiURL,
			APIToken: token,
			Timeout:  2 * time.Second,
		},
	}
}

// setupRouter wires the real router and client to a fake upstream.
func setupRouter(t *testing.T, token string) (http.Handler, *fakeBling) {
	t.Helper()
	fake := &fakeBling{}
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	cfg := testConfig(server.URL, token)
	return NewRouter(cfg, bling.NewClient(cfg.Bling), nil), fake
}

func doRequest(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return serve(router, req)
}

func newRequest(method, path string) *http.Request {
	return httptest.NewRequest(method, path, nil)
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
