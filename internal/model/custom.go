package model

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// CustomMethods lists the verbs accepted by the pass-through endpoint.
var CustomMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete}

// CustomRequest is the body accepted by POST /api/bling/custom.
type CustomRequest struct {
	Endpoint string          `json:"endpoint" binding:"required"`
	Method   string          `json:"method"`
	Data     json.RawMessage `json:"data"`
	Params   map[string]any  `json:"params"`
}

// NormalizedMethod returns the upper-cased method, GET when omitted.
func (r CustomRequest) NormalizedMethod() string {
	m := strings.ToUpper(strings.TrimSpace(r.Method))
	if m == "" {
		return http.MethodGet
	}
	return m
}

// Query renders Params as query values. Nil values are skipped and slices
// become repeated keys.
func (r CustomRequest) Query() url.Values {
	q := url.Values{}
	for k, v := range r.Params {
		switch t := v.(type) {
		case nil:
		case []any:
			for _, item := range t {
				q.Add(k, fmt.Sprint(item))
			}
		default:
			q.Add(k, fmt.Sprint(t))
		}
	}
	return q
}

// Body returns the payload to forward, or nil when data is absent or null.
func (r CustomRequest) Body() any {
	trimmed := strings.TrimSpace(string(r.Data))
	if trimmed == "" || trimmed == "null" {
		return nil
	}
	return r.Data
}
