package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUserInfo(t *testing.T) {
	router, fake := setupRouter(t, "tok")
	fake.respond(http.StatusOK, `{"data":{"id":1,"nome":"Loja"}}`)

	w := doRequest(router, http.MethodGet, "/api/bling/user", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":1,"nome":"Loja"}`, w.Body.String())
	calls := fake.calls()
	require.Len(t, calls, 1)
	assert.Equal(t, http.MethodGet, calls[0].Method)
	assert.Equal(t, "/me", calls[0].Path)
}

func TestGetUserInfo_NoToken(t *testing.T) {
	router, fake := setupRouter(t, "")

	w := doRequest(router, http.MethodGet, "/api/bling/user", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, fake.calls())
}

func TestCustomRequest_ForwardsMethodBodyAndParams(t *testing.T) {
	router, fake := setupRouter(t, "tok")
	fake.respond(http.StatusOK, `{"data":{"id":9},"extra":true}`)

	w := doRequest(router, http.MethodPost, "/api/bling/custom",
		`{"endpoint":"/produtos/9","method":"patch","data":{"situacao":"I"},"params":{"origem":"web"}}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":{"id":9},"extra":true}`, w.Body.String())

	calls := fake.calls()
	require.Len(t, calls, 1)
	assert.Equal(t, http.MethodPatch, calls[0].Method)
	assert.Equal(t, "/produtos/9", calls[0].Path)
	assert.Equal(t, []string{"web"}, calls[0].Query["origem"])
	assert.JSONEq(t, `{"situacao":"I"}`, calls[0].Body)
}

func TestCustomRequest_DefaultsToGet(t *testing.T) {
	router, fake := setupRouter(t, "tok")
	fake.respond(http.StatusOK, `{"data":[]}`)

	w := doRequest(router, http.MethodPost, "/api/bling/custom", `{"endpoint":"categorias/produtos"}`)

	require.Equal(t, http.StatusOK, w.Code)
	calls := fake.calls()
	require.Len(t, calls, 1)
	assert.Equal(t, http.MethodGet, calls[0].Method)
	assert.Equal(t, "/categorias/produtos", calls[0].Path)
	assert.Empty(t, calls[0].Body)
}

func TestCustomRequest_Validation(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{"missing endpoint", `{"method":"GET"}`},
		{"empty endpoint", `{"endpoint":""}`},
		{"unsupported method", `{"endpoint":"produtos","method":"TRACE"}`},
		{"malformed body", `{"endpoint":`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router, fake := setupRouter(t, "tok")

			w := doRequest(router, http.MethodPost, "/api/bling/custom", tc.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), `"error"`)
			assert.Empty(t, fake.calls())
		})
	}
}

func TestCustomRequest_RemoteFailure(t *testing.T) {
	router, fake := setupRouter(t, "tok")
	fake.respond(http.StatusUnprocessableEntity, `{"error":{"message":"inválido"}}`)

	w := doRequest(router, http.MethodPost, "/api/bling/custom", `{"endpoint":"produtos","method":"POST","data":{}}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "422")
}
