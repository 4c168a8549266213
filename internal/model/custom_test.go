package model

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomRequest(t *testing.T) {
	var req CustomRequest
	require.NoError(t, json.Unmarshal([]byte(`{
		"endpoint": "produtos",
		"method": "post",
		"data": {"nome": "x"},
		"params": {"pagina": 2, "tipo": "P", "ids": [1, 2], "skip": null}
	}`), &req))

	assert.Equal(t, "POST", req.NormalizedMethod())
	assert.Equal(t, url.Values{"pagina": {"2"}, "tipo": {"P"}, "ids": {"1", "2"}}, req.Query())
	assert.Equal(t, json.RawMessage(`{"nome": "x"}`), req.Body())
}

func TestCustomRequest_Defaults(t *testing.T) {
	var req CustomRequest
	require.NoError(t, json.Unmarshal([]byte(`{"endpoint": "me", "data": null}`), &req))

	assert.Equal(t, "GET", req.NormalizedMethod())
	assert.Empty(t, req.Query())
	assert.Nil(t, req.Body())
}
