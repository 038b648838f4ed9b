package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSwagger_DocumentIsValid(t *testing.T) {
	doc, err := GetSwagger()
	require.NoError(t, err)

	for path, methods := range map[string][]string{
		"/health":                           {http.MethodGet},
		"/bankdata":                         {http.MethodPost},
		"/get_account/{account}":            {http.MethodGet, http.MethodPut},
		"/atm/withdraw":                     {http.MethodPost},
		"/atm/deposit":                      {http.MethodPost},
		"/atm/balance/{account}/{pin}":      {http.MethodGet},
		"/atm/transactions/{account}/{pin}": {http.MethodGet},
	} {
		item := doc.Paths.Find(path)
		require.NotNil(t, item, path)
		for _, method := range methods {
			assert.NotNil(t, item.GetOperation(method), "%s %s", method, path)
		}
	}

	codes := doc.Components.Schemas["ErrorCode"].Value.Enum
	assert.Len(t, codes, 7)
}

func TestDocsRoutes(t *testing.T) {
	mux := http.NewServeMux()
	RegisterDocsRoutes(mux)

	t.Run("root redirects", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusMovedPermanently, rec.Code)
		assert.Equal(t, "/docs", rec.Header().Get("Location"))
	})

	t.Run("json document", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs/openapi", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "3.0.3", body["openapi"])
	})

	t.Run("yaml document", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs/openapi.yaml", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, openAPIDocument, rec.Body.Bytes())
	})

	t.Run("swagger ui", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "/docs/openapi")
	})
}
