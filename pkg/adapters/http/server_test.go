package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/sieve"
	httpAdapter "github.com/aretw0/sieve/pkg/adapters/http"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	engine, err := sieve.New(map[string]any{
		"title":     "string",
		"tags":      "string[]",
		"embedding": "vector[2]",
	})
	require.NoError(t, err)

	srv := httptest.NewServer(httpAdapter.NewHandler(engine))
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestHandler_Validate(t *testing.T) {
	srv := newTestServer(t)

	t.Run("Valid Document", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/v1/validate", `{"title":"ok","tags":["a"]}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decode[map[string]any](t, resp)
		assert.Equal(t, true, body["valid"])
	})

	t.Run("Invalid Document", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/v1/validate", `{"tags":["a",1]}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decode[map[string]any](t, resp)
		assert.Equal(t, false, body["valid"])
		assert.Equal(t, "tags.1", body["path"])
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/v1/validate", `{`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestHandler_DocumentLifecycle(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/v1/documents", `{"id":"d1","title":"ok","embedding":[0.1,0.2]}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	receipt := decode[map[string]any](t, resp)
	assert.Equal(t, "d1", receipt["id"])

	getResp, err := http.Get(srv.URL + "/v1/documents/d1")
	require.NoError(t, err)
	defer getResp.Body.Close()
	require.Equal(t, http.StatusOK, getResp.StatusCode)
	doc := decode[map[string]any](t, getResp)
	assert.Equal(t, "ok", doc["title"])

	listResp, err := http.Get(srv.URL + "/v1/documents")
	require.NoError(t, err)
	defer listResp.Body.Close()
	list := decode[map[string][]string](t, listResp)
	assert.Contains(t, list["ids"], "d1")

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/v1/documents/d1", nil)
	require.NoError(t, err)
	delResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer delResp.Body.Close()
	assert.Equal(t, http.StatusNoContent, delResp.StatusCode)

	missing, err := http.Get(srv.URL + "/v1/documents/d1")
	require.NoError(t, err)
	defer missing.Body.Close()
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
}

func TestHandler_RejectsNonConforming(t *testing.T) {
	srv := newTestServer(t)

	t.Run("Schema Mismatch", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/v1/documents", `{"title":42,"embedding":[0.1,0.2]}`)
		require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		body := decode[map[string]any](t, resp)
		assert.Equal(t, "title", body["path"])
	})

	t.Run("Missing Vector", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/v1/documents", `{"title":"ok"}`)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("Non-String ID", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/v1/documents", `{"id":7,"title":"ok","embedding":[0.1,0.2]}`)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})
}

func TestHandler_Schema(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/v1/schema")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	def := decode[map[string]any](t, resp)
	assert.Equal(t, "string", def["title"])
	assert.Equal(t, "vector[2]", def["embedding"])
}

func TestHandler_Health(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
