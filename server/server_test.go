package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/IrumShehryar/Restaurant-Website/apperrors"
	"github.com/IrumShehryar/Restaurant-Website/config"
	"github.com/IrumShehryar/Restaurant-Website/helper"
	"github.com/IrumShehryar/Restaurant-Website/models"
	"github.com/IrumShehryar/Restaurant-Website/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Address:         "127.0.0.1",
			Port:            0,
			RateLimit:       1000,
			RateLimitBurst:  1000,
			RequestTimeout:  5 * time.Second,
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    5 * time.Second,
			IdleTimeout:     5 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Store: config.StoreConfig{Driver: config.DriverMemory},
	}
}

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	srv, err := Build(store.NewMemoryStore(), testConfig())
	require.NoError(t, err)
	srv.SetReady(true)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return srv, ts
}

type menuItemResponse struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	Data    models.MenuItemDTO `json:"data"`
}

func do(t *testing.T, method, url, body string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, r)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestMenuAPI_AuroraBitesLifecycle(t *testing.T) {
	_, ts := newTestServer(t)
	base := ts.URL + "/api/v1/menu"

	resp := do(t, http.MethodPost, base,
		`{"name":"Aurora Bites","price":5.50,"category":"starter","dietary":["vegetarian"]}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[menuItemResponse](t, resp)
	require.True(t, created.Success)
	require.Len(t, created.Data.ID, 24)
	assert.Equal(t, "Aurora Bites", created.Data.Name)
	assert.True(t, created.Data.Active)
	assert.Equal(t, []string{}, created.Data.Allergens)

	resp = do(t, http.MethodGet, base+"/"+created.Data.ID, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[menuItemResponse](t, resp)
	assert.Equal(t, created.Data, got.Data)

	resp = do(t, http.MethodPatch, base+"/"+created.Data.ID, `{"price":7.99}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decode[menuItemResponse](t, resp)
	want := created.Data
	want.Price = 7.99
	assert.Equal(t, want, updated.Data)

	resp = do(t, http.MethodDelete, base+"/"+created.Data.ID, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	deleted := decode[helper.Envelope](t, resp)
	assert.True(t, deleted.Success)
	assert.NotEmpty(t, deleted.Message)

	resp = do(t, http.MethodGet, base+"/"+created.Data.ID, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, apperrors.ErrCodeNotFound, decode[helper.ErrorResponse](t, resp).Code)
}

func TestMenuAPI_ErrorStatuses(t *testing.T) {
	_, ts := newTestServer(t)
	base := ts.URL + "/api/v1/menu"
	unknown := primitive.NewObjectID().Hex()

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
		code   apperrors.ErrorCode
	}{
		{"get malformed id", http.MethodGet, "/abc", "", http.StatusBadRequest, apperrors.ErrCodeMalformedInput},
		{"get unknown id", http.MethodGet, "/" + unknown, "", http.StatusNotFound, apperrors.ErrCodeNotFound},
		{"put unknown id", http.MethodPut, "/" + unknown, `{"price":1}`, http.StatusNotFound, apperrors.ErrCodeNotFound},
		{"patch malformed id", http.MethodPatch, "/123", `{"price":1}`, http.StatusBadRequest, apperrors.ErrCodeMalformedInput},
		{"delete unknown id", http.MethodDelete, "/" + unknown, "", http.StatusNotFound, apperrors.ErrCodeNotFound},
		{"delete malformed id", http.MethodDelete, "/xyz", "", http.StatusBadRequest, apperrors.ErrCodeMalformedInput},
		{"create without price", http.MethodPost, "", `{"name":"Aurora Bites","category":"starter"}`, http.StatusBadRequest, apperrors.ErrCodeValidation},
		{"create with string price", http.MethodPost, "", `{"name":"Aurora Bites","price":"5.50","category":"starter"}`, http.StatusBadRequest, apperrors.ErrCodeValidation},
		{"create with bad json", http.MethodPost, "", `{"name":`, http.StatusBadRequest, apperrors.ErrCodeValidation},
		{"create without body", http.MethodPost, "", "", http.StatusBadRequest, apperrors.ErrCodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := do(t, tt.method, base+tt.path, tt.body)
			assert.Equal(t, tt.status, resp.StatusCode)

			body := decode[helper.ErrorResponse](t, resp)
			assert.False(t, body.Success)
			assert.Equal(t, tt.code, body.Code)
			assert.NotEmpty(t, body.RequestID)
			assert.Equal(t, resp.Header.Get("X-Request-Id"), body.RequestID)
		})
	}
}

func TestMenuAPI_ListEmptyIsArray(t *testing.T) {
	_, ts := newTestServer(t)

	resp := do(t, http.MethodGet, ts.URL+"/api/v1/menu", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"data":[]`)
}

func TestMenuAPI_NoNativeIDInResponses(t *testing.T) {
	_, ts := newTestServer(t)

	resp := do(t, http.MethodPost, ts.URL+"/api/v1/menu", `{"name":"Birch Latte","price":3,"category":"drink"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = do(t, http.MethodGet, ts.URL+"/api/v1/menu", "")
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "_id")
	assert.NotContains(t, string(raw), "$oid")
}

func TestSubmissionAPI(t *testing.T) {
	_, ts := newTestServer(t)

	tests := []struct {
		path    string
		valid   string
		invalid string
	}{
		{
			path:    "/api/v1/reservations",
			valid:   `{"name":"Aino","email":"aino@example.com","phone":"+358401234567","date":"2026-12-24","time":"19:30","guests":4}`,
			invalid: `{"name":"Aino","email":"aino@example.com","phone":"+358401234567","date":"2026-12-24","time":"19:30","guests":0}`,
		},
		{
			path:    "/api/v1/orders",
			valid:   `{"customer_name":"Mikko","customer_email":"mikko@example.com","customer_phone":"0401234567","items":[{"name":"Reindeer Stew","quantity":2,"price":14.5}],"total":29}`,
			invalid: `{"customer_name":"Mikko","customer_email":"mikko@example.com","customer_phone":"0401234567","items":[],"total":0}`,
		},
		{
			path:    "/api/v1/contact",
			valid:   `{"name":"Mikko","email":"mikko@example.com","subject":"Groups","message":"Do you host 30 people?"}`,
			invalid: `{"name":"Mikko","email":"not-an-email","subject":"Groups","message":"Hi"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp := do(t, http.MethodPost, ts.URL+tt.path, tt.valid)
			require.Equal(t, http.StatusCreated, resp.StatusCode)

			resp = do(t, http.MethodPost, ts.URL+tt.path, tt.invalid)
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, apperrors.ErrCodeValidation, decode[helper.ErrorResponse](t, resp).Code)

			resp = do(t, http.MethodGet, ts.URL+tt.path, "")
			require.Equal(t, http.StatusOK, resp.StatusCode)
			list := decode[struct {
				Data []map[string]any `json:"data"`
			}](t, resp)
			require.Len(t, list.Data, 1)
			assert.Len(t, list.Data[0]["id"], 24)
		})
	}
}

func TestPages(t *testing.T) {
	_, ts := newTestServer(t)

	resp := do(t, http.MethodPost, ts.URL+"/api/v1/menu", `{"name":"Aurora Bites","price":5.5,"category":"starter"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp = do(t, http.MethodPost, ts.URL+"/api/v1/menu", `{"name":"Retired Soup","price":4,"category":"starter","active":false}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	for _, path := range []string{"/", "/about", "/contact", "/reservations"} {
		resp := do(t, http.MethodGet, ts.URL+path, "")
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
		assert.Contains(t, resp.Header.Get("Content-Type"), "text/html", path)
	}

	resp = do(t, http.MethodGet, ts.URL+"/menu", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	page, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(page), "Aurora Bites")
	assert.Contains(t, string(page), "€5.50")
	assert.NotContains(t, string(page), "Retired Soup")

	resp = do(t, http.MethodGet, ts.URL+"/static/css/style.css", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestNotFound(t *testing.T) {
	_, ts := newTestServer(t)

	resp := do(t, http.MethodGet, ts.URL+"/no-such-page", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))

	resp = do(t, http.MethodGet, ts.URL+"/api/v1/no-such-resource", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, apperrors.ErrCodeNotFound, decode[helper.ErrorResponse](t, resp).Code)
}

func TestMethodNotAllowed(t *testing.T) {
	_, ts := newTestServer(t)

	resp := do(t, http.MethodPost, ts.URL+"/api/v1/menu/"+primitive.NewObjectID().Hex(), `{"price":1}`)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))

	body := decode[helper.ErrorResponse](t, resp)
	assert.False(t, body.Success)
	assert.Equal(t, apperrors.ErrCodeMethodNotAllowed, body.Code)
	assert.Equal(t, resp.Header.Get("X-Request-Id"), body.RequestID)
}

func TestHealthAndReady(t *testing.T) {
	srv, ts := newTestServer(t)

	resp := do(t, http.MethodGet, ts.URL+"/health", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = do(t, http.MethodGet, ts.URL+"/ready", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	srv.SetReady(false)
	resp = do(t, http.MethodGet, ts.URL+"/ready", "")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestMetricsEndpoint(t *testing.T) {
	_, ts := newTestServer(t)

	do(t, http.MethodGet, ts.URL+"/api/v1/menu", "")

	resp := do(t, http.MethodGet, ts.URL+"/metrics", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "restaurant_http_requests_total")
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	srv, err := Build(store.NewMemoryStore(), testConfig())
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	url := "http://" + ln.Addr().String() + "/health"
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down")
	}

	_, err = http.Post(url, "application/json", bytes.NewReader(nil))
	assert.Error(t, err, "listener must be closed after shutdown")
}
