package helper

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/IrumShehryar/Restaurant-Website/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		code apperrors.ErrorCode
		want int
	}{
		{apperrors.ErrCodeValidation, http.StatusBadRequest},
		{apperrors.ErrCodeMalformedInput, http.StatusBadRequest},
		{apperrors.ErrCodeNotFound, http.StatusNotFound},
		{apperrors.ErrCodeMethodNotAllowed, http.StatusMethodNotAllowed},
		{apperrors.ErrCodeRateLimitExceeded, http.StatusTooManyRequests},
		{apperrors.ErrCodeStoreUnavailable, http.StatusServiceUnavailable},
		{apperrors.ErrCodeInternal, http.StatusInternalServerError},
		{apperrors.ErrorCode("SOMETHING_ELSE"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(tt.code))
		})
	}
}

func TestRespondError_StructuredError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/menu/abc", nil)
	req = req.WithContext(WithRequestID(req.Context(), "req-1"))
	rec := httptest.NewRecorder()

	RespondError(rec, req, apperrors.NewWithContext(apperrors.ErrCodeMalformedInput, "invalid id format",
		map[string]any{"id": "abc"}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.False(t, body.Success)
	assert.Equal(t, apperrors.ErrCodeMalformedInput, body.Code)
	assert.Equal(t, "invalid id format", body.Message)
	assert.Equal(t, "abc", body.Details["id"])
	assert.Equal(t, "req-1", body.RequestID)
	assert.False(t, body.Timestamp.IsZero())
}

func TestRespondError_HidesUnexpectedErrors(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/menu", nil)
	rec := httptest.NewRecorder()

	RespondError(rec, req, errors.New("connection string contains password=hunter2"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "hunter2")

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, apperrors.ErrCodeInternal, body.Code)
	assert.NotEmpty(t, body.RequestID)
}

func TestRespondSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondSuccess(rec, http.StatusCreated, "created", map[string]string{"id": "1"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"created","data":{"id":"1"}}`, rec.Body.String())
}

func TestRequestID(t *testing.T) {
	assert.Empty(t, RequestID(context.Background()))
	assert.Equal(t, "abc", RequestID(WithRequestID(context.Background(), "abc")))
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name  *string   `json:"name"`
		Price *float64  `json:"price"`
		Tags  *[]string `json:"tags"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr bool
		field   string
	}{
		{name: "valid", body: `{"name":"Aurora Bites","price":5.5}`},
		{name: "null is absent", body: `{"name":null}`},
		{name: "empty body", body: ``, wantErr: true},
		{name: "syntax error", body: `{"name":`, wantErr: true},
		{name: "price as string", body: `{"price":"5.50"}`, wantErr: true, field: "price"},
		{name: "tags as string", body: `{"tags":"vegan"}`, wantErr: true, field: "tags"},
		{name: "trailing whitespace", body: "{\"price\":6.00}\n"},
		{name: "trailing value", body: `{"price":6.00} {"price":"x"} garbage`, wantErr: true},
		{name: "trailing garbage", body: `{"price":6.00}garbage`, wantErr: true},
		{name: "trailing brace", body: `{"price":6.00}}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			var p payload
			err := DecodeJSON(rec, req, &p)
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Equal(t, apperrors.ErrCodeValidation, apperrors.CodeOf(err))
			if tt.field != "" {
				var se *apperrors.StructuredError
				require.ErrorAs(t, err, &se)
				assert.Contains(t, se.Context["fields"], tt.field)
			}
		})
	}
}

func TestDecodeJSON_NullLeavesFieldNil(t *testing.T) {
	var p struct {
		Price *float64 `json:"price"`
	}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"price":null}`))
	require.NoError(t, DecodeJSON(httptest.NewRecorder(), req, &p))
	assert.Nil(t, p.Price)
}
