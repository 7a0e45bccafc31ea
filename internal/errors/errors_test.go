package errors

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pribylovaa/buy-and-sell/internal/service"
	"github.com/pribylovaa/buy-and-sell/internal/validation"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestToHTTP_BaseMapping(t *testing.T) {
	tcs := []struct {
		name       string
		in         error
		wantStatus int
		wantCode   string
	}{
		{"invalid_argument", fmt.Errorf("op: %w", service.ErrInvalidArgument), http.StatusBadRequest, "invalid_argument"},
		{"invalid_wrapped_validation", fmt.Errorf("op: %w: %w", service.ErrInvalidArgument, &validation.Error{Field: "title", Reason: "required"}), http.StatusBadRequest, "invalid_argument"},
		{"not_found", fmt.Errorf("op: %w", service.ErrNotFound), http.StatusNotFound, "not_found"},
		{"canceled", context.Canceled, StatusClientClosedRequest, "canceled"},
		{"deadline", fmt.Errorf("op: %w", context.DeadlineExceeded), http.StatusGatewayTimeout, "deadline_exceeded"},
		{"internal", fmt.Errorf("op: %w", service.ErrInternal), http.StatusInternalServerError, "internal"},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError, "internal"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			gotStatus, resp := ToHTTP(tc.in)
			require.Equal(t, tc.wantStatus, gotStatus)
			require.Equal(t, tc.wantCode, resp.Error.Code)
			require.NotEmpty(t, resp.Error.Message)
		})
	}
}

func TestToHTTP_NilError_Returns500Internal(t *testing.T) {
	gotStatus, resp := ToHTTP(nil)
	require.Equal(t, http.StatusInternalServerError, gotStatus)
	require.Equal(t, "internal", resp.Error.Code)
	require.Equal(t, "internal error", resp.Error.Message)
}

func TestWriteError_EnvelopeAndRequestID(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/offers/NOEXST", nil)
	r.Header.Set("X-Request-Id", "rid-123")
	w := httptest.NewRecorder()

	WriteError(w, r, fmt.Errorf("op: %w", service.ErrNotFound))

	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))

	body := w.Body.String()
	require.Equal(t, "not_found", gjson.Get(body, "error.code").String())
	require.Equal(t, "not found", gjson.Get(body, "error.message").String())
	require.Equal(t, "rid-123", gjson.Get(body, "error.request_id").String())
}

func TestWriteError_NoRequestID_OmitsField(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	WriteError(w, r, service.ErrInvalidArgument)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.False(t, gjson.Get(w.Body.String(), "error.request_id").Exists())
}
