package apperror

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Message(t *testing.T) {
	assert.Equal(t, "bad_request: Invalid request", ErrBadRequest.Error())

	wrapped := ErrInternal.WithInternal(errors.New("disk full"))
	assert.Equal(t, "internal_error: An internal error occurred (disk full)", wrapped.Error())
}

func TestError_CopiesDoNotMutateShared(t *testing.T) {
	custom := ErrBadRequest.WithMessage("missing sessionId")
	assert.Equal(t, "missing sessionId", custom.Message)
	assert.Equal(t, "Invalid request", ErrBadRequest.Message)

	withDetails := ErrValidation.WithDetails(map[string]any{"email": "required"})
	assert.Empty(t, ErrValidation.Details)
	assert.Equal(t, "required", withDetails.Details["email"])
}

func TestError_UnwrapAndAs(t *testing.T) {
	cause := errors.New("boom")
	err := fmt.Errorf("handling: %w", NewInternal("render failed", cause))

	var appErr *Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPStatus)
	assert.ErrorIs(t, err, cause)
}

func TestToHTTPError(t *testing.T) {
	code, body := ToHTTPError(NewValidation(map[string]string{"name": "required"}))
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	inner := body["error"].(map[string]any)
	assert.Equal(t, "validation_error", inner["code"])
	assert.Equal(t, map[string]any{"name": "required"}, inner["details"])

	code, body = ToHTTPError(errors.New("plain"))
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "internal_error", body["error"].(map[string]any)["code"])
}

func TestWrite(t *testing.T) {
	var logBuf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&logBuf, nil))

	rec := httptest.NewRecorder()
	Write(rec, httptest.NewRequest(http.MethodPost, "/live/events", nil), log, ErrSessionNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "session_not_found", body["error"]["code"])
	assert.Empty(t, logBuf.String(), "4xx not logged")

	rec = httptest.NewRecorder()
	Write(rec, httptest.NewRequest(http.MethodGet, "/", nil), log, NewInternal("render failed", errors.New("boom")))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, logBuf.String(), "boom")
}

func TestWrite_Head(t *testing.T) {
	rec := httptest.NewRecorder()
	Write(rec, httptest.NewRequest(http.MethodHead, "/", nil), nil, ErrNotFound)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Zero(t, rec.Body.Len())
}
