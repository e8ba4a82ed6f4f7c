package apperror

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHandler() echo.HTTPErrorHandler {
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	return HTTPErrorHandler(log)
}

func invoke(t *testing.T, err error, method string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	testHandler()(err, c)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	errObj, ok := body["error"].(map[string]any)
	require.True(t, ok, "response must contain an error object")
	return errObj
}

func TestHTTPErrorHandler_AppError(t *testing.T) {
	rec := invoke(t, NewNotFound("word", 42), http.MethodGet)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	errObj := decodeError(t, rec)
	assert.Equal(t, "not_found", errObj["code"])
	assert.Equal(t, "word 42 not found", errObj["message"])
}

func TestHTTPErrorHandler_AppErrorWithDetails(t *testing.T) {
	err := ErrValidation.WithDetails(map[string]any{"field": "strength"})
	rec := invoke(t, err, http.MethodGet)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	errObj := decodeError(t, rec)
	assert.Equal(t, "validation_error", errObj["code"])
	details, ok := errObj["details"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "strength", details["field"])
}

func TestHTTPErrorHandler_EchoHTTPError(t *testing.T) {
	rec := invoke(t, echo.NewHTTPError(http.StatusBadRequest, "invalid source_id"), http.MethodGet)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	errObj := decodeError(t, rec)
	assert.Equal(t, "bad_request", errObj["code"])
	assert.Equal(t, "invalid source_id", errObj["message"])
}

func TestHTTPErrorHandler_UnknownError(t *testing.T) {
	rec := invoke(t, errors.New("boom"), http.MethodGet)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	errObj := decodeError(t, rec)
	assert.Equal(t, "internal_error", errObj["code"])
	// Internal details must not leak to the client
	assert.NotContains(t, errObj["message"], "boom")
}

func TestHTTPErrorHandler_HeadRequest(t *testing.T) {
	rec := invoke(t, ErrNotFound, http.MethodHead)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}
