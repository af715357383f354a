package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JSwartzmiller/gym/internal/config"
	"github.com/JSwartzmiller/gym/internal/errs"
	"github.com/JSwartzmiller/gym/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer() *server.Server {
	log := zerolog.Nop()
	return &server.Server{
		Config: &config.Config{
			Primary: config.Primary{Env: "test"},
			Server:  config.ServerConfig{CORSAllowedOrigins: []string{"*"}},
		},
		Logger: &log,
	}
}

func runErrorHandler(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	NewGlobalMiddlewares(testServer()).GlobalErrorHandler(err, c)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestGlobalErrorHandler_HTTPError(t *testing.T) {
	rec, body := runErrorHandler(t, errs.NewBadRequestError("Validation failed: label is required", true, nil, []errs.FieldError{
		{Field: "label", Error: "is required"},
	}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Validation failed: label is required", body["error"])
	assert.Equal(t, "BAD_REQUEST", body["code"])
	assert.Len(t, body["errors"], 1)
}

func TestGlobalErrorHandler_EchoNotFound(t *testing.T) {
	rec, body := runErrorHandler(t, echo.ErrNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Route not found", body["error"])
}

func TestGlobalErrorHandler_EchoMethodNotAllowed(t *testing.T) {
	rec, body := runErrorHandler(t, echo.ErrMethodNotAllowed)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "Method Not Allowed", body["error"])
}

func TestGlobalErrorHandler_PlainErrorKeepsMessage(t *testing.T) {
	rec, body := runErrorHandler(t, errors.New("dial tcp: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "dial tcp: connection refused", body["error"])
}

func TestStatusFromError(t *testing.T) {
	assert.Equal(t, http.StatusTooManyRequests, statusFromError(errs.NewTooManyRequestsError("slow down"), 200))
	assert.Equal(t, http.StatusNotFound, statusFromError(echo.ErrNotFound, 200))
	assert.Equal(t, http.StatusInternalServerError, statusFromError(errors.New("boom"), 200))
	assert.Equal(t, http.StatusBadGateway, statusFromError(errors.New("boom"), http.StatusBadGateway))
}

func TestRequestID(t *testing.T) {
	e := echo.New()
	var seen string
	h := RequestID()(func(c echo.Context) error {
		seen = GetRequestID(c)
		return nil
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc")
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))

	assert.Equal(t, "abc", seen)
	assert.Equal(t, "abc", rec.Header().Get(RequestIDHeader))
}

func TestContextEnhancerStoresLogger(t *testing.T) {
	e := echo.New()
	var fromEcho *zerolog.Logger
	h := NewContextEnhancer(testServer()).EnhanceContext()(func(c echo.Context) error {
		fromEcho = GetLogger(c)
		return nil
	})

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	require.NoError(t, h(c))

	require.NotNil(t, fromEcho)
	assert.Same(t, fromEcho, c.Get(LoggerKey))
}
