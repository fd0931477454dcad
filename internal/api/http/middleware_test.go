package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/roster-service/internal/observability"
	apperrors "github.com/spec-kit/roster-service/pkg/util"
)

type errorBody struct {
	Status  string `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail"`
}

func decodeError(t *testing.T, resp *http.Response) errorBody {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body errorBody
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func newEnvelopeTestApp() *fiber.App {
	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 5*time.Second)
	return app
}

func TestErrorHandlingMiddleware_DomainError(t *testing.T) {
	app := newEnvelopeTestApp()
	app.Get("/boom", func(c *fiber.Ctx) error {
		return apperrors.NewTeamConflict("Team is already full. Choose some other team")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeError(t, resp)
	assert.Equal(t, "failed", body.Status)
	assert.Equal(t, apperrors.CodeTeamConflict, body.Code)
	assert.Equal(t, "Team is already full. Choose some other team", body.Message)
}

func TestErrorHandlingMiddleware_HidesAuthDetail(t *testing.T) {
	app := newEnvelopeTestApp()
	app.Post("/signin", func(c *fiber.Ctx) error {
		return apperrors.NewAuthenticationFailed("no such user")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/signin", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body := decodeError(t, resp)
	assert.Equal(t, apperrors.CodeAuthFailed, body.Code)
	assert.Equal(t, "Username and password does not match", body.Message)
	assert.Empty(t, body.Detail, "internal detail must not reach the wire")
}

func TestErrorHandlingMiddleware_UnknownError(t *testing.T) {
	app := newEnvelopeTestApp()
	app.Get("/oops", func(c *fiber.Ctx) error {
		return errors.New("pool exhausted")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/oops", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	body := decodeError(t, resp)
	assert.Equal(t, apperrors.CodeInternal, body.Code)
	assert.Equal(t, "Something went wrong!", body.Message)
	assert.NotContains(t, body.Detail, "pool exhausted", "store errors never pass through untranslated")
}

func TestErrorHandlingMiddleware_PanicRecovery(t *testing.T) {
	app := newEnvelopeTestApp()
	app.Get("/panic", func(c *fiber.Ctx) error {
		panic("boom")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/panic", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, apperrors.CodeInternal, decodeError(t, resp).Code)
}

func TestErrorHandlingMiddleware_FiberError(t *testing.T) {
	app := newEnvelopeTestApp()
	app.Post("/create", func(c *fiber.Ctx) error {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/create", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeError(t, resp)
	assert.Equal(t, "failed", body.Status)
	assert.Equal(t, "invalid payload", body.Message)
}

func TestRequestMetrics_RecordFinalStatus(t *testing.T) {
	metrics := observability.NewMetrics()
	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), metrics, 5*time.Second)
	app.Get("/boom", func(c *fiber.Ctx) error {
		return apperrors.NewTeamConflict("Team is already full. Choose some other team")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	assert.Equal(t, int64(1), metrics.RequestCount("/boom", http.MethodGet, http.StatusBadRequest),
		"request counter carries the status the envelope returned")
	assert.Zero(t, metrics.RequestCount("/boom", http.MethodGet, http.StatusOK))
	assert.Equal(t, int64(1), metrics.ErrorCount("/boom", http.MethodGet, apperrors.CodeTeamConflict))
}

func TestErrorHandlingMiddleware_SuccessPassthrough(t *testing.T) {
	app := newEnvelopeTestApp()
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "success"})
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
