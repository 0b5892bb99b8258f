package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockbit/stockbit-api/internal/domain/entity"
	httpiface "github.com/stockbit/stockbit-api/internal/interfaces/http"
	"github.com/stockbit/stockbit-api/pkg/jwt"
)

const testSecret = "secreto-de-prueba"

func newProtectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/protegida", httpiface.AuthMiddleware(testSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"userId":    httpiface.GetUserID(c),
			"accountId": httpiface.GetAccountID(c),
			"role":      httpiface.GetRole(c),
		})
	})
	app.Put("/solo-admin", httpiface.AuthMiddleware(testSecret), httpiface.RequireRole(entity.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func errorCode(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Code
}

func TestAuthMiddleware_SinHeader(t *testing.T) {
	app := newProtectedApp()
	resp := doRequest(t, app, fiber.MethodGet, "/protegida", "")

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_TOKEN", errorCode(t, resp))
}

func TestAuthMiddleware_EsquemaInvalido(t *testing.T) {
	app := newProtectedApp()
	resp := doRequest(t, app, fiber.MethodGet, "/protegida", "Basic abc123")

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", errorCode(t, resp))
}

func TestAuthMiddleware_TokenVacio(t *testing.T) {
	app := newProtectedApp()
	resp := doRequest(t, app, fiber.MethodGet, "/protegida", "Bearer ")

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_TOKEN", errorCode(t, resp))
}

func TestAuthMiddleware_TokenInvalido(t *testing.T) {
	app := newProtectedApp()
	resp := doRequest(t, app, fiber.MethodGet, "/protegida", "Bearer no-es-un-jwt")

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", errorCode(t, resp))
}

func TestAuthMiddleware_FirmaDeOtroSecreto(t *testing.T) {
	token, err := jwt.Generate("otro-secreto", "u1", "u1", entity.RoleAdmin, "stockbit-test", 60)
	require.NoError(t, err)

	app := newProtectedApp()
	resp := doRequest(t, app, fiber.MethodGet, "/protegida", "Bearer "+token)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", errorCode(t, resp))
}

func TestAuthMiddleware_TokenValidoPueblaLocals(t *testing.T) {
	token, err := jwt.Generate(testSecret, "u1", "u1", entity.RoleUser, "stockbit-test", 60)
	require.NoError(t, err)

	app := newProtectedApp()
	resp := doRequest(t, app, fiber.MethodGet, "/protegida", "Bearer "+token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "u1", body["userId"])
	assert.Equal(t, "u1", body["accountId"])
	assert.Equal(t, entity.RoleUser, body["role"])
}

func TestRequireRole_RolInsuficiente(t *testing.T) {
	token, err := jwt.Generate(testSecret, "u1", "u1", entity.RoleUser, "stockbit-test", 60)
	require.NoError(t, err)

	app := newProtectedApp()
	resp := doRequest(t, app, fiber.MethodPut, "/solo-admin", "Bearer "+token)

	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "FORBIDDEN", errorCode(t, resp))
}

func TestRequireRole_AdminPasa(t *testing.T) {
	token, err := jwt.Generate(testSecret, "u1", "u1", entity.RoleAdmin, "stockbit-test", 60)
	require.NoError(t, err)

	app := newProtectedApp()
	resp := doRequest(t, app, fiber.MethodPut, "/solo-admin", "Bearer "+token)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
