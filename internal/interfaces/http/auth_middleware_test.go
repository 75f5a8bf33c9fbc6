package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/domain/entity"
	apphttp "github.com/jmcstoltze/aplicacion-pos-on-render/internal/interfaces/http"
	pkgjwt "github.com/jmcstoltze/aplicacion-pos-on-render/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testUsername  = "jperez"
	testIssuer    = "pos-backoffice-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y cargar locals
//   - RequireRoles para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(allowedRoles ...string) *fiber.App {
	app := fiber.New(fiber.Config{
		// Silenciar errores internos en los tests
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	// Ruta protegida: JWT + RBAC
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRoles(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

// tokenForRole genera un JWT con el rol indicado.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testUsername, role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRoles
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: El usuario tiene el rol requerido → debe pasar (HTTP 200).
func TestRequireRoles_AdminAccedeRutaAdmin(t *testing.T) {
	app := buildTestApp(entity.RoleAdministrador)

	resp := doRequest(t, app, tokenForRole(t, entity.RoleAdministrador))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var payload map[string]any
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, entity.RoleAdministrador, payload["role"])
}

// Caso 2: Rol fuera de la lista → 403, nunca 401 (el token es válido).
func TestRequireRoles_CajeroNoAccedeRutaAdmin(t *testing.T) {
	app := buildTestApp(entity.RoleAdministrador)

	resp := doRequest(t, app, tokenForRole(t, entity.RoleCajero))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// Caso 3: Varios roles permitidos → cualquiera de ellos pasa.
func TestRequireRoles_ListaDeRoles(t *testing.T) {
	app := buildTestApp(entity.RoleAdministrador, entity.RoleJefeLocal)

	resp := doRequest(t, app, tokenForRole(t, entity.RoleJefeLocal))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinHeader(t *testing.T) {
	app := buildTestApp(entity.RoleAdministrador)

	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	app := buildTestApp(entity.RoleAdministrador)

	// Sin el prefijo "Bearer "
	resp := doRequest(t, app, "token-a-secas")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenConFirmaIncorrecta(t *testing.T) {
	app := buildTestApp(entity.RoleAdministrador)

	tok, err := pkgjwt.Generate("otro-secret", testUserID, testUsername, entity.RoleAdministrador, testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenExpirado(t *testing.T) {
	app := buildTestApp(entity.RoleAdministrador)

	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testUsername, entity.RoleAdministrador, testIssuer, -5)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Los locals quedan cargados con la identidad del token.
func TestAuthMiddleware_CargaLocals(t *testing.T) {
	app := fiber.New()
	app.Get("/whoami",
		apphttp.AuthMiddleware(testJWTSecret),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{
				"user_id": apphttp.GetUserID(c),
				"role":    apphttp.GetRole(c),
			})
		},
	)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", tokenForRole(t, entity.RoleJefeLocal))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var payload map[string]string
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, testUserID, payload["user_id"])
	assert.Equal(t, entity.RoleJefeLocal, payload["role"])
}
