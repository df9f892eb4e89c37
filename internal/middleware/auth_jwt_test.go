package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"contentflow/internal/models"
	"contentflow/internal/tier"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newAuthApp() *fiber.App {
	app := fiber.New()
	app.Use(JWTActor(testSecret))
	app.Get("/whoami", func(c *fiber.Ctx) error {
		a, ok := ActorFromLocals(c)
		if !ok {
			return c.SendString("anonymous")
		}
		return c.SendString(a.Role + ":" + a.Email)
	})
	app.Get("/lead", RequireTier(tier.Default(), "leadadmin"), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func token(t *testing.T, secret, role string) string {
	t.Helper()
	tok, err := SignToken(secret, models.Actor{UID: "u1", Email: role + "@example.com", Role: role},
		jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))})
	require.NoError(t, err)
	return tok
}

func get(t *testing.T, app *fiber.App, path, bearer string) (int, string) {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	buf := make([]byte, 256)
	n, _ := resp.Body.Read(buf)
	return resp.StatusCode, string(buf[:n])
}

func TestJWTActorAnonymous(t *testing.T) {
	code, body := get(t, newAuthApp(), "/whoami", "")
	assert.Equal(t, 200, code)
	assert.Equal(t, "anonymous", body)
}

func TestJWTActorValidToken(t *testing.T) {
	code, body := get(t, newAuthApp(), "/whoami", token(t, testSecret, "admin"))
	assert.Equal(t, 200, code)
	assert.Equal(t, "admin:admin@example.com", body)
}

func TestJWTActorRejectsBadSignature(t *testing.T) {
	code, _ := get(t, newAuthApp(), "/whoami", token(t, "other-secret", "admin"))
	assert.Equal(t, 401, code)
}

func TestJWTActorRejectsExpired(t *testing.T) {
	tok, err := SignToken(testSecret, models.Actor{UID: "u1", Role: "admin"},
		jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute))})
	require.NoError(t, err)

	code, _ := get(t, newAuthApp(), "/whoami", tok)
	assert.Equal(t, 401, code)
}

func TestRequireTier(t *testing.T) {
	app := newAuthApp()

	code, _ := get(t, app, "/lead", "")
	assert.Equal(t, 401, code)

	code, _ = get(t, app, "/lead", token(t, testSecret, "admin"))
	assert.Equal(t, 403, code)

	code, _ = get(t, app, "/lead", token(t, testSecret, "leadadmin"))
	assert.Equal(t, 200, code)

	code, _ = get(t, app, "/lead", token(t, testSecret, "superadmin"))
	assert.Equal(t, 200, code)
}
