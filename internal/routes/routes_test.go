package routes

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"contentflow/internal/middleware"
	"contentflow/internal/models"
	"contentflow/internal/repository"
	"contentflow/internal/services"
	"contentflow/internal/tier"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "routes-secret"

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	svc := services.NewContentService(services.Deps{
		Store: repository.NewMemoryStore(),
		Chain: tier.Default(),
		Users: repository.NewMemoryUsers(models.User{Email: "ada@example.com", Role: "admin"}),
		Log:   zerolog.Nop(),
	})
	return NewApp(svc, Options{JWTSecret: secret, Log: zerolog.Nop()})
}

func bearer(t *testing.T, role string) string {
	t.Helper()
	tok, err := middleware.SignToken(secret, models.Actor{UID: role + "-1", Email: role + "@example.com", Role: role},
		jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))})
	require.NoError(t, err)
	return "Bearer " + tok
}

func do(t *testing.T, app *fiber.App, method, path, role, body string) (int, map[string]any) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if role != "" {
		req.Header.Set("Authorization", bearer(t, role))
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]any{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return resp.StatusCode, out
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)
	status, body := do(t, app, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["ok"])
}

func TestForwardEndToEnd(t *testing.T) {
	app := newTestApp(t)

	status, body := do(t, app, http.MethodPut, "/admin/gallery", "admin", `{"galleryImages":["a.png"]}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Gallery updated successfully", body["message"])

	status, body = do(t, app, http.MethodPut, "/admin/forward", "admin", "")
	require.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, body["result"].(map[string]any)["operationId"])

	status, body = do(t, app, http.MethodGet, "/leadadmin/gallery", "leadadmin", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []any{"a.png"}, body["galleryImages"])

	status, body = do(t, app, http.MethodGet, "/admin/gallery", "admin", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []any{}, body["galleryImages"])
}

func TestAccessControl(t *testing.T) {
	app := newTestApp(t)

	status, _ := do(t, app, http.MethodPut, "/leadadmin/forward", "", "")
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = do(t, app, http.MethodPut, "/leadadmin/forward", "admin", "")
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = do(t, app, http.MethodGet, "/admin/gallery", "superadmin", "")
	assert.Equal(t, http.StatusOK, status, "higher roles may act on lower tiers")

	status, _ = do(t, app, http.MethodGet, "/superadmin/news", "", "")
	assert.Equal(t, http.StatusOK, status, "news reads are public")
}

func TestNewsFlow(t *testing.T) {
	app := newTestApp(t)

	status, _ := do(t, app, http.MethodPut, "/content/news", "admin", `{"newsItems":[{"title":"A","month":"May","year":2024}]}`)
	require.Equal(t, http.StatusOK, status)
	status, body := do(t, app, http.MethodPut, "/admin/news", "admin", `{"newsItems":[{"title":"B"}]}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "News updated successfully", body["message"])

	items := body["news"].(map[string]any)["newsItems"].([]any)
	require.Len(t, items, 2, "the /content alias writes to the admin tier")
	first := items[0].(map[string]any)
	assert.Equal(t, "A", first["title"])
	id := first["_id"].(string)

	status, body = do(t, app, http.MethodGet, "/admin/news/"+id, "", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "May", body["month"])

	status, body = do(t, app, http.MethodPost, "/admin/remove", "admin", `{}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "News item ID is required", body["error"])

	status, body = do(t, app, http.MethodPost, "/admin/remove", "admin", `{"id":"`+id+`"}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "News item deleted successfully", body["message"])

	status, body = do(t, app, http.MethodPost, "/admin/remove", "admin", `{"id":"`+id+`"}`)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "News item not found", body["message"])

	status, body = do(t, app, http.MethodGet, "/admin/news", "", "")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["newsItems"], 1)
}

func TestToggleAndBanner(t *testing.T) {
	app := newTestApp(t)

	status, body := do(t, app, http.MethodGet, "/admin/toggle", "admin", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, body["isActive"])
	assert.Equal(t, "Normal Day", body["message"])

	status, body = do(t, app, http.MethodPut, "/admin/toggle", "admin", `{"isActive":true}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Independence Day", body["message"])

	status, body = do(t, app, http.MethodPut, "/admin/toggle", "admin", `{"isActive":"yes"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.NotEmpty(t, body["error"])

	status, body = do(t, app, http.MethodGet, "/admin/banner", "admin", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "No banner found", body["message"])

	status, _ = do(t, app, http.MethodPut, "/admin/banner", "admin", `{"images":"x"}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = do(t, app, http.MethodPut, "/admin/banner", "admin", `{"images":["x.jpg"]}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []any{"x.jpg"}, body["images"])
}

func TestRejectAndPublishedRead(t *testing.T) {
	app := newTestApp(t)

	status, _ := do(t, app, http.MethodPut, "/admin/reject", "admin", "")
	assert.Equal(t, http.StatusNotFound, status, "admin has no reject route")

	status, _ = do(t, app, http.MethodPut, "/leadadmin/gallery", "leadadmin", `{"galleryImages":["l.png"]}`)
	require.Equal(t, http.StatusOK, status)
	status, body := do(t, app, http.MethodPut, "/leadadmin/reject", "leadadmin", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []any{"ada@example.com"}, body["result"].(map[string]any)["notified"])

	status, body = do(t, app, http.MethodGet, "/leadadmin/all-content", "", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []any{}, body["galleryImages"])

	status, _ = do(t, app, http.MethodPut, "/superadmin/gallery", "superadmin", `{"galleryImages":["s.png"]}`)
	require.Equal(t, http.StatusOK, status)
	status, _ = do(t, app, http.MethodPut, "/superadmin/forward", "superadmin", "")
	require.Equal(t, http.StatusOK, status)

	status, body = do(t, app, http.MethodGet, "/published/all-content", "", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []any{"s.png"}, body["galleryImages"])
	assert.Equal(t, false, body["toggle"])
}
