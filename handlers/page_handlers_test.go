package handlers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portal/models"
)

func newPageApp(t *testing.T) (*fiber.App, string) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>Portal</h1>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "catalogo.html"), []byte("<h1>Catálogo</h1>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o644))

	h := NewPageHandler(dir)
	app := fiber.New()
	app.Get("/", h.HandleHome)
	app.Get("/index.html", RedirectTo("/"))
	app.Get("/catalogo", h.HandleCatalogo)
	app.Get("/catalogo.html", RedirectTo("/catalogo"))
	app.Get("/api/menu", h.HandleMenu)
	app.Get("/*", h.HandleStaticFile)
	return app, dir
}

func TestHandleHomeServesIndex(t *testing.T) {
	app, _ := newPageApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "<h1>Portal</h1>", string(body))
}

func TestHTMLAliasRedirectsToCleanPath(t *testing.T) {
	app, _ := newPageApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/catalogo.html", nil))
	require.NoError(t, err)
	assert.Equal(t, 302, resp.StatusCode)
	assert.Equal(t, "/catalogo", resp.Header.Get("Location"))
}

func TestHandleMenu(t *testing.T) {
	app, _ := newPageApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/menu", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body struct {
		MenuItems []models.MenuItem `json:"menu_items"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.MenuItems, 5)
	assert.Equal(t, models.MenuItem{Name: "Inicio", URL: "/"}, body.MenuItems[0])
	assert.Equal(t, models.MenuItem{Name: "Catálogo", URL: "/catalogo"}, body.MenuItems[1])
}

func TestStaticFallbackServesFile(t *testing.T) {
	app, _ := newPageApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/app.js", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "console.log(1)", string(body))
}

func TestStaticFallbackMissingFile(t *testing.T) {
	app, _ := newPageApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/nope.css", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestStaticFallbackRejectsTraversal(t *testing.T) {
	app, dir := newPageApp(t)
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(dir), "secret.txt"), []byte("s"), 0o644))

	resp, err := app.Test(httptest.NewRequest("GET", "/%2e%2e/secret.txt", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}
