package handlers

import (
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"portal/models"
)

// PageHandler serves the frontend HTML pages, the navigation menu and the
// static-file fallback.
type PageHandler struct {
	frontendDir string
}

func NewPageHandler(frontendDir string) *PageHandler {
	return &PageHandler{frontendDir: frontendDir}
}

// FrontendDir reports the content root the pages are served from.
func (h *PageHandler) FrontendDir() string {
	return h.frontendDir
}

func (h *PageHandler) sendPage(c *fiber.Ctx, name string) error {
	return c.SendFile(filepath.Join(h.frontendDir, name))
}

// GET /
func (h *PageHandler) HandleHome(c *fiber.Ctx) error {
	return h.sendPage(c, "index.html")
}

// GET /catalogo
func (h *PageHandler) HandleCatalogo(c *fiber.Ctx) error {
	return h.sendPage(c, "catalogo.html")
}

// GET /distribuidores
func (h *PageHandler) HandleDistribuidores(c *fiber.Ctx) error {
	return h.sendPage(c, "distribuidores.html")
}

// GET /buddy
func (h *PageHandler) HandleBuddyPage(c *fiber.Ctx) error {
	return h.sendPage(c, "buddy.html")
}

// RedirectTo returns a handler redirecting the ".html" aliases to their clean path.
func RedirectTo(target string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Redirect(target)
	}
}

// HandleMenu returns the fixed navigation list.
// GET /api/menu
func (h *PageHandler) HandleMenu(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"menu_items": []models.MenuItem{
			{Name: "Inicio", URL: "/"},
			{Name: "Catálogo", URL: "/catalogo"},
			{Name: "Buddy", URL: "/buddy"},
			{Name: "Portal", URL: "/portal"},
			{Name: "Distribuidores", URL: "/distribuidores"},
		},
	})
}

// HandleStaticFile serves any remaining path as a file under the content root,
// or 404. Registered last so API and page routes take precedence.
func (h *PageHandler) HandleStaticFile(c *fiber.Ctx) error {
	// Clean with a leading separator so "../" cannot escape the content root.
	requested := filepath.Clean(string(filepath.Separator) + c.Params("*"))
	path := filepath.Join(h.frontendDir, requested)

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return c.SendStatus(fiber.StatusNotFound)
	}
	return c.SendFile(path)
}
