package routes

import (
	"github.com/gofiber/fiber/v2"

	"portal/handlers"
)

// SetupRoutes defines all the routes for the application. API routes are
// registered before the pages and the static fallback so /api paths never
// fall through to file serving.
func SetupRoutes(app *fiber.App, products *handlers.ProductHandler, buddy *handlers.BuddyHandler, pages *handlers.PageHandler) {
	api := app.Group("/api")

	// --- Product CRUD ---
	api.Get("/products", products.HandleListProducts)
	api.Post("/products", products.HandleCreateProduct)
	api.Get("/products/:productId", products.HandleGetProduct)
	api.Put("/products/:productId", products.HandleUpdateProduct)
	api.Delete("/products/:productId", products.HandleDeleteProduct)

	// --- Buddy assistant ---
	api.Post("/buddy", buddy.HandleBuddy)
	api.Get("/buddy/speech", buddy.HandleSpeech)

	// --- Navigation ---
	api.Get("/menu", pages.HandleMenu)

	// --- Pages (.html aliases redirect to the clean path) ---
	app.Get("/", pages.HandleHome)
	app.Get("/index.html", handlers.RedirectTo("/"))
	app.Get("/catalogo", pages.HandleCatalogo)
	app.Get("/catalogo.html", handlers.RedirectTo("/catalogo"))
	app.Get("/distribuidores", pages.HandleDistribuidores)
	app.Get("/distribuidores.html", handlers.RedirectTo("/distribuidores"))
	app.Get("/buddy", pages.HandleBuddyPage)
	app.Get("/buddy.html", handlers.RedirectTo("/buddy"))

	// --- Static content ---
	app.Static("/static", pages.FrontendDir())
	app.Get("/*", pages.HandleStaticFile)
}
