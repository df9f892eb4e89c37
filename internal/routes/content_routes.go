package routes

import (
	"contentflow/internal/controllers"
	"contentflow/internal/middleware"
	"contentflow/internal/tier"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutesTier mounts the content and workflow endpoints of one tier under
// prefix. Reads of news and all-content are public; everything else needs a
// role ranked at or above the tier.
func SetupRoutesTier(app *fiber.App, prefix string, t tier.Tier, chain tier.Chain, h *controllers.ContentController) {
	g := app.Group(prefix)
	auth := middleware.RequireTier(chain, t.Name)

	g.Get("/news", h.GetNews(t.Name))
	g.Get("/news/:id", h.GetNewsItem(t.Name))
	g.Get("/all-content", h.GetAllContent(t.Name))

	g.Get("/gallery", auth, h.GetGallery(t.Name))
	g.Put("/gallery", auth, h.PutGallery(t.Name))
	g.Put("/news", auth, h.PutNews(t.Name))
	g.Post("/remove", auth, h.RemoveNews(t.Name))
	g.Get("/toggle", auth, h.GetToggle(t.Name))
	g.Put("/toggle", auth, h.PutToggle(t.Name))
	g.Get("/banner", auth, h.GetBanner(t.Name))
	g.Put("/banner", auth, h.PutBanner(t.Name))

	g.Put("/forward", auth, h.Forward(t.Name))
	if t.Reject.Enabled {
		g.Put("/reject", auth, h.Reject(t.Name))
	}
	if t.Restore {
		g.Put("/restore", auth, h.Restore(t.Name))
	}
}

// SetupRoutesContent mounts every tier of the chain, the /content alias of the
// first tier and the public read of the published set.
func SetupRoutesContent(app *fiber.App, chain tier.Chain, h *controllers.ContentController) {
	for _, t := range chain.Tiers {
		SetupRoutesTier(app, "/"+t.Name, t, chain, h)
	}
	SetupRoutesTier(app, "/"+tier.AliasName, chain.Tiers[0], chain, h)

	app.Get("/published/all-content", h.GetAllContent(tier.PublishedName))
}
