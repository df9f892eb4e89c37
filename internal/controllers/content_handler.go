package controllers

import (
	"errors"

	"contentflow/dto"
	"contentflow/internal/middleware"
	"contentflow/internal/models"
	"contentflow/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

type ContentController struct {
	svc *services.ContentService
	log zerolog.Logger
}

func NewContentController(svc *services.ContentService, log zerolog.Logger) *ContentController {
	return &ContentController{svc: svc, log: log}
}

func actor(c *fiber.Ctx) models.Actor {
	a, _ := middleware.ActorFromLocals(c)
	return a
}

// GetGallery godoc
// @Summary      Get the tier gallery
// @Description  Returns the gallery document, creating an empty one on first read.
// @Tags         content
// @Produce      json
// @Security     BearerAuth
// @Param        tier  path  string  true  "admin, leadadmin, superadmin or content"
// @Success      200  {object}  models.GalleryDoc
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /{tier}/gallery [get]
func (h *ContentController) GetGallery(tierName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		doc, err := h.svc.Gallery(c.UserContext(), tierName)
		if err != nil {
			return serverError(c, h.log, err)
		}
		return c.JSON(doc)
	}
}

// PutGallery godoc
// @Summary      Replace the tier gallery
// @Tags         content
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        tier  path  string              true  "tier"
// @Param        body  body  dto.GalleryRequest  true  "gallery images"
// @Success      200  {object}  dto.GalleryUpdateResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /{tier}/gallery [put]
func (h *ContentController) PutGallery(tierName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.GalleryRequest
		if err := c.BodyParser(&body); err != nil || body.GalleryImages == nil {
			return badRequest(c, "galleryImages must be an array")
		}
		doc, err := h.svc.SetGallery(c.UserContext(), tierName, *body.GalleryImages, actor(c))
		if err != nil {
			return serverError(c, h.log, err)
		}
		return c.JSON(dto.GalleryUpdateResponse{Message: "Gallery updated successfully", Gallery: doc})
	}
}

// GetNews godoc
// @Summary      List the tier news items
// @Tags         content
// @Produce      json
// @Param        tier  path  string  true  "tier"
// @Success      200  {object}  dto.NewsListResponse
// @Router       /{tier}/news [get]
func (h *ContentController) GetNews(tierName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := h.svc.News(c.UserContext(), tierName)
		if err != nil {
			return serverError(c, h.log, err)
		}
		return c.JSON(dto.NewsListResponse{NewsItems: items})
	}
}

// GetNewsItem godoc
// @Summary      Get one news item
// @Tags         content
// @Produce      json
// @Param        tier  path  string  true  "tier"
// @Param        id    path  string  true  "news item id"
// @Success      200  {object}  models.NewsItem
// @Failure      404  {object}  dto.MessageResponse
// @Router       /{tier}/news/{id} [get]
func (h *ContentController) GetNewsItem(tierName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		item, err := h.svc.NewsItem(c.UserContext(), tierName, c.Params("id"))
		switch {
		case errors.Is(err, services.ErrNoNews):
			return notFound(c, "No news found")
		case errors.Is(err, services.ErrNotFound):
			return notFound(c, "News item not found")
		case err != nil:
			return serverError(c, h.log, err)
		}
		return c.JSON(item)
	}
}

// PutNews godoc
// @Summary      Append news items
// @Description  Items are appended to the existing list, never replacing it.
// @Tags         content
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        tier  path  string           true  "tier"
// @Param        body  body  dto.NewsRequest  true  "news items"
// @Success      200  {object}  dto.NewsUpdateResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /{tier}/news [put]
func (h *ContentController) PutNews(tierName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.NewsRequest
		if err := c.BodyParser(&body); err != nil || body.NewsItems == nil {
			return badRequest(c, "newsItems must be an array")
		}
		items := make([]models.NewsItem, 0, len(*body.NewsItems))
		for _, in := range *body.NewsItems {
			items = append(items, in.Model())
		}
		doc, err := h.svc.AppendNews(c.UserContext(), tierName, items, actor(c))
		if err != nil {
			return serverError(c, h.log, err)
		}
		return c.JSON(dto.NewsUpdateResponse{Message: "News updated successfully", News: doc})
	}
}

// RemoveNews godoc
// @Summary      Remove one news item
// @Tags         content
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        tier  path  string                 true  "tier"
// @Param        body  body  dto.RemoveNewsRequest  true  "item id"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.MessageResponse
// @Router       /{tier}/remove [post]
func (h *ContentController) RemoveNews(tierName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.RemoveNewsRequest
		if err := c.BodyParser(&body); err != nil || body.ID == "" {
			return badRequest(c, "News item ID is required")
		}
		err := h.svc.RemoveNews(c.UserContext(), tierName, body.ID, actor(c))
		switch {
		case errors.Is(err, services.ErrNotFound):
			return notFound(c, "News item not found")
		case err != nil:
			return serverError(c, h.log, err)
		}
		return c.JSON(dto.MessageResponse{Message: "News item deleted successfully"})
	}
}

// GetToggle godoc
// @Summary      Get the day-mode toggle
// @Tags         content
// @Produce      json
// @Security     BearerAuth
// @Param        tier  path  string  true  "tier"
// @Success      200  {object}  dto.ToggleResponse
// @Router       /{tier}/toggle [get]
func (h *ContentController) GetToggle(tierName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		doc, err := h.svc.Toggle(c.UserContext(), tierName)
		if err != nil {
			return serverError(c, h.log, err)
		}
		return c.JSON(dto.NewToggleResponse(doc))
	}
}

// PutToggle godoc
// @Summary      Set the day-mode toggle
// @Tags         content
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        tier  path  string             true  "tier"
// @Param        body  body  dto.ToggleRequest  true  "toggle state"
// @Success      200  {object}  dto.ToggleResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /{tier}/toggle [put]
func (h *ContentController) PutToggle(tierName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.ToggleRequest
		if err := c.BodyParser(&body); err != nil || body.IsActive == nil {
			return badRequest(c, "isActive must be a boolean")
		}
		doc, err := h.svc.SetToggle(c.UserContext(), tierName, *body.IsActive, actor(c))
		if err != nil {
			return serverError(c, h.log, err)
		}
		return c.JSON(dto.NewToggleResponse(doc))
	}
}

// GetBanner godoc
// @Summary      Get the banner
// @Description  Unlike gallery and toggle, a missing banner is not created.
// @Tags         content
// @Produce      json
// @Security     BearerAuth
// @Param        tier  path  string  true  "tier"
// @Success      200  {object}  models.BannerDoc
// @Failure      404  {object}  dto.MessageResponse
// @Router       /{tier}/banner [get]
func (h *ContentController) GetBanner(tierName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		doc, err := h.svc.Banner(c.UserContext(), tierName)
		switch {
		case errors.Is(err, services.ErrNotFound):
			return notFound(c, "No banner found")
		case err != nil:
			return serverError(c, h.log, err)
		}
		return c.JSON(doc)
	}
}

// PutBanner godoc
// @Summary      Replace the banner images
// @Tags         content
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        tier  path  string             true  "tier"
// @Param        body  body  dto.BannerRequest  true  "banner images"
// @Success      200  {object}  models.BannerDoc
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /{tier}/banner [put]
func (h *ContentController) PutBanner(tierName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.BannerRequest
		if err := c.BodyParser(&body); err != nil || body.Images == nil {
			return badRequest(c, "Images should be an array")
		}
		doc, err := h.svc.SetBanner(c.UserContext(), tierName, *body.Images, actor(c))
		if err != nil {
			return serverError(c, h.log, err)
		}
		return c.JSON(doc)
	}
}

// GetAllContent godoc
// @Summary      Aggregate of all four content kinds
// @Tags         content
// @Produce      json
// @Param        tier  path  string  true  "tier or published"
// @Success      200  {object}  dto.AllContentResponse
// @Router       /{tier}/all-content [get]
func (h *ContentController) GetAllContent(tierName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		out, err := h.svc.AllContent(c.UserContext(), tierName)
		if err != nil {
			return serverError(c, h.log, err)
		}
		return c.JSON(out)
	}
}
