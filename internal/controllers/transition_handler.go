package controllers

import (
	"fmt"

	"contentflow/internal/services"

	"github.com/gofiber/fiber/v2"
)

func transitionResponse(c *fiber.Ctx, msg string, res services.TransitionResult) error {
	return c.JSON(fiber.Map{
		"message": msg,
		"result":  res,
	})
}

// Forward godoc
// @Summary      Forward the tier content to the next tier
// @Description  Copies all four kinds to the next tier using the tier's forward policy.
// @Tags         workflow
// @Produce      json
// @Security     BearerAuth
// @Param        tier  path  string  true  "tier"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /{tier}/forward [put]
func (h *ContentController) Forward(tierName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := h.svc.Forward(c.UserContext(), tierName, actor(c))
		if err != nil {
			return serverError(c, h.log, err)
		}
		return transitionResponse(c, fmt.Sprintf("%s content forwarded to %s", res.Source, res.Destination), res)
	}
}

// Reject godoc
// @Summary      Reject the tier content
// @Description  Mails the configured role and clears the tier. Mail failures do not block the clear.
// @Tags         workflow
// @Produce      json
// @Security     BearerAuth
// @Param        tier  path  string  true  "tier"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /{tier}/reject [put]
func (h *ContentController) Reject(tierName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := h.svc.Reject(c.UserContext(), tierName, actor(c))
		if err != nil {
			return serverError(c, h.log, err)
		}
		return transitionResponse(c, fmt.Sprintf("%s content rejected and cleared", res.Source), res)
	}
}

// Restore godoc
// @Summary      Restore the tier from the published content
// @Tags         workflow
// @Produce      json
// @Security     BearerAuth
// @Param        tier  path  string  true  "tier"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /{tier}/restore [put]
func (h *ContentController) Restore(tierName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := h.svc.Restore(c.UserContext(), tierName, actor(c))
		if err != nil {
			return serverError(c, h.log, err)
		}
		return transitionResponse(c, fmt.Sprintf("%s content restored from published", res.Destination), res)
	}
}
