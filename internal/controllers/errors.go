package controllers

import (
	"errors"

	"contentflow/dto"
	"contentflow/internal/tier"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// ErrorHandler is the app-wide fallback for errors handlers return instead of
// answering themselves.
func ErrorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Error: fe.Message})
		}
		return serverError(c, log, err)
	}
}

// serverError logs err and answers with a generic 500. Unknown tiers and
// disabled transitions are reported as 404.
func serverError(c *fiber.Ctx, log zerolog.Logger, err error) error {
	if errors.Is(err, tier.ErrUnknownTier) || errors.Is(err, tier.ErrTransitionDisabled) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("request failed")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Server error"})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: msg})
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: msg})
}
