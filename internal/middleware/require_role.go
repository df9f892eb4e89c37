package middleware

import (
	"contentflow/internal/tier"

	"github.com/gofiber/fiber/v2"
)

// RequireTier lets through callers whose role ranks at or above tierName.
func RequireTier(chain tier.Chain, tierName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok := ActorFromLocals(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
		}
		if !chain.Allows(actor.Role, tierName) {
			return fiber.NewError(fiber.StatusForbidden, "forbidden: role "+actor.Role+" cannot act on "+tierName)
		}
		return c.Next()
	}
}
