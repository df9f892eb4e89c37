package middleware

import (
	"strings"

	"contentflow/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const actorKey = "actor"

type Claims struct {
	UID   string `json:"uid,omitempty"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// JWTActor parses an optional bearer token and stores the caller in Locals.
// Requests without a token pass through anonymously; RequireTier decides.
func JWTActor(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := c.Get("Authorization")
		if auth == "" || !strings.HasPrefix(strings.ToLower(auth), "bearer ") {
			return c.Next()
		}

		tokenStr := strings.TrimSpace(auth[7:])
		var claims Claims

		token, err := jwt.ParseWithClaims(
			tokenStr,
			&claims,
			func(t *jwt.Token) (any, error) {
				return []byte(secret), nil
			},
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		)
		if err != nil || !token.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		uid := claims.UID
		if uid == "" {
			uid = claims.Subject
		}
		if uid == "" || claims.Role == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing uid or role")
		}

		c.Locals(actorKey, models.Actor{UID: uid, Email: claims.Email, Role: claims.Role})
		return c.Next()
	}
}

// ActorFromLocals returns the caller set by JWTActor, if any.
func ActorFromLocals(c *fiber.Ctx) (models.Actor, bool) {
	a, ok := c.Locals(actorKey).(models.Actor)
	return a, ok
}

// SignToken issues an HS256 token carrying the actor.
func SignToken(secret string, a models.Actor, claims jwt.RegisteredClaims) (string, error) {
	if claims.Subject == "" {
		claims.Subject = a.UID
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UID:              a.UID,
		Email:            a.Email,
		Role:             a.Role,
		RegisteredClaims: claims,
	})
	return token.SignedString([]byte(secret))
}
