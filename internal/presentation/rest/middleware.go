package rest

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/vitrinehq/vitrine-backend/internal/application/dto"
	"github.com/vitrinehq/vitrine-backend/internal/infra/auth"
)

const identityKey = "identity"

// Authenticate resolves the bearer token into an Identity and stores it
// under identityKey for the handlers behind it.
func Authenticate(provider *auth.IdentityProvider) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "missing bearer token"})
		}
		identity, err := provider.GetIdentity(token)
		if err != nil {
			slog.Debug("rejected token", "err", err)
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "invalid token"})
		}
		c.Locals(identityKey, identity)
		return c.Next()
	}
}
