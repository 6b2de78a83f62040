package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/HackathonFIAPX/hackathon-fiapx-admin/internal/domain/repositories"
	apperrors "github.com/HackathonFIAPX/hackathon-fiapx-admin/pkg/errors"
)

// ClientIDKey is the locals key where the authenticated business identity is
// stashed for downstream handlers.
const ClientIDKey = "client_id"

// NewAuthMiddleware validates the Bearer access token and resolves the
// caller's client id from its claims.
func NewAuthMiddleware(verifier repositories.TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authorization := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(authorization, "Bearer ") {
			return &apperrors.UnauthorizedError{Reason: "missing bearer token"}
		}

		token := strings.TrimPrefix(authorization, "Bearer ")

		claims, err := verifier.Validate(c.UserContext(), token, repositories.TokenUseAccess)
		if err != nil {
			return err
		}

		clientID := claims.Username
		if clientID == "" {
			clientID = claims.ClientID
		}
		if clientID == "" {
			return &apperrors.UnauthorizedError{Reason: "token has no client identity"}
		}

		c.Locals(ClientIDKey, clientID)
		return c.Next()
	}
}
