package auth

import (
	"strings"

	"backend-socialmedia/internal/shared/apperror"

	"github.com/gofiber/fiber/v2"
)

const actorKey = "actor"

// Middleware resolves the Authorization bearer token to an Actor and
// stores it in request locals. Every protected route sits behind it.
func Middleware(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerFromHeader(c.Get("Authorization"))
		if token == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
		}

		actor, err := svc.CurrentUser(c.Context(), token)
		if err != nil {
			return apperror.Fiber(err)
		}

		c.Locals(actorKey, actor)
		return c.Next()
	}
}

// ActorFromCtx reads back the actor the middleware stored.
func ActorFromCtx(c *fiber.Ctx) Actor {
	return ActorFromLocals(c.Locals(actorKey))
}

// ActorFromLocals converts a stored locals value back to an Actor, for
// handlers whose connection type exposes locals without a *fiber.Ctx.
func ActorFromLocals(v any) Actor {
	actor, _ := v.(Actor)
	return actor
}

func bearerFromHeader(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
