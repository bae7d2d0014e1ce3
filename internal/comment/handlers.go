package comment

import (
	"backend-socialmedia/internal/auth"
	"backend-socialmedia/internal/shared/apperror"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Get("/:id", authMiddleware, func(c *fiber.Ctx) error {
		cm, err := svc.Get(c.Context(), c.Params("id"))
		if err != nil {
			return apperror.Fiber(err)
		}
		return c.JSON(cm)
	})

	r.Put("/:id", authMiddleware, func(c *fiber.Ctx) error {
		var req struct {
			Comment string `json:"comment"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
		}
		actor := auth.ActorFromCtx(c)
		cm, err := svc.Update(c.Context(), actor.ID, c.Params("id"), req.Comment)
		if err != nil {
			return apperror.Fiber(err)
		}
		return c.JSON(cm)
	})

	r.Delete("/:id", authMiddleware, func(c *fiber.Ctx) error {
		actor := auth.ActorFromCtx(c)
		if err := svc.Delete(c.Context(), actor.ID, c.Params("id")); err != nil {
			return apperror.Fiber(err)
		}
		return c.JSON(fiber.Map{"detail": "comment deleted"})
	})
}
