package auth

import (
	"backend-socialmedia/internal/shared/apperror"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Post("/token", func(c *fiber.Ctx) error {
		var req LoginRequest
		if err := c.BodyParser(&req); err != nil || req.Email == "" || req.Password == "" {
			return fiber.NewError(fiber.StatusBadRequest, "email and password required")
		}
		resp, err := svc.Authenticate(c.Context(), req)
		if err != nil {
			return apperror.Fiber(err)
		}
		return c.JSON(resp)
	})

	r.Post("/refresh_token", authMiddleware, func(c *fiber.Ctx) error {
		resp, err := svc.Refresh(ActorFromCtx(c))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(resp)
	})
}
