package user

import (
	"backend-socialmedia/internal/auth"
	"backend-socialmedia/internal/shared/apperror"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Post("/", func(c *fiber.Ctx) error {
		var req struct {
			Username string `json:"username"`
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
		}
		u, err := svc.Register(c.Context(), req.Username, req.Email, req.Password)
		if err != nil {
			return apperror.Fiber(err)
		}
		return c.Status(fiber.StatusCreated).JSON(u)
	})

	r.Get("/:id", authMiddleware, func(c *fiber.Ctx) error {
		u, err := svc.Get(c.Context(), c.Params("id"))
		if err != nil {
			return apperror.Fiber(err)
		}
		return c.JSON(u)
	})

	r.Put("/:id", authMiddleware, func(c *fiber.Ctx) error {
		var req UpdateRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
		}
		actor := auth.ActorFromCtx(c)
		u, err := svc.Update(c.Context(), actor.ID, c.Params("id"), req)
		if err != nil {
			return apperror.Fiber(err)
		}
		return c.JSON(u)
	})

	r.Delete("/:id", authMiddleware, func(c *fiber.Ctx) error {
		actor := auth.ActorFromCtx(c)
		if err := svc.Delete(c.Context(), actor.ID, c.Params("id")); err != nil {
			return apperror.Fiber(err)
		}
		return c.JSON(fiber.Map{"detail": "user deleted"})
	})

	r.Get("/:id/posts", authMiddleware, func(c *fiber.Ctx) error {
		count, posts, err := svc.Posts(c.Context(), c.Params("id"))
		if err != nil {
			return apperror.Fiber(err)
		}
		return c.JSON(fiber.Map{"count": count, "posts": posts})
	})

	r.Get("/:id/followers", authMiddleware, func(c *fiber.Ctx) error {
		count, followers, err := svc.Followers(c.Context(), c.Params("id"))
		if err != nil {
			return apperror.Fiber(err)
		}
		return c.JSON(fiber.Map{"count": count, "followers": followers})
	})

	r.Get("/:id/following", authMiddleware, func(c *fiber.Ctx) error {
		count, following, err := svc.Following(c.Context(), c.Params("id"))
		if err != nil {
			return apperror.Fiber(err)
		}
		return c.JSON(fiber.Map{"count": count, "following": following})
	})

	r.Post("/:id/follow", authMiddleware, func(c *fiber.Ctx) error {
		actor := auth.ActorFromCtx(c)
		_, username, err := svc.Follow(c.Context(), actor.ID, c.Params("id"))
		if err != nil {
			return apperror.Fiber(err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"detail": "you are now following " + username})
	})

	r.Delete("/:id/follow", authMiddleware, func(c *fiber.Ctx) error {
		actor := auth.ActorFromCtx(c)
		username, err := svc.Unfollow(c.Context(), actor.ID, c.Params("id"))
		if err != nil {
			return apperror.Fiber(err)
		}
		return c.JSON(fiber.Map{"detail": "you have unfollowed " + username})
	})
}
