package post

import (
	"backend-socialmedia/internal/auth"
	"backend-socialmedia/internal/shared/apperror"
	"backend-socialmedia/internal/shared/page"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Post("/", authMiddleware, func(c *fiber.Ctx) error {
		var req struct {
			Description string `json:"description"`
			ImageURL    string `json:"image_url"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
		}
		actor := auth.ActorFromCtx(c)
		p, err := svc.Create(c.Context(), actor.ID, req.Description, req.ImageURL)
		if err != nil {
			return apperror.Fiber(err)
		}
		return c.Status(fiber.StatusCreated).JSON(p)
	})

	r.Get("/", authMiddleware, func(c *fiber.Ctx) error {
		posts, err := svc.List(c.Context(), page.Parse(c.Query("offset"), c.Query("limit")))
		if err != nil {
			return apperror.Fiber(err)
		}
		return c.JSON(fiber.Map{"posts": posts})
	})

	r.Get("/:id", authMiddleware, func(c *fiber.Ctx) error {
		p, err := svc.Get(c.Context(), c.Params("id"))
		if err != nil {
			return apperror.Fiber(err)
		}
		return c.JSON(p)
	})

	r.Put("/:id", authMiddleware, func(c *fiber.Ctx) error {
		var req struct {
			Description string `json:"description"`
			ImageURL    string `json:"image_url"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
		}
		actor := auth.ActorFromCtx(c)
		p, err := svc.Update(c.Context(), actor.ID, c.Params("id"), req.Description, req.ImageURL)
		if err != nil {
			return apperror.Fiber(err)
		}
		return c.JSON(p)
	})

	r.Delete("/:id", authMiddleware, func(c *fiber.Ctx) error {
		actor := auth.ActorFromCtx(c)
		if err := svc.Delete(c.Context(), actor.ID, c.Params("id")); err != nil {
			return apperror.Fiber(err)
		}
		return c.JSON(fiber.Map{"detail": "post deleted"})
	})

	r.Post("/:id/comments", authMiddleware, func(c *fiber.Ctx) error {
		var req struct {
			Comment string `json:"comment"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
		}
		actor := auth.ActorFromCtx(c)
		created, err := svc.CreateComment(c.Context(), actor.ID, c.Params("id"), req.Comment)
		if err != nil {
			return apperror.Fiber(err)
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	})

	r.Get("/:id/comments", authMiddleware, func(c *fiber.Ctx) error {
		comments, err := svc.Comments(c.Context(), c.Params("id"), page.Parse(c.Query("offset"), c.Query("limit")))
		if err != nil {
			return apperror.Fiber(err)
		}
		return c.JSON(fiber.Map{"count": len(comments), "comments": comments})
	})

	r.Post("/:id/likes", authMiddleware, func(c *fiber.Ctx) error {
		actor := auth.ActorFromCtx(c)
		l, err := svc.Like(c.Context(), actor.ID, c.Params("id"))
		if err != nil {
			return apperror.Fiber(err)
		}
		return c.Status(fiber.StatusCreated).JSON(l)
	})

	r.Delete("/:id/likes", authMiddleware, func(c *fiber.Ctx) error {
		actor := auth.ActorFromCtx(c)
		if err := svc.Unlike(c.Context(), actor.ID, c.Params("id")); err != nil {
			return apperror.Fiber(err)
		}
		return c.JSON(fiber.Map{"detail": "unliked successfully"})
	})

	r.Get("/:id/likes", authMiddleware, func(c *fiber.Ctx) error {
		count, likes, err := svc.Likes(c.Context(), c.Params("id"))
		if err != nil {
			return apperror.Fiber(err)
		}
		return c.JSON(fiber.Map{"count": count, "likes": likes})
	})
}
