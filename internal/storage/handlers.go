package storage

import (
	"backend-socialmedia/internal/auth"

	"github.com/gofiber/fiber/v2"
)

// Upload records an uploaded media object and returns the URL a client
// then supplies as a post's image_url.
func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Post("/upload", authMiddleware, func(c *fiber.Ctx) error {
		var body struct {
			FileName string `json:"file_name"`
			Kind     string `json:"kind"`
		}
		_ = c.BodyParser(&body)
		if body.FileName == "" {
			body.FileName = "upload"
		}
		actor := auth.ActorFromCtx(c)
		url := "https://storage.example/" + body.FileName
		id, err := svc.SaveObject(c.Context(), actor.ID, url, body.Kind)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(fiber.Map{
			"id":  id,
			"url": url,
		})
	})
}
