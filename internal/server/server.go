package server

import (
	"backend-socialmedia/internal/auth"
	"backend-socialmedia/internal/comment"
	"backend-socialmedia/internal/config"
	"backend-socialmedia/internal/post"
	"backend-socialmedia/internal/storage"
	"backend-socialmedia/internal/stream"
	"backend-socialmedia/internal/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	App    *fiber.App
	Cfg    config.Config
	DB     *pgxpool.Pool
	Redis  *redis.Client
	Stream *stream.Hub
}

func NewServer(cfg config.Config, db *pgxpool.Pool, redisClient *redis.Client) *Server {
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	s := &Server{
		App:    app,
		Cfg:    cfg,
		DB:     db,
		Redis:  redisClient,
		Stream: stream.NewHub(redisClient),
	}

	registerRoutes(s)
	return s
}

func registerRoutes(s *Server) {
	s.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	authSvc := auth.NewService(s.Cfg.JWTSecret, s.DB)
	authMiddleware := auth.Middleware(authSvc)

	auth.RegisterRoutes(s.App.Group("/auth"), authSvc, authMiddleware)
	user.RegisterRoutes(s.App.Group("/users"), user.NewService(s.DB, authSvc.HashPassword), authMiddleware)
	post.RegisterRoutes(s.App.Group("/posts"), post.NewService(s.DB, s.Stream), authMiddleware)
	comment.RegisterRoutes(s.App.Group("/comments"), comment.NewService(s.DB), authMiddleware)
	storage.RegisterRoutes(s.App.Group("/storage"), storage.NewService(s.DB), authMiddleware)
	stream.RegisterRoutes(s.App.Group("/stream"), s.Stream, authMiddleware)
}
