package stream

import (
	"backend-socialmedia/internal/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// The subscriber id comes from the authenticated actor, never from the
// client, so a connection only ever receives its own activity events.
func RegisterRoutes(r fiber.Router, hub *Hub, authMiddleware fiber.Handler) {
	r.Get("/ws", authMiddleware, websocket.New(func(c *websocket.Conn) {
		actor := auth.ActorFromLocals(c.Locals("actor"))
		if actor.ID == "" {
			_ = c.Close()
			return
		}

		client := hub.Register(actor.ID)

		done := make(chan struct{})
		go func() {
			defer close(done)
			for msg := range client.Send {
				if err := c.WriteMessage(websocket.TextMessage, msg); err != nil {
					return
				}
			}
		}()

		for {
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
		// unregister first: it closes Send, which unblocks the writer
		hub.Unregister(client)
		<-done
	}))
}
