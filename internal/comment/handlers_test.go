package comment

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"backend-socialmedia/internal/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
)

func newTestApp(svc *Service) *fiber.App {
	app := fiber.New()
	actorMiddleware := func(c *fiber.Ctx) error {
		c.Locals("actor", auth.Actor{ID: "user-1", Username: "alice", Email: "alice@example.com"})
		return c.Next()
	}
	RegisterRoutes(app.Group("/comments"), svc, actorMiddleware)
	return app
}

func TestGetCommentEndpoint(t *testing.T) {
	mock := newMock(t)
	expectComment(mock, "comment-1", "user-1")

	app := newTestApp(NewService(mock))

	resp, err := app.Test(httptest.NewRequest("GET", "/comments/comment-1", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestUpdateCommentEndpoint(t *testing.T) {
	mock := newMock(t)
	expectComment(mock, "comment-1", "user-1")
	mock.ExpectExec(`UPDATE comments`).
		WithArgs("comment-1", "edited").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	app := newTestApp(NewService(mock))

	req := httptest.NewRequest("PUT", "/comments/comment-1", strings.NewReader(`{"comment":"edited"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "edited") {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestUpdateCommentEndpointForbidden(t *testing.T) {
	mock := newMock(t)
	expectComment(mock, "comment-1", "user-2")

	app := newTestApp(NewService(mock))

	req := httptest.NewRequest("PUT", "/comments/comment-1", strings.NewReader(`{"comment":"hijack"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.StatusCode)
	}
}

func TestDeleteCommentEndpoint(t *testing.T) {
	mock := newMock(t)
	expectComment(mock, "comment-1", "user-1")
	mock.ExpectExec(`DELETE FROM comments`).
		WithArgs("comment-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	app := newTestApp(NewService(mock))

	resp, err := app.Test(httptest.NewRequest("DELETE", "/comments/comment-1", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "comment deleted") {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestDeleteCommentEndpointNotFound(t *testing.T) {
	mock := newMock(t)

	mock.ExpectQuery(`SELECT id, user_id, post_id, comment, created_at`).
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	app := newTestApp(NewService(mock))

	resp, err := app.Test(httptest.NewRequest("DELETE", "/comments/missing", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}
