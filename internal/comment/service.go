package comment

import (
	"context"
	"errors"

	"backend-socialmedia/internal/db"
	"backend-socialmedia/internal/shared/apperror"

	"github.com/jackc/pgx/v5"
)

type Service struct {
	db db.Querier
}

func NewService(db db.Querier) *Service {
	return &Service{db: db}
}

func (s *Service) Get(ctx context.Context, id string) (Comment, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, user_id, post_id, comment, created_at
		FROM comments WHERE id=$1
	`, id)

	var c Comment
	if err := row.Scan(&c.ID, &c.UserID, &c.PostID, &c.Comment, &c.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Comment{}, apperror.NotFound("no comment found")
		}
		return Comment{}, err
	}
	return c, nil
}

// Update edits the comment text. Existence is checked before ownership,
// so a non-author of a real comment gets forbidden, not not-found.
func (s *Service) Update(ctx context.Context, actorID, commentID, text string) (Comment, error) {
	if text == "" {
		return Comment{}, apperror.BadRequest("comment required")
	}

	c, err := s.Get(ctx, commentID)
	if err != nil {
		return Comment{}, err
	}
	if !CanModify(actorID, c) {
		return Comment{}, apperror.Forbidden("not enough permissions")
	}

	if _, err := s.db.Exec(ctx, `
		UPDATE comments SET comment=$2 WHERE id=$1
	`, commentID, text); err != nil {
		return Comment{}, err
	}

	c.Comment = text
	return c, nil
}

// Delete removes the comment under the same existence-then-ownership
// ordering Update uses.
func (s *Service) Delete(ctx context.Context, actorID, commentID string) error {
	c, err := s.Get(ctx, commentID)
	if err != nil {
		return err
	}
	if !CanModify(actorID, c) {
		return apperror.Forbidden("not enough permissions")
	}

	_, err = s.db.Exec(ctx, `DELETE FROM comments WHERE id=$1`, commentID)
	return err
}
