package post

import (
	"context"
	"errors"

	"backend-socialmedia/internal/comment"
	"backend-socialmedia/internal/db"
	"backend-socialmedia/internal/shared/apperror"
	"backend-socialmedia/internal/shared/page"
	"backend-socialmedia/internal/stream"

	"github.com/jackc/pgx/v5"
)

type Service struct {
	db  db.Querier
	hub *stream.Hub
}

func NewService(db db.Querier, hub *stream.Hub) *Service {
	return &Service{db: db, hub: hub}
}

func (s *Service) Create(ctx context.Context, actorID, description, imageURL string) (Post, error) {
	p, err := New(actorID, description, imageURL)
	if err != nil {
		return Post{}, err
	}

	row := s.db.QueryRow(ctx, `
		INSERT INTO posts (id, description, image_url, user_id)
		VALUES ($1,$2,$3,$4)
		RETURNING created_at
	`, p.ID, p.Description, p.ImageURL, p.UserID)
	if err := row.Scan(&p.CreatedAt); err != nil {
		return Post{}, err
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, id string) (Post, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, description, image_url, created_at, updated_at, user_id
		FROM posts WHERE id=$1
	`, id)

	var p Post
	if err := row.Scan(&p.ID, &p.Description, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt, &p.UserID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Post{}, apperror.NotFound("no post found")
		}
		return Post{}, err
	}
	return p, nil
}

// List pages through all posts in insertion order. An empty page is an
// error, not a result.
func (s *Service) List(ctx context.Context, pg page.Params) ([]Post, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, description, image_url, created_at, updated_at, user_id
		FROM posts
		ORDER BY id
		OFFSET $1 LIMIT $2
	`, pg.Offset, pg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []Post
	for rows.Next() {
		var p Post
		if err := rows.Scan(&p.ID, &p.Description, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt, &p.UserID); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	if len(posts) == 0 {
		return nil, apperror.NotFound("no posts found")
	}
	return posts, nil
}

// Update rewrites description and image of the actor's own post. The
// query is ownership-scoped: someone else's post looks exactly like a
// missing one.
func (s *Service) Update(ctx context.Context, actorID, postID, description, imageURL string) (Post, error) {
	if imageURL == "" {
		return Post{}, apperror.BadRequest("image_url required")
	}

	p := Post{ID: postID, Description: description, ImageURL: imageURL, UserID: actorID}
	row := s.db.QueryRow(ctx, `
		UPDATE posts
		SET description=$3, image_url=$4, updated_at=now()
		WHERE id=$1 AND user_id=$2
		RETURNING created_at, updated_at
	`, postID, actorID, description, imageURL)
	if err := row.Scan(&p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Post{}, apperror.NotFound("no posts to update")
		}
		return Post{}, err
	}
	return p, nil
}

// Delete removes the actor's own post; likes and comments cascade.
// Ownership-scoped the same way Update is.
func (s *Service) Delete(ctx context.Context, actorID, postID string) error {
	tag, err := s.db.Exec(ctx, `
		DELETE FROM posts WHERE id=$1 AND user_id=$2
	`, postID, actorID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("no posts to delete")
	}
	return nil
}

// CreateComment inserts without checking the post first; the foreign
// key rejects a vanished post and that surfaces as not found.
func (s *Service) CreateComment(ctx context.Context, actorID, postID, text string) (comment.Comment, error) {
	c, err := comment.New(actorID, postID, text)
	if err != nil {
		return comment.Comment{}, err
	}

	row := s.db.QueryRow(ctx, `
		INSERT INTO comments (id, user_id, post_id, comment)
		VALUES ($1,$2,$3,$4)
		RETURNING created_at
	`, c.ID, c.UserID, c.PostID, c.Comment)
	if err := row.Scan(&c.CreatedAt); err != nil {
		if db.IsForeignKeyViolation(err) {
			return comment.Comment{}, apperror.NotFound("no post found")
		}
		return comment.Comment{}, err
	}

	s.notifyOwner(ctx, postID, stream.Event{Type: "comment", PostID: postID, ActorID: actorID})
	return c, nil
}

func (s *Service) Comments(ctx context.Context, postID string, pg page.Params) ([]comment.Comment, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, user_id, post_id, comment, created_at
		FROM comments WHERE post_id=$1
		ORDER BY id
		OFFSET $2 LIMIT $3
	`, postID, pg.Offset, pg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []comment.Comment
	for rows.Next() {
		var c comment.Comment
		if err := rows.Scan(&c.ID, &c.UserID, &c.PostID, &c.Comment, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	if len(comments) == 0 {
		return nil, apperror.NotFound("no comments found")
	}
	return comments, nil
}

// Like inserts the (actor, post) edge and lets the composite unique
// constraint reject a second one.
func (s *Service) Like(ctx context.Context, actorID, postID string) (Like, error) {
	l, err := NewLike(actorID, postID)
	if err != nil {
		return Like{}, err
	}

	row := s.db.QueryRow(ctx, `
		INSERT INTO likes (id, user_id, post_id)
		VALUES ($1,$2,$3)
		RETURNING created_at
	`, l.ID, l.UserID, l.PostID)
	if err := row.Scan(&l.CreatedAt); err != nil {
		if db.IsUniqueViolation(err) {
			return Like{}, apperror.Conflict("you cannot like more than once")
		}
		if db.IsForeignKeyViolation(err) {
			return Like{}, apperror.NotFound("no post found")
		}
		return Like{}, err
	}

	s.notifyOwner(ctx, postID, stream.Event{Type: "like", PostID: postID, ActorID: actorID})
	return l, nil
}

func (s *Service) Unlike(ctx context.Context, actorID, postID string) error {
	tag, err := s.db.Exec(ctx, `
		DELETE FROM likes WHERE post_id=$1 AND user_id=$2
	`, postID, actorID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("no like on this post found")
	}
	return nil
}

func (s *Service) Likes(ctx context.Context, postID string) (int, []Like, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, user_id, post_id, created_at
		FROM likes WHERE post_id=$1
		ORDER BY created_at
	`, postID)
	if err != nil {
		return 0, nil, err
	}
	defer rows.Close()

	var likes []Like
	for rows.Next() {
		var l Like
		if err := rows.Scan(&l.ID, &l.UserID, &l.PostID, &l.CreatedAt); err != nil {
			return 0, nil, err
		}
		likes = append(likes, l)
	}
	if len(likes) == 0 {
		return 0, nil, apperror.NotFound("no likes found")
	}
	return len(likes), likes, nil
}

// notifyOwner is best-effort; activity events never fail the mutation
// that produced them.
func (s *Service) notifyOwner(ctx context.Context, postID string, ev stream.Event) {
	if s.hub == nil {
		return
	}

	row := s.db.QueryRow(ctx, `SELECT user_id FROM posts WHERE id=$1`, postID)
	var ownerID string
	if err := row.Scan(&ownerID); err != nil {
		return
	}
	if ownerID == ev.ActorID {
		return
	}
	s.hub.Notify(ownerID, ev)
}
