package post

import (
	"time"

	"backend-socialmedia/internal/shared/apperror"

	"github.com/google/uuid"
)

type Post struct {
	ID          string     `json:"id"`
	Description string     `json:"description,omitempty"`
	ImageURL    string     `json:"image_url"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
	UserID      string     `json:"user_id"`
}

type Like struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	PostID    string    `json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}

// New builds a post owned by userID. The image URL is required, the
// description is not.
func New(userID, description, imageURL string) (Post, error) {
	if userID == "" || imageURL == "" {
		return Post{}, apperror.BadRequest("user and image_url required")
	}
	return Post{
		ID:          uuid.NewString(),
		Description: description,
		ImageURL:    imageURL,
		UserID:      userID,
	}, nil
}

// NewLike builds a like edge. At most one per (user, post) exists; the
// storage constraint enforces it.
func NewLike(userID, postID string) (Like, error) {
	if userID == "" || postID == "" {
		return Like{}, apperror.BadRequest("user and post required")
	}
	return Like{
		ID:     uuid.NewString(),
		UserID: userID,
		PostID: postID,
	}, nil
}

// CanModify allows changes only by the post's owner.
func CanModify(actorID string, p Post) bool {
	return actorID == p.UserID
}
