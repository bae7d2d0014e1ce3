package comment

import (
	"time"

	"backend-socialmedia/internal/shared/apperror"

	"github.com/google/uuid"
)

type Comment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	PostID    string    `json:"post_id"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// New builds a comment by userID on postID. The text is required.
func New(userID, postID, text string) (Comment, error) {
	if userID == "" || postID == "" || text == "" {
		return Comment{}, apperror.BadRequest("user, post and comment required")
	}
	return Comment{
		ID:      uuid.NewString(),
		UserID:  userID,
		PostID:  postID,
		Comment: text,
	}, nil
}

// CanModify allows changes only by the comment's author.
func CanModify(actorID string, c Comment) bool {
	return actorID == c.UserID
}
