package user

import (
	"time"

	"backend-socialmedia/internal/shared/apperror"

	"github.com/google/uuid"
)

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"full_name,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	Link         string    `json:"link,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Follow is the directed edge "follower follows followed". Identity is
// the (follower_id, followed_id) pair, a real composite key in storage.
type Follow struct {
	FollowerID string    `json:"follower_id"`
	FollowedID string    `json:"followed_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// New builds a user with a server-assigned id. Username, email and the
// password digest are required.
func New(username, email, passwordHash string) (User, error) {
	if username == "" || email == "" || passwordHash == "" {
		return User{}, apperror.BadRequest("username, email and password required")
	}
	return User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
	}, nil
}

// NewFollow builds a follow edge between two existing users.
func NewFollow(followerID, followedID string) (Follow, error) {
	if followerID == "" || followedID == "" {
		return Follow{}, apperror.BadRequest("follower and followed required")
	}
	return Follow{FollowerID: followerID, FollowedID: followedID}, nil
}

// CanModify allows a user to act on a profile only when it is their own.
func CanModify(actorID, targetID string) bool {
	return actorID == targetID
}

// CanFollow forbids following yourself; everything else is decided by
// existence and duplicate checks downstream.
func CanFollow(actorID, targetID string) bool {
	return actorID != targetID
}
