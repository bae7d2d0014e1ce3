package user

import (
	"errors"
	"testing"

	"backend-socialmedia/internal/shared/apperror"
)

func TestNewValidation(t *testing.T) {
	u, err := New("alice", "alice@example.com", "digest")
	if err != nil {
		t.Fatalf("new user: %v", err)
	}
	if u.ID == "" {
		t.Fatalf("expected server-assigned id")
	}

	if _, err := New("", "alice@example.com", "digest"); !errors.Is(err, apperror.ErrBadRequest) {
		t.Fatalf("expected bad request for empty username")
	}
	if _, err := New("alice", "", "digest"); !errors.Is(err, apperror.ErrBadRequest) {
		t.Fatalf("expected bad request for empty email")
	}
	if _, err := New("alice", "alice@example.com", ""); !errors.Is(err, apperror.ErrBadRequest) {
		t.Fatalf("expected bad request for empty digest")
	}
}

func TestNewFollowValidation(t *testing.T) {
	if _, err := NewFollow("", "user-2"); !errors.Is(err, apperror.ErrBadRequest) {
		t.Fatalf("expected bad request")
	}
	f, err := NewFollow("user-1", "user-2")
	if err != nil || f.FollowerID != "user-1" || f.FollowedID != "user-2" {
		t.Fatalf("unexpected edge: %+v %v", f, err)
	}
}

func TestPredicates(t *testing.T) {
	if !CanModify("user-1", "user-1") || CanModify("user-1", "user-2") {
		t.Fatalf("CanModify should allow self only")
	}
	if CanFollow("user-1", "user-1") || !CanFollow("user-1", "user-2") {
		t.Fatalf("CanFollow should deny self only")
	}
}
