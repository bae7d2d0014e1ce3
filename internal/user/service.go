package user

import (
	"context"
	"errors"

	"backend-socialmedia/internal/db"
	"backend-socialmedia/internal/post"
	"backend-socialmedia/internal/shared/apperror"

	"github.com/jackc/pgx/v5"
)

type Service struct {
	db           db.Querier
	hashPassword func(string) (string, error)
}

func NewService(db db.Querier, hashPassword func(string) (string, error)) *Service {
	return &Service{db: db, hashPassword: hashPassword}
}

type UpdateRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Bio      string `json:"bio"`
	Link     string `json:"link"`
}

// Register creates an account. Username and email collisions are
// checked before insert; the unique constraints still backstop the race.
func (s *Service) Register(ctx context.Context, username, email, password string) (User, error) {
	if username == "" || email == "" || password == "" {
		return User{}, apperror.BadRequest("username, email and password required")
	}

	row := s.db.QueryRow(ctx, `
		SELECT username, email FROM users WHERE username = $1 OR email = $2
	`, username, email)

	var takenUsername, takenEmail string
	err := row.Scan(&takenUsername, &takenEmail)
	if err == nil {
		if takenEmail == email {
			return User{}, apperror.Conflict("email already exists")
		}
		return User{}, apperror.Conflict("username already exists")
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return User{}, err
	}

	hash, err := s.hashPassword(password)
	if err != nil {
		return User{}, err
	}

	u, err := New(username, email, hash)
	if err != nil {
		return User{}, err
	}

	row = s.db.QueryRow(ctx, `
		INSERT INTO users (id, username, email, password_hash, full_name, bio, link)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING created_at
	`, u.ID, u.Username, u.Email, u.PasswordHash, u.FullName, u.Bio, u.Link)
	if err := row.Scan(&u.CreatedAt); err != nil {
		if db.IsUniqueViolation(err) {
			return User{}, apperror.Conflict("username or email already exists")
		}
		return User{}, err
	}
	return u, nil
}

func (s *Service) Get(ctx context.Context, id string) (User, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, username, email, full_name, bio, link, created_at
		FROM users WHERE id = $1
	`, id)

	var u User
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.FullName, &u.Bio, &u.Link, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, apperror.NotFound("user not found")
		}
		return User{}, err
	}
	return u, nil
}

// Update rewrites the profile. Only the owner may do it; the password
// is re-hashed only when a new one is supplied.
func (s *Service) Update(ctx context.Context, actorID, targetID string, req UpdateRequest) (User, error) {
	if !CanModify(actorID, targetID) {
		return User{}, apperror.Forbidden("not enough permissions")
	}
	if req.Username == "" || req.Email == "" {
		return User{}, apperror.BadRequest("username and email required")
	}

	u := User{
		ID:       targetID,
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
		Bio:      req.Bio,
		Link:     req.Link,
	}

	var row pgx.Row
	if req.Password != "" {
		hash, err := s.hashPassword(req.Password)
		if err != nil {
			return User{}, err
		}
		row = s.db.QueryRow(ctx, `
			UPDATE users
			SET username=$2, email=$3, password_hash=$4, full_name=$5, bio=$6, link=$7
			WHERE id=$1
			RETURNING created_at
		`, u.ID, u.Username, u.Email, hash, u.FullName, u.Bio, u.Link)
	} else {
		row = s.db.QueryRow(ctx, `
			UPDATE users
			SET username=$2, email=$3, full_name=$4, bio=$5, link=$6
			WHERE id=$1
			RETURNING created_at
		`, u.ID, u.Username, u.Email, u.FullName, u.Bio, u.Link)
	}

	if err := row.Scan(&u.CreatedAt); err != nil {
		if db.IsUniqueViolation(err) {
			return User{}, apperror.Conflict("username or email already exists")
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, apperror.NotFound("user not found")
		}
		return User{}, err
	}
	return u, nil
}

// Delete removes the account. Posts, likes, comments and follow edges
// in both directions go with it through the cascade constraints.
func (s *Service) Delete(ctx context.Context, actorID, targetID string) error {
	if !CanModify(actorID, targetID) {
		return apperror.Forbidden("not enough permissions")
	}

	tag, err := s.db.Exec(ctx, `DELETE FROM users WHERE id=$1`, targetID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("user not found")
	}
	return nil
}

// Posts returns everything the user has published. A missing user is an
// error; an empty list is not.
func (s *Service) Posts(ctx context.Context, userID string) (int, []post.Post, error) {
	if err := s.exists(ctx, userID); err != nil {
		return 0, nil, err
	}

	rows, err := s.db.Query(ctx, `
		SELECT id, description, image_url, created_at, updated_at, user_id
		FROM posts WHERE user_id=$1
		ORDER BY id
	`, userID)
	if err != nil {
		return 0, nil, err
	}
	defer rows.Close()

	posts := []post.Post{}
	for rows.Next() {
		var p post.Post
		if err := rows.Scan(&p.ID, &p.Description, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt, &p.UserID); err != nil {
			return 0, nil, err
		}
		posts = append(posts, p)
	}
	return len(posts), posts, nil
}

func (s *Service) Followers(ctx context.Context, userID string) (int, []Follow, error) {
	return s.edges(ctx, userID, `
		SELECT follower_id, followed_id, created_at
		FROM follows WHERE followed_id=$1
		ORDER BY created_at
	`)
}

func (s *Service) Following(ctx context.Context, userID string) (int, []Follow, error) {
	return s.edges(ctx, userID, `
		SELECT follower_id, followed_id, created_at
		FROM follows WHERE follower_id=$1
		ORDER BY created_at
	`)
}

func (s *Service) edges(ctx context.Context, userID, query string) (int, []Follow, error) {
	if err := s.exists(ctx, userID); err != nil {
		return 0, nil, err
	}

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return 0, nil, err
	}
	defer rows.Close()

	edges := []Follow{}
	for rows.Next() {
		var f Follow
		if err := rows.Scan(&f.FollowerID, &f.FollowedID, &f.CreatedAt); err != nil {
			return 0, nil, err
		}
		edges = append(edges, f)
	}
	return len(edges), edges, nil
}

// Follow creates the edge actor -> target and returns it together with
// the followed user's name.
func (s *Service) Follow(ctx context.Context, actorID, targetID string) (Follow, string, error) {
	if !CanFollow(actorID, targetID) {
		return Follow{}, "", apperror.BadRequest("you cannot follow yourself")
	}

	username, err := s.username(ctx, targetID)
	if err != nil {
		return Follow{}, "", err
	}

	row := s.db.QueryRow(ctx, `
		SELECT 1 FROM follows WHERE follower_id=$1 AND followed_id=$2
	`, actorID, targetID)
	var one int
	if err := row.Scan(&one); err == nil {
		return Follow{}, "", apperror.Conflict("already following this user")
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return Follow{}, "", err
	}

	edge, err := NewFollow(actorID, targetID)
	if err != nil {
		return Follow{}, "", err
	}

	row = s.db.QueryRow(ctx, `
		INSERT INTO follows (follower_id, followed_id)
		VALUES ($1,$2)
		RETURNING created_at
	`, edge.FollowerID, edge.FollowedID)
	if err := row.Scan(&edge.CreatedAt); err != nil {
		if db.IsUniqueViolation(err) {
			return Follow{}, "", apperror.Conflict("already following this user")
		}
		return Follow{}, "", err
	}
	return edge, username, nil
}

func (s *Service) Unfollow(ctx context.Context, actorID, targetID string) (string, error) {
	if actorID == targetID {
		return "", apperror.BadRequest("you cannot unfollow yourself")
	}

	username, err := s.username(ctx, targetID)
	if err != nil {
		return "", err
	}

	tag, err := s.db.Exec(ctx, `
		DELETE FROM follows WHERE follower_id=$1 AND followed_id=$2
	`, actorID, targetID)
	if err != nil {
		return "", err
	}
	if tag.RowsAffected() == 0 {
		return "", apperror.NotFound("not following this user")
	}
	return username, nil
}

func (s *Service) exists(ctx context.Context, userID string) error {
	_, err := s.username(ctx, userID)
	return err
}

func (s *Service) username(ctx context.Context, userID string) (string, error) {
	row := s.db.QueryRow(ctx, `SELECT username FROM users WHERE id=$1`, userID)
	var username string
	if err := row.Scan(&username); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperror.NotFound("user not found")
		}
		return "", err
	}
	return username, nil
}
