package auth

import (
	"context"
	"time"

	"backend-socialmedia/internal/db"
	"backend-socialmedia/internal/shared/apperror"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const accessTokenTTL = 30 * time.Minute

type Service struct {
	secret []byte
	db     db.Querier
}

// Claims carries the subject email the way the token endpoint issues it.
type Claims struct {
	jwt.RegisteredClaims
}

func NewService(secret string, db db.Querier) *Service {
	return &Service{
		secret: []byte(secret),
		db:     db,
	}
}

var hashPasswordFn = bcrypt.GenerateFromPassword
var signTokenFn = (*Service).signToken
var parseWithClaimsFn = jwt.ParseWithClaims

// HashPassword digests a plaintext password for storage. Plaintext is
// never written anywhere.
func (s *Service) HashPassword(password string) (string, error) {
	hash, err := hashPasswordFn([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Authenticate exchanges email+password for an access token. Unknown
// email and wrong password yield the same message so callers cannot
// probe which accounts exist.
func (s *Service) Authenticate(ctx context.Context, req LoginRequest) (TokenResponse, error) {
	row := s.db.QueryRow(ctx, `
		SELECT password_hash FROM users WHERE email = $1
	`, req.Email)

	var passwordHash string
	if err := row.Scan(&passwordHash); err != nil {
		return TokenResponse{}, apperror.Unauthorized("incorrect email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(req.Password)); err != nil {
		return TokenResponse{}, apperror.Unauthorized("incorrect email or password")
	}

	return s.issue(req.Email)
}

// Refresh mints a fresh token for an already-authenticated actor. No
// password re-verification: a currently valid token is the credential.
func (s *Service) Refresh(actor Actor) (TokenResponse, error) {
	return s.issue(actor.Email)
}

// CurrentUser resolves a bearer token to the user it was issued for.
func (s *Service) CurrentUser(ctx context.Context, token string) (Actor, error) {
	claims, err := s.parseToken(token)
	if err != nil {
		return Actor{}, apperror.Unauthorized("could not validate credentials")
	}

	email := claims.Subject
	if email == "" {
		return Actor{}, apperror.Unauthorized("could not validate credentials")
	}

	row := s.db.QueryRow(ctx, `
		SELECT id, username, email FROM users WHERE email = $1
	`, email)

	var actor Actor
	if err := row.Scan(&actor.ID, &actor.Username, &actor.Email); err != nil {
		return Actor{}, apperror.Unauthorized("could not validate credentials")
	}
	return actor, nil
}

func (s *Service) issue(email string) (TokenResponse, error) {
	token, err := signTokenFn(s, email)
	if err != nil {
		return TokenResponse{}, err
	}
	return TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(accessTokenTTL.Seconds()),
	}, nil
}

func (s *Service) signToken(email string) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(accessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Service) parseToken(token string) (*Claims, error) {
	parsed, err := parseWithClaimsFn(token, &Claims{}, func(_ *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, apperror.Unauthorized("token invalid")
	}
	return claims, nil
}
