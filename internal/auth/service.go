package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	v1 "github.com/bloglist-lab/bloglist/internal/api/v1"
	"github.com/bloglist-lab/bloglist/internal/core/storage"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned by Authenticate for an unknown user or a wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrInvalidToken marks tokens that are malformed, badly signed or expired.
	ErrInvalidToken = errors.New("token invalid")
)

// Claims is the JWT payload. Subject holds the user id.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Service issues and verifies bearer tokens and hashes passwords.
type Service struct {
	users      storage.UserStore
	secret     []byte
	tokenTTL   time.Duration
	bcryptCost int
	nowFn      func() time.Time
}

// NewService creates an auth service. A zero tokenTTL issues tokens without expiry;
// a bcryptCost outside bcrypt's range falls back to bcrypt.DefaultCost.
func NewService(users storage.UserStore, secret string, tokenTTL time.Duration, bcryptCost int) *Service {
	if users == nil {
		panic("auth: user store must not be nil")
	}
	if secret == "" {
		panic("auth: secret must not be empty")
	}
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		users:      users,
		secret:     []byte(secret),
		tokenTTL:   tokenTTL,
		bcryptCost: bcryptCost,
		nowFn: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// RegisterRoutes registers the login route.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.POST("/api/login", s.LoginHandler)
}

// HashPassword returns the bcrypt hash of password.
func (s *Service) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Authenticate checks username and password against the stored hash.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*v1.User, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// IssueToken signs an HS256 token for user.
func (s *Service) IssueToken(user *v1.User) (string, error) {
	now := s.nowFn()
	claims := Claims{
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  user.ID,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if s.tokenTTL > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.tokenTTL))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ParseToken verifies the signature and expiry of tokenString.
func (s *Service) ParseToken(tokenString string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.nowFn),
	)
	if err != nil {
		slog.Debug("Token rejected", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
