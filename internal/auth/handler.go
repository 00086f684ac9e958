package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	v1 "github.com/bloglist-lab/bloglist/internal/api/v1"
	httperr "github.com/bloglist-lab/bloglist/internal/core/errors"
	"github.com/bloglist-lab/bloglist/internal/core/storage"
	"github.com/gin-gonic/gin"
)

const (
	userContextKey = "auth.user"

	msgUserNotFound = "user not found"
)

// LoginHandler handles POST /api/login.
func (s *Service) LoginHandler(c *gin.Context) {
	var req v1.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.WriteError(c, &httperr.APIError{
			StatusCode: http.StatusBadRequest,
			ErrorType:  httperr.HttpInvalidJsonError,
			Message:    "Invalid JSON body",
		})
		return
	}

	user, err := s.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			slog.Info("Login rejected", "username", req.Username)
			httperr.WriteError(c, &httperr.APIError{
				StatusCode: http.StatusUnauthorized,
				ErrorType:  httperr.HttpUnauthorizedError,
				Message:    ErrInvalidCredentials.Error(),
			})
			return
		}
		slog.Error("Login failed", "error", err, "username", req.Username)
		httperr.WriteError(c, &httperr.APIError{
			StatusCode: http.StatusInternalServerError,
			ErrorType:  httperr.HttpInternalError,
			Message:    "Failed to authenticate",
		})
		return
	}

	token, err := s.IssueToken(user)
	if err != nil {
		slog.Error("Failed to issue token", "error", err, "user_id", user.ID)
		httperr.WriteError(c, &httperr.APIError{
			StatusCode: http.StatusInternalServerError,
			ErrorType:  httperr.HttpInternalError,
			Message:    "Failed to issue token",
		})
		return
	}

	c.JSON(http.StatusOK, v1.LoginResponse{
		Token:    token,
		Username: user.Username,
		Name:     user.Name,
	})
}

// UserExtractor resolves the bearer token to a stored user and attaches it to the
// request. Requests without a valid token are rejected with 401.
func (s *Service) UserExtractor() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractBearerToken(c)
		if tokenString == "" {
			httperr.AbortWithError(c, unauthorized(ErrInvalidToken.Error()))
			return
		}

		claims, err := s.ParseToken(tokenString)
		if err != nil {
			httperr.AbortWithError(c, unauthorized(ErrInvalidToken.Error()))
			return
		}

		user, err := s.users.GetUser(c.Request.Context(), claims.Subject)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				httperr.AbortWithError(c, unauthorized(msgUserNotFound))
				return
			}
			slog.Error("Failed to load token user", "error", err, "user_id", claims.Subject)
			httperr.AbortWithError(c, &httperr.APIError{
				StatusCode: http.StatusInternalServerError,
				ErrorType:  httperr.HttpInternalError,
				Message:    "Failed to load user",
			})
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// UserFromContext returns the user attached by UserExtractor.
func UserFromContext(c *gin.Context) (*v1.User, bool) {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*v1.User)
	return user, ok && user != nil
}

// SetUser attaches user to the request, as UserExtractor does.
func SetUser(c *gin.Context, user *v1.User) {
	c.Set(userContextKey, user)
}

func extractBearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}

func unauthorized(message string) *httperr.APIError {
	return &httperr.APIError{
		StatusCode: http.StatusUnauthorized,
		ErrorType:  httperr.HttpUnauthorizedError,
		Message:    message,
	}
}
