package users

import (
	"errors"
	"log/slog"
	"net/http"

	v1 "github.com/bloglist-lab/bloglist/internal/api/v1"
	httperr "github.com/bloglist-lab/bloglist/internal/core/errors"
	"github.com/bloglist-lab/bloglist/internal/core/storage"
	"github.com/gin-gonic/gin"
)

const msgUsernameTaken = "username must be unique"

// CreateHandler handles POST /api/users.
func (s *Service) CreateHandler(c *gin.Context) {
	var req v1.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("Invalid JSON body received", "error", err)
		httperr.WriteError(c, &httperr.APIError{
			StatusCode: http.StatusBadRequest,
			ErrorType:  httperr.HttpInvalidJsonError,
			Message:    "Invalid JSON body",
		})
		return
	}
	if err := req.Validate(); err != nil {
		httperr.WriteError(c, &httperr.APIError{
			StatusCode: http.StatusBadRequest,
			ErrorType:  httperr.HttpValidationError,
			Message:    err.Error(),
		})
		return
	}

	user, err := s.CreateUser(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			slog.Info("Duplicate username rejected", "username", req.Username)
			httperr.WriteError(c, &httperr.APIError{
				StatusCode: http.StatusBadRequest,
				ErrorType:  httperr.HttpDuplicateError,
				Message:    msgUsernameTaken,
			})
			return
		}
		slog.Error("Failed to create user", "error", err, "username", req.Username)
		httperr.WriteError(c, &httperr.APIError{
			StatusCode: http.StatusInternalServerError,
			ErrorType:  httperr.HttpInternalError,
			Message:    "Failed to create user",
		})
		return
	}

	slog.Info("User created", "user_id", user.ID, "username", user.Username)
	c.JSON(http.StatusCreated, user)
}

// ListHandler handles GET /api/users.
func (s *Service) ListHandler(c *gin.Context) {
	users, err := s.ListUsers(c.Request.Context())
	if err != nil {
		slog.Error("Failed to list users", "error", err)
		httperr.WriteError(c, &httperr.APIError{
			StatusCode: http.StatusInternalServerError,
			ErrorType:  httperr.HttpInternalError,
			Message:    "Failed to load users",
		})
		return
	}
	c.JSON(http.StatusOK, users)
}
