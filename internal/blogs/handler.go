package blogs

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	v1 "github.com/bloglist-lab/bloglist/internal/api/v1"
	"github.com/bloglist-lab/bloglist/internal/auth"
	httperr "github.com/bloglist-lab/bloglist/internal/core/errors"
	"github.com/bloglist-lab/bloglist/internal/core/storage"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	msgReadBodyFailed  = "Failed to read request body"
	msgInvalidJSON     = "Invalid JSON body"
	msgMalformattedID  = "malformatted id"
	msgBlogNotFound    = "blog not found"
	msgForbiddenDelete = "unauthorized to delete this blog"
	msgForbiddenUpdate = "unauthorized to update this blog"
	msgPersistFailed   = "Failed to persist blog"
	msgLoadFailed      = "Failed to load blogs"
	msgTokenInvalid    = "token invalid"
)

// ListHandler handles GET /api/blogs.
func (s *Service) ListHandler(c *gin.Context) {
	blogs, err := s.ListBlogs(c.Request.Context())
	if err != nil {
		slog.Error("Failed to list blogs", "error", err)
		httperr.WriteError(c, internalError(msgLoadFailed))
		return
	}
	c.JSON(http.StatusOK, blogs)
}

// GetHandler handles GET /api/blogs/:id.
func (s *Service) GetHandler(c *gin.Context) {
	blog, apiErr := s.loadBlog(c)
	if apiErr != nil {
		httperr.WriteError(c, apiErr)
		return
	}

	if owner, err := s.users.GetUser(c.Request.Context(), blog.UserID); err == nil {
		blog.User = owner.Owner()
	} else if !errors.Is(err, storage.ErrNotFound) {
		slog.Warn("Failed to populate blog owner", "error", err, "blog_id", blog.ID)
	}

	c.JSON(http.StatusOK, blog)
}

// CreateHandler handles POST /api/blogs. The caller becomes the owner.
func (s *Service) CreateHandler(c *gin.Context) {
	user, apiErr := currentUser(c)
	if apiErr != nil {
		httperr.WriteError(c, apiErr)
		return
	}

	var req v1.CreateBlogRequest
	if apiErr := s.bindBody(c, &req); apiErr != nil {
		httperr.WriteError(c, apiErr)
		return
	}
	if err := req.Validate(); err != nil {
		slog.Warn("Blog validation failed", "error", err, "user_id", user.ID)
		httperr.WriteError(c, validationError(err))
		return
	}

	blog := req.NewBlog(s.newID(), user.ID, s.nowFn())
	if err := s.blogs.CreateBlog(c.Request.Context(), &blog); err != nil {
		slog.Error("Failed to persist blog", "error", err, "blog_id", blog.ID)
		httperr.WriteError(c, internalError(msgPersistFailed))
		return
	}

	slog.Info("Blog created", "blog_id", blog.ID, "user_id", user.ID)
	blog.User = user.Owner()
	c.JSON(http.StatusCreated, blog)
}

// UpdateHandler handles PATCH /api/blogs/:id. Only the owner may update.
func (s *Service) UpdateHandler(c *gin.Context) {
	user, apiErr := currentUser(c)
	if apiErr != nil {
		httperr.WriteError(c, apiErr)
		return
	}

	existing, apiErr := s.loadBlog(c)
	if apiErr != nil {
		httperr.WriteError(c, apiErr)
		return
	}
	if existing.UserID != user.ID {
		slog.Warn("Blog update rejected", "blog_id", existing.ID, "user_id", user.ID)
		httperr.WriteError(c, forbidden(msgForbiddenUpdate))
		return
	}

	var req v1.UpdateBlogRequest
	if apiErr := s.bindBody(c, &req); apiErr != nil {
		httperr.WriteError(c, apiErr)
		return
	}
	if err := req.Validate(); err != nil {
		httperr.WriteError(c, validationError(err))
		return
	}

	updated := req.Apply(*existing)
	if err := s.blogs.UpdateBlog(c.Request.Context(), &updated); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httperr.WriteError(c, notFound())
			return
		}
		slog.Error("Failed to update blog", "error", err, "blog_id", updated.ID)
		httperr.WriteError(c, internalError(msgPersistFailed))
		return
	}

	updated.User = user.Owner()
	c.JSON(http.StatusOK, updated)
}

// DeleteHandler handles DELETE /api/blogs/:id. Only the owner may delete.
func (s *Service) DeleteHandler(c *gin.Context) {
	user, apiErr := currentUser(c)
	if apiErr != nil {
		httperr.WriteError(c, apiErr)
		return
	}

	existing, apiErr := s.loadBlog(c)
	if apiErr != nil {
		httperr.WriteError(c, apiErr)
		return
	}
	if existing.UserID != user.ID {
		slog.Warn("Blog delete rejected", "blog_id", existing.ID, "user_id", user.ID)
		httperr.WriteError(c, forbidden(msgForbiddenDelete))
		return
	}

	if err := s.blogs.DeleteBlog(c.Request.Context(), existing.ID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httperr.WriteError(c, notFound())
			return
		}
		slog.Error("Failed to delete blog", "error", err, "blog_id", existing.ID)
		httperr.WriteError(c, internalError("Failed to delete blog"))
		return
	}

	slog.Info("Blog deleted", "blog_id", existing.ID, "user_id", user.ID)
	c.Status(http.StatusNoContent)
}

// loadBlog parses the :id path parameter and fetches the blog.
func (s *Service) loadBlog(c *gin.Context) (*v1.Blog, *httperr.APIError) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return nil, &httperr.APIError{
			StatusCode: http.StatusBadRequest,
			ErrorType:  httperr.HttpValidationError,
			Message:    msgMalformattedID,
		}
	}

	blog, err := s.blogs.GetBlog(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, notFound()
		}
		slog.Error("Failed to load blog", "error", err, "blog_id", id)
		return nil, internalError(msgLoadFailed)
	}
	return blog, nil
}

// bindBody reads at most maxBodySizeBytes and decodes the JSON body into dst.
func (s *Service) bindBody(c *gin.Context, dst interface{}) *httperr.APIError {
	maxBytes := int64(s.maxBodySizeBytes)
	bodyBytes, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBytes+1)) // +1 to detect oversized requests
	if err != nil {
		slog.Error("Failed to read request body", "error", err)
		return internalError(msgReadBodyFailed)
	}

	if int64(len(bodyBytes)) > maxBytes {
		slog.Warn("Request body exceeds maximum size", "size", len(bodyBytes), "max", maxBytes)
		return &httperr.APIError{
			StatusCode: http.StatusRequestEntityTooLarge,
			ErrorType:  httperr.HttpPayloadTooLargeError,
			Message:    "Request body exceeds maximum allowed size",
			Details: map[string]interface{}{
				"max_size_mb": maxBytes / (1024 * 1024),
			},
		}
	}

	if err := json.Unmarshal(bodyBytes, dst); err != nil {
		slog.Warn("Invalid JSON body received", "error", err, "payload_size", len(bodyBytes))
		return &httperr.APIError{
			StatusCode: http.StatusBadRequest,
			ErrorType:  httperr.HttpInvalidJsonError,
			Message:    msgInvalidJSON,
			Details:    err.Error(),
		}
	}
	return nil
}

func currentUser(c *gin.Context) (*v1.User, *httperr.APIError) {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return nil, &httperr.APIError{
			StatusCode: http.StatusUnauthorized,
			ErrorType:  httperr.HttpUnauthorizedError,
			Message:    msgTokenInvalid,
		}
	}
	return user, nil
}

func notFound() *httperr.APIError {
	return &httperr.APIError{
		StatusCode: http.StatusNotFound,
		ErrorType:  httperr.HttpNotFoundError,
		Message:    msgBlogNotFound,
	}
}

func forbidden(message string) *httperr.APIError {
	return &httperr.APIError{
		StatusCode: http.StatusForbidden,
		ErrorType:  httperr.HttpForbiddenError,
		Message:    message,
	}
}

func validationError(err error) *httperr.APIError {
	return &httperr.APIError{
		StatusCode: http.StatusBadRequest,
		ErrorType:  httperr.HttpValidationError,
		Message:    err.Error(),
	}
}

func internalError(message string) *httperr.APIError {
	return &httperr.APIError{
		StatusCode: http.StatusInternalServerError,
		ErrorType:  httperr.HttpInternalError,
		Message:    message,
	}
}
