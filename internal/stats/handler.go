package stats

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	coreagg "github.com/bloglist-lab/bloglist/internal/core/aggregation"
	httperr "github.com/bloglist-lab/bloglist/internal/core/errors"
	"github.com/gin-gonic/gin"
)

const msgStatsFailed = "Failed to compute blog statistics"

// HandleStoredReport handles GET /api/stats.
func (s *Service) HandleStoredReport(c *gin.Context) {
	report, err := s.StoredReport(c.Request.Context())
	if err != nil {
		slog.Error("Failed to compute stored report", "error", err)
		httperr.WriteError(c, internalError(err))
		return
	}
	c.JSON(http.StatusOK, report)
}

// HandlePostedReport handles POST /api/stats with a JSON array of blogs.
func (s *Service) HandlePostedReport(c *gin.Context) {
	maxBytes := int64(s.maxBodySizeBytes)
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBytes+1)) // +1 to detect oversized requests
	if err != nil {
		slog.Error("Failed to read request body", "error", err)
		httperr.WriteError(c, &httperr.APIError{
			StatusCode: http.StatusInternalServerError,
			ErrorType:  httperr.HttpInternalError,
			Message:    "Failed to read request body",
		})
		return
	}
	if int64(len(body)) > maxBytes {
		slog.Warn("Request body exceeds maximum size", "size", len(body), "max", maxBytes)
		httperr.WriteError(c, &httperr.APIError{
			StatusCode: http.StatusRequestEntityTooLarge,
			ErrorType:  httperr.HttpPayloadTooLargeError,
			Message:    "Request body exceeds maximum allowed size",
			Details: map[string]interface{}{
				"max_size_mb": maxBytes / (1024 * 1024),
			},
		})
		return
	}

	report, err := PostedReport(body)
	if err != nil {
		var rec *coreagg.InvalidRecordError
		switch {
		case errors.As(err, &rec):
			slog.Warn("Invalid record in posted blogs", "index", rec.Index, "field", rec.Field)
			httperr.WriteError(c, &httperr.APIError{
				StatusCode: http.StatusBadRequest,
				ErrorType:  httperr.HttpInvalidRecordError,
				Message:    rec.Error(),
				Details:    rec.Details(),
			})
		case errors.Is(err, ErrInvalidPayload):
			httperr.WriteError(c, &httperr.APIError{
				StatusCode: http.StatusBadRequest,
				ErrorType:  httperr.HttpInvalidJsonError,
				Message:    "Request body must be a JSON array of blog objects",
				Details:    err.Error(),
			})
		default:
			slog.Error("Failed to compute posted report", "error", err)
			httperr.WriteError(c, internalError(err))
		}
		return
	}

	c.JSON(http.StatusOK, report)
}

// HandleTotalLikes handles GET /api/stats/total-likes.
func (s *Service) HandleTotalLikes(c *gin.Context) {
	summary, ok := s.summarize(c)
	if !ok {
		return
	}
	total, err := summary.TotalLikes()
	if err != nil {
		httperr.WriteError(c, internalError(err))
		return
	}
	c.JSON(http.StatusOK, TotalLikesResponse{TotalLikes: total})
}

// HandleFavoriteBlog handles GET /api/stats/favorite-blog. Responds null when there are no blogs.
func (s *Service) HandleFavoriteBlog(c *gin.Context) {
	summary, ok := s.summarize(c)
	if !ok {
		return
	}
	var result *coreagg.Post
	if fav, found := summary.FavoriteBlog(); found {
		result = &fav
	}
	c.JSON(http.StatusOK, result)
}

// HandleMostBlogs handles GET /api/stats/most-blogs. Responds null when there are no blogs.
func (s *Service) HandleMostBlogs(c *gin.Context) {
	summary, ok := s.summarize(c)
	if !ok {
		return
	}
	var result *coreagg.AuthorBlogs
	if mb, found := summary.MostBlogs(); found {
		result = &mb
	}
	c.JSON(http.StatusOK, result)
}

// HandleMostLikes handles GET /api/stats/most-likes. Responds null when there are no blogs.
func (s *Service) HandleMostLikes(c *gin.Context) {
	summary, ok := s.summarize(c)
	if !ok {
		return
	}
	ml, found, err := summary.MostLikes()
	if err != nil {
		httperr.WriteError(c, internalError(err))
		return
	}
	var result *coreagg.AuthorLikes
	if found {
		result = &ml
	}
	c.JSON(http.StatusOK, result)
}

// summarize runs the stored pass and writes the error response on failure.
func (s *Service) summarize(c *gin.Context) (*coreagg.Summary, bool) {
	summary, err := s.SummarizeStored(c.Request.Context())
	if err != nil {
		slog.Error("Failed to summarize stored blogs", "error", err)
		httperr.WriteError(c, internalError(err))
		return nil, false
	}
	return summary, true
}

func internalError(err error) *httperr.APIError {
	return &httperr.APIError{
		StatusCode: http.StatusInternalServerError,
		ErrorType:  httperr.HttpInternalError,
		Message:    msgStatsFailed,
		Details:    err.Error(),
	}
}
