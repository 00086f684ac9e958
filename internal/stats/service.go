package stats

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	v1 "github.com/bloglist-lab/bloglist/internal/api/v1"
	coreagg "github.com/bloglist-lab/bloglist/internal/core/aggregation"
	"github.com/bloglist-lab/bloglist/internal/core/storage"
	"github.com/gin-gonic/gin"
)

// ErrInvalidPayload marks a posted body that is not a JSON array of objects.
var ErrInvalidPayload = errors.New("invalid stats payload")

// Service serves the blog aggregates, either over stored blogs or over a
// posted list.
type Service struct {
	blogs            storage.BlogStore
	maxBodySizeBytes int
}

func NewService(blogs storage.BlogStore, maxBodySizeMB int) *Service {
	if blogs == nil {
		panic("stats: blog store must not be nil")
	}
	if maxBodySizeMB <= 0 {
		maxBodySizeMB = 1 // default to 1MB
	}
	return &Service{
		blogs:            blogs,
		maxBodySizeBytes: maxBodySizeMB * 1024 * 1024,
	}
}

// RegisterRoutes registers all stats API routes on the given router.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	g := r.Group("/api/stats")
	g.GET("", s.HandleStoredReport)
	g.POST("", s.HandlePostedReport)
	g.GET("/total-likes", s.HandleTotalLikes)
	g.GET("/favorite-blog", s.HandleFavoriteBlog)
	g.GET("/most-blogs", s.HandleMostBlogs)
	g.GET("/most-likes", s.HandleMostLikes)
}

// SummarizeStored folds every stored blog into a Summary in one streamed pass.
func (s *Service) SummarizeStored(ctx context.Context) (*coreagg.Summary, error) {
	summary := coreagg.NewSummary()
	err := s.blogs.StreamBlogs(ctx, func(b v1.Blog) error {
		return summary.Add(b.Post())
	})
	if err != nil {
		return nil, fmt.Errorf("failed to summarize stored blogs: %w", err)
	}
	return summary, nil
}

// StoredReport computes the report over every stored blog.
func (s *Service) StoredReport(ctx context.Context) (*Report, error) {
	summary, err := s.SummarizeStored(ctx)
	if err != nil {
		return nil, err
	}
	return newReport(summary)
}

// PostedReport computes the report over a raw JSON array of blog objects.
// Any element with unusable likes fails the whole call with an InvalidRecordError.
func PostedReport(body []byte) (*Report, error) {
	items, err := decodeItems(body)
	if err != nil {
		return nil, err
	}

	posts, err := coreagg.DecodePosts(items)
	if err != nil {
		return nil, err
	}

	summary, err := coreagg.Summarize(posts)
	if err != nil {
		return nil, err
	}
	return newReport(summary)
}

// decodeItems keeps numbers as json.Number so likes are not rounded through float64.
func decodeItems(body []byte) ([]map[string]interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var items []map[string]interface{}
	if err := dec.Decode(&items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after array", ErrInvalidPayload)
	}
	if items == nil {
		return nil, fmt.Errorf("%w: expected a JSON array", ErrInvalidPayload)
	}
	for i, item := range items {
		if item == nil {
			return nil, fmt.Errorf("%w: element %d is not an object", ErrInvalidPayload, i)
		}
	}
	return items, nil
}
