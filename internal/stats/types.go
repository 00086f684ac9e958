package stats

import (
	coreagg "github.com/bloglist-lab/bloglist/internal/core/aggregation"
)

// Report is the response of the summary endpoints.
// Aggregates that do not exist for an empty collection are null.
type Report struct {
	Count        int                  `json:"count"`
	TotalLikes   int64                `json:"total_likes"`
	FavoriteBlog *coreagg.Post        `json:"favorite_blog"`
	MostBlogs    *coreagg.AuthorBlogs `json:"most_blogs"`
	MostLikes    *coreagg.AuthorLikes `json:"most_likes"`
}

// TotalLikesResponse is the response of GET /api/stats/total-likes.
type TotalLikesResponse struct {
	TotalLikes int64 `json:"total_likes"`
}

// newReport reads every aggregate out of a finished summary.
func newReport(s *coreagg.Summary) (*Report, error) {
	total, err := s.TotalLikes()
	if err != nil {
		return nil, err
	}

	report := &Report{Count: s.Len(), TotalLikes: total}
	if fav, ok := s.FavoriteBlog(); ok {
		report.FavoriteBlog = &fav
	}
	if mb, ok := s.MostBlogs(); ok {
		report.MostBlogs = &mb
	}
	ml, ok, err := s.MostLikes()
	if err != nil {
		return nil, err
	}
	if ok {
		report.MostLikes = &ml
	}
	return report, nil
}
