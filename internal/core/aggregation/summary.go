package aggregation

import (
	"math"

	"github.com/shopspring/decimal"
)

var maxInt64 = decimal.NewFromInt(math.MaxInt64)

// Summary computes all four blog aggregates in one incremental pass.
// It lets a caller feed posts straight from a storage cursor instead of
// materializing the whole collection first. A Summary is not safe for
// concurrent use.
type Summary struct {
	seen     int
	total    decimal.Decimal
	favorite Post
	favLikes int64
	blogs    *Tally
	likes    *Tally
}

// NewSummary returns an empty Summary.
func NewSummary() *Summary {
	return &Summary{
		total: decimal.Zero,
		blogs: NewTally(Operators[OpCount]),
		likes: NewTally(Operators[OpSum]),
	}
}

// Add folds one post into the summary.
// A post with negative likes is rejected with an *InvalidRecordError and leaves
// the summary unchanged; callers are expected to discard it.
func (s *Summary) Add(p Post) error {
	if p.Likes < 0 {
		return invalidLikes(s.seen, p.Likes, "must be non-negative")
	}

	likes := decimal.NewFromInt(p.Likes)
	s.total = s.total.Add(likes)
	if s.seen == 0 || p.Likes > s.favLikes {
		s.favorite = p
		s.favLikes = p.Likes
	}
	s.blogs.Add(p.Author, likes)
	s.likes.Add(p.Author, likes)
	s.seen++
	return nil
}

// Len returns how many posts have been added.
func (s *Summary) Len() int {
	return s.seen
}

// TotalLikes returns the sum of likes, or ErrLikesOverflow if it exceeds int64.
func (s *Summary) TotalLikes() (int64, error) {
	if s.total.GreaterThan(maxInt64) {
		return 0, ErrLikesOverflow
	}
	return s.total.IntPart(), nil
}

// FavoriteBlog returns the first post that reached the highest like count.
func (s *Summary) FavoriteBlog() (Post, bool) {
	if s.seen == 0 {
		return Post{}, false
	}
	return s.favorite, true
}

// MostBlogs returns the author with the most posts.
func (s *Summary) MostBlogs() (AuthorBlogs, bool) {
	leader, ok := s.blogs.Leader()
	if !ok {
		return AuthorBlogs{}, false
	}
	return AuthorBlogs{Author: leader.Author, Blogs: leader.Value.IntPart()}, true
}

// MostLikes returns the author with the highest like total.
func (s *Summary) MostLikes() (AuthorLikes, bool, error) {
	leader, ok := s.likes.Leader()
	if !ok {
		return AuthorLikes{}, false, nil
	}
	if leader.Value.GreaterThan(maxInt64) {
		return AuthorLikes{}, false, ErrLikesOverflow
	}
	return AuthorLikes{Author: leader.Author, Likes: leader.Value.IntPart()}, true, nil
}
