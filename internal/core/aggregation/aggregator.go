package aggregation

import (
	"github.com/shopspring/decimal"
)

// Aggregator defines the reduce semantics of a tally operator.
// To add a new operator: implement this interface and register it in Operators.
type Aggregator interface {
	// Initial returns the tally value after the first post for an author.
	// count → 1; sum → the incoming value itself.
	Initial(incoming decimal.Decimal) decimal.Decimal

	// Apply folds an incoming value into an existing tally value.
	Apply(current, incoming decimal.Decimal) decimal.Decimal
}

// Operators is the registry of all supported tally operators.
var Operators = map[string]Aggregator{
	OpCount: countAgg{},
	OpSum:   sumAgg{},
}

// ValidOperator reports whether op is a registered tally operator.
func ValidOperator(op string) bool {
	_, ok := Operators[op]
	return ok
}

// countAgg increments by 1 per post. The incoming value is ignored.
type countAgg struct{}

func (countAgg) Initial(_ decimal.Decimal) decimal.Decimal    { return decimal.NewFromInt(1) }
func (countAgg) Apply(cur, _ decimal.Decimal) decimal.Decimal { return cur.Add(decimal.NewFromInt(1)) }

// sumAgg accumulates the sum of incoming values.
type sumAgg struct{}

func (sumAgg) Initial(v decimal.Decimal) decimal.Decimal      { return v }
func (sumAgg) Apply(cur, inc decimal.Decimal) decimal.Decimal { return cur.Add(inc) }

// TotalLikes returns the sum of likes across posts. An empty slice sums to 0.
func TotalLikes(posts []Post) (int64, error) {
	s, err := Summarize(posts)
	if err != nil {
		return 0, err
	}
	return s.TotalLikes()
}

// FavoriteBlog returns the post with the most likes.
// ok is false for an empty slice. Among posts tied on likes the earliest one wins.
func FavoriteBlog(posts []Post) (post Post, ok bool, err error) {
	s, err := Summarize(posts)
	if err != nil {
		return Post{}, false, err
	}
	post, ok = s.FavoriteBlog()
	return post, ok, nil
}

// MostBlogs returns the author with the most posts.
// ok is false for an empty slice. Among tied authors the one that appears first wins.
// Likes are not read, so MostBlogs cannot fail.
func MostBlogs(posts []Post) (AuthorBlogs, bool) {
	t := NewTally(Operators[OpCount])
	for i := range posts {
		t.Add(posts[i].Author, decimal.Zero)
	}
	leader, ok := t.Leader()
	if !ok {
		return AuthorBlogs{}, false
	}
	return AuthorBlogs{Author: leader.Author, Blogs: leader.Value.IntPart()}, true
}

// MostLikes returns the author with the highest like total.
// ok is false for an empty slice. Among tied authors the one that appears first wins.
func MostLikes(posts []Post) (result AuthorLikes, ok bool, err error) {
	s, err := Summarize(posts)
	if err != nil {
		return AuthorLikes{}, false, err
	}
	return s.MostLikes()
}

// Summarize folds every post into a new Summary.
// The first invalid post aborts the whole pass.
func Summarize(posts []Post) (*Summary, error) {
	s := NewSummary()
	for i := range posts {
		if err := s.Add(posts[i]); err != nil {
			return nil, err
		}
	}
	return s, nil
}
