package aggregation

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var (
	dijkstra1 = Post{
		ID:     "5a422aa71b54a676234d17f8",
		Title:  "Go To Statement Considered Harmful",
		Author: "Edsger W. Dijkstra",
		URL:    "https://homepages.cwi.nl/~storm/teaching/reader/Dijkstra68.pdf",
		Likes:  5,
	}
	dijkstra2 = Post{
		ID:     "5a422aa71b54a676234d17f9",
		Title:  "Test Blog",
		Author: "Edsger W. Dijkstra",
		URL:    "https://homepages.cwi.nl/~storm/teaching/reader/Dijkstra68.pdf",
		Likes:  10,
	}
	doe1 = Post{
		ID:     "5a422aa71b54a676234d17f6",
		Title:  "Test Blog 2",
		Author: "John Doe",
		URL:    "https://homepages.cwi.nl/~storm/teaching/reader/Dijkstra68.pdf",
		Likes:  5,
	}
	doe2 = Post{
		ID:     "5a422aa71b54a676234d17f5",
		Title:  "Test Blog 3",
		Author: "John Doe",
		URL:    "https://homepages.cwi.nl/~storm/teaching/reader/Dijkstra68.pdf",
		Likes:  10,
	}

	listWithOneBlog   = []Post{dijkstra1}
	listWithManyBlogs = []Post{dijkstra1, dijkstra2, doe1}
	listWithTiedBlogs = []Post{dijkstra1, dijkstra2, doe1, doe2}
)

func TestOperators_InitialAndApply(t *testing.T) {
	tests := []struct {
		name        string
		op          string
		incoming    decimal.Decimal
		current     decimal.Decimal
		next        decimal.Decimal
		wantInitial decimal.Decimal
		wantApply   decimal.Decimal
	}{
		{
			name:        "count",
			op:          OpCount,
			incoming:    decimal.NewFromInt(123),
			current:     decimal.NewFromInt(9),
			next:        decimal.NewFromInt(456),
			wantInitial: decimal.NewFromInt(1),
			wantApply:   decimal.NewFromInt(10),
		},
		{
			name:        "sum",
			op:          OpSum,
			incoming:    decimal.NewFromInt(3),
			current:     decimal.NewFromInt(9),
			next:        decimal.NewFromInt(4),
			wantInitial: decimal.NewFromInt(3),
			wantApply:   decimal.NewFromInt(13),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			agg, ok := Operators[tc.op]
			require.True(t, ok)
			require.True(t, tc.wantInitial.Equal(agg.Initial(tc.incoming)))
			require.True(t, tc.wantApply.Equal(agg.Apply(tc.current, tc.next)))
		})
	}
}

func TestValidOperator(t *testing.T) {
	require.True(t, ValidOperator(OpCount))
	require.True(t, ValidOperator(OpSum))
	require.False(t, ValidOperator("avg"))
	require.False(t, ValidOperator(""))
}

func TestTotalLikes(t *testing.T) {
	tests := []struct {
		name  string
		posts []Post
		want  int64
	}{
		{name: "empty list is zero", posts: nil, want: 0},
		{name: "one blog equals its likes", posts: listWithOneBlog, want: 5},
		{name: "many blogs sum their likes", posts: listWithManyBlogs, want: 20},
		{name: "zero likes", posts: []Post{{Author: "A"}}, want: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := TotalLikes(tc.posts)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestTotalLikes_OrderIndependent(t *testing.T) {
	a, err := TotalLikes([]Post{dijkstra1, dijkstra2, doe1, doe2})
	require.NoError(t, err)
	b, err := TotalLikes([]Post{doe2, doe1, dijkstra2, dijkstra1})
	require.NoError(t, err)
	require.Equal(t, a, b)
	require.Equal(t, int64(30), a)
}

func TestTotalLikes_NegativeLikesIsInvalidRecord(t *testing.T) {
	_, err := TotalLikes([]Post{dijkstra1, {Author: "A", Likes: -1}})
	require.ErrorIs(t, err, ErrInvalidRecord)

	var rec *InvalidRecordError
	require.ErrorAs(t, err, &rec)
	require.Equal(t, 1, rec.Index)
	require.Equal(t, FieldLikes, rec.Field)
	require.Equal(t, int64(-1), rec.Value)
}

func TestTotalLikes_Overflow(t *testing.T) {
	_, err := TotalLikes([]Post{{Likes: math.MaxInt64}, {Likes: 1}})
	require.ErrorIs(t, err, ErrLikesOverflow)
}

func TestFavoriteBlog(t *testing.T) {
	t.Run("empty list is absent", func(t *testing.T) {
		_, ok, err := FavoriteBlog(nil)
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("one blog equals that blog", func(t *testing.T) {
		got, ok, err := FavoriteBlog(listWithOneBlog)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, dijkstra1, got)
	})

	t.Run("many blogs picks most likes", func(t *testing.T) {
		got, ok, err := FavoriteBlog(listWithManyBlogs)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, dijkstra2, got)
	})

	t.Run("tie keeps first encountered", func(t *testing.T) {
		got, ok, err := FavoriteBlog(listWithTiedBlogs)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, dijkstra2, got)

		got, _, err = FavoriteBlog([]Post{doe1, dijkstra1})
		require.NoError(t, err)
		require.Equal(t, doe1, got)
	})

	t.Run("all zero likes returns first", func(t *testing.T) {
		first := Post{Author: "A", Title: "first"}
		got, ok, err := FavoriteBlog([]Post{first, {Author: "B", Title: "second"}})
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, first, got)
	})
}

func TestMostBlogs(t *testing.T) {
	tests := []struct {
		name   string
		posts  []Post
		want   AuthorBlogs
		wantOK bool
	}{
		{name: "empty list is absent", posts: []Post{}, wantOK: false},
		{
			name:   "one blog",
			posts:  listWithOneBlog,
			want:   AuthorBlogs{Author: "Edsger W. Dijkstra", Blogs: 1},
			wantOK: true,
		},
		{
			name:   "many blogs",
			posts:  listWithManyBlogs,
			want:   AuthorBlogs{Author: "Edsger W. Dijkstra", Blogs: 2},
			wantOK: true,
		},
		{
			name:   "later author overtakes",
			posts:  []Post{{Author: "B"}, {Author: "A"}, {Author: "A"}},
			want:   AuthorBlogs{Author: "A", Blogs: 2},
			wantOK: true,
		},
		{
			name:   "tie keeps first appearing author",
			posts:  []Post{{Author: "A"}, {Author: "A"}, {Author: "B"}, {Author: "B"}},
			want:   AuthorBlogs{Author: "A", Blogs: 2},
			wantOK: true,
		},
		{
			name:   "tie decided by first appearance, not first to reach max",
			posts:  []Post{{Author: "B"}, {Author: "A"}, {Author: "A"}, {Author: "B"}},
			want:   AuthorBlogs{Author: "B", Blogs: 2},
			wantOK: true,
		},
		{
			name:   "empty author is a valid key",
			posts:  []Post{{Author: ""}, {Author: ""}, {Author: "A"}},
			want:   AuthorBlogs{Author: "", Blogs: 2},
			wantOK: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := MostBlogs(tc.posts)
			require.Equal(t, tc.wantOK, ok)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestMostBlogs_IgnoresLikes(t *testing.T) {
	got, ok := MostBlogs([]Post{{Author: "A", Likes: -3}})
	require.True(t, ok)
	require.Equal(t, AuthorBlogs{Author: "A", Blogs: 1}, got)
}

func TestMostLikes(t *testing.T) {
	tests := []struct {
		name   string
		posts  []Post
		want   AuthorLikes
		wantOK bool
	}{
		{name: "empty list is absent", posts: nil, wantOK: false},
		{
			name:   "one blog",
			posts:  listWithOneBlog,
			want:   AuthorLikes{Author: "Edsger W. Dijkstra", Likes: 5},
			wantOK: true,
		},
		{
			name:   "many blogs",
			posts:  listWithManyBlogs,
			want:   AuthorLikes{Author: "Edsger W. Dijkstra", Likes: 15},
			wantOK: true,
		},
		{
			name:   "tie keeps first appearing author",
			posts:  listWithTiedBlogs,
			want:   AuthorLikes{Author: "Edsger W. Dijkstra", Likes: 15},
			wantOK: true,
		},
		{
			name: "author with most total likes",
			posts: []Post{
				{Author: "A", Likes: 5},
				{Author: "A", Likes: 10},
				{Author: "B", Likes: 5},
			},
			want:   AuthorLikes{Author: "A", Likes: 15},
			wantOK: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok, err := MostLikes(tc.posts)
			require.NoError(t, err)
			require.Equal(t, tc.wantOK, ok)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestMostLikes_InvalidRecord(t *testing.T) {
	_, ok, err := MostLikes([]Post{{Author: "A", Likes: 1}, {Author: "B", Likes: -5}})
	require.False(t, ok)
	require.ErrorIs(t, err, ErrInvalidRecord)
}

func TestAggregations_AreIdempotentAndDoNotMutateInput(t *testing.T) {
	input := []Post{dijkstra1, doe1, dijkstra2, doe2}
	snapshot := append([]Post(nil), input...)

	for i := 0; i < 3; i++ {
		total, err := TotalLikes(input)
		require.NoError(t, err)
		require.Equal(t, int64(30), total)

		fav, ok, err := FavoriteBlog(input)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, dijkstra2, fav)

		blogs, ok := MostBlogs(input)
		require.True(t, ok)
		require.Equal(t, AuthorBlogs{Author: "Edsger W. Dijkstra", Blogs: 2}, blogs)

		likes, ok, err := MostLikes(input)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, AuthorLikes{Author: "Edsger W. Dijkstra", Likes: 15}, likes)

		require.Equal(t, snapshot, input)
	}
}

func TestAggregations_NonTieResultsAreOrderIndependent(t *testing.T) {
	forward := []Post{
		{Author: "A", Likes: 5},
		{Author: "A", Likes: 10},
		{Author: "B", Likes: 7},
		{Author: "C", Likes: 1},
	}
	reversed := []Post{forward[3], forward[2], forward[1], forward[0]}

	for _, posts := range [][]Post{forward, reversed} {
		fav, ok, err := FavoriteBlog(posts)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, int64(10), fav.Likes)

		blogs, ok := MostBlogs(posts)
		require.True(t, ok)
		require.Equal(t, AuthorBlogs{Author: "A", Blogs: 2}, blogs)

		likes, ok, err := MostLikes(posts)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, AuthorLikes{Author: "A", Likes: 15}, likes)
	}
}

func TestSummary_MatchesSliceFunctions(t *testing.T) {
	s := NewSummary()
	for _, p := range listWithTiedBlogs {
		require.NoError(t, s.Add(p))
	}
	require.Equal(t, 4, s.Len())

	total, err := s.TotalLikes()
	require.NoError(t, err)
	wantTotal, err := TotalLikes(listWithTiedBlogs)
	require.NoError(t, err)
	require.Equal(t, wantTotal, total)

	fav, ok := s.FavoriteBlog()
	require.True(t, ok)
	require.Equal(t, dijkstra2, fav)

	blogs, ok := s.MostBlogs()
	require.True(t, ok)
	wantBlogs, _ := MostBlogs(listWithTiedBlogs)
	require.Equal(t, wantBlogs, blogs)

	likes, ok, err := s.MostLikes()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, AuthorLikes{Author: "Edsger W. Dijkstra", Likes: 15}, likes)
}

func TestSummary_RejectedPostLeavesStateUnchanged(t *testing.T) {
	s := NewSummary()
	require.NoError(t, s.Add(dijkstra1))
	require.Error(t, s.Add(Post{Author: "X", Likes: -1}))
	require.Equal(t, 1, s.Len())

	total, err := s.TotalLikes()
	require.NoError(t, err)
	require.Equal(t, int64(5), total)

	blogs, ok := s.MostBlogs()
	require.True(t, ok)
	require.Equal(t, "Edsger W. Dijkstra", blogs.Author)
}

func TestSummary_Empty(t *testing.T) {
	s := NewSummary()

	total, err := s.TotalLikes()
	require.NoError(t, err)
	require.Zero(t, total)

	_, ok := s.FavoriteBlog()
	require.False(t, ok)
	_, ok = s.MostBlogs()
	require.False(t, ok)
	_, ok, err = s.MostLikes()
	require.NoError(t, err)
	require.False(t, ok)
}
