package aggregation

// Supported tally operators.
const (
	OpCount = "count"
	OpSum   = "sum"
)

// Field names reported in InvalidRecordError.
const (
	FieldLikes  = "likes"
	FieldAuthor = "author"
)

// Post is the blog-post summary every aggregation reads.
// Only Author and Likes take part in aggregation; the other fields are carried
// through untouched so FavoriteBlog can hand back the whole record.
type Post struct {
	ID     string `json:"id,omitempty"`
	Title  string `json:"title,omitempty"`
	Author string `json:"author"`
	URL    string `json:"url,omitempty"`
	Likes  int64  `json:"likes"`
	UserID string `json:"user_id,omitempty"`
}

// AuthorBlogs is the result of MostBlogs.
type AuthorBlogs struct {
	Author string `json:"author"`
	Blogs  int64  `json:"blogs"`
}

// AuthorLikes is the result of MostLikes.
type AuthorLikes struct {
	Author string `json:"author"`
	Likes  int64  `json:"likes"`
}
