package aggregation

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// ExtractLikes pulls the likes count out of a dynamically typed post.
// index is the post's position, used only for error reporting.
//
// JSON numbers arrive as float64 or json.Number depending on the decoder;
// numeric strings are accepted too. Anything missing, non-numeric, fractional,
// negative or outside int64 fails with an *InvalidRecordError.
func ExtractLikes(data map[string]interface{}, index int) (int64, error) {
	v, ok := data[FieldLikes]
	if !ok || v == nil {
		return 0, invalidLikes(index, nil, "missing")
	}

	var d decimal.Decimal
	switch val := v.(type) {
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return 0, invalidLikes(index, val, "not a finite number")
		}
		d = decimal.NewFromFloat(val)
	case float32:
		f := float64(val)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, invalidLikes(index, val, "not a finite number")
		}
		d = decimal.NewFromFloat(f)
	case int:
		d = decimal.NewFromInt(int64(val))
	case int64:
		d = decimal.NewFromInt(val)
	case int32:
		d = decimal.NewFromInt(int64(val))
	case json.Number:
		parsed, err := decimal.NewFromString(val.String())
		if err != nil {
			return 0, invalidLikes(index, val.String(), "not a number")
		}
		d = parsed
	case string:
		parsed, err := decimal.NewFromString(val)
		if err != nil {
			return 0, invalidLikes(index, val, "not a number")
		}
		d = parsed
	default:
		return 0, invalidLikes(index, v, fmt.Sprintf("unsupported type %T", v))
	}

	if !d.IsInteger() {
		return 0, invalidLikes(index, d.String(), "must be a whole number")
	}
	if d.IsNegative() {
		return 0, invalidLikes(index, d.String(), "must be non-negative")
	}
	if d.GreaterThan(maxInt64) {
		return 0, invalidLikes(index, d.String(), "out of range")
	}
	return d.IntPart(), nil
}

// DecodePost converts a dynamically typed JSON object into a Post.
// A missing author is kept as the empty grouping key; a non-string author is rejected.
func DecodePost(data map[string]interface{}, index int) (Post, error) {
	likes, err := ExtractLikes(data, index)
	if err != nil {
		return Post{}, err
	}

	var author string
	if raw, ok := data[FieldAuthor]; ok && raw != nil {
		s, isString := raw.(string)
		if !isString {
			return Post{}, &InvalidRecordError{Index: index, Field: FieldAuthor, Value: raw, Reason: "must be a string"}
		}
		author = s
	}

	return Post{
		ID:     stringField(data, "id"),
		Title:  stringField(data, "title"),
		Author: author,
		URL:    stringField(data, "url"),
		Likes:  likes,
		UserID: stringField(data, "user_id"),
	}, nil
}

// DecodePosts converts every element, failing on the first invalid one.
func DecodePosts(items []map[string]interface{}) ([]Post, error) {
	posts := make([]Post, 0, len(items))
	for i, item := range items {
		p, err := DecodePost(item, i)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, nil
}

func stringField(data map[string]interface{}, key string) string {
	if s, ok := data[key].(string); ok {
		return s
	}
	return ""
}
