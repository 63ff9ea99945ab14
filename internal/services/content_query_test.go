package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseContentQuery_Defaults(t *testing.T) {
	q := ParseContentQuery(map[string]string{})

	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.Limit)
	assert.Empty(t, q.filters)
	assert.Empty(t, q.columns)
	assert.Equal(t, []string{"created_at DESC"}, q.orderBy)
}

func TestParseContentQuery_Pagination(t *testing.T) {
	q := ParseContentQuery(map[string]string{"page": "3", "limit": "25"})
	assert.Equal(t, 3, q.Page)
	assert.Equal(t, 25, q.Limit)

	// Malformed or out-of-range values keep the defaults.
	q = ParseContentQuery(map[string]string{"page": "abc", "limit": "0"})
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.Limit)
}

func TestParseContentQuery_Select(t *testing.T) {
	q := ParseContentQuery(map[string]string{"select": "title, contentType,password"})

	assert.ElementsMatch(t, []string{"title", "content_type"}, q.columns)
}

func TestParseContentQuery_Sort(t *testing.T) {
	q := ParseContentQuery(map[string]string{"sort": "-likes,createdAt,secret"})

	assert.Equal(t, []string{"likes DESC", "created_at ASC"}, q.orderBy)
}

func TestParseContentQuery_EqualityFilter(t *testing.T) {
	q := ParseContentQuery(map[string]string{"contentType": "video"})

	require.Len(t, q.filters, 1)
	assert.Equal(t, contentFilter{"content_type", "=", "video"}, q.filters[0])
}

func TestParseContentQuery_OperatorSuffixes(t *testing.T) {
	q := ParseContentQuery(map[string]string{"likes_gte": "10"})
	require.Len(t, q.filters, 1)
	assert.Equal(t, contentFilter{"likes", ">=", "10"}, q.filters[0])

	q = ParseContentQuery(map[string]string{"views_lt": "500"})
	require.Len(t, q.filters, 1)
	assert.Equal(t, contentFilter{"views", "<", "500"}, q.filters[0])
}

func TestParseContentQuery_InFilterSplitsValues(t *testing.T) {
	q := ParseContentQuery(map[string]string{"contentType_in": "video,article"})

	require.Len(t, q.filters, 1)
	assert.Equal(t, "content_type", q.filters[0].column)
	assert.Equal(t, "IN", q.filters[0].op)
	assert.Equal(t, []string{"video", "article"}, q.filters[0].value)
}

func TestParseContentQuery_IgnoresUnknownFields(t *testing.T) {
	q := ParseContentQuery(map[string]string{
		"password":     "x",
		"password_gte": "x",
		"role_in":      "admin",
	})

	assert.Empty(t, q.filters)
}

func TestAtoiDefault(t *testing.T) {
	assert.Equal(t, 0, atoiDefault("", 0))
	assert.Equal(t, 42, atoiDefault("42", 0))
	assert.Equal(t, 7, atoiDefault("4x2", 7))
}
