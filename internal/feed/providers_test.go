package feed

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPersonas = []Persona{
	{Name: "Leanne Graham", Username: "Bret", Email: "bret@example.com"},
	{Name: "Ervin Howell", Username: "Antonette", Email: "antonette@example.com"},
	{Name: "Clementine Bauch", Username: "Samantha", Email: "samantha@example.com"},
}

func TestTwitterProvider_Fetch(t *testing.T) {
	items, err := NewTwitterProvider().Fetch(context.Background(), testPersonas)
	require.NoError(t, err)
	require.Len(t, items, 15)

	for _, item := range items {
		assert.Equal(t, "twitter", item.Platform)
		assert.NotEmpty(t, item.Description)
		assert.NotEmpty(t, item.Author.Username)
		assert.Contains(t, item.Metrics, "retweets")
	}

	// Curated tech posts carry their own author identity.
	assert.Equal(t, "React Developer", items[10].Author.Name)
	assert.Equal(t, "react_developer", items[10].Author.Username)
	// Quote posts borrow a persona.
	assert.Equal(t, "Leanne Graham", items[0].Author.Name)
}

func TestTwitterProvider_Fallback(t *testing.T) {
	items := NewTwitterProvider().Fallback()
	require.Len(t, items, 5)
	for _, item := range items {
		assert.Equal(t, "twitter", item.Platform)
		assert.Contains(t, item.Description, "Twitter post")
	}
}

func TestRedditProvider_FetchWithJokes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/joke/")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"jokes":[
			{"setup":"Why did the function break up?","delivery":"Too many arguments."},
			{"joke":"A one-liner joke."}
		]}`)
	}))
	defer srv.Close()

	items, err := NewRedditProvider(srv.URL).Fetch(context.Background(), testPersonas)
	require.NoError(t, err)
	// Two fetched jokes plus the curated programming set.
	require.Len(t, items, 2+len(programmingJokes))

	assert.Equal(t, "Why did the function break up?", items[0].Title)
	assert.Equal(t, "Too many arguments.", items[0].Description)
	assert.Equal(t, "Programming Joke", items[1].Title)
	assert.Equal(t, "A one-liner joke.", items[1].Description)
	for _, item := range items {
		assert.Equal(t, "reddit", item.Platform)
		assert.Contains(t, item.Metrics, "upvotes")
	}
}

func TestRedditProvider_FetchDegradesToFacts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	items, err := NewRedditProvider(srv.URL).Fetch(context.Background(), testPersonas)
	require.NoError(t, err, "a failed joke fetch is absorbed, not surfaced")
	require.Len(t, items, len(fallbackFacts)+len(programmingJokes))
	assert.Equal(t, "Random Fact", items[0].Title)
}

func TestRedditProvider_Fallback(t *testing.T) {
	items := NewRedditProvider("http://unused.invalid").Fallback()
	require.Len(t, items, len(redditBackupPosts))
	for _, item := range items {
		assert.Equal(t, "reddit", item.Platform)
	}
}

func TestLinkedInProvider_FetchMapsArticles(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/top-headlines/category/technology/us.json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"articles":[
			{"title":"Big Launch","description":"A new platform ships.","url":"https://news.example.com/1",
			 "urlToImage":"https://img.example.com/1.jpg","author":"Jane Reporter","publishedAt":"2023-06-01T10:00:00Z"},
			{"title":"","description":"","content":"Body only.","url":"","urlToImage":"not-a-url","publishedAt":"oops"},
			{"title":"A"},{"title":"B"},{"title":"C"},{"title":"D"}
		]}`)
	}))
	defer srv.Close()

	items, err := NewLinkedInProvider(srv.URL).Fetch(context.Background(), testPersonas)
	require.NoError(t, err)
	require.Len(t, items, 5, "headline posts are capped at five")

	first := items[0]
	assert.Equal(t, "linkedin", first.Platform)
	assert.Equal(t, "Big Launch", first.Title)
	assert.Equal(t, "A new platform ships.", first.Description)
	assert.Equal(t, "https://news.example.com/1", first.ContentURL)
	assert.Equal(t, "https://img.example.com/1.jpg", first.ImageURL)
	assert.Equal(t, "Jane Reporter", first.Author.Name)
	assert.Equal(t, "2023-06-01T10:00:00Z", first.CreatedAt.Format("2006-01-02T15:04:05Z"))

	// Missing fields fall back one by one.
	second := items[1]
	assert.Equal(t, "Professional Development News #2", second.Title)
	assert.Equal(t, "Body only.", second.Description)
	assert.Equal(t, "https://www.linkedin.com/posts/example", second.ContentURL)
	assert.Contains(t, second.ImageURL, "picsum.photos")
}

func TestLinkedInProvider_FetchErrors(t *testing.T) {
	t.Run("empty article list", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"articles":[]}`)
		}))
		defer srv.Close()

		_, err := NewLinkedInProvider(srv.URL).Fetch(context.Background(), testPersonas)
		assert.Error(t, err)
	})

	t.Run("upstream failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		_, err := NewLinkedInProvider(srv.URL).Fetch(context.Background(), testPersonas)
		assert.Error(t, err)
	})
}

func TestLinkedInProvider_Fallback(t *testing.T) {
	items := NewLinkedInProvider("http://unused.invalid").Fallback()
	require.Len(t, items, len(linkedinPosts))
	for _, item := range items {
		assert.Equal(t, "linkedin", item.Platform)
		assert.NotEmpty(t, item.Title)
	}
}
