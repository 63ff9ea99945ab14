package feed

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProvider returns a fixed item set, or an error when failing is set.
type stubProvider struct {
	platform string
	items    []Item
	fallback []Item
	failing  bool
}

func (s *stubProvider) Platform() string { return s.platform }

func (s *stubProvider) Fetch(ctx context.Context, personas []Persona) ([]Item, error) {
	if s.failing {
		return nil, fmt.Errorf("%s upstream down", s.platform)
	}
	return s.items, nil
}

func (s *stubProvider) Fallback() []Item { return s.fallback }

func stubItems(platform string, n int, newest time.Time) []Item {
	items := make([]Item, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, Item{
			ID:        fmt.Sprintf("%s-%d", platform, i),
			Platform:  platform,
			Title:     fmt.Sprintf("%s post %d", platform, i),
			CreatedAt: newest.Add(-time.Duration(i) * time.Hour),
		})
	}
	return items
}

func personaServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[{"name":"Leanne Graham","username":"Bret","email":"bret@example.com"},
			{"name":"Ervin Howell","username":"Antonette","email":"antonette@example.com"}]`)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestAggregator_MergesAndSortsByRecency(t *testing.T) {
	now := time.Now()
	agg := NewAggregator(NewEnricher(personaServer(t).URL), time.Second,
		&stubProvider{platform: "twitter", items: stubItems("twitter", 3, now)},
		&stubProvider{platform: "reddit", items: stubItems("reddit", 3, now.Add(-30*time.Minute))},
	)

	page := agg.Feed(context.Background(), nil, 1, 20)

	require.Len(t, page.Items, 6)
	assert.Equal(t, 6, page.Total)
	assert.False(t, page.Degraded)
	for i := 1; i < len(page.Items); i++ {
		assert.False(t, page.Items[i].CreatedAt.After(page.Items[i-1].CreatedAt),
			"items must be in descending recency order")
	}
	// Sources interleave: twitter-0, reddit-0, twitter-1, ...
	assert.Equal(t, "twitter-0", page.Items[0].ID)
	assert.Equal(t, "reddit-0", page.Items[1].ID)
}

func TestAggregator_Paginates(t *testing.T) {
	agg := NewAggregator(NewEnricher(personaServer(t).URL), time.Second,
		&stubProvider{platform: "twitter", items: stubItems("twitter", 12, time.Now())},
	)

	page := agg.Feed(context.Background(), []string{"twitter"}, 2, 5)

	require.Len(t, page.Items, 5)
	assert.Equal(t, 12, page.Total)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 5, page.Limit)
	assert.Equal(t, 3, page.TotalPages)
	// Second page starts after the five newest.
	assert.Equal(t, "twitter-5", page.Items[0].ID)

	last := agg.Feed(context.Background(), []string{"twitter"}, 3, 5)
	assert.Len(t, last.Items, 2)

	beyond := agg.Feed(context.Background(), []string{"twitter"}, 9, 5)
	assert.Empty(t, beyond.Items)
	assert.Equal(t, 12, beyond.Total)
}

func TestAggregator_NormalizesPageAndLimit(t *testing.T) {
	agg := NewAggregator(NewEnricher(personaServer(t).URL), time.Second,
		&stubProvider{platform: "twitter", items: stubItems("twitter", 3, time.Now())},
	)

	page := agg.Feed(context.Background(), []string{"twitter"}, 0, -1)

	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 20, page.Limit)
	assert.Equal(t, 1, page.TotalPages)
}

func TestAggregator_ProviderFailureUsesFallback(t *testing.T) {
	now := time.Now()
	agg := NewAggregator(NewEnricher(personaServer(t).URL), time.Second,
		&stubProvider{platform: "twitter", items: stubItems("twitter", 2, now)},
		&stubProvider{
			platform: "reddit",
			failing:  true,
			fallback: stubItems("reddit-fallback", 2, now),
		},
	)

	page := agg.Feed(context.Background(), nil, 1, 20)

	require.Len(t, page.Items, 4)
	assert.False(t, page.Degraded, "a single failed source must not degrade the feed")

	var fallbackSeen int
	for _, item := range page.Items {
		if item.Platform == "reddit-fallback" {
			fallbackSeen++
		}
	}
	assert.Equal(t, 2, fallbackSeen)
}

func TestAggregator_EnrichmentFailureServesStaticFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	now := time.Now()
	agg := NewAggregator(NewEnricher(srv.URL), time.Second,
		&stubProvider{platform: "twitter", items: stubItems("twitter", 5, now), fallback: stubItems("twitter-static", 2, now)},
		&stubProvider{platform: "reddit", items: stubItems("reddit", 5, now), fallback: stubItems("reddit-static", 3, now)},
	)

	page := agg.Feed(context.Background(), nil, 1, 20)

	assert.True(t, page.Degraded)
	require.Len(t, page.Items, 5)
	for _, item := range page.Items {
		assert.Contains(t, item.Platform, "-static")
	}
}

func TestAggregator_IgnoresUnknownSources(t *testing.T) {
	agg := NewAggregator(NewEnricher(personaServer(t).URL), time.Second,
		&stubProvider{platform: "twitter", items: stubItems("twitter", 2, time.Now())},
	)

	page := agg.Feed(context.Background(), []string{"twitter", "myspace"}, 1, 20)

	assert.Len(t, page.Items, 2)
	assert.Equal(t, 2, page.Total)
}

func TestEnricher_Personas(t *testing.T) {
	t.Run("returns users", func(t *testing.T) {
		personas, err := NewEnricher(personaServer(t).URL).Personas(context.Background())
		require.NoError(t, err)
		require.Len(t, personas, 2)
		assert.Equal(t, "Bret", personas[0].Username)
	})

	t.Run("errors on empty user list", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `[]`)
		}))
		defer srv.Close()

		_, err := NewEnricher(srv.URL).Personas(context.Background())
		assert.Error(t, err)
	})

	t.Run("errors on upstream failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		_, err := NewEnricher(srv.URL).Personas(context.Background())
		assert.Error(t, err)
	})
}
