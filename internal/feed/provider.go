package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"time"
)

// Author identifies who produced a feed item on its source platform.
type Author struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	ImageURL string `json:"imageUrl"`
}

// Item is the normalized shape every source is mapped into.
type Item struct {
	ID          string         `json:"id"`
	Platform    string         `json:"platform"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	ContentURL  string         `json:"contentUrl"`
	ImageURL    string         `json:"imageUrl"`
	Author      Author         `json:"author"`
	Metrics     map[string]int `json:"metrics"`
	CreatedAt   time.Time      `json:"createdAt"`
}

// Provider produces normalized items for one source platform. Fetch may
// reach external services; a failure is reported as an error and the
// aggregator substitutes Fallback, so a single source outage never
// surfaces to the caller.
type Provider interface {
	Platform() string
	Fetch(ctx context.Context, personas []Persona) ([]Item, error)
	Fallback() []Item
}

func getJSON(ctx context.Context, client *http.Client, url string, v interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}
	return json.NewDecoder(resp.Body).Decode(v)
}

// picsum returns a seeded placeholder image URL.
func picsum(seed string, w, h int) string {
	return fmt.Sprintf("https://picsum.photos/seed/%s/%d/%d", seed, w, h)
}

// randomPast returns a timestamp uniformly within the given window before now.
func randomPast(window time.Duration) time.Time {
	return time.Now().Add(-time.Duration(rand.Int63n(int64(window))))
}
