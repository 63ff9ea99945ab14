package feed

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Persona is an author identity pulled from the shared enrichment source
// (JSONPlaceholder users) and spread across mock feed items.
type Persona struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Enricher fetches personas from the shared user data source. Its failure
// is the only condition that degrades the whole feed response.
type Enricher struct {
	baseURL string
	client  *http.Client
}

func NewEnricher(baseURL string) *Enricher {
	return &Enricher{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (e *Enricher) Personas(ctx context.Context) ([]Persona, error) {
	var personas []Persona
	if err := getJSON(ctx, e.client, e.baseURL+"/users", &personas); err != nil {
		return nil, fmt.Errorf("fetch personas: %w", err)
	}
	if len(personas) == 0 {
		return nil, fmt.Errorf("enrichment source returned no users")
	}
	return personas, nil
}
