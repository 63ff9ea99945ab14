package feed

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"
)

// DefaultSources lists every external platform the aggregator knows.
var DefaultSources = []string{"twitter", "reddit", "linkedin"}

// Page is one window of the merged, recency-sorted feed. Total counts the
// pre-pagination result set.
type Page struct {
	Items      []Item
	Total      int
	Page       int
	Limit      int
	TotalPages int
	Degraded   bool
}

// Aggregator recomputes the unified feed on every call: it resolves shared
// personas, fans out to one provider per requested source, swallows
// individual provider failures behind their fallback sets, then merges,
// sorts by recency and paginates.
type Aggregator struct {
	providers map[string]Provider
	enricher  *Enricher
	timeout   time.Duration
}

func NewAggregator(enricher *Enricher, timeout time.Duration, providers ...Provider) *Aggregator {
	byPlatform := make(map[string]Provider, len(providers))
	for _, p := range providers {
		byPlatform[p.Platform()] = p
	}
	return &Aggregator{providers: byPlatform, enricher: enricher, timeout: timeout}
}

func (a *Aggregator) Feed(ctx context.Context, sources []string, page, limit int) Page {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if len(sources) == 0 {
		sources = DefaultSources
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	results, degraded := a.collect(ctx, sources)

	sort.Slice(results, func(i, j int) bool {
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})

	total := len(results)
	offset := (page - 1) * limit
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	return Page{
		Items:      results[offset:end],
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: (total + limit - 1) / limit,
		Degraded:   degraded,
	}
}

func (a *Aggregator) collect(ctx context.Context, sources []string) ([]Item, bool) {
	personas, err := a.enricher.Personas(ctx)
	if err != nil {
		// Whole-feed degradation: the shared enrichment source is down, so
		// every requested source gets its static fallback set.
		slog.Warn("feed enrichment unavailable, serving static fallback", "error", err)
		var results []Item
		for _, src := range sources {
			if p, ok := a.providers[src]; ok {
				results = append(results, p.Fallback()...)
			}
		}
		return results, true
	}

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results []Item
	)
	for _, src := range sources {
		p, ok := a.providers[src]
		if !ok {
			continue
		}
		wg.Add(1)
		go func(p Provider) {
			defer wg.Done()
			items, err := p.Fetch(ctx, personas)
			if err != nil {
				slog.Warn("feed provider failed, using fallback", "platform", p.Platform(), "error", err)
				items = p.Fallback()
			}
			mu.Lock()
			results = append(results, items...)
			mu.Unlock()
		}(p)
	}
	wg.Wait()
	return results, false
}
