package feed

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

var twitterQuotes = []string{
	"The key to success is to focus on goals, not obstacles.",
	"Learn from yesterday, live for today, hope for tomorrow.",
	"Code is like humor. When you have to explain it, it's bad.",
	"The best error message is the one that never shows up.",
	"First, solve the problem. Then, write the code.",
	"It's not a bug – it's an undocumented feature.",
	"The only way to learn a new programming language is by writing programs in it.",
	"The most important property of a program is whether it accomplishes the intention of its user.",
	"Programming isn't about what you know; it's about what you can figure out.",
	"Good code is its own best documentation.",
}

var techTweets = []struct {
	text   string
	author string
}{
	{"Just pushed a major update to our React component library. Check it out on GitHub!", "React Developer"},
	{"The future of web development is here! WebAssembly + JavaScript is a game changer.", "Web Enthusiast"},
	{"10 VS Code extensions every developer should install today. Number 5 changed my workflow completely!", "Code Explorer"},
	{"Spent the weekend refactoring our authentication system. Reduced code by 30% while improving security!", "Security Dev"},
	{"If you're not using TypeScript in 2023, you're missing out on catching bugs before they happen.", "TypeScript Fan"},
}

// TwitterProvider synthesizes short posts from a curated set, enriched
// with persona identities. It performs no network calls of its own.
type TwitterProvider struct{}

func NewTwitterProvider() *TwitterProvider { return &TwitterProvider{} }

func (p *TwitterProvider) Platform() string { return "twitter" }

func (p *TwitterProvider) Fetch(_ context.Context, personas []Persona) ([]Item, error) {
	type post struct {
		text   string
		author string
	}
	posts := make([]post, 0, len(twitterQuotes)+len(techTweets))
	for _, q := range twitterQuotes {
		posts = append(posts, post{text: q})
	}
	for _, t := range techTweets {
		posts = append(posts, post{text: t.text, author: t.author})
	}

	now := time.Now().UnixMilli()
	items := make([]Item, 0, len(posts))
	for i, pst := range posts {
		persona := personas[i%len(personas)]
		name := pst.author
		if name == "" {
			name = persona.Name
		}
		username := persona.Username
		if pst.author != "" {
			username = strings.ReplaceAll(strings.ToLower(pst.author), " ", "_")
		}

		items = append(items, Item{
			ID:          fmt.Sprintf("twitter-%d-%d", now, i),
			Platform:    "twitter",
			Description: pst.text,
			ContentURL:  "https://twitter.com/example/status/123456789",
			ImageURL:    picsum(fmt.Sprintf("twitter%d", i), 600, 400),
			Author: Author{
				Name:     name,
				Username: username,
				ImageURL: picsum(username, 100, 100),
			},
			Metrics: map[string]int{
				"likes":    rand.Intn(100),
				"retweets": rand.Intn(50),
				"replies":  rand.Intn(20),
			},
			CreatedAt: randomPast(7 * 24 * time.Hour),
		})
	}
	return items, nil
}

func (p *TwitterProvider) Fallback() []Item {
	items := make([]Item, 0, 5)
	for i := 0; i < 5; i++ {
		items = append(items, Item{
			ID:          fmt.Sprintf("twitter-fallback-%d", i),
			Platform:    "twitter",
			Description: fmt.Sprintf("This is a simple Twitter post #%d about technology and development.", i+1),
			ContentURL:  "https://twitter.com/example/status/123456789",
			ImageURL:    picsum(fmt.Sprintf("twitterfallback%d", i), 600, 400),
			Author: Author{
				Name:     "Twitter User",
				Username: "twitteruser",
				ImageURL: picsum(fmt.Sprintf("twitteruser%d", i), 100, 100),
			},
			Metrics: map[string]int{
				"likes":    rand.Intn(100),
				"retweets": rand.Intn(50),
				"replies":  rand.Intn(20),
			},
			CreatedAt: randomPast(7 * 24 * time.Hour),
		})
	}
	return items
}
