package feed

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"time"
)

var fallbackFacts = []string{
	"A group of flamingos is called a 'flamboyance'.",
	"The world's oldest known living tree is over 5,000 years old.",
	"Honey never spoils. Archaeologists have found pots of honey in ancient Egyptian tombs that are over 3,000 years old and still perfectly good to eat.",
	"A day on Venus is longer than a year on Venus. It takes 243 Earth days to rotate once on its axis (a day), but only 225 Earth days to go around the sun (a year).",
	"Octopuses have three hearts, nine brains, and blue blood.",
}

var programmingJokes = []struct{ title, body string }{
	{"Why do programmers prefer dark mode?", "Because light attracts bugs!"},
	{"Why do Java developers wear glasses?", "Because they can't C#!"},
	{"How many programmers does it take to change a light bulb?", "None, that's a hardware problem."},
	{"Why do programmers always mix up Halloween and Christmas?", "Because Oct 31 == Dec 25"},
	{"What's the object-oriented way to become wealthy?", "Inheritance."},
}

var redditBackupPosts = []struct{ title, body string }{
	{"Discovered this gem while refactoring legacy code", "// This code works perfectly fine but I have no idea why or how. Do NOT modify it."},
	{"When you're debugging at 3AM and finally fix the issue", "That feeling when you find the missing semicolon after 5 hours of debugging."},
	{"Senior developer reviewing my PR", "Why did you do it this way? This could be much simpler."},
	{"My code in production vs during development", "Everything was working perfectly until the users got involved."},
	{"Naming variables is hard", "temp, temp1, temp2, finalTemp, reallyFinalTemp, actuallyFinalTemp, iPromiseThisIsTheLastTemp"},
	{"Documentation be like", "The function is self-explanatory. Figure it out yourself."},
	{"The three states of a programmer", "1. It doesn't work and I don't know why. 2. It works and I don't know why. 3. It works exactly as expected (never happens)."},
}

type jokeAPIResponse struct {
	Jokes []struct {
		Setup    string `json:"setup"`
		Delivery string `json:"delivery"`
		Joke     string `json:"joke"`
	} `json:"jokes"`
}

// RedditProvider mixes jokes fetched from JokeAPI with curated facts and
// programming humor. The upstream call carries a short timeout; when it
// fails the curated fact set stands in, so Fetch itself degrades softly
// and only errors when no content at all could be produced.
type RedditProvider struct {
	jokesBaseURL string
	client       *http.Client
}

func NewRedditProvider(jokesBaseURL string) *RedditProvider {
	return &RedditProvider{
		jokesBaseURL: jokesBaseURL,
		client:       &http.Client{Timeout: 3 * time.Second},
	}
}

func (p *RedditProvider) Platform() string { return "reddit" }

func (p *RedditProvider) Fetch(ctx context.Context, personas []Persona) ([]Item, error) {
	type entry struct {
		id, title, body, subreddit string
	}
	var entries []entry

	var jokes jokeAPIResponse
	url := p.jokesBaseURL + "/joke/Programming,Miscellaneous?amount=5&type=twopart&lang=en"
	if err := getJSON(ctx, p.client, url, &jokes); err == nil && len(jokes.Jokes) > 0 {
		for i, j := range jokes.Jokes {
			title := j.Setup
			if title == "" {
				title = "Programming Joke"
			}
			body := j.Delivery
			if body == "" {
				body = j.Joke
			}
			entries = append(entries, entry{
				id:        fmt.Sprintf("reddit-joke-%d", i),
				title:     title,
				body:      body,
				subreddit: "r/ProgrammerHumor",
			})
		}
	} else {
		for i, fact := range fallbackFacts {
			entries = append(entries, entry{
				id:        fmt.Sprintf("reddit-fact-fallback-%d", i),
				title:     "Random Fact",
				body:      fact,
				subreddit: "r/todayilearned",
			})
		}
	}

	for i, j := range programmingJokes {
		entries = append(entries, entry{
			id:        fmt.Sprintf("reddit-prog-%d", i),
			title:     j.title,
			body:      j.body,
			subreddit: "r/ProgrammerHumor",
		})
	}

	items := make([]Item, 0, len(entries))
	for i, e := range entries {
		persona := personas[(i+3)%len(personas)]
		items = append(items, Item{
			ID:          e.id,
			Platform:    "reddit",
			Title:       e.title,
			Description: e.body,
			ContentURL:  fmt.Sprintf("https://reddit.com/%s/comments/example", e.subreddit),
			ImageURL:    picsum(fmt.Sprintf("reddit%d", i), 600, 400),
			Author: Author{
				Name:     persona.Username,
				Username: persona.Username,
				ImageURL: picsum(persona.Username, 100, 100),
			},
			Metrics: map[string]int{
				"upvotes":  rand.Intn(5000),
				"comments": rand.Intn(100),
			},
			CreatedAt: randomPast(14 * 24 * time.Hour),
		})
	}
	return items, nil
}

func (p *RedditProvider) Fallback() []Item {
	items := make([]Item, 0, len(redditBackupPosts))
	for i, post := range redditBackupPosts {
		username := fmt.Sprintf("redditor%d", i)
		items = append(items, Item{
			ID:          fmt.Sprintf("reddit-fallback-%d", i),
			Platform:    "reddit",
			Title:       post.title,
			Description: post.body,
			ContentURL:  "https://reddit.com/r/programming/comments/example",
			ImageURL:    picsum(fmt.Sprintf("redditfallback%d", i), 600, 400),
			Author: Author{
				Name:     username,
				Username: username,
				ImageURL: picsum(username, 100, 100),
			},
			Metrics: map[string]int{
				"upvotes":  rand.Intn(5000),
				"comments": rand.Intn(100),
			},
			CreatedAt: randomPast(14 * 24 * time.Hour),
		})
	}
	return items
}
