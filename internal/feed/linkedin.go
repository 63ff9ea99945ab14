package feed

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"time"
)

var linkedinPosts = []struct{ title, body string }{
	{"10 Essential Skills Every Developer Needs in 2023", "In today's fast-evolving tech landscape, staying relevant requires more than just coding skills. Here are 10 essential skills every developer should master to stay competitive."},
	{"How We Improved Application Performance by 300%", "Our team recently completed a major optimization project that resulted in dramatic performance improvements. Here's how we approached the problem and what we learned."},
	{"The Future of Remote Work in Tech Companies", "As companies adapt to hybrid work models, the technology sector is leading innovation in remote collaboration tools and practices. Here's what to expect in the coming years."},
	{"Building Scalable Microservices Architecture", "Learn how we implemented a scalable microservices architecture that handles millions of requests daily while maintaining high availability and fault tolerance."},
	{"Career Transition: From Developer to Technical Leader", "Making the leap from individual contributor to technical leader requires developing a different skill set. Here's my journey and the lessons I learned along the way."},
}

type newsAPIResponse struct {
	Articles []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Content     string `json:"content"`
		URL         string `json:"url"`
		URLToImage  string `json:"urlToImage"`
		Author      string `json:"author"`
		PublishedAt string `json:"publishedAt"`
	} `json:"articles"`
}

// LinkedInProvider maps technology news headlines into professional-feed
// posts. A failed or empty headline fetch is reported as an error so the
// aggregator falls back to the curated post set.
type LinkedInProvider struct {
	newsBaseURL string
	client      *http.Client
}

func NewLinkedInProvider(newsBaseURL string) *LinkedInProvider {
	return &LinkedInProvider{
		newsBaseURL: newsBaseURL,
		client:      &http.Client{Timeout: 5 * time.Second},
	}
}

func (p *LinkedInProvider) Platform() string { return "linkedin" }

func (p *LinkedInProvider) Fetch(ctx context.Context, personas []Persona) ([]Item, error) {
	var news newsAPIResponse
	url := p.newsBaseURL + "/top-headlines/category/technology/us.json"
	if err := getJSON(ctx, p.client, url, &news); err != nil {
		return nil, err
	}
	if len(news.Articles) == 0 {
		return nil, fmt.Errorf("news source returned no articles")
	}

	articles := news.Articles
	if len(articles) > 5 {
		articles = articles[:5]
	}

	items := make([]Item, 0, len(articles))
	for i, article := range articles {
		persona := personas[(i+2)%len(personas)]

		title := article.Title
		if title == "" {
			title = fmt.Sprintf("Professional Development News #%d", i+1)
		}
		description := article.Description
		if description == "" {
			description = article.Content
		}
		if description == "" {
			description = "This is a news article shared on LinkedIn."
		}
		contentURL := article.URL
		if contentURL == "" {
			contentURL = "https://www.linkedin.com/posts/example"
		}
		imageURL := article.URLToImage
		if !strings.HasPrefix(imageURL, "http") {
			imageURL = picsum(fmt.Sprintf("linkedin%d", i), 600, 400)
		}
		name := article.Author
		if name == "" {
			name = persona.Name
		}
		createdAt := randomPast(5 * 24 * time.Hour)
		if t, err := time.Parse(time.RFC3339, article.PublishedAt); err == nil {
			createdAt = t
		}

		items = append(items, Item{
			ID:          fmt.Sprintf("linkedin-news-%d", i),
			Platform:    "linkedin",
			Title:       title,
			Description: description,
			ContentURL:  contentURL,
			ImageURL:    imageURL,
			Author: Author{
				Name:     name,
				Username: strings.Split(persona.Email, "@")[0],
				ImageURL: picsum(persona.Username, 100, 100),
			},
			Metrics: map[string]int{
				"likes":    rand.Intn(100),
				"comments": rand.Intn(30),
			},
			CreatedAt: createdAt,
		})
	}
	return items, nil
}

func (p *LinkedInProvider) Fallback() []Item {
	items := make([]Item, 0, len(linkedinPosts))
	for i, post := range linkedinPosts {
		items = append(items, Item{
			ID:          fmt.Sprintf("linkedin-%d", i),
			Platform:    "linkedin",
			Title:       post.title,
			Description: post.body,
			ContentURL:  "https://www.linkedin.com/posts/example",
			ImageURL:    picsum(fmt.Sprintf("linkedin%d", i), 600, 400),
			Author: Author{
				Name:     "LinkedIn Professional",
				Username: "linkedin_user",
				ImageURL: picsum("linkedin_user", 100, 100),
			},
			Metrics: map[string]int{
				"likes":    rand.Intn(100),
				"comments": rand.Intn(30),
			},
			CreatedAt: randomPast(5 * 24 * time.Hour),
		})
	}
	return items
}
