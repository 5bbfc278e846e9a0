// Package search wraps the web-search collaborator and the domain queries
// built on top of it (courses, videos, certifications, mentor profiles).
package search

import (
	"context"
	"errors"
	"strings"
)

// Result is one ranked search hit.
type Result struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet,omitempty"`
}

// Searcher executes a query against the web-search collaborator. The
// collaborator is unreliable: callers must tolerate errors and empty
// result sets, never propagate them to the HTTP response.
type Searcher interface {
	Search(ctx context.Context, query string) ([]Result, error)
}

// ErrNotConfigured is returned by the placeholder searcher.
var ErrNotConfigured = errors.New("search client not configured")

// Placeholder is used when no search credentials are configured; every
// caller degrades to synthetic links.
type Placeholder struct{}

// Search returns ErrNotConfigured.
func (Placeholder) Search(ctx context.Context, query string) ([]Result, error) {
	_ = ctx
	_ = query
	return nil, ErrNotConfigured
}

// Certification is a search hit attributed to a known course provider.
type Certification struct {
	Title    string `json:"title"`
	Link     string `json:"link"`
	Provider string `json:"provider"`
}

// LearningPath fetches text courses for a skill.
func LearningPath(ctx context.Context, s Searcher, skill string) ([]Result, error) {
	return s.Search(ctx, "best certification courses to learn "+skill+" on coursera udemy")
}

// YouTubeVideos fetches tutorial videos for a skill, keeping only hits that
// actually point at YouTube.
func YouTubeVideos(ctx context.Context, s Searcher, skill string) ([]Result, error) {
	results, err := s.Search(ctx, "best "+skill+" tutorial for beginners site:youtube.com")
	if err != nil {
		return nil, err
	}
	videos := make([]Result, 0, len(results))
	for _, r := range results {
		if strings.Contains(r.Link, "youtube.com") || strings.Contains(r.Link, "youtu.be") {
			videos = append(videos, r)
		}
	}
	return videos, nil
}

// Certifications fetches certification courses for a skill from the
// supported providers, dropping hits from anywhere else.
func Certifications(ctx context.Context, s Searcher, skill string) ([]Certification, error) {
	results, err := s.Search(ctx, "site:udemy.com OR site:infyspringboard.onwingspan.com "+skill+" certification course")
	if err != nil {
		return nil, err
	}
	certs := make([]Certification, 0, len(results))
	for _, r := range results {
		provider := providerFor(r.Link)
		if provider == "" {
			continue
		}
		certs = append(certs, Certification{
			Title:    r.Title,
			Link:     r.Link,
			Provider: provider,
		})
	}
	return certs, nil
}

func providerFor(link string) string {
	switch {
	case strings.Contains(link, "udemy.com"):
		return "Udemy"
	case strings.Contains(link, "infyspringboard"), strings.Contains(link, "onwingspan"):
		return "Infosys Springboard"
	default:
		return ""
	}
}

var _ Searcher = Placeholder{}
