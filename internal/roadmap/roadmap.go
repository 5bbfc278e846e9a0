// Package roadmap assembles weekly learning plans for recommended skills.
// Resource lookups are best-effort: a failing search collaborator degrades
// each step to synthetic search links, never to a missing step.
package roadmap

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/sync/errgroup"

	"skillgap-backend/internal/recommend"
	"skillgap-backend/internal/search"
	"skillgap-backend/internal/shared/telemetry"
)

// Resource types used in roadmap steps.
const (
	TypeCertification = "Certification"
	TypeCourse        = "Course"
	TypeVideo         = "Video"
	TypeSearch        = "Search"
)

// ResourceItem is one actionable link inside a roadmap step.
type ResourceItem struct {
	Title    string `json:"title"`
	Type     string `json:"type"`
	URL      string `json:"url"`
	Provider string `json:"provider,omitempty"`
}

// Step is one weekly unit of the learning plan.
type Step struct {
	Week           string         `json:"week"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	Resources      []ResourceItem `json:"resources"`
	Certifications []ResourceItem `json:"certifications,omitempty"`
}

// Options selects the step layout for the two report variants.
type Options struct {
	// SeparateCertifications moves certifications out of Resources into
	// their own list, padded with generic provider links when the search
	// collaborator returns nothing. Used by job-description reports.
	SeparateCertifications bool
	// DescriptionFormat is a Sprintf template taking the skill name.
	DescriptionFormat string
}

// RoleOptions is the layout for role-driven gap reports.
func RoleOptions() Options {
	return Options{
		DescriptionFormat: "Comprehensive resources to build proficiency in %s.",
	}
}

// JobDescriptionOptions is the layout for job-description-driven reports.
func JobDescriptionOptions() Options {
	return Options{
		SeparateCertifications: true,
		DescriptionFormat:      "Bridge the gap for your target role by mastering %s.",
	}
}

// Build produces one step per recommendation, labeled WEEK 01, WEEK 02, ...
// The three per-skill resource fetches are independent and run concurrently;
// any of them failing only empties its own category.
func Build(ctx context.Context, searcher search.Searcher, recs []recommend.Recommendation, opts Options) []Step {
	if opts.DescriptionFormat == "" {
		opts.DescriptionFormat = RoleOptions().DescriptionFormat
	}
	steps := make([]Step, 0, len(recs))
	for _, rec := range recs {
		skill := strings.TrimSpace(rec.Skill)
		if skill == "" {
			continue
		}
		steps = append(steps, buildStep(ctx, searcher, skill, len(steps)+1, opts))
	}
	return steps
}

func buildStep(ctx context.Context, searcher search.Searcher, skill string, index int, opts Options) Step {
	certs, courses, videos := fetchResources(ctx, searcher, skill)

	step := Step{
		Week:        fmt.Sprintf("WEEK %02d", index),
		Title:       "Master " + skill,
		Description: fmt.Sprintf(opts.DescriptionFormat, skill),
	}

	if opts.SeparateCertifications {
		step.Certifications = certificationList(skill, certs, 3)
	} else {
		for _, cert := range firstCerts(certs, 2) {
			step.Resources = append(step.Resources, cert)
		}
	}

	for _, res := range firstN(courses, 2) {
		step.Resources = append(step.Resources, ResourceItem{
			Title: orDefault(res.Title, "Learning Resource"),
			Type:  TypeCourse,
			URL:   orDefault(res.Link, "#"),
		})
	}
	for _, res := range firstN(videos, 2) {
		step.Resources = append(step.Resources, ResourceItem{
			Title: orDefault(res.Title, skill+" Tutorial"),
			Type:  TypeVideo,
			URL:   orDefault(res.Link, "#"),
		})
	}

	if !hasType(step.Resources, TypeVideo) {
		step.Resources = append(step.Resources, ResourceItem{
			Title: "Watch " + skill + " Tutorials",
			Type:  TypeVideo,
			URL:   "https://www.youtube.com/results?search_query=" + url.QueryEscape(skill+" tutorial"),
		})
	}
	if len(step.Resources) == 0 {
		step.Resources = append(step.Resources, ResourceItem{
			Title: skill + " Tutorials",
			Type:  TypeSearch,
			URL:   "https://www.google.com/search?q=" + url.QueryEscape("best free course learn "+skill),
		})
	}

	return step
}

// fetchResources runs the three category lookups concurrently. Each failure
// is logged and leaves that category empty; the group never returns an error.
func fetchResources(ctx context.Context, searcher search.Searcher, skill string) (certs []search.Certification, courses, videos []search.Result) {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		found, err := search.Certifications(gctx, searcher, skill)
		if err != nil {
			logFetchFailure("certifications", skill, err)
			return nil
		}
		certs = found
		return nil
	})
	g.Go(func() error {
		found, err := search.LearningPath(gctx, searcher, skill)
		if err != nil {
			logFetchFailure("courses", skill, err)
			return nil
		}
		courses = found
		return nil
	})
	g.Go(func() error {
		found, err := search.YouTubeVideos(gctx, searcher, skill)
		if err != nil {
			logFetchFailure("videos", skill, err)
			return nil
		}
		videos = found
		return nil
	})

	_ = g.Wait()
	return certs, courses, videos
}

func logFetchFailure(category, skill string, err error) {
	telemetry.Error("roadmap.fetch_failed", map[string]any{
		"category": category,
		"skill":    skill,
		"error":    err.Error(),
	})
}

func certificationList(skill string, certs []search.Certification, limit int) []ResourceItem {
	if len(certs) == 0 {
		return []ResourceItem{
			{
				Title:    "Master " + skill + " on Udemy",
				Type:     TypeCertification,
				Provider: "Udemy",
				URL:      "https://www.udemy.com/courses/search/?q=" + url.QueryEscape(skill),
			},
			{
				Title:    "Log in & Search " + skill + " on Infosys Springboard",
				Type:     TypeCertification,
				Provider: "Infosys Springboard",
				URL:      "https://infyspringboard.onwingspan.com/",
			},
		}
	}
	return firstCerts(certs, limit)
}

func firstCerts(certs []search.Certification, limit int) []ResourceItem {
	if len(certs) > limit {
		certs = certs[:limit]
	}
	items := make([]ResourceItem, 0, len(certs))
	for _, cert := range certs {
		items = append(items, ResourceItem{
			Title:    orDefault(cert.Title, "Certification"),
			Type:     TypeCertification,
			Provider: orDefault(cert.Provider, "External"),
			URL:      orDefault(cert.Link, "#"),
		})
	}
	return items
}

func firstN(results []search.Result, limit int) []search.Result {
	if len(results) > limit {
		return results[:limit]
	}
	return results
}

func hasType(items []ResourceItem, typ string) bool {
	for _, item := range items {
		if item.Type == typ {
			return true
		}
	}
	return false
}

func orDefault(val, def string) string {
	if strings.TrimSpace(val) == "" {
		return def
	}
	return val
}
