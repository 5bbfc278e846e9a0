// Package mentors finds public mentor profiles for a role via web search.
package mentors

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"skillgap-backend/internal/search"
	"skillgap-backend/internal/shared/telemetry"
)

// Mentor is one suggested contact.
type Mentor struct {
	Name       string   `json:"name"`
	Title      string   `json:"title"`
	Company    string   `json:"company"`
	Topics     []string `json:"topics"`
	Rating     string   `json:"rating"`
	Status     string   `json:"status"`
	Cost       string   `json:"cost"`
	ProfileURL string   `json:"profile_url"`
}

// Find searches public profiles for likely mentors. The list always ends
// with a direct people-search entry, which is also the sole result when the
// search collaborator fails.
func Find(ctx context.Context, searcher search.Searcher, role string) []Mentor {
	query := fmt.Sprintf("site:linkedin.com/in/ %s (Mentor OR Speaker OR Advocate OR Instructor)", role)
	results, err := searcher.Search(ctx, query)
	if err != nil {
		telemetry.Error("mentors.search_failed", map[string]any{
			"role":  role,
			"error": err.Error(),
		})
		return []Mentor{directSearchEntry(role, "Find Experts", []string{"Direct Search"})}
	}

	mentors := make([]Mentor, 0, len(results)+1)
	for _, res := range results {
		name := profileName(res.Title)
		if name == "" {
			continue
		}
		mentors = append(mentors, Mentor{
			Name:       name,
			Title:      fmt.Sprintf("Senior %s Expert", role),
			Company:    "LinkedIn Member",
			Topics:     []string{"Mentorship", "Career Growth", role},
			Rating:     ratingFor(name),
			Status:     "Online",
			Cost:       "Free/Message",
			ProfileURL: res.Link,
		})
	}
	mentors = append(mentors, directSearchEntry(role, "Find More Experts", []string{"Advanced Search", "Direct Connection"}))
	return mentors
}

// profileName strips the role and site suffixes a profile search result
// title carries ("Jane Doe - Staff Engineer | LinkedIn").
func profileName(title string) string {
	name := title
	if idx := strings.Index(name, "-"); idx >= 0 {
		name = name[:idx]
	}
	if idx := strings.Index(name, "|"); idx >= 0 {
		name = name[:idx]
	}
	return strings.TrimSpace(name)
}

// ratingFor derives a stable display rating from the name so the listing
// does not change between requests.
func ratingFor(name string) string {
	return fmt.Sprintf("%.1f", 4.5+float64(len(name)%5)/10)
}

func directSearchEntry(role, name string, topics []string) Mentor {
	return Mentor{
		Name:       name,
		Title:      fmt.Sprintf("Search '%s' Network", role),
		Company:    "LinkedIn Global",
		Topics:     topics,
		Rating:     "5.0",
		Status:     "Online",
		Cost:       "Free",
		ProfileURL: "https://www.linkedin.com/search/results/people/?keywords=" + url.QueryEscape(role),
	}
}
