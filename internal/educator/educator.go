// Package educator analyzes course curricula against market demand so
// tutors can see which in-demand skills their material leaves out.
package educator

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"skillgap-backend/internal/llm"
	"skillgap-backend/internal/search"
	"skillgap-backend/internal/shared/telemetry"
	"skillgap-backend/internal/skills"
)

// Analysis compares a curriculum against market skills for its target role.
type Analysis struct {
	TargetRole       string   `json:"target_role"`
	CurriculumSkills []string `json:"curriculum_skills"`
	CoveredSkills    []string `json:"covered_skills"`
	MissingSkills    []string `json:"missing_skills"`
	Suggestions      []string `json:"suggestions"`
}

const extractPrompt = `You are an AI that analyzes course curricula. Given the following curriculum description, do the following:

1. **Target Role**: Name the single job role this curriculum prepares students for (e.g. "Frontend Developer").
2. **Skills**: Extract every technical skill the curriculum teaches, as a comma-separated list.

Respond strictly in the following format:

Target Role: <role name>
Skills: <comma-separated list of skills>

Here is the curriculum description:
%q`

type Service struct {
	Completer llm.Completer
	Searcher  search.Searcher
}

func NewService(completer llm.Completer, searcher search.Searcher) *Service {
	return &Service{Completer: completer, Searcher: searcher}
}

// Analyze extracts the curriculum's skills and target role, compares them
// with the market skill list for that role, and phrases the gaps as
// improvement suggestions.
func (s *Service) Analyze(ctx context.Context, description string) Analysis {
	role, taught := s.extract(ctx, description)

	market := skills.MarketSkills(ctx, s.Completer, role)
	matched := skills.Match(market, taught)

	suggestions := make([]string, 0, len(matched.Missing))
	for _, skill := range matched.Missing {
		suggestions = append(suggestions,
			fmt.Sprintf("Add %s to the curriculum: it is in demand for %s roles but not covered.", skill, role))
	}

	return Analysis{
		TargetRole:       role,
		CurriculumSkills: taught,
		CoveredSkills:    matched.Common,
		MissingSkills:    matched.Missing,
		Suggestions:      suggestions,
	}
}

// extract asks the model for the curriculum's role and skill list. On
// failure the description itself is keyword-scanned so the comparison can
// still run against the default market table.
func (s *Service) extract(ctx context.Context, description string) (role string, taught []string) {
	role = "Software Engineer"
	taught = []string{}

	reply, err := s.Completer.Complete(ctx, fmt.Sprintf(extractPrompt, description))
	if err != nil {
		telemetry.Error("educator.extract_failed", map[string]any{"error": err.Error()})
		return role, fallbackSkills(description)
	}

	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		lower := strings.ToLower(line)
		switch {
		case strings.HasPrefix(lower, "target role:"):
			if v := strings.TrimSpace(line[len("target role:"):]); v != "" {
				role = v
			}
		case strings.HasPrefix(lower, "skills:"):
			for _, part := range strings.Split(line[len("skills:"):], ",") {
				if skill := strings.TrimSpace(part); skill != "" {
					taught = append(taught, skill)
				}
			}
		}
	}
	if len(taught) == 0 {
		taught = fallbackSkills(description)
	}
	return role, taught
}

// fallbackSkills tokenizes the description and keeps tokens that look like
// skill names against the default market vocabulary.
func fallbackSkills(description string) []string {
	known := map[string]string{}
	for _, list := range [][]string{
		skills.FallbackMarketSkills("frontend"),
		skills.FallbackMarketSkills("backend"),
		skills.FallbackMarketSkills("data"),
		skills.FallbackMarketSkills("devops"),
		skills.FallbackMarketSkills(""),
	} {
		for _, s := range list {
			known[skills.Normalize(s)] = s
		}
	}

	found := []string{}
	seen := map[string]struct{}{}
	for _, token := range strings.Fields(description) {
		norm := skills.Normalize(strings.Trim(token, ",.;:()"))
		if original, ok := known[norm]; ok {
			if _, dup := seen[norm]; !dup {
				seen[norm] = struct{}{}
				found = append(found, original)
			}
		}
	}
	return found
}

// CurriculumPlan returns curated learning resources for a language or
// topic, for tutors building out new material. A failing or empty search
// degrades to synthetic search links, never to an error.
func (s *Service) CurriculumPlan(ctx context.Context, language string) []search.Result {
	resources, err := search.LearningPath(ctx, s.Searcher, language)
	if err != nil {
		telemetry.Error("educator.plan_fetch_failed", map[string]any{
			"language": language,
			"error":    err.Error(),
		})
		resources = nil
	}
	if len(resources) == 0 {
		resources = syntheticPlan(language)
	}
	return resources
}

func syntheticPlan(language string) []search.Result {
	return []search.Result{
		{
			Title: "Search " + language + " courses on Udemy",
			Link:  "https://www.udemy.com/courses/search/?q=" + url.QueryEscape(language),
		},
		{
			Title: "Watch " + language + " Tutorials",
			Link:  "https://www.youtube.com/results?search_query=" + url.QueryEscape(language+" tutorial"),
		},
	}
}
