// Package gapreports assembles the skill gap analysis: market or job
// description requirements vs the user's skills, recommendations for the
// gap, and a weekly learning roadmap.
package gapreports

import (
	"context"

	"skillgap-backend/internal/jobdesc"
	"skillgap-backend/internal/llm"
	"skillgap-backend/internal/recommend"
	"skillgap-backend/internal/roadmap"
	"skillgap-backend/internal/search"
	"skillgap-backend/internal/skills"
)

// Report is the full gap analysis payload.
type Report struct {
	CommonSkills    []string                   `json:"common_skills"`
	MissingSkills   []string                   `json:"missing_skills"`
	Recommendations []recommend.Recommendation `json:"llama_recommendations"`
	Roadmap         []roadmap.Step             `json:"roadmap"`
}

type Service struct {
	Completer llm.Completer
	Searcher  search.Searcher
}

func NewService(completer llm.Completer, searcher search.Searcher) *Service {
	return &Service{Completer: completer, Searcher: searcher}
}

// ForRole builds a gap report against the market skill list for a role.
func (s *Service) ForRole(ctx context.Context, role string, userSkills []string) Report {
	required := skills.MarketSkills(ctx, s.Completer, role)
	return s.build(ctx, required, userSkills, roadmap.RoleOptions())
}

// ForJobDescription builds a gap report against the requirements extracted
// from job description text.
func (s *Service) ForJobDescription(ctx context.Context, jdText string, userSkills []string) Report {
	required := jobdesc.Analyze(ctx, s.Completer, jdText).Skills
	return s.build(ctx, required, userSkills, roadmap.JobDescriptionOptions())
}

// build runs the shared pipeline: match, recommend (only when something is
// missing), roadmap. Every list in the report is non-nil so the JSON
// contract always carries arrays.
func (s *Service) build(ctx context.Context, required, userSkills []string, opts roadmap.Options) Report {
	matched := skills.Match(required, userSkills)

	recs := []recommend.Recommendation{}
	if len(matched.Missing) > 0 {
		recs = recommend.Recommend(ctx, s.Completer, userSkills, matched.Missing)
	}

	steps := roadmap.Build(ctx, s.Searcher, recs, opts)
	if steps == nil {
		steps = []roadmap.Step{}
	}

	return Report{
		CommonSkills:    matched.Common,
		MissingSkills:   matched.Missing,
		Recommendations: recs,
		Roadmap:         steps,
	}
}
