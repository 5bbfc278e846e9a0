// Package recommend turns the completion collaborator's free-text reply
// into a ranked skill-recommendation list, with a deterministic fallback
// whenever the reply is missing or unusable.
package recommend

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"skillgap-backend/internal/llm"
	"skillgap-backend/internal/shared/telemetry"
)

// Recommendation pairs a skill with the model's estimated impact of
// learning it, formatted as a decimal string in [0,1].
type Recommendation struct {
	Skill       string `json:"skill"`
	Probability string `json:"probability"`
}

const maxRecommendations = 5

const promptTemplate = `You are an expert career coach AI.
User Skills: %s
Missing Market Skills: %s

Task: Recommend exactly 3 to 5 critical technical skills the user MUST learn to bridge the gap for this specific role.
- Ignore generic soft skills (e.g. Communication, Leadership).
- Focus on high-impact technical skills (e.g. React, Docker, PyTorch, AWS).
- Assign a probability (0.0 to 1.0) representing the impact of learning this skill on employability.

Output Format (Strictly one per line):
Skill: <Skill Name>, Probability: <0.XX>`

// Recommend asks the completion collaborator which of the missing skills to
// prioritize. Collaborator errors and unparsable replies never propagate:
// the result degrades to a deterministic ladder built from missingSkills.
// The result is capped at 5 entries, sorted by descending probability.
func Recommend(ctx context.Context, completer llm.Completer, userSkills, missingSkills []string) []Recommendation {
	if len(missingSkills) == 0 {
		return []Recommendation{}
	}

	recs := fromCompletion(ctx, completer, userSkills, missingSkills)
	if len(recs) == 0 {
		recs = Fallback(missingSkills)
	}
	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}

// Fallback synthesizes recommendations straight from the missing-skill list
// with a strictly decreasing probability ladder: 0.90, 0.85, 0.80, ...
func Fallback(missingSkills []string) []Recommendation {
	n := len(missingSkills)
	if n > maxRecommendations {
		n = maxRecommendations
	}
	recs := make([]Recommendation, 0, n)
	for i := 0; i < n; i++ {
		recs = append(recs, Recommendation{
			Skill:       missingSkills[i],
			Probability: fmt.Sprintf("%.2f", 0.90-0.05*float64(i)),
		})
	}
	return recs
}

func fromCompletion(ctx context.Context, completer llm.Completer, userSkills, missingSkills []string) []Recommendation {
	if completer == nil {
		return nil
	}
	prompt := fmt.Sprintf(promptTemplate, strings.Join(userSkills, ", "), strings.Join(missingSkills, ", "))
	reply, err := completer.Complete(ctx, prompt)
	if err != nil {
		telemetry.Error("recommend.completion_failed", map[string]any{"error": err.Error()})
		return nil
	}

	recs := ParseReply(reply)
	sortByProbability(recs)
	return recs
}

// ParseReply extracts recommendations from a free-text reply, one per line
// in the form "Skill: <name>, Probability: <0.XX>". Lines that do not carry
// both markers are silently skipped; a reply with no usable line yields nil.
func ParseReply(reply string) []Recommendation {
	var recs []Recommendation
	for _, line := range strings.Split(reply, "\n") {
		if !strings.Contains(line, "Skill:") || !strings.Contains(line, "Probability:") {
			continue
		}
		rest := line[strings.Index(line, "Skill:")+len("Skill:"):]
		comma := strings.Index(rest, ",")
		if comma < 0 {
			continue
		}
		skill := strings.TrimSpace(rest[:comma])
		probIdx := strings.Index(rest, "Probability:")
		if probIdx < 0 {
			continue
		}
		probability := strings.TrimSpace(rest[probIdx+len("Probability:"):])
		if skill == "" || probability == "" {
			continue
		}
		recs = append(recs, Recommendation{Skill: skill, Probability: probability})
	}
	return recs
}

// sortByProbability orders recommendations by descending numeric value.
// Entries whose probability does not parse sort last; the sort is stable so
// equally ranked skills keep the model's order.
func sortByProbability(recs []Recommendation) {
	sort.SliceStable(recs, func(i, j int) bool {
		return probValue(recs[i].Probability) > probValue(recs[j].Probability)
	})
}

func probValue(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return -1
	}
	return v
}
