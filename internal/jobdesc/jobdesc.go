// Package jobdesc extracts role requirements from job description text.
package jobdesc

import (
	"context"
	"fmt"
	"strings"

	"skillgap-backend/internal/llm"
	"skillgap-backend/internal/shared/telemetry"
)

// Requirements is the structured output of analyzing a job description.
type Requirements struct {
	Skills         []string `json:"skills"`
	Certifications string   `json:"certifications"`
	Experience     string   `json:"experience"`
}

const analyzePrompt = `You are an AI designed to analyze short text descriptions of professional roles. Given the following description, do the following:

1. **certifications**: Identify the certifications from the text.
2. **Experience**: Determine the number of years of experience (if mentioned). If it's not mentioned, return 0.
3. **Skills**: Extract all relevant technical and soft skills.
   - If specific skills are mentioned, list them.
   - If the description is vague, infer 10 relevant skills (tech + soft) based on the role context.
   - Prioritize technical skills for technical roles.

Respond strictly in the following format:

Skills: <comma-separated list of skills>
Certifications: <comma-separated list of certifications or 'None'>
Years of Experience: <years of experience or 0>

Here is the description:
%q`

// fallbackSkills keeps job-description reports functional when no model
// is reachable.
var fallbackSkills = []string{"Communication", "Problem Solving", "Python", "Java", "SQL"}

// Analyze extracts requirements from job description text. Model failures
// degrade to a generic skill set rather than an error.
func Analyze(ctx context.Context, completer llm.Completer, description string) Requirements {
	reply, err := completer.Complete(ctx, fmt.Sprintf(analyzePrompt, description))
	if err != nil {
		telemetry.Error("jobdesc.analyze_failed", map[string]any{"error": err.Error()})
		return Requirements{
			Skills:         append([]string(nil), fallbackSkills...),
			Certifications: "None",
			Experience:     "0 Years",
		}
	}
	return parseReply(reply)
}

func parseReply(reply string) Requirements {
	req := Requirements{
		Skills:         []string{},
		Certifications: "None",
		Experience:     "0 Years",
	}
	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		lower := strings.ToLower(line)
		switch {
		case strings.HasPrefix(lower, "skills:"):
			req.Skills = splitList(line[len("skills:"):])
		case strings.HasPrefix(lower, "certifications:"):
			if v := strings.TrimSpace(line[len("certifications:"):]); v != "" {
				req.Certifications = v
			}
		case strings.HasPrefix(lower, "years of experience:"):
			if v := strings.TrimSpace(line[len("years of experience:"):]); v != "" {
				req.Experience = v
			}
		}
	}
	return req
}

func splitList(raw string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}
