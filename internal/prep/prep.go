// Package prep produces company interview preparation briefs for a role.
package prep

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"skillgap-backend/internal/llm"
	"skillgap-backend/internal/shared/telemetry"
)

// Company is one company's interview pattern for a role.
type Company struct {
	Company   string   `json:"company"`
	Style     string   `json:"style"`
	Questions []string `json:"questions"`
}

const prepPrompt = `You are an expert tech career coach.
Identify 10 top-tier companies that are actively known for hiring %q roles.

For EACH company, provide:
1. Company Name.
2. A brief 1-sentence description of their interview style/pattern for this role (e.g. "Focuses heavily on LeetCode Medium/Hard and System Design").
3. 5 specific technical or behavioral questions they are known to ask for this role.

Format the output as a valid JSON array strictly. Do not use Markdown code blocks. Just the raw JSON string.

Example Structure:
[
    {
        "company": "Company Name",
        "style": "Interview style description...",
        "questions": ["Question 1", "Question 2", "Question 3", "Question 4", "Question 5"]
    }
]`

// Companies returns interview patterns for companies hiring the role. Model
// failures fall back to a small static set so the page always has content.
func Companies(ctx context.Context, completer llm.Completer, role string) []Company {
	reply, err := completer.Complete(ctx, fmt.Sprintf(prepPrompt, role))
	if err != nil {
		telemetry.Error("prep.generation_failed", map[string]any{
			"role":  role,
			"error": err.Error(),
		})
		return fallbackCompanies()
	}

	var companies []Company
	if err := json.Unmarshal([]byte(stripCodeFence(reply)), &companies); err != nil {
		telemetry.Error("prep.parse_failed", map[string]any{"error": err.Error()})
		return fallbackCompanies()
	}
	if len(companies) == 0 {
		return fallbackCompanies()
	}
	return companies
}

func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if idx := strings.Index(text, "```json"); idx >= 0 {
		text = text[idx+len("```json"):]
		if end := strings.Index(text, "```"); end >= 0 {
			text = text[:end]
		}
	} else if idx := strings.Index(text, "```"); idx >= 0 {
		text = text[idx+len("```"):]
		if end := strings.Index(text, "```"); end >= 0 {
			text = text[:end]
		}
	}
	return strings.TrimSpace(text)
}

func fallbackCompanies() []Company {
	return []Company{
		{
			Company: "Google (Fallback Data)",
			Style:   "Heavy focus on graph algorithms, dynamic programming, and system design for scale.",
			Questions: []string{
				"Invert a binary tree.",
				"Design a rate limiter.",
				"Explain how search query processing works at scale.",
				"What happens when you type a URL into a browser?",
				"Find the longest substring without repeating characters.",
			},
		},
		{
			Company: "Amazon (Fallback Data)",
			Style:   "Leadership Principles regarding customer obsession and ownership are critical.",
			Questions: []string{
				"Tell me about a time you disagreed with a manager.",
				"Design a parking lot system.",
				"Find the K closest points to the origin.",
				"Merge K sorted lists.",
				"Describe a situation where you had to make a quick decision with limited data.",
			},
		},
		{
			Company: "Microsoft (Fallback Data)",
			Style:   "Behavioral questions mixed with standard algorithmic challenges and OOD.",
			Questions: []string{
				"Design a garbage collection system.",
				"Check if a binary tree is a valid BST.",
				"Explain the difference between a process and a thread.",
				"Design an elevator system.",
				"Tell me about a time you learned a new technology quickly.",
			},
		},
	}
}
