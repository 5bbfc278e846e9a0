// Package quiz generates multiple-choice quizzes from a model, padded from
// a deterministic question bank so the count contract always holds.
package quiz

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"skillgap-backend/internal/llm"
	"skillgap-backend/internal/shared/telemetry"
)

// Question counts fixed by the two quiz modes.
const (
	GapQuestionCount          = 26
	VerificationQuestionCount = 10
)

// maxPromptSkills keeps quiz prompts focused on the most relevant skills.
const maxPromptSkills = 5

const gapPrompt = `You are a technical interviewer for a %q position.
The candidate is missing the following skills: %s.

Generate exactly %d multiple-choice questions (MCQs) to test their knowledge on these specific MISSING SKILLS.

Format Constraints:
1. Provide exactly %d questions.
2. Each question must have 4 options.
3. Clearly indicate the correct option index (0-3).
4. Questions should be technical and challenging.
5. Output must be valid JSON array with no markdown formatting.

Example format:
[
    {
        "question": "Question text?",
        "options": ["A", "B", "C", "D"],
        "correct": 0
    }
]`

const verificationPrompt = `You are a technical interviewer for a %q position.
The candidate CLAIMS to have the following skills: %s.

Generate exactly %d multiple-choice questions (MCQs) to VERIFY their proficiency in these specific MATCHED skills.

Format Constraints:
1. Provide exactly %d questions.
2. Each question must have 4 options.
3. Clearly indicate the correct option index (0-3).
4. Questions should be moderately difficult to filter out false positives.
5. Output must be valid JSON array with no markdown formatting.

Example format:
[
    {
        "question": "Question text?",
        "options": ["A", "B", "C", "D"],
        "correct": 0
    }
]`

// GapQuiz returns exactly GapQuestionCount questions on the missing skills.
// An empty skill list falls back to quizzing on the role itself.
func GapQuiz(ctx context.Context, completer llm.Completer, role string, missingSkills []string) []Question {
	if len(missingSkills) == 0 {
		missingSkills = []string{role}
	}
	prompt := fmt.Sprintf(gapPrompt, role, joinSkills(missingSkills), GapQuestionCount, GapQuestionCount)
	return generate(ctx, completer, prompt, GapQuestionCount)
}

// VerificationQuiz returns exactly VerificationQuestionCount questions on
// the skills the candidate claims.
func VerificationQuiz(ctx context.Context, completer llm.Completer, role string, matchedSkills []string) []Question {
	if len(matchedSkills) == 0 {
		matchedSkills = []string{role}
	}
	prompt := fmt.Sprintf(verificationPrompt, role, joinSkills(matchedSkills), VerificationQuestionCount, VerificationQuestionCount)
	return generate(ctx, completer, prompt, VerificationQuestionCount)
}

func generate(ctx context.Context, completer llm.Completer, prompt string, count int) []Question {
	reply, err := completer.Complete(ctx, prompt)
	if err != nil {
		telemetry.Error("quiz.generation_failed", map[string]any{"error": err.Error()})
		return FallbackQuestions(count)
	}

	questions, err := parseQuestions(reply)
	if err != nil {
		telemetry.Error("quiz.parse_failed", map[string]any{"error": err.Error()})
		return FallbackQuestions(count)
	}

	if len(questions) < count {
		questions = append(questions, FallbackQuestions(count-len(questions))...)
	}
	return questions[:count]
}

// parseQuestions decodes a JSON question array, tolerating markdown code
// fences around it and dropping malformed items.
func parseQuestions(reply string) ([]Question, error) {
	text := stripCodeFence(reply)

	var raw []Question
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}

	valid := make([]Question, 0, len(raw))
	for _, q := range raw {
		if strings.TrimSpace(q.Question) == "" || len(q.Options) != 4 {
			continue
		}
		if q.Correct < 0 || q.Correct > 3 {
			continue
		}
		valid = append(valid, q)
	}
	return valid, nil
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

func joinSkills(skills []string) string {
	if len(skills) > maxPromptSkills {
		skills = skills[:maxPromptSkills]
	}
	return strings.Join(skills, ", ")
}
