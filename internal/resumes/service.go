// Package resumes turns resume documents into structured candidate
// profiles. The model reply is parsed line by line; a keyword scan over
// the raw text backs the model up when it fails or returns too little.
package resumes

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"skillgap-backend/internal/llm"
	"skillgap-backend/internal/shared/telemetry"
)

// minParsedSkills is the threshold below which the keyword fallback is
// merged into the model's skill list.
const minParsedSkills = 3

const parsePrompt = `You are an AI designed to analyze resumes. Given the following paragraph, extract the following fields:

1. **Technical Skills**: Only list the TECHNICAL hard skills mentioned in a comma-separated list. Do not include soft skills like "Communication" or "Teamwork".
2. **Certifications**: Only list any certifications mentioned in a comma-separated list. If there are no certifications, return "None".
3. **Years of Experience**: Only return the number of years of experience as a numerical value. If no duration is mentioned, return "0".
4. **Education**: Extract the highest degree, major, and university mentioned. Simplify to a short string (e.g., "B.Tech in Computer Science"). If not mentioned, return "None".

Respond strictly in the following format:

Skills: <comma-separated list of technical skills>
Certifications: <comma-separated list of certifications or 'None'>
Years of Experience: <years of experience or 0>
Education: <education summary or 'None'>

Here is the paragraph:
%q`

type Service struct {
	Completer llm.Completer
}

func NewService(completer llm.Completer) *Service {
	return &Service{Completer: completer}
}

// Parse extracts a structured profile from resume text. It never returns an
// error for model failures: the keyword fallback guarantees a usable profile.
func (s *Service) Parse(ctx context.Context, resumeText string) Profile {
	reply, err := s.Completer.Complete(ctx, fmt.Sprintf(parsePrompt, resumeText))
	if err != nil {
		telemetry.Error("resumes.parse_model_failed", map[string]any{"error": err.Error()})
		return Profile{
			Skills:            keywordSkills(resumeText),
			Certifications:    []string{},
			YearsOfExperience: "0",
			Education:         "Analysis Failed",
		}
	}

	profile := parseReply(reply)
	if len(profile.Skills) < minParsedSkills {
		telemetry.Info("resumes.parse_fallback_merge", map[string]any{
			"model_skills": len(profile.Skills),
		})
		profile.Skills = mergeUnique(profile.Skills, keywordSkills(resumeText))
	}
	return profile
}

// parseReply reads the line-oriented field format the prompt demands.
// Fields the model omitted keep their documented defaults.
func parseReply(reply string) Profile {
	profile := Profile{
		Skills:            []string{},
		Certifications:    []string{},
		YearsOfExperience: "0",
		Education:         "Not Mentioned",
	}
	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case hasFieldPrefix(line, "Skills:"):
			profile.Skills = splitCommaList(fieldValue(line, "Skills:"), "")
		case hasFieldPrefix(line, "Certifications:"):
			profile.Certifications = splitCommaList(fieldValue(line, "Certifications:"), "none")
		case hasFieldPrefix(line, "Years of Experience:"):
			if v := fieldValue(line, "Years of Experience:"); v != "" {
				profile.YearsOfExperience = v
			}
		case hasFieldPrefix(line, "Education:"):
			if v := fieldValue(line, "Education:"); v != "" {
				profile.Education = v
			}
		}
	}
	return profile
}

func hasFieldPrefix(line, prefix string) bool {
	return len(line) >= len(prefix) && strings.EqualFold(line[:len(prefix)], prefix)
}

func fieldValue(line, prefix string) string {
	return strings.TrimSpace(line[len(prefix):])
}

// splitCommaList splits a comma-separated field, dropping empty entries and
// the given sentinel value (compared case-insensitively).
func splitCommaList(value, sentinel string) []string {
	out := []string{}
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" || (sentinel != "" && strings.EqualFold(part, sentinel)) {
			continue
		}
		out = append(out, part)
	}
	return out
}

// commonSkills is the keyword vocabulary for the fallback scan.
var commonSkills = []string{
	"Python", "Java", "C++", "JavaScript", "TypeScript", "React", "Angular", "Vue", "Node.js", "Express",
	"Django", "Flask", "Spring Boot", "SQL", "MySQL", "PostgreSQL", "MongoDB", "NoSQL", "Git", "Docker",
	"Kubernetes", "AWS", "Azure", "GCP", "Linux", "HTML", "CSS", "SASS", "Tailwind", "Bootstrap",
	"Machine Learning", "Deep Learning", "Data Analysis", "TensorFlow", "PyTorch", "Pandas", "NumPy",
	"Spark", "Hadoop", "Tableau", "Power BI", "Excel", "Salesforce", "JIRA", "Agile", "Scrum",
	"C#", ".NET", "PHP", "Laravel", "Ruby", "Rails", "Go", "Rust", "Swift", "Kotlin", "Flutter",
	"DevOps", "CI/CD", "Jenkins", "Terraform", "Ansible", "Redis", "Elasticsearch", "Three.js", "WebGL",
}

var wordPatterns = buildWordPatterns()

func buildWordPatterns() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(commonSkills))
	for _, skill := range commonSkills {
		// Names with punctuation (C++, .NET, Node.js) defeat \b matching
		// and fall back to a plain substring check instead.
		if strings.ContainsAny(skill, "+#.") {
			continue
		}
		patterns[skill] = regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(skill)) + `\b`)
	}
	return patterns
}

// keywordSkills scans text for known skill names.
func keywordSkills(text string) []string {
	lower := strings.ToLower(text)
	found := []string{}
	for _, skill := range commonSkills {
		pattern, ok := wordPatterns[skill]
		if !ok {
			if strings.Contains(lower, strings.ToLower(skill)) {
				found = append(found, skill)
			}
			continue
		}
		if pattern.MatchString(lower) {
			found = append(found, skill)
		}
	}
	return found
}

// mergeUnique combines two skill lists preserving the first list's order
// and sorting the additions for stable output.
func mergeUnique(primary, extra []string) []string {
	seen := make(map[string]struct{}, len(primary))
	merged := make([]string, 0, len(primary)+len(extra))
	for _, s := range primary {
		key := strings.ToLower(s)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		merged = append(merged, s)
	}
	added := []string{}
	for _, s := range extra {
		key := strings.ToLower(s)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		added = append(added, s)
	}
	sort.Strings(added)
	return append(merged, added...)
}
