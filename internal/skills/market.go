package skills

import (
	"context"
	"fmt"
	"strings"

	"skillgap-backend/internal/llm"
	"skillgap-backend/internal/shared/telemetry"
)

const maxMarketSkills = 20

// minMarketSkills is the threshold below which a model reply is treated
// as garbage and the keyword fallback table takes over.
const minMarketSkills = 3

const marketPrompt = `Act as a senior technical recruiter.
Identify the top 20 essential technical skills strictly for a %q position in the modern tech landscape.

Context:
- If the role is an abbreviation (e.g. 'AIML', 'SDE', 'QA', 'DevSecOps'), expand it to its full meaning (e.g. 'AI & Machine Learning', 'Software Development Engineer') and provide relevant skills.

Rules:
1. STRICTLY Technical Skills only (e.g., 'React', 'Kubernetes', 'TensorFlow', 'PyTorch').
2. NO Soft Skills (e.g., 'Communication', 'Teamwork', 'Problem Solving').
3. NO generic terms (e.g., 'Computer Science', 'Programming').
4. Provide a diverse mix of languages, frameworks, tools, and platforms relevant to the role.

Respond strictly with a comma-separated list of skills only.`

// MarketSkills returns the in-demand skill list for a role. The model reply
// is a comma-separated list; on failure or an implausibly short reply the
// role keyword table supplies a curated default.
func MarketSkills(ctx context.Context, completer llm.Completer, role string) []string {
	reply, err := completer.Complete(ctx, fmt.Sprintf(marketPrompt, role))
	if err != nil {
		telemetry.Error("skills.market_lookup_failed", map[string]any{
			"role":  role,
			"error": err.Error(),
		})
		return FallbackMarketSkills(role)
	}
	parsed := parseSkillList(reply)
	if len(parsed) < minMarketSkills {
		telemetry.Info("skills.market_reply_discarded", map[string]any{
			"role":  role,
			"count": len(parsed),
		})
		return FallbackMarketSkills(role)
	}
	if len(parsed) > maxMarketSkills {
		parsed = parsed[:maxMarketSkills]
	}
	return parsed
}

// parseSkillList extracts a comma-separated skill list from a model reply,
// dropping any leading prose before a colon ("Here are the skills: ...").
func parseSkillList(reply string) []string {
	text := strings.TrimSpace(reply)
	if idx := strings.LastIndex(text, ":"); idx >= 0 {
		text = text[idx+1:]
	}
	parts := strings.Split(text, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// FallbackMarketSkills maps role keywords to a curated skill list so gap
// reports stay useful when no model is reachable.
func FallbackMarketSkills(role string) []string {
	r := strings.ToLower(role)
	switch {
	case containsAny(r, "data", "analyst"):
		return []string{"Python", "SQL", "Pandas", "Tableau", "PowerBI", "Excel", "R", "BigQuery"}
	case containsAny(r, "ai", "ml", "artificial", "machine", "deep", "neural"):
		return []string{"Python", "TensorFlow", "PyTorch", "Scikit-Learn", "Deep Learning", "NLP", "Pandas", "NumPy", "Keras", "Model Deployment"}
	case containsAny(r, "frontend", "react", "web", "ui", "angular", "vue"):
		return []string{"React", "JavaScript", "CSS", "HTML", "Redux", "TypeScript", "Tailwind CSS", "Next.js", "Vue.js", "Webpack"}
	case containsAny(r, "backend", "api", "java", "node", "django", "spring"):
		return []string{"Node.js", "Python", "Java", "SQL", "Docker", "REST API", "Microservices", "MongoDB", "PostgreSQL", "Redis"}
	case containsAny(r, "full stack", "fullstack", "mern"):
		return []string{"React", "Node.js", "TypeScript", "SQL", "NoSQL", "Docker", "AWS", "Git", "Redux", "Express.js"}
	case containsAny(r, "devops", "cloud", "aws", "azure"):
		return []string{"AWS", "Docker", "Kubernetes", "Terraform", "CI/CD", "Linux", "Python", "Bash", "Azure", "Ansible"}
	case containsAny(r, "security", "cyber", "pentest"):
		return []string{"Network Security", "Linux", "Python", "Penetration Testing", "Wireshark", "Cryptography", "Risk Assessment", "SIEM", "Firewalls", "OWASP"}
	case containsAny(r, "mobile", "ios", "android", "flutter"):
		return []string{"Flutter", "React Native", "Swift", "Kotlin", "Dart", "Firebase", "Mobile UI Design", "API Integration"}
	default:
		return []string{"JavaScript", "Python", "SQL", "Git", "Cloud Computing", "Data Structures", "Algorithms", "Testing", "System Design", "Agile"}
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
