package resumes

import (
	"context"
	"errors"
	"testing"
)

type fakeCompleter struct {
	reply string
	err   error
}

func (f *fakeCompleter) Complete(context.Context, string) (string, error) {
	return f.reply, f.err
}

func TestParseReplyFullFormat(t *testing.T) {
	reply := `Skills: Python, SQL, Docker, Kubernetes
Certifications: AWS Certified Developer, None
Years of Experience: 4
Education: B.Tech in Computer Science`

	profile := parseReply(reply)

	if len(profile.Skills) != 4 || profile.Skills[0] != "Python" {
		t.Errorf("skills = %v", profile.Skills)
	}
	if len(profile.Certifications) != 1 || profile.Certifications[0] != "AWS Certified Developer" {
		t.Errorf("certifications = %v, want sentinel dropped", profile.Certifications)
	}
	if profile.YearsOfExperience != "4" {
		t.Errorf("experience = %q", profile.YearsOfExperience)
	}
	if profile.Education != "B.Tech in Computer Science" {
		t.Errorf("education = %q", profile.Education)
	}
}

func TestParseReplyDefaults(t *testing.T) {
	profile := parseReply("I could not find anything useful.")

	if len(profile.Skills) != 0 {
		t.Errorf("skills = %v, want empty", profile.Skills)
	}
	if profile.YearsOfExperience != "0" {
		t.Errorf("experience = %q, want 0", profile.YearsOfExperience)
	}
	if profile.Education != "Not Mentioned" {
		t.Errorf("education = %q", profile.Education)
	}
}

func TestParseReplyCaseInsensitiveLabels(t *testing.T) {
	profile := parseReply("skills: Go, Rust, SQL\neducation: MSc")

	if len(profile.Skills) != 3 {
		t.Errorf("skills = %v", profile.Skills)
	}
	if profile.Education != "MSc" {
		t.Errorf("education = %q", profile.Education)
	}
}

func TestParseMergesKeywordFallbackOnSparseReply(t *testing.T) {
	svc := NewService(&fakeCompleter{reply: "Skills: Python\nCertifications: None"})
	text := "Worked with Python, Docker and Kubernetes on AWS."

	profile := svc.Parse(context.Background(), text)

	if len(profile.Skills) < 4 {
		t.Fatalf("expected fallback merge, got %v", profile.Skills)
	}
	if profile.Skills[0] != "Python" {
		t.Errorf("model skills must come first, got %v", profile.Skills)
	}
	seen := map[string]int{}
	for _, s := range profile.Skills {
		seen[s]++
	}
	if seen["Python"] != 1 {
		t.Errorf("duplicate skill after merge: %v", profile.Skills)
	}
	for _, want := range []string{"Docker", "Kubernetes", "AWS"} {
		if seen[want] == 0 {
			t.Errorf("missing fallback skill %s in %v", want, profile.Skills)
		}
	}
}

func TestParseModelFailureUsesKeywordScan(t *testing.T) {
	svc := NewService(&fakeCompleter{err: errors.New("model unavailable")})

	profile := svc.Parse(context.Background(), "Built services in Java with PostgreSQL and Redis.")

	if len(profile.Skills) != 3 {
		t.Fatalf("skills = %v", profile.Skills)
	}
	if profile.Education != "Analysis Failed" {
		t.Errorf("education = %q", profile.Education)
	}
	if profile.YearsOfExperience != "0" {
		t.Errorf("experience = %q", profile.YearsOfExperience)
	}
}

func TestKeywordSkillsPunctuatedNames(t *testing.T) {
	found := keywordSkills("Shipped C++ services and Node.js tooling with .NET interop.")

	seen := map[string]bool{}
	for _, s := range found {
		seen[s] = true
	}
	for _, want := range []string{"C++", "Node.js", ".NET"} {
		if !seen[want] {
			t.Errorf("missing %s in %v", want, found)
		}
	}
}

func TestKeywordSkillsWordBoundary(t *testing.T) {
	found := keywordSkills("Javan culture and gossip are not skills.")

	for _, s := range found {
		if s == "Java" || s == "Go" || s == "SQL" {
			t.Errorf("boundary leak: %v", found)
		}
	}
}
