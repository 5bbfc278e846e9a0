package skills

import (
	"context"
	"errors"
	"testing"

	"skillgap-backend/internal/llm"
)

type fakeCompleter struct {
	reply string
	err   error
}

func (f *fakeCompleter) Complete(context.Context, string) (string, error) {
	return f.reply, f.err
}

func TestMarketSkillsParsesCommaList(t *testing.T) {
	completer := &fakeCompleter{reply: "React, TypeScript, Next.js, GraphQL"}

	got := MarketSkills(context.Background(), completer, "Frontend Developer")

	want := []string{"React", "TypeScript", "Next.js", "GraphQL"}
	if len(got) != len(want) {
		t.Fatalf("got %d skills, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("skill %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestMarketSkillsStripsLeadingProse(t *testing.T) {
	completer := &fakeCompleter{reply: "Here are the top skills: Python, SQL, Airflow, Spark"}

	got := MarketSkills(context.Background(), completer, "Data Engineer")

	if len(got) != 4 || got[0] != "Python" {
		t.Fatalf("unexpected parse result: %v", got)
	}
}

func TestMarketSkillsCapsAtTwenty(t *testing.T) {
	reply := ""
	for i := 0; i < 30; i++ {
		if i > 0 {
			reply += ", "
		}
		reply += "Skill" + string(rune('A'+i%26))
	}
	completer := &fakeCompleter{reply: reply}

	got := MarketSkills(context.Background(), completer, "SDE")

	if len(got) != 20 {
		t.Fatalf("got %d skills, want 20", len(got))
	}
}

func TestMarketSkillsFallsBackOnError(t *testing.T) {
	completer := &fakeCompleter{err: errors.New("model unavailable")}

	got := MarketSkills(context.Background(), completer, "DevOps Engineer")

	if len(got) == 0 {
		t.Fatal("expected fallback skills")
	}
	if got[0] != "AWS" {
		t.Errorf("first fallback skill = %q, want AWS", got[0])
	}
}

func TestMarketSkillsFallsBackOnShortReply(t *testing.T) {
	completer := &fakeCompleter{reply: "Python, SQL"}

	got := MarketSkills(context.Background(), completer, "Data Analyst")

	if len(got) < 3 {
		t.Fatalf("expected curated fallback, got %v", got)
	}
	if got[0] != "Python" || got[1] != "SQL" || got[2] != "Pandas" {
		t.Errorf("unexpected fallback head: %v", got[:3])
	}
}

func TestMarketSkillsPlaceholderCompleter(t *testing.T) {
	got := MarketSkills(context.Background(), llm.Placeholder{}, "Security Analyst")

	if len(got) == 0 || got[0] != "Network Security" {
		t.Fatalf("unexpected fallback for security role: %v", got)
	}
}

func TestFallbackMarketSkillsDefault(t *testing.T) {
	got := FallbackMarketSkills("Product Manager")

	if len(got) != 10 || got[0] != "JavaScript" {
		t.Fatalf("unexpected default fallback: %v", got)
	}
}
