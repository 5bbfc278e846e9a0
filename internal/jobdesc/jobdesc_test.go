package jobdesc

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

func TestAnalyzeParsesReply(t *testing.T) {
	completer := &fakeCompleter{reply: `Skills: Kubernetes, Terraform, AWS, Python
Certifications: CKA, AWS Solutions Architect
Years of Experience: 5`}

	got := Analyze(context.Background(), completer, "Senior platform engineer role")

	if len(got.Skills) != 4 || got.Skills[0] != "Kubernetes" {
		t.Errorf("skills = %v", got.Skills)
	}
	if got.Certifications != "CKA, AWS Solutions Architect" {
		t.Errorf("certifications = %q", got.Certifications)
	}
	if got.Experience != "5" {
		t.Errorf("experience = %q", got.Experience)
	}
}

func TestAnalyzeDefaultsForUnparsableReply(t *testing.T) {
	completer := &fakeCompleter{reply: "I'm sorry, I can't help with that."}

	got := Analyze(context.Background(), completer, "some description")

	if len(got.Skills) != 0 {
		t.Errorf("skills = %v, want empty", got.Skills)
	}
	if got.Certifications != "None" || got.Experience != "0 Years" {
		t.Errorf("defaults not applied: %+v", got)
	}
}

func TestAnalyzeFallbackOnModelError(t *testing.T) {
	completer := &fakeCompleter{err: errors.New("model unavailable")}

	got := Analyze(context.Background(), completer, "backend role")

	want := []string{"Communication", "Problem Solving", "Python", "Java", "SQL"}
	if len(got.Skills) != len(want) {
		t.Fatalf("skills = %v", got.Skills)
	}
	for i := range want {
		if got.Skills[i] != want[i] {
			t.Errorf("skill %d = %q, want %q", i, got.Skills[i], want[i])
		}
	}
}

func TestAnalyzeCaseInsensitiveLabels(t *testing.T) {
	completer := &fakeCompleter{reply: "SKILLS: Go, gRPC\ncertifications: none mentioned"}

	got := Analyze(context.Background(), completer, "role")

	if len(got.Skills) != 2 {
		t.Errorf("skills = %v", got.Skills)
	}
	if got.Certifications != "none mentioned" {
		t.Errorf("certifications = %q", got.Certifications)
	}
}
