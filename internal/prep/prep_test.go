package prep

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

type fakeCompleter struct {
	reply string
	err   error
}

func (f *fakeCompleter) Complete(context.Context, string) (string, error) {
	return f.reply, f.err
}

func TestCompaniesParsesReply(t *testing.T) {
	reply := `[{"company":"Acme","style":"Pairing heavy.","questions":["Q1","Q2"]}]`
	completer := &fakeCompleter{reply: reply}

	got := Companies(context.Background(), completer, "SDE")

	if len(got) != 1 || got[0].Company != "Acme" {
		t.Fatalf("got %+v", got)
	}
}

func TestCompaniesStripsFence(t *testing.T) {
	reply := "```json\n[{\"company\":\"Acme\",\"style\":\"s\",\"questions\":[]}]\n```"
	completer := &fakeCompleter{reply: reply}

	got := Companies(context.Background(), completer, "SDE")

	if len(got) != 1 || got[0].Company != "Acme" {
		t.Fatalf("got %+v", got)
	}
}

func TestCompaniesFallbackOnError(t *testing.T) {
	completer := &fakeCompleter{err: errors.New("model down")}

	got := Companies(context.Background(), completer, "SDE")

	if len(got) != 3 {
		t.Fatalf("fallback len = %d, want 3", len(got))
	}
	if !strings.Contains(got[0].Company, "Google") {
		t.Errorf("got %+v", got[0])
	}
	for _, company := range got {
		if len(company.Questions) != 5 {
			t.Errorf("%s has %d questions, want 5", company.Company, len(company.Questions))
		}
	}
}

func TestCompaniesFallbackOnGarbage(t *testing.T) {
	completer := &fakeCompleter{reply: "sorry, no JSON today"}

	got := Companies(context.Background(), completer, "SDE")

	if len(got) != 3 {
		t.Fatalf("fallback len = %d, want 3", len(got))
	}
}

func TestPrepEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewHandler(&fakeCompleter{err: errors.New("down")})
	handler.RegisterRoutes(router.Group("/api/v1"))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/interviews/prep", strings.NewReader(`{"role":"SDE"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var companies []Company
	if err := json.Unmarshal(rec.Body.Bytes(), &companies); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(companies) == 0 {
		t.Error("expected companies")
	}
}

func TestPrepEndpointMissingRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewHandler(&fakeCompleter{})
	handler.RegisterRoutes(router.Group("/api/v1"))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/interviews/prep", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
