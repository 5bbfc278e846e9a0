package interviews

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"skillgap-backend/internal/shared/auth"
)

const testSecret = "test-secret"

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewHandler(NewService(NewMemoryRepo()), testSecret)
	handler.RegisterRoutes(router.Group("/api/v1"))
	return router
}

func TestShareEndpoint(t *testing.T) {
	router := newTestRouter(t)

	body := `{"company":"Acme","role":"SDE","experience":"Three rounds.","questions":"Reverse a list."}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/interviews/experiences", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Message string     `json:"message"`
		Entry   Experience `json:"entry"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Entry.User != "Anonymous" {
		t.Errorf("user = %q", resp.Entry.User)
	}
}

func TestShareEndpointQuestionsArray(t *testing.T) {
	router := newTestRouter(t)

	body := `{"company":"Acme","role":"SDE","questions":["Design a URL shortener","Reverse a list."]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/interviews/experiences", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Entry Experience `json:"entry"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := "Design a URL shortener\nReverse a list."
	if resp.Entry.Questions != want {
		t.Errorf("questions = %q, want %q", resp.Entry.Questions, want)
	}
}

func TestShareEndpointMissingFields(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/interviews/experiences", strings.NewReader(`{"company":"Acme"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestShareEndpointTokenIdentityWins(t *testing.T) {
	router := newTestRouter(t)

	token, err := auth.Sign(testSecret, "dana@example.com", "Dana")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	body := `{"company":"Acme","role":"SDE","user":"Impostor"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/interviews/experiences", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Entry Experience `json:"entry"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Entry.User != "Dana" {
		t.Errorf("user = %q, want token identity", resp.Entry.User)
	}
}

func TestListEndpoint(t *testing.T) {
	router := newTestRouter(t)

	post := httptest.NewRequest(http.MethodPost, "/api/v1/interviews/experiences",
		strings.NewReader(`{"company":"Acme","role":"SDE"}`))
	post.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(httptest.NewRecorder(), post)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/interviews/experiences", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var list []Experience
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list) != 1 || list[0].Company != "Acme" {
		t.Errorf("list = %+v", list)
	}
}
