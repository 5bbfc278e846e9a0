package resumes

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T, completer *fakeCompleter) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewHandler(NewService(completer))
	handler.RegisterRoutes(router.Group("/api/v1"))
	return router
}

func multipartResume(t *testing.T, field, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func TestParseEndpoint(t *testing.T) {
	completer := &fakeCompleter{reply: `Skills: Go, SQL, Docker
Certifications: None
Years of Experience: 3
Education: BSc`}
	router := newTestRouter(t, completer)

	body, contentType := multipartResume(t, "resume", "resume.txt", "Go SQL Docker resume text")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes/parse", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Skills         []string `json:"skills"`
		Experience     string   `json:"experience"`
		Certifications []string `json:"certifications"`
		Education      string   `json:"education"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Skills) != 3 {
		t.Errorf("skills = %v", resp.Skills)
	}
	if resp.Experience != "3" {
		t.Errorf("experience = %q", resp.Experience)
	}
	if resp.Certifications == nil {
		t.Error("certifications must be an empty array, not null")
	}
}

func TestParseEndpointMissingFile(t *testing.T) {
	router := newTestRouter(t, &fakeCompleter{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes/parse", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestParseEndpointUnsupportedFormat(t *testing.T) {
	router := newTestRouter(t, &fakeCompleter{})

	body, contentType := multipartResume(t, "resume", "resume.exe", "\x00\x01binary")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes/parse", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
