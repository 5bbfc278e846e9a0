package interviews

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"skillgap-backend/internal/shared/auth"
	"skillgap-backend/internal/shared/server/respond"
	"skillgap-backend/internal/shared/telemetry"
)

type Handler struct {
	Svc       *Service
	JWTSecret string
}

func NewHandler(svc *Service, jwtSecret string) *Handler {
	return &Handler{Svc: svc, JWTSecret: jwtSecret}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/interviews/experiences", h.list)
	rg.POST("/interviews/experiences", h.share)
}

// list degrades to an empty array on storage failure so the feed never
// breaks the page.
func (h *Handler) list(c *gin.Context) {
	experiences, err := h.Svc.List(c.Request.Context())
	if err != nil {
		telemetry.Error("interviews.list_failed", map[string]any{"error": err.Error()})
		respond.JSON(c, http.StatusOK, []Experience{})
		return
	}
	respond.JSON(c, http.StatusOK, experiences)
}

type shareRequest struct {
	Company    string         `json:"company"`
	Role       string         `json:"role"`
	Experience string         `json:"experience"`
	Questions  questionsField `json:"questions"`
	User       string         `json:"user"`
}

// questionsField tolerates both payload shapes clients send: a plain
// string or an array of question strings, which is joined line by line.
type questionsField string

func (q *questionsField) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*q = questionsField(single)
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*q = questionsField(strings.Join(list, "\n"))
	return nil
}

func (h *Handler) share(c *gin.Context) {
	var req shareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "bad_request", "invalid JSON data", nil)
		return
	}

	// A valid bearer token overrides the self-reported contributor name.
	if name := h.identityFromToken(c); name != "" {
		req.User = name
	}

	entry, err := h.Svc.Share(c.Request.Context(), Experience{
		Company:    req.Company,
		Role:       req.Role,
		Experience: req.Experience,
		Questions:  string(req.Questions),
		User:       req.User,
	})
	if err != nil {
		if errors.Is(err, ErrMissingFields) {
			respond.Error(c, http.StatusBadRequest, "bad_request", "company and role are required", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save experience", nil)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{
		"message": "Experience shared successfully!",
		"entry":   entry,
	})
}

func (h *Handler) identityFromToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	claims, err := auth.Verify(h.JWTSecret, strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return ""
	}
	if claims.Name != "" {
		return claims.Name
	}
	return claims.Email
}
