package quiz

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"skillgap-backend/internal/llm"
	"skillgap-backend/internal/shared/server/respond"
)

type Handler struct {
	Completer llm.Completer
}

func NewHandler(completer llm.Completer) *Handler {
	return &Handler{Completer: completer}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/quizzes/gap", h.gap)
	rg.POST("/quizzes/verify", h.verify)
}

type gapRequest struct {
	Role          string   `json:"role"`
	MissingSkills []string `json:"missing_skills"`
}

func (h *Handler) gap(c *gin.Context) {
	var req gapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "bad_request", "invalid JSON data", nil)
		return
	}
	if strings.TrimSpace(req.Role) == "" {
		req.Role = "General"
	}
	respond.JSON(c, http.StatusOK, GapQuiz(c.Request.Context(), h.Completer, req.Role, req.MissingSkills))
}

type verifyRequest struct {
	Role          string   `json:"role"`
	MatchedSkills []string `json:"matched_skills"`
}

func (h *Handler) verify(c *gin.Context) {
	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "bad_request", "invalid JSON data", nil)
		return
	}
	if strings.TrimSpace(req.Role) == "" {
		req.Role = "General"
	}
	respond.JSON(c, http.StatusOK, VerificationQuiz(c.Request.Context(), h.Completer, req.Role, req.MatchedSkills))
}
