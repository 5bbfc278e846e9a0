package educator

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"skillgap-backend/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/educator/gap", h.gap)
	rg.GET("/educator/curriculum-plan", h.curriculumPlan)
}

type gapRequest struct {
	Description string `json:"description"`
}

func (h *Handler) gap(c *gin.Context) {
	var req gapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "bad_request", "invalid JSON data", nil)
		return
	}
	if strings.TrimSpace(req.Description) == "" {
		respond.Error(c, http.StatusBadRequest, "bad_request", "no description provided", nil)
		return
	}
	respond.JSON(c, http.StatusOK, h.Svc.Analyze(c.Request.Context(), req.Description))
}

func (h *Handler) curriculumPlan(c *gin.Context) {
	language := strings.TrimSpace(c.Query("language"))
	if language == "" {
		respond.Error(c, http.StatusBadRequest, "bad_request", "language parameter is required", nil)
		return
	}

	resources := h.Svc.CurriculumPlan(c.Request.Context(), language)
	respond.JSON(c, http.StatusOK, gin.H{
		"language":  language,
		"resources": resources,
	})
}
