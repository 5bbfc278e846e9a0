package gapreports

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"skillgap-backend/internal/extract"
	"skillgap-backend/internal/shared/server/respond"
)

const maxJDUploadBytes = 10 << 20

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/gap-reports/role", h.forRole)
	rg.POST("/gap-reports/job-description", h.forJobDescription)
}

type roleRequest struct {
	Role       string   `json:"role"`
	UserSkills []string `json:"user_skills"`
}

func (h *Handler) forRole(c *gin.Context) {
	var req roleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "bad_request", "invalid JSON data", nil)
		return
	}
	req.Role = strings.TrimSpace(req.Role)
	if req.Role == "" {
		respond.Error(c, http.StatusBadRequest, "bad_request", "role is required for analysis", nil)
		return
	}
	if req.UserSkills == nil {
		req.UserSkills = []string{}
	}

	report := h.Svc.ForRole(c.Request.Context(), req.Role, req.UserSkills)
	respond.JSON(c, http.StatusOK, report)
}

func (h *Handler) forJobDescription(c *gin.Context) {
	fileHeader, err := c.FormFile("jd_file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "bad_request", "no job description file uploaded", nil)
		return
	}
	if fileHeader.Size > maxJDUploadBytes {
		respond.Error(c, http.StatusBadRequest, "bad_request", "job description file too large", nil)
		return
	}

	// A malformed user_skills form value degrades to an empty list rather
	// than failing the upload.
	userSkills := []string{}
	if raw := c.PostForm("user_skills"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &userSkills); err != nil {
			userSkills = []string{}
		}
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "bad_request", "failed to read file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "bad_request", "failed to read file", nil)
		return
	}

	jdText, err := extract.Text(fileHeader.Filename, data)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "bad_request", "failed to read file", gin.H{"reason": err.Error()})
		return
	}

	report := h.Svc.ForJobDescription(c.Request.Context(), jdText, userSkills)
	respond.JSON(c, http.StatusOK, report)
}
