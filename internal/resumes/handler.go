package resumes

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"skillgap-backend/internal/extract"
	"skillgap-backend/internal/shared/server/respond"
)

// maxUploadBytes bounds resume uploads to keep document parsing cheap.
const maxUploadBytes = 10 << 20

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes/parse", h.parse)
}

func (h *Handler) parse(c *gin.Context) {
	fileHeader, err := c.FormFile("resume")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "bad_request", "no resume file uploaded", nil)
		return
	}
	if fileHeader.Size > maxUploadBytes {
		respond.Error(c, http.StatusBadRequest, "bad_request", "resume file too large", nil)
		return
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

	text, err := extract.Text(fileHeader.Filename, data)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "bad_request", "failed to read file", gin.H{"reason": err.Error()})
		return
	}

	profile := h.Svc.Parse(c.Request.Context(), text)
	respond.JSON(c, http.StatusOK, gin.H{
		"skills":         profile.Skills,
		"experience":     profile.YearsOfExperience,
		"certifications": profile.Certifications,
		"education":      profile.Education,
	})
}
