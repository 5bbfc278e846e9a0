package mentors

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"skillgap-backend/internal/search"
	"skillgap-backend/internal/shared/server/respond"
)

type Handler struct {
	Searcher search.Searcher
}

func NewHandler(searcher search.Searcher) *Handler {
	return &Handler{Searcher: searcher}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/mentors", h.find)
}

type findRequest struct {
	Role string `json:"role"`
}

func (h *Handler) find(c *gin.Context) {
	var req findRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "bad_request", "invalid JSON data", nil)
		return
	}
	if strings.TrimSpace(req.Role) == "" {
		respond.Error(c, http.StatusBadRequest, "bad_request", "role is required", nil)
		return
	}
	respond.JSON(c, http.StatusOK, Find(c.Request.Context(), h.Searcher, req.Role))
}
