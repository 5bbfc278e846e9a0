package prep

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
	rg.POST("/interviews/prep", h.prep)
}

type prepRequest struct {
	Role string `json:"role"`
}

func (h *Handler) prep(c *gin.Context) {
	var req prepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "bad_request", "invalid JSON data", nil)
		return
	}
	if strings.TrimSpace(req.Role) == "" {
		respond.Error(c, http.StatusBadRequest, "bad_request", "role is required", nil)
		return
	}
	respond.JSON(c, http.StatusOK, Companies(c.Request.Context(), h.Completer, req.Role))
}
