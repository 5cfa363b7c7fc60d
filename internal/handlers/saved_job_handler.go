package handlers

import (
	"net/http"

	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// SavedJobHandler - пользователь берется из пути, токен не требуется
type SavedJobHandler struct {
	*BaseHandler
	savedJobService services.SavedJobService
}

func NewSavedJobHandler(base *BaseHandler, savedJobService services.SavedJobService) *SavedJobHandler {
	return &SavedJobHandler{
		BaseHandler:     base,
		savedJobService: savedJobService,
	}
}

func (h *SavedJobHandler) RegisterRoutes(r *gin.RouterGroup) {
	saved := r.Group("/saved-jobs")
	{
		saved.GET("/:userId", h.ListSavedJobs)
		saved.POST("/:userId/:jobId", h.SaveJob)
		saved.DELETE("/:userId/:jobId", h.UnsaveJob)
	}
}

func (h *SavedJobHandler) SaveJob(c *gin.Context) {
	userID, jobID, ok := h.pathIDs(c)
	if !ok {
		return
	}

	if err := h.savedJobService.SaveJob(h.GetDB(c), userID, jobID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.MessageOnlyResponse{Message: "Job saved successfully"})
}

func (h *SavedJobHandler) UnsaveJob(c *gin.Context) {
	userID, jobID, ok := h.pathIDs(c)
	if !ok {
		return
	}

	if err := h.savedJobService.UnsaveJob(h.GetDB(c), userID, jobID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageOnlyResponse{Message: "Job unsaved successfully"})
}

func (h *SavedJobHandler) ListSavedJobs(c *gin.Context) {
	userID, ok := RequireParam(c, "userId")
	if !ok {
		return
	}

	savedJobs, err := h.savedJobService.ListSavedJobs(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, savedJobs)
}

func (h *SavedJobHandler) pathIDs(c *gin.Context) (string, string, bool) {
	userID, ok := RequireParam(c, "userId")
	if !ok {
		return "", "", false
	}
	jobID, ok := RequireParam(c, "jobId")
	if !ok {
		return "", "", false
	}
	return userID, jobID, true
}
