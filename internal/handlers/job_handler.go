package handlers

import (
	"net/http"

	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

func (h *JobHandler) RegisterRoutes(r *gin.RouterGroup) {
	jobs := r.Group("/jobs")
	{
		jobs.POST("/create", h.CreateJob)
		jobs.POST("/delete/:id", h.DeleteJob)
		jobs.PUT("/update/:id", h.UpdateJob)
		jobs.GET("/get/:id", h.GetJob)
		jobs.GET("/all", h.GetJobs)
		jobs.GET("/locations/all", h.GetAllLocations)
	}
}

func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dto.CreateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.CreateJob(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, job)
}

func (h *JobHandler) DeleteJob(c *gin.Context) {
	jobID, ok := RequireParam(c, "id")
	if !ok {
		return
	}

	if err := h.jobService.DeleteJob(h.GetDB(c), jobID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageOnlyResponse{Message: "Job deleted successfully"})
}

func (h *JobHandler) UpdateJob(c *gin.Context) {
	jobID, ok := RequireParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.UpdateJob(h.GetDB(c), jobID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) GetJob(c *gin.Context) {
	jobID, ok := RequireParam(c, "id")
	if !ok {
		return
	}

	job, err := h.jobService.GetJob(h.GetDB(c), jobID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) GetJobs(c *gin.Context) {
	var query dto.JobListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	jobs, err := h.jobService.GetJobs(h.GetDB(c), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobs)
}

func (h *JobHandler) GetAllLocations(c *gin.Context) {
	locations, err := h.jobService.GetAllLocations(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, locations)
}
