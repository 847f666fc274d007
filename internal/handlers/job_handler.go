package handlers

import (
	"net/http"

	"workhive_backend/internal/middleware"
	"workhive_backend/internal/models"
	"workhive_backend/internal/repositories"
	"workhive_backend/internal/services"
	"workhive_backend/internal/services/dto"
	"workhive_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(jobService services.JobService, v *validator.Validator) *JobHandler {
	return &JobHandler{
		BaseHandler: NewBaseHandler(v),
		jobService:  jobService,
	}
}

// RegisterRoutes wires the job board. Listing and detail are public;
// mutations are role-gated. The static /saved and /my segments take
// priority over the /:jobId wildcard.
func (h *JobHandler) RegisterRoutes(public, authed *gin.RouterGroup) {
	jobs := public.Group("/jobs")
	{
		jobs.GET("", h.ListJobs)
		jobs.GET("/:jobId", h.GetJob)
	}

	authedJobs := authed.Group("/jobs")
	{
		saved := authedJobs.Group("/saved", middleware.RoleMiddleware(models.UserRoleJobseeker))
		{
			saved.GET("", h.GetSavedJobs)
			saved.POST("/:jobId", h.SaveJob)
			saved.DELETE("/:jobId", h.UnsaveJob)
		}

		authedJobs.GET("/my", middleware.RoleMiddleware(models.UserRoleEmployer), h.GetMyJobs)
		authedJobs.POST("", middleware.RoleMiddleware(models.UserRoleEmployer), h.CreateJob)
		authedJobs.PUT("/:jobId", middleware.RoleMiddleware(models.UserRoleEmployer), h.UpdateJob)
		authedJobs.DELETE("/:jobId", middleware.RoleMiddleware(models.UserRoleEmployer), h.DeleteJob)
	}
}

func (h *JobHandler) ListJobs(c *gin.Context) {
	page, pageSize := ParsePagination(c)
	filter := repositories.JobFilter{
		Location:       c.Query("location"),
		EmploymentType: c.Query("employment_type"),
		Keyword:        c.Query("keyword"),
		Page:           page,
		PageSize:       pageSize,
	}

	resp, err := h.jobService.ListJobs(filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *JobHandler) GetJob(c *gin.Context) {
	jobID, ok := h.RequireUUIDParam(c, "jobId")
	if !ok {
		return
	}

	job, err := h.jobService.GetJob(jobID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) CreateJob(c *gin.Context) {
	employerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.jobService.CreateJob(employerID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, job)
}

func (h *JobHandler) GetMyJobs(c *gin.Context) {
	employerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	jobs, err := h.jobService.GetEmployerJobs(employerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

func (h *JobHandler) UpdateJob(c *gin.Context) {
	employerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	jobID, ok := h.RequireUUIDParam(c, "jobId")
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.jobService.UpdateJob(employerID, jobID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) DeleteJob(c *gin.Context) {
	employerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	jobID, ok := h.RequireUUIDParam(c, "jobId")
	if !ok {
		return
	}

	if err := h.jobService.DeleteJob(employerID, jobID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully"})
}

func (h *JobHandler) GetSavedJobs(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	saved, err := h.jobService.GetSavedJobs(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"saved_jobs": saved})
}

func (h *JobHandler) SaveJob(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	jobID, ok := h.RequireUUIDParam(c, "jobId")
	if !ok {
		return
	}

	if err := h.jobService.SaveJob(userID, jobID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job saved"})
}

func (h *JobHandler) UnsaveJob(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	jobID, ok := h.RequireUUIDParam(c, "jobId")
	if !ok {
		return
	}

	if err := h.jobService.UnsaveJob(userID, jobID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job unsaved"})
}
