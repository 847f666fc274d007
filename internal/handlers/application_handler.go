package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"workhive_backend/internal/middleware"
	"workhive_backend/internal/models"
	"workhive_backend/internal/services"
	"workhive_backend/internal/services/dto"
	"workhive_backend/internal/validator"
	"workhive_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(applicationService services.ApplicationService, v *validator.Validator) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        NewBaseHandler(v),
		applicationService: applicationService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(authed *gin.RouterGroup) {
	applications := authed.Group("/applications")
	{
		applications.POST("/jobs/:jobId", middleware.RoleMiddleware(models.UserRoleJobseeker), h.Apply)
		applications.GET("/my", middleware.RoleMiddleware(models.UserRoleJobseeker), h.GetMyApplications)
		applications.GET("/employer", middleware.RoleMiddleware(models.UserRoleEmployer), h.GetEmployerApplications)
		applications.GET("/jobs/:jobId/list", middleware.RoleMiddleware(models.UserRoleEmployer), h.GetJobApplications)
		applications.GET("/:applicationId", h.GetApplication)
		applications.PUT("/:applicationId/status", middleware.RoleMiddleware(models.UserRoleEmployer), h.UpdateStatus)
		applications.DELETE("/:applicationId", middleware.RoleMiddleware(models.UserRoleJobseeker), h.Withdraw)
	}
}

// Apply accepts either a JSON body or a multipart form with an
// optional "resume" file part.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	applicantID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	jobID, ok := h.RequireUUIDParam(c, "jobId")
	if !ok {
		return
	}

	var req dto.CreateApplicationRequest
	var resume *services.ResumeUpload

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		req.CoverLetter = c.PostForm("cover_letter")

		fileHeader, err := c.FormFile("resume")
		if err == nil && fileHeader != nil {
			file, openErr := fileHeader.Open()
			if openErr != nil {
				apperrors.HandleError(c, apperrors.NewBadRequestError("Failed to read resume upload"))
				return
			}
			defer file.Close()

			resume = &services.ResumeUpload{
				Filename:    fileHeader.Filename,
				ContentType: fileHeader.Header.Get("Content-Type"),
				Size:        fileHeader.Size,
				Reader:      file,
			}
		}
	} else if c.Request.ContentLength != 0 {
		// ContentLength is -1 for chunked bodies; only a genuinely
		// empty body counts as applying without a payload.
		if err := c.ShouldBind(&req); err != nil {
			if !errors.Is(err, io.EOF) {
				apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
				return
			}
		} else if !h.validate(c, &req) {
			return
		}
	}

	application, err := h.applicationService.Apply(applicantID, jobID, &req, resume)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, application)
}

func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	requesterID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	applicationID, ok := h.RequireUUIDParam(c, "applicationId")
	if !ok {
		return
	}

	application, err := h.applicationService.GetApplication(requesterID, applicationID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, application)
}

func (h *ApplicationHandler) GetMyApplications(c *gin.Context) {
	applicantID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.applicationService.GetMyApplications(applicantID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ApplicationHandler) GetEmployerApplications(c *gin.Context) {
	employerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.applicationService.GetEmployerApplications(employerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ApplicationHandler) GetJobApplications(c *gin.Context) {
	employerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	jobID, ok := h.RequireUUIDParam(c, "jobId")
	if !ok {
		return
	}

	resp, err := h.applicationService.GetJobApplications(employerID, jobID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	employerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	applicationID, ok := h.RequireUUIDParam(c, "applicationId")
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	err := h.applicationService.UpdateStatus(employerID, applicationID, req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Application status updated"})
}

func (h *ApplicationHandler) Withdraw(c *gin.Context) {
	applicantID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	applicationID, ok := h.RequireUUIDParam(c, "applicationId")
	if !ok {
		return
	}

	if err := h.applicationService.Withdraw(applicantID, applicationID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Application withdrawn"})
}
