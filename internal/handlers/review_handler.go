package handlers

import (
	"net/http"

	"workhive_backend/internal/middleware"
	"workhive_backend/internal/models"
	"workhive_backend/internal/services"
	"workhive_backend/internal/services/dto"
	"workhive_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	*BaseHandler
	reviewService services.ReviewService
}

func NewReviewHandler(reviewService services.ReviewService, v *validator.Validator) *ReviewHandler {
	return &ReviewHandler{
		BaseHandler:   NewBaseHandler(v),
		reviewService: reviewService,
	}
}

func (h *ReviewHandler) RegisterRoutes(public, authed *gin.RouterGroup) {
	public.GET("/reviews/jobseeker/:jobseekerId", h.GetJobseekerReviews)
	authed.POST("/reviews", middleware.RoleMiddleware(models.UserRoleEmployer), h.CreateReview)
}

func (h *ReviewHandler) CreateReview(c *gin.Context) {
	employerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateReviewRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	review, err := h.reviewService.CreateReview(employerID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, review)
}

func (h *ReviewHandler) GetJobseekerReviews(c *gin.Context) {
	jobseekerID, ok := h.RequireUUIDParam(c, "jobseekerId")
	if !ok {
		return
	}

	resp, err := h.reviewService.GetJobseekerReviews(jobseekerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
