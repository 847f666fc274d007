package services

import (
	"workhive_backend/internal/models"
	"workhive_backend/internal/repositories"
	"workhive_backend/internal/services/dto"
	"workhive_backend/pkg/apperrors"
)

type ReviewService interface {
	// CreateReview lets an employer review a jobseeker once. Reviews are
	// immutable afterwards.
	CreateReview(employerID string, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error)
	// GetJobseekerReviews returns the reviews and the rating aggregate,
	// {average: 0, count: 0} when none exist.
	GetJobseekerReviews(jobseekerID string) (*dto.JobseekerReviewsResponse, error)
	GetRatingStats(jobseekerID string) (*repositories.RatingStats, error)
}

type reviewService struct {
	reviewRepo repositories.ReviewRepository
	userRepo   repositories.UserRepository
}

func NewReviewService(reviewRepo repositories.ReviewRepository, userRepo repositories.UserRepository) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		userRepo:   userRepo,
	}
}

func (s *reviewService) CreateReview(employerID string, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	if employerID == req.JobseekerID {
		return nil, apperrors.ErrInvalidOperation("review", "Cannot review yourself")
	}

	target, err := s.userRepo.FindByID(req.JobseekerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, "review", "Jobseeker not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if target.Role != models.UserRoleJobseeker {
		return nil, apperrors.ErrInvalidOperation("review", "Reviews can only target jobseekers")
	}

	exists, err := s.reviewRepo.ExistsForPair(employerID, req.JobseekerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrConflict(repositories.ErrReviewAlreadyExists, "review", "You have already reviewed this jobseeker")
	}

	review := &models.Review{
		EmployerID:  employerID,
		JobseekerID: req.JobseekerID,
		JobID:       req.JobID,
		Rating:      req.Rating,
		Comment:     req.Comment,
	}

	if err := s.reviewRepo.Create(review); err != nil {
		if apperrors.Is(err, repositories.ErrReviewAlreadyExists) {
			// Concurrent duplicate resolved by the unique index.
			return nil, apperrors.ErrConflict(err, "review", "You have already reviewed this jobseeker")
		}
		return nil, apperrors.InternalError(err)
	}

	return buildReviewResponse(review), nil
}

func (s *reviewService) GetJobseekerReviews(jobseekerID string) (*dto.JobseekerReviewsResponse, error) {
	reviews, err := s.reviewRepo.FindByJobseeker(jobseekerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	stats, err := s.reviewRepo.GetRatingStats(jobseekerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		responses = append(responses, buildReviewResponse(&reviews[i]))
	}

	return &dto.JobseekerReviewsResponse{
		Reviews: responses,
		Average: stats.Average,
		Count:   stats.Count,
	}, nil
}

func (s *reviewService) GetRatingStats(jobseekerID string) (*repositories.RatingStats, error) {
	stats, err := s.reviewRepo.GetRatingStats(jobseekerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return stats, nil
}

func buildReviewResponse(review *models.Review) *dto.ReviewResponse {
	return &dto.ReviewResponse{
		ID:          review.ID,
		EmployerID:  review.EmployerID,
		JobseekerID: review.JobseekerID,
		JobID:       review.JobID,
		Rating:      review.Rating,
		Comment:     review.Comment,
		CreatedAt:   review.CreatedAt,
	}
}
