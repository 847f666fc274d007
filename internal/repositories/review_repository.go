package repositories

import (
	"errors"

	"workhive_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrReviewNotFound      = errors.New("review not found")
	ErrReviewAlreadyExists = errors.New("review already exists for this jobseeker")
)

// RatingStats is the aggregate over all reviews of one jobseeker.
type RatingStats struct {
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}

type ReviewRepository interface {
	Create(review *models.Review) error
	FindByID(id string) (*models.Review, error)
	FindByJobseeker(jobseekerID string) ([]models.Review, error)
	ExistsForPair(employerID, jobseekerID string) (bool, error)
	// GetRatingStats returns {0, 0} when the jobseeker has no reviews.
	GetRatingStats(jobseekerID string) (*RatingStats, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// Create relies on the (employer_id, jobseeker_id) unique index, so a race
// between two identical reviews resolves at the store instead of producing
// duplicates.
func (r *reviewRepository) Create(review *models.Review) error {
	if err := r.db.Create(review).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrReviewAlreadyExists
		}
		return err
	}
	return nil
}

func (r *reviewRepository) FindByID(id string) (*models.Review, error) {
	var review models.Review
	err := r.db.First(&review, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) FindByJobseeker(jobseekerID string) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Where("jobseeker_id = ?", jobseekerID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepository) ExistsForPair(employerID, jobseekerID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Review{}).
		Where("employer_id = ? AND jobseeker_id = ?", employerID, jobseekerID).
		Count(&count).Error
	return count > 0, err
}

func (r *reviewRepository) GetRatingStats(jobseekerID string) (*RatingStats, error) {
	var stats RatingStats
	err := r.db.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS average, COUNT(*) AS count").
		Where("jobseeker_id = ?", jobseekerID).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
