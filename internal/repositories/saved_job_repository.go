package repositories

import (
	"errors"

	"workhive_backend/internal/models"

	"gorm.io/gorm"
)

var ErrSavedJobNotFound = errors.New("saved job not found")

type SavedJobRepository interface {
	// Save bookmarks the job for the user. Saving an already-saved job
	// succeeds without creating a duplicate row.
	Save(savedJob *models.SavedJob) error
	FindByUser(userID string) ([]models.SavedJob, error)
	Delete(userID, jobID string) error
}

type savedJobRepository struct {
	db *gorm.DB
}

func NewSavedJobRepository(db *gorm.DB) SavedJobRepository {
	return &savedJobRepository{db: db}
}

func (r *savedJobRepository) Save(savedJob *models.SavedJob) error {
	err := r.db.Create(savedJob).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Idempotent in the save direction.
		return nil
	}
	return err
}

func (r *savedJobRepository) FindByUser(userID string) ([]models.SavedJob, error) {
	var saved []models.SavedJob
	err := r.db.Where("user_id = ?", userID).
		Order("saved_date DESC").
		Find(&saved).Error
	return saved, err
}

func (r *savedJobRepository) Delete(userID, jobID string) error {
	result := r.db.Where("user_id = ? AND job_id = ?", userID, jobID).
		Delete(&models.SavedJob{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSavedJobNotFound
	}
	return nil
}
