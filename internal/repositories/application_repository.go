package repositories

import (
	"errors"
	"time"

	"workhive_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateApplication = errors.New("application already exists for this job and applicant")
)

type ApplicationRepository interface {
	Create(application *models.Application) error
	FindByID(id string) (*models.Application, error)
	FindByJob(jobID string) ([]models.Application, error)
	FindByApplicant(applicantID string) ([]models.Application, error)
	FindByEmployer(employerID string) ([]models.Application, error)
	ExistsForJobAndApplicant(jobID, applicantID string) (bool, error)
	UpdateStatus(id string, status models.ApplicationStatus, at time.Time) error
	Delete(id string) error
	CountByJob(jobID string) (int64, error)
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

// Create inserts the application. The compound unique index on
// (job_id, applicant_id) makes the duplicate check atomic: a concurrent
// second apply loses the insert race and gets ErrDuplicateApplication.
func (r *applicationRepository) Create(application *models.Application) error {
	if err := r.db.Create(application).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateApplication
		}
		return err
	}
	return nil
}

func (r *applicationRepository) FindByID(id string) (*models.Application, error) {
	var application models.Application
	err := r.db.First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *applicationRepository) FindByJob(jobID string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.Where("job_id = ?", jobID).
		Order("applied_date DESC").
		Find(&applications).Error
	return applications, err
}

func (r *applicationRepository) FindByApplicant(applicantID string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.Where("applicant_id = ?", applicantID).
		Order("applied_date DESC").
		Find(&applications).Error
	return applications, err
}

func (r *applicationRepository) FindByEmployer(employerID string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.Where("employer_id = ?", employerID).
		Order("applied_date DESC").
		Find(&applications).Error
	return applications, err
}

func (r *applicationRepository) ExistsForJobAndApplicant(jobID, applicantID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Application{}).
		Where("job_id = ? AND applicant_id = ?", jobID, applicantID).
		Count(&count).Error
	return count > 0, err
}

func (r *applicationRepository) UpdateStatus(id string, status models.ApplicationStatus, at time.Time) error {
	result := r.db.Model(&models.Application{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":             status,
			"last_status_update": at,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *applicationRepository) Delete(id string) error {
	result := r.db.Delete(&models.Application{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *applicationRepository) CountByJob(jobID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Application{}).
		Where("job_id = ?", jobID).
		Count(&count).Error
	return count, err
}
