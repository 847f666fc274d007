package repositories

import (
	"errors"

	"workhive_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

// JobFilter narrows public job listings.
type JobFilter struct {
	Location       string
	EmploymentType string
	Keyword        string
	Page           int
	PageSize       int
}

type JobRepository interface {
	Create(job *models.Job) error
	FindByID(id string) (*models.Job, error)
	Find(filter JobFilter) ([]models.Job, int64, error)
	FindByEmployer(employerID string) ([]models.Job, error)
	Update(job *models.Job) error
	// DeleteWithReferences removes the job together with its applications
	// and saved-job rows in one transaction, so no orphaned references
	// survive a job deletion.
	DeleteWithReferences(id string) error
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

func (r *jobRepository) FindByID(id string) (*models.Job, error) {
	var job models.Job
	err := r.db.First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) Find(filter JobFilter) ([]models.Job, int64, error) {
	query := r.db.Model(&models.Job{}).Where("active = ?", true)

	if filter.Location != "" {
		query = query.Where("location ILIKE ?", "%"+filter.Location+"%")
	}
	if filter.EmploymentType != "" {
		query = query.Where("employment_type = ?", filter.EmploymentType)
	}
	if filter.Keyword != "" {
		kw := "%" + filter.Keyword + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", kw, kw)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	var jobs []models.Job
	err := query.Order("posted_date DESC").Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *jobRepository) FindByEmployer(employerID string) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.Where("employer_id = ?", employerID).
		Order("posted_date DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *jobRepository) Update(job *models.Job) error {
	result := r.db.Save(job)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *jobRepository) DeleteWithReferences(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", id).Delete(&models.Application{}).Error; err != nil {
			return err
		}
		if err := tx.Where("job_id = ?", id).Delete(&models.SavedJob{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Job{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrJobNotFound
		}
		return nil
	})
}
