package services

import (
	"encoding/json"
	"time"

	"workhive_backend/internal/logger"
	"workhive_backend/internal/models"
	"workhive_backend/internal/repositories"
	"workhive_backend/internal/services/dto"
	"workhive_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

// UnknownJobTitle is the placeholder read paths fall back to when a
// referenced job no longer exists.
const UnknownJobTitle = "Unknown Job"

type JobService interface {
	CreateJob(employerID string, req *dto.CreateJobRequest) (*dto.JobResponse, error)
	GetJob(jobID string) (*dto.JobResponse, error)
	ListJobs(filter repositories.JobFilter) (*dto.JobListResponse, error)
	GetEmployerJobs(employerID string) ([]*dto.JobResponse, error)
	UpdateJob(employerID, jobID string, req *dto.UpdateJobRequest) (*dto.JobResponse, error)
	// DeleteJob removes the job and cascades its applications and
	// saved-job rows in one transaction.
	DeleteJob(employerID, jobID string) error

	SaveJob(userID, jobID string) error
	UnsaveJob(userID, jobID string) error
	GetSavedJobs(userID string) ([]*dto.SavedJobResponse, error)
}

type jobService struct {
	jobRepo         repositories.JobRepository
	applicationRepo repositories.ApplicationRepository
	savedJobRepo    repositories.SavedJobRepository
}

func NewJobService(
	jobRepo repositories.JobRepository,
	applicationRepo repositories.ApplicationRepository,
	savedJobRepo repositories.SavedJobRepository,
) JobService {
	return &jobService{
		jobRepo:         jobRepo,
		applicationRepo: applicationRepo,
		savedJobRepo:    savedJobRepo,
	}
}

// ---------------- Job CRUD ----------------

func (s *jobService) CreateJob(employerID string, req *dto.CreateJobRequest) (*dto.JobResponse, error) {
	requirements, err := marshalRequirements(req.Requirements)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	job := &models.Job{
		EmployerID:     employerID,
		Title:          req.Title,
		Description:    req.Description,
		Salary:         req.Salary,
		SalaryPeriod:   req.SalaryPeriod,
		EmploymentType: req.EmploymentType,
		Location:       req.Location,
		Requirements:   requirements,
		PostedDate:     time.Now(),
		Active:         true,
	}

	if err := s.jobRepo.Create(job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.buildJobResponse(job, false), nil
}

func (s *jobService) GetJob(jobID string) (*dto.JobResponse, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err, "job", "Job not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return s.buildJobResponse(job, true), nil
}

func (s *jobService) ListJobs(filter repositories.JobFilter) (*dto.JobListResponse, error) {
	jobs, total, err := s.jobRepo.Find(filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		responses = append(responses, s.buildJobResponse(&jobs[i], false))
	}

	totalPages := 0
	if filter.PageSize > 0 {
		totalPages = int((total + int64(filter.PageSize) - 1) / int64(filter.PageSize))
	}

	return &dto.JobListResponse{
		Jobs:       responses,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
	}, nil
}

func (s *jobService) GetEmployerJobs(employerID string) ([]*dto.JobResponse, error) {
	jobs, err := s.jobRepo.FindByEmployer(employerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		responses = append(responses, s.buildJobResponse(&jobs[i], true))
	}
	return responses, nil
}

func (s *jobService) UpdateJob(employerID, jobID string, req *dto.UpdateJobRequest) (*dto.JobResponse, error) {
	job, err := s.findOwnedJob(employerID, jobID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Salary != nil {
		job.Salary = *req.Salary
	}
	if req.SalaryPeriod != nil {
		job.SalaryPeriod = *req.SalaryPeriod
	}
	if req.EmploymentType != nil {
		job.EmploymentType = *req.EmploymentType
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.Requirements != nil {
		requirements, err := marshalRequirements(req.Requirements)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		job.Requirements = requirements
	}
	if req.Active != nil {
		job.Active = *req.Active
	}

	if err := s.jobRepo.Update(job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.buildJobResponse(job, true), nil
}

func (s *jobService) DeleteJob(employerID, jobID string) error {
	if _, err := s.findOwnedJob(employerID, jobID); err != nil {
		return err
	}

	if err := s.jobRepo.DeleteWithReferences(jobID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// ---------------- Saved jobs ----------------

func (s *jobService) SaveJob(userID, jobID string) error {
	if _, err := s.jobRepo.FindByID(jobID); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrNotFound(err, "job", "Job not found")
		}
		return apperrors.InternalError(err)
	}

	saved := &models.SavedJob{
		UserID:    userID,
		JobID:     jobID,
		SavedDate: time.Now(),
	}
	if err := s.savedJobRepo.Save(saved); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *jobService) UnsaveJob(userID, jobID string) error {
	if err := s.savedJobRepo.Delete(userID, jobID); err != nil {
		if apperrors.Is(err, repositories.ErrSavedJobNotFound) {
			return apperrors.ErrNotFound(err, "saved_job", "Saved job not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *jobService) GetSavedJobs(userID string) ([]*dto.SavedJobResponse, error) {
	saved, err := s.savedJobRepo.FindByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.SavedJobResponse, 0, len(saved))
	for i := range saved {
		resp := &dto.SavedJobResponse{
			ID:        saved[i].ID,
			JobID:     saved[i].JobID,
			SavedDate: saved[i].SavedDate,
		}
		// A bookmark can outlive its job; degrade instead of failing
		// the whole listing.
		if job, err := s.jobRepo.FindByID(saved[i].JobID); err == nil {
			resp.Job = s.buildJobResponse(job, false)
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// ---------------- Helpers ----------------

func (s *jobService) findOwnedJob(employerID, jobID string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err, "job", "Job not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if job.EmployerID != employerID {
		return nil, apperrors.NewForbiddenError("Not the owner of this job")
	}
	return job, nil
}

func (s *jobService) buildJobResponse(job *models.Job, withCount bool) *dto.JobResponse {
	resp := &dto.JobResponse{
		ID:             job.ID,
		EmployerID:     job.EmployerID,
		Title:          job.Title,
		Description:    job.Description,
		Salary:         job.Salary,
		SalaryPeriod:   job.SalaryPeriod,
		EmploymentType: job.EmploymentType,
		Location:       job.Location,
		Requirements:   unmarshalRequirements(job.Requirements),
		PostedDate:     job.PostedDate,
		Active:         job.Active,
	}

	if withCount {
		count, err := s.applicationRepo.CountByJob(job.ID)
		if err != nil {
			logger.Warn("application count failed", "job_id", job.ID, "error", err.Error())
		} else {
			resp.ApplicationCount = count
		}
	}
	return resp
}

func marshalRequirements(requirements []string) (datatypes.JSON, error) {
	if requirements == nil {
		requirements = []string{}
	}
	raw, err := json.Marshal(requirements)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

func unmarshalRequirements(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var requirements []string
	if err := json.Unmarshal(raw, &requirements); err != nil {
		return []string{}
	}
	return requirements
}
