package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"workhive_backend/internal/models"
	"workhive_backend/internal/repositories"
	"workhive_backend/internal/services/dto"
	"workhive_backend/internal/storage"
	"workhive_backend/pkg/apperrors"

	"github.com/google/uuid"
)

// ResumeUpload is an optional attachment handed in with an application.
type ResumeUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// ResumeConfig bounds what resumes are accepted.
type ResumeConfig struct {
	MaxSize      int64
	AllowedTypes []string
}

type ApplicationService interface {
	// Apply creates an application for (jobID, applicantID). The
	// application insert is the durable step; the job_application
	// notification fans out afterwards, best-effort.
	Apply(applicantID, jobID string, req *dto.CreateApplicationRequest, resume *ResumeUpload) (*dto.ApplicationResponse, error)

	GetApplication(requesterID, applicationID string) (*dto.ApplicationResponse, error)
	GetMyApplications(applicantID string) (*dto.ApplicationListResponse, error)
	GetEmployerApplications(employerID string) (*dto.ApplicationListResponse, error)
	GetJobApplications(employerID, jobID string) (*dto.ApplicationListResponse, error)

	// UpdateStatus transitions an application within the closed status
	// set and notifies the applicant with the fresh job title.
	UpdateStatus(employerID, applicationID string, newStatus models.ApplicationStatus) error

	// Withdraw deletes the application. Applicant-only, Pending-only.
	Withdraw(applicantID, applicationID string) error
}

type applicationService struct {
	applicationRepo repositories.ApplicationRepository
	jobRepo         repositories.JobRepository
	userRepo        repositories.UserRepository
	notifications   NotificationService
	files           storage.Storage
	resumeConfig    ResumeConfig
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	userRepo repositories.UserRepository,
	notifications NotificationService,
	files storage.Storage,
	resumeConfig ResumeConfig,
) ApplicationService {
	return &applicationService{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		userRepo:        userRepo,
		notifications:   notifications,
		files:           files,
		resumeConfig:    resumeConfig,
	}
}

// ---------------- Apply ----------------

func (s *applicationService) Apply(applicantID, jobID string, req *dto.CreateApplicationRequest, resume *ResumeUpload) (*dto.ApplicationResponse, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err, "job", "Job not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if !job.Active {
		return nil, apperrors.ErrConflict(nil, "application", "Job is no longer accepting applications")
	}
	if job.EmployerID == applicantID {
		return nil, apperrors.ErrInvalidOperation("application", "Cannot apply to your own job")
	}

	applicant, err := s.userRepo.FindByID(applicantID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, "user", "Applicant not found")
		}
		return nil, apperrors.InternalError(err)
	}

	exists, err := s.applicationRepo.ExistsForJobAndApplicant(jobID, applicantID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrConflict(repositories.ErrDuplicateApplication, "application", "You have already applied to this job")
	}

	// The resume goes to storage before the insert; if the insert fails
	// afterwards the file is orphaned, which is accepted.
	var resumePath string
	if resume != nil {
		resumePath, err = s.storeResume(applicantID, resume)
		if err != nil {
			return nil, err
		}
	}

	application := &models.Application{
		JobID:       jobID,
		ApplicantID: applicantID,
		// Snapshots: keep the record renderable after later job or
		// profile mutations.
		EmployerID:    job.EmployerID,
		ApplicantName: applicant.Name,
		CoverLetter:   req.CoverLetter,
		Status:        models.ApplicationStatusPending,
		ResumePath:    resumePath,
		AppliedDate:   time.Now(),
	}

	if err := s.applicationRepo.Create(application); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicateApplication) {
			// Lost the insert race; same outcome as the pre-check.
			return nil, apperrors.ErrConflict(err, "application", "You have already applied to this job")
		}
		return nil, apperrors.InternalError(err)
	}

	// The application is durable at this point. Fan-out is best-effort.
	s.notifications.NotifyNewApplication(job.EmployerID, job, application)

	return s.buildApplicationResponse(application), nil
}

func (s *applicationService) storeResume(applicantID string, resume *ResumeUpload) (string, error) {
	if s.resumeConfig.MaxSize > 0 && resume.Size > s.resumeConfig.MaxSize {
		return "", apperrors.ErrFileTooLarge
	}
	if len(s.resumeConfig.AllowedTypes) > 0 && !contains(s.resumeConfig.AllowedTypes, resume.ContentType) {
		return "", apperrors.ErrInvalidFileType
	}

	// Randomized suffix plus timestamp keeps concurrent uploads from
	// colliding on the same original filename.
	ext := filepath.Ext(resume.Filename)
	name := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), uuid.NewString()[:8], ext)
	path := filepath.Join("resumes", applicantID, name)

	if err := s.files.Save(context.Background(), path, resume.Reader, resume.ContentType); err != nil {
		return "", apperrors.InternalError(err)
	}
	return path, nil
}

// ---------------- Reads ----------------

func (s *applicationService) GetApplication(requesterID, applicationID string) (*dto.ApplicationResponse, error) {
	application, err := s.findApplication(applicationID)
	if err != nil {
		return nil, err
	}
	if application.ApplicantID != requesterID && application.EmployerID != requesterID {
		return nil, apperrors.NewForbiddenError("Not a party to this application")
	}
	return s.buildApplicationResponse(application), nil
}

func (s *applicationService) GetMyApplications(applicantID string) (*dto.ApplicationListResponse, error) {
	applications, err := s.applicationRepo.FindByApplicant(applicantID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.buildApplicationList(applications), nil
}

func (s *applicationService) GetEmployerApplications(employerID string) (*dto.ApplicationListResponse, error) {
	applications, err := s.applicationRepo.FindByEmployer(employerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.buildApplicationList(applications), nil
}

func (s *applicationService) GetJobApplications(employerID, jobID string) (*dto.ApplicationListResponse, error) {
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

	applications, err := s.applicationRepo.FindByJob(jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.buildApplicationList(applications), nil
}

// ---------------- Status transitions ----------------

func (s *applicationService) UpdateStatus(employerID, applicationID string, newStatus models.ApplicationStatus) error {
	if !models.IsValidApplicationStatus(newStatus) {
		return apperrors.ErrInvalidStatus("application", "Invalid application status")
	}

	application, err := s.findApplication(applicationID)
	if err != nil {
		return err
	}
	if application.EmployerID != employerID {
		return apperrors.NewForbiddenError("Not the employer for this application")
	}

	oldStatus := application.Status
	if err := s.applicationRepo.UpdateStatus(applicationID, newStatus, time.Now()); err != nil {
		return apperrors.InternalError(err)
	}
	application.Status = newStatus

	// Title is looked up fresh so edits are reflected; a deleted job
	// degrades to the placeholder.
	s.notifications.NotifyApplicationStatus(application, s.lookupJobTitle(application.JobID), oldStatus, newStatus)

	return nil
}

// ---------------- Withdrawal ----------------

func (s *applicationService) Withdraw(applicantID, applicationID string) error {
	application, err := s.findApplication(applicationID)
	if err != nil {
		return err
	}
	if application.ApplicantID != applicantID {
		return apperrors.NewForbiddenError("Not the applicant for this application")
	}
	if application.Status != models.ApplicationStatusPending {
		return apperrors.ErrConflict(nil, "application",
			fmt.Sprintf("Only pending applications can be withdrawn (current status: %s)", application.Status))
	}

	if err := s.applicationRepo.Delete(applicationID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// ---------------- Helpers ----------------

func (s *applicationService) findApplication(applicationID string) (*models.Application, error) {
	application, err := s.applicationRepo.FindByID(applicationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err, "application", "Application not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return application, nil
}

func (s *applicationService) lookupJobTitle(jobID string) string {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		return UnknownJobTitle
	}
	return job.Title
}

func (s *applicationService) buildApplicationList(applications []models.Application) *dto.ApplicationListResponse {
	responses := make([]*dto.ApplicationResponse, 0, len(applications))
	for i := range applications {
		responses = append(responses, s.buildApplicationResponse(&applications[i]))
	}
	return &dto.ApplicationListResponse{
		Applications: responses,
		Total:        len(responses),
	}
}

func (s *applicationService) buildApplicationResponse(application *models.Application) *dto.ApplicationResponse {
	return &dto.ApplicationResponse{
		ID:               application.ID,
		JobID:            application.JobID,
		ApplicantID:      application.ApplicantID,
		EmployerID:       application.EmployerID,
		ApplicantName:    application.ApplicantName,
		CoverLetter:      application.CoverLetter,
		Status:           application.Status,
		ResumePath:       application.ResumePath,
		AppliedDate:      application.AppliedDate,
		LastStatusUpdate: application.LastStatusUpdate,
		JobTitle:         s.lookupJobTitle(application.JobID),
	}
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if strings.EqualFold(item, v) {
			return true
		}
	}
	return false
}
