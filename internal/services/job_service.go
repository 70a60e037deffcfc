package services

import (
	"context"
	"errors"

	"refspot_backend/internal/logger"
	"refspot_backend/internal/models"
	"refspot_backend/internal/repositories"
	"refspot_backend/internal/services/dto"
	"refspot_backend/pkg/apperrors"
)

type JobService interface {
	List(ctx context.Context, filter *dto.JobFilterQuery) (*dto.JobListResponse, error)
	Get(ctx context.Context, jobID uint) (*dto.JobDTO, error)
	Create(ctx context.Context, userID uint, req *dto.CreateJobRequest) (*dto.JobDTO, error)
	Deactivate(ctx context.Context, userID, jobID uint) error
}

type JobServiceImpl struct {
	jobRepo repositories.JobRepository
}

func NewJobService(jobRepo repositories.JobRepository) JobService {
	return &JobServiceImpl{jobRepo: jobRepo}
}

func (s *JobServiceImpl) List(ctx context.Context, filter *dto.JobFilterQuery) (*dto.JobListResponse, error) {
	jobs, err := s.jobRepo.ActiveWithFilter(filter.Search, filter.Location)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return &dto.JobListResponse{Jobs: dto.NewJobDTOs(jobs), Count: len(jobs)}, nil
}

func (s *JobServiceImpl) Get(ctx context.Context, jobID uint) (*dto.JobDTO, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}
	jobDTO := dto.NewJobDTO(job)
	return &jobDTO, nil
}

func (s *JobServiceImpl) Create(ctx context.Context, userID uint, req *dto.CreateJobRequest) (*dto.JobDTO, error) {
	job := &models.JobPosting{
		Title:        req.Title,
		Company:      req.Company,
		Location:     req.Location,
		Description:  req.Description,
		Requirements: req.Requirements,
		SalaryRange:  req.SalaryRange,
		PostedByID:   userID,
		IsActive:     true,
	}
	if req.EmploymentType != "" {
		job.EmploymentType = req.EmploymentType
	}
	if err := s.jobRepo.Create(job); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	logger.CtxInfo(ctx, "Job posted", "job_id", job.ID, "title", job.Title)

	jobDTO := dto.NewJobDTO(job)
	return &jobDTO, nil
}

// Deactivate closes a posting. Soft only, the row stays for history.
func (s *JobServiceImpl) Deactivate(ctx context.Context, userID, jobID uint) error {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrJobNotFound
		}
		return apperrors.DatabaseError(err)
	}
	if job.PostedByID != userID {
		return apperrors.ErrForbidden
	}

	if err := s.jobRepo.Deactivate(jobID); err != nil {
		return apperrors.DatabaseError(err)
	}

	logger.CtxInfo(ctx, "Job deactivated", "job_id", jobID)
	return nil
}
