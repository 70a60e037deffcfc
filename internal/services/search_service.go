package services

import (
	"context"
	"strings"

	"refspot_backend/internal/repositories"
	"refspot_backend/internal/services/dto"
	"refspot_backend/pkg/apperrors"
)

type SearchService interface {
	Search(ctx context.Context, userID uint, query *dto.SearchQuery) (*dto.SearchResponse, error)
}

type SearchServiceImpl struct {
	userRepo repositories.UserRepository
	jobRepo  repositories.JobRepository
}

func NewSearchService(userRepo repositories.UserRepository, jobRepo repositories.JobRepository) SearchService {
	return &SearchServiceImpl{userRepo: userRepo, jobRepo: jobRepo}
}

// Search runs the sections selected by Type ("people", "jobs" or "all");
// when no type is given it searches people. An empty query returns empty
// sections rather than everything.
func (s *SearchServiceImpl) Search(ctx context.Context, userID uint, query *dto.SearchQuery) (*dto.SearchResponse, error) {
	searchType := query.Type
	if searchType == "" {
		searchType = "people"
	}

	resp := &dto.SearchResponse{
		Query: query.Q,
		Type:  searchType,
	}

	q := strings.TrimSpace(query.Q)
	if q == "" {
		if searchType == "people" || searchType == "all" {
			resp.People = []dto.UserDTO{}
		}
		if searchType == "jobs" || searchType == "all" {
			resp.Jobs = []dto.JobDTO{}
		}
		return resp, nil
	}

	if searchType == "people" || searchType == "all" {
		users, err := s.userRepo.SearchPeople(q, userID)
		if err != nil {
			return nil, apperrors.DatabaseError(err)
		}
		resp.People = dto.NewUserDTOs(users)
	}

	if searchType == "jobs" || searchType == "all" {
		jobs, err := s.jobRepo.SearchActive(q)
		if err != nil {
			return nil, apperrors.DatabaseError(err)
		}
		resp.Jobs = dto.NewJobDTOs(jobs)
	}

	return resp, nil
}
