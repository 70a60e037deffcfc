package services

import (
	"context"
	"errors"
	"time"

	"refspot_backend/internal/logger"
	"refspot_backend/internal/logofetcher"
	"refspot_backend/internal/models"
	"refspot_backend/internal/repositories"
	"refspot_backend/internal/services/dto"
	"refspot_backend/pkg/apperrors"
)

type ProfileService interface {
	ViewProfile(ctx context.Context, viewerID uint, username string) (*dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID uint, req *dto.UpdateProfileRequest) (*dto.UserDTO, error)

	AddSkill(ctx context.Context, userID uint, req *dto.AddSkillRequest) (*dto.SkillDTO, error)
	DeleteSkill(ctx context.Context, userID, skillID uint) error

	AddExperience(ctx context.Context, userID uint, req *dto.AddExperienceRequest) (*dto.ExperienceDTO, error)
	UpdateExperience(ctx context.Context, userID, expID uint, req *dto.UpdateExperienceRequest) (*dto.ExperienceDTO, error)
	DeleteExperience(ctx context.Context, userID, expID uint) error

	AddEducation(ctx context.Context, userID uint, req *dto.AddEducationRequest) (*dto.EducationDTO, error)
	UpdateEducation(ctx context.Context, userID, eduID uint, req *dto.UpdateEducationRequest) (*dto.EducationDTO, error)
	DeleteEducation(ctx context.Context, userID, eduID uint) error
}

type ProfileServiceImpl struct {
	userRepo     repositories.UserRepository
	profileRepo  repositories.ProfileRepository
	connRepo     repositories.ConnectionRepository
	referralRepo repositories.ReferralRepository
	logos        logofetcher.Fetcher
}

func NewProfileService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	connRepo repositories.ConnectionRepository,
	referralRepo repositories.ReferralRepository,
	logos logofetcher.Fetcher,
) ProfileService {
	return &ProfileServiceImpl{
		userRepo:     userRepo,
		profileRepo:  profileRepo,
		connRepo:     connRepo,
		referralRepo: referralRepo,
		logos:        logos,
	}
}

func (s *ProfileServiceImpl) ViewProfile(ctx context.Context, viewerID uint, username string) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	skills, err := s.profileRepo.SkillsByUser(user.ID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	exps, err := s.profileRepo.ExperiencesByUser(user.ID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	edus, err := s.profileRepo.EducationsByUser(user.ID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	received, err := s.referralRepo.ReceivedBy(user.ID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	resp := &dto.ProfileResponse{
		User:        dto.NewUserDTO(user),
		Skills:      dto.NewSkillDTOs(skills),
		Experiences: dto.NewExperienceDTOs(exps),
		Educations:  dto.NewEducationDTOs(edus),
		Referrals:   dto.NewReferralDTOs(received),
		IsOwn:       viewerID == user.ID,
	}

	if !resp.IsOwn {
		conn, err := s.connRepo.FindActiveBetween(viewerID, user.ID)
		if err == nil {
			switch conn.Status {
			case models.ConnectionStatusAccepted:
				resp.IsConnected = true
			case models.ConnectionStatusPending:
				resp.HasPendingRequest = true
			}
		} else if !errors.Is(err, repositories.ErrConnectionNotFound) {
			return nil, apperrors.DatabaseError(err)
		}
	}

	return resp, nil
}

func (s *ProfileServiceImpl) UpdateProfile(ctx context.Context, userID uint, req *dto.UpdateProfileRequest) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Headline != nil {
		user.Headline = *req.Headline
	}
	if req.Location != nil {
		user.Location = *req.Location
	}
	if req.About != nil {
		user.About = *req.About
	}
	if req.CurrentCompany != nil {
		user.CurrentCompany = *req.CurrentCompany
	}
	if req.CurrentPosition != nil {
		user.CurrentPosition = *req.CurrentPosition
	}
	if req.JobStatus != nil {
		user.JobStatus = models.JobStatus(*req.JobStatus)
	}
	if req.OpenForReferrals != nil {
		user.OpenForReferrals = *req.OpenForReferrals
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	logger.CtxInfo(ctx, "Profile updated", "user_id", userID)

	userDTO := dto.NewUserDTO(user)
	return &userDTO, nil
}

// Skills

func (s *ProfileServiceImpl) AddSkill(ctx context.Context, userID uint, req *dto.AddSkillRequest) (*dto.SkillDTO, error) {
	exists, err := s.profileRepo.SkillExists(userID, req.SkillName)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	if exists {
		return nil, apperrors.ErrDuplicateSkill
	}

	proficiency := models.ProficiencyIntermediate
	if req.Proficiency != "" {
		proficiency = models.Proficiency(req.Proficiency)
	}

	skill := &models.UserSkill{
		UserID:      userID,
		SkillName:   req.SkillName,
		Proficiency: proficiency,
	}
	if err := s.profileRepo.CreateSkill(skill); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	skillDTO := dto.NewSkillDTO(skill)
	return &skillDTO, nil
}

func (s *ProfileServiceImpl) DeleteSkill(ctx context.Context, userID, skillID uint) error {
	if err := s.profileRepo.DeleteSkill(skillID, userID); err != nil {
		if errors.Is(err, repositories.ErrSkillNotFound) {
			return apperrors.ErrSkillNotFound
		}
		return apperrors.DatabaseError(err)
	}
	return nil
}

// Experiences

func (s *ProfileServiceImpl) AddExperience(ctx context.Context, userID uint, req *dto.AddExperienceRequest) (*dto.ExperienceDTO, error) {
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid start date")
	}

	exp := &models.Experience{
		UserID:      userID,
		Company:     req.Company,
		Position:    req.Position,
		StartDate:   startDate,
		Current:     req.Current,
		Description: req.Description,
		Location:    req.Location,
	}
	if req.EmploymentType != "" {
		exp.EmploymentType = models.EmploymentType(req.EmploymentType)
	}
	if !req.Current && req.EndDate != "" {
		endDate, err := parseDate(req.EndDate)
		if err != nil {
			return nil, apperrors.NewBadRequestError("Invalid end date")
		}
		exp.EndDate = endDate
	}

	// best-effort, the experience saves fine without a logo
	exp.CompanyLogo = s.logos.Fetch(ctx, req.Company)

	if err := s.profileRepo.CreateExperience(exp); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	expDTO := dto.NewExperienceDTO(exp)
	return &expDTO, nil
}

func (s *ProfileServiceImpl) UpdateExperience(ctx context.Context, userID, expID uint, req *dto.UpdateExperienceRequest) (*dto.ExperienceDTO, error) {
	exp, err := s.profileRepo.FindExperience(expID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrExperienceNotFound) {
			return nil, apperrors.ErrExperienceNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	if req.Company != nil && *req.Company != exp.Company {
		// company changed: drop the stale logo and look up a fresh one
		s.logos.Delete(ctx, exp.CompanyLogo)
		exp.Company = *req.Company
		exp.CompanyLogo = s.logos.Fetch(ctx, exp.Company)
	}
	if req.Position != nil {
		exp.Position = *req.Position
	}
	if req.StartDate != nil {
		startDate, err := parseDate(*req.StartDate)
		if err != nil {
			return nil, apperrors.NewBadRequestError("Invalid start date")
		}
		exp.StartDate = startDate
	}
	if req.Current != nil {
		exp.Current = *req.Current
	}
	if req.EndDate != nil {
		if *req.EndDate == "" {
			exp.EndDate = nil
		} else {
			endDate, err := parseDate(*req.EndDate)
			if err != nil {
				return nil, apperrors.NewBadRequestError("Invalid end date")
			}
			exp.EndDate = endDate
		}
	}
	if exp.Current {
		exp.EndDate = nil
	}
	if req.EmploymentType != nil {
		exp.EmploymentType = models.EmploymentType(*req.EmploymentType)
	}
	if req.Description != nil {
		exp.Description = *req.Description
	}
	if req.Location != nil {
		exp.Location = *req.Location
	}

	if err := s.profileRepo.UpdateExperience(exp); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	expDTO := dto.NewExperienceDTO(exp)
	return &expDTO, nil
}

func (s *ProfileServiceImpl) DeleteExperience(ctx context.Context, userID, expID uint) error {
	exp, err := s.profileRepo.FindExperience(expID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrExperienceNotFound) {
			return apperrors.ErrExperienceNotFound
		}
		return apperrors.DatabaseError(err)
	}

	if err := s.profileRepo.DeleteExperience(expID, userID); err != nil {
		return apperrors.DatabaseError(err)
	}

	s.logos.Delete(ctx, exp.CompanyLogo)
	return nil
}

// Education

func (s *ProfileServiceImpl) AddEducation(ctx context.Context, userID uint, req *dto.AddEducationRequest) (*dto.EducationDTO, error) {
	edu := &models.Education{
		UserID:       userID,
		Institution:  req.Institution,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		StartYear:    req.StartYear,
		EndYear:      req.EndYear,
		Current:      req.Current,
	}
	if edu.Current {
		edu.EndYear = 0
	}
	if err := s.profileRepo.CreateEducation(edu); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	eduDTO := dto.NewEducationDTO(edu)
	return &eduDTO, nil
}

func (s *ProfileServiceImpl) UpdateEducation(ctx context.Context, userID, eduID uint, req *dto.UpdateEducationRequest) (*dto.EducationDTO, error) {
	edu, err := s.profileRepo.FindEducation(eduID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrEducationNotFound) {
			return nil, apperrors.ErrEducationNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	if req.Institution != nil {
		edu.Institution = *req.Institution
	}
	if req.Degree != nil {
		edu.Degree = *req.Degree
	}
	if req.FieldOfStudy != nil {
		edu.FieldOfStudy = *req.FieldOfStudy
	}
	if req.StartYear != nil {
		edu.StartYear = *req.StartYear
	}
	if req.EndYear != nil {
		edu.EndYear = *req.EndYear
	}
	if req.Current != nil {
		edu.Current = *req.Current
	}
	if edu.Current {
		edu.EndYear = 0
	}

	if err := s.profileRepo.UpdateEducation(edu); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	eduDTO := dto.NewEducationDTO(edu)
	return &eduDTO, nil
}

func (s *ProfileServiceImpl) DeleteEducation(ctx context.Context, userID, eduID uint) error {
	if err := s.profileRepo.DeleteEducation(eduID, userID); err != nil {
		if errors.Is(err, repositories.ErrEducationNotFound) {
			return apperrors.ErrEducationNotFound
		}
		return apperrors.DatabaseError(err)
	}
	return nil
}

// parseDate accepts full dates and year-month values.
func parseDate(value string) (*time.Time, error) {
	for _, layout := range []string{"2006-01-02", "2006-01"} {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, nil
		}
	}
	return nil, errors.New("unrecognized date format")
}
