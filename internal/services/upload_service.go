package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"refspot_backend/internal/config"
	"refspot_backend/internal/imageprocessor"
	"refspot_backend/internal/logger"
	"refspot_backend/internal/repositories"
	"refspot_backend/internal/storage"
	"refspot_backend/pkg/apperrors"

	"github.com/google/uuid"
)

const (
	profilePhotoFolder = "profile_photos"
	resumeFolder       = "resumes"
	companyLogoFolder  = "company_logos"
)

var imageContentTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
}

type UploadService interface {
	UploadProfilePhoto(ctx context.Context, userID uint, fh *multipart.FileHeader) (string, error)
	RemoveProfilePhoto(ctx context.Context, userID uint) error
	UploadResume(ctx context.Context, userID uint, fh *multipart.FileHeader) (string, error)
	RemoveResume(ctx context.Context, userID uint) error

	// ProfilePhoto and CompanyLogo serve public assets; Resume is gated
	// on the filename belonging to a real user.
	ProfilePhoto(ctx context.Context, filename string) (io.ReadCloser, string, error)
	CompanyLogo(ctx context.Context, filename string) (io.ReadCloser, string, error)
	Resume(ctx context.Context, filename string) (io.ReadCloser, string, error)
}

type UploadServiceImpl struct {
	userRepo  repositories.UserRepository
	store     storage.Storage
	processor *imageprocessor.Processor
	maxSize   int64
}

func NewUploadService(userRepo repositories.UserRepository, store storage.Storage, processor *imageprocessor.Processor, cfg *config.Config) UploadService {
	return &UploadServiceImpl{
		userRepo:  userRepo,
		store:     store,
		processor: processor,
		maxSize:   cfg.Upload.MaxSize,
	}
}

func (s *UploadServiceImpl) UploadProfilePhoto(ctx context.Context, userID uint, fh *multipart.FileHeader) (string, error) {
	if fh == nil || fh.Filename == "" {
		return "", apperrors.ErrNoFile
	}
	if s.maxSize > 0 && fh.Size > s.maxSize {
		return "", apperrors.NewBadRequestError(fmt.Sprintf("File too large, maximum is %d bytes", s.maxSize))
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	contentType, ok := imageContentTypes[ext]
	if !ok {
		return "", apperrors.ErrInvalidImageType
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return "", apperrors.ErrUserNotFound
		}
		return "", apperrors.DatabaseError(err)
	}

	file, err := fh.Open()
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	defer file.Close()

	var reader io.Reader = file
	if ext != ".gif" {
		// bound still photos; animated GIFs are stored untouched
		processed, err := s.processor.ProcessImage(file, imageprocessor.SizeMedium, "")
		if err != nil {
			return "", apperrors.ErrInvalidImageType
		}
		reader = processed
	}

	filename := uuid.NewString() + ext
	path := profilePhotoFolder + "/" + filename
	if err := s.store.Save(ctx, path, reader, contentType); err != nil {
		return "", apperrors.InternalError(err)
	}

	// old photo goes away only after the new one is safely stored
	if user.ProfileImage != "" {
		if err := s.store.Delete(ctx, profilePhotoFolder+"/"+user.ProfileImage); err != nil {
			logger.CtxWarn(ctx, "Failed to delete old profile photo",
				"user_id", userID, "error", err)
		}
	}

	if err := s.userRepo.UpdateProfileImage(userID, filename); err != nil {
		return "", apperrors.DatabaseError(err)
	}

	logger.CtxInfo(ctx, "Profile photo uploaded", "user_id", userID)
	return filename, nil
}

func (s *UploadServiceImpl) RemoveProfilePhoto(ctx context.Context, userID uint) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.DatabaseError(err)
	}
	if user.ProfileImage == "" {
		return apperrors.ErrNoProfilePhoto
	}

	if err := s.store.Delete(ctx, profilePhotoFolder+"/"+user.ProfileImage); err != nil {
		logger.CtxWarn(ctx, "Failed to delete profile photo file",
			"user_id", userID, "error", err)
	}
	if err := s.userRepo.UpdateProfileImage(userID, ""); err != nil {
		return apperrors.DatabaseError(err)
	}
	return nil
}

func (s *UploadServiceImpl) UploadResume(ctx context.Context, userID uint, fh *multipart.FileHeader) (string, error) {
	if fh == nil || fh.Filename == "" {
		return "", apperrors.ErrNoFile
	}
	if s.maxSize > 0 && fh.Size > s.maxSize {
		return "", apperrors.NewBadRequestError(fmt.Sprintf("File too large, maximum is %d bytes", s.maxSize))
	}
	if strings.ToLower(filepath.Ext(fh.Filename)) != ".pdf" {
		return "", apperrors.ErrInvalidResumeType
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return "", apperrors.ErrUserNotFound
		}
		return "", apperrors.DatabaseError(err)
	}

	file, err := fh.Open()
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	defer file.Close()

	filename := strings.ReplaceAll(uuid.NewString(), "-", "")[:12] + "_" + sanitizeFilename(fh.Filename)
	path := resumeFolder + "/" + filename
	if err := s.store.Save(ctx, path, file, "application/pdf"); err != nil {
		return "", apperrors.InternalError(err)
	}

	if user.ResumeFile != "" {
		if err := s.store.Delete(ctx, resumeFolder+"/"+user.ResumeFile); err != nil {
			logger.CtxWarn(ctx, "Failed to delete old resume",
				"user_id", userID, "error", err)
		}
	}

	if err := s.userRepo.UpdateResumeFile(userID, filename); err != nil {
		return "", apperrors.DatabaseError(err)
	}

	logger.CtxInfo(ctx, "Resume uploaded", "user_id", userID)
	return filename, nil
}

func (s *UploadServiceImpl) RemoveResume(ctx context.Context, userID uint) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.DatabaseError(err)
	}
	if user.ResumeFile == "" {
		return apperrors.ErrNoResume
	}

	if err := s.store.Delete(ctx, resumeFolder+"/"+user.ResumeFile); err != nil {
		logger.CtxWarn(ctx, "Failed to delete resume file",
			"user_id", userID, "error", err)
	}
	if err := s.userRepo.UpdateResumeFile(userID, ""); err != nil {
		return apperrors.DatabaseError(err)
	}
	return nil
}

func (s *UploadServiceImpl) ProfilePhoto(ctx context.Context, filename string) (io.ReadCloser, string, error) {
	return s.serve(ctx, profilePhotoFolder, filename)
}

func (s *UploadServiceImpl) CompanyLogo(ctx context.Context, filename string) (io.ReadCloser, string, error) {
	return s.serve(ctx, companyLogoFolder, filename)
}

func (s *UploadServiceImpl) Resume(ctx context.Context, filename string) (io.ReadCloser, string, error) {
	// only resumes actually attached to a profile are downloadable
	if _, err := s.userRepo.FindByResumeFile(filename); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, "", apperrors.ErrFileNotFound
		}
		return nil, "", apperrors.DatabaseError(err)
	}
	return s.serve(ctx, resumeFolder, filename)
}

func (s *UploadServiceImpl) serve(ctx context.Context, folder, filename string) (io.ReadCloser, string, error) {
	// reject traversal attempts in the filename segment
	if filename == "" || filename != filepath.Base(filename) {
		return nil, "", apperrors.ErrFileNotFound
	}

	reader, err := s.store.Get(ctx, folder+"/"+filename)
	if err != nil {
		return nil, "", apperrors.ErrFileNotFound
	}
	return reader, contentTypeFor(filename), nil
}

func contentTypeFor(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ct, ok := imageContentTypes[ext]; ok {
		return ct
	}
	if ext == ".pdf" {
		return "application/pdf"
	}
	return "application/octet-stream"
}

// sanitizeFilename keeps a recognizable original name without letting
// anything unsafe into the stored path.
func sanitizeFilename(name string) string {
	base := filepath.Base(name)
	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
