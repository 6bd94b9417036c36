package application

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/cinespot/cinespot-api/internal/domain/entity"
	"github.com/cinespot/cinespot-api/internal/domain/repository"
	"github.com/cinespot/cinespot-api/pkg/helpers"
)

// UserService serves profile reads and updates for authenticated users.
type UserService struct {
	Repo      repository.UserRepository
	GCS       *storage.Client
	GCSBucket string
	Logger    *logrus.Logger
}

func NewUserService(repo repository.UserRepository, gcs *storage.Client, gcsBucket string, logger *logrus.Logger) *UserService {
	return &UserService{Repo: repo, GCS: gcs, GCSBucket: gcsBucket, Logger: logger}
}

// GetProfile returns the account behind userID.
func (s *UserService) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFoundErr("User not found")
	} else if err != nil {
		return nil, infraErr("Something went wrong", err)
	}
	return u, nil
}

type UpdateProfileInput struct {
	Name      string
	AvatarURL string
}

// UpdateProfile applies the non-empty fields of in to the account.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*entity.User, error) {
	u, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if in.Name != "" {
		u.Name = in.Name
	}
	if in.AvatarURL != "" {
		u.AvatarURL = in.AvatarURL
	}
	if err := s.Repo.Update(ctx, u); err != nil {
		return nil, infraErr("Something went wrong", err)
	}
	return u, nil
}

// UploadAvatar streams an avatar image into GCS and stores its public URL
// on the profile.
func (s *UserService) UploadAvatar(ctx context.Context, userID string, r io.Reader, filename, contentType string) (string, error) {
	u, err := s.GetProfile(ctx, userID)
	if err != nil {
		return "", err
	}
	if s.GCS == nil || s.GCSBucket == "" {
		return "", infraErr("Uploads are not configured", nil)
	}
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("avatars", userID, uuid.NewString()+ext))
	url, err := helpers.UploadImageToGCS(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return "", infraErr("Upload failed", err)
	}
	u.AvatarURL = url
	if err := s.Repo.Update(ctx, u); err != nil {
		return "", infraErr("Something went wrong", err)
	}
	return url, nil
}
