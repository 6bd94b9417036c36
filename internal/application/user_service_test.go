package application_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinespot/cinespot-api/internal/application"
	"github.com/cinespot/cinespot-api/internal/domain/entity"
)

func newUserService(t *testing.T) (*application.UserService, *memRepo, string) {
	t.Helper()
	repo := newMemRepo()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	u := &entity.User{Email: "ada@example.com", Name: "Ada", Password: "hash"}
	require.NoError(t, repo.Create(context.Background(), u))

	return application.NewUserService(repo, nil, "", logger), repo, u.ID
}

func TestGetProfile(t *testing.T) {
	svc, _, uid := newUserService(t)

	u, err := svc.GetProfile(context.Background(), uid)
	require.NoError(t, err)
	assert.Equal(t, "Ada", u.Name)
	assert.Equal(t, "ada@example.com", u.Email)

	_, err = svc.GetProfile(context.Background(), "ghost")
	wantFailure(t, err, application.KindNotFound, "User not found")
}

func TestUpdateProfileAppliesNonEmptyFields(t *testing.T) {
	svc, repo, uid := newUserService(t)

	u, err := svc.UpdateProfile(context.Background(), uid, application.UpdateProfileInput{Name: "Ada L."})
	require.NoError(t, err)
	assert.Equal(t, "Ada L.", u.Name)

	// Empty fields leave the stored values alone.
	u, err = svc.UpdateProfile(context.Background(), uid, application.UpdateProfileInput{AvatarURL: "https://cdn.example.com/a.png"})
	require.NoError(t, err)
	assert.Equal(t, "Ada L.", u.Name)
	assert.Equal(t, "https://cdn.example.com/a.png", u.AvatarURL)

	stored, err := repo.GetByID(context.Background(), uid)
	require.NoError(t, err)
	assert.Equal(t, "Ada L.", stored.Name)
	assert.Equal(t, "https://cdn.example.com/a.png", stored.AvatarURL)
}

func TestUploadAvatarWithoutStorage(t *testing.T) {
	svc, _, uid := newUserService(t)

	_, err := svc.UploadAvatar(context.Background(), uid, strings.NewReader("img"), "a.png", "image/png")
	wantFailure(t, err, application.KindInfra, "Uploads are not configured")
}
