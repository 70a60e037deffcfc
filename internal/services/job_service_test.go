package services_test

import (
	"context"
	"testing"

	"refspot_backend/internal/models"
	"refspot_backend/internal/services"
	"refspot_backend/internal/services/dto"
	"refspot_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobCreateAndGet(t *testing.T) {
	users := newFakeUserRepo()
	jobs := newFakeJobRepo(users)
	service := services.NewJobService(jobs)
	ctx := context.Background()

	poster := users.add(models.User{Username: "poster", Email: "poster@example.com"})

	created, err := service.Create(ctx, poster.ID, &dto.CreateJobRequest{
		Title:          "Backend Engineer",
		Company:        "Globex",
		Location:       "Berlin",
		Description:    "Build services in Go",
		EmploymentType: "full-time",
	})
	require.NoError(t, err)
	assert.True(t, created.IsActive)

	fetched, err := service.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer", fetched.Title)
	require.NotNil(t, fetched.PostedBy)
	assert.Equal(t, "poster", fetched.PostedBy.Username)

	_, err = service.Get(ctx, 999)
	assert.ErrorIs(t, err, apperrors.ErrJobNotFound)
}

func TestJobListFilters(t *testing.T) {
	users := newFakeUserRepo()
	jobs := newFakeJobRepo(users)
	service := services.NewJobService(jobs)
	ctx := context.Background()

	poster := users.add(models.User{Username: "poster", Email: "poster@example.com"})
	_, err := service.Create(ctx, poster.ID, &dto.CreateJobRequest{
		Title: "Backend Engineer", Company: "Globex", Location: "Berlin", Description: "Go services",
	})
	require.NoError(t, err)
	_, err = service.Create(ctx, poster.ID, &dto.CreateJobRequest{
		Title: "Data Analyst", Company: "Initech", Location: "Remote", Description: "Dashboards",
	})
	require.NoError(t, err)

	all, err := service.List(ctx, &dto.JobFilterQuery{})
	require.NoError(t, err)
	assert.Equal(t, 2, all.Count)

	bySearch, err := service.List(ctx, &dto.JobFilterQuery{Search: "backend"})
	require.NoError(t, err)
	require.Equal(t, 1, bySearch.Count)
	assert.Equal(t, "Backend Engineer", bySearch.Jobs[0].Title)

	byLocation, err := service.List(ctx, &dto.JobFilterQuery{Location: "remote"})
	require.NoError(t, err)
	require.Equal(t, 1, byLocation.Count)
	assert.Equal(t, "Data Analyst", byLocation.Jobs[0].Title)
}

func TestJobDeactivate(t *testing.T) {
	users := newFakeUserRepo()
	jobs := newFakeJobRepo(users)
	service := services.NewJobService(jobs)
	ctx := context.Background()

	poster := users.add(models.User{Username: "poster", Email: "poster@example.com"})
	other := users.add(models.User{Username: "other", Email: "other@example.com"})

	created, err := service.Create(ctx, poster.ID, &dto.CreateJobRequest{
		Title: "Backend Engineer", Company: "Globex", Description: "Go services",
	})
	require.NoError(t, err)

	// only the poster may close it
	assert.ErrorIs(t, service.Deactivate(ctx, other.ID, created.ID), apperrors.ErrForbidden)
	require.NoError(t, service.Deactivate(ctx, poster.ID, created.ID))

	// closed postings drop out of listings but stay fetchable
	list, err := service.List(ctx, &dto.JobFilterQuery{})
	require.NoError(t, err)
	assert.Zero(t, list.Count)

	fetched, err := service.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, fetched.IsActive)
}
