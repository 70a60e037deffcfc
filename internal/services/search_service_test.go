package services_test

import (
	"context"
	"testing"

	"refspot_backend/internal/models"
	"refspot_backend/internal/services"
	"refspot_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSearchFixture(t *testing.T) (*fakeUserRepo, services.SearchService, *models.User) {
	t.Helper()

	users := newFakeUserRepo()
	jobs := newFakeJobRepo(users)

	viewer := users.add(models.User{Username: "viewer", Email: "viewer@example.com", Headline: "Go developer"})
	users.add(models.User{Username: "gopher", Email: "gopher@example.com", Headline: "Go developer"})
	users.add(models.User{Username: "artist", Email: "artist@example.com", Headline: "Painter"})

	require.NoError(t, jobs.Create(&models.JobPosting{
		Title: "Go Engineer", Company: "Globex", Description: "Services", IsActive: true,
	}))
	require.NoError(t, jobs.Create(&models.JobPosting{
		Title: "Recruiter", Company: "Initech", Description: "People", IsActive: true,
	}))

	return users, services.NewSearchService(users, jobs), viewer
}

func TestSearchAll(t *testing.T) {
	_, service, viewer := newSearchFixture(t)

	resp, err := service.Search(context.Background(), viewer.ID, &dto.SearchQuery{Q: "go", Type: "all"})
	require.NoError(t, err)
	assert.Equal(t, "all", resp.Type)

	// the searcher never shows up in their own results
	require.Len(t, resp.People, 1)
	assert.Equal(t, "gopher", resp.People[0].Username)

	require.Len(t, resp.Jobs, 1)
	assert.Equal(t, "Go Engineer", resp.Jobs[0].Title)
}

func TestSearchDefaultsToPeople(t *testing.T) {
	_, service, viewer := newSearchFixture(t)

	resp, err := service.Search(context.Background(), viewer.ID, &dto.SearchQuery{Q: "go"})
	require.NoError(t, err)
	assert.Equal(t, "people", resp.Type)
	assert.Len(t, resp.People, 1)
	assert.Nil(t, resp.Jobs)
}

func TestSearchPeopleOnly(t *testing.T) {
	_, service, viewer := newSearchFixture(t)

	resp, err := service.Search(context.Background(), viewer.ID, &dto.SearchQuery{Q: "go", Type: "people"})
	require.NoError(t, err)
	assert.Len(t, resp.People, 1)
	assert.Nil(t, resp.Jobs)
}

func TestSearchJobsOnly(t *testing.T) {
	_, service, viewer := newSearchFixture(t)

	resp, err := service.Search(context.Background(), viewer.ID, &dto.SearchQuery{Q: "globex", Type: "jobs"})
	require.NoError(t, err)
	assert.Nil(t, resp.People)
	assert.Len(t, resp.Jobs, 1)
}

func TestSearchEmptyQuery(t *testing.T) {
	_, service, viewer := newSearchFixture(t)

	resp, err := service.Search(context.Background(), viewer.ID, &dto.SearchQuery{Q: "   ", Type: "all"})
	require.NoError(t, err)
	assert.Empty(t, resp.People)
	assert.Empty(t, resp.Jobs)
	assert.NotNil(t, resp.People)
	assert.NotNil(t, resp.Jobs)
}
