package repositories

import (
	"testing"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobRepository_FindByID(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewJobRepository()

	location := testutil.CreateLocation(t, db, "Almaty")
	job := &models.Job{Title: "Go developer", LocationID: &location.ID}
	require.NoError(t, repo.Create(db, job))

	found, err := repo.FindByID(db, job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusOpen, found.JobStatus)
	require.NotNil(t, found.Location)
	assert.Equal(t, "Almaty", found.Location.Name)
	assert.Nil(t, found.Category)

	_, err = repo.FindByID(db, "missing")
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestJobRepository_FindJobs(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewJobRepository()

	location := testutil.CreateLocation(t, db, "Remote")
	for i := 0; i < 5; i++ {
		testutil.CreateJob(t, db, "Open job")
	}
	closed := &models.Job{Title: "Closed job", JobStatus: models.JobStatusClosed, LocationID: &location.ID}
	require.NoError(t, repo.Create(db, closed))

	jobs, total, err := repo.FindJobs(db, JobQuery{Page: 1, PageSize: 4})
	require.NoError(t, err)
	assert.Equal(t, int64(6), total)
	assert.Len(t, jobs, 4)

	jobs, total, err = repo.FindJobs(db, JobQuery{Page: 2, PageSize: 4})
	require.NoError(t, err)
	assert.Equal(t, int64(6), total)
	assert.Len(t, jobs, 2)

	jobs, total, err = repo.FindJobs(db, JobQuery{Status: models.JobStatusClosed})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, jobs, 1)
	assert.Equal(t, closed.ID, jobs[0].ID)

	_, total, err = repo.FindJobs(db, JobQuery{LocationID: location.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestJobRepository_UpdateAndDelete(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewJobRepository()

	job := testutil.CreateJob(t, db, "Go developer")

	require.NoError(t, repo.Update(db, job.ID, map[string]interface{}{"title": "Senior Go developer"}))
	found, err := repo.FindByID(db, job.ID)
	require.NoError(t, err)
	assert.Equal(t, "Senior Go developer", found.Title)

	assert.ErrorIs(t, repo.Update(db, "missing", map[string]interface{}{"title": "x"}), ErrJobNotFound)

	require.NoError(t, repo.Delete(db, job.ID))
	assert.ErrorIs(t, repo.Delete(db, job.ID), ErrJobNotFound)
}

func TestJobRepository_FindAllLocations(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewJobRepository()

	testutil.CreateLocation(t, db, "Berlin")
	testutil.CreateLocation(t, db, "Almaty")

	locations, err := repo.FindAllLocations(db)
	require.NoError(t, err)
	require.Len(t, locations, 2)
	assert.Equal(t, "Almaty", locations[0].Name)
	assert.Equal(t, "Berlin", locations[1].Name)
}
