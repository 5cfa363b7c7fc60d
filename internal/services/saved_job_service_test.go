package services

import (
	"testing"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/testutil"
	"jobboard_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSavedJobService_SaveTwice(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewSavedJobService(repositories.NewSavedJobRepository())
	user := testutil.CreateUser(t, db, "Alice")
	job := testutil.CreateJob(t, db, "Go developer")

	require.NoError(t, svc.SaveJob(db, user.ID, job.ID))

	err := svc.SaveJob(db, user.ID, job.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrJobAlreadySaved)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.HTTPCode)
	assert.Equal(t, "Job already saved", appErr.Message)

	assert.Equal(t, int64(1), testutil.Count(t, db, &models.SavedJob{}))
}

func TestSavedJobService_UnsaveMissing(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewSavedJobService(repositories.NewSavedJobRepository())
	user := testutil.CreateUser(t, db, "Alice")
	job := testutil.CreateJob(t, db, "Go developer")
	other := testutil.CreateJob(t, db, "Designer")
	require.NoError(t, svc.SaveJob(db, user.ID, other.ID))

	require.NoError(t, svc.UnsaveJob(db, user.ID, job.ID))
	assert.Equal(t, int64(1), testutil.Count(t, db, &models.SavedJob{}))
}

func TestSavedJobService_SaveUnsaveList(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewSavedJobService(repositories.NewSavedJobRepository())
	user := testutil.CreateUser(t, db, "Alice")
	job := testutil.CreateJob(t, db, "Go developer")

	require.NoError(t, svc.SaveJob(db, user.ID, job.ID))

	saved, err := svc.ListSavedJobs(db, user.ID)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, job.ID, saved[0].JobID)
	require.NotNil(t, saved[0].Job)
	assert.Equal(t, "Go developer", saved[0].Job.Title)

	require.NoError(t, svc.UnsaveJob(db, user.ID, job.ID))
	saved, err = svc.ListSavedJobs(db, user.ID)
	require.NoError(t, err)
	assert.Empty(t, saved)

	// после удаления можно сохранить снова
	require.NoError(t, svc.SaveJob(db, user.ID, job.ID))
}
