package repository

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockServiceRepo(t *testing.T) (*ServiceRepository, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return NewServiceRepository(mockDB), mock
}

func TestGetServiceDuration(t *testing.T) {
	repo, mock := newMockServiceRepo(t)

	mock.ExpectQuery("SELECT duration FROM services").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"duration"}).AddRow(90))

	duration, err := repo.GetServiceDuration(7)
	require.NoError(t, err)
	assert.Equal(t, 90, duration)
}

func TestGetServiceDuration_NotFound(t *testing.T) {
	repo, mock := newMockServiceRepo(t)

	mock.ExpectQuery("SELECT duration FROM services").
		WithArgs(42).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetServiceDuration(42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCountActiveAppointmentsForServices(t *testing.T) {
	repo, mock := newMockServiceRepo(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM appointments WHERE service_id = ANY\(\$1\) AND status != 'cancelled'`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountActiveAppointmentsForServices([]int{1, 2})
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestUpdateService_NoFields(t *testing.T) {
	repo, _ := newMockServiceRepo(t)

	err := repo.UpdateService(1, nil, nil, nil, nil, nil, nil)
	assert.Error(t, err)
}
