package service

import (
	"testing"

	"nailstudio/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateService_Validation(t *testing.T) {
	svc := NewCatalogService(nil)

	_, err := svc.CreateService("", "", "", "", 2500, 60)
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = svc.CreateService("Manicure", "", "", "", -1, 60)
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = svc.CreateService("Manicure", "", "", "", 2500, -30)
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestUpdateService_Validation(t *testing.T) {
	svc := NewCatalogService(nil)

	price := -100.0
	err := svc.UpdateService(1, nil, nil, nil, nil, &price, nil)
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestDeleteServices_EmptyIDs(t *testing.T) {
	svc := NewCatalogService(nil)

	err := svc.DeleteServices(nil)
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestDeleteServices_RefusedWhenInUse(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM appointments`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	svc := NewCatalogService(repository.NewServiceRepository(mockDB))
	err = svc.DeleteServices([]int{1, 2})
	assert.ErrorIs(t, err, ErrServiceInUse)
}

func TestDeleteServices_DeletesWhenUnreferenced(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM appointments`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec("DELETE FROM services").
		WillReturnResult(sqlmock.NewResult(0, 2))

	svc := NewCatalogService(repository.NewServiceRepository(mockDB))
	require.NoError(t, svc.DeleteServices([]int{1, 2}))
	assert.NoError(t, mock.ExpectationsWereMet())
}
