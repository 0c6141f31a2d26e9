package repository

import (
	"database/sql"
	"testing"
	"time"

	"nailstudio/internal/db"
	"nailstudio/internal/entities"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*AppointmentRepository, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return NewAppointmentRepository(mockDB), mock
}

func TestListActiveAppointments(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT to_char\(a\.appointment_time, 'HH24:MI'\), COALESCE\(s\.duration, 0\)(.|\s)+status != 'cancelled'`).
		WithArgs("2024-06-10").
		WillReturnRows(sqlmock.NewRows([]string{"to_char", "coalesce"}).
			AddRow("11:00", 60).
			AddRow("15:30", 0))

	booked, err := repo.ListActiveAppointments("2024-06-10")
	require.NoError(t, err)
	assert.Equal(t, []entities.BookedAppointment{
		{Time: "11:00", DurationMinutes: 60},
		{Time: "15:30", DurationMinutes: 0},
	}, booked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListActiveAppointments_EmptyDay(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("FROM appointments a").
		WithArgs("2024-06-11").
		WillReturnRows(sqlmock.NewRows([]string{"to_char", "coalesce"}))

	booked, err := repo.ListActiveAppointments("2024-06-11")
	require.NoError(t, err)
	assert.Empty(t, booked)
}

func TestCreateAppointment_ReturnsGeneratedFields(t *testing.T) {
	repo, mock := newMockRepo(t)

	now := time.Now()
	mock.ExpectQuery("INSERT INTO appointments").
		WithArgs("Anna", "+79990001122", sqlmock.AnyArg(), sqlmock.AnyArg(),
			"2026-09-10", "12:00", "pending", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(42, now, now))

	appt := &db.Appointment{
		ClientName:      "Anna",
		ClientPhone:     "+79990001122",
		ServiceID:       sql.NullInt64{Int64: 7, Valid: true},
		AppointmentDate: "2026-09-10",
		AppointmentTime: "12:00",
		Status:          "pending",
	}
	require.NoError(t, repo.CreateAppointment(appt))
	assert.Equal(t, 42, appt.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAppointmentByID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("FROM appointments a").
		WithArgs(99).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetAppointmentByID(99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListAppointments_Filters(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`WHERE 1=1 AND a\.appointment_date = \$1 AND a\.status = \$2`).
		WithArgs("2024-06-10", "confirmed").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "client_name", "client_phone", "client_email",
			"service_id", "name", "price", "duration",
			"appointment_date", "appointment_time",
			"status", "notes", "created_at", "updated_at",
		}).AddRow(1, "Anna", "+79990001122", "", 7, "Manicure", 2500.0, 60,
			"2024-06-10", "11:00", "confirmed", "", time.Now(), time.Now()))

	appointments, err := repo.ListAppointments("2024-06-10", "confirmed")
	require.NoError(t, err)
	require.Len(t, appointments, 1)
	assert.Equal(t, "confirmed", appointments[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAppointment_NoFields(t *testing.T) {
	repo, _ := newMockRepo(t)

	err := repo.UpdateAppointment(1, &entities.AppointmentUpdateRequest{})
	assert.Error(t, err)
}

func TestUpdateAppointment_BuildsSetClause(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE appointments SET client_name = \$1, status = \$2, updated_at = NOW\(\) WHERE id = \$3`).
		WithArgs("Anna Petrova", "confirmed", 5).
		WillReturnResult(sqlmock.NewResult(0, 1))

	name := "Anna Petrova"
	status := "confirmed"
	err := repo.UpdateAppointment(5, &entities.AppointmentUpdateRequest{ClientName: &name, Status: &status})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteAppointment_MissingRow(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("DELETE FROM appointments").
		WithArgs(12).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteAppointment(12)
	assert.ErrorIs(t, err, ErrNotFound)
}
