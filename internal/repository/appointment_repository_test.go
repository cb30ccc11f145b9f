package repository_test

import (
	"testing"
	"time"

	"healthhub-backend/internal/domain/entity"
	"healthhub-backend/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return gormDB, mock
}

func TestAppointmentRepository_Cancel_Transitions(t *testing.T) {
	db, mock := newMockDB(t)
	r := repository.NewAppointmentRepository()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "appointments" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	affected, err := r.Cancel(db, 42)
	require.NoError(t, err)
	require.Equal(t, int64(1), affected)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentRepository_Cancel_AlreadyCancelledIsNoop(t *testing.T) {
	db, mock := newMockDB(t)
	r := repository.NewAppointmentRepository()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "appointments" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	affected, err := r.Cancel(db, 42)
	require.NoError(t, err)
	require.Equal(t, int64(0), affected)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	r := repository.NewAppointmentRepository()

	mock.ExpectQuery(`SELECT \* FROM "appointments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	appointment, err := r.FindByID(db, 99)
	require.NoError(t, err)
	require.Nil(t, appointment)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentRepository_FindByPatientID_OrdersByDateDesc(t *testing.T) {
	db, mock := newMockDB(t)
	r := repository.NewAppointmentRepository()

	patientID := uuid.New()
	doctorUserID := uuid.New()
	later := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	earlier := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "appointments" WHERE patient_id = \$1 ORDER BY appointment_date DESC`).
		WithArgs(patientID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "patient_id", "doctor_id", "appointment_date", "status"}).
			AddRow(2, patientID, 7, later, "scheduled").
			AddRow(1, patientID, 7, earlier, "scheduled"))

	// Doctor.User preload
	mock.ExpectQuery(`SELECT \* FROM "doctors"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "specialty"}).
			AddRow(7, doctorUserID, "Cardiology"))
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}).
			AddRow(doctorUserID, "doc@example.com"))

	appointments, err := r.FindByPatientID(db, patientID)
	require.NoError(t, err)
	require.Len(t, appointments, 2)
	require.Equal(t, 2, appointments[0].ID)
	require.Equal(t, entity.AppointmentStatusScheduled, appointments[0].Status)
	require.Equal(t, "Cardiology", appointments[0].Doctor.Specialty)
	require.NoError(t, mock.ExpectationsWereMet())
}
