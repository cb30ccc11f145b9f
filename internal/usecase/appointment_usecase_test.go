package usecase_test

import (
	"context"
	"testing"

	"healthhub-backend/internal/delivery/dto"
	"healthhub-backend/internal/domain/entity"
	"healthhub-backend/internal/service"
	"healthhub-backend/internal/usecase"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Repositories are stubbed so only transaction control statements reach the
// mocked connection.

type stubAppointmentRepo struct {
	findByID  func(id int) (*entity.Appointment, error)
	byPatient func(patientID uuid.UUID) ([]entity.Appointment, error)
	byDoctor  func(doctorID int) ([]entity.Appointment, error)
	cancel    func(id int) (int64, error)
}

func (s *stubAppointmentRepo) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return nil
}

func (s *stubAppointmentRepo) FindByID(db *gorm.DB, id int) (*entity.Appointment, error) {
	return s.findByID(id)
}

func (s *stubAppointmentRepo) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error) {
	return s.byPatient(patientID)
}

func (s *stubAppointmentRepo) FindByDoctorID(db *gorm.DB, doctorID int) ([]entity.Appointment, error) {
	return s.byDoctor(doctorID)
}

func (s *stubAppointmentRepo) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return nil
}

func (s *stubAppointmentRepo) Cancel(db *gorm.DB, id int) (int64, error) {
	return s.cancel(id)
}

type stubDoctorRepo struct {
	findByUserID func(userID uuid.UUID) (*entity.Doctor, error)
}

func (s *stubDoctorRepo) Create(db *gorm.DB, doctor *entity.Doctor) error { return nil }

func (s *stubDoctorRepo) FindByID(db *gorm.DB, id int) (*entity.Doctor, error) { return nil, nil }

func (s *stubDoctorRepo) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Doctor, error) {
	return s.findByUserID(userID)
}

func (s *stubDoctorRepo) Search(db *gorm.DB, specialty string, available *bool) ([]entity.Doctor, error) {
	return nil, nil
}

func (s *stubDoctorRepo) Update(db *gorm.DB, doctor *entity.Doctor) error { return nil }

type stubUserRepo struct {
	findByID    func(id uuid.UUID) (*entity.User, error)
	findByEmail func(email string) (*entity.User, error)
}

func (s *stubUserRepo) Create(db *gorm.DB, user *entity.User) error { return nil }

func (s *stubUserRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	return s.findByID(id)
}

func (s *stubUserRepo) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	if s.findByEmail != nil {
		return s.findByEmail(email)
	}
	return nil, nil
}

func (s *stubUserRepo) Update(db *gorm.DB, user *entity.User) error { return nil }

type recordingAuditService struct {
	actions []string
}

func (s *recordingAuditService) LogCreate(tx *gorm.DB, userID *uuid.UUID, action, entityName, entityID string, newValue interface{}) error {
	s.actions = append(s.actions, action)
	return nil
}

func (s *recordingAuditService) LogUpdate(tx *gorm.DB, userID *uuid.UUID, action, entityName, entityID string, oldValue, newValue interface{}) error {
	s.actions = append(s.actions, action)
	return nil
}

func (s *recordingAuditService) LogDelete(tx *gorm.DB, userID *uuid.UUID, action, entityName, entityID string, oldValue interface{}) error {
	s.actions = append(s.actions, action)
	return nil
}

func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
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

func newAppointmentUsecase(
	db *gorm.DB,
	userRepo *stubUserRepo,
	doctorRepo *stubDoctorRepo,
	appointmentRepo *stubAppointmentRepo,
	audit *recordingAuditService,
) usecase.AppointmentUsecase {
	log := logrus.New()
	return usecase.NewAppointmentUsecase(db, log, userRepo, doctorRepo, appointmentRepo, service.NewPolicyService(), audit)
}

func TestAppointmentUsecase_Create_InvalidDate(t *testing.T) {
	db, _ := newTestDB(t)
	u := newAppointmentUsecase(db, &stubUserRepo{}, &stubDoctorRepo{}, &stubAppointmentRepo{}, &recordingAuditService{})

	_, err := u.Create(context.Background(), uuid.New(), &dto.CreateAppointmentRequest{
		DoctorID:        1,
		AppointmentDate: "tomorrow at noon",
	})
	assert.ErrorIs(t, err, usecase.ErrInvalidDateFormat)
}

func TestAppointmentUsecase_Cancel_TransitionsAndAudits(t *testing.T) {
	db, mock := newTestDB(t)
	callerID := uuid.New()

	appointmentRepo := &stubAppointmentRepo{
		findByID: func(id int) (*entity.Appointment, error) {
			return &entity.Appointment{ID: id, PatientID: callerID, DoctorID: 7, Status: entity.AppointmentStatusScheduled}, nil
		},
		cancel: func(id int) (int64, error) { return 1, nil },
	}
	doctorRepo := &stubDoctorRepo{
		findByUserID: func(userID uuid.UUID) (*entity.Doctor, error) { return nil, nil },
	}
	audit := &recordingAuditService{}
	u := newAppointmentUsecase(db, &stubUserRepo{}, doctorRepo, appointmentRepo, audit)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := u.Cancel(context.Background(), callerID, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{entity.AuditActionAppointmentCancel}, audit.actions)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentUsecase_Cancel_AlreadyCancelledSkipsAudit(t *testing.T) {
	db, mock := newTestDB(t)
	callerID := uuid.New()

	appointmentRepo := &stubAppointmentRepo{
		findByID: func(id int) (*entity.Appointment, error) {
			return &entity.Appointment{ID: id, PatientID: callerID, DoctorID: 7, Status: entity.AppointmentStatusCancelled}, nil
		},
		cancel: func(id int) (int64, error) { return 0, nil },
	}
	doctorRepo := &stubDoctorRepo{
		findByUserID: func(userID uuid.UUID) (*entity.Doctor, error) { return nil, nil },
	}
	audit := &recordingAuditService{}
	u := newAppointmentUsecase(db, &stubUserRepo{}, doctorRepo, appointmentRepo, audit)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := u.Cancel(context.Background(), callerID, 5)
	require.NoError(t, err)
	assert.Empty(t, audit.actions)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentUsecase_Cancel_NotFound(t *testing.T) {
	db, mock := newTestDB(t)

	appointmentRepo := &stubAppointmentRepo{
		findByID: func(id int) (*entity.Appointment, error) { return nil, nil },
	}
	u := newAppointmentUsecase(db, &stubUserRepo{}, &stubDoctorRepo{}, appointmentRepo, &recordingAuditService{})

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := u.Cancel(context.Background(), uuid.New(), 999)
	assert.ErrorIs(t, err, usecase.ErrAppointmentNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentUsecase_Get_NonParticipantForbidden(t *testing.T) {
	db, _ := newTestDB(t)
	patientID := uuid.New()
	strangerID := uuid.New()

	appointmentRepo := &stubAppointmentRepo{
		findByID: func(id int) (*entity.Appointment, error) {
			return &entity.Appointment{ID: id, PatientID: patientID, DoctorID: 7}, nil
		},
	}
	doctorRepo := &stubDoctorRepo{
		findByUserID: func(userID uuid.UUID) (*entity.Doctor, error) { return nil, nil },
	}
	u := newAppointmentUsecase(db, &stubUserRepo{}, doctorRepo, appointmentRepo, &recordingAuditService{})

	_, err := u.Get(context.Background(), strangerID, 5)
	assert.ErrorIs(t, err, usecase.ErrAppointmentForbidden)
}

func TestAppointmentUsecase_Get_DoctorOnAppointmentAllowed(t *testing.T) {
	db, _ := newTestDB(t)
	doctorUserID := uuid.New()

	appointmentRepo := &stubAppointmentRepo{
		findByID: func(id int) (*entity.Appointment, error) {
			return &entity.Appointment{ID: id, PatientID: uuid.New(), DoctorID: 7, Status: entity.AppointmentStatusScheduled}, nil
		},
	}
	doctorRepo := &stubDoctorRepo{
		findByUserID: func(userID uuid.UUID) (*entity.Doctor, error) {
			return &entity.Doctor{ID: 7, UserID: userID}, nil
		},
	}
	u := newAppointmentUsecase(db, &stubUserRepo{}, doctorRepo, appointmentRepo, &recordingAuditService{})

	got, err := u.Get(context.Background(), doctorUserID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, got.ID)
}
