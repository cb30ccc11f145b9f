package usecase

import (
	"context"
	"errors"
	"strconv"
	"time"

	"healthhub-backend/internal/converter"
	"healthhub-backend/internal/delivery/dto"
	"healthhub-backend/internal/domain/entity"
	"healthhub-backend/internal/domain/repository"
	"healthhub-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrAppointmentForbidden = errors.New("caller is not a participant of the appointment")
	ErrSlotTaken            = errors.New("doctor already has an appointment at that time")
	ErrInvalidDateFormat    = errors.New("invalid date format, use RFC 3339")
)

type AppointmentUsecase interface {
	Create(ctx context.Context, callerID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	List(ctx context.Context, callerID uuid.UUID) (*dto.AppointmentListResponse, error)
	Get(ctx context.Context, callerID uuid.UUID, id int) (*dto.AppointmentResponse, error)
	Update(ctx context.Context, callerID uuid.UUID, id int, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	Cancel(ctx context.Context, callerID uuid.UUID, id int) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	userRepo        repository.UserRepository
	doctorRepo      repository.DoctorRepository
	appointmentRepo repository.AppointmentRepository
	policyService   *service.PolicyService
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	doctorRepo repository.DoctorRepository,
	appointmentRepo repository.AppointmentRepository,
	policyService *service.PolicyService,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		userRepo:        userRepo,
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
		policyService:   policyService,
		auditService:    auditService,
	}
}

// Create books an appointment: the caller always becomes the patient and the
// initial status is always scheduled. A partial unique index on
// (doctor_id, appointment_date) rejects double-booking of a slot.
func (u *appointmentUsecase) Create(ctx context.Context, callerID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointmentDate, err := time.Parse(time.RFC3339, req.AppointmentDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(tx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	appointment := &entity.Appointment{
		PatientID:       callerID,
		DoctorID:        req.DoctorID,
		AppointmentDate: appointmentDate,
		Status:          entity.AppointmentStatusScheduled,
		Notes:           req.Notes,
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		if isDuplicateKeyError(err, "doctor_slot") {
			return nil, ErrSlotTaken
		}
		if isForeignKeyError(err, "doctor") {
			return nil, ErrDoctorNotFound
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(tx, &callerID, entity.AuditActionAppointmentCreate, "appointment", strconv.Itoa(appointment.ID), converter.AppointmentToResponse(appointment)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	// Reload with doctor info for response
	full, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointment.ID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload appointment %d: %+v", appointment.ID, err)
		return converter.AppointmentToResponse(appointment), nil
	}

	return converter.AppointmentToResponse(full), nil
}

// List returns appointments scoped by role: patients see their own, doctors
// see those booked against their profile. Both are ordered newest first.
func (u *appointmentUsecase) List(ctx context.Context, callerID uuid.UUID) (*dto.AppointmentListResponse, error) {
	db := u.db.WithContext(ctx)

	caller, err := u.userRepo.FindByID(db, callerID)
	if err != nil {
		u.log.Warnf("Failed to find caller: %+v", err)
		return nil, err
	}
	if caller == nil {
		return nil, ErrUserNotFound
	}

	var appointments []entity.Appointment
	if caller.IsDoctor() && caller.Doctor != nil {
		appointments, err = u.appointmentRepo.FindByDoctorID(db, caller.Doctor.ID)
	} else {
		appointments, err = u.appointmentRepo.FindByPatientID(db, callerID)
	}
	if err != nil {
		u.log.Warnf("Failed to list appointments for %s: %+v", callerID, err)
		return nil, err
	}

	responses := converter.AppointmentsToResponses(appointments)

	return &dto.AppointmentListResponse{
		Appointments: responses,
		Total:        len(responses),
	}, nil
}

func (u *appointmentUsecase) Get(ctx context.Context, callerID uuid.UUID, id int) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	appointment, err := u.appointmentRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if err := u.checkParticipant(db, callerID, appointment); err != nil {
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) Update(ctx context.Context, callerID uuid.UUID, id int, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if err := u.checkParticipant(tx, callerID, appointment); err != nil {
		return nil, err
	}

	oldValue := converter.AppointmentToResponse(appointment)

	// Partial patch: only supplied fields overwrite existing values
	if req.AppointmentDate != "" {
		appointmentDate, err := time.Parse(time.RFC3339, req.AppointmentDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		appointment.AppointmentDate = appointmentDate
	}
	if req.Notes != nil {
		appointment.Notes = *req.Notes
	}
	if req.Status != "" {
		appointment.Status = entity.AppointmentStatus(req.Status)
	}

	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		if isDuplicateKeyError(err, "doctor_slot") {
			return nil, ErrSlotTaken
		}
		u.log.Warnf("Failed to update appointment %d: %+v", id, err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(tx, &callerID, entity.AuditActionAppointmentUpdate, "appointment", strconv.Itoa(id), oldValue, converter.AppointmentToResponse(appointment)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

// Cancel transitions the appointment to cancelled. The transition is
// idempotent: cancelling an already cancelled appointment is a no-op success.
func (u *appointmentUsecase) Cancel(ctx context.Context, callerID uuid.UUID, id int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", id, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	if err := u.checkParticipant(tx, callerID, appointment); err != nil {
		return err
	}

	affected, err := u.appointmentRepo.Cancel(tx, id)
	if err != nil {
		u.log.Warnf("Failed to cancel appointment %d: %+v", id, err)
		return err
	}

	if affected > 0 {
		oldValue := converter.AppointmentToResponse(appointment)
		appointment.Status = entity.AppointmentStatusCancelled
		if err := u.auditService.LogUpdate(tx, &callerID, entity.AuditActionAppointmentCancel, "appointment", strconv.Itoa(id), oldValue, converter.AppointmentToResponse(appointment)); err != nil {
			u.log.Warnf("Failed to create audit log: %+v", err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

// checkParticipant enforces that the caller is the patient on the appointment
// or the doctor whose profile it targets
func (u *appointmentUsecase) checkParticipant(db *gorm.DB, callerID uuid.UUID, appointment *entity.Appointment) error {
	var doctorProfileID *int
	doctor, err := u.doctorRepo.FindByUserID(db, callerID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile for %s: %+v", callerID, err)
		return err
	}
	if doctor != nil {
		doctorProfileID = &doctor.ID
	}

	if !u.policyService.IsAppointmentParticipant(callerID, doctorProfileID, appointment) {
		return ErrAppointmentForbidden
	}
	return nil
}
