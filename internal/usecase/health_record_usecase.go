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
	ErrRecordNotFound    = errors.New("health record not found")
	ErrRecordForbidden   = errors.New("health record does not belong to caller")
	ErrInvalidRecordDate = errors.New("invalid record date, use YYYY-MM-DD")
	ErrPatientNotFound   = errors.New("patient not found")
)

type HealthRecordUsecase interface {
	Create(ctx context.Context, callerID uuid.UUID, req *dto.CreateHealthRecordRequest) (*dto.HealthRecordResponse, error)
	List(ctx context.Context, callerID uuid.UUID) (*dto.HealthRecordListResponse, error)
	Get(ctx context.Context, callerID uuid.UUID, id int) (*dto.HealthRecordResponse, error)
	Update(ctx context.Context, callerID uuid.UUID, id int, req *dto.UpdateHealthRecordRequest) (*dto.HealthRecordResponse, error)
}

type healthRecordUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	userRepo      repository.UserRepository
	recordRepo    repository.HealthRecordRepository
	policyService *service.PolicyService
	auditService  service.AuditService
}

func NewHealthRecordUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	recordRepo repository.HealthRecordRepository,
	policyService *service.PolicyService,
	auditService service.AuditService,
) HealthRecordUsecase {
	return &healthRecordUsecase{
		db:            db,
		log:           log,
		userRepo:      userRepo,
		recordRepo:    recordRepo,
		policyService: policyService,
		auditService:  auditService,
	}
}

// Create stores a clinical entry. Patients may only create records for
// themselves; doctors may create records for any patient.
func (u *healthRecordUsecase) Create(ctx context.Context, callerID uuid.UUID, req *dto.CreateHealthRecordRequest) (*dto.HealthRecordResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	caller, err := u.userRepo.FindByID(tx, callerID)
	if err != nil {
		u.log.Warnf("Failed to find caller: %+v", err)
		return nil, err
	}
	if caller == nil {
		return nil, ErrUserNotFound
	}

	patientID := callerID
	if req.PatientID != "" {
		patientID, err = uuid.Parse(req.PatientID)
		if err != nil {
			return nil, ErrPatientNotFound
		}
		if !caller.IsDoctor() && patientID != callerID {
			return nil, ErrRecordForbidden
		}
	}

	recordDate := time.Now().UTC()
	if req.RecordDate != "" {
		recordDate, err = time.Parse("2006-01-02", req.RecordDate)
		if err != nil {
			return nil, ErrInvalidRecordDate
		}
	}

	record := &entity.HealthRecord{
		PatientID:   patientID,
		RecordType:  req.RecordType,
		Title:       req.Title,
		Description: req.Description,
		RecordDate:  recordDate,
	}

	if err := u.recordRepo.Create(tx, record); err != nil {
		if isForeignKeyError(err, "patient") {
			return nil, ErrPatientNotFound
		}
		u.log.Warnf("Failed to create health record: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(tx, &callerID, entity.AuditActionRecordCreate, "health_record", strconv.Itoa(record.ID), converter.HealthRecordToResponse(record)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.HealthRecordToResponse(record), nil
}

func (u *healthRecordUsecase) List(ctx context.Context, callerID uuid.UUID) (*dto.HealthRecordListResponse, error) {
	records, err := u.recordRepo.FindByPatientID(u.db.WithContext(ctx), callerID)
	if err != nil {
		u.log.Warnf("Failed to list health records for %s: %+v", callerID, err)
		return nil, err
	}

	responses := converter.HealthRecordsToResponses(records)

	return &dto.HealthRecordListResponse{
		Records: responses,
		Total:   len(responses),
	}, nil
}

func (u *healthRecordUsecase) Get(ctx context.Context, callerID uuid.UUID, id int) (*dto.HealthRecordResponse, error) {
	db := u.db.WithContext(ctx)

	record, err := u.recordRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find health record %d: %+v", id, err)
		return nil, err
	}
	if record == nil {
		return nil, ErrRecordNotFound
	}

	caller, err := u.userRepo.FindByID(db, callerID)
	if err != nil {
		u.log.Warnf("Failed to find caller: %+v", err)
		return nil, err
	}
	if caller == nil {
		return nil, ErrUserNotFound
	}

	if !u.policyService.CanAccessHealthRecord(caller, record) {
		return nil, ErrRecordForbidden
	}

	return converter.HealthRecordToResponse(record), nil
}

func (u *healthRecordUsecase) Update(ctx context.Context, callerID uuid.UUID, id int, req *dto.UpdateHealthRecordRequest) (*dto.HealthRecordResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	record, err := u.recordRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find health record %d: %+v", id, err)
		return nil, err
	}
	if record == nil {
		return nil, ErrRecordNotFound
	}

	caller, err := u.userRepo.FindByID(tx, callerID)
	if err != nil {
		u.log.Warnf("Failed to find caller: %+v", err)
		return nil, err
	}
	if caller == nil {
		return nil, ErrUserNotFound
	}

	if !u.policyService.CanAccessHealthRecord(caller, record) {
		return nil, ErrRecordForbidden
	}

	oldValue := converter.HealthRecordToResponse(record)

	// Partial patch: only supplied fields overwrite existing values
	if req.RecordType != "" {
		record.RecordType = req.RecordType
	}
	if req.Title != "" {
		record.Title = req.Title
	}
	if req.Description != nil {
		record.Description = *req.Description
	}
	if req.RecordDate != "" {
		recordDate, err := time.Parse("2006-01-02", req.RecordDate)
		if err != nil {
			return nil, ErrInvalidRecordDate
		}
		record.RecordDate = recordDate
	}

	if err := u.recordRepo.Update(tx, record); err != nil {
		u.log.Warnf("Failed to update health record %d: %+v", id, err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(tx, &callerID, entity.AuditActionRecordUpdate, "health_record", strconv.Itoa(id), oldValue, converter.HealthRecordToResponse(record)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.HealthRecordToResponse(record), nil
}
