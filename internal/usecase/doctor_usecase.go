package usecase

import (
	"context"
	"errors"

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
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrDoctorProfileExists = errors.New("doctor profile already exists")
	ErrNotDoctorRole       = errors.New("caller does not hold the doctor role")
	ErrNotProfileOwner     = errors.New("doctor profile does not belong to caller")
)

type DoctorUsecase interface {
	CreateProfile(ctx context.Context, callerID uuid.UUID, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	GetByID(ctx context.Context, id int) (*dto.DoctorResponse, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*dto.DoctorResponse, error)
	Search(ctx context.Context, specialty string, available *bool) (*dto.DoctorListResponse, error)
	UpdateProfile(ctx context.Context, callerID uuid.UUID, doctorID int, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
}

type doctorUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	userRepo      repository.UserRepository
	doctorRepo    repository.DoctorRepository
	policyService *service.PolicyService
	auditService  service.AuditService
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	doctorRepo repository.DoctorRepository,
	policyService *service.PolicyService,
	auditService service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		db:            db,
		log:           log,
		userRepo:      userRepo,
		doctorRepo:    doctorRepo,
		policyService: policyService,
		auditService:  auditService,
	}
}

func (u *doctorUsecase) CreateProfile(ctx context.Context, callerID uuid.UUID, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
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

	if !u.policyService.Can(caller.Role, service.ResourceDoctor, service.ActionCreate) {
		return nil, ErrNotDoctorRole
	}

	doctor := &entity.Doctor{
		UserID:    callerID,
		Specialty: req.Specialty,
		Bio:       req.Bio,
	}
	if req.ConsultationFee != nil {
		doctor.ConsultationFee = *req.ConsultationFee
	}
	if req.ExperienceYears != nil {
		doctor.ExperienceYears = *req.ExperienceYears
	}
	if req.IsAvailable != nil {
		doctor.IsAvailable = req.IsAvailable
	} else {
		available := true
		doctor.IsAvailable = &available
	}

	if err := u.doctorRepo.Create(tx, doctor); err != nil {
		if isDuplicateKeyError(err, "user_id") {
			return nil, ErrDoctorProfileExists
		}
		u.log.Warnf("Failed to create doctor profile: %+v", err)
		return nil, err
	}
	doctor.User = *caller

	if err := u.auditService.LogCreate(tx, &callerID, entity.AuditActionDoctorCreate, "doctor", doctor.UserID.String(), converter.DoctorToResponse(doctor)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetByID(ctx context.Context, id int) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetByUserID(ctx context.Context, userID uuid.UUID) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find doctor by user: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) Search(ctx context.Context, specialty string, available *bool) (*dto.DoctorListResponse, error) {
	// "All Specialties" is the client's no-filter sentinel
	if specialty == "All Specialties" {
		specialty = ""
	}

	doctors, err := u.doctorRepo.Search(u.db.WithContext(ctx), specialty, available)
	if err != nil {
		u.log.Warnf("Failed to search doctors: %+v", err)
		return nil, err
	}

	responses := converter.DoctorsToResponses(doctors)

	return &dto.DoctorListResponse{
		Doctors: responses,
		Total:   len(responses),
	}, nil
}

func (u *doctorUsecase) UpdateProfile(ctx context.Context, callerID uuid.UUID, doctorID int, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	if doctor.UserID != callerID {
		return nil, ErrNotProfileOwner
	}

	oldValue := converter.DoctorToResponse(doctor)

	// Partial patch: only supplied fields overwrite existing values
	if req.Specialty != "" {
		doctor.Specialty = req.Specialty
	}
	if req.Bio != nil {
		doctor.Bio = *req.Bio
	}
	if req.ConsultationFee != nil {
		doctor.ConsultationFee = *req.ConsultationFee
	}
	if req.ExperienceYears != nil {
		doctor.ExperienceYears = *req.ExperienceYears
	}
	if req.IsAvailable != nil {
		doctor.IsAvailable = req.IsAvailable
	}

	if err := u.doctorRepo.Update(tx, doctor); err != nil {
		u.log.Warnf("Failed to update doctor profile: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(tx, &callerID, entity.AuditActionDoctorUpdate, "doctor", doctor.UserID.String(), oldValue, converter.DoctorToResponse(doctor)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}
