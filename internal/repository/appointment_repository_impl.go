package repository

import (
	"errors"

	"healthhub-backend/internal/domain/entity"
	domainRepo "healthhub-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id int) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Doctor.User").Preload("Patient").Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Doctor.User").
		Where("patient_id = ?", patientID).
		Order("appointment_date DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByDoctorID(db *gorm.DB, doctorID int) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Patient").
		Where("doctor_id = ?", doctorID).
		Order("appointment_date DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Save(appointment).Error
}

// Cancel atomically cancels an appointment ONLY if it's not already cancelled.
// Returns affected rows: 1 = transitioned, 0 = no-op (already cancelled or absent).
func (r *appointmentRepository) Cancel(db *gorm.DB, id int) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Where("id = ? AND status != ?", id, entity.AppointmentStatusCancelled).
		Update("status", entity.AppointmentStatusCancelled)
	return result.RowsAffected, result.Error
}
