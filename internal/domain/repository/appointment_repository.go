package repository

import (
	"healthhub-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id int) (*entity.Appointment, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error)
	FindByDoctorID(db *gorm.DB, doctorID int) ([]entity.Appointment, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error
	Cancel(db *gorm.DB, id int) (int64, error)
}
