package repository

import (
	"healthhub-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HealthRecordRepository interface {
	Create(db *gorm.DB, record *entity.HealthRecord) error
	FindByID(db *gorm.DB, id int) (*entity.HealthRecord, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.HealthRecord, error)
	Update(db *gorm.DB, record *entity.HealthRecord) error
}
