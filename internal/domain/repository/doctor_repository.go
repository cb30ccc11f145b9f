package repository

import (
	"healthhub-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(db *gorm.DB, doctor *entity.Doctor) error
	FindByID(db *gorm.DB, id int) (*entity.Doctor, error)
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Doctor, error)
	Search(db *gorm.DB, specialty string, available *bool) ([]entity.Doctor, error)
	Update(db *gorm.DB, doctor *entity.Doctor) error
}
