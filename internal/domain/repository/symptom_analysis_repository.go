package repository

import (
	"healthhub-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SymptomAnalysisRepository interface {
	Create(db *gorm.DB, analysis *entity.SymptomAnalysis) error
	FindByID(db *gorm.DB, id int) (*entity.SymptomAnalysis, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.SymptomAnalysis, error)
}
