package repository

import (
	"errors"

	"healthhub-backend/internal/domain/entity"
	domainRepo "healthhub-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type symptomAnalysisRepository struct{}

func NewSymptomAnalysisRepository() domainRepo.SymptomAnalysisRepository {
	return &symptomAnalysisRepository{}
}

func (r *symptomAnalysisRepository) Create(db *gorm.DB, analysis *entity.SymptomAnalysis) error {
	return db.Create(analysis).Error
}

func (r *symptomAnalysisRepository) FindByID(db *gorm.DB, id int) (*entity.SymptomAnalysis, error) {
	var analysis entity.SymptomAnalysis
	err := db.Where("id = ?", id).First(&analysis).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &analysis, nil
}

func (r *symptomAnalysisRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.SymptomAnalysis, error) {
	var analyses []entity.SymptomAnalysis
	err := db.Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&analyses).Error
	if err != nil {
		return nil, err
	}
	return analyses, nil
}
