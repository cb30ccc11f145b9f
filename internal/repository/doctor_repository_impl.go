package repository

import (
	"errors"

	"healthhub-backend/internal/domain/entity"
	domainRepo "healthhub-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) Create(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Create(doctor).Error
}

func (r *doctorRepository) FindByID(db *gorm.DB, id int) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Preload("User").Where("id = ?", id).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Preload("User").Where("user_id = ?", userID).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

// Search returns doctors filtered by specialty and availability.
// An absent availability filter defaults to available doctors only.
func (r *doctorRepository) Search(db *gorm.DB, specialty string, available *bool) ([]entity.Doctor, error) {
	query := db.Preload("User")

	if available != nil {
		query = query.Where("is_available = ?", *available)
	} else {
		query = query.Where("is_available = ?", true)
	}

	if specialty != "" {
		query = query.Where("specialty = ?", specialty)
	}

	var doctors []entity.Doctor
	if err := query.Order("id ASC").Find(&doctors).Error; err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) Update(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Save(doctor).Error
}
