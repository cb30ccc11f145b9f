package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateDoctorRequest struct {
	Specialty       string           `json:"specialty" validate:"required"`
	Bio             string           `json:"bio" validate:"omitempty"`
	ConsultationFee *decimal.Decimal `json:"consultation_fee" validate:"omitempty"`
	ExperienceYears *int             `json:"experience_years" validate:"omitempty,gte=0"`
	IsAvailable     *bool            `json:"is_available" validate:"omitempty"`
}

// UpdateDoctorRequest carries partial-patch fields: only supplied values
// overwrite the stored profile.
type UpdateDoctorRequest struct {
	Specialty       string           `json:"specialty" validate:"omitempty"`
	Bio             *string          `json:"bio" validate:"omitempty"`
	ConsultationFee *decimal.Decimal `json:"consultation_fee" validate:"omitempty"`
	ExperienceYears *int             `json:"experience_years" validate:"omitempty,gte=0"`
	IsAvailable     *bool            `json:"is_available" validate:"omitempty"`
}

// Response DTOs

type DoctorResponse struct {
	ID              int             `json:"id"`
	UserID          uuid.UUID       `json:"user_id"`
	Specialty       string          `json:"specialty"`
	IsAvailable     *bool           `json:"is_available"`
	Bio             string          `json:"bio,omitempty"`
	ConsultationFee decimal.Decimal `json:"consultation_fee"`
	ExperienceYears int             `json:"experience_years"`
	FirstName       string          `json:"first_name,omitempty"`
	LastName        string          `json:"last_name,omitempty"`
	Email           string          `json:"email,omitempty"`
	ProfileImageURL string          `json:"profile_image_url,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
