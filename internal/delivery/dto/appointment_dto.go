package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	DoctorID        int    `json:"doctor_id" validate:"required,gt=0"`
	AppointmentDate string `json:"appointment_date" validate:"required"`
	Notes           string `json:"notes" validate:"omitempty"`
}

// UpdateAppointmentRequest carries partial-patch fields; status transitions
// are restricted to the known lifecycle values.
type UpdateAppointmentRequest struct {
	AppointmentDate string  `json:"appointment_date" validate:"omitempty"`
	Notes           *string `json:"notes" validate:"omitempty"`
	Status          string  `json:"status" validate:"omitempty,oneof=scheduled cancelled completed"`
}

// Response DTOs

type AppointmentResponse struct {
	ID              int             `json:"id"`
	PatientID       uuid.UUID       `json:"patient_id"`
	DoctorID        int             `json:"doctor_id"`
	AppointmentDate time.Time       `json:"appointment_date"`
	Status          string          `json:"status"`
	Notes           string          `json:"notes,omitempty"`
	Doctor          *DoctorResponse `json:"doctor,omitempty"`
	Patient         *UserResponse   `json:"patient,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
