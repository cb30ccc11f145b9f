package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateHealthRecordRequest struct {
	// PatientID may only be set by doctors; patients always create for themselves
	PatientID   string `json:"patient_id" validate:"omitempty,uuid"`
	RecordType  string `json:"record_type" validate:"omitempty"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"omitempty"`
	RecordDate  string `json:"record_date" validate:"omitempty"`
}

type UpdateHealthRecordRequest struct {
	RecordType  string  `json:"record_type" validate:"omitempty"`
	Title       string  `json:"title" validate:"omitempty"`
	Description *string `json:"description" validate:"omitempty"`
	RecordDate  string  `json:"record_date" validate:"omitempty"`
}

// Response DTOs

type HealthRecordResponse struct {
	ID          int       `json:"id"`
	PatientID   uuid.UUID `json:"patient_id"`
	RecordType  string    `json:"record_type,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	RecordDate  time.Time `json:"record_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type HealthRecordListResponse struct {
	Records []HealthRecordResponse `json:"records"`
	Total   int                    `json:"total"`
}
