package dto

import (
	"time"

	"healthhub-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// Request DTOs

type CreateSymptomAnalysisRequest struct {
	Symptoms string `json:"symptoms" validate:"required"`
	Age      *int   `json:"age" validate:"omitempty,gte=0,lte=130"`
	Gender   string `json:"gender" validate:"omitempty"`
}

// Response DTOs

type SymptomAnalysisResponse struct {
	ID              int         `json:"id"`
	PatientID       uuid.UUID   `json:"patient_id"`
	Symptoms        string      `json:"symptoms"`
	Age             *int        `json:"age,omitempty"`
	Gender          string      `json:"gender,omitempty"`
	Analysis        entity.JSON `json:"analysis"`
	Recommendations string      `json:"recommendations"`
	CreatedAt       time.Time   `json:"created_at"`
}

type SymptomAnalysisListResponse struct {
	Analyses []SymptomAnalysisResponse `json:"analyses"`
	Total    int                       `json:"total"`
}
