package entity

import (
	"time"

	"github.com/google/uuid"
)

// SymptomAnalysis represents a write-once analysis of patient-reported symptoms.
// The analysis payload is produced by a pluggable analyzer service.
type SymptomAnalysis struct {
	ID              int       `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID       uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	Symptoms        string    `gorm:"type:text;not null" json:"symptoms"`
	Age             *int      `json:"age,omitempty"`
	Gender          string    `gorm:"type:varchar(20)" json:"gender,omitempty"`
	Analysis        JSON      `gorm:"type:jsonb" json:"analysis"`
	Recommendations string    `gorm:"type:text" json:"recommendations"`
	CreatedAt       time.Time `gorm:"autoCreateTime;index" json:"created_at"`

	// Relationships
	Patient User `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (SymptomAnalysis) TableName() string {
	return "symptom_analyses"
}
