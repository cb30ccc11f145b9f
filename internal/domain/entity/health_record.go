package entity

import (
	"time"

	"github.com/google/uuid"
)

// HealthRecord represents a clinical entry in a patient's history.
// There is no delete path; records are append-and-amend only.
type HealthRecord struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID   uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	RecordType  string    `gorm:"type:varchar(50)" json:"record_type,omitempty"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	RecordDate  time.Time `gorm:"type:date" json:"record_date"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient User `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (HealthRecord) TableName() string {
	return "health_records"
}
