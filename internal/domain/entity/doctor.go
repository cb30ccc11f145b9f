package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Doctor represents a doctor profile, 1:1 with a doctor-role user
type Doctor struct {
	ID              int             `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Specialty       string          `gorm:"type:varchar(100);not null;index" json:"specialty"`
	IsAvailable     *bool           `gorm:"not null;default:true;index" json:"is_available"`
	Bio             string          `gorm:"type:text" json:"bio,omitempty"`
	ConsultationFee decimal.Decimal `gorm:"type:decimal(10,2)" json:"consultation_fee"`
	ExperienceYears int             `gorm:"default:0" json:"experience_years"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User         User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:DoctorID" json:"appointments,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}
