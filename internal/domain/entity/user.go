package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role classifies a user and gates which operations are permitted
type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
)

// IsValid reports whether the role is one of the supported values
func (r Role) IsValid() bool {
	return r == RolePatient || r == RoleDoctor
}

// User represents the centralized authentication table
type User struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email           string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password        string    `gorm:"type:text;not null" json:"-"`
	FirstName       string    `gorm:"type:varchar(100)" json:"first_name"`
	LastName        string    `gorm:"type:varchar(100)" json:"last_name"`
	Role            Role      `gorm:"type:varchar(20);not null;default:'patient';index" json:"role"`
	ProfileImageURL string    `gorm:"type:text" json:"profile_image_url,omitempty"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor *Doctor `gorm:"foreignKey:UserID" json:"doctor,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// IsDoctor checks if the user holds the doctor role
func (u *User) IsDoctor() bool {
	return u.Role == RoleDoctor
}
