package converter

import (
	"healthhub-backend/internal/delivery/dto"
	"healthhub-backend/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO, attaching the
// doctor profile when one is loaded
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:              user.ID,
		Email:           user.Email,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		Role:            string(user.Role),
		ProfileImageURL: user.ProfileImageURL,
		Doctor:          DoctorToResponse(user.Doctor),
		CreatedAt:       user.CreatedAt,
		UpdatedAt:       user.UpdatedAt,
	}
}
