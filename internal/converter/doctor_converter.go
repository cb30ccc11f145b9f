package converter

import (
	"healthhub-backend/internal/delivery/dto"
	"healthhub-backend/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:              doctor.ID,
		UserID:          doctor.UserID,
		Specialty:       doctor.Specialty,
		IsAvailable:     doctor.IsAvailable,
		Bio:             doctor.Bio,
		ConsultationFee: doctor.ConsultationFee,
		ExperienceYears: doctor.ExperienceYears,
		FirstName:       doctor.User.FirstName,
		LastName:        doctor.User.LastName,
		Email:           doctor.User.Email,
		ProfileImageURL: doctor.User.ProfileImageURL,
		CreatedAt:       doctor.CreatedAt,
		UpdatedAt:       doctor.UpdatedAt,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}
