package converter

import (
	"healthhub-backend/internal/delivery/dto"
	"healthhub-backend/internal/domain/entity"
)

// HealthRecordToResponse converts a HealthRecord entity to its DTO
func HealthRecordToResponse(record *entity.HealthRecord) *dto.HealthRecordResponse {
	if record == nil {
		return nil
	}

	return &dto.HealthRecordResponse{
		ID:          record.ID,
		PatientID:   record.PatientID,
		RecordType:  record.RecordType,
		Title:       record.Title,
		Description: record.Description,
		RecordDate:  record.RecordDate,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}
}

// HealthRecordsToResponses converts a slice of HealthRecord entities to DTOs
func HealthRecordsToResponses(records []entity.HealthRecord) []dto.HealthRecordResponse {
	responses := make([]dto.HealthRecordResponse, len(records))
	for i := range records {
		responses[i] = *HealthRecordToResponse(&records[i])
	}
	return responses
}
