package converter

import (
	"healthhub-backend/internal/delivery/dto"
	"healthhub-backend/internal/domain/entity"
)

// SymptomAnalysisToResponse converts a SymptomAnalysis entity to its DTO
func SymptomAnalysisToResponse(analysis *entity.SymptomAnalysis) *dto.SymptomAnalysisResponse {
	if analysis == nil {
		return nil
	}

	return &dto.SymptomAnalysisResponse{
		ID:              analysis.ID,
		PatientID:       analysis.PatientID,
		Symptoms:        analysis.Symptoms,
		Age:             analysis.Age,
		Gender:          analysis.Gender,
		Analysis:        analysis.Analysis,
		Recommendations: analysis.Recommendations,
		CreatedAt:       analysis.CreatedAt,
	}
}

// SymptomAnalysesToResponses converts a slice of SymptomAnalysis entities to DTOs
func SymptomAnalysesToResponses(analyses []entity.SymptomAnalysis) []dto.SymptomAnalysisResponse {
	responses := make([]dto.SymptomAnalysisResponse, len(analyses))
	for i := range analyses {
		responses[i] = *SymptomAnalysisToResponse(&analyses[i])
	}
	return responses
}
