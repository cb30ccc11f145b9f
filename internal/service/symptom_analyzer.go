package service

import (
	"context"
	"strings"

	"healthhub-backend/internal/domain/entity"
)

// Condition is a single candidate diagnosis in an analysis result
type Condition struct {
	Name        string `json:"name"`
	Probability int    `json:"probability"`
	Description string `json:"description"`
}

// AnalysisResult is the structured output of a symptom analysis
type AnalysisResult struct {
	Conditions      []Condition `json:"conditions"`
	Recommendations []string    `json:"recommendations"`
}

// RecommendationText flattens the recommendation list for the derived text column
func (r *AnalysisResult) RecommendationText() string {
	return strings.Join(r.Recommendations, "; ")
}

// ToJSON converts the result into the JSONB shape persisted on the entity
func (r *AnalysisResult) ToJSON() entity.JSON {
	conditions := make([]interface{}, len(r.Conditions))
	for i, c := range r.Conditions {
		conditions[i] = map[string]interface{}{
			"name":        c.Name,
			"probability": c.Probability,
			"description": c.Description,
		}
	}
	recommendations := make([]interface{}, len(r.Recommendations))
	for i, rec := range r.Recommendations {
		recommendations[i] = rec
	}
	return entity.JSON{
		"conditions":      conditions,
		"recommendations": recommendations,
	}
}

// SymptomAnalyzer produces an analysis for patient-reported symptoms.
// The production deployment currently uses StaticAnalyzer; a real inference
// service plugs in behind this interface without touching the usecase layer.
type SymptomAnalyzer interface {
	Analyze(ctx context.Context, symptoms string, age *int, gender string) (*AnalysisResult, error)
}

// StaticAnalyzer returns a fixed result regardless of input
type StaticAnalyzer struct{}

func NewStaticAnalyzer() *StaticAnalyzer {
	return &StaticAnalyzer{}
}

func (a *StaticAnalyzer) Analyze(ctx context.Context, symptoms string, age *int, gender string) (*AnalysisResult, error) {
	return &AnalysisResult{
		Conditions: []Condition{
			{
				Name:        "Viral Upper Respiratory Infection",
				Probability: 85,
				Description: "Common symptoms include headache, fever, and fatigue. Usually resolves within 7-10 days.",
			},
			{
				Name:        "Seasonal Allergies",
				Probability: 45,
				Description: "May be environmental allergies if symptoms persist or worsen outdoors.",
			},
		},
		Recommendations: []string{
			"Rest and stay hydrated",
			"Monitor temperature regularly",
			"Consider over-the-counter pain relievers",
			"Consult a doctor if symptoms worsen or persist beyond 7 days",
		},
	}, nil
}
