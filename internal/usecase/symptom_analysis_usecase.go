package usecase

import (
	"context"
	"errors"
	"strconv"

	"healthhub-backend/internal/converter"
	"healthhub-backend/internal/delivery/dto"
	"healthhub-backend/internal/domain/entity"
	"healthhub-backend/internal/domain/repository"
	"healthhub-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAnalysisNotFound  = errors.New("symptom analysis not found")
	ErrAnalysisForbidden = errors.New("symptom analysis does not belong to caller")
)

type SymptomAnalysisUsecase interface {
	Create(ctx context.Context, callerID uuid.UUID, req *dto.CreateSymptomAnalysisRequest) (*dto.SymptomAnalysisResponse, error)
	List(ctx context.Context, callerID uuid.UUID) (*dto.SymptomAnalysisListResponse, error)
	Get(ctx context.Context, callerID uuid.UUID, id int) (*dto.SymptomAnalysisResponse, error)
}

type symptomAnalysisUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	analysisRepo repository.SymptomAnalysisRepository
	analyzer     service.SymptomAnalyzer
	auditService service.AuditService
}

func NewSymptomAnalysisUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	analysisRepo repository.SymptomAnalysisRepository,
	analyzer service.SymptomAnalyzer,
	auditService service.AuditService,
) SymptomAnalysisUsecase {
	return &symptomAnalysisUsecase{
		db:           db,
		log:          log,
		analysisRepo: analysisRepo,
		analyzer:     analyzer,
		auditService: auditService,
	}
}

// Create runs the analyzer over the submitted symptoms and persists the result
// alongside the input. Analyses are write-once.
func (u *symptomAnalysisUsecase) Create(ctx context.Context, callerID uuid.UUID, req *dto.CreateSymptomAnalysisRequest) (*dto.SymptomAnalysisResponse, error) {
	result, err := u.analyzer.Analyze(ctx, req.Symptoms, req.Age, req.Gender)
	if err != nil {
		u.log.Warnf("Analyzer failed: %+v", err)
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	analysis := &entity.SymptomAnalysis{
		PatientID:       callerID,
		Symptoms:        req.Symptoms,
		Age:             req.Age,
		Gender:          req.Gender,
		Analysis:        result.ToJSON(),
		Recommendations: result.RecommendationText(),
	}

	if err := u.analysisRepo.Create(tx, analysis); err != nil {
		u.log.Warnf("Failed to create symptom analysis: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(tx, &callerID, entity.AuditActionAnalysisCreate, "symptom_analysis", strconv.Itoa(analysis.ID), converter.SymptomAnalysisToResponse(analysis)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.SymptomAnalysisToResponse(analysis), nil
}

func (u *symptomAnalysisUsecase) List(ctx context.Context, callerID uuid.UUID) (*dto.SymptomAnalysisListResponse, error) {
	analyses, err := u.analysisRepo.FindByPatientID(u.db.WithContext(ctx), callerID)
	if err != nil {
		u.log.Warnf("Failed to list symptom analyses for %s: %+v", callerID, err)
		return nil, err
	}

	responses := converter.SymptomAnalysesToResponses(analyses)

	return &dto.SymptomAnalysisListResponse{
		Analyses: responses,
		Total:    len(responses),
	}, nil
}

func (u *symptomAnalysisUsecase) Get(ctx context.Context, callerID uuid.UUID, id int) (*dto.SymptomAnalysisResponse, error) {
	analysis, err := u.analysisRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find symptom analysis %d: %+v", id, err)
		return nil, err
	}
	if analysis == nil {
		return nil, ErrAnalysisNotFound
	}

	if analysis.PatientID != callerID {
		return nil, ErrAnalysisForbidden
	}

	return converter.SymptomAnalysisToResponse(analysis), nil
}
