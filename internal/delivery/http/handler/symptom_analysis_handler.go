package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"healthhub-backend/internal/delivery/dto"
	"healthhub-backend/internal/delivery/http/middleware"
	"healthhub-backend/internal/usecase"
	"healthhub-backend/pkg/response"
	"healthhub-backend/pkg/validator"

	"github.com/gorilla/mux"
)

type SymptomAnalysisHandler struct {
	analysisUsecase usecase.SymptomAnalysisUsecase
	validator       *validator.CustomValidator
}

func NewSymptomAnalysisHandler(analysisUsecase usecase.SymptomAnalysisUsecase, validator *validator.CustomValidator) *SymptomAnalysisHandler {
	return &SymptomAnalysisHandler{
		analysisUsecase: analysisUsecase,
		validator:       validator,
	}
}

func (h *SymptomAnalysisHandler) Create(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req dto.CreateSymptomAnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	analysis, err := h.analysisUsecase.Create(r.Context(), callerID, &req)
	if err != nil {
		response.InternalServerError(w, "Failed to analyze symptoms")
		return
	}

	response.JSON(w, http.StatusCreated, analysis)
}

func (h *SymptomAnalysisHandler) List(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	analyses, err := h.analysisUsecase.List(r.Context(), callerID)
	if err != nil {
		response.InternalServerError(w, "Failed to fetch symptom analyses")
		return
	}

	response.JSON(w, http.StatusOK, analyses)
}

func (h *SymptomAnalysisHandler) Get(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	vars := mux.Vars(r)
	analysisID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid analysis ID")
		return
	}

	analysis, err := h.analysisUsecase.Get(r.Context(), callerID, analysisID)
	if err != nil {
		switch err {
		case usecase.ErrAnalysisNotFound:
			response.NotFound(w, "Symptom analysis not found")
		case usecase.ErrAnalysisForbidden:
			response.Forbidden(w, "You cannot access this analysis")
		default:
			response.InternalServerError(w, "Failed to fetch symptom analysis")
		}
		return
	}

	response.JSON(w, http.StatusOK, analysis)
}
