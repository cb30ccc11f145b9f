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

type HealthRecordHandler struct {
	recordUsecase usecase.HealthRecordUsecase
	validator     *validator.CustomValidator
}

func NewHealthRecordHandler(recordUsecase usecase.HealthRecordUsecase, validator *validator.CustomValidator) *HealthRecordHandler {
	return &HealthRecordHandler{
		recordUsecase: recordUsecase,
		validator:     validator,
	}
}

func (h *HealthRecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req dto.CreateHealthRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.recordUsecase.Create(r.Context(), callerID, &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidRecordDate:
			response.Error(w, http.StatusBadRequest, "Invalid record date")
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrRecordForbidden:
			response.Forbidden(w, "You cannot create records for another patient")
		default:
			response.InternalServerError(w, "Failed to create health record")
		}
		return
	}

	response.JSON(w, http.StatusCreated, record)
}

func (h *HealthRecordHandler) List(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	records, err := h.recordUsecase.List(r.Context(), callerID)
	if err != nil {
		response.InternalServerError(w, "Failed to fetch health records")
		return
	}

	response.JSON(w, http.StatusOK, records)
}

func (h *HealthRecordHandler) Get(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	vars := mux.Vars(r)
	recordID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid record ID")
		return
	}

	record, err := h.recordUsecase.Get(r.Context(), callerID, recordID)
	if err != nil {
		switch err {
		case usecase.ErrRecordNotFound:
			response.NotFound(w, "Health record not found")
		case usecase.ErrRecordForbidden:
			response.Forbidden(w, "You cannot access this health record")
		default:
			response.InternalServerError(w, "Failed to fetch health record")
		}
		return
	}

	response.JSON(w, http.StatusOK, record)
}

func (h *HealthRecordHandler) Update(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	vars := mux.Vars(r)
	recordID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid record ID")
		return
	}

	var req dto.UpdateHealthRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.recordUsecase.Update(r.Context(), callerID, recordID, &req)
	if err != nil {
		switch err {
		case usecase.ErrRecordNotFound:
			response.NotFound(w, "Health record not found")
		case usecase.ErrRecordForbidden:
			response.Forbidden(w, "You cannot access this health record")
		case usecase.ErrInvalidRecordDate:
			response.Error(w, http.StatusBadRequest, "Invalid record date")
		default:
			response.InternalServerError(w, "Failed to update health record")
		}
		return
	}

	response.JSON(w, http.StatusOK, record)
}
