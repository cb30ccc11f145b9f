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

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
	}
}

func (h *DoctorHandler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req dto.CreateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.doctorUsecase.CreateProfile(r.Context(), callerID, &req)
	if err != nil {
		switch err {
		case usecase.ErrNotDoctorRole:
			response.Forbidden(w, "Only doctor-role users may create a doctor profile")
		case usecase.ErrDoctorProfileExists:
			response.Error(w, http.StatusConflict, "Doctor profile already exists")
		case usecase.ErrUserNotFound:
			response.Unauthorized(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to create doctor profile")
		}
		return
	}

	response.JSON(w, http.StatusCreated, doctor)
}

func (h *DoctorHandler) Search(w http.ResponseWriter, r *http.Request) {
	specialty := r.URL.Query().Get("specialty")

	var available *bool
	if raw := r.URL.Query().Get("availability"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid availability filter")
			return
		}
		available = &parsed
	}

	doctors, err := h.doctorUsecase.Search(r.Context(), specialty, available)
	if err != nil {
		response.InternalServerError(w, "Failed to fetch doctors")
		return
	}

	response.JSON(w, http.StatusOK, doctors)
}

func (h *DoctorHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID")
		return
	}

	doctor, err := h.doctorUsecase.GetByID(r.Context(), doctorID)
	if err != nil {
		if err == usecase.ErrDoctorNotFound {
			response.NotFound(w, "Doctor not found")
			return
		}
		response.InternalServerError(w, "Failed to fetch doctor")
		return
	}

	response.JSON(w, http.StatusOK, doctor)
}

func (h *DoctorHandler) GetByUserID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID, err := uuid.Parse(vars["userId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	doctor, err := h.doctorUsecase.GetByUserID(r.Context(), userID)
	if err != nil {
		if err == usecase.ErrDoctorNotFound {
			response.NotFound(w, "Doctor profile not found")
			return
		}
		response.InternalServerError(w, "Failed to fetch doctor profile")
		return
	}

	response.JSON(w, http.StatusOK, doctor)
}

func (h *DoctorHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	vars := mux.Vars(r)
	doctorID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID")
		return
	}

	var req dto.UpdateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.doctorUsecase.UpdateProfile(r.Context(), callerID, doctorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrNotProfileOwner:
			response.Forbidden(w, "Doctor profile does not belong to you")
		default:
			response.InternalServerError(w, "Failed to update doctor profile")
		}
		return
	}

	response.JSON(w, http.StatusOK, doctor)
}
