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

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.Create(r.Context(), callerID, &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid appointment date")
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrSlotTaken:
			response.Error(w, http.StatusConflict, "Doctor already has an appointment at that time")
		default:
			response.InternalServerError(w, "Failed to create appointment")
		}
		return
	}

	response.JSON(w, http.StatusCreated, appointment)
}

func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	appointments, err := h.appointmentUsecase.List(r.Context(), callerID)
	if err != nil {
		response.InternalServerError(w, "Failed to fetch appointments")
		return
	}

	response.JSON(w, http.StatusOK, appointments)
}

func (h *AppointmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	vars := mux.Vars(r)
	appointmentID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID")
		return
	}

	appointment, err := h.appointmentUsecase.Get(r.Context(), callerID, appointmentID)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrAppointmentForbidden:
			response.Forbidden(w, "You are not a participant of this appointment")
		default:
			response.InternalServerError(w, "Failed to fetch appointment")
		}
		return
	}

	response.JSON(w, http.StatusOK, appointment)
}

func (h *AppointmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	vars := mux.Vars(r)
	appointmentID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID")
		return
	}

	var req dto.UpdateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.Update(r.Context(), callerID, appointmentID, &req)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrAppointmentForbidden:
			response.Forbidden(w, "You are not a participant of this appointment")
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid appointment date")
		case usecase.ErrSlotTaken:
			response.Error(w, http.StatusConflict, "Doctor already has an appointment at that time")
		default:
			response.InternalServerError(w, "Failed to update appointment")
		}
		return
	}

	response.JSON(w, http.StatusOK, appointment)
}

func (h *AppointmentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	vars := mux.Vars(r)
	appointmentID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID")
		return
	}

	if err := h.appointmentUsecase.Cancel(r.Context(), callerID, appointmentID); err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrAppointmentForbidden:
			response.Forbidden(w, "You are not a participant of this appointment")
		default:
			response.InternalServerError(w, "Failed to cancel appointment")
		}
		return
	}

	response.NoContent(w)
}
