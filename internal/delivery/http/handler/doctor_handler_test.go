package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"healthhub-backend/internal/delivery/dto"
	"healthhub-backend/internal/delivery/http/handler"
	"healthhub-backend/internal/usecase"
	"healthhub-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDoctorUsecase struct {
	createProfileFn func(ctx context.Context, callerID uuid.UUID, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	getByIDFn       func(ctx context.Context, id int) (*dto.DoctorResponse, error)
	getByUserIDFn   func(ctx context.Context, userID uuid.UUID) (*dto.DoctorResponse, error)
	searchFn        func(ctx context.Context, specialty string, available *bool) (*dto.DoctorListResponse, error)
	updateProfileFn func(ctx context.Context, callerID uuid.UUID, doctorID int, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
}

func (s *stubDoctorUsecase) CreateProfile(ctx context.Context, callerID uuid.UUID, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	return s.createProfileFn(ctx, callerID, req)
}

func (s *stubDoctorUsecase) GetByID(ctx context.Context, id int) (*dto.DoctorResponse, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubDoctorUsecase) GetByUserID(ctx context.Context, userID uuid.UUID) (*dto.DoctorResponse, error) {
	return s.getByUserIDFn(ctx, userID)
}

func (s *stubDoctorUsecase) Search(ctx context.Context, specialty string, available *bool) (*dto.DoctorListResponse, error) {
	return s.searchFn(ctx, specialty, available)
}

func (s *stubDoctorUsecase) UpdateProfile(ctx context.Context, callerID uuid.UUID, doctorID int, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	return s.updateProfileFn(ctx, callerID, doctorID, req)
}

func TestDoctorHandler_CreateProfile_PatientForbidden(t *testing.T) {
	stub := &stubDoctorUsecase{
		createProfileFn: func(ctx context.Context, callerID uuid.UUID, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
			return nil, usecase.ErrNotDoctorRole
		},
	}
	h := handler.NewDoctorHandler(stub, validator.NewValidator())

	body := dto.CreateDoctorRequest{Specialty: "Cardiology"}
	req := authedRequest(t, http.MethodPost, "/api/doctors", body, uuid.New())
	rec := httptest.NewRecorder()

	h.CreateProfile(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDoctorHandler_CreateProfile_DuplicateConflict(t *testing.T) {
	stub := &stubDoctorUsecase{
		createProfileFn: func(ctx context.Context, callerID uuid.UUID, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
			return nil, usecase.ErrDoctorProfileExists
		},
	}
	h := handler.NewDoctorHandler(stub, validator.NewValidator())

	body := dto.CreateDoctorRequest{Specialty: "Cardiology"}
	req := authedRequest(t, http.MethodPost, "/api/doctors", body, uuid.New())
	rec := httptest.NewRecorder()

	h.CreateProfile(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestDoctorHandler_CreateProfile_Created(t *testing.T) {
	callerID := uuid.New()
	stub := &stubDoctorUsecase{
		createProfileFn: func(ctx context.Context, gotCaller uuid.UUID, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
			assert.Equal(t, callerID, gotCaller)
			return &dto.DoctorResponse{ID: 1, UserID: gotCaller, Specialty: req.Specialty}, nil
		},
	}
	h := handler.NewDoctorHandler(stub, validator.NewValidator())

	body := dto.CreateDoctorRequest{Specialty: "Cardiology"}
	req := authedRequest(t, http.MethodPost, "/api/doctors", body, callerID)
	rec := httptest.NewRecorder()

	h.CreateProfile(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got dto.DoctorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "Cardiology", got.Specialty)
}

func TestDoctorHandler_Search_InvalidAvailabilityFilter(t *testing.T) {
	h := handler.NewDoctorHandler(&stubDoctorUsecase{}, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/api/doctors?availability=maybe", nil)
	rec := httptest.NewRecorder()

	h.Search(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDoctorHandler_Search_PassesFilters(t *testing.T) {
	stub := &stubDoctorUsecase{
		searchFn: func(ctx context.Context, specialty string, available *bool) (*dto.DoctorListResponse, error) {
			assert.Equal(t, "Cardiology", specialty)
			require.NotNil(t, available)
			assert.False(t, *available)
			return &dto.DoctorListResponse{Doctors: []dto.DoctorResponse{}, Total: 0}, nil
		},
	}
	h := handler.NewDoctorHandler(stub, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/api/doctors?specialty=Cardiology&availability=false", nil)
	rec := httptest.NewRecorder()

	h.Search(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDoctorHandler_GetByID_NotFound(t *testing.T) {
	stub := &stubDoctorUsecase{
		getByIDFn: func(ctx context.Context, id int) (*dto.DoctorResponse, error) {
			return nil, usecase.ErrDoctorNotFound
		},
	}
	h := handler.NewDoctorHandler(stub, validator.NewValidator())

	req := httptest.NewRequest(http.MethodGet, "/api/doctors/99", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "99"})
	rec := httptest.NewRecorder()

	h.GetByID(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDoctorHandler_UpdateProfile_NotOwnerForbidden(t *testing.T) {
	stub := &stubDoctorUsecase{
		updateProfileFn: func(ctx context.Context, callerID uuid.UUID, doctorID int, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
			return nil, usecase.ErrNotProfileOwner
		},
	}
	h := handler.NewDoctorHandler(stub, validator.NewValidator())

	bio := "updated bio"
	body := dto.UpdateDoctorRequest{Bio: &bio}
	req := authedRequest(t, http.MethodPatch, "/api/doctors/1", body, uuid.New())
	req = mux.SetURLVars(req, map[string]string{"id": "1"})
	rec := httptest.NewRecorder()

	h.UpdateProfile(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
