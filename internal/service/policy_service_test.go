package service_test

import (
	"testing"

	"healthhub-backend/internal/domain/entity"
	"healthhub-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPolicyService_Can(t *testing.T) {
	s := service.NewPolicyService()

	assert.False(t, s.Can(entity.RolePatient, service.ResourceDoctor, service.ActionCreate))
	assert.True(t, s.Can(entity.RoleDoctor, service.ResourceDoctor, service.ActionCreate))

	assert.True(t, s.Can(entity.RolePatient, service.ResourceAppointment, service.ActionCancel))
	assert.True(t, s.Can(entity.RoleDoctor, service.ResourceAppointment, service.ActionCancel))

	assert.True(t, s.Can(entity.RolePatient, service.ResourceSymptomAnalysis, service.ActionCreate))
	assert.False(t, s.Can(entity.RolePatient, service.ResourceSymptomAnalysis, service.ActionUpdate))

	// unknown role holds no capabilities
	assert.False(t, s.Can(entity.Role("admin"), service.ResourceAppointment, service.ActionRead))
}

func TestPolicyService_IsAppointmentParticipant(t *testing.T) {
	s := service.NewPolicyService()

	patientID := uuid.New()
	otherID := uuid.New()
	doctorProfileID := 7

	appointment := &entity.Appointment{
		ID:        1,
		PatientID: patientID,
		DoctorID:  doctorProfileID,
	}

	assert.True(t, s.IsAppointmentParticipant(patientID, nil, appointment))
	assert.True(t, s.IsAppointmentParticipant(otherID, &doctorProfileID, appointment))

	unrelatedProfile := 8
	assert.False(t, s.IsAppointmentParticipant(otherID, &unrelatedProfile, appointment))
	assert.False(t, s.IsAppointmentParticipant(otherID, nil, appointment))
}

func TestPolicyService_CanAccessHealthRecord(t *testing.T) {
	s := service.NewPolicyService()

	ownerID := uuid.New()
	record := &entity.HealthRecord{ID: 1, PatientID: ownerID}

	owner := &entity.User{ID: ownerID, Role: entity.RolePatient}
	stranger := &entity.User{ID: uuid.New(), Role: entity.RolePatient}
	doctor := &entity.User{ID: uuid.New(), Role: entity.RoleDoctor}

	assert.True(t, s.CanAccessHealthRecord(owner, record))
	assert.False(t, s.CanAccessHealthRecord(stranger, record))
	assert.True(t, s.CanAccessHealthRecord(doctor, record))
}
