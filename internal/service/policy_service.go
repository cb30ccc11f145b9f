package service

import (
	"healthhub-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// Resource identifies an API resource class for authorization decisions
type Resource string

// Action identifies an operation on a resource
type Action string

const (
	ResourceDoctor          Resource = "doctor"
	ResourceAppointment     Resource = "appointment"
	ResourceHealthRecord    Resource = "health_record"
	ResourceSymptomAnalysis Resource = "symptom_analysis"
)

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionCancel Action = "cancel"
)

type capability struct {
	role     entity.Role
	resource Resource
	action   Action
}

// PolicyService is the single authorization evaluator: role capabilities are
// declared once here instead of being re-checked ad hoc in each handler.
// Ownership predicates live alongside so usecases ask one component.
type PolicyService struct {
	capabilities map[capability]struct{}
}

func NewPolicyService() *PolicyService {
	s := &PolicyService{capabilities: make(map[capability]struct{})}

	s.grant(entity.RolePatient, ResourceAppointment, ActionCreate, ActionRead, ActionUpdate, ActionCancel)
	s.grant(entity.RolePatient, ResourceHealthRecord, ActionCreate, ActionRead, ActionUpdate)
	s.grant(entity.RolePatient, ResourceSymptomAnalysis, ActionCreate, ActionRead)

	s.grant(entity.RoleDoctor, ResourceDoctor, ActionCreate, ActionRead, ActionUpdate)
	s.grant(entity.RoleDoctor, ResourceAppointment, ActionCreate, ActionRead, ActionUpdate, ActionCancel)
	s.grant(entity.RoleDoctor, ResourceHealthRecord, ActionCreate, ActionRead, ActionUpdate)
	s.grant(entity.RoleDoctor, ResourceSymptomAnalysis, ActionCreate, ActionRead)

	return s
}

func (s *PolicyService) grant(role entity.Role, resource Resource, actions ...Action) {
	for _, action := range actions {
		s.capabilities[capability{role, resource, action}] = struct{}{}
	}
}

// Can reports whether the role holds the capability for the resource/action pair
func (s *PolicyService) Can(role entity.Role, resource Resource, action Action) bool {
	_, ok := s.capabilities[capability{role, resource, action}]
	return ok
}

// IsAppointmentParticipant reports whether the caller is either the patient on
// the appointment or the doctor whose profile the appointment targets.
// doctorProfileID is nil when the caller has no doctor profile.
func (s *PolicyService) IsAppointmentParticipant(callerID uuid.UUID, doctorProfileID *int, appointment *entity.Appointment) bool {
	if appointment.InvolvesPatient(callerID) {
		return true
	}
	return doctorProfileID != nil && *doctorProfileID == appointment.DoctorID
}

// CanAccessHealthRecord reports whether the caller may read or amend a record:
// the owning patient, or any doctor.
func (s *PolicyService) CanAccessHealthRecord(caller *entity.User, record *entity.HealthRecord) bool {
	if caller.IsDoctor() {
		return true
	}
	return record.PatientID == caller.ID
}
