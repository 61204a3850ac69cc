package service

import (
	"testing"

	"clinic-scheduling-api/internal/domain/entity"

	"github.com/google/uuid"
)

func actorWith(id uuid.UUID, roles ...entity.Role) entity.Actor {
	return entity.Actor{ID: id, Email: "test@clinic.local", Roles: roles}
}

func TestCanAccessBooking(t *testing.T) {
	policy := NewAccessPolicy()
	patientID := uuid.New()
	professionalID := uuid.New()
	otherID := uuid.New()

	booking := &entity.Booking{PatientID: patientID, ProfessionalID: professionalID}

	tests := []struct {
		name  string
		actor entity.Actor
		want  bool
	}{
		{"admin always", actorWith(otherID, entity.RoleAdministrative), true},
		{"own patient", actorWith(patientID, entity.RolePatient), true},
		{"other patient", actorWith(otherID, entity.RolePatient), false},
		{"own professional", actorWith(professionalID, entity.RoleProfessional), true},
		{"other professional", actorWith(otherID, entity.RoleProfessional), false},
		{"patient id but professional role", actorWith(patientID, entity.RoleProfessional), false},
		{"no roles matching", actorWith(otherID), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, op := range []Operation{OpRead, OpWrite, OpDelete} {
				if got := policy.CanAccessBooking(tt.actor, booking, op); got != tt.want {
					t.Errorf("CanAccessBooking(%s) = %v, want %v", op, got, tt.want)
				}
			}
		})
	}
}

// An actor holding several roles gets the union of role rules: a user who is
// both patient and professional reaches a booking through either relation.
func TestCanAccessBooking_MultiRole(t *testing.T) {
	policy := NewAccessPolicy()
	userID := uuid.New()

	asPatient := &entity.Booking{PatientID: userID, ProfessionalID: uuid.New()}
	asProfessional := &entity.Booking{PatientID: uuid.New(), ProfessionalID: userID}
	unrelated := &entity.Booking{PatientID: uuid.New(), ProfessionalID: uuid.New()}

	actor := actorWith(userID, entity.RolePatient, entity.RoleProfessional)

	if !policy.CanAccessBooking(actor, asPatient, OpRead) {
		t.Error("dual-role actor should reach a booking naming them as patient")
	}
	if !policy.CanAccessBooking(actor, asProfessional, OpRead) {
		t.Error("dual-role actor should reach a booking naming them as professional")
	}
	if policy.CanAccessBooking(actor, unrelated, OpRead) {
		t.Error("dual-role actor should not reach an unrelated booking")
	}
}

func TestCanAccessRecord(t *testing.T) {
	policy := NewAccessPolicy()
	patientID := uuid.New()
	professionalID := uuid.New()
	otherID := uuid.New()

	record := &entity.ClinicalRecord{PatientID: patientID, ProfessionalID: professionalID}

	tests := []struct {
		name  string
		actor entity.Actor
		op    Operation
		want  bool
	}{
		{"admin read", actorWith(otherID, entity.RoleAdministrative), OpRead, true},
		{"admin write", actorWith(otherID, entity.RoleAdministrative), OpWrite, true},
		{"admin delete", actorWith(otherID, entity.RoleAdministrative), OpDelete, true},
		{"own patient read", actorWith(patientID, entity.RolePatient), OpRead, true},
		{"own patient write", actorWith(patientID, entity.RolePatient), OpWrite, false},
		{"own patient delete", actorWith(patientID, entity.RolePatient), OpDelete, false},
		{"other patient read", actorWith(otherID, entity.RolePatient), OpRead, false},
		{"own professional read", actorWith(professionalID, entity.RoleProfessional), OpRead, true},
		{"own professional write", actorWith(professionalID, entity.RoleProfessional), OpWrite, true},
		{"own professional delete", actorWith(professionalID, entity.RoleProfessional), OpDelete, false},
		{"other professional write", actorWith(otherID, entity.RoleProfessional), OpWrite, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := policy.CanAccessRecord(tt.actor, record, tt.op); got != tt.want {
				t.Errorf("CanAccessRecord(%s) = %v, want %v", tt.op, got, tt.want)
			}
		})
	}
}

func TestListScopeFor(t *testing.T) {
	policy := NewAccessPolicy()
	userID := uuid.New()

	admin := policy.ListScopeFor(actorWith(userID, entity.RoleAdministrative))
	if !admin.All {
		t.Error("administrative actor should see all rows")
	}

	patient := policy.ListScopeFor(actorWith(userID, entity.RolePatient))
	if patient.PatientID == nil || *patient.PatientID != userID {
		t.Error("patient scope should pin rows to the actor's patient id")
	}

	professional := policy.ListScopeFor(actorWith(userID, entity.RoleProfessional))
	if professional.ProfessionalID == nil || *professional.ProfessionalID != userID {
		t.Error("professional scope should pin rows to the actor's professional id")
	}

	// Admin beats the narrower roles when combined.
	combined := policy.ListScopeFor(actorWith(userID, entity.RolePatient, entity.RoleAdministrative))
	if !combined.All {
		t.Error("admin role in a multi-role set should widen the scope to all")
	}

	empty := policy.ListScopeFor(actorWith(userID))
	if !empty.Empty {
		t.Error("actor with no scheduling roles should get the empty scope")
	}
}
