package service

import (
	"clinic-scheduling-api/internal/domain/entity"

	"github.com/google/uuid"
)

// Operation is the kind of access being requested on a row.
type Operation string

const (
	OpRead   Operation = "read"
	OpWrite  Operation = "write"
	OpDelete Operation = "delete"
)

// ListScope is the row filter a list query must apply for an actor.
// Exactly one of All, Empty, or an owner id is in effect.
type ListScope struct {
	All            bool
	Empty          bool
	PatientID      *uuid.UUID
	ProfessionalID *uuid.UUID
}

// AccessPolicy is the stateless role-scoped gate on bookings and clinical
// records. An actor holding multiple roles gets the most permissive
// applicable rule for its relation to the row.
type AccessPolicy struct{}

func NewAccessPolicy() *AccessPolicy {
	return &AccessPolicy{}
}

// CanAccessBooking decides visibility and mutation rights on one booking.
// Administrators are unrestricted; patients and professionals only reach
// rows naming them. Denial is Forbidden, never NotFound: an existing row
// must not leak or hide its existence through a 404.
func (p *AccessPolicy) CanAccessBooking(actor entity.Actor, booking *entity.Booking, op Operation) bool {
	if actor.Is(entity.RoleAdministrative) {
		return true
	}
	if actor.Is(entity.RolePatient) && booking.PatientID == actor.ID {
		return true
	}
	if actor.Is(entity.RoleProfessional) && booking.ProfessionalID == actor.ID {
		return true
	}
	return false
}

// CanAccessRecord decides rights on one clinical record. Patients may read
// their own records but never mutate them; professionals mutate only their
// own; deletion is administrative only.
func (p *AccessPolicy) CanAccessRecord(actor entity.Actor, record *entity.ClinicalRecord, op Operation) bool {
	if actor.Is(entity.RoleAdministrative) {
		return true
	}

	switch op {
	case OpRead:
		if actor.Is(entity.RolePatient) && record.PatientID == actor.ID {
			return true
		}
		if actor.Is(entity.RoleProfessional) && record.ProfessionalID == actor.ID {
			return true
		}
	case OpWrite:
		if actor.Is(entity.RoleProfessional) && record.ProfessionalID == actor.ID {
			return true
		}
	case OpDelete:
		// admin only, handled above
	}
	return false
}

// ListScopeFor computes the store-level row filter for list queries:
// administrative sees all, a patient sees rows naming them as patient, a
// professional sees rows naming them as professional, anyone else sees an
// empty set rather than an error.
func (p *AccessPolicy) ListScopeFor(actor entity.Actor) ListScope {
	if actor.Is(entity.RoleAdministrative) {
		return ListScope{All: true}
	}
	if actor.Is(entity.RolePatient) {
		id := actor.ID
		return ListScope{PatientID: &id}
	}
	if actor.Is(entity.RoleProfessional) {
		id := actor.ID
		return ListScope{ProfessionalID: &id}
	}
	return ListScope{Empty: true}
}
