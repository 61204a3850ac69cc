package entity

import "github.com/google/uuid"

// Actor is the authenticated caller: an identity plus the role set parsed
// once at the identity boundary. Usecases never re-parse roles.
type Actor struct {
	ID    uuid.UUID
	Email string
	Roles RoleList
}

// Is reports whether the actor holds the given role.
func (a Actor) Is(role Role) bool {
	return a.Roles.Has(role)
}
