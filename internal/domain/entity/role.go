package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// Role is one of the closed set of role tags a user may hold.
type Role string

const (
	RolePatient        Role = "PACIENTE"
	RoleProfessional   Role = "PROFESIONAL"
	RoleAdministrative Role = "ADMINISTRATIVO"
)

// ErrUnknownRole indicates stored or supplied role data outside the closed
// enumeration. It is a data-integrity failure, never downgraded to "no roles".
var ErrUnknownRole = errors.New("unknown role")

// ParseRole validates a raw role tag against the closed enumeration.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RolePatient, RoleProfessional, RoleAdministrative:
		return Role(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
}

// RoleList is a set of role tags persisted as a JSONB array.
type RoleList []Role

// Has reports whether the list contains the given role.
func (rl RoleList) Has(role Role) bool {
	for _, r := range rl {
		if r == role {
			return true
		}
	}
	return false
}

// Strings returns the list as plain strings, for token claims and responses.
func (rl RoleList) Strings() []string {
	out := make([]string, len(rl))
	for i, r := range rl {
		out[i] = string(r)
	}
	return out
}

// Value implements driver.Valuer.
func (rl RoleList) Value() (driver.Value, error) {
	if len(rl) == 0 {
		return nil, errors.New("role list must not be empty")
	}
	return json.Marshal(rl)
}

// Scan implements sql.Scanner. Malformed or unknown stored roles fail the
// scan instead of silently producing an empty set.
func (rl *RoleList) Scan(value interface{}) error {
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	case nil:
		return errors.New("role list column is null")
	default:
		return fmt.Errorf("unsupported role list column type %T", value)
	}

	var raw []string
	if err := json.Unmarshal(bytes, &raw); err != nil {
		return fmt.Errorf("malformed role list: %w", err)
	}
	if len(raw) == 0 {
		return errors.New("stored role list is empty")
	}

	parsed := make(RoleList, 0, len(raw))
	for _, s := range raw {
		role, err := ParseRole(s)
		if err != nil {
			return err
		}
		parsed = append(parsed, role)
	}

	*rl = parsed
	return nil
}
