package entity

import (
	"errors"
	"testing"
)

func TestParseRole(t *testing.T) {
	for _, s := range []string{"PACIENTE", "PROFESIONAL", "ADMINISTRATIVO"} {
		role, err := ParseRole(s)
		if err != nil {
			t.Errorf("ParseRole(%q) failed: %v", s, err)
		}
		if string(role) != s {
			t.Errorf("ParseRole(%q) = %q", s, role)
		}
	}

	for _, s := range []string{"", "paciente", "DOCTOR", "ADMIN"} {
		if _, err := ParseRole(s); !errors.Is(err, ErrUnknownRole) {
			t.Errorf("ParseRole(%q) error = %v, want ErrUnknownRole", s, err)
		}
	}
}

func TestRoleListHas(t *testing.T) {
	rl := RoleList{RolePatient, RoleProfessional}
	if !rl.Has(RolePatient) || !rl.Has(RoleProfessional) {
		t.Error("Has should find present roles")
	}
	if rl.Has(RoleAdministrative) {
		t.Error("Has should not find absent roles")
	}
}

func TestRoleListScan(t *testing.T) {
	var rl RoleList
	if err := rl.Scan([]byte(`["PACIENTE","ADMINISTRATIVO"]`)); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(rl) != 2 || rl[0] != RolePatient || rl[1] != RoleAdministrative {
		t.Errorf("Scan result = %v", rl)
	}
}

// Malformed stored roles must fail the scan, never degrade to an empty set.
func TestRoleListScan_Malformed(t *testing.T) {
	cases := []struct {
		name  string
		value interface{}
	}{
		{"null column", nil},
		{"not json", []byte(`{{{`)},
		{"empty array", []byte(`[]`)},
		{"unknown role", []byte(`["PACIENTE","WIZARD"]`)},
		{"wrong shape", []byte(`{"role":"PACIENTE"}`)},
		{"unsupported type", 42},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var rl RoleList
			if err := rl.Scan(tc.value); err == nil {
				t.Errorf("Scan(%v) succeeded, want error", tc.value)
			}
			if len(rl) != 0 {
				t.Errorf("failed Scan left roles behind: %v", rl)
			}
		})
	}
}

func TestRoleListValue_RejectsEmpty(t *testing.T) {
	var rl RoleList
	if _, err := rl.Value(); err == nil {
		t.Error("Value on an empty role list should fail")
	}
}

func TestRoleListRoundTrip(t *testing.T) {
	original := RoleList{RoleProfessional}
	v, err := original.Value()
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}

	var decoded RoleList
	if err := decoded.Scan(v); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(decoded) != 1 || decoded[0] != RoleProfessional {
		t.Errorf("round trip = %v", decoded)
	}
}

func TestParseWeekday(t *testing.T) {
	day, err := ParseWeekday("Monday")
	if err != nil {
		t.Fatalf("ParseWeekday(Monday) failed: %v", err)
	}
	if day.String() != "Monday" {
		t.Errorf("ParseWeekday(Monday) = %v", day)
	}

	for _, s := range []string{"", "monday", "Lunes", "Funday"} {
		if _, err := ParseWeekday(s); !errors.Is(err, ErrUnknownWeekday) {
			t.Errorf("ParseWeekday(%q) error = %v, want ErrUnknownWeekday", s, err)
		}
	}
}
