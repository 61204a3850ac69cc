package dto

import (
	"testing"

	appValidator "clinic-scheduling-api/pkg/validator"

	"github.com/google/uuid"
)

func TestCreateBookingRequestTimeFormat(t *testing.T) {
	v := appValidator.NewValidator()

	base := func() CreateBookingRequest {
		return CreateBookingRequest{
			PatientID:      uuid.New(),
			ProfessionalID: uuid.New(),
			RoomID:         uuid.New(),
			Date:           "2026-03-02",
			StartTime:      "09:00",
			EndTime:        "10:00",
		}
	}

	tests := []struct {
		name    string
		mutate  func(*CreateBookingRequest)
		wantErr bool
	}{
		{"valid request", func(r *CreateBookingRequest) {}, false},
		{"start with seconds", func(r *CreateBookingRequest) { r.StartTime = "09:00:30" }, true},
		{"end with seconds", func(r *CreateBookingRequest) { r.EndTime = "10:00:30" }, true},
		{"hour out of range", func(r *CreateBookingRequest) { r.StartTime = "25:00" }, true},
		{"not a clock time", func(r *CreateBookingRequest) { r.StartTime = "morning" }, true},
		{"date with time suffix", func(r *CreateBookingRequest) { r.Date = "2026-03-02T09:00" }, true},
		{"unknown status", func(r *CreateBookingRequest) { r.Status = "PENDIENTE" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base()
			tt.mutate(&req)
			err := v.Validate(req)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestUpdateBookingRequestTimeFormat(t *testing.T) {
	v := appValidator.NewValidator()

	if err := v.Validate(UpdateBookingRequest{}); err != nil {
		t.Errorf("empty update should pass validation, got %v", err)
	}
	if err := v.Validate(UpdateBookingRequest{StartTime: "09:00:30"}); err == nil {
		t.Error("seconds in start_time should fail validation")
	}
	if err := v.Validate(UpdateBookingRequest{StartTime: "14:30"}); err != nil {
		t.Errorf("HH:MM start_time should pass validation, got %v", err)
	}
}
