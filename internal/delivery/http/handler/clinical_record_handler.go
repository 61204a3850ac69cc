package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"clinic-scheduling-api/internal/delivery/dto"
	"clinic-scheduling-api/internal/delivery/http/middleware"
	"clinic-scheduling-api/internal/usecase"
	"clinic-scheduling-api/pkg/response"
	"clinic-scheduling-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ClinicalRecordHandler struct {
	recordUsecase usecase.ClinicalRecordUsecase
	validator     *validator.CustomValidator
}

func NewClinicalRecordHandler(recordUsecase usecase.ClinicalRecordUsecase, validator *validator.CustomValidator) *ClinicalRecordHandler {
	return &ClinicalRecordHandler{
		recordUsecase: recordUsecase,
		validator:     validator,
	}
}

func (h *ClinicalRecordHandler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.CreateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.recordUsecase.Create(r.Context(), &req, actor)
	if err != nil {
		h.writeRecordError(w, err, "Failed to create clinical record")
		return
	}

	response.Success(w, http.StatusCreated, "Clinical record created successfully", record)
}

func (h *ClinicalRecordHandler) GetRecord(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	recordID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid record ID", nil)
		return
	}

	record, err := h.recordUsecase.Get(r.Context(), recordID, actor)
	if err != nil {
		h.writeRecordError(w, err, "Failed to get clinical record")
		return
	}

	response.Success(w, http.StatusOK, "Clinical record retrieved successfully", record)
}

func (h *ClinicalRecordHandler) ListRecords(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	query := &dto.RecordQuery{}
	if raw := r.URL.Query().Get("patient_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
			return
		}
		query.PatientID = &id
	}
	if raw := r.URL.Query().Get("professional_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid professional ID", nil)
			return
		}
		query.ProfessionalID = &id
	}
	if raw := r.URL.Query().Get("booking_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
			return
		}
		query.BookingID = &id
	}
	query.Limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	query.Offset, _ = strconv.Atoi(r.URL.Query().Get("offset"))

	records, err := h.recordUsecase.List(r.Context(), query, actor)
	if err != nil {
		h.writeRecordError(w, err, "Failed to list clinical records")
		return
	}

	response.Success(w, http.StatusOK, "Clinical records retrieved successfully", records)
}

func (h *ClinicalRecordHandler) UpdateRecord(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	recordID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid record ID", nil)
		return
	}

	var req dto.UpdateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.recordUsecase.Update(r.Context(), recordID, &req, actor)
	if err != nil {
		h.writeRecordError(w, err, "Failed to update clinical record")
		return
	}

	response.Success(w, http.StatusOK, "Clinical record updated successfully", record)
}

func (h *ClinicalRecordHandler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	recordID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid record ID", nil)
		return
	}

	if err := h.recordUsecase.Remove(r.Context(), recordID, actor); err != nil {
		h.writeRecordError(w, err, "Failed to delete clinical record")
		return
	}

	response.Success(w, http.StatusOK, "Clinical record deleted successfully", nil)
}

func (h *ClinicalRecordHandler) writeRecordError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrRecordNotFound):
		response.NotFound(w, "Clinical record not found")
	case errors.Is(err, usecase.ErrBookingNotFound):
		response.NotFound(w, "Booking not found")
	case errors.Is(err, usecase.ErrPatientNotFound):
		response.NotFound(w, "Patient not found")
	case errors.Is(err, usecase.ErrProfessionalNotFound):
		response.NotFound(w, "Professional not found")
	case errors.Is(err, usecase.ErrForbidden):
		response.Forbidden(w, "You don't have permission for this clinical record")
	case errors.Is(err, usecase.ErrNotAPatient):
		response.UnprocessableEntity(w, "User does not hold the patient role")
	case errors.Is(err, usecase.ErrNotAProfessional):
		response.UnprocessableEntity(w, "User does not hold the professional role")
	case errors.Is(err, usecase.ErrBookingNotConfirmed):
		response.PreconditionFailed(w, "Booking must be confirmed before a record can be attached")
	case errors.Is(err, usecase.ErrRecordMismatch):
		response.UnprocessableEntity(w, "Record participants do not match the booking")
	default:
		response.InternalServerError(w, fallback)
	}
}
