package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"clinic-scheduling-api/internal/delivery/dto"
	"clinic-scheduling-api/internal/delivery/http/middleware"
	"clinic-scheduling-api/internal/domain/entity"
	"clinic-scheduling-api/internal/usecase"
	"clinic-scheduling-api/pkg/response"
	"clinic-scheduling-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AvailabilityHandler struct {
	availabilityUsecase usecase.AvailabilityUsecase
	validator           *validator.CustomValidator
}

func NewAvailabilityHandler(availabilityUsecase usecase.AvailabilityUsecase, validator *validator.CustomValidator) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityUsecase: availabilityUsecase,
		validator:           validator,
	}
}

func (h *AvailabilityHandler) CreateWindow(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.CreateWindowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	window, err := h.availabilityUsecase.CreateWindow(r.Context(), &req, actor)
	if err != nil {
		h.writeWindowError(w, err, "Failed to create availability window")
		return
	}

	response.Success(w, http.StatusCreated, "Availability window created successfully", window)
}

func (h *AvailabilityHandler) GetWindow(w http.ResponseWriter, r *http.Request) {
	windowID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid window ID", nil)
		return
	}

	window, err := h.availabilityUsecase.GetWindow(r.Context(), windowID)
	if err != nil {
		h.writeWindowError(w, err, "Failed to get availability window")
		return
	}

	response.Success(w, http.StatusOK, "Availability window retrieved successfully", window)
}

func (h *AvailabilityHandler) ListWindows(w http.ResponseWriter, r *http.Request) {
	query := &dto.WindowQuery{
		DayOfWeek:  r.URL.Query().Get("day_of_week"),
		ActiveOnly: r.URL.Query().Get("active") != "false",
	}

	if raw := r.URL.Query().Get("professional_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid professional ID", nil)
			return
		}
		query.ProfessionalID = &id
	}
	if raw := r.URL.Query().Get("room_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid room ID", nil)
			return
		}
		query.RoomID = &id
	}

	windows, err := h.availabilityUsecase.ListWindows(r.Context(), query)
	if err != nil {
		h.writeWindowError(w, err, "Failed to list availability windows")
		return
	}

	response.Success(w, http.StatusOK, "Availability windows retrieved successfully", windows)
}

func (h *AvailabilityHandler) UpdateWindow(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	windowID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid window ID", nil)
		return
	}

	var req dto.UpdateWindowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	window, err := h.availabilityUsecase.UpdateWindow(r.Context(), windowID, &req, actor)
	if err != nil {
		h.writeWindowError(w, err, "Failed to update availability window")
		return
	}

	response.Success(w, http.StatusOK, "Availability window updated successfully", window)
}

func (h *AvailabilityHandler) DeactivateWindow(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	windowID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid window ID", nil)
		return
	}

	if err := h.availabilityUsecase.DeactivateWindow(r.Context(), windowID, actor); err != nil {
		h.writeWindowError(w, err, "Failed to deactivate availability window")
		return
	}

	response.Success(w, http.StatusOK, "Availability window deactivated successfully", nil)
}

func (h *AvailabilityHandler) DeleteWindow(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	windowID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid window ID", nil)
		return
	}

	if err := h.availabilityUsecase.DeleteWindow(r.Context(), windowID, actor); err != nil {
		h.writeWindowError(w, err, "Failed to delete availability window")
		return
	}

	response.Success(w, http.StatusOK, "Availability window deleted successfully", nil)
}

func (h *AvailabilityHandler) writeWindowError(w http.ResponseWriter, err error, fallback string) {
	var conflict *usecase.WindowConflictError
	switch {
	case errors.Is(err, usecase.ErrWindowNotFound):
		response.NotFound(w, "Availability window not found")
	case errors.Is(err, usecase.ErrProfessionalNotFound):
		response.NotFound(w, "Professional not found")
	case errors.Is(err, usecase.ErrRoomNotFound):
		response.NotFound(w, "Room not found")
	case errors.Is(err, usecase.ErrNotAProfessional):
		response.UnprocessableEntity(w, "User does not hold the professional role")
	case errors.Is(err, usecase.ErrInvalidInterval):
		response.Error(w, http.StatusBadRequest, "Start time must be before end time", nil)
	case errors.Is(err, entity.ErrUnknownWeekday):
		response.Error(w, http.StatusBadRequest, "Unknown day of week", nil)
	case errors.As(err, &conflict):
		if conflict.ConflictingID != uuid.Nil {
			response.Error(w, http.StatusConflict, "Window overlaps an existing availability window", map[string]string{
				"conflicting_window_id": conflict.ConflictingID.String(),
			})
		} else {
			response.Conflict(w, "Window overlaps an existing availability window")
		}
	case errors.Is(err, usecase.ErrWindowConflict):
		response.Conflict(w, "Window overlaps an existing availability window")
	default:
		response.InternalServerError(w, fallback)
	}
}
