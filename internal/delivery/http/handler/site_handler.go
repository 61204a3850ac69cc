package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"clinic-scheduling-api/internal/delivery/dto"
	"clinic-scheduling-api/internal/delivery/http/middleware"
	"clinic-scheduling-api/internal/usecase"
	"clinic-scheduling-api/pkg/response"
	"clinic-scheduling-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type SiteHandler struct {
	siteUsecase usecase.SiteUsecase
	validator   *validator.CustomValidator
}

func NewSiteHandler(siteUsecase usecase.SiteUsecase, validator *validator.CustomValidator) *SiteHandler {
	return &SiteHandler{
		siteUsecase: siteUsecase,
		validator:   validator,
	}
}

func (h *SiteHandler) CreateSite(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.CreateSiteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	site, err := h.siteUsecase.Create(r.Context(), &req, actor)
	if err != nil {
		response.InternalServerError(w, "Failed to create site")
		return
	}

	response.Success(w, http.StatusCreated, "Site created successfully", site)
}

func (h *SiteHandler) GetSite(w http.ResponseWriter, r *http.Request) {
	siteID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid site ID", nil)
		return
	}

	site, err := h.siteUsecase.Get(r.Context(), siteID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrSiteNotFound):
			response.NotFound(w, "Site not found")
		default:
			response.InternalServerError(w, "Failed to get site")
		}
		return
	}

	response.Success(w, http.StatusOK, "Site retrieved successfully", site)
}

func (h *SiteHandler) ListSites(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") != "false"

	sites, err := h.siteUsecase.List(r.Context(), activeOnly)
	if err != nil {
		response.InternalServerError(w, "Failed to list sites")
		return
	}

	response.Success(w, http.StatusOK, "Sites retrieved successfully", sites)
}

func (h *SiteHandler) UpdateSite(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	siteID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid site ID", nil)
		return
	}

	var req dto.UpdateSiteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	site, err := h.siteUsecase.Update(r.Context(), siteID, &req, actor)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrSiteNotFound):
			response.NotFound(w, "Site not found")
		default:
			response.InternalServerError(w, "Failed to update site")
		}
		return
	}

	response.Success(w, http.StatusOK, "Site updated successfully", site)
}
