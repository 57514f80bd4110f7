package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sleepitron/sleepitron/internal/api/validation"
	"github.com/sleepitron/sleepitron/internal/domain"
	"github.com/sleepitron/sleepitron/internal/service"
	"github.com/sleepitron/sleepitron/pkg/problem"
)

type DoctorVisitHandler struct {
	service service.DoctorVisitService
}

func NewDoctorVisitHandler(service service.DoctorVisitService) *DoctorVisitHandler {
	return &DoctorVisitHandler{service: service}
}

// Create handles POST /v1/doctor-visits
// @Summary Record a doctor visit
// @Description Log a doctor visit with optional notes, prescriptions, and a follow-up date.
// @Tags doctor-visits
// @Accept json
// @Produce json
// @Param request body domain.CreateDoctorVisitRequest true "Visit data"
// @Success 201 {object} domain.DoctorVisitResponse "New visit created"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 422 {object} problem.Problem "Request body contains invalid fields"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /doctor-visits [post]
func (h *DoctorVisitHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateDoctorVisitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	visit, err := h.service.Create(r.Context(), &req)
	if err != nil {
		problem.InternalError("Failed to create doctor visit").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(visit)
}

// List handles GET /v1/doctor-visits
// @Summary List doctor visits
// @Description Fetch doctor visits, newest first. Filter by calendar-date range (inclusive on both ends).
// @Tags doctor-visits
// @Produce json
// @Param from query string false "Start of date range (YYYY-MM-DD, inclusive)" example(2024-03-01)
// @Param to query string false "End of date range (YYYY-MM-DD, inclusive)" example(2024-03-31)
// @Success 200 {array} domain.DoctorVisitResponse
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /doctor-visits [get]
func (h *DoctorVisitHandler) List(w http.ResponseWriter, r *http.Request) {
	var filter domain.DoctorVisitFilter
	var fieldErrors []problem.FieldError

	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		if !validDate(fromStr) {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "from",
				Message: "must be a valid calendar date (YYYY-MM-DD)",
			})
		} else {
			filter.From = fromStr
		}
	}

	if toStr := r.URL.Query().Get("to"); toStr != "" {
		if !validDate(toStr) {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "to",
				Message: "must be a valid calendar date (YYYY-MM-DD)",
			})
		} else {
			filter.To = toStr
		}
	}

	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	visits, err := h.service.List(r.Context(), filter)
	if err != nil {
		problem.InternalError("Failed to list doctor visits").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(visits)
}

// GetByID handles GET /v1/doctor-visits/{visitId}
// @Summary Get a doctor visit
// @Tags doctor-visits
// @Produce json
// @Param visitId path string true "Visit UUID" format(uuid)
// @Success 200 {object} domain.DoctorVisitResponse
// @Failure 400 {object} problem.Problem "Invalid visit ID"
// @Failure 404 {object} problem.Problem "Visit not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /doctor-visits/{visitId} [get]
func (h *DoctorVisitHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	visitID, err := uuid.Parse(chi.URLParam(r, "visitId"))
	if err != nil {
		problem.BadRequest("Invalid visit ID format").Write(w)
		return
	}

	visit, err := h.service.GetByID(r.Context(), visitID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Doctor visit not found").Write(w)
			return
		}
		problem.InternalError("Failed to get doctor visit").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(visit)
}

// Update handles PATCH /v1/doctor-visits/{visitId}
// @Summary Update a doctor visit
// @Description Partial patch: only provided fields change.
// @Tags doctor-visits
// @Accept json
// @Produce json
// @Param visitId path string true "Visit UUID" format(uuid)
// @Param request body domain.UpdateDoctorVisitRequest true "Fields to update"
// @Success 200 {object} domain.DoctorVisitResponse
// @Failure 400 {object} problem.Problem "Invalid request"
// @Failure 404 {object} problem.Problem "Visit not found"
// @Failure 422 {object} problem.Problem "Request body contains invalid fields"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /doctor-visits/{visitId} [patch]
func (h *DoctorVisitHandler) Update(w http.ResponseWriter, r *http.Request) {
	visitID, err := uuid.Parse(chi.URLParam(r, "visitId"))
	if err != nil {
		problem.BadRequest("Invalid visit ID format").Write(w)
		return
	}

	var req domain.UpdateDoctorVisitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	visit, err := h.service.Update(r.Context(), visitID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Doctor visit not found").Write(w)
			return
		}
		problem.InternalError("Failed to update doctor visit").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(visit)
}

// Delete handles DELETE /v1/doctor-visits/{visitId}
// @Summary Delete a doctor visit
// @Tags doctor-visits
// @Param visitId path string true "Visit UUID" format(uuid)
// @Success 204 "Visit deleted"
// @Failure 400 {object} problem.Problem "Invalid visit ID"
// @Failure 404 {object} problem.Problem "Visit not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /doctor-visits/{visitId} [delete]
func (h *DoctorVisitHandler) Delete(w http.ResponseWriter, r *http.Request) {
	visitID, err := uuid.Parse(chi.URLParam(r, "visitId"))
	if err != nil {
		problem.BadRequest("Invalid visit ID format").Write(w)
		return
	}

	if err := h.service.Delete(r.Context(), visitID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Doctor visit not found").Write(w)
			return
		}
		problem.InternalError("Failed to delete doctor visit").Write(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
