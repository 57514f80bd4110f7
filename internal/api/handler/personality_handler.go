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

type PersonalityHandler struct {
	service service.PersonalityService
}

func NewPersonalityHandler(service service.PersonalityService) *PersonalityHandler {
	return &PersonalityHandler{service: service}
}

// Create handles POST /v1/sleep-records/{recordId}/personalities
// @Summary Add a personality interval
// @Description Attach a personality interval to an existing sleep record. The owning record is marked edited.
// @Tags personalities
// @Accept json
// @Produce json
// @Param recordId path string true "Sleep record UUID" format(uuid)
// @Param request body domain.CreatePersonalityIntervalRequest true "Interval data"
// @Success 201 {object} domain.PersonalityIntervalResponse "New interval created"
// @Failure 400 {object} problem.Problem "Invalid request"
// @Failure 404 {object} problem.Problem "Sleep record not found"
// @Failure 422 {object} problem.Problem "Request body contains invalid fields"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /sleep-records/{recordId}/personalities [post]
func (h *PersonalityHandler) Create(w http.ResponseWriter, r *http.Request) {
	recordID, err := uuid.Parse(chi.URLParam(r, "recordId"))
	if err != nil {
		problem.BadRequest("Invalid record ID format").Write(w)
		return
	}

	var req domain.CreatePersonalityIntervalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	interval, err := h.service.Create(r.Context(), recordID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Sleep record not found").Write(w)
			return
		}
		problem.InternalError("Failed to create personality interval").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(interval)
}

// Update handles PATCH /v1/personalities/{intervalId}
// @Summary Update a personality interval
// @Description Partial patch of an interval. The owning sleep record is marked edited.
// @Tags personalities
// @Accept json
// @Produce json
// @Param intervalId path string true "Interval UUID" format(uuid)
// @Param request body domain.UpdatePersonalityIntervalRequest true "Fields to update"
// @Success 200 {object} domain.PersonalityIntervalResponse
// @Failure 400 {object} problem.Problem "Invalid request"
// @Failure 404 {object} problem.Problem "Interval not found"
// @Failure 422 {object} problem.Problem "Request body contains invalid fields"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /personalities/{intervalId} [patch]
func (h *PersonalityHandler) Update(w http.ResponseWriter, r *http.Request) {
	intervalID, err := uuid.Parse(chi.URLParam(r, "intervalId"))
	if err != nil {
		problem.BadRequest("Invalid interval ID format").Write(w)
		return
	}

	var req domain.UpdatePersonalityIntervalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	interval, err := h.service.Update(r.Context(), intervalID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Personality interval not found").Write(w)
			return
		}
		problem.InternalError("Failed to update personality interval").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(interval)
}

// Delete handles DELETE /v1/personalities/{intervalId}
// @Summary Delete a personality interval
// @Description Remove an interval. The owning sleep record is marked edited.
// @Tags personalities
// @Param intervalId path string true "Interval UUID" format(uuid)
// @Success 204 "Interval deleted"
// @Failure 400 {object} problem.Problem "Invalid interval ID"
// @Failure 404 {object} problem.Problem "Interval not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /personalities/{intervalId} [delete]
func (h *PersonalityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	intervalID, err := uuid.Parse(chi.URLParam(r, "intervalId"))
	if err != nil {
		problem.BadRequest("Invalid interval ID format").Write(w)
		return
	}

	if err := h.service.Delete(r.Context(), intervalID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Personality interval not found").Write(w)
			return
		}
		problem.InternalError("Failed to delete personality interval").Write(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
