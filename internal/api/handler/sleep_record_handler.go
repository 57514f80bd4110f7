package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sleepitron/sleepitron/internal/api/validation"
	"github.com/sleepitron/sleepitron/internal/domain"
	"github.com/sleepitron/sleepitron/internal/service"
	"github.com/sleepitron/sleepitron/pkg/problem"
)

type SleepRecordHandler struct {
	service service.SleepRecordService
}

func NewSleepRecordHandler(service service.SleepRecordService) *SleepRecordHandler {
	return &SleepRecordHandler{service: service}
}

// Create handles POST /v1/sleep-records
// @Summary Record a sleep session
// @Description Log one contiguous sleep session. A wake time earlier than the sleep time means the session wrapped past midnight.
// @Tags sleep-records
// @Accept json
// @Produce json
// @Param request body domain.CreateSleepRecordRequest true "Sleep session data"
// @Success 201 {object} domain.SleepRecordResponse "New sleep record created"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 422 {object} problem.Problem "Request body contains invalid fields"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /sleep-records [post]
func (h *SleepRecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateSleepRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	record, err := h.service.Create(r.Context(), &req)
	if err != nil {
		problem.InternalError("Failed to create sleep record").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(record)
}

// List handles GET /v1/sleep-records
// @Summary List sleep records
// @Description Fetch paginated sleep history, newest first. Filter by calendar-date range (inclusive on both ends).
// @Tags sleep-records
// @Produce json
// @Param from query string false "Start of date range (YYYY-MM-DD, inclusive)" example(2024-03-01)
// @Param to query string false "End of date range (YYYY-MM-DD, inclusive)" example(2024-03-31)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.SleepRecordListResponse "Sleep records with pagination"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /sleep-records [get]
func (h *SleepRecordHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, fieldErrors := parseListFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.List(r.Context(), filter)
	if err != nil {
		problem.InternalError("Failed to list sleep records").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// GetByID handles GET /v1/sleep-records/{recordId}
// @Summary Get a sleep record
// @Description Fetch a single sleep record with its personality intervals.
// @Tags sleep-records
// @Produce json
// @Param recordId path string true "Sleep record UUID" format(uuid)
// @Success 200 {object} domain.SleepRecordResponse
// @Failure 400 {object} problem.Problem "Invalid record ID"
// @Failure 404 {object} problem.Problem "Record not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /sleep-records/{recordId} [get]
func (h *SleepRecordHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	recordID, err := uuid.Parse(chi.URLParam(r, "recordId"))
	if err != nil {
		problem.BadRequest("Invalid record ID format").Write(w)
		return
	}

	record, err := h.service.GetByID(r.Context(), recordID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Sleep record not found").Write(w)
			return
		}
		problem.InternalError("Failed to get sleep record").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(record)
}

// Update handles PATCH /v1/sleep-records/{recordId}
// @Summary Update a sleep record
// @Description Partial patch: only provided fields change. Any successful patch marks the record as edited.
// @Tags sleep-records
// @Accept json
// @Produce json
// @Param recordId path string true "Sleep record UUID" format(uuid)
// @Param request body domain.UpdateSleepRecordRequest true "Fields to update"
// @Success 200 {object} domain.SleepRecordResponse
// @Failure 400 {object} problem.Problem "Invalid request"
// @Failure 404 {object} problem.Problem "Record not found"
// @Failure 422 {object} problem.Problem "Request body contains invalid fields"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /sleep-records/{recordId} [patch]
func (h *SleepRecordHandler) Update(w http.ResponseWriter, r *http.Request) {
	recordID, err := uuid.Parse(chi.URLParam(r, "recordId"))
	if err != nil {
		problem.BadRequest("Invalid record ID format").Write(w)
		return
	}

	var req domain.UpdateSleepRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	record, err := h.service.Update(r.Context(), recordID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Sleep record not found").Write(w)
			return
		}
		problem.InternalError("Failed to update sleep record").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(record)
}

// Delete handles DELETE /v1/sleep-records/{recordId}
// @Summary Delete a sleep record
// @Description Remove a sleep record and all personality intervals attached to it.
// @Tags sleep-records
// @Param recordId path string true "Sleep record UUID" format(uuid)
// @Success 204 "Record deleted"
// @Failure 400 {object} problem.Problem "Invalid record ID"
// @Failure 404 {object} problem.Problem "Record not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /sleep-records/{recordId} [delete]
func (h *SleepRecordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	recordID, err := uuid.Parse(chi.URLParam(r, "recordId"))
	if err != nil {
		problem.BadRequest("Invalid record ID format").Write(w)
		return
	}

	if err := h.service.Delete(r.Context(), recordID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Sleep record not found").Write(w)
			return
		}
		problem.InternalError("Failed to delete sleep record").Write(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseListFilter(r *http.Request) (domain.SleepRecordFilter, []problem.FieldError) {
	var filter domain.SleepRecordFilter
	var fieldErrors []problem.FieldError

	// Parse 'from' parameter
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

	// Parse 'to' parameter
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

	// Parse 'limit' parameter
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "limit",
				Message: "must be a positive integer",
			})
		} else {
			filter.Limit = limit
		}
	}

	// Parse 'cursor' parameter
	filter.Cursor = r.URL.Query().Get("cursor")

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}

	return filter, nil
}
