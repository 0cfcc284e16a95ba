package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/rcastillo/pliego-compliance/internal/ingestion"
	"github.com/rcastillo/pliego-compliance/internal/ruleset"
	"github.com/rcastillo/pliego-compliance/internal/types"
)

// handleEvaluateBatch validates a batch of normalized equipment records
// against the tenant's current requirement sheet and returns the verdicts
// plus batch statistics.
func (s *Server) handleEvaluateBatch(w http.ResponseWriter, r *http.Request) {
	var req types.EvaluateBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	sheet, err := s.store.CurrentSheet(r.Context(), req.TenantID)
	if errors.Is(err, ruleset.ErrNoCurrentSheet) {
		s.errorResponse(w, http.StatusNotFound, "Tenant has no current requirement sheet")
		return
	}
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	rules, err := ruleset.Transform(sheet)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Invalid requirement sheet: "+err.Error())
		return
	}

	workers := req.Workers
	if workers <= 0 {
		workers = s.workers
	}
	result, err := ingestion.EvaluateBatch(r.Context(), s.evaluator, rules, req.Records, workers)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Evaluation failed: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleCurrentSheet returns the tenant's current requirement sheet.
func (s *Server) handleCurrentSheet(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := s.tenantIDParam(w, r)
	if !ok {
		return
	}

	sheet, err := s.store.CurrentSheet(r.Context(), tenantID)
	if errors.Is(err, ruleset.ErrNoCurrentSheet) {
		s.errorResponse(w, http.StatusNotFound, "Tenant has no current requirement sheet")
		return
	}
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, sheet)
}

// handleListSheets returns every sheet version for a tenant.
func (s *Server) handleListSheets(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := s.tenantIDParam(w, r)
	if !ok {
		return
	}

	sheets, err := s.store.ListSheets(r.Context(), tenantID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"sheets": sheets})
}

// handleCreateSheet schema-validates a pliego document and stores it as a
// new draft version.
func (s *Server) handleCreateSheet(w http.ResponseWriter, r *http.Request) {
	var req types.CreateSheetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	if err := ruleset.ValidatePliegoJSON(req.Document); err != nil {
		var ve *ruleset.ValidationError
		if errors.As(err, &ve) {
			s.errorResponse(w, http.StatusBadRequest, ve.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Schema validation failed: "+err.Error())
		return
	}

	var doc types.PliegoDocument
	if err := json.Unmarshal(req.Document, &doc); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid document: "+err.Error())
		return
	}

	sheet := &types.RequirementSheet{
		TenantID:   req.TenantID,
		Code:       req.Code,
		ValidFrom:  req.ValidFrom,
		ValidUntil: req.ValidUntil,
		Document:   &doc,
	}
	id, err := s.store.InsertSheet(r.Context(), sheet)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]string{"id": id.String(), "status": types.SheetStatusDraft})
}

// handleActivateSheet flips a stored sheet to active/current for its tenant.
func (s *Server) handleActivateSheet(w http.ResponseWriter, r *http.Request) {
	sheetID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid sheet ID format")
		return
	}
	tenantID, ok := s.tenantIDParam(w, r)
	if !ok {
		return
	}

	if err := s.store.ActivateSheet(r.Context(), tenantID, sheetID); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to activate sheet: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"id": sheetID.String(), "status": types.SheetStatusActive})
}

// tenantIDParam extracts and parses the tenant_id query parameter, writing
// an error response when it is missing or malformed.
func (s *Server) tenantIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := r.URL.Query().Get("tenant_id")
	if raw == "" {
		s.errorResponse(w, http.StatusBadRequest, "tenant_id is required")
		return uuid.Nil, false
	}
	tenantID, err := uuid.Parse(raw)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid tenant_id format")
		return uuid.Nil, false
	}
	return tenantID, true
}
