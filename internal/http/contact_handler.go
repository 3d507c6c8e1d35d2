package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Contactory/contactory/internal/domain"
	"github.com/Contactory/contactory/pkg/logger"
)

type ContactHandler struct {
	service    domain.ContactService
	detector   domain.DuplicateDetectionService
	importer   domain.ContactImportService
	resolution domain.DuplicateResolutionService
	stats      domain.ContactStatsService
	logger     logger.Logger
}

func NewContactHandler(
	service domain.ContactService,
	detector domain.DuplicateDetectionService,
	importer domain.ContactImportService,
	resolution domain.DuplicateResolutionService,
	stats domain.ContactStatsService,
	logger logger.Logger,
) *ContactHandler {
	return &ContactHandler{
		service:    service,
		detector:   detector,
		importer:   importer,
		resolution: resolution,
		stats:      stats,
		logger:     logger,
	}
}

func (h *ContactHandler) RegisterRoutes(mux *http.ServeMux) {
	// Register RPC-style endpoints with dot notation
	mux.HandleFunc("/api/contacts.list", h.handleList)
	mux.HandleFunc("/api/contacts.get", h.handleGet)
	mux.HandleFunc("/api/contacts.delete", h.handleDelete)
	mux.HandleFunc("/api/contacts.detectDuplicates", h.handleDetectDuplicates)
	mux.HandleFunc("/api/contacts.import", h.handleImport)
	mux.HandleFunc("/api/contacts.resolve", h.handleResolve)
	mux.HandleFunc("/api/contacts.resolveBatch", h.handleResolveBatch)
	mux.HandleFunc("/api/contacts.stats", h.handleStats)
}

func (h *ContactHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	req := &domain.GetContactsRequest{}
	if err := req.FromQueryParams(r.URL.Query()); err != nil {
		WriteJSONError(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	response, err := h.service.GetContacts(r.Context(), req)
	if err != nil {
		h.logger.Error(fmt.Sprintf("Failed to get contacts: %v", err))
		WriteJSONError(w, "Failed to get contacts", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *ContactHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		WriteJSONError(w, "Missing contact ID", http.StatusBadRequest)
		return
	}

	contact, err := h.service.GetContactByID(r.Context(), id)
	if err != nil {
		var notFound *domain.ErrContactNotFound
		if errors.As(err, &notFound) {
			WriteJSONError(w, "Contact not found", http.StatusNotFound)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to get contact")
		WriteJSONError(w, "Failed to get contact", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"contact": contact,
	})
}

func (h *ContactHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.DeleteContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteContact(r.Context(), req.ID); err != nil {
		var notFound *domain.ErrContactNotFound
		if errors.As(err, &notFound) {
			WriteJSONError(w, "Contact not found", http.StatusNotFound)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to delete contact")
		WriteJSONError(w, "Failed to delete contact", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *ContactHandler) handleDetectDuplicates(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.DetectDuplicatesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	candidate, err := req.Validate()
	if err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	matches, err := h.detector.DetectDuplicates(r.Context(), candidate)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to detect duplicates")
		WriteJSONError(w, "Failed to detect duplicates", http.StatusInternalServerError)
		return
	}
	if matches == nil {
		matches = []*domain.DuplicateMatch{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"matches": matches,
	})
}

func (h *ContactHandler) handleImport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.ImportContactsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	candidates, segmentIDs, err := req.Validate()
	if err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	outcome, err := h.importer.ImportBatch(r.Context(), candidates, segmentIDs)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to import contacts")
		WriteJSONError(w, "Failed to import contacts", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, outcome)
}

func (h *ContactHandler) handleResolve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.ResolveDuplicateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.resolution.ResolveOne(r.Context(), req.Match, req.Action, req.TargetContactID, req.SegmentIDs)
	if err != nil {
		var invalid *domain.InvalidResolutionError
		if errors.As(err, &invalid) {
			WriteJSONError(w, invalid.Message, http.StatusBadRequest)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to resolve duplicate")
		WriteJSONError(w, "Failed to resolve duplicate", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *ContactHandler) handleResolveBatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.ResolveBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	outcome, err := h.resolution.ResolveBatch(r.Context(), req.Matches, req.Actions, req.SegmentIDs)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to resolve duplicates")
		WriteJSONError(w, "Failed to resolve duplicates", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, outcome)
}

func (h *ContactHandler) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	stats, err := h.stats.GetContactStats(r.Context())
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to get contact stats")
		WriteJSONError(w, "Failed to get contact stats", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
