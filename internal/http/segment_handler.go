package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Contactory/contactory/internal/domain"
	"github.com/Contactory/contactory/pkg/logger"
)

type SegmentHandler struct {
	service domain.SegmentService
	logger  logger.Logger
}

func NewSegmentHandler(service domain.SegmentService, logger logger.Logger) *SegmentHandler {
	return &SegmentHandler{
		service: service,
		logger:  logger,
	}
}

func (h *SegmentHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/segments.list", h.handleList)
	mux.HandleFunc("/api/segments.get", h.handleGet)
	mux.HandleFunc("/api/segments.create", h.handleCreate)
	mux.HandleFunc("/api/segments.update", h.handleUpdate)
	mux.HandleFunc("/api/segments.delete", h.handleDelete)
}

func (h *SegmentHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	segments, err := h.service.GetSegments(r.Context())
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to get segments")
		WriteJSONError(w, "Failed to get segments", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"segments": segments,
	})
}

func (h *SegmentHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		WriteJSONError(w, "Missing segment ID", http.StatusBadRequest)
		return
	}

	segment, err := h.service.GetSegmentByID(r.Context(), id)
	if err != nil {
		var notFound *domain.ErrSegmentNotFound
		if errors.As(err, &notFound) {
			WriteJSONError(w, "Segment not found", http.StatusNotFound)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to get segment")
		WriteJSONError(w, "Failed to get segment", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"segment": segment,
	})
}

func (h *SegmentHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.CreateSegmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	segment, err := h.service.CreateSegment(r.Context(), &req)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to create segment")
		WriteJSONError(w, "Failed to create segment", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"segment": segment,
	})
}

func (h *SegmentHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.UpdateSegmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	segment, err := h.service.UpdateSegment(r.Context(), &req)
	if err != nil {
		var notFound *domain.ErrSegmentNotFound
		if errors.As(err, &notFound) {
			WriteJSONError(w, "Segment not found", http.StatusNotFound)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to update segment")
		WriteJSONError(w, "Failed to update segment", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"segment": segment,
	})
}

func (h *SegmentHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.DeleteSegmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteSegment(r.Context(), req.ID); err != nil {
		var notFound *domain.ErrSegmentNotFound
		if errors.As(err, &notFound) {
			WriteJSONError(w, "Segment not found", http.StatusNotFound)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to delete segment")
		WriteJSONError(w, "Failed to delete segment", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
