package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/proctorlab/telemetry-sink/models"
	"github.com/proctorlab/telemetry-sink/services/telemetry"
	"github.com/proctorlab/telemetry-sink/utils"
)

// RecordEventRequest represents a telemetry event pushed by the frontend.
// Enum values are validated here; the store only ever sees known values.
type RecordEventRequest struct {
	SessionID string     `json:"session_id" validate:"required"`
	Kind      string     `json:"kind" validate:"required,oneof=video audio system"`
	Severity  string     `json:"severity" validate:"omitempty,oneof=info warn error"`
	Message   string     `json:"message" validate:"required"`
	Timestamp *time.Time `json:"ts,omitempty"`
}

// EventHandler handles telemetry event HTTP requests
type EventHandler struct {
	events       *telemetry.Store
	defaultLimit int
	logger       *zap.Logger
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(events *telemetry.Store, defaultLimit int, logger *zap.Logger) *EventHandler {
	return &EventHandler{
		events:       events,
		defaultLimit: defaultLimit,
		logger:       logger,
	}
}

// HandleRecordEvent handles POST /events
func (h *EventHandler) HandleRecordEvent(w http.ResponseWriter, r *http.Request) {
	var req RecordEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = utils.WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		details := make(map[string]interface{})
		for field, msg := range utils.GetValidationFields(err) {
			details[field] = msg
		}
		_ = utils.WriteBadRequest(w, err.Error(), details)
		return
	}

	var ts time.Time
	if req.Timestamp != nil {
		ts = *req.Timestamp
	}

	event, err := h.events.Record(req.SessionID, models.Kind(req.Kind), models.Severity(req.Severity), req.Message, ts)
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}

	h.logger.Debug("recorded telemetry event",
		zap.Int64("event_id", event.ID),
		zap.String("session_id", event.SessionID),
		zap.String("kind", string(event.Kind)),
		zap.String("severity", string(event.Severity)))

	_ = utils.WriteCreated(w, event)
}

// HandleListEvents handles GET /events
func (h *EventHandler) HandleListEvents(w http.ResponseWriter, r *http.Request) {
	limit := h.defaultLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			_ = utils.WriteBadRequest(w, "limit must be a positive integer", nil)
			return
		}
		limit = parsed
	}

	_ = utils.WriteOK(w, h.events.List(limit))
}

// HandleStatus handles GET /status
func (h *EventHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	_ = utils.WriteOK(w, h.events.Snapshot())
}
