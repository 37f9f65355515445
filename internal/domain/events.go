package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EventType represents the type of event emitted by the system.
// Typed constants provide compile-time safety and enable exhaustive switch
// statements for event handling.
type EventType string

const (
	// EventTypeProfileScored is emitted when an assessment is scored into a
	// profile. One event per scored assessment instance.
	EventTypeProfileScored EventType = "ProfileScored"

	// EventTypeReportTriangulated is emitted when two perspectives are
	// triangulated into a report.
	EventTypeReportTriangulated EventType = "ReportTriangulated"
)

// EventEnvelope wraps all events with consistent metadata for projection
// processing. Provides workflow context, idempotency, and sequencing that
// enable reliable event-driven projections and analytics.
type EventEnvelope struct {
	// IdempotencyKey ensures events are processed exactly once during retries.
	// Generated deterministically from workflow context and event content.
	IdempotencyKey string `json:"idempotency_key" validate:"required"`

	// EventType identifies the specific type of event for routing.
	EventType EventType `json:"event_type" validate:"required"`

	// Version enables event schema evolution and backward compatibility.
	Version int `json:"version" validate:"required,min=1"`

	// OccurredAt records when the event occurred in the system.
	OccurredAt time.Time `json:"occurred_at" validate:"required"`

	// TenantID identifies the tenant for multi-tenant event filtering.
	TenantID uuid.UUID `json:"tenant_id" validate:"required"`

	// WorkflowID identifies the workflow execution that generated this event.
	WorkflowID string `json:"workflow_id" validate:"required"`

	// RunID identifies the specific workflow execution run.
	RunID string `json:"run_id" validate:"required"`

	// Sequence enables ordered event processing for projections.
	Sequence int `json:"sequence" validate:"min=0"`

	// Payload contains the event-specific data as JSON.
	Payload json.RawMessage `json:"payload" validate:"required"`

	// Producer identifies the component that emitted this event.
	Producer string `json:"producer" validate:"required"`
}

// Validate checks if the event envelope meets all requirements.
func (e *EventEnvelope) Validate() error { return validate.Struct(e) }

// ProfileScoredPayload contains the data for ProfileScored events.
type ProfileScoredPayload struct {
	// SourceID identifies the scored assessment instance.
	SourceID string `json:"source_id" validate:"required"`

	// Perspective records which observer produced the profile.
	Perspective Perspective `json:"perspective" validate:"required"`

	// OverallScore is the profile's mean domain score.
	OverallScore float64 `json:"overall_score"`

	// Band is the qualitative bucket for the overall score.
	Band Band `json:"band" validate:"required"`

	// Confidence is the behavioral-plausibility signal for the profile.
	Confidence float64 `json:"confidence" validate:"min=0.3,max=1"`

	// DomainCount is the number of measured domains.
	DomainCount int `json:"domain_count" validate:"min=1"`
}

// Validate checks if the payload meets all requirements.
func (p *ProfileScoredPayload) Validate() error { return validate.Struct(p) }

// ReportTriangulatedPayload contains the data for ReportTriangulated events.
type ReportTriangulatedPayload struct {
	// SubjectID identifies the triangulated subject.
	SubjectID string `json:"subject_id" validate:"required"`

	// TriangulationScore is the aggregate cross-perspective consistency.
	TriangulationScore float64 `json:"triangulation_score" validate:"min=0,max=1"`

	// AgreementCount is the number of high-agreement domains.
	AgreementCount int `json:"agreement_count" validate:"min=0"`

	// DiscrepancyCount is the number of low-agreement domains.
	DiscrepancyCount int `json:"discrepancy_count" validate:"min=0"`

	// HasExternalLabel records whether a third-party category was present.
	HasExternalLabel bool `json:"has_external_label"`
}

// Validate checks if the payload meets all requirements.
func (p *ReportTriangulatedPayload) Validate() error { return validate.Struct(p) }

// NewEventEnvelope creates an EventEnvelope with required fields populated.
// OccurredAt is supplied by the caller so activities can pass workflow-safe
// timestamps.
func NewEventEnvelope(
	eventType EventType,
	tenantID uuid.UUID,
	workflowID, runID string,
	occurredAt time.Time,
	payload json.RawMessage,
	producer string,
) EventEnvelope {
	return EventEnvelope{
		EventType:  eventType,
		Version:    1,
		TenantID:   tenantID,
		WorkflowID: workflowID,
		RunID:      runID,
		Sequence:   0,
		Payload:    payload,
		Producer:   producer,
		OccurredAt: occurredAt,
	}
}

// GenerateIdempotencyKey creates a deterministic key for event deduplication.
// Combines the client idempotency key with an event-specific suffix so that
// retries and replays produce identical keys for the same logical event.
func GenerateIdempotencyKey(clientIdempotencyKey, eventSuffix string) string {
	hasher := sha256.New()
	hasher.Write([]byte(clientIdempotencyKey + eventSuffix))
	return hex.EncodeToString(hasher.Sum(nil))
}

// ProfileScoredIdempotencyKey generates the idempotency key for profile
// events: H(client_idem_key || ":profile:" || sourceID).
func ProfileScoredIdempotencyKey(clientIdempotencyKey, sourceID string) string {
	return GenerateIdempotencyKey(clientIdempotencyKey, ":profile:"+sourceID)
}

// ReportTriangulatedIdempotencyKey generates the idempotency key for report
// events: H(client_idem_key || ":triangulate:1").
func ReportTriangulatedIdempotencyKey(clientIdempotencyKey string) string {
	return GenerateIdempotencyKey(clientIdempotencyKey, ":triangulate:1")
}

// NewProfileScoredEvent creates a ProfileScored event envelope.
func NewProfileScoredEvent(
	tenantID uuid.UUID,
	workflowID, runID string,
	occurredAt time.Time,
	profile *AssessmentProfile,
	clientIdempotencyKey string,
) (EventEnvelope, error) {
	payload := ProfileScoredPayload{
		SourceID:     profile.SourceID,
		Perspective:  profile.Perspective,
		OverallScore: profile.OverallScore,
		Band:         profile.Band,
		Confidence:   profile.Confidence,
		DomainCount:  len(profile.DomainScores),
	}

	if err := payload.Validate(); err != nil {
		return EventEnvelope{}, fmt.Errorf("invalid profile scored payload: %w", err)
	}

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return EventEnvelope{}, fmt.Errorf("failed to marshal payload: %w", err)
	}

	envelope := NewEventEnvelope(
		EventTypeProfileScored,
		tenantID,
		workflowID,
		runID,
		occurredAt,
		payloadJSON,
		"activity.score_assessment",
	)
	envelope.IdempotencyKey = ProfileScoredIdempotencyKey(clientIdempotencyKey, profile.SourceID)

	if err := envelope.Validate(); err != nil {
		return EventEnvelope{}, fmt.Errorf("invalid event envelope: %w", err)
	}
	return envelope, nil
}

// NewReportTriangulatedEvent creates a ReportTriangulated event envelope.
func NewReportTriangulatedEvent(
	tenantID uuid.UUID,
	workflowID, runID string,
	occurredAt time.Time,
	report *TriangulationReport,
	clientIdempotencyKey string,
) (EventEnvelope, error) {
	payload := ReportTriangulatedPayload{
		SubjectID:          report.SubjectID,
		TriangulationScore: report.TriangulationScore,
		AgreementCount:     len(report.Agreements),
		DiscrepancyCount:   len(report.Discrepancies),
		HasExternalLabel:   report.ExternalLabel != "",
	}

	if err := payload.Validate(); err != nil {
		return EventEnvelope{}, fmt.Errorf("invalid report triangulated payload: %w", err)
	}

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return EventEnvelope{}, fmt.Errorf("failed to marshal payload: %w", err)
	}

	envelope := NewEventEnvelope(
		EventTypeReportTriangulated,
		tenantID,
		workflowID,
		runID,
		occurredAt,
		payloadJSON,
		"activity.triangulate_profiles",
	)
	envelope.IdempotencyKey = ReportTriangulatedIdempotencyKey(clientIdempotencyKey)

	if err := envelope.Validate(); err != nil {
		return EventEnvelope{}, fmt.Errorf("invalid event envelope: %w", err)
	}
	return envelope, nil
}
