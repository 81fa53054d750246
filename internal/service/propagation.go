package service

import (
	"context"
	"sort"

	"github.com/rs/zerolog"
	"gorm.io/datatypes"

	"github.com/lyfjs/gomis-go-api/internal/models"
	"github.com/lyfjs/gomis-go-api/internal/observability"
	"github.com/lyfjs/gomis-go-api/internal/repository"
)

// Propagation audit actions recorded in the activity log.
const (
	ActionStatusPropagated        = "violation_status_propagated"
	ActionStatusPropagationFailed = "violation_status_propagation_failed"
)

// StatusPropagator synchronizes violation statuses after an incident or
// session update. Violations are matched by value (LRN + date), never by
// foreign key, so zero matches is a normal outcome. Every run is
// best-effort: failures roll back the violation batch only, get logged and
// recorded, and are never surfaced to the caller.
type StatusPropagator struct {
	violations repository.ViolationRepository
	activity   repository.ActivityLogRepository
	logger     zerolog.Logger
}

// NewStatusPropagator builds the propagation engine. The activity repository
// is optional; a nil value disables audit records.
func NewStatusPropagator(violations repository.ViolationRepository, activity repository.ActivityLogRepository, logger zerolog.Logger) *StatusPropagator {
	return &StatusPropagator{
		violations: violations,
		activity:   activity,
		logger:     logger.With().Str("component", "status_propagator").Logger(),
	}
}

// FromIncident applies the incident's status to every violation whose
// student LRN and date match the incident's reporter LRN and date. It runs
// only when all three of reporter LRN, date and status are non-empty after
// the update.
func (p *StatusPropagator) FromIncident(ctx context.Context, incident models.Incident) {
	if incident.ReportedByLRN == "" || incident.Date == "" || incident.Status == "" {
		return
	}

	matched, err := p.violations.UpdateStatusByLRNDate(ctx, []string{incident.ReportedByLRN}, incident.Date, incident.Status)
	if err != nil {
		p.recordFailure(ctx, "incident", incident.ID, incident.Status, err)
		return
	}

	p.recordSuccess(ctx, "incident", incident.ID, incident.Status, matched, map[string]interface{}{
		"date": incident.Date,
		"lrn":  incident.ReportedByLRN,
	})
}

// FromSession applies the session's status to every violation on the
// session's date whose student LRN appears in the participant list. It runs
// only when status and date are non-empty and at least one participant
// carries an LRN. Participant ids are collected for the audit record but are
// deliberately not used as a match key.
func (p *StatusPropagator) FromSession(ctx context.Context, session models.Session) {
	if session.Status == "" || session.Date == "" {
		return
	}

	lrns, ids := collectParticipantKeys(session.ParticipantList())
	if len(lrns) == 0 {
		return
	}

	matched, err := p.violations.UpdateStatusByLRNDate(ctx, lrns, session.Date, session.Status)
	if err != nil {
		p.recordFailure(ctx, "session", session.ID, session.Status, err)
		return
	}

	p.recordSuccess(ctx, "session", session.ID, session.Status, matched, map[string]interface{}{
		"date":           session.Date,
		"lrns":           lrns,
		"participantIds": ids,
	})
}

func (p *StatusPropagator) recordSuccess(ctx context.Context, entityType string, entityID uint, status string, matched int64, metadata map[string]interface{}) {
	observability.PropagationRuns().WithLabelValues(entityType, "ok").Inc()
	observability.PropagationMatches().WithLabelValues(entityType).Add(float64(matched))

	p.logger.Info().
		Str("entity_type", entityType).
		Uint("entity_id", entityID).
		Str("status", status).
		Int64("matched", matched).
		Msg("violation status propagated")

	if p.activity == nil || matched == 0 {
		return
	}

	metadata["status"] = status
	metadata["matched"] = matched
	entry := models.ActivityLog{
		Action:     ActionStatusPropagated,
		EntityType: entityType,
		EntityID:   &entityID,
		Metadata:   datatypes.JSONMap(metadata),
	}
	if err := p.activity.Create(ctx, &entry); err != nil {
		p.logger.Warn().Err(err).Msg("failed to record propagation audit entry")
	}
}

func (p *StatusPropagator) recordFailure(ctx context.Context, entityType string, entityID uint, status string, cause error) {
	observability.PropagationRuns().WithLabelValues(entityType, "error").Inc()

	p.logger.Error().
		Err(cause).
		Str("entity_type", entityType).
		Uint("entity_id", entityID).
		Str("status", status).
		Msg("violation status propagation failed")

	if p.activity == nil {
		return
	}

	entry := models.ActivityLog{
		Action:     ActionStatusPropagationFailed,
		EntityType: entityType,
		EntityID:   &entityID,
		Metadata: datatypes.JSONMap{
			"status": status,
			"error":  cause.Error(),
		},
	}
	if err := p.activity.Create(ctx, &entry); err != nil {
		p.logger.Warn().Err(err).Msg("failed to record propagation failure entry")
	}
}

// collectParticipantKeys extracts the distinct non-empty LRNs and the
// distinct parseable numeric ids from a participant list. Malformed ids are
// skipped, not fatal. Results are sorted for deterministic audit records.
func collectParticipantKeys(participants []models.Participant) ([]string, []uint) {
	lrnSet := make(map[string]struct{})
	idSet := make(map[uint]struct{})

	for _, participant := range participants {
		if participant.LRN != "" {
			lrnSet[participant.LRN] = struct{}{}
		}
		if id, ok := participant.NumericID(); ok && id != 0 {
			idSet[id] = struct{}{}
		}
	}

	lrns := make([]string, 0, len(lrnSet))
	for lrn := range lrnSet {
		lrns = append(lrns, lrn)
	}
	sort.Strings(lrns)

	ids := make([]uint, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return lrns, ids
}
