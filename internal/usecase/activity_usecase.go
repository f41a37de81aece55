package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/iho/tradeledger/internal/domain"
	"github.com/iho/tradeledger/internal/infrastructure/metrics"
)

// ActivityUseCase owns the append-only activity trail.
//
// Appends come with an explicit durability policy: critical appends surface
// failures, best-effort appends swallow them so that a trail outage never
// rolls back or fails the financial mutation that triggered it.
type ActivityUseCase struct {
	activityRepo ActivityRepository
	metrics      *metrics.Metrics
}

// NewActivityUseCase creates a new ActivityUseCase. A nil repository marks
// the backing store as not yet initialized: reads degrade to empty results
// and best-effort appends become no-ops.
func NewActivityUseCase(activityRepo ActivityRepository, m *metrics.Metrics) *ActivityUseCase {
	return &ActivityUseCase{
		activityRepo: activityRepo,
		metrics:      m,
	}
}

// AppendActivityInput represents input for appending an activity entry.
type AppendActivityInput struct {
	Principal  domain.Principal
	Action     domain.ActivityAction
	EntityType domain.EntityType
	EntityID   *string
	Details    string
}

// Append records an activity entry under the given durability policy.
func (uc *ActivityUseCase) Append(ctx context.Context, input AppendActivityInput, policy domain.AppendPolicy) error {
	principal := input.Principal
	if principal.UserID == "" {
		principal = domain.SystemPrincipal
	}

	entry := &domain.ActivityEntry{
		UserID:     principal.UserID,
		Action:     input.Action,
		EntityType: input.EntityType,
		EntityID:   input.EntityID,
		Details:    input.Details,
		CreatedAt:  time.Now().UTC(),
	}

	var err error
	if uc.activityRepo == nil {
		err = domain.ErrStoreUnavailable
	} else {
		err = uc.activityRepo.Create(ctx, entry)
	}

	if err == nil {
		uc.countAppend(input.Action, "success")
		return nil
	}

	if policy == domain.AppendCritical {
		uc.countAppend(input.Action, "error")
		return err
	}

	uc.countAppend(input.Action, "dropped")
	log.Warn().
		Err(err).
		Str("action", string(input.Action)).
		Str("entity_type", string(input.EntityType)).
		Msg("best-effort activity append dropped")

	return nil
}

// Query returns activity entries newest first, capped at 1000. An
// uninitialized store yields an empty result, never an error.
func (uc *ActivityUseCase) Query(ctx context.Context, filter domain.ActivityFilter) ([]*domain.ActivityEntry, error) {
	if filter.Limit <= 0 || filter.Limit > domain.MaxActivityQueryLimit {
		filter.Limit = domain.MaxActivityQueryLimit
	}

	if uc.activityRepo == nil {
		return []*domain.ActivityEntry{}, nil
	}

	entries, err := uc.activityRepo.List(ctx, filter)
	if err != nil {
		if errors.Is(err, domain.ErrStoreUnavailable) {
			return []*domain.ActivityEntry{}, nil
		}

		return nil, err
	}

	if entries == nil {
		entries = []*domain.ActivityEntry{}
	}

	return entries, nil
}

func (uc *ActivityUseCase) countAppend(action domain.ActivityAction, outcome string) {
	if uc.metrics == nil {
		return
	}

	uc.metrics.ActivityAppends.WithLabelValues(string(action), outcome).Inc()
}
