package commands

import (
	"context"
	"log/slog"
	"time"

	"dashboard/internal/core/domain/model/journal"
	"dashboard/internal/core/ports"
	"dashboard/internal/pkg/metrics"
)

const journalWriteTimeout = 5 * time.Second

// journalRecorder appends settled requests to the journal. Failures are logged and
// counted, never returned to the workflow. A nil repository disables recording.
type journalRecorder struct {
	repo   ports.JournalRepository
	logger *slog.Logger
}

func (r journalRecorder) record(ctx context.Context, entry journal.Entry) {
	metrics.FlightsSettledTotal.WithLabelValues(string(entry.Action), string(entry.Outcome)).Inc()

	if r.repo == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), journalWriteTimeout)
	defer cancel()

	if err := r.repo.Add(ctx, entry); err != nil {
		metrics.JournalWriteErrorsTotal.Inc()
		r.logger.Error("failed to record journal entry",
			"order_id", entry.OrderID,
			"flight_id", entry.FlightID.String(),
			"error", err)
	}
}

func outcomeOf(settled bool, err error) journal.Outcome {
	switch {
	case !settled:
		return journal.OutcomeSuperseded
	case err != nil:
		return journal.OutcomeFailed
	default:
		return journal.OutcomeConfirmed
	}
}
