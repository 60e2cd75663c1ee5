package jobs

import (
	"context"
	"errors"
	"log/slog"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// TrackingSyncJob periodically refreshes the carrier tracking snapshot of
// every eligible shipment. Shipments without a carrier code and those in
// Draft or a terminal status are skipped at the query level.
type TrackingSyncJob struct {
	uowFactory ports.UnitOfWorkFactory
	handler    commands.SyncTrackingCommandHandler
	schedule   string
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewTrackingSyncJob creates a tracking sync job running on the given cron
// schedule (six-field spec with seconds).
func NewTrackingSyncJob(
	uowFactory ports.UnitOfWorkFactory,
	handler commands.SyncTrackingCommandHandler,
	schedule string,
	logger *slog.Logger,
) *TrackingSyncJob {
	return &TrackingSyncJob{
		uowFactory: uowFactory,
		handler:    handler,
		schedule:   schedule,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "tracking_sync_job"),
	}
}

// Start schedules the job.
func (j *TrackingSyncJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.runOnce)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Tracking sync job started", "schedule", j.schedule)
	return nil
}

// Stop stops the job.
func (j *TrackingSyncJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Tracking sync job stopped")
}

// runOnce syncs every eligible shipment. One shipment's failure does not
// stop the rest of the sweep.
func (j *TrackingSyncJob) runOnce() {
	ctx := context.Background()

	uow := j.uowFactory.Create()
	shipments, err := uow.ShipmentRepository().GetAllSyncable(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Tracking sync sweep failed to list shipments", "error", err)
		return
	}

	for _, aggregate := range shipments {
		cmd, err := commands.NewSyncTrackingCommand(aggregate.ID())
		if err != nil {
			j.logger.ErrorContext(ctx, "Tracking sync command rejected",
				"shipment_id", aggregate.ID().String(), "error", err)
			continue
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			if errors.Is(err, commands.ErrShipmentNotSyncable) {
				continue
			}
			j.logger.ErrorContext(ctx, "Tracking sync failed",
				"shipment_id", aggregate.ID().String(), "error", err)
		}
	}
}
