package jobs

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/application/usecases/queries"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
)

// DefaultOverdueSchedule runs the check at the start of every minute.
const DefaultOverdueSchedule = "0 * * * * *"

type OverdueCounter interface {
	Handle(ctx context.Context, query queries.CountOverdueDeliveriesQuery) (int64, error)
}

// OverdueDeliveryJob periodically counts active deliveries that are past
// their estimated delivery time. It reports the count and never changes
// delivery state.
type OverdueDeliveryJob struct {
	counter  OverdueCounter
	gauge    prometheus.Gauge
	now      func() time.Time
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewOverdueDeliveryJob(
	counter OverdueCounter,
	gauge prometheus.Gauge,
	now func() time.Time,
	schedule string,
	logger *slog.Logger,
) *OverdueDeliveryJob {
	if schedule == "" {
		schedule = DefaultOverdueSchedule
	}
	return &OverdueDeliveryJob{
		counter:  counter,
		gauge:    gauge,
		now:      now,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "overdue_delivery_job"),
	}
}

func (j *OverdueDeliveryJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue delivery job started", "schedule", j.schedule)
	return nil
}

// Run performs a single check.
func (j *OverdueDeliveryJob) Run(ctx context.Context) {
	count, err := j.counter.Handle(ctx, queries.NewCountOverdueDeliveriesQuery(j.now()))
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue delivery check failed", "error", err)
		return
	}

	j.gauge.Set(float64(count))
	if count > 0 {
		j.logger.WarnContext(ctx, "Deliveries past their estimated delivery time", "count", count)
	}
}

// Stop waits for a running check to finish.
func (j *OverdueDeliveryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Overdue delivery job stopped")
}
