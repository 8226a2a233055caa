// Package worker runs the background expiration scan and the alert
// consumer loop.
package worker

import (
	"context"
	"log/slog"
	"time"

	"adspaces/internal/amqp"
	"adspaces/internal/services"
)

// AlertWorker periodically scans the record collections and publishes
// alerts for deadlines in the Critical band. The per-day dedupe lives in
// storage, so restarting the worker never double-alerts.
type AlertWorker struct {
	service    *services.ExpirationService
	interval   time.Duration
	windowDays int
}

func NewAlertWorker(service *services.ExpirationService, interval time.Duration, windowDays int) *AlertWorker {
	return &AlertWorker{
		service:    service,
		interval:   interval,
		windowDays: windowDays,
	}
}

// Run scans immediately, then on every tick until ctx is canceled. Scan
// failures are logged and retried on the next tick; a broker outage must
// not kill the worker.
func (w *AlertWorker) Run(ctx context.Context) error {
	w.scan(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "Alert worker stopping", "reason", ctx.Err())
			return ctx.Err()
		case <-ticker.C:
			w.scan(ctx)
		}
	}
}

func (w *AlertWorker) scan(ctx context.Context) {
	published, err := w.service.PublishCriticalAlerts(ctx, time.Now(), w.windowDays)
	if err != nil {
		slog.ErrorContext(ctx, "Expiration scan failed", "error", err)
		return
	}
	slog.DebugContext(ctx, "Expiration scan complete", "alerts_published", published)
}

// AlertConsumer drains the alert queue. Delivery is just structured
// logging for now; mail and chat hooks attach here.
type AlertConsumer struct {
	client *amqp.Client
}

func NewAlertConsumer(client *amqp.Client) *AlertConsumer {
	return &AlertConsumer{client: client}
}

// Run consumes until ctx is canceled.
func (c *AlertConsumer) Run(ctx context.Context) error {
	return c.client.ConsumeExpirationAlerts(ctx, func(msg *amqp.ExpirationAlertMessage) error {
		slog.InfoContext(ctx, "Upcoming expiration",
			"kind", msg.Kind,
			"source_id", msg.SourceID,
			"label", msg.Label,
			"due_at", msg.DueAt,
			"days_remaining", msg.DaysRemaining,
			"urgency", msg.Urgency)
		return nil
	})
}
