// Package services orchestrates record providers, the expiration feed,
// and alert delivery.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"adspaces/internal/amqp"
	"adspaces/internal/cache"
	"adspaces/internal/expiry"
	"adspaces/internal/records"
)

// AlertPublisher sends one expiration alert downstream.
type AlertPublisher interface {
	PublishExpirationAlert(ctx context.Context, msg *amqp.ExpirationAlertMessage) error
}

// AlertMarker records that an alert went out, returning false when the
// same alert was already recorded for that day.
type AlertMarker interface {
	MarkAlerted(ctx context.Context, kind string, sourceID int64, dueAt, day string) (bool, error)
}

// ExpirationService produces the upcoming-deadline feed from the record
// provider and pushes Critical entries out as alerts.
type ExpirationService struct {
	provider  records.Provider
	feedCache *cache.LRUCache[[]expiry.Record]
	publisher AlertPublisher
	marker    AlertMarker
}

// NewExpirationService builds the service. publisher and marker may be
// nil; alert publishing then becomes a no-op (the HTTP server runs this
// way, only the worker alerts).
func NewExpirationService(provider records.Provider, publisher AlertPublisher, marker AlertMarker) *ExpirationService {
	return &ExpirationService{
		provider: provider,
		// Keyed by window+date, so a couple dozen entries is plenty.
		feedCache: cache.NewLRUCache[[]expiry.Record](32, 5*time.Minute),
		publisher: publisher,
		marker:    marker,
	}
}

// Upcoming returns the deadline feed for the inclusive window
// [now, now+windowDays], fetching the three collections from the
// provider. Results are cached briefly; the feed only changes when
// records do or the calendar day rolls over.
func (s *ExpirationService) Upcoming(ctx context.Context, now time.Time, windowDays int) ([]expiry.Record, error) {
	cacheKey := fmt.Sprintf("window:%d:%s", windowDays, now.UTC().Format("2006-01-02"))
	if feed, ok := s.feedCache.Get(cacheKey); ok {
		return feed, nil
	}

	clients, err := s.provider.ListClients(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	landlords, err := s.provider.ListLandlords(ctx)
	if err != nil {
		return nil, fmt.Errorf("list landlords: %w", err)
	}
	structures, err := s.provider.ListStructures(ctx)
	if err != nil {
		return nil, fmt.Errorf("list structures: %w", err)
	}

	feed, err := expiry.CollectUpcoming(clients, landlords, structures, now, windowDays)
	if err != nil {
		return nil, err
	}

	s.feedCache.Set(cacheKey, feed)
	return feed, nil
}

// PublishCriticalAlerts scans the feed and publishes an alert for every
// Critical entry not already alerted today. It returns the number of
// alerts published. A publish failure stops the scan so the remaining
// entries are retried on the next tick.
func (s *ExpirationService) PublishCriticalAlerts(ctx context.Context, now time.Time, windowDays int) (int, error) {
	if s.publisher == nil {
		return 0, nil
	}

	feed, err := s.Upcoming(ctx, now, windowDays)
	if err != nil {
		return 0, err
	}

	day := now.UTC().Format("2006-01-02")
	published := 0
	for _, rec := range feed {
		if rec.Urgency != expiry.Critical {
			// Feed is sorted by days remaining: past the Critical band
			// nothing further qualifies.
			break
		}

		if s.marker != nil {
			fresh, err := s.marker.MarkAlerted(ctx, string(rec.Kind), rec.SourceID, rec.DueAt.Format("2006-01-02"), day)
			if err != nil {
				return published, fmt.Errorf("mark alerted: %w", err)
			}
			if !fresh {
				continue
			}
		}

		msg := &amqp.ExpirationAlertMessage{
			Kind:          string(rec.Kind),
			SourceID:      rec.SourceID,
			Label:         rec.Label,
			DueAt:         rec.DueAt.Format("2006-01-02"),
			DaysRemaining: rec.DaysRemaining,
			Urgency:       string(rec.Urgency),
		}
		if err := s.publisher.PublishExpirationAlert(ctx, msg); err != nil {
			return published, fmt.Errorf("publish alert for %s#%d: %w", rec.Kind, rec.SourceID, err)
		}
		published++
	}

	if published > 0 {
		slog.InfoContext(ctx, "Published critical expiration alerts", "count", published)
	}
	return published, nil
}

// InvalidateFeed drops cached feeds, forcing the next Upcoming call to
// refetch. Called after record mutations.
func (s *ExpirationService) InvalidateFeed() {
	s.feedCache.CleanAll()
}

// FeedCacheCleaner exposes the feed cache so a cache.Manager can sweep
// expired entries between requests.
func (s *ExpirationService) FeedCacheCleaner() cache.Cleaner {
	return s.feedCache
}
