package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"adspaces/internal/amqp"
	"adspaces/internal/core"
	"adspaces/internal/expiry"
)

type stubProvider struct {
	clients    []core.Client
	landlords  []core.Landlord
	structures []core.Structure
	locations  []core.AdLocation
	listCalls  int
}

func (p *stubProvider) ListClients(context.Context) ([]core.Client, error) {
	p.listCalls++
	return p.clients, nil
}
func (p *stubProvider) ListLandlords(context.Context) ([]core.Landlord, error) {
	return p.landlords, nil
}
func (p *stubProvider) ListStructures(context.Context) ([]core.Structure, error) {
	return p.structures, nil
}
func (p *stubProvider) ListAdLocations(context.Context) ([]core.AdLocation, error) {
	return p.locations, nil
}

type stubPublisher struct {
	published []*amqp.ExpirationAlertMessage
	err       error
}

func (s *stubPublisher) PublishExpirationAlert(_ context.Context, msg *amqp.ExpirationAlertMessage) error {
	if s.err != nil {
		return s.err
	}
	s.published = append(s.published, msg)
	return nil
}

type stubMarker struct {
	seen map[string]bool
}

func (s *stubMarker) MarkAlerted(_ context.Context, kind string, sourceID int64, dueAt, day string) (bool, error) {
	if s.seen == nil {
		s.seen = make(map[string]bool)
	}
	key := fmt.Sprintf("%s:%d:%s:%s", kind, sourceID, dueAt, day)
	if s.seen[key] {
		return false, nil
	}
	s.seen[key] = true
	return true, nil
}

func testNow() time.Time {
	return time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
}

func testProvider() *stubProvider {
	return &stubProvider{
		clients: []core.Client{
			{ID: 1, Name: "Acme", RentalEndDate: core.NewDate(2024, 6, 4)},    // critical
			{ID: 2, Name: "Globex", RentalEndDate: core.NewDate(2024, 6, 20)}, // notice
		},
		landlords: []core.Landlord{
			{ID: 3, Name: "Rossi", ContractEndDate: core.NewDate(2024, 6, 10)}, // warning
		},
		structures: []core.Structure{
			{ID: 4, AdLocationID: 1, LicenseExpiryDate: core.NewDate(2024, 6, 2)}, // critical
		},
	}
}

func TestUpcoming(t *testing.T) {
	svc := NewExpirationService(testProvider(), nil, nil)

	feed, err := svc.Upcoming(context.Background(), testNow(), expiry.DefaultWindowDays)
	if err != nil {
		t.Fatalf("Upcoming() error = %v", err)
	}
	if len(feed) != 4 {
		t.Fatalf("got %d records, want 4", len(feed))
	}
	if feed[0].Kind != expiry.KindLicense || feed[0].SourceID != 4 {
		t.Errorf("first record = %s#%d, want license#4", feed[0].Kind, feed[0].SourceID)
	}
}

func TestUpcoming_CachesWithinDay(t *testing.T) {
	provider := testProvider()
	svc := NewExpirationService(provider, nil, nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := svc.Upcoming(ctx, testNow(), 30); err != nil {
			t.Fatalf("Upcoming() error = %v", err)
		}
	}
	if provider.listCalls != 1 {
		t.Errorf("provider fetched %d times, want 1 (cached)", provider.listCalls)
	}

	svc.InvalidateFeed()
	if _, err := svc.Upcoming(ctx, testNow(), 30); err != nil {
		t.Fatalf("Upcoming() after invalidate error = %v", err)
	}
	if provider.listCalls != 2 {
		t.Errorf("provider fetched %d times after invalidate, want 2", provider.listCalls)
	}
}

func TestPublishCriticalAlerts(t *testing.T) {
	pub := &stubPublisher{}
	svc := NewExpirationService(testProvider(), pub, &stubMarker{})

	n, err := svc.PublishCriticalAlerts(context.Background(), testNow(), 30)
	if err != nil {
		t.Fatalf("PublishCriticalAlerts() error = %v", err)
	}
	if n != 2 {
		t.Fatalf("published %d alerts, want 2 (critical only)", n)
	}
	for _, msg := range pub.published {
		if msg.Urgency != string(expiry.Critical) {
			t.Errorf("published non-critical alert: %+v", msg)
		}
	}
}

func TestPublishCriticalAlerts_DedupesPerDay(t *testing.T) {
	pub := &stubPublisher{}
	svc := NewExpirationService(testProvider(), pub, &stubMarker{})
	ctx := context.Background()

	if _, err := svc.PublishCriticalAlerts(ctx, testNow(), 30); err != nil {
		t.Fatalf("first publish error = %v", err)
	}
	n, err := svc.PublishCriticalAlerts(ctx, testNow(), 30)
	if err != nil {
		t.Fatalf("second publish error = %v", err)
	}
	if n != 0 {
		t.Errorf("second run published %d alerts, want 0", n)
	}
}

func TestPublishCriticalAlerts_PublishFailureStops(t *testing.T) {
	pub := &stubPublisher{err: errors.New("broker down")}
	svc := NewExpirationService(testProvider(), pub, nil)

	n, err := svc.PublishCriticalAlerts(context.Background(), testNow(), 30)
	if err == nil {
		t.Fatal("expected error from failing publisher")
	}
	if n != 0 {
		t.Errorf("published %d alerts despite failure, want 0", n)
	}
}

func TestPublishCriticalAlerts_NilPublisher(t *testing.T) {
	svc := NewExpirationService(testProvider(), nil, nil)
	n, err := svc.PublishCriticalAlerts(context.Background(), testNow(), 30)
	if err != nil || n != 0 {
		t.Errorf("nil publisher: got (%d, %v), want (0, nil)", n, err)
	}
}
