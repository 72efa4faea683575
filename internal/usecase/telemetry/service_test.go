package telemetry

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"sort"
	"testing"
	"time"

	domainTelemetry "fleet-monitor/internal/domain/telemetry"
	"fleet-monitor/internal/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Init("test"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type fakeTelemetryRepo struct {
	nextID       int64
	observations []*domainTelemetry.Observation
}

func (f *fakeTelemetryRepo) Insert(ctx context.Context, obs *domainTelemetry.Observation) error {
	if obs.CreatedAt.IsZero() {
		obs.CreatedAt = time.Now()
	}
	f.nextID++
	obs.ID = f.nextID
	stored := *obs
	f.observations = append(f.observations, &stored)
	return nil
}

func (f *fakeTelemetryRepo) InsertBatch(ctx context.Context, obs []*domainTelemetry.Observation) error {
	for _, o := range obs {
		if err := f.Insert(ctx, o); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeTelemetryRepo) Query(ctx context.Context, filter *domainTelemetry.Filter) ([]*domainTelemetry.Observation, int64, error) {
	var out []*domainTelemetry.Observation
	for _, obs := range f.observations {
		if filter.VesselIMO != nil && obs.VesselIMO != *filter.VesselIMO {
			continue
		}
		if filter.From != nil && obs.Timestamp.Before(*filter.From) {
			continue
		}
		if filter.To != nil && obs.Timestamp.After(*filter.To) {
			continue
		}
		cp := *obs
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, int64(len(out)), nil
}

func TestIngestDefaults(t *testing.T) {
	repo := &fakeTelemetryRepo{}
	svc := NewService(repo)

	before := time.Now()
	resp, err := svc.Ingest(context.Background(), &IngestRequest{
		VesselIMO: 1234567,
		Data:      json.RawMessage(`{"draft": 8.2}`),
	})
	after := time.Now()
	if err != nil {
		t.Fatalf("Ingest() error: %v", err)
	}

	if resp.Metadata != nil {
		t.Errorf("metadata = %v, want nil when omitted", resp.Metadata)
	}
	if resp.Timestamp.Before(before) || resp.Timestamp.After(after) {
		t.Errorf("defaulted timestamp %v outside call window", resp.Timestamp)
	}
	if resp.CreatedAt.Before(before) || resp.CreatedAt.After(after) {
		t.Errorf("created_at %v outside call window", resp.CreatedAt)
	}
	if resp.Data != `{"draft": 8.2}` {
		t.Errorf("data = %q, not preserved verbatim", resp.Data)
	}
}

func TestIngestRejectsInvalidIMO(t *testing.T) {
	svc := NewService(&fakeTelemetryRepo{})

	_, err := svc.Ingest(context.Background(), &IngestRequest{
		VesselIMO: 9999999, // fails checksum
		Data:      json.RawMessage(`{}`),
	})
	if err == nil {
		t.Error("Ingest() accepted invalid IMO")
	}
}

func TestQueryInclusiveTimeRange(t *testing.T) {
	repo := &fakeTelemetryRepo{}
	svc := NewService(repo)

	t1 := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	t3 := t2.Add(time.Hour)

	for _, ts := range []time.Time{t3, t1, t2, t1.Add(-time.Second), t3.Add(time.Second)} {
		repo.observations = append(repo.observations, &domainTelemetry.Observation{
			VesselIMO: 1234567,
			Timestamp: ts,
			Data:      "{}",
		})
	}

	imo := int64(1234567)
	resp, err := svc.Query(context.Background(), &QueryRequest{
		VesselIMO: &imo,
		From:      &t1,
		To:        &t3,
	})
	if err != nil {
		t.Fatalf("Query() error: %v", err)
	}

	if len(resp.Observations) != 3 {
		t.Fatalf("observations = %d, want 3 (bounds inclusive)", len(resp.Observations))
	}
	if !resp.Observations[0].Timestamp.Equal(t1) || !resp.Observations[2].Timestamp.Equal(t3) {
		t.Error("observations not ordered by timestamp ascending over [from, to]")
	}
}

func TestQueryRejectsInvertedRange(t *testing.T) {
	svc := NewService(&fakeTelemetryRepo{})

	from := time.Now()
	to := from.Add(-time.Hour)
	_, err := svc.Query(context.Background(), &QueryRequest{From: &from, To: &to})
	if !errors.Is(err, domainTelemetry.ErrInvalidTimeRange) {
		t.Errorf("Query() error = %v, want ErrInvalidTimeRange", err)
	}
}
