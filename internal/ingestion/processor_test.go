package ingestion

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"fleet-monitor/internal/domain/telemetry"
)

type fakeTelemetryRepo struct {
	mu      sync.Mutex
	batches [][]*telemetry.Observation
}

func (f *fakeTelemetryRepo) Insert(ctx context.Context, obs *telemetry.Observation) error {
	return f.InsertBatch(ctx, []*telemetry.Observation{obs})
}

func (f *fakeTelemetryRepo) InsertBatch(ctx context.Context, obs []*telemetry.Observation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.batches = append(f.batches, obs)
	return nil
}

func (f *fakeTelemetryRepo) Query(ctx context.Context, filter *telemetry.Filter) ([]*telemetry.Observation, int64, error) {
	return nil, 0, nil
}

func (f *fakeTelemetryRepo) inserted() []*telemetry.Observation {
	f.mu.Lock()
	defer f.mu.Unlock()
	var all []*telemetry.Observation
	for _, b := range f.batches {
		all = append(all, b...)
	}
	return all
}

func newMessage(imo int64) *TelemetryMessage {
	return &TelemetryMessage{
		VesselIMO: imo,
		Timestamp: time.Now(),
		Data:      json.RawMessage(`{"speed": 12.1}`),
		Metadata:  json.RawMessage(`{"source": "test"}`),
	}
}

func TestProcessorFlushesOnStop(t *testing.T) {
	repo := &fakeTelemetryRepo{}
	p := NewProcessor(repo, 100, 2, 10, time.Minute)
	p.Start()

	for i := 0; i < 5; i++ {
		p.Enqueue(newMessage(9074729))
	}
	p.Stop()

	got := repo.inserted()
	if len(got) != 5 {
		t.Fatalf("inserted %d observations, want 5", len(got))
	}
	if got[0].VesselIMO != 9074729 {
		t.Errorf("VesselIMO = %d, want 9074729", got[0].VesselIMO)
	}
	if got[0].Data != `{"speed": 12.1}` {
		t.Errorf("Data = %q, not preserved verbatim", got[0].Data)
	}
	if got[0].Metadata == nil || *got[0].Metadata != `{"source": "test"}` {
		t.Errorf("Metadata not preserved: %v", got[0].Metadata)
	}

	metrics := p.GetMetrics()
	if metrics.RecordsInserted != 5 {
		t.Errorf("RecordsInserted = %d, want 5", metrics.RecordsInserted)
	}
}

func TestProcessorFlushesWhenBatchFills(t *testing.T) {
	repo := &fakeTelemetryRepo{}
	p := NewProcessor(repo, 3, 1, 10, time.Minute)
	p.Start()

	for i := 0; i < 3; i++ {
		p.Enqueue(newMessage(9074729))
	}

	deadline := time.After(2 * time.Second)
	for {
		if len(repo.inserted()) == 3 {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("batch never flushed, inserted %d", len(repo.inserted()))
		case <-time.After(10 * time.Millisecond):
		}
	}

	p.Stop()
}

func TestProcessorRejectsInvalidMessages(t *testing.T) {
	repo := &fakeTelemetryRepo{}
	p := NewProcessor(repo, 10, 1, 10, time.Minute)
	p.Start()

	p.Enqueue(newMessage(9999999)) // bad checksum
	p.Enqueue(&TelemetryMessage{VesselIMO: 9074729, Timestamp: time.Now()}) // no data
	p.Stop()

	if len(repo.inserted()) != 0 {
		t.Errorf("inserted %d observations from invalid messages, want 0", len(repo.inserted()))
	}
	if m := p.GetMetrics(); m.MessagesInvalid != 2 {
		t.Errorf("MessagesInvalid = %d, want 2", m.MessagesInvalid)
	}
}
