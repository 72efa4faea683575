package ingestion

import (
	"context"
	"sync"
	"time"

	"fleet-monitor/internal/domain/telemetry"
	"fleet-monitor/internal/logger"

	"go.uber.org/zap"
)

// Processor batches validated telemetry messages and writes them to the
// ml_data store with a small worker pool. Records flush when the buffer
// reaches batchSize or the batch timeout elapses, whichever comes first.
type Processor struct {
	repo telemetry.Repository

	buffer []*telemetry.Observation

	batchSize    int
	batchTimeout time.Duration
	workerCount  int
	bufferSize   int

	telemetryChan chan *TelemetryMessage

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.Mutex

	metrics *MetricsTracker
}

// NewProcessor creates a new telemetry processor
func NewProcessor(repo telemetry.Repository, batchSize, workerCount, bufferSize int, batchTimeout time.Duration) *Processor {
	ctx, cancel := context.WithCancel(context.Background())

	if batchSize < 1 {
		batchSize = 1
	}
	if workerCount < 1 {
		workerCount = 1
	}
	if bufferSize < 1 {
		bufferSize = 1
	}
	if batchTimeout <= 0 {
		batchTimeout = 5 * time.Second
	}

	return &Processor{
		repo:          repo,
		batchSize:     batchSize,
		batchTimeout:  batchTimeout,
		workerCount:   workerCount,
		bufferSize:    bufferSize,
		buffer:        make([]*telemetry.Observation, 0, batchSize),
		telemetryChan: make(chan *TelemetryMessage, bufferSize),
		ctx:           ctx,
		cancel:        cancel,
		metrics:       NewMetricsTracker(),
	}
}

// Start starts the processor workers
func (p *Processor) Start() {
	logger.Info("Starting telemetry processor",
		zap.Int("workers", p.workerCount),
		zap.Int("batch_size", p.batchSize),
		zap.Duration("batch_timeout", p.batchTimeout),
	)

	for i := 0; i < p.workerCount; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}

	p.wg.Add(1)
	go p.batchFlusher()
}

// Stop rejects new messages, drains the workers and flushes whatever
// is still buffered.
func (p *Processor) Stop() {
	logger.Info("Stopping telemetry processor")

	p.cancel()
	close(p.telemetryChan)
	p.wg.Wait()

	p.flushBatch()
}

// Enqueue queues a telemetry message for processing. Messages are
// dropped rather than blocking the MQTT receive path when the buffer
// is full.
func (p *Processor) Enqueue(msg *TelemetryMessage) {
	if err := ValidateTelemetry(msg); err != nil {
		logger.Warn("Invalid telemetry message", zap.Error(err))
		p.metrics.Update(func(m *IngestMetrics) {
			m.MessagesInvalid++
		})
		return
	}

	select {
	case <-p.ctx.Done():
		return
	default:
	}

	select {
	case p.telemetryChan <- msg:
		p.metrics.Update(func(m *IngestMetrics) {
			m.MessagesReceived++
			m.BufferSize = len(p.telemetryChan)
		})
	default:
		logger.Warn("Telemetry buffer full, dropping message",
			zap.Int64("vessel_imo", msg.VesselIMO),
		)
		p.metrics.Update(func(m *IngestMetrics) {
			m.MessagesDropped++
		})
	}
}

// worker drains the channel until it is closed so that nothing queued
// before shutdown is lost.
func (p *Processor) worker(id int) {
	defer p.wg.Done()

	logger.Debug("Telemetry worker started", zap.Int("worker", id))

	for msg := range p.telemetryChan {
		p.bufferMessage(msg)
	}
}

func (p *Processor) bufferMessage(msg *TelemetryMessage) {
	obs := &telemetry.Observation{
		VesselIMO: msg.VesselIMO,
		Timestamp: msg.Timestamp,
		Data:      string(msg.Data),
	}
	if len(msg.Metadata) > 0 {
		meta := string(msg.Metadata)
		obs.Metadata = &meta
	}

	p.mu.Lock()
	p.buffer = append(p.buffer, obs)
	shouldFlush := len(p.buffer) >= p.batchSize
	p.mu.Unlock()

	if shouldFlush {
		p.flushBatch()
	}
}

// batchFlusher periodically flushes the batch
func (p *Processor) batchFlusher() {
	defer p.wg.Done()

	ticker := time.NewTicker(p.batchTimeout)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.flushBatch()
		case <-p.ctx.Done():
			return
		}
	}
}

// flushBatch writes buffered observations to the store
func (p *Processor) flushBatch() {
	p.mu.Lock()
	if len(p.buffer) == 0 {
		p.mu.Unlock()
		return
	}

	batch := make([]*telemetry.Observation, len(p.buffer))
	copy(batch, p.buffer)
	p.buffer = p.buffer[:0]
	p.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := p.repo.InsertBatch(ctx, batch); err != nil {
		logger.Error("Failed to insert telemetry batch",
			zap.Int("records", len(batch)),
			zap.Error(err),
		)
		p.metrics.Update(func(m *IngestMetrics) {
			m.InsertFailures += int64(len(batch))
		})
		return
	}

	p.metrics.Update(func(m *IngestMetrics) {
		m.RecordsInserted += int64(len(batch))
		m.BatchesFlushed++
		m.LastFlushAt = time.Now()
	})
}

// GetMetrics returns current metrics
func (p *Processor) GetMetrics() IngestMetrics {
	return p.metrics.Snapshot()
}
