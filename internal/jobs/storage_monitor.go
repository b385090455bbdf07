package jobs

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"bizlens/internal/metrics"
)

// DefaultInterval is used when a non-positive interval is supplied.
const DefaultInterval = 30 * time.Second

// errNotChecked is reported until the first check completes.
var errNotChecked = errors.New("storage not checked yet")

// Pinger is a dependency that can be health checked.
type Pinger interface {
	Ping(ctx context.Context) error
}

// StorageMonitor periodically pings the rate limit storage and remembers
// the outcome for the readiness probe.
type StorageMonitor struct {
	pinger   Pinger
	interval time.Duration
	timeout  time.Duration
	metrics  *metrics.Metrics

	mu      sync.RWMutex
	lastErr error
}

// NewStorageMonitor creates a new storage monitor.
func NewStorageMonitor(pinger Pinger, interval time.Duration, m *metrics.Metrics) *StorageMonitor {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &StorageMonitor{
		pinger:   pinger,
		interval: interval,
		timeout:  5 * time.Second,
		metrics:  m,
		lastErr:  errNotChecked,
	}
}

// Start begins the background check loop and blocks until ctx is done.
func (s *StorageMonitor) Start(ctx context.Context) {
	log.Printf("Storage monitor started (interval: %v)", s.interval)

	// Run immediately on start
	s.Check(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Storage monitor stopped")
			return
		case <-ticker.C:
			s.Check(ctx)
		}
	}
}

// Check pings the storage once and records the result.
func (s *StorageMonitor) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	err := s.pinger.Ping(ctx)

	s.mu.Lock()
	wasDown := s.lastErr != nil && s.lastErr != errNotChecked
	s.lastErr = err
	s.mu.Unlock()

	s.metrics.SetStorageUp(err == nil)
	switch {
	case err != nil:
		log.Printf("Storage monitor: ping failed: %v", err)
	case wasDown:
		log.Println("Storage monitor: storage recovered")
	}
	return err
}

// Ready returns the result of the most recent check.
func (s *StorageMonitor) Ready() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}
