package jobs

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"bizlens/internal/metrics"
)

type fakePinger struct {
	calls atomic.Int32
	err   atomic.Pointer[error]
}

func (f *fakePinger) Ping(ctx context.Context) error {
	f.calls.Add(1)
	if p := f.err.Load(); p != nil {
		return *p
	}
	return nil
}

func (f *fakePinger) fail(err error) { f.err.Store(&err) }

func TestStorageMonitor_Check(t *testing.T) {
	p := &fakePinger{}
	mon := NewStorageMonitor(p, time.Hour, metrics.New())

	if err := mon.Ready(); err == nil {
		t.Error("Ready() before first check should report an error")
	}

	if err := mon.Check(context.Background()); err != nil {
		t.Fatalf("Check() = %v, want nil", err)
	}
	if err := mon.Ready(); err != nil {
		t.Errorf("Ready() after healthy check = %v", err)
	}

	down := errors.New("connection refused")
	p.fail(down)
	if err := mon.Check(context.Background()); !errors.Is(err, down) {
		t.Errorf("Check() = %v, want %v", err, down)
	}
	if err := mon.Ready(); !errors.Is(err, down) {
		t.Errorf("Ready() = %v, want %v", err, down)
	}
}

func TestStorageMonitor_Start(t *testing.T) {
	p := &fakePinger{}
	mon := NewStorageMonitor(p, 10*time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		mon.Start(ctx)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for p.calls.Load() < 3 {
		select {
		case <-deadline:
			t.Fatalf("only %d pings before deadline", p.calls.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Start did not return after cancel")
	}

	if err := mon.Ready(); err != nil {
		t.Errorf("Ready() = %v, want nil", err)
	}
}

func TestStorageMonitor_NonPositiveInterval(t *testing.T) {
	for _, interval := range []time.Duration{0, -time.Second} {
		mon := NewStorageMonitor(&fakePinger{}, interval, nil)
		if mon.interval != DefaultInterval {
			t.Errorf("interval %s: got %s, want %s", interval, mon.interval, DefaultInterval)
		}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		mon.Start(ctx)
	}
}
