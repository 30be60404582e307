package sim

import (
	"errors"
	"sync/atomic"
	"testing"
)

func TestScheduleRunsEveryIndex(t *testing.T) {
	d := NewDriver(4)
	defer d.Close()

	const n = 1000
	out := make([]int, n)
	h, err := d.Schedule(n, 16, func(i int) {
		out[i] = i * 2
	})
	if err != nil {
		t.Fatalf("Schedule failed: %v", err)
	}
	h.Wait()

	// Every write must be visible after Wait returns.
	for i := 0; i < n; i++ {
		if out[i] != i*2 {
			t.Fatalf("index %d: expected %d, got %d", i, i*2, out[i])
		}
	}
}

func TestScheduleZeroElements(t *testing.T) {
	d := NewDriver(2)
	defer d.Close()

	var calls atomic.Int64
	h, err := d.Schedule(0, 8, func(i int) { calls.Add(1) })
	if err != nil {
		t.Fatalf("Schedule failed: %v", err)
	}
	h.Wait()
	if calls.Load() != 0 {
		t.Errorf("expected no body calls for n=0, got %d", calls.Load())
	}
}

func TestScheduleInvalidArguments(t *testing.T) {
	d := NewDriver(2)
	defer d.Close()

	if _, err := d.Schedule(10, 0, func(int) {}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("batch size 0: expected ErrInvalidConfig, got %v", err)
	}
	if _, err := d.Schedule(-1, 8, func(int) {}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("negative n: expected ErrInvalidConfig, got %v", err)
	}
}

func TestScheduleConflict(t *testing.T) {
	d := NewDriver(2)
	defer d.Close()

	gate := make(chan struct{})
	h1, err := d.Schedule(1, 1, func(int) { <-gate })
	if err != nil {
		t.Fatalf("first Schedule failed: %v", err)
	}

	// A second tick before Wait must be rejected.
	if _, err := d.Schedule(1, 1, func(int) {}); !errors.Is(err, ErrScheduleConflict) {
		t.Errorf("expected ErrScheduleConflict, got %v", err)
	}

	close(gate)
	h1.Wait()
	h1.Wait() // Wait is idempotent

	h2, err := d.Schedule(1, 1, func(int) {})
	if err != nil {
		t.Fatalf("Schedule after Wait failed: %v", err)
	}
	h2.Wait()
}

func TestBatchPartitioning(t *testing.T) {
	d := NewDriver(3)
	defer d.Close()

	// n not divisible by batch size: the tail batch must still run.
	const n = 101
	var calls atomic.Int64
	h, err := d.Schedule(n, 25, func(i int) { calls.Add(1) })
	if err != nil {
		t.Fatalf("Schedule failed: %v", err)
	}
	h.Wait()
	if calls.Load() != n {
		t.Errorf("expected %d body calls, got %d", n, calls.Load())
	}
}

func TestCloseRejectsSchedule(t *testing.T) {
	d := NewDriver(2)
	d.Close()
	d.Close() // idempotent

	if _, err := d.Schedule(4, 2, func(int) {}); !errors.Is(err, ErrScheduleConflict) {
		t.Errorf("expected ErrScheduleConflict after Close, got %v", err)
	}
}
