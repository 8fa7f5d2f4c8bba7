package service

import (
	"context"
	"testing"
	"time"
)

func released(ch <-chan struct{}, within time.Duration) bool {
	select {
	case <-ch:
		return true
	case <-time.After(within):
		return false
	}
}

func TestWaitTimeout(t *testing.T) {
	w := NewWaitRegistry(20 * time.Millisecond)
	ch := w.Register(context.Background(), "g", 0)
	if !released(ch, time.Second) {
		t.Fatal("waiter not released after timeout")
	}
}

func TestNotifySameCountKeepsWaiting(t *testing.T) {
	w := NewWaitRegistry(time.Minute)
	defer w.Shutdown(time.Second)

	ch := w.Register(context.Background(), "g", 3)
	w.NotifyGame("g", 3)
	if released(ch, 50*time.Millisecond) {
		t.Fatal("released with an unchanged move count")
	}
	w.NotifyGame("g", 4)
	if !released(ch, time.Second) {
		t.Fatal("not released by a changed move count")
	}
}

func TestContextCancelRemovesWaiter(t *testing.T) {
	w := NewWaitRegistry(time.Minute)
	defer w.Shutdown(time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	ch := w.Register(ctx, "g", 0)
	if w.Waiting("g") != 1 {
		t.Fatalf("Waiting = %d; want 1", w.Waiting("g"))
	}
	cancel()
	if !released(ch, time.Second) {
		t.Fatal("not released on cancel")
	}

	deadline := time.Now().Add(time.Second)
	for w.Waiting("g") != 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if w.Waiting("g") != 0 {
		t.Errorf("Waiting = %d after cancel; want 0", w.Waiting("g"))
	}
}

func TestShutdownReleasesAll(t *testing.T) {
	w := NewWaitRegistry(time.Minute)
	a := w.Register(context.Background(), "a", 0)
	b := w.Register(context.Background(), "b", 0)

	if err := w.Shutdown(time.Second); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	if !released(a, time.Second) || !released(b, time.Second) {
		t.Fatal("waiters not released by shutdown")
	}
	if !released(w.Register(context.Background(), "c", 0), time.Second) {
		t.Error("registration after shutdown not released")
	}
}
