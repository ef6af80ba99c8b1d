package statshub

import (
	"StatLabApi/internal/assert"
	"testing"
	"time"
)

func TestHubDropsSlowWatcher(t *testing.T) {
	hub := New(func(formula, season string) ([]byte, error) {
		return []byte(`{"results":[]}`), nil
	})

	panicked := make(chan any, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				panicked <- r
			}
		}()
		hub.Run()
	}()

	slow := newWatcher(hub, nil)
	hub.JoinWatcher <- slow

	// Back the watcher up until its buffer is full, then broadcast so the hub
	// drops it.
	for i := 0; i < cap(slow.Receive); i++ {
		slow.Receive <- []byte(`backlog`)
	}
	hub.Broadcast <- []byte(`{"event":"registry_updated"}`)

	// A request from the dropped watcher must be discarded, not answered.
	hub.Requests <- Request{watcher: slow, Formula: "PTS + AST"}

	// The hub keeps serving watchers that are keeping up.
	healthy := newWatcher(hub, nil)
	hub.JoinWatcher <- healthy
	hub.Requests <- Request{watcher: healthy, Formula: "REB * 2"}

	select {
	case msg := <-healthy.Receive:
		assert.StringContains(t, string(msg), "results")
	case r := <-panicked:
		t.Fatalf("hub goroutine panicked: %v", r)
	case <-time.After(time.Second):
		t.Fatal("no result delivered to connected watcher")
	}

	select {
	case <-slow.done:
	default:
		t.Error("dropped watcher was not signalled")
	}

	// The dropped watcher's buffer held only its backlog, nothing new.
	assert.Equal(t, len(slow.Receive), cap(slow.Receive))
}
