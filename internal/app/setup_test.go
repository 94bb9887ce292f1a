package app

import (
	"carrier-defense/internal/event"
	"testing"
)

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	opts := DefaultOptions()
	opts.Seed = 5
	g, err := NewGame(opts)
	if err != nil {
		t.Fatalf("Failed to create game: %v", err)
	}
	return g
}

func listen(g *Game, types ...event.EventType) *recorder {
	r := &recorder{}
	for _, et := range types {
		g.EventDispatcher.Subscribe(et, r)
	}
	return r
}
