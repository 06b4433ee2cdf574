package core

import (
	"github.com/1siamBot/diorama/engine/render3d"
	"github.com/1siamBot/diorama/engine/scene"
)

// World holds the animated state rendered each frame.
type World struct {
	Scene      *scene.Scene
	Background render3d.Color
	Events     *EventBus

	Time      float64 // simulated seconds
	TickCount uint64
	TickRate  float64 // ticks per second

	systems []System
}

// System mutates the world once per tick. Lower priorities run first.
type System interface {
	Update(w *World, dt float64)
	Priority() int
}

// NewWorld wraps a built scene.
func NewWorld(s *scene.Scene, tickRate float64) *World {
	return &World{
		Scene:    s,
		Events:   NewEventBus(),
		TickRate: tickRate,
	}
}

// AddSystem registers a system
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)
	// Sort by priority (simple insertion)
	for i := len(w.systems) - 1; i > 0; i-- {
		if w.systems[i].Priority() < w.systems[i-1].Priority() {
			w.systems[i], w.systems[i-1] = w.systems[i-1], w.systems[i]
		}
	}
}

// Tick advances time and runs all systems once, then dispatches the events
// they emitted.
func (w *World) Tick(dt float64) {
	w.Time += dt
	for _, s := range w.systems {
		s.Update(w, dt)
	}
	w.Events.Dispatch()
	w.TickCount++
}
