package core

import "time"

// LoopState is the run state of the loop.
type LoopState uint8

const (
	StatePlaying LoopState = iota
	StatePaused
)

// maxFrameTime caps one frame's simulated time to avoid a spiral of death.
const maxFrameTime = 0.25

// GameLoop runs the world at a fixed timestep independent of frame rate.
type GameLoop struct {
	World       *World
	State       LoopState
	TickRate    float64 // fixed ticks per second
	accumulator float64
	lastTime    time.Time
}

// NewGameLoop creates a game loop with fixed tick rate
func NewGameLoop(w *World, tickRate float64) *GameLoop {
	w.TickRate = tickRate
	return &GameLoop{
		World:    w,
		TickRate: tickRate,
		lastTime: time.Now(),
	}
}

// Update should be called every render frame. It measures wall time since the
// last call and advances the simulation by it.
// Returns the interpolation alpha for smooth rendering.
func (gl *GameLoop) Update() float64 {
	now := time.Now()
	frameTime := now.Sub(gl.lastTime).Seconds()
	gl.lastTime = now
	return gl.Advance(frameTime)
}

// Advance runs as many fixed ticks as frameTime covers. Paused loops drop the
// time instead of banking it.
func (gl *GameLoop) Advance(frameTime float64) float64 {
	if frameTime > maxFrameTime {
		frameTime = maxFrameTime
	}
	dt := 1.0 / gl.TickRate
	if gl.State != StatePlaying {
		gl.accumulator = 0
		return 0
	}

	gl.accumulator += frameTime
	for gl.accumulator >= dt {
		gl.World.Tick(dt)
		gl.accumulator -= dt
	}
	return gl.accumulator / dt
}

// Play starts or resumes the loop. Listeners hear EvtResumed before Play
// returns.
func (gl *GameLoop) Play() {
	if gl.State != StatePlaying {
		gl.World.Events.Emit(Event{Type: EvtResumed, Tick: gl.World.TickCount})
	}
	gl.State = StatePlaying
	gl.lastTime = time.Now()
	gl.World.Events.Dispatch()
}

// Pause freezes the animation; rendering continues. Listeners hear EvtPaused
// before Pause returns.
func (gl *GameLoop) Pause() {
	if gl.State != StatePaused {
		gl.World.Events.Emit(Event{Type: EvtPaused, Tick: gl.World.TickCount})
	}
	gl.State = StatePaused
	gl.World.Events.Dispatch()
}

// Toggle flips between playing and paused.
func (gl *GameLoop) Toggle() {
	if gl.State == StatePlaying {
		gl.Pause()
	} else {
		gl.Play()
	}
}

// CurrentTick returns the current simulation tick
func (gl *GameLoop) CurrentTick() uint64 {
	return gl.World.TickCount
}
