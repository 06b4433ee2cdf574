package systems

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/1siamBot/diorama/engine/core"
	"github.com/1siamBot/diorama/engine/render3d"
)

// WaterSystem bobs water cubes up and down. Each tile gets a phase from its
// index so the surface ripples instead of moving as one slab.
type WaterSystem struct {
	Amplitude float64 // world units
	Speed     float64 // radians per second
}

func (s *WaterSystem) Priority() int { return 10 }

func (s *WaterSystem) Update(w *core.World, _ float64) {
	for i, c := range w.Scene.Water {
		phase := float64(i) * 0.7
		c.SetLift(float32(s.Amplitude * math.Sin(w.Time*s.Speed+phase)))
	}
}

// DayNightSystem blends the background between night and day colors over a
// full cycle of Period seconds, and emits dawn/dusk events when daylight
// crosses one half.
type DayNightSystem struct {
	Day, Night render3d.Color
	Period     float64

	daylight float64
	started  bool
}

// DefaultDayNight starts at night under a deep blue sky.
func DefaultDayNight() *DayNightSystem {
	return &DayNightSystem{
		Day:    render3d.NewColor(135, 206, 235),
		Night:  render3d.NewColor(4, 12, 36),
		Period: 60,
	}
}

func (s *DayNightSystem) Priority() int { return 20 }

// Daylight is the current blend factor, 0 at midnight and 1 at noon.
func (s *DayNightSystem) Daylight() float64 { return s.daylight }

func (s *DayNightSystem) Update(w *core.World, _ float64) {
	d := Daylight(w.Time, s.Period)
	if s.started {
		switch {
		case s.daylight < 0.5 && d >= 0.5:
			w.Events.Emit(core.Event{Type: core.EvtDawn, Tick: w.TickCount, Payload: w.Time})
		case s.daylight >= 0.5 && d < 0.5:
			w.Events.Emit(core.Event{Type: core.EvtDusk, Tick: w.TickCount, Payload: w.Time})
		}
	}
	s.daylight = d
	s.started = true
	w.Background = render3d.TransitionColor(s.Night, s.Day, float32(d))
}

// Daylight maps time to [0,1]: 0 at t=0, 1 half a period later.
func Daylight(t, period float64) float64 {
	if period <= 0 {
		return 1
	}
	return 0.5 - 0.5*math.Cos(2*math.Pi*t/period)
}

// SunSystem moves the light on a circle around the y axis, one turn per
// Period, keeping its starting radius and height.
type SunSystem struct {
	Period float64

	radius, height, angle0 float64
	started                bool
}

func (s *SunSystem) Priority() int { return 30 }

func (s *SunSystem) Update(w *core.World, _ float64) {
	p := w.Scene.Light.Position
	if !s.started {
		s.radius = math.Hypot(float64(p.X()), float64(p.Z()))
		s.height = float64(p.Y())
		s.angle0 = math.Atan2(float64(p.Z()), float64(p.X()))
		s.started = true
	}
	if s.Period <= 0 {
		return
	}
	a := s.angle0 + 2*math.Pi*w.Time/s.Period
	w.Scene.MoveLight(mgl32.Vec3{
		float32(s.radius * math.Cos(a)),
		float32(s.height),
		float32(s.radius * math.Sin(a)),
	})
}
