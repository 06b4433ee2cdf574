package systems

import (
	"github.com/1siamBot/diorama/engine/core"
	"github.com/1siamBot/diorama/engine/scene"
)

// NewDioramaWorld wraps s with the default animation systems: bobbing water,
// the day/night sky and the orbiting sun. It runs one zero-length tick so the
// sky and sun are placed before the first frame is drawn.
func NewDioramaWorld(s *scene.Scene, tickRate float64) *core.World {
	w := core.NewWorld(s, tickRate)
	w.AddSystem(&WaterSystem{Amplitude: 0.06, Speed: 1.5})
	w.AddSystem(DefaultDayNight())
	w.AddSystem(&SunSystem{Period: 120})
	w.Tick(0)
	return w
}
