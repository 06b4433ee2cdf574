package systems

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/1siamBot/diorama/engine/core"
	"github.com/1siamBot/diorama/engine/maplib"
	"github.com/1siamBot/diorama/engine/render3d"
	"github.com/1siamBot/diorama/engine/scene"
)

func pondWorld() *core.World {
	l := maplib.NewLayout("pond", 3, 1)
	l.SetColumns(0, 0, 0, 0, maplib.BlockGrass, 1)
	l.SetColumns(1, 0, 2, 0, maplib.BlockWater, 1)
	l.Sun.Position = [3]float32{10, 5, 0}
	return core.NewWorld(scene.Build(l, scene.DefaultPalette(), nil), 8)
}

func TestWaterSystem_LiftsOnlyWater(t *testing.T) {
	w := pondWorld()
	w.AddSystem(&WaterSystem{Amplitude: 0.1, Speed: 2})

	grass := w.Scene.Cubes[0].Center
	rest := []float32{w.Scene.Water[0].Center.Y(), w.Scene.Water[1].Center.Y()}
	w.Tick(0.5)

	if w.Scene.Cubes[0].Center != grass {
		t.Error("Grass cube moved")
	}
	for i, c := range w.Scene.Water {
		want := rest[i] + float32(0.1*math.Sin(0.5*2+float64(i)*0.7))
		if math.Abs(float64(c.Center.Y()-want)) > 1e-5 {
			t.Errorf("Water %d: expected y %v, got %v", i, want, c.Center.Y())
		}
	}
}

func TestDayNightSystem_BlendsAndEmits(t *testing.T) {
	w := pondWorld()
	dn := DefaultDayNight()
	dn.Period = 4
	w.AddSystem(dn)

	var got []core.EventType
	for _, et := range []core.EventType{core.EvtDawn, core.EvtDusk} {
		w.Events.On(et, func(e core.Event) { got = append(got, e.Type) })
	}

	for i := 0; i < 4; i++ {
		w.Tick(0.5)
	}
	if w.Background != dn.Day {
		t.Errorf("Expected full day at half period, got %v", w.Background)
	}
	for i := 0; i < 4; i++ {
		w.Tick(0.5)
	}
	if w.Background != dn.Night {
		t.Errorf("Expected night after a full period, got %v", w.Background)
	}

	if len(got) != 2 || got[0] != core.EvtDawn || got[1] != core.EvtDusk {
		t.Errorf("Expected [dawn dusk], got %v", got)
	}
}

func TestDaylight(t *testing.T) {
	tests := []struct {
		t, period, want float64
	}{
		{0, 10, 0},
		{5, 10, 1},
		{10, 10, 0},
		{2.5, 10, 0.5},
		{3, 0, 1},
	}
	for _, tt := range tests {
		if got := Daylight(tt.t, tt.period); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Daylight(%v, %v) = %v, expected %v", tt.t, tt.period, got, tt.want)
		}
	}
}

func TestSunSystem_Orbits(t *testing.T) {
	w := pondWorld()
	w.AddSystem(&SunSystem{Period: 4})
	w.Tick(1)

	p := w.Scene.Light.Position
	if math.Abs(float64(p.X())) > 1e-4 || math.Abs(float64(p.Y()-5)) > 1e-4 || math.Abs(float64(p.Z()-10)) > 1e-4 {
		t.Errorf("Expected light at (0,5,10), got %v", p)
	}
	if w.Scene.Sun.Center != p {
		t.Error("Expected the sun sphere to follow the light")
	}
}

func TestSystems_RunInPriorityOrder(t *testing.T) {
	w := pondWorld()
	dn := DefaultDayNight()
	w.AddSystem(&SunSystem{Period: 10})
	w.AddSystem(dn)
	w.AddSystem(&WaterSystem{Amplitude: 0.1, Speed: 1})
	w.Tick(0.125)

	if w.TickCount != 1 || w.Time != 0.125 {
		t.Errorf("Unexpected clock: tick %d time %v", w.TickCount, w.Time)
	}
	if w.Background == (render3d.Color{}) {
		t.Error("Expected day/night system to set the background")
	}
}

func TestNewDioramaWorld_SkyReadyBeforeFirstFrame(t *testing.T) {
	l := maplib.DefaultLayout()
	w := NewDioramaWorld(scene.Build(l, scene.DefaultPalette(), nil), 30)

	if w.Background != DefaultDayNight().Night {
		t.Errorf("Expected the night sky at time zero, got %v", w.Background)
	}
	if w.Time != 0 {
		t.Errorf("Expected time to stay at zero, got %v", w.Time)
	}
	want := mgl32.Vec3(l.Sun.Position)
	if p := w.Scene.Light.Position; !p.ApproxEqualThreshold(want, 1e-4) {
		t.Errorf("Expected the sun at its layout position %v, got %v", want, p)
	}
}
