package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/1siamBot/diorama/engine/maplib"
	"github.com/1siamBot/diorama/engine/render3d"
	"github.com/1siamBot/diorama/engine/texture"
)

// SunColor is the flat color of the sphere drawn at the light.
var SunColor = render3d.NewColor(255, 234, 100)

// Scene is everything one frame is rendered from.
type Scene struct {
	Name string

	// Objects is the ordered list handed to the renderer. Cubes and Sun are
	// typed views into the same objects.
	Objects []render3d.Object
	Cubes   []*render3d.Cube
	Water   []*render3d.Cube
	Sun     *render3d.Sphere

	Light  render3d.Light
	Camera *render3d.Camera
}

// Build turns a layout into a scene. Voxels whose six neighbours are all solid
// can never be seen and are left out. textures may be nil.
func Build(l *maplib.Layout, palette Palette, textures *texture.Manager) *Scene {
	s := &Scene{Name: l.Name}

	voxels := l.Voxels()
	solid := make(map[[3]int]bool, len(voxels))
	for _, v := range voxels {
		if v.Block.Solid() {
			solid[[3]int{v.X, v.Y, v.Z}] = true
		}
	}

	faces := make(map[maplib.BlockType][6]render3d.Material)
	for _, v := range voxels {
		if enclosed(solid, v) {
			continue
		}
		f, ok := faces[v.Block]
		if !ok {
			f = palette.Faces(v.Block, textures)
			faces[v.Block] = f
		}
		c := render3d.NewCubeFaces(VoxelCenter(l, v.X, v.Y, v.Z), l.BlockSize, f)
		c.Water = v.Block.IsWater()
		s.Cubes = append(s.Cubes, c)
		s.Objects = append(s.Objects, c)
		if c.Water {
			s.Water = append(s.Water, c)
		}
	}

	sun := l.Sun
	s.Light = render3d.NewLight(mgl32.Vec3(sun.Position), render3d.ColorFromHex(sun.Color), sun.Intensity, sun.Radius)
	s.Sun = s.Light.SunSphere(SunColor)
	s.Objects = append(s.Objects, s.Sun)

	s.Camera = render3d.NewCamera(mgl32.Vec3(l.Camera.Eye), mgl32.Vec3(l.Camera.Center), mgl32.Vec3{0, 1, 0})
	return s
}

// VoxelCenter maps grid coordinates to world space. The grid is centered on
// the origin in x and z and rests on y=0.
func VoxelCenter(l *maplib.Layout, x, y, z int) mgl32.Vec3 {
	bs := l.BlockSize
	return mgl32.Vec3{
		(float32(x) + 0.5 - float32(l.Width)/2) * bs,
		(float32(y) + 0.5) * bs,
		(float32(z) + 0.5 - float32(l.Depth)/2) * bs,
	}
}

// MoveLight moves the light and its sun sphere together.
func (s *Scene) MoveLight(p mgl32.Vec3) {
	s.Light.Position = p
	if s.Sun != nil {
		s.Sun.Center = p
	}
}

func enclosed(solid map[[3]int]bool, v maplib.Voxel) bool {
	for _, d := range [6][3]int{{-1, 0, 0}, {1, 0, 0}, {0, -1, 0}, {0, 1, 0}, {0, 0, -1}, {0, 0, 1}} {
		if !solid[[3]int{v.X + d[0], v.Y + d[1], v.Z + d[2]}] {
			return false
		}
	}
	return true
}
