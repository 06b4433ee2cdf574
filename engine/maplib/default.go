package maplib

// DefaultSize is the edge length of the built-in diorama.
const DefaultSize = 10

// DefaultLayout builds the diorama shipped with the viewer: a grass island with
// a pond, a sandy shore, a tree and a lamp post.
func DefaultLayout() *Layout {
	l := NewLayout("Island Diorama", DefaultSize, DefaultSize)
	l.Author = "diorama"
	l.Description = "Grass island with a pond, a tree and a lamp"

	// Base: grass two blocks high
	l.SetColumns(0, 0, DefaultSize-1, DefaultSize-1, BlockGrass, 2)

	// Stone ridge along the back
	l.SetColumns(0, 0, DefaultSize-1, 0, BlockStone, 3)
	l.SetColumns(6, 1, 9, 1, BlockStone, 3)

	// Pond with a sandy shore
	l.SetColumns(1, 5, 5, 8, BlockSand, 1)
	l.SetColumns(2, 6, 4, 7, BlockWater, 1)

	// Tree: trunk plus a leaf crown
	trunkX, trunkZ := 7, 6
	for y := 2; y < 5; y++ {
		l.Place(trunkX, y, trunkZ, BlockWood)
	}
	for dz := -1; dz <= 1; dz++ {
		for dx := -1; dx <= 1; dx++ {
			l.Place(trunkX+dx, 5, trunkZ+dz, BlockLeaves)
		}
	}
	l.Place(trunkX, 6, trunkZ, BlockLeaves)

	// Lamp post by the pond
	l.Place(6, 2, 8, BlockPlank)
	l.Place(6, 3, 8, BlockLamp)

	l.Sun = SunConfig{
		Position:  [3]float32{30, 40, 20},
		Color:     0xFFFFFF,
		Intensity: 1.2,
		Radius:    3,
	}
	l.Camera = CameraConfig{
		Eye:    [3]float32{0, 7, 14},
		Center: [3]float32{0, 1, 0},
	}
	return l
}
