package maplib

import (
	"encoding/json"
	"fmt"
	"os"
)

// Tile is one column of the diorama: Height blocks stacked from y=0, the top
// one of type Block and the ones below of type Fill.
type Tile struct {
	Block  BlockType `json:"block"`
	Fill   BlockType `json:"fill"`
	Height int8      `json:"height"`
}

// Voxel is a single hand-placed block.
type Voxel struct {
	X     int       `json:"x"`
	Y     int       `json:"y"`
	Z     int       `json:"z"`
	Block BlockType `json:"block"`
}

// SunConfig places the scene's point light.
type SunConfig struct {
	Position  [3]float32 `json:"position"`
	Color     uint32     `json:"color"`
	Intensity float32    `json:"intensity"`
	Radius    float32    `json:"radius"`
}

// CameraConfig is the initial camera pose.
type CameraConfig struct {
	Eye    [3]float32 `json:"eye"`
	Center [3]float32 `json:"center"`
}

// Layout is a voxel diorama: a Width x Depth grid of columns plus extra
// voxels placed anywhere above it.
type Layout struct {
	Name        string `json:"name"`
	Author      string `json:"author"`
	Description string `json:"description"`
	Width       int    `json:"width"`
	Depth       int    `json:"depth"`
	Tiles       []Tile `json:"tiles"`

	Extras []Voxel `json:"extras"`

	BlockSize float32      `json:"block_size"`
	Sun       SunConfig    `json:"sun"`
	Camera    CameraConfig `json:"camera"`
}

// NewLayout creates an empty width x depth layout.
func NewLayout(name string, width, depth int) *Layout {
	return &Layout{
		Name:      name,
		Width:     width,
		Depth:     depth,
		Tiles:     make([]Tile, width*depth),
		BlockSize: 1,
		Sun: SunConfig{
			Position:  [3]float32{100, 100, 10},
			Color:     0xFFFFFF,
			Intensity: 1.5,
			Radius:    3,
		},
		Camera: CameraConfig{
			Eye:    [3]float32{0, 3, float32(depth) + 4},
			Center: [3]float32{0, 0, 0},
		},
	}
}

// At returns a pointer to the column at (x, z), or nil outside the grid.
func (l *Layout) At(x, z int) *Tile {
	if !l.InBounds(x, z) {
		return nil
	}
	return &l.Tiles[z*l.Width+x]
}

func (l *Layout) InBounds(x, z int) bool {
	return x >= 0 && z >= 0 && x < l.Width && z < l.Depth
}

// SetColumns fills the rectangle (x1,z1)-(x2,z2), inclusive, with columns of
// the given height. Fill is dirt under grass and stone under everything else.
func (l *Layout) SetColumns(x1, z1, x2, z2 int, block BlockType, height int8) {
	fill := BlockStone
	if block == BlockGrass {
		fill = BlockDirt
	}
	for z := z1; z <= z2; z++ {
		for x := x1; x <= x2; x++ {
			if t := l.At(x, z); t != nil {
				*t = Tile{Block: block, Fill: fill, Height: height}
			}
		}
	}
}

// Place adds a single voxel.
func (l *Layout) Place(x, y, z int, block BlockType) {
	l.Extras = append(l.Extras, Voxel{X: x, Y: y, Z: z, Block: block})
}

// Voxels expands columns and extras into one ordered list: columns in row
// order bottom to top, then extras in insertion order. Air is skipped.
func (l *Layout) Voxels() []Voxel {
	var out []Voxel
	for z := 0; z < l.Depth; z++ {
		for x := 0; x < l.Width; x++ {
			t := l.Tiles[z*l.Width+x]
			for y := 0; y < int(t.Height); y++ {
				b := t.Fill
				if y == int(t.Height)-1 {
					b = t.Block
				}
				if b != BlockAir {
					out = append(out, Voxel{X: x, Y: y, Z: z, Block: b})
				}
			}
		}
	}
	for _, v := range l.Extras {
		if v.Block != BlockAir {
			out = append(out, v)
		}
	}
	return out
}

// Validate checks that the grid and block types are consistent.
func (l *Layout) Validate() error {
	if l.Width <= 0 || l.Depth <= 0 {
		return fmt.Errorf("layout %q: invalid size %dx%d", l.Name, l.Width, l.Depth)
	}
	if len(l.Tiles) != l.Width*l.Depth {
		return fmt.Errorf("layout %q: %d tiles for a %dx%d grid", l.Name, len(l.Tiles), l.Width, l.Depth)
	}
	if l.BlockSize <= 0 {
		return fmt.Errorf("layout %q: block size must be positive, got %v", l.Name, l.BlockSize)
	}
	for i, t := range l.Tiles {
		if !t.Block.Valid() || !t.Fill.Valid() {
			return fmt.Errorf("layout %q: tile %d has unknown block type", l.Name, i)
		}
		if t.Height < 0 {
			return fmt.Errorf("layout %q: tile %d has negative height", l.Name, i)
		}
	}
	for i, v := range l.Extras {
		if !v.Block.Valid() {
			return fmt.Errorf("layout %q: extra %d has unknown block type", l.Name, i)
		}
	}
	return nil
}

// SaveJSON saves the layout to a JSON file.
func (l *Layout) SaveJSON(path string) error {
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadJSON loads and validates a layout from a JSON file.
func LoadJSON(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parse layout %s: %w", path, err)
	}
	if l.BlockSize == 0 {
		l.BlockSize = 1
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}
