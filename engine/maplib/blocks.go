package maplib

// BlockType is the material kind of one voxel.
type BlockType uint8

const (
	BlockAir BlockType = iota
	BlockGrass
	BlockDirt
	BlockStone
	BlockSand
	BlockWater
	BlockWood
	BlockLeaves
	BlockPlank
	BlockLamp
	blockCount
)

var blockNames = [blockCount]string{
	BlockAir:    "air",
	BlockGrass:  "grass",
	BlockDirt:   "dirt",
	BlockStone:  "stone",
	BlockSand:   "sand",
	BlockWater:  "water",
	BlockWood:   "wood",
	BlockLeaves: "leaves",
	BlockPlank:  "plank",
	BlockLamp:   "lamp",
}

func (b BlockType) String() string {
	if b < blockCount {
		return blockNames[b]
	}
	return "unknown"
}

// Valid reports whether b is a known block type.
func (b BlockType) Valid() bool { return b < blockCount }

// IsWater reports whether blocks of this type bob with the water animation.
func (b BlockType) IsWater() bool { return b == BlockWater }

// Solid reports whether the block occludes its neighbours.
func (b BlockType) Solid() bool {
	switch b {
	case BlockAir, BlockWater, BlockLeaves, BlockLamp:
		return false
	}
	return true
}

// ParseBlock maps a block name back to its type.
func ParseBlock(name string) (BlockType, bool) {
	for i, n := range blockNames {
		if n == name {
			return BlockType(i), true
		}
	}
	return BlockAir, false
}
