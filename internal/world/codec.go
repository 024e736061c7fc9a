package world

import (
	"encoding/binary"
	"fmt"

	"tilefall/internal/tile"
)

// Chunk wire format: int32 LE chunkX, int32 LE chunkY, then a row-major
// run-length encoding of the tile layer as (tileType byte, count byte)
// pairs. Runs longer than 255 cells split into multiple records; the run
// counts always sum to exactly ChunkArea. The wall layer is not part of
// this encoding (see DESIGN.md).

const codecHeaderSize = 8

// Serialize encodes the chunk's coordinates and tile layer.
func (c *Chunk) Serialize() []byte {
	buf := make([]byte, codecHeaderSize, codecHeaderSize+ChunkArea/4)
	binary.LittleEndian.PutUint32(buf[0:4], uint32(int32(c.coord.X)))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(int32(c.coord.Y)))

	run := c.tiles[0]
	count := 0
	for _, t := range c.tiles {
		if t == run && count < 255 {
			count++
			continue
		}
		buf = append(buf, byte(run), byte(count))
		run = t
		count = 1
	}
	buf = append(buf, byte(run), byte(count))
	return buf
}

// Deserialize decodes a serialized chunk into this chunk's tile layer.
// A header whose coordinates do not match this chunk is corruption: the
// load is aborted and no state changes. On success the chunk is clean
// with respect to persistence but its cached lighting is stale.
func (c *Chunk) Deserialize(data []byte) error {
	if len(data) < codecHeaderSize {
		return fmt.Errorf("chunk data truncated: %d bytes", len(data))
	}
	cx := int(int32(binary.LittleEndian.Uint32(data[0:4])))
	cy := int(int32(binary.LittleEndian.Uint32(data[4:8])))
	if cx != c.coord.X || cy != c.coord.Y {
		return fmt.Errorf("chunk header (%d,%d) does not match target chunk (%d,%d)",
			cx, cy, c.coord.X, c.coord.Y)
	}

	body := data[codecHeaderSize:]
	if len(body)%2 != 0 {
		return fmt.Errorf("chunk run data has odd length %d", len(body))
	}

	var tiles [ChunkArea]tile.Type
	cell := 0
	for i := 0; i < len(body); i += 2 {
		t := tile.Type(body[i])
		count := int(body[i+1])
		if cell+count > ChunkArea {
			return fmt.Errorf("chunk run data overflows %d cells", ChunkArea)
		}
		for j := 0; j < count; j++ {
			tiles[cell] = t
			cell++
		}
	}
	if cell != ChunkArea {
		return fmt.Errorf("chunk run data covers %d of %d cells", cell, ChunkArea)
	}

	c.tiles = tiles
	c.modified = false
	c.lightingDirty = true
	return nil
}
