package world

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tilefall/internal/tile"
)

// TestCodecRoundTrip verifies a realistic mixed chunk survives encode/decode
func TestCodecRoundTrip(t *testing.T) {
	src := NewChunk(3, 7)
	// A stratified layout with a vein and a cave pocket, the shape the
	// generator actually produces.
	for ly := 0; ly < ChunkSize; ly++ {
		for lx := 0; lx < ChunkSize; lx++ {
			switch {
			case ly < 8:
				src.SetTile(lx, ly, tile.Air)
			case ly < 10:
				src.SetTile(lx, ly, tile.Dirt)
			default:
				src.SetTile(lx, ly, tile.Stone)
			}
		}
	}
	src.SetTile(5, 20, tile.CoalOre)
	src.SetTile(6, 20, tile.CoalOre)
	src.SetTile(12, 25, tile.Air)

	data := src.Serialize()

	dst := NewChunk(3, 7)
	require.NoError(t, dst.Deserialize(data))

	for ly := 0; ly < ChunkSize; ly++ {
		for lx := 0; lx < ChunkSize; lx++ {
			require.Equal(t, src.GetTile(lx, ly), dst.GetTile(lx, ly),
				"cell (%d,%d)", lx, ly)
		}
	}
	assert.False(t, dst.Modified(), "deserialized chunk should be clean")
	assert.True(t, dst.LightingDirty(), "deserialized chunk needs relighting")
}

// TestCodecRunSplitting verifies uniform chunks split runs at the byte limit
func TestCodecRunSplitting(t *testing.T) {
	c := NewChunk(0, 0)
	c.Fill(tile.Stone)

	data := c.Serialize()
	body := data[codecHeaderSize:]

	// 1024 identical cells encode as 255+255+255+255+4.
	require.Len(t, body, 10)

	total := 0
	for i := 0; i < len(body); i += 2 {
		assert.Equal(t, byte(tile.Stone), body[i])
		assert.LessOrEqual(t, int(body[i+1]), 255)
		total += int(body[i+1])
	}
	assert.Equal(t, ChunkArea, total, "run counts must sum to the chunk area")
}

// TestCodecHeader verifies signed coordinates encode little-endian
func TestCodecHeader(t *testing.T) {
	c := NewChunk(5, 2)
	data := c.Serialize()

	assert.Equal(t, int32(5), int32(binary.LittleEndian.Uint32(data[0:4])))
	assert.Equal(t, int32(2), int32(binary.LittleEndian.Uint32(data[4:8])))
}

// TestCodecHeaderMismatch verifies wrong-chunk data is rejected without mutation
func TestCodecHeaderMismatch(t *testing.T) {
	src := NewChunk(1, 1)
	src.Fill(tile.Stone)
	data := src.Serialize()

	dst := NewChunk(2, 2)
	dst.SetTile(0, 0, tile.Dirt)

	err := dst.Deserialize(data)
	require.Error(t, err)
	assert.Equal(t, tile.Dirt, dst.GetTile(0, 0), "failed load must not change tiles")
}

// TestCodecCorruptData verifies malformed payloads error instead of loading
func TestCodecCorruptData(t *testing.T) {
	c := NewChunk(0, 0)

	cases := map[string][]byte{
		"empty":        {},
		"short header": {0, 0, 0},
		"odd body":     append(make([]byte, codecHeaderSize), 1),
		"underflow":    append(make([]byte, codecHeaderSize), byte(tile.Stone), 10),
	}
	// Overflow: more runs than the chunk holds.
	overflow := make([]byte, codecHeaderSize)
	for i := 0; i < 5; i++ {
		overflow = append(overflow, byte(tile.Stone), 255)
	}
	cases["overflow"] = overflow

	for name, data := range cases {
		assert.Error(t, c.Deserialize(data), "case %q", name)
	}
}

func BenchmarkChunkSerialize(b *testing.B) {
	c := NewChunk(0, 0)
	for ly := 0; ly < ChunkSize; ly++ {
		for lx := 0; lx < ChunkSize; lx++ {
			if (lx+ly)%11 == 0 {
				c.SetTile(lx, ly, tile.Air)
			} else {
				c.SetTile(lx, ly, tile.Stone)
			}
		}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Serialize()
	}
}
