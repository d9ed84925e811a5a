package world

import (
	"encoding/binary"
	"math"

	"github.com/zeebo/xxh3"

	"github.com/tomz197/blimp/internal/physics"
)

// Fingerprint hashes the simulation state. Two games that started from the
// same seed and received the same controls have equal fingerprints.
func (g *GameState) Fingerprint() uint64 {
	buf := make([]byte, 0, 16+(5+len(g.Drones))*8*9)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(g.Score))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(g.Tick))
	if g.Cargo.OnGround {
		buf = append(buf, 1)
	} else {
		buf = append(buf, 0)
	}
	for _, a := range g.Actors() {
		buf = appendBody(buf, a.Body())
	}
	return xxh3.Hash(buf)
}

func appendBody(buf []byte, b *physics.Body) []byte {
	for _, v := range [...]float64{b.X, b.Y, b.Width, b.Height, b.DX, b.DY, b.AX, b.AY, b.Drag} {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
	}
	return buf
}
