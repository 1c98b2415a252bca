package ast

import (
	"encoding/binary"
	"fmt"
	"go/token"
	"hash/fnv"
)

// Positioner locates a node in the original source file. Source-location
// attribution beyond carrying these two positions is the driver's job, not
// the checker's.
type Positioner interface {
	Pos() token.Pos
	End() token.Pos
}

// Range is the simplest Positioner: a pair of token positions.
type Range struct {
	PosStart token.Pos
	PosEnd   token.Pos
}

func (r Range) Pos() token.Pos { return r.PosStart }
func (r Range) End() token.Pos { return r.PosEnd }

func (r Range) String() string {
	if r.PosStart == r.PosEnd {
		return fmt.Sprintf("%v", r.PosStart)
	}
	return fmt.Sprintf("%v-%v", r.PosStart, r.PosEnd)
}

// Hash lets a Range key a cache the way frontend/ast.Range does in the teacher.
func (r Range) Hash() uint64 {
	h := fnv.New64a()
	var buf []byte
	buf = binary.LittleEndian.AppendUint64(buf, uint64(r.PosStart))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(r.PosEnd))
	_, _ = h.Write(buf)
	return h.Sum64()
}

// RangeBetween spans from the start of fst to the end of snd.
func RangeBetween(fst, snd Positioner) Range {
	return Range{fst.Pos(), snd.End()}
}
