package softgl

import (
	"math"
)

// selection implements selection mode. A hit record is appended to the
// buffer whenever the name stack changes, or selection ends, after at least
// one primitive hit the pick window:
//
//	[nameCount, minDepth, maxDepth, names...]
//
// Depths are window z scaled to [0, 2^32-1].
type selection struct {
	active   bool
	buf      []uint32
	pos      int
	hits     int
	overflow bool
	names    []uint32

	hit  bool
	minZ float64
	maxZ float64
}

func (s *selection) begin(buf []uint32) {
	*s = selection{active: true, buf: buf, names: s.names[:0]}
}

func (s *selection) end() int {
	if !s.active {
		return 0
	}
	s.flush()
	s.active = false
	if s.overflow {
		return -1
	}
	return s.hits
}

func (s *selection) pushName(name uint32) {
	if !s.active {
		return
	}
	s.flush()
	s.names = append(s.names, name)
}

func (s *selection) popName() {
	if !s.active {
		return
	}
	s.flush()
	if len(s.names) > 0 {
		s.names = s.names[:len(s.names)-1]
	}
}

func (s *selection) hitRange(lo, hi float64) {
	if !s.hit {
		s.hit = true
		s.minZ, s.maxZ = lo, hi
		return
	}
	s.minZ = math.Min(s.minZ, lo)
	s.maxZ = math.Max(s.maxZ, hi)
}

func (s *selection) flush() {
	if !s.hit {
		return
	}
	s.hit = false
	need := 3 + len(s.names)
	if s.overflow || s.pos+need > len(s.buf) {
		s.overflow = true
		return
	}
	s.buf[s.pos] = uint32(len(s.names))
	s.buf[s.pos+1] = depthWord(s.minZ)
	s.buf[s.pos+2] = depthWord(s.maxZ)
	copy(s.buf[s.pos+3:], s.names)
	s.pos += need
	s.hits++
}

func depthWord(z float64) uint32 {
	if z <= 0 {
		return 0
	}
	if z >= 1 {
		return math.MaxUint32
	}
	return uint32(z * math.MaxUint32)
}
