package scene

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// HitRecord is one record from a selection pass: the depth range of the
// primitives that hit, and the name stack at the time, outermost first.
type HitRecord struct {
	MinDepth uint32
	MaxDepth uint32
	Names    []uint32
}

func (h HitRecord) NumNames() int {
	return len(h.Names)
}

// LastName is the innermost name, normally a drawable's pick id.
func (h HitRecord) LastName() uint32 {
	if len(h.Names) == 0 {
		return 0
	}
	return h.Names[len(h.Names)-1]
}

func (h HitRecord) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "hit{min=%d max=%d names=[", h.MinDepth, h.MaxDepth)
	for i, n := range h.Names {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d", n)
	}
	sb.WriteString("]}")
	return sb.String()
}

// DecodeHits parses hitCount records laid out as
// [nameCount, minDepth, maxDepth, name_1 .. name_nameCount] from buf.
// Records without names are skipped. Decoding stops at the last complete
// record if buf is shorter than hitCount records need.
func DecodeHits(buf []uint32, hitCount int) []HitRecord {
	if hitCount <= 0 {
		return nil
	}
	var out []HitRecord
	pos := 0
	for i := 0; i < hitCount; i++ {
		if pos+3 > len(buf) {
			logTruncated(i, hitCount, len(buf))
			break
		}
		n := int(buf[pos])
		end := pos + 3 + n
		if n < 0 || end > len(buf) {
			logTruncated(i, hitCount, len(buf))
			break
		}
		if n > 0 {
			names := make([]uint32, n)
			copy(names, buf[pos+3:end])
			out = append(out, HitRecord{
				MinDepth: buf[pos+1],
				MaxDepth: buf[pos+2],
				Names:    names,
			})
		}
		pos = end
	}
	return out
}

func logTruncated(decoded, want, size int) {
	Logger().Warn("hit buffer truncated",
		zap.Int("decoded", decoded), zap.Int("hits", want), zap.Int("buffer", size))
}

// NearestPickID returns the last name of the first hit with the smallest
// MinDepth, or InvalidPickID when there are no hits.
func NearestPickID(hits []HitRecord) int {
	best := -1
	for i, h := range hits {
		if h.NumNames() == 0 {
			continue
		}
		if best < 0 || h.MinDepth < hits[best].MinDepth {
			best = i
		}
	}
	if best < 0 {
		return InvalidPickID
	}
	return int(int32(hits[best].LastName()))
}
