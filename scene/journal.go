package scene

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"go.uber.org/zap"

	"glscene/common/message"
)

// PickRecord is one entry of a pick journal.
type PickRecord struct {
	X, Y int
	Time time.Time
	Hits []HitRecord
}

type pickJournal struct {
	mu  sync.Mutex
	w   io.Writer
	buf []byte
}

func newPickJournal(w io.Writer) *pickJournal {
	return &pickJournal{w: w}
}

func (j *pickJournal) record(x, y int, at time.Time, hits []HitRecord) {
	m := message.Pick{X: x, Y: y, UnixNano: at.UnixNano()}
	for _, h := range hits {
		m.Hits = append(m.Hits, message.Hit{MinDepth: h.MinDepth, MaxDepth: h.MaxDepth, Names: h.Names})
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	j.buf = message.AppendDelimited(j.buf[:0], m)
	if _, err := j.w.Write(j.buf); err != nil {
		Logger().Warn("pick journal write failed", zap.Error(err))
	}
}

// ReadPickJournal decodes every record written through WithPickJournal.
func ReadPickJournal(r io.Reader) ([]PickRecord, error) {
	rd := message.NewReader(r)
	var out []PickRecord
	for {
		m, err := rd.Next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, fmt.Errorf("pick journal record %d: %w", len(out), err)
		}
		rec := PickRecord{X: m.X, Y: m.Y}
		if m.UnixNano != 0 {
			rec.Time = time.Unix(0, m.UnixNano)
		}
		for _, h := range m.Hits {
			rec.Hits = append(rec.Hits, HitRecord{MinDepth: h.MinDepth, MaxDepth: h.MaxDepth, Names: h.Names})
		}
		out = append(out, rec)
	}
}
