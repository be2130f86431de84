package scene

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var loggerPtr atomic.Pointer[zap.Logger]

func init() {
	loggerPtr.Store(zap.NewNop())
}

// SetLogger sets the logger used by the scene package. By default nothing is
// logged; nil restores that.
//
// Levels:
//   - Debug: per pass diagnostics (mode, hit counts, released lists)
//   - Info: lifecycle (depth scale in use)
//   - Warn: driver faults, truncated hit buffers, invalid configuration
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	loggerPtr.Store(l)
}

func Logger() *zap.Logger {
	return loggerPtr.Load()
}
