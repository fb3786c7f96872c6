package scene

import (
	"log/slog"
	"sync/atomic"
)

var sceneLogger atomic.Pointer[slog.Logger]

// SetLogger routes the package's diagnostics to l. A nil logger restores
// slog.Default().
func SetLogger(l *slog.Logger) {
	sceneLogger.Store(l)
}

func logger() *slog.Logger {
	if l := sceneLogger.Load(); l != nil {
		return l
	}
	return slog.Default()
}
