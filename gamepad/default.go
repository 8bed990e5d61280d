package gamepad

import (
	"log/slog"

	"github.com/gopad/gopad/internal/log"
)

// NewDefault builds an engine over the platform's native driver: XInput on
// Windows, joydev on Linux, the no-hardware stub elsewhere. raw may be nil.
func NewDefault(cfg Config, logger *slog.Logger, raw log.RawLogger) *Engine {
	return New(defaultDriver(raw), cfg, logger)
}
