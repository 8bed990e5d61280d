package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/gopad/gopad/gamepad"
	"github.com/gopad/gopad/internal/log"
)

// drainInterval is how often the monitor empties the event queue; it only
// bounds print latency, not the engine's own poll cadence.
const drainInterval = 5 * time.Millisecond

// Monitor runs the input engine on the platform driver and prints every
// event until interrupted.
type Monitor struct {
	Poll     gamepad.Config `embed:"" prefix:"poll."`
	Duration time.Duration  `help:"Stop after this long (0 = run until interrupted)" default:"0s" env:"GOPAD_MONITOR_DURATION"`
}

// Run is called by Kong when the monitor command is executed.
func (m *Monitor) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine := gamepad.NewDefault(m.Poll, logger, rawLogger)
	defer engine.Close()

	logger.Info("Monitoring gamepads", "slots", engine.Slots())
	for id := 0; id < engine.Slots(); id++ {
		g := engine.Gamepad(id)
		if g.Status() != gamepad.Connected {
			continue
		}
		logger.Info("Already attached", "slot", id, "name", g.Name(), "uuid", g.UUID())
	}

	// On a terminal print events directly; otherwise keep structured logs.
	pretty := term.IsTerminal(int(os.Stdout.Fd()))

	var timeout <-chan time.Time
	if m.Duration > 0 {
		timer := time.NewTimer(m.Duration)
		defer timer.Stop()
		timeout = timer.C
	}

	tick := time.NewTicker(drainInterval)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-timeout:
			return nil
		case <-tick.C:
			for {
				ev, ok := engine.NextEvent()
				if !ok {
					break
				}
				if pretty {
					fmt.Println(ev.String())
					continue
				}
				logger.Info("Event",
					"slot", ev.ID,
					"type", ev.Type.String(),
					"button", ev.Button.String(),
					"axis", ev.Axis.String(),
					"code", ev.Code,
					"value", ev.Value,
				)
			}
		}
	}
}
