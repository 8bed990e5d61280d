package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/gopad/gopad/driver"
	"github.com/gopad/gopad/gamepad"
	"github.com/gopad/gopad/internal/log"
)

// Devices probes every slot once and prints what is attached.
type Devices struct{}

// Run is called by Kong when the devices command is executed.
func (d *Devices) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	engine := gamepad.NewDefault(gamepad.Config{}, logger, rawLogger)
	defer engine.Close()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SLOT\tSTATUS\tNAME\tUUID\tFF\tPOWER")
	for id := 0; id < engine.Slots(); id++ {
		g := engine.Gamepad(id)
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			id, g.Status(), g.Name(), g.UUID(), ffColumn(g), powerColumn(g.PowerInfo()))
	}
	return w.Flush()
}

func ffColumn(g *gamepad.Gamepad) string {
	if !g.IsFFSupported() {
		return "no"
	}
	return fmt.Sprintf("yes (%d effects)", g.MaxFFEffects())
}

func powerColumn(p driver.PowerInfo) string {
	switch p.Kind {
	case driver.PowerDischarging, driver.PowerCharging:
		return fmt.Sprintf("%s %d%%", p.Kind, p.Level)
	default:
		return p.Kind.String()
	}
}
