// Package stub is the fallback driver for platforms without a real backend.
// It observes no hardware: an engine built over it only ever serves the
// shared NotObserved placeholder and emits no events.
package stub

import (
	"github.com/gopad/gopad/driver"
	"github.com/gopad/gopad/state"
)

var emptyTable = state.NewCodeTable(nil, nil)

// Driver is the no-hardware backend.
type Driver struct{}

// New returns the stub driver.
func New() *Driver {
	return &Driver{}
}

func (*Driver) SlotCount() int {
	return 0
}

func (*Driver) Table() *state.CodeTable {
	return emptyTable
}

func (*Driver) QueryRawState(slot int) (state.Snapshot, error) {
	return nil, driver.ErrNotPresent
}

func (*Driver) Describe(slot int) driver.Description {
	return driver.Description{}
}

func (*Driver) PowerInfo(slot int) driver.PowerInfo {
	return driver.PowerInfo{Kind: driver.PowerUnknown}
}
