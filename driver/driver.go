// Package driver defines the contract between the input engine and a
// platform polling backend. A driver owns the raw hardware transport; the
// engine owns diffing, lifecycle tracking and event delivery.
package driver

import (
	"errors"

	"github.com/google/uuid"

	"github.com/gopad/gopad/state"
)

// ErrNotPresent is returned by QueryRawState when the hardware reports the
// slot's device as confirmed absent. The engine treats it as a disconnect
// signal. Any other error is transient: the engine ignores it and retries
// next cycle, and it is never surfaced to consumers.
var ErrNotPresent = errors.New("device not present")

// Description is the static identity and capability set of a slot's device,
// valid while the device stays connected.
type Description struct {
	// Name is the hardware-reported device name, or a fixed backend label
	// when the hardware exposes none.
	Name string
	// UUID identifies the hardware; uuid.Nil when not exposed.
	UUID uuid.UUID
	// ForceFeedback reports whether the device can play rumble effects.
	ForceFeedback bool
	// MaxEffects is the number of simultaneous force-feedback effect slots.
	MaxEffects int
}

// PowerKind classifies a device's power source.
type PowerKind uint8

const (
	PowerUnknown PowerKind = iota
	PowerWired
	PowerDischarging
	PowerCharging
	PowerCharged
)

func (k PowerKind) String() string {
	switch k {
	case PowerWired:
		return "Wired"
	case PowerDischarging:
		return "Discharging"
	case PowerCharging:
		return "Charging"
	case PowerCharged:
		return "Charged"
	}
	return "Unknown"
}

// PowerInfo is a device's power status. Level is a battery percentage and is
// meaningful only for PowerDischarging and PowerCharging.
type PowerInfo struct {
	Kind  PowerKind
	Level int
}

// Driver is a platform polling backend. SlotCount and Table are immutable.
// QueryRawState and Describe are only called from the engine's polling
// goroutine (and once during engine construction, before it starts).
// PowerInfo may be called from consumer goroutines concurrently with
// QueryRawState and must not share unsynchronized state with it.
type Driver interface {
	// SlotCount is the platform's maximum simultaneous device count. It is
	// fixed for the driver's lifetime.
	SlotCount() int

	// Table returns the driver's native code table. The same table applies
	// to every slot.
	Table() *state.CodeTable

	// QueryRawState fetches a fresh raw snapshot for the slot. It returns
	// ErrNotPresent when the device is confirmed absent and any other error
	// for transient failures.
	QueryRawState(slot int) (state.Snapshot, error)

	// Describe returns the slot's current identity and capabilities.
	Describe(slot int) Description

	// PowerInfo returns the slot's current power status, PowerUnknown when
	// the query fails or the backend has no power concept.
	PowerInfo(slot int) PowerInfo
}
