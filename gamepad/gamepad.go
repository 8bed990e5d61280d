// Package gamepad ties the state engine together: a fixed registry of device
// slots, the connection lifecycle tracker, the event queue and the background
// polling loop that feeds it from a platform driver.
package gamepad

import (
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/gopad/gopad/driver"
	"github.com/gopad/gopad/event"
	"github.com/gopad/gopad/state"
)

// Status is the connection lifecycle state of a device slot.
type Status int32

const (
	// NotObserved means no hardware has ever been confirmed present on the
	// slot. It is the permanent status of the placeholder device.
	NotObserved Status = iota
	Connected
	Disconnected
)

func (s Status) String() string {
	switch s {
	case Connected:
		return "Connected"
	case Disconnected:
		return "Disconnected"
	}
	return "NotObserved"
}

// Gamepad is the queryable handle for one device slot. Handles are created
// once at engine construction and stay valid for the engine's lifetime; the
// slot index never changes across disconnect and reconnect.
//
// Status and identity are written by the polling goroutine and read by
// consumers, so both go through atomics.
type Gamepad struct {
	id     int
	drv    driver.Driver // nil for the shared placeholder
	status atomic.Int32
	desc   atomic.Pointer[driver.Description]
}

func newGamepad(id int, drv driver.Driver) *Gamepad {
	g := &Gamepad{id: id, drv: drv}
	g.desc.Store(&driver.Description{})
	return g
}

// ID returns the slot index.
func (g *Gamepad) ID() int {
	return g.id
}

// Status returns the slot's current connection status.
func (g *Gamepad) Status() Status {
	return Status(g.status.Load())
}

// Name returns the device name, empty for the placeholder or a slot that was
// never observed.
func (g *Gamepad) Name() string {
	return g.desc.Load().Name
}

// UUID returns the device's hardware identifier, uuid.Nil when the hardware
// exposes none.
func (g *Gamepad) UUID() uuid.UUID {
	return g.desc.Load().UUID
}

// IsFFSupported reports whether the device can play force-feedback effects.
func (g *Gamepad) IsFFSupported() bool {
	return g.desc.Load().ForceFeedback
}

// MaxFFEffects returns the number of simultaneous force-feedback effect
// slots, zero when unsupported.
func (g *Gamepad) MaxFFEffects() int {
	return g.desc.Load().MaxEffects
}

// PowerInfo returns the device's current power status.
func (g *Gamepad) PowerInfo() driver.PowerInfo {
	if g.drv == nil {
		return driver.PowerInfo{Kind: driver.PowerUnknown}
	}
	return g.drv.PowerInfo(g.id)
}

// Buttons returns the backend's native button codes in emission order.
func (g *Gamepad) Buttons() []event.Code {
	if g.drv == nil {
		return nil
	}
	return g.drv.Table().Buttons()
}

// Axes returns the backend's native axis codes in emission order.
func (g *Gamepad) Axes() []event.Code {
	if g.drv == nil {
		return nil
	}
	return g.drv.Table().Axes()
}

// AxisInfo returns the calibration for a native axis code, if the backend
// declared one.
func (g *Gamepad) AxisInfo(code event.Code) (state.AxisInfo, bool) {
	if g.drv == nil {
		return state.AxisInfo{}, false
	}
	return g.drv.Table().AxisInfo(code)
}

func (g *Gamepad) setStatus(s Status) {
	g.status.Store(int32(s))
}

func (g *Gamepad) setConnected(desc driver.Description) {
	g.desc.Store(&desc)
	g.status.Store(int32(Connected))
}
