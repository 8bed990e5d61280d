package joydev

import "github.com/gopad/gopad/event"

// Snapshot is one capture of a joystick's folded state: a button bitmask
// keyed by native code and the raw axis readings. The driver maintains a
// working copy per slot and hands out immutable value copies.
type Snapshot struct {
	buttons uint32
	axes    [axisCount]int16
	counter uint32
}

// ButtonBit reports the pressed state of the single bitmask bit for the
// native code.
func (s Snapshot) ButtonBit(code event.Code) bool {
	if int(code) >= 32 {
		return false
	}
	return s.buttons&(1<<code) != 0
}

// AxisRaw returns the raw reading for the native axis code.
func (s Snapshot) AxisRaw(code event.Code) int32 {
	if int(code) >= axisCount {
		return 0
	}
	return int32(s.axes[code])
}

// Counter returns the driver-maintained sequence, bumped once per folded
// js_event so unchanged devices short-circuit the diff.
func (s Snapshot) Counter() uint32 {
	return s.counter
}
