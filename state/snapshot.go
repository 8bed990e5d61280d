package state

import "github.com/gopad/gopad/event"

// Snapshot is one instantaneous capture of a device's raw readings. Each
// backend keeps its own native struct layout and exposes it through this
// interface so the differ is written once.
//
// A snapshot is immutable once captured. The two snapshots passed to Diff
// must come from the same device and use the same code table.
type Snapshot interface {
	// ButtonBit reports whether the button identified by the native code is
	// currently pressed.
	ButtonBit(code event.Code) bool
	// AxisRaw returns the current raw integer reading of the axis identified
	// by the native code.
	AxisRaw(code event.Code) int32
	// Counter changes whenever any observable field of the device changed
	// since the previous snapshot (a hardware packet number where the
	// platform provides one, a driver-maintained sequence otherwise). Equal
	// counters let the engine skip the per-field diff entirely.
	Counter() uint32
}

// ButtonDesc binds a native button code to its semantic name. The order of
// descriptors in a table is the order button events are emitted in.
type ButtonDesc struct {
	Code   event.Code
	Button event.Button
}

// AxisDesc binds a native axis code to its semantic name and optional
// calibration. Axes without calibration are reported raw on change. The
// order of descriptors in a table is the order axis events are emitted in.
type AxisDesc struct {
	Code event.Code
	Axis event.Axis
	Info *AxisInfo
}

// CodeTable is a backend's fixed enumeration of button and axis codes plus
// per-axis calibration. It is static data built once at startup; the code
// numbering is part of the backend's public contract.
type CodeTable struct {
	buttons []ButtonDesc
	axes    []AxisDesc
	info    map[event.Code]AxisInfo
}

// NewCodeTable builds a table from ordered button and axis descriptors.
// Descriptor slices are retained by the table and must not be mutated after
// the call.
func NewCodeTable(buttons []ButtonDesc, axes []AxisDesc) *CodeTable {
	t := &CodeTable{
		buttons: buttons,
		axes:    axes,
		info:    make(map[event.Code]AxisInfo),
	}
	for _, a := range axes {
		if a.Info != nil {
			t.info[a.Code] = *a.Info
		}
	}
	return t
}

// Buttons returns the native button codes in emission order.
func (t *CodeTable) Buttons() []event.Code {
	out := make([]event.Code, len(t.buttons))
	for i, b := range t.buttons {
		out[i] = b.Code
	}
	return out
}

// Axes returns the native axis codes in emission order.
func (t *CodeTable) Axes() []event.Code {
	out := make([]event.Code, len(t.axes))
	for i, a := range t.axes {
		out[i] = a.Code
	}
	return out
}

// AxisInfo returns the calibration for an axis code, if the backend declared
// one.
func (t *CodeTable) AxisInfo(code event.Code) (AxisInfo, bool) {
	info, ok := t.info[code]
	return info, ok
}

// ButtonDescs returns the ordered button descriptors the differ iterates.
func (t *CodeTable) ButtonDescs() []ButtonDesc {
	return t.buttons
}

// AxisDescs returns the ordered axis descriptors the differ iterates.
func (t *CodeTable) AxisDescs() []AxisDesc {
	return t.axes
}
