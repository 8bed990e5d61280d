// Package joydev implements the Linux joystick polling driver over the
// legacy /dev/input/jsN interface.
//
// The native code numbering below is a stable public contract; external
// callers may persist these values in button mappings.
package joydev

import (
	"github.com/gopad/gopad/event"
	"github.com/gopad/gopad/state"
)

// Native button codes, following the kernel's BTN_GAMEPAD report order.
const (
	BtnSouth event.Code = iota
	BtnEast
	BtnC
	BtnNorth
	BtnWest
	BtnZ
	BtnLT
	BtnRT
	BtnLT2
	BtnRT2
	BtnSelect
	BtnStart
	BtnMode
	BtnLThumb
	BtnRThumb
)

// Native axis codes.
const (
	AxisLStickX event.Code = iota
	AxisLStickY
	AxisLeftZ
	AxisRStickX
	AxisRStickY
	AxisRightZ
	AxisDPadX
	AxisDPadY
	AxisRT
	AxisLT
	AxisRT2
	AxisLT2
)

// axisCount is the size of the per-snapshot axis array; codes index into it.
const axisCount = 12

const (
	stickDeadzone   = 4096
	triggerDeadzone = 3855
)

var (
	stickInfo   = state.AxisInfo{Min: -32767, Max: 32767, Deadzone: stickDeadzone}
	triggerInfo = state.AxisInfo{Min: -32767, Max: 32767, Deadzone: triggerDeadzone}
	hatInfo     = state.AxisInfo{Min: -32767, Max: 32767}
)

var codeTable = state.NewCodeTable(
	[]state.ButtonDesc{
		{Code: BtnSouth, Button: event.ButtonSouth},
		{Code: BtnEast, Button: event.ButtonEast},
		{Code: BtnC, Button: event.ButtonC},
		{Code: BtnNorth, Button: event.ButtonNorth},
		{Code: BtnWest, Button: event.ButtonWest},
		{Code: BtnZ, Button: event.ButtonZ},
		{Code: BtnLT, Button: event.ButtonLeftTrigger},
		{Code: BtnRT, Button: event.ButtonRightTrigger},
		{Code: BtnLT2, Button: event.ButtonLeftTrigger2},
		{Code: BtnRT2, Button: event.ButtonRightTrigger2},
		{Code: BtnSelect, Button: event.ButtonSelect},
		{Code: BtnStart, Button: event.ButtonStart},
		{Code: BtnMode, Button: event.ButtonMode},
		{Code: BtnLThumb, Button: event.ButtonLeftThumb},
		{Code: BtnRThumb, Button: event.ButtonRightThumb},
	},
	[]state.AxisDesc{
		{Code: AxisLStickX, Axis: event.AxisLeftStickX, Info: &stickInfo},
		{Code: AxisLStickY, Axis: event.AxisLeftStickY, Info: &stickInfo},
		{Code: AxisRStickX, Axis: event.AxisRightStickX, Info: &stickInfo},
		{Code: AxisRStickY, Axis: event.AxisRightStickY, Info: &stickInfo},
		{Code: AxisLT2, Axis: event.AxisLeftTrigger2, Info: &triggerInfo},
		{Code: AxisRT2, Axis: event.AxisRightTrigger2, Info: &triggerInfo},
		{Code: AxisDPadX, Axis: event.AxisDPadX, Info: &hatInfo},
		{Code: AxisDPadY, Axis: event.AxisDPadY, Info: &hatInfo},
	},
)

// jsAxisCodes maps a js_event axis index to its native code, following the
// common xpad layout (triggers on indices 2 and 5, hat on 6 and 7).
var jsAxisCodes = map[uint8]event.Code{
	0: AxisLStickX,
	1: AxisLStickY,
	2: AxisLT2,
	3: AxisRStickX,
	4: AxisRStickY,
	5: AxisRT2,
	6: AxisDPadX,
	7: AxisDPadY,
}

// Table returns the joydev native code table.
func Table() *state.CodeTable {
	return codeTable
}
