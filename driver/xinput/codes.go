// Package xinput implements the Windows XInput polling driver: four fixed
// controller slots queried through xinput1_4.dll.
//
// The native code numbering below is a stable public contract; external
// callers may persist these values in button mappings.
package xinput

import (
	"github.com/gopad/gopad/event"
	"github.com/gopad/gopad/state"
)

// Native button codes.
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
	BtnDPadUp
	BtnDPadDown
	BtnDPadLeft
	BtnDPadRight
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

// XINPUT_GAMEPAD wButtons bits.
const (
	maskDPadUp        uint16 = 0x0001
	maskDPadDown      uint16 = 0x0002
	maskDPadLeft      uint16 = 0x0004
	maskDPadRight     uint16 = 0x0008
	maskStart         uint16 = 0x0010
	maskBack          uint16 = 0x0020
	maskLeftThumb     uint16 = 0x0040
	maskRightThumb    uint16 = 0x0080
	maskLeftShoulder  uint16 = 0x0100
	maskRightShoulder uint16 = 0x0200
	maskGuide         uint16 = 0x0400 // undocumented, set by some drivers
	maskA             uint16 = 0x1000
	maskB             uint16 = 0x2000
	maskX             uint16 = 0x4000
	maskY             uint16 = 0x8000
)

// XInput calibration constants.
const (
	leftThumbDeadzone  = 7849
	rightThumbDeadzone = 8689
	triggerThreshold   = 30
)

var (
	stickLeftInfo  = state.AxisInfo{Min: -32768, Max: 32767, Deadzone: leftThumbDeadzone}
	stickRightInfo = state.AxisInfo{Min: -32768, Max: 32767, Deadzone: rightThumbDeadzone}
	triggerInfo    = state.AxisInfo{Min: 0, Max: 255, Deadzone: triggerThreshold}
)

var buttonMasks = map[event.Code]uint16{
	BtnSouth:     maskA,
	BtnEast:      maskB,
	BtnNorth:     maskY,
	BtnWest:      maskX,
	BtnLT:        maskLeftShoulder,
	BtnRT:        maskRightShoulder,
	BtnSelect:    maskBack,
	BtnStart:     maskStart,
	BtnMode:      maskGuide,
	BtnLThumb:    maskLeftThumb,
	BtnRThumb:    maskRightThumb,
	BtnDPadUp:    maskDPadUp,
	BtnDPadDown:  maskDPadDown,
	BtnDPadLeft:  maskDPadLeft,
	BtnDPadRight: maskDPadRight,
}

var codeTable = state.NewCodeTable(
	[]state.ButtonDesc{
		{Code: BtnSouth, Button: event.ButtonSouth},
		{Code: BtnEast, Button: event.ButtonEast},
		{Code: BtnNorth, Button: event.ButtonNorth},
		{Code: BtnWest, Button: event.ButtonWest},
		{Code: BtnLT, Button: event.ButtonLeftTrigger},
		{Code: BtnRT, Button: event.ButtonRightTrigger},
		{Code: BtnSelect, Button: event.ButtonSelect},
		{Code: BtnStart, Button: event.ButtonStart},
		{Code: BtnMode, Button: event.ButtonMode},
		{Code: BtnLThumb, Button: event.ButtonLeftThumb},
		{Code: BtnRThumb, Button: event.ButtonRightThumb},
		{Code: BtnDPadUp, Button: event.ButtonDPadUp},
		{Code: BtnDPadDown, Button: event.ButtonDPadDown},
		{Code: BtnDPadLeft, Button: event.ButtonDPadLeft},
		{Code: BtnDPadRight, Button: event.ButtonDPadRight},
	},
	[]state.AxisDesc{
		{Code: AxisLStickX, Axis: event.AxisLeftStickX, Info: &stickLeftInfo},
		{Code: AxisLStickY, Axis: event.AxisLeftStickY, Info: &stickLeftInfo},
		{Code: AxisRStickX, Axis: event.AxisRightStickX, Info: &stickRightInfo},
		{Code: AxisRStickY, Axis: event.AxisRightStickY, Info: &stickRightInfo},
		{Code: AxisRT2, Axis: event.AxisRightTrigger2, Info: &triggerInfo},
		{Code: AxisLT2, Axis: event.AxisLeftTrigger2, Info: &triggerInfo},
	},
)

// Table returns the XInput native code table.
func Table() *state.CodeTable {
	return codeTable
}
