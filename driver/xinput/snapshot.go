package xinput

import (
	"encoding/binary"

	"github.com/gopad/gopad/event"
)

// Snapshot mirrors XINPUT_STATE: the hardware packet number plus the
// XINPUT_GAMEPAD payload. It is captured by value per query and immutable
// afterwards.
type Snapshot struct {
	Packet       uint32
	Buttons      uint16
	LeftTrigger  uint8
	RightTrigger uint8
	ThumbLX      int16
	ThumbLY      int16
	ThumbRX      int16
	ThumbRY      int16
}

// ButtonBit reports the pressed state of the single wButtons bit mapped to
// the native code.
func (s Snapshot) ButtonBit(code event.Code) bool {
	mask, ok := buttonMasks[code]
	if !ok {
		return false
	}
	return s.Buttons&mask != 0
}

// AxisRaw returns the raw reading for the native axis code.
func (s Snapshot) AxisRaw(code event.Code) int32 {
	switch code {
	case AxisLStickX:
		return int32(s.ThumbLX)
	case AxisLStickY:
		return int32(s.ThumbLY)
	case AxisRStickX:
		return int32(s.ThumbRX)
	case AxisRStickY:
		return int32(s.ThumbRY)
	case AxisRT2:
		return int32(s.RightTrigger)
	case AxisLT2:
		return int32(s.LeftTrigger)
	}
	return 0
}

// Counter returns the XInput packet number, which the hardware increments
// whenever any gamepad field changes.
func (s Snapshot) Counter() uint32 {
	return s.Packet
}

// wireBytes encodes the gamepad payload in XINPUT_GAMEPAD wire order, used
// for raw trace logging.
func (s Snapshot) wireBytes() []byte {
	b := make([]byte, 12)
	binary.LittleEndian.PutUint16(b[0:2], s.Buttons)
	b[2] = s.LeftTrigger
	b[3] = s.RightTrigger
	binary.LittleEndian.PutUint16(b[4:6], uint16(s.ThumbLX))
	binary.LittleEndian.PutUint16(b[6:8], uint16(s.ThumbLY))
	binary.LittleEndian.PutUint16(b[8:10], uint16(s.ThumbRX))
	binary.LittleEndian.PutUint16(b[10:12], uint16(s.ThumbRY))
	return b
}
