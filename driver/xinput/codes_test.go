package xinput

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopad/gopad/event"
	"github.com/gopad/gopad/state"
)

var _ state.Snapshot = Snapshot{}

// The native numbering is persisted by external callers; it must never move.
func TestCodeNumberingStability(t *testing.T) {
	assert.Equal(t, event.Code(0), BtnSouth)
	assert.Equal(t, event.Code(1), BtnEast)
	assert.Equal(t, event.Code(2), BtnC)
	assert.Equal(t, event.Code(3), BtnNorth)
	assert.Equal(t, event.Code(4), BtnWest)
	assert.Equal(t, event.Code(5), BtnZ)
	assert.Equal(t, event.Code(6), BtnLT)
	assert.Equal(t, event.Code(7), BtnRT)
	assert.Equal(t, event.Code(8), BtnLT2)
	assert.Equal(t, event.Code(9), BtnRT2)
	assert.Equal(t, event.Code(10), BtnSelect)
	assert.Equal(t, event.Code(11), BtnStart)
	assert.Equal(t, event.Code(12), BtnMode)
	assert.Equal(t, event.Code(13), BtnLThumb)
	assert.Equal(t, event.Code(14), BtnRThumb)
	assert.Equal(t, event.Code(15), BtnDPadUp)
	assert.Equal(t, event.Code(16), BtnDPadDown)
	assert.Equal(t, event.Code(17), BtnDPadLeft)
	assert.Equal(t, event.Code(18), BtnDPadRight)

	assert.Equal(t, event.Code(0), AxisLStickX)
	assert.Equal(t, event.Code(1), AxisLStickY)
	assert.Equal(t, event.Code(3), AxisRStickX)
	assert.Equal(t, event.Code(4), AxisRStickY)
	assert.Equal(t, event.Code(10), AxisRT2)
	assert.Equal(t, event.Code(11), AxisLT2)
}

func TestTableCalibration(t *testing.T) {
	tbl := Table()

	require.Len(t, tbl.Buttons(), 15)
	require.Len(t, tbl.Axes(), 6)

	for _, code := range []event.Code{AxisLStickX, AxisLStickY} {
		info, ok := tbl.AxisInfo(code)
		require.True(t, ok)
		assert.Equal(t, state.AxisInfo{Min: -32768, Max: 32767, Deadzone: 7849}, info)
	}
	for _, code := range []event.Code{AxisRStickX, AxisRStickY} {
		info, ok := tbl.AxisInfo(code)
		require.True(t, ok)
		assert.Equal(t, state.AxisInfo{Min: -32768, Max: 32767, Deadzone: 8689}, info)
	}
	for _, code := range []event.Code{AxisLT2, AxisRT2} {
		info, ok := tbl.AxisInfo(code)
		require.True(t, ok)
		assert.Equal(t, state.AxisInfo{Min: 0, Max: 255, Deadzone: 30}, info)
	}

	_, ok := tbl.AxisInfo(AxisLeftZ)
	assert.False(t, ok)
}

func TestSnapshotFieldAccess(t *testing.T) {
	s := Snapshot{
		Packet:       42,
		Buttons:      maskA | maskDPadLeft | maskRightShoulder,
		LeftTrigger:  30,
		RightTrigger: 255,
		ThumbLX:      -32768,
		ThumbLY:      100,
		ThumbRX:      -5,
		ThumbRY:      32767,
	}

	assert.Equal(t, uint32(42), s.Counter())

	assert.True(t, s.ButtonBit(BtnSouth))
	assert.True(t, s.ButtonBit(BtnDPadLeft))
	assert.True(t, s.ButtonBit(BtnRT))
	assert.False(t, s.ButtonBit(BtnEast))
	assert.False(t, s.ButtonBit(BtnStart))
	// Codes the table never declares read as released.
	assert.False(t, s.ButtonBit(event.Code(200)))

	assert.Equal(t, int32(-32768), s.AxisRaw(AxisLStickX))
	assert.Equal(t, int32(100), s.AxisRaw(AxisLStickY))
	assert.Equal(t, int32(-5), s.AxisRaw(AxisRStickX))
	assert.Equal(t, int32(32767), s.AxisRaw(AxisRStickY))
	assert.Equal(t, int32(30), s.AxisRaw(AxisLT2))
	assert.Equal(t, int32(255), s.AxisRaw(AxisRT2))
}

func TestSnapshotWireBytes(t *testing.T) {
	s := Snapshot{
		Buttons:      0x1001,
		LeftTrigger:  0x10,
		RightTrigger: 0xff,
		ThumbLX:      256,
		ThumbLY:      -1,
	}
	assert.Equal(t, []byte{
		0x01, 0x10,
		0x10, 0xff,
		0x00, 0x01,
		0xff, 0xff,
		0x00, 0x00,
		0x00, 0x00,
	}, s.wireBytes())
}
