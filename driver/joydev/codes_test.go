package joydev

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
	assert.Equal(t, event.Code(14), BtnRThumb)

	assert.Equal(t, event.Code(0), AxisLStickX)
	assert.Equal(t, event.Code(6), AxisDPadX)
	assert.Equal(t, event.Code(7), AxisDPadY)
	assert.Equal(t, event.Code(10), AxisRT2)
	assert.Equal(t, event.Code(11), AxisLT2)
}

func TestTableShape(t *testing.T) {
	tbl := Table()
	require.Len(t, tbl.Buttons(), 15)
	require.Len(t, tbl.Axes(), 8)

	info, ok := tbl.AxisInfo(AxisLStickX)
	require.True(t, ok)
	assert.Equal(t, state.AxisInfo{Min: -32767, Max: 32767, Deadzone: stickDeadzone}, info)

	info, ok = tbl.AxisInfo(AxisDPadX)
	require.True(t, ok)
	assert.Zero(t, info.Deadzone)
}

func TestJSAxisIndexMapping(t *testing.T) {
	// The common xpad layout: triggers on indices 2 and 5, hat on 6 and 7.
	assert.Equal(t, AxisLT2, jsAxisCodes[2])
	assert.Equal(t, AxisRT2, jsAxisCodes[5])
	assert.Equal(t, AxisDPadX, jsAxisCodes[6])
	assert.Equal(t, AxisDPadY, jsAxisCodes[7])
}

func TestSnapshotAccess(t *testing.T) {
	s := Snapshot{counter: 3}
	s.buttons = 1<<BtnSouth | 1<<BtnStart
	s.axes[AxisLStickX] = -32767
	s.axes[AxisRT2] = 12000

	assert.Equal(t, uint32(3), s.Counter())
	assert.True(t, s.ButtonBit(BtnSouth))
	assert.True(t, s.ButtonBit(BtnStart))
	assert.False(t, s.ButtonBit(BtnEast))
	assert.False(t, s.ButtonBit(event.Code(40)))
	assert.Equal(t, int32(-32767), s.AxisRaw(AxisLStickX))
	assert.Equal(t, int32(12000), s.AxisRaw(AxisRT2))
	assert.Zero(t, s.AxisRaw(event.Code(60)))
}
