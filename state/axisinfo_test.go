package state_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gopad/gopad/state"
)

func TestNormalizeCentered(t *testing.T) {
	info := state.AxisInfo{Min: -32768, Max: 32767, Deadzone: 7849}

	type testCase struct {
		name string
		raw  int32
		want float32
	}

	cases := []testCase{
		{name: "positive extreme", raw: 32767, want: 1.0},
		{name: "negative extreme", raw: -32768, want: -1.0},
		{name: "center", raw: 0, want: 0.0},
		{name: "half positive", raw: 16384, want: 16384.0 / 32767.0},
		{name: "half negative", raw: -16384, want: -16384.0 / 32768.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, info.Normalize(tc.raw))
		})
	}
}

func TestNormalizeUnidirectional(t *testing.T) {
	info := state.AxisInfo{Min: 0, Max: 255, Deadzone: 30}

	assert.Equal(t, float32(0.0), info.Normalize(0))
	assert.Equal(t, float32(1.0), info.Normalize(255))
	assert.Equal(t, float32(128.0/255.0), info.Normalize(128))
}

func TestNormalizeBounded(t *testing.T) {
	centered := state.AxisInfo{Min: -32768, Max: 32767}
	trigger := state.AxisInfo{Min: 0, Max: 255}

	for raw := int32(-32768); raw <= 32767; raw += 97 {
		v := centered.Normalize(raw)
		assert.GreaterOrEqual(t, v, float32(-1.0), "raw %d", raw)
		assert.LessOrEqual(t, v, float32(1.0), "raw %d", raw)
	}
	for raw := int32(0); raw <= 255; raw++ {
		v := trigger.Normalize(raw)
		assert.GreaterOrEqual(t, v, float32(0.0), "raw %d", raw)
		assert.LessOrEqual(t, v, float32(1.0), "raw %d", raw)
	}
}

func TestNormalizeClampsOutOfRange(t *testing.T) {
	centered := state.AxisInfo{Min: -32000, Max: 32000}
	assert.Equal(t, float32(1.0), centered.Normalize(40000))
	assert.Equal(t, float32(-1.0), centered.Normalize(-40000))

	trigger := state.AxisInfo{Min: 0, Max: 255}
	assert.Equal(t, float32(0.0), trigger.Normalize(-10))
	assert.Equal(t, float32(1.0), trigger.Normalize(300))
}

func TestInDeadzone(t *testing.T) {
	centered := state.AxisInfo{Min: -32768, Max: 32767, Deadzone: 7849}
	assert.True(t, centered.InDeadzone(0))
	assert.True(t, centered.InDeadzone(7849))
	assert.True(t, centered.InDeadzone(-7849))
	assert.False(t, centered.InDeadzone(7850))
	assert.False(t, centered.InDeadzone(-7850))

	trigger := state.AxisInfo{Min: 0, Max: 255, Deadzone: 30}
	assert.True(t, trigger.InDeadzone(0))
	assert.True(t, trigger.InDeadzone(30))
	assert.False(t, trigger.InDeadzone(31))

	noDeadzone := state.AxisInfo{Min: -32768, Max: 32767}
	assert.False(t, noDeadzone.InDeadzone(0))
}
