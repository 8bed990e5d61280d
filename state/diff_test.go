package state_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopad/gopad/event"
	gopadtesting "github.com/gopad/gopad/internal/testing"
	"github.com/gopad/gopad/state"
)

// Code numbering mirrors the XInput table subset the tests exercise.
const (
	btnSouth event.Code = 0
	btnEast  event.Code = 1
	btnStart event.Code = 11

	axisLX  event.Code = 0
	axisLY  event.Code = 1
	axisRZ  event.Code = 5
	axisLT2 event.Code = 11
)

var (
	stickInfo   = state.AxisInfo{Min: -32768, Max: 32767, Deadzone: 7849}
	looseStick  = state.AxisInfo{Min: -32768, Max: 32767}
	triggerInfo = state.AxisInfo{Min: 0, Max: 255, Deadzone: 30}
)

func testTable() *state.CodeTable {
	return state.NewCodeTable(
		[]state.ButtonDesc{
			{Code: btnSouth, Button: event.ButtonSouth},
			{Code: btnEast, Button: event.ButtonEast},
			{Code: btnStart, Button: event.ButtonStart},
		},
		[]state.AxisDesc{
			{Code: axisLX, Axis: event.AxisLeftStickX, Info: &stickInfo},
			{Code: axisLT2, Axis: event.AxisLeftTrigger2, Info: &triggerInfo},
			{Code: axisRZ, Axis: event.AxisRightZ}, // uncalibrated
		},
	)
}

func TestDiffIdentical(t *testing.T) {
	s := gopadtesting.Snap{
		Buttons: map[event.Code]bool{btnSouth: true},
		Axes:    map[event.Code]int32{axisLX: 20000, axisLT2: 200},
	}
	assert.Empty(t, state.Diff(0, s, s, testTable()))
}

func TestDiffButtonCompleteness(t *testing.T) {
	prev := gopadtesting.Snap{
		Buttons: map[event.Code]bool{btnSouth: true, btnEast: false, btnStart: true},
	}
	curr := gopadtesting.Snap{
		Buttons: map[event.Code]bool{btnSouth: false, btnEast: true, btnStart: true},
	}

	events := state.Diff(3, prev, curr, testTable())
	require.Len(t, events, 2)

	assert.Equal(t, event.ButtonReleased, events[0].Type)
	assert.Equal(t, event.ButtonSouth, events[0].Button)
	assert.Equal(t, btnSouth, events[0].Code)

	assert.Equal(t, event.ButtonPressed, events[1].Type)
	assert.Equal(t, event.ButtonEast, events[1].Button)

	for _, ev := range events {
		assert.Equal(t, 3, ev.ID)
	}
}

func TestDiffDeadzoneSuppression(t *testing.T) {
	type testCase struct {
		name string
		raw  int32
		want int
	}

	cases := []testCase{
		{name: "well inside", raw: 500, want: 0},
		{name: "negative inside", raw: -500, want: 0},
		{name: "deadzone edge", raw: 7849, want: 0},
		{name: "just outside", raw: 7850, want: 1},
		{name: "negative outside", raw: -7850, want: 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			prev := gopadtesting.Snap{}
			curr := gopadtesting.Snap{Axes: map[event.Code]int32{axisLX: tc.raw}, Seq: 1}
			events := state.Diff(0, prev, curr, testTable())
			assert.Len(t, events, tc.want)
		})
	}
}

func TestDiffTriggerDeadzone(t *testing.T) {
	prev := gopadtesting.Snap{}

	// At the threshold: suppressed.
	curr := gopadtesting.Snap{Axes: map[event.Code]int32{axisLT2: 30}}
	assert.Empty(t, state.Diff(0, prev, curr, testTable()))

	// Past it: one normalized event.
	curr = gopadtesting.Snap{Axes: map[event.Code]int32{axisLT2: 255}}
	events := state.Diff(0, prev, curr, testTable())
	require.Len(t, events, 1)
	assert.Equal(t, event.AxisChanged, events[0].Type)
	assert.Equal(t, float32(1.0), events[0].Value)
}

func TestDiffUncalibratedAxis(t *testing.T) {
	prev := gopadtesting.Snap{}
	curr := gopadtesting.Snap{Axes: map[event.Code]int32{axisRZ: 42}}

	events := state.Diff(0, prev, curr, testTable())
	require.Len(t, events, 1)
	assert.Equal(t, event.AxisChanged, events[0].Type)
	assert.Equal(t, event.AxisRightZ, events[0].Axis)
	assert.Equal(t, float32(42), events[0].Value)
}

// Axis events must precede button events within one batch: stick snapped to
// its positive extreme while South is pressed.
func TestDiffAxisThenButtonOrder(t *testing.T) {
	table := state.NewCodeTable(
		[]state.ButtonDesc{
			{Code: btnSouth, Button: event.ButtonSouth},
		},
		[]state.AxisDesc{
			{Code: axisLX, Axis: event.AxisLeftStickX, Info: &looseStick},
		},
	)

	prev := gopadtesting.Snap{}
	curr := gopadtesting.Snap{
		Buttons: map[event.Code]bool{btnSouth: true},
		Axes:    map[event.Code]int32{axisLX: 32767},
		Seq:     1,
	}

	events := state.Diff(0, prev, curr, table)
	require.Len(t, events, 2)

	assert.Equal(t, event.AxisChanged, events[0].Type)
	assert.Equal(t, event.AxisLeftStickX, events[0].Axis)
	assert.Equal(t, float32(1.0), events[0].Value)

	assert.Equal(t, event.ButtonPressed, events[1].Type)
	assert.Equal(t, event.ButtonSouth, events[1].Button)
}

func TestDiffTableOrderWithinKinds(t *testing.T) {
	prev := gopadtesting.Snap{}
	curr := gopadtesting.Snap{
		Buttons: map[event.Code]bool{btnSouth: true, btnEast: true, btnStart: true},
		Axes:    map[event.Code]int32{axisLX: 20000, axisLT2: 200, axisRZ: 7},
		Seq:     1,
	}

	events := state.Diff(0, prev, curr, testTable())
	require.Len(t, events, 6)

	wantAxes := []event.Axis{event.AxisLeftStickX, event.AxisLeftTrigger2, event.AxisRightZ}
	for i, want := range wantAxes {
		assert.Equal(t, event.AxisChanged, events[i].Type)
		assert.Equal(t, want, events[i].Axis)
	}
	wantButtons := []event.Button{event.ButtonSouth, event.ButtonEast, event.ButtonStart}
	for i, want := range wantButtons {
		assert.Equal(t, event.ButtonPressed, events[3+i].Type)
		assert.Equal(t, want, events[3+i].Button)
	}
}
