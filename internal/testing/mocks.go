// Package testing provides test doubles for the input engine: an in-memory
// snapshot and a driver whose per-slot query results are scripted.
package testing

import (
	"sync"

	"github.com/gopad/gopad/driver"
	"github.com/gopad/gopad/event"
	"github.com/gopad/gopad/state"
)

// Snap is a snapshot backed by plain maps. The zero value reads as "nothing
// pressed, all axes at rest".
type Snap struct {
	Buttons map[event.Code]bool
	Axes    map[event.Code]int32
	Seq     uint32
}

func (s Snap) ButtonBit(code event.Code) bool {
	return s.Buttons[code]
}

func (s Snap) AxisRaw(code event.Code) int32 {
	return s.Axes[code]
}

func (s Snap) Counter() uint32 {
	return s.Seq
}

// MockDriver serves scripted query results per slot, in order. Once a slot's
// script is exhausted every further query reports the device not present.
type MockDriver struct {
	mu     sync.Mutex
	slots  int
	table  *state.CodeTable
	script map[int][]queryResult
	calls  map[int]int
	descs  map[int]driver.Description
	powers map[int]driver.PowerInfo
}

type queryResult struct {
	snap state.Snapshot
	err  error
}

func NewMockDriver(slots int, table *state.CodeTable) *MockDriver {
	return &MockDriver{
		slots:  slots,
		table:  table,
		script: make(map[int][]queryResult),
		calls:  make(map[int]int),
		descs:  make(map[int]driver.Description),
		powers: make(map[int]driver.PowerInfo),
	}
}

// Enqueue appends one query outcome to the slot's script. A nil err delivers
// snap; driver.ErrNotPresent scripts an absence; any other error scripts a
// transient failure.
func (m *MockDriver) Enqueue(slot int, snap state.Snapshot, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.script[slot] = append(m.script[slot], queryResult{snap: snap, err: err})
}

// SetDescription fixes the identity reported for a slot.
func (m *MockDriver) SetDescription(slot int, d driver.Description) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.descs[slot] = d
}

// SetPowerInfo fixes the power status reported for a slot.
func (m *MockDriver) SetPowerInfo(slot int, p driver.PowerInfo) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.powers[slot] = p
}

// Calls returns how many times the slot has been queried.
func (m *MockDriver) Calls(slot int) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[slot]
}

func (m *MockDriver) SlotCount() int {
	return m.slots
}

func (m *MockDriver) Table() *state.CodeTable {
	return m.table
}

func (m *MockDriver) QueryRawState(slot int) (state.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls[slot]++
	s := m.script[slot]
	if len(s) == 0 {
		return nil, driver.ErrNotPresent
	}
	head := s[0]
	m.script[slot] = s[1:]
	if head.err != nil {
		return nil, head.err
	}
	return head.snap, nil
}

func (m *MockDriver) Describe(slot int) driver.Description {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.descs[slot]
}

func (m *MockDriver) PowerInfo(slot int) driver.PowerInfo {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.powers[slot]
}
