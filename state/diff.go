package state

import "github.com/gopad/gopad/event"

// Diff compares two successive snapshots of the same device and returns the
// discrete events implied by the difference, tagged with the slot index id.
//
// Emission order within a call is fixed: axis changes in table axis order,
// then button changes in table button order. Consumers may rely on that
// order inside one poll cycle's batch; nothing is guaranteed across cycles.
//
// Diff is total: it never fails, never mutates its arguments, and returns
// nil when nothing changed.
func Diff(id int, prev, curr Snapshot, table *CodeTable) []event.Event {
	var out []event.Event

	for _, a := range table.AxisDescs() {
		raw := curr.AxisRaw(a.Code)
		if raw == prev.AxisRaw(a.Code) {
			continue
		}
		if a.Info == nil {
			// No calibration: report the raw reading unscaled.
			out = append(out, event.NewAxisChanged(id, a.Axis, float32(raw), a.Code))
			continue
		}
		if a.Info.InDeadzone(raw) {
			// Jitter around rest is treated as no change at all.
			continue
		}
		out = append(out, event.NewAxisChanged(id, a.Axis, a.Info.Normalize(raw), a.Code))
	}

	for _, b := range table.ButtonDescs() {
		pressed := curr.ButtonBit(b.Code)
		if pressed == prev.ButtonBit(b.Code) {
			continue
		}
		out = append(out, event.NewButton(id, pressed, b.Button, b.Code))
	}

	return out
}
