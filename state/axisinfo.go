// Package state implements the platform-independent half of the input
// engine: axis calibration and normalization, raw snapshot access, the
// per-backend code table, and the differ that turns two successive snapshots
// into discrete events.
package state

// AxisInfo is the calibration metadata for one axis code: the inclusive raw
// range and the deadzone radius. It is built once at startup from
// hardware-specific constants and never mutated.
//
// An axis with Min < 0 is centered (a stick); its rest position is raw 0 and
// its normalized range is [-1, 1]. An axis with Min >= 0 is unidirectional (a
// trigger); its rest position is Min and its normalized range is [0, 1].
type AxisInfo struct {
	Min      int32
	Max      int32
	Deadzone uint32
}

// Centered reports whether the axis rests at raw zero rather than at Min.
func (i AxisInfo) Centered() bool {
	return i.Min < 0
}

// InDeadzone reports whether raw is within the deadzone radius of the axis
// rest position. Readings inside the deadzone are treated as "no change" by
// the differ so analog jitter at rest does not flood the queue.
func (i AxisInfo) InDeadzone(raw int32) bool {
	if i.Deadzone == 0 {
		return false
	}
	var magnitude int64
	if i.Centered() {
		magnitude = int64(raw)
		if magnitude < 0 {
			magnitude = -magnitude
		}
	} else {
		magnitude = int64(raw) - int64(i.Min)
		if magnitude < 0 {
			magnitude = 0
		}
	}
	return magnitude <= int64(i.Deadzone)
}

// Normalize maps a raw reading into the axis's unit range.
//
// Centered axes divide by Max for non-negative readings and by -Min for
// negative ones; on 16-bit hardware where Min is -32768 and Max is 32767 the
// asymmetric divisor is what makes both extremes land on exactly +/-1.0.
// Unidirectional axes map [Min, Max] onto [0, 1]. The result is clamped so
// out-of-range raw values never overshoot the unit range.
func (i AxisInfo) Normalize(raw int32) float32 {
	var v float32
	if i.Centered() {
		if raw >= 0 {
			v = float32(raw) / float32(i.Max)
		} else {
			v = float32(raw) / -float32(i.Min)
		}
		return clamp(v, -1, 1)
	}
	v = float32(int64(raw)-int64(i.Min)) / float32(int64(i.Max)-int64(i.Min))
	return clamp(v, 0, 1)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
