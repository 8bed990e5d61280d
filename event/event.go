// Package event defines the platform-independent gamepad event vocabulary:
// semantic button and axis names, backend-native codes, and the tagged event
// value emitted by the state engine.
package event

import "fmt"

// Code is a backend-native numeric identifier for a button or axis. Codes are
// a stable public contract: external callers may persist them (for example in
// user-configurable button mappings), so a backend renumbering its codes is a
// breaking change.
type Code uint16

// Button is the shared semantic button vocabulary. Every backend maps its
// native codes onto this set; backends that lack a button simply never emit
// it.
type Button uint8

const (
	ButtonUnknown Button = iota
	ButtonSouth
	ButtonEast
	ButtonC
	ButtonNorth
	ButtonWest
	ButtonZ
	ButtonLeftTrigger
	ButtonRightTrigger
	ButtonLeftTrigger2
	ButtonRightTrigger2
	ButtonSelect
	ButtonStart
	ButtonMode
	ButtonLeftThumb
	ButtonRightThumb
	ButtonDPadUp
	ButtonDPadDown
	ButtonDPadLeft
	ButtonDPadRight
)

var buttonNames = map[Button]string{
	ButtonUnknown:       "Unknown",
	ButtonSouth:         "South",
	ButtonEast:          "East",
	ButtonC:             "C",
	ButtonNorth:         "North",
	ButtonWest:          "West",
	ButtonZ:             "Z",
	ButtonLeftTrigger:   "LeftTrigger",
	ButtonRightTrigger:  "RightTrigger",
	ButtonLeftTrigger2:  "LeftTrigger2",
	ButtonRightTrigger2: "RightTrigger2",
	ButtonSelect:        "Select",
	ButtonStart:         "Start",
	ButtonMode:          "Mode",
	ButtonLeftThumb:     "LeftThumb",
	ButtonRightThumb:    "RightThumb",
	ButtonDPadUp:        "DPadUp",
	ButtonDPadDown:      "DPadDown",
	ButtonDPadLeft:      "DPadLeft",
	ButtonDPadRight:     "DPadRight",
}

func (b Button) String() string {
	if s, ok := buttonNames[b]; ok {
		return s
	}
	return fmt.Sprintf("Button(%d)", uint8(b))
}

// Axis is the shared semantic axis vocabulary.
type Axis uint8

const (
	AxisUnknown Axis = iota
	AxisLeftStickX
	AxisLeftStickY
	AxisLeftZ
	AxisRightStickX
	AxisRightStickY
	AxisRightZ
	AxisDPadX
	AxisDPadY
	AxisLeftTrigger
	AxisRightTrigger
	AxisLeftTrigger2
	AxisRightTrigger2
)

var axisNames = map[Axis]string{
	AxisUnknown:       "Unknown",
	AxisLeftStickX:    "LeftStickX",
	AxisLeftStickY:    "LeftStickY",
	AxisLeftZ:         "LeftZ",
	AxisRightStickX:   "RightStickX",
	AxisRightStickY:   "RightStickY",
	AxisRightZ:        "RightZ",
	AxisDPadX:         "DPadX",
	AxisDPadY:         "DPadY",
	AxisLeftTrigger:   "LeftTrigger",
	AxisRightTrigger:  "RightTrigger",
	AxisLeftTrigger2:  "LeftTrigger2",
	AxisRightTrigger2: "RightTrigger2",
}

func (a Axis) String() string {
	if s, ok := axisNames[a]; ok {
		return s
	}
	return fmt.Sprintf("Axis(%d)", uint8(a))
}

// Type discriminates the event union.
type Type uint8

const (
	// Connected means the slot's hardware answered a state query after
	// previously being absent (or for the first time).
	Connected Type = iota
	// Disconnected means the slot's hardware reported itself not present.
	Disconnected
	// ButtonPressed and ButtonReleased carry Button and Code.
	ButtonPressed
	ButtonReleased
	// AxisChanged carries Axis, Code and the normalized Value.
	AxisChanged
)

func (t Type) String() string {
	switch t {
	case Connected:
		return "Connected"
	case Disconnected:
		return "Disconnected"
	case ButtonPressed:
		return "ButtonPressed"
	case ButtonReleased:
		return "ButtonReleased"
	case AxisChanged:
		return "AxisChanged"
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

// Event is one discrete change observed on a device slot. Events are plain
// values: once emitted they hold no reference to the snapshot that produced
// them. Button, Axis, Code and Value are meaningful only for the event types
// that carry them.
type Event struct {
	// ID is the registry slot index the event originated from.
	ID     int
	Type   Type
	Button Button
	Axis   Axis
	Code   Code
	Value  float32
}

// NewConnected returns a Connected event for slot id.
func NewConnected(id int) Event {
	return Event{ID: id, Type: Connected}
}

// NewDisconnected returns a Disconnected event for slot id.
func NewDisconnected(id int) Event {
	return Event{ID: id, Type: Disconnected}
}

// NewButton returns a ButtonPressed or ButtonReleased event depending on
// pressed.
func NewButton(id int, pressed bool, b Button, code Code) Event {
	t := ButtonReleased
	if pressed {
		t = ButtonPressed
	}
	return Event{ID: id, Type: t, Button: b, Code: code}
}

// NewAxisChanged returns an AxisChanged event.
func NewAxisChanged(id int, a Axis, value float32, code Code) Event {
	return Event{ID: id, Type: AxisChanged, Axis: a, Code: code, Value: value}
}

func (e Event) String() string {
	switch e.Type {
	case ButtonPressed, ButtonReleased:
		return fmt.Sprintf("%s(%s, code=%d) id=%d", e.Type, e.Button, e.Code, e.ID)
	case AxisChanged:
		return fmt.Sprintf("AxisChanged(%s, %.4f, code=%d) id=%d", e.Axis, e.Value, e.Code, e.ID)
	default:
		return fmt.Sprintf("%s id=%d", e.Type, e.ID)
	}
}
