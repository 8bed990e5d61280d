//go:build windows

package xinput

import (
	"fmt"
	"unsafe"

	"github.com/google/uuid"
	"golang.org/x/sys/windows"

	"github.com/gopad/gopad/driver"
	"github.com/gopad/gopad/internal/log"
	"github.com/gopad/gopad/state"
)

const slotCount = 4

const (
	errorSuccess            = 0
	errorDeviceNotConnected = 1167
)

const (
	batteryDevtypeGamepad = 0x00

	batteryTypeWired    = 0x01
	batteryTypeAlkaline = 0x02
	batteryTypeNimh     = 0x03

	batteryLevelEmpty  = 0x00
	batteryLevelLow    = 0x01
	batteryLevelMedium = 0x02
	batteryLevelFull   = 0x03
)

var (
	dll                       = windows.NewLazySystemDLL("xinput1_4.dll")
	procGetState              = dll.NewProc("XInputGetState")
	procGetBatteryInformation = dll.NewProc("XInputGetBatteryInformation")
	procEnable                = dll.NewProc("XInputEnable")
)

// xstate mirrors XINPUT_STATE for the DLL call.
type xstate struct {
	packetNumber uint32
	buttons      uint16
	leftTrigger  uint8
	rightTrigger uint8
	thumbLX      int16
	thumbLY      int16
	thumbRX      int16
	thumbRY      int16
}

// xbattery mirrors XINPUT_BATTERY_INFORMATION.
type xbattery struct {
	batteryType  uint8
	batteryLevel uint8
}

// Driver polls the four XInput user slots through xinput1_4.dll.
type Driver struct {
	raw        log.RawLogger
	lastPacket [slotCount]uint32
}

// New returns the XInput driver. raw may be nil; when set it receives a hex
// trace of each snapshot whose packet number advanced.
func New(raw log.RawLogger) *Driver {
	if raw == nil {
		raw = log.NewRaw(nil)
	}
	_, _, _ = procEnable.Call(1)
	return &Driver{raw: raw}
}

func (d *Driver) SlotCount() int {
	return slotCount
}

func (d *Driver) Table() *state.CodeTable {
	return codeTable
}

// QueryRawState fetches the slot's XINPUT_STATE. ERROR_DEVICE_NOT_CONNECTED
// maps to driver.ErrNotPresent; any other failure is transient.
func (d *Driver) QueryRawState(slot int) (state.Snapshot, error) {
	var st xstate
	ret, _, _ := procGetState.Call(uintptr(uint32(slot)), uintptr(unsafe.Pointer(&st)))
	switch ret {
	case errorSuccess:
	case errorDeviceNotConnected:
		return nil, driver.ErrNotPresent
	default:
		return nil, fmt.Errorf("XInputGetState slot %d: error %d", slot, ret)
	}

	snap := Snapshot{
		Packet:       st.packetNumber,
		Buttons:      st.buttons,
		LeftTrigger:  st.leftTrigger,
		RightTrigger: st.rightTrigger,
		ThumbLX:      st.thumbLX,
		ThumbLY:      st.thumbLY,
		ThumbRX:      st.thumbRX,
		ThumbRY:      st.thumbRY,
	}
	if st.packetNumber != d.lastPacket[slot] {
		d.lastPacket[slot] = st.packetNumber
		d.raw.Log(slot, snap.wireBytes())
	}
	return snap, nil
}

// Describe reports the fixed XInput identity: the API exposes no per-device
// name or hardware id, only rumble capability.
func (d *Driver) Describe(slot int) driver.Description {
	return driver.Description{
		Name:          "Xbox Controller",
		UUID:          uuid.Nil,
		ForceFeedback: true,
		MaxEffects:    1,
	}
}

// PowerInfo queries XInputGetBatteryInformation for the slot.
func (d *Driver) PowerInfo(slot int) driver.PowerInfo {
	var b xbattery
	ret, _, _ := procGetBatteryInformation.Call(
		uintptr(uint32(slot)),
		uintptr(batteryDevtypeGamepad),
		uintptr(unsafe.Pointer(&b)),
	)
	if ret != errorSuccess {
		return driver.PowerInfo{Kind: driver.PowerUnknown}
	}
	switch b.batteryType {
	case batteryTypeWired:
		return driver.PowerInfo{Kind: driver.PowerWired}
	case batteryTypeAlkaline, batteryTypeNimh:
		level := 0
		switch b.batteryLevel {
		case batteryLevelEmpty:
			level = 0
		case batteryLevelLow:
			level = 33
		case batteryLevelMedium:
			level = 67
		case batteryLevelFull:
			level = 100
		}
		if level == 100 {
			return driver.PowerInfo{Kind: driver.PowerCharged}
		}
		return driver.PowerInfo{Kind: driver.PowerDischarging, Level: level}
	default:
		return driver.PowerInfo{Kind: driver.PowerUnknown}
	}
}
