//go:build linux

package joydev

import (
	"encoding/binary"
	"strconv"
	"unsafe"

	"github.com/google/uuid"
	"golang.org/x/sys/unix"

	"github.com/gopad/gopad/driver"
	"github.com/gopad/gopad/event"
	"github.com/gopad/gopad/internal/log"
	"github.com/gopad/gopad/state"
)

const slotCount = 4

const (
	jsEventSize   = 8
	jsEventButton = 0x01
	jsEventAxis   = 0x02
	jsEventInit   = 0x80
)

// Joystick ioctls.
const (
	ioctlName = 0x80006a13 + (128 << 16) // JSIOCGNAME(128)
)

type slot struct {
	fd   int
	open bool
	snap Snapshot
	desc driver.Description
}

// Driver polls /dev/input/js0..js3, folding the kernel's event records into
// per-slot snapshots.
type Driver struct {
	raw   log.RawLogger
	slots [slotCount]slot
}

// New returns the joydev driver. raw may be nil; when set it receives a hex
// trace of every js_event record read.
func New(raw log.RawLogger) *Driver {
	if raw == nil {
		raw = log.NewRaw(nil)
	}
	return &Driver{raw: raw}
}

func (d *Driver) SlotCount() int {
	return slotCount
}

func (d *Driver) Table() *state.CodeTable {
	return codeTable
}

// QueryRawState drains any pending js_event records into the slot's folded
// state and returns a copy. A slot whose device node cannot be opened, or
// whose read fails with anything but EAGAIN, is reported not present.
func (d *Driver) QueryRawState(id int) (state.Snapshot, error) {
	s := &d.slots[id]
	if !s.open {
		if err := s.openDevice(id); err != nil {
			return nil, driver.ErrNotPresent
		}
	}

	var buf [jsEventSize]byte
	for {
		n, err := unix.Read(s.fd, buf[:])
		if err == unix.EINTR {
			continue
		}
		if err == unix.EAGAIN {
			break
		}
		if err != nil || n != jsEventSize {
			// ENODEV after unplug, or a short/failed read: device gone.
			s.closeDevice()
			return nil, driver.ErrNotPresent
		}
		s.fold(buf)
		d.raw.Log(id, buf[:])
	}
	return s.snap, nil
}

// Describe returns the slot's last-known identity. The UUID is derived from
// the kernel-reported name since the js interface exposes no hardware id.
func (d *Driver) Describe(id int) driver.Description {
	return d.slots[id].desc
}

// PowerInfo is always unknown: the js interface has no battery query.
func (d *Driver) PowerInfo(id int) driver.PowerInfo {
	return driver.PowerInfo{Kind: driver.PowerUnknown}
}

func (s *slot) openDevice(id int) error {
	path := "/dev/input/js" + strconv.Itoa(id)
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK|unix.O_CLOEXEC, 0)
	if err != nil {
		return err
	}
	name := deviceName(fd)
	s.fd = fd
	s.open = true
	s.snap = Snapshot{}
	s.desc = driver.Description{
		Name: name,
		UUID: uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)),
	}
	return nil
}

func (s *slot) closeDevice() {
	if s.open {
		_ = unix.Close(s.fd)
		s.open = false
	}
}

// fold applies one js_event record to the working snapshot. Init events are
// folded like live ones so a freshly opened device starts from its actual
// state.
func (s *slot) fold(buf [jsEventSize]byte) {
	value := int16(binary.LittleEndian.Uint16(buf[4:6]))
	typ := buf[6] &^ jsEventInit
	num := buf[7]

	switch typ {
	case jsEventButton:
		if num >= 32 {
			return
		}
		code := event.Code(num)
		if value != 0 {
			s.snap.buttons |= 1 << code
		} else {
			s.snap.buttons &^= 1 << code
		}
	case jsEventAxis:
		code, ok := jsAxisCodes[num]
		if !ok {
			return
		}
		s.snap.axes[code] = value
	default:
		return
	}
	s.snap.counter++
}

func deviceName(fd int) string {
	var buf [128]byte
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), ioctlName, uintptr(unsafe.Pointer(&buf[0])))
	if errno != 0 {
		return "Generic Gamepad"
	}
	for i, b := range buf {
		if b == 0 {
			return string(buf[:i])
		}
	}
	return string(buf[:])
}
