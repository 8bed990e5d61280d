//go:build linux

package gamepad

import (
	"github.com/gopad/gopad/driver"
	"github.com/gopad/gopad/driver/joydev"
	"github.com/gopad/gopad/internal/log"
)

func defaultDriver(raw log.RawLogger) driver.Driver {
	return joydev.New(raw)
}
