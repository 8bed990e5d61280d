//go:build windows

package gamepad

import (
	"github.com/gopad/gopad/driver"
	"github.com/gopad/gopad/driver/xinput"
	"github.com/gopad/gopad/internal/log"
)

func defaultDriver(raw log.RawLogger) driver.Driver {
	return xinput.New(raw)
}
