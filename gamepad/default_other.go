//go:build !windows && !linux

package gamepad

import (
	"github.com/gopad/gopad/driver"
	"github.com/gopad/gopad/driver/stub"
	"github.com/gopad/gopad/internal/log"
)

func defaultDriver(raw log.RawLogger) driver.Driver {
	return stub.New()
}
