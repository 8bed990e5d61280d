//go:build !windows

package util

func IsRunFromGUI() bool {
	// On non-Windows, always return false.
	// We only use this to start the monitor when double-clicked from a
	// file manager; on Linux that launch path does not exist.
	return false
}

func HideConsoleWindow() {
	// No-op on non-Windows platforms
}
