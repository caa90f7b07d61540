//go:build windows

package keepawake

import "golang.org/x/sys/windows"

// Windows' SetThreadExecutionState power-request API: ES_CONTINUOUS
// keeps the flags sticky until cleared, ES_SYSTEM_REQUIRED suppresses
// idle system sleep for as long as they're set.
const (
	esContinuous     = 0x80000000
	esSystemRequired = 0x00000001
)

var procSetThreadExecutionState = windows.NewLazySystemDLL("kernel32.dll").NewProc("SetThreadExecutionState")

type platformHandle struct {
	reason string
}

func newPlatformHandle(reason string) (platformHandle, error) {
	return platformHandle{reason: reason}, nil
}

func (platformHandle) preventSleep() error {
	r, _, err := procSetThreadExecutionState.Call(uintptr(esContinuous | esSystemRequired))
	if r == 0 {
		return err
	}
	return nil
}

func (platformHandle) allowSleep() error {
	r, _, err := procSetThreadExecutionState.Call(uintptr(esContinuous))
	if r == 0 {
		return err
	}
	return nil
}
