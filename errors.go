package serial

import (
	"errors"
	"fmt"
)

// Predefined error types for robust error handling
var (
	ErrDeviceNotFound   = errors.New("serial device not found")
	ErrPermissionDenied = errors.New("permission denied accessing serial device")
	ErrDeviceInUse      = errors.New("serial device already in use")
	ErrInvalidBaudRate  = errors.New("invalid baud rate")
	ErrInvalidConfig    = errors.New("invalid serial configuration")
	ErrPortClosed       = errors.New("serial port is closed")
)

// wrapOpenError keeps the OS error text next to the matching sentinel so both
// errors.Is checks and the printed message carry the cause
func wrapOpenError(device string, err, sentinel error) error {
	if sentinel == err {
		return fmt.Errorf("failed to open %s: %w", device, err)
	}
	return fmt.Errorf("failed to open %s: %w: %w", device, sentinel, err)
}
