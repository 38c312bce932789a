package device

import (
	"errors"
	"fmt"
)

// Domain errors for the device package.
//
// These errors can be checked using errors.Is() for error handling:
//
//	if errors.Is(err, device.ErrDeviceNotFound) {
//	    // handle not found case
//	}
var (
	// ErrDeviceNotFound is returned when no device matches a name.
	ErrDeviceNotFound = errors.New("device not found")

	// ErrRoomNotFound is returned when the registry holds no devices for a room.
	ErrRoomNotFound = errors.New("room not found")

	// ErrDeviceExists is returned when a room already holds a device with the
	// same case-folded name.
	ErrDeviceExists = errors.New("add device error: device with the same name already in room")

	// ErrInvalidDevice is returned for a zero Device with no variant set.
	ErrInvalidDevice = errors.New("device: invalid device")

	// ErrInvalidName is returned when a device or room name is empty or too long.
	ErrInvalidName = errors.New("device: invalid name")

	// ErrUnknownDeviceKind is returned when a command code names no known device kind.
	ErrUnknownDeviceKind = errors.New("unknown device code in command code")

	// ErrUnknownCommand is returned when a command code names no command of its device kind.
	ErrUnknownCommand = errors.New("unknown command code")

	// ErrDeviceFailure matches every *FailureError.
	ErrDeviceFailure = errors.New("device failure")
)

// DecodeError reports a command code that could not be decoded.
// It wraps ErrUnknownDeviceKind or ErrUnknownCommand.
type DecodeError struct {
	Code uint8
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding command %d: %v", e.Code, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// FailureError is a device-level execution failure.
type FailureError struct {
	Device string
	Detail string
}

func (e *FailureError) Error() string {
	return fmt.Sprintf("device %q failed: %s", e.Device, e.Detail)
}

// Is reports ErrDeviceFailure as matching so callers need not type-assert.
func (e *FailureError) Is(target error) bool {
	return target == ErrDeviceFailure
}
