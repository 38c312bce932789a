package house

import "errors"

var (
	// ErrRoomExists is returned when adding a room whose name is already taken.
	ErrRoomExists = errors.New("add room error: room with the same name already in house")

	// ErrRoomNotFound is returned when a room name does not exist.
	ErrRoomNotFound = errors.New("room not found")

	// ErrDeviceExists is returned when a room already references a device name.
	ErrDeviceExists = errors.New("add device error: device with the same name already in room")

	// ErrDeviceNotFound is returned when a room does not reference a device name.
	ErrDeviceNotFound = errors.New("device not found")
)
