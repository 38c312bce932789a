package house

import (
	"fmt"
	"slices"
	"sync"

	"github.com/nerrad567/smart-house-core/internal/device"
)

// Logger defines the logging interface used by the House.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// Room is a named space holding device name references.
type Room struct {
	name    string
	devices []string
}

// NewRoom returns an empty room.
func NewRoom(name string) Room {
	return Room{name: name}
}

// Name returns the room name as given.
func (r Room) Name() string {
	return r.name
}

// Devices returns the device names in insertion order.
func (r Room) Devices() []string {
	return slices.Clone(r.devices)
}

// AddDevice references a device by name.
// It returns ErrDeviceExists if the name is already present in any letter case.
func (r *Room) AddDevice(name string) error {
	if err := device.ValidateName(name); err != nil {
		return err
	}
	if r.indexOf(name) >= 0 {
		return fmt.Errorf("%w: %q in room %q", ErrDeviceExists, name, r.name)
	}
	r.devices = append(r.devices, name)
	return nil
}

// RemoveDevice drops a device reference.
func (r *Room) RemoveDevice(name string) error {
	i := r.indexOf(name)
	if i < 0 {
		return fmt.Errorf("%w: %q in room %q", ErrDeviceNotFound, name, r.name)
	}
	r.devices = slices.Delete(r.devices, i, i+1)
	return nil
}

func (r *Room) indexOf(name string) int {
	return slices.IndexFunc(r.devices, func(d string) bool {
		return device.SameName(d, name)
	})
}

// House is an ordered collection of uniquely named rooms.
//
// All public methods are thread-safe.
type House struct {
	mu     sync.RWMutex
	rooms  []*Room
	logger Logger
}

// New creates an empty house.
func New() *House {
	return &House{logger: noopLogger{}}
}

// SetLogger sets the logger for the house.
func (h *House) SetLogger(logger Logger) {
	h.logger = logger
}

// AddRoom adds a copy of room. Room names are unique case-insensitively.
func (h *House) AddRoom(room Room) error {
	if err := device.ValidateName(room.name); err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.indexOf(room.name) >= 0 {
		return fmt.Errorf("%w: %q", ErrRoomExists, room.name)
	}
	cpy := Room{name: room.name, devices: slices.Clone(room.devices)}
	h.rooms = append(h.rooms, &cpy)

	h.logger.Info("room added", "room", room.name, "devices", len(room.devices))
	return nil
}

// RemoveRoom removes a room and its device references.
func (h *House) RemoveRoom(name string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	i := h.indexOf(name)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrRoomNotFound, name)
	}
	h.rooms = slices.Delete(h.rooms, i, i+1)

	h.logger.Info("room removed", "room", name)
	return nil
}

// AddDevice references a device name in an existing room.
func (h *House) AddDevice(room, name string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	r, err := h.room(room)
	if err != nil {
		return err
	}
	return r.AddDevice(name)
}

// RemoveDevice drops a device reference from a room.
func (h *House) RemoveDevice(room, name string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	r, err := h.room(room)
	if err != nil {
		return err
	}
	return r.RemoveDevice(name)
}

// RoomNames returns room names in insertion order.
func (h *House) RoomNames() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	names := make([]string, len(h.rooms))
	for i, r := range h.rooms {
		names[i] = r.name
	}
	return names
}

// DeviceNames returns the device names referenced by a room.
func (h *House) DeviceNames(room string) ([]string, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	r, err := h.room(room)
	if err != nil {
		return nil, err
	}
	return r.Devices(), nil
}

// room returns the named room. The caller must hold h.mu.
func (h *House) room(name string) (*Room, error) {
	i := h.indexOf(name)
	if i < 0 {
		return nil, fmt.Errorf("%w: %q", ErrRoomNotFound, name)
	}
	return h.rooms[i], nil
}

// indexOf returns the position of the named room, or -1. The caller must hold h.mu.
func (h *House) indexOf(name string) int {
	return slices.IndexFunc(h.rooms, func(r *Room) bool {
		return device.SameName(r.name, name)
	})
}
