package device

import (
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
)

// Logger defines the logging interface used by the Registry.
// This allows different logging implementations to be used.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// Registry owns the live device objects, grouped by room.
//
// Each room has its own lock. Adding a device or executing a command holds
// the lock of one room only, so unrelated rooms never wait on each other.
// The outer lock guards the room index and is held only long enough to find
// or create a room.
//
// All public methods are thread-safe.
type Registry struct {
	mu     sync.RWMutex           // Protects rooms and order
	rooms  map[string]*roomBucket // Keyed by folded room name
	order  []*roomBucket          // First-insertion order, used for dispatch
	logger Logger
}

// roomBucket holds the devices of one room.
type roomBucket struct {
	mu      sync.RWMutex // Protects devices
	name    string       // Room name as first given
	devices []entry
}

// entry is a stored device with its folded name cached.
type entry struct {
	key    string
	device Device
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		rooms:  make(map[string]*roomBucket),
		logger: noopLogger{},
	}
}

// SetLogger sets the logger for the registry.
func (r *Registry) SetLogger(logger Logger) {
	r.logger = logger
}

// AddDevice stores d under room. The room entry is created on first use.
// It returns ErrDeviceExists when the room already holds a device whose name
// differs from d's only in letter case. A device without an ID gets one.
func (r *Registry) AddDevice(room string, d Device) error {
	if err := ValidateName(room); err != nil {
		return fmt.Errorf("room: %w", err)
	}
	if err := ValidateDevice(d); err != nil {
		return err
	}
	if d.ID == "" {
		d.ID = uuid.New().String()
	}

	b := r.bucketOrCreate(room)
	key := FoldName(d.Name())

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.index(key) >= 0 {
		r.logger.Warn("duplicate device rejected", "room", room, "device", d.Name())
		return fmt.Errorf("%w: %q in room %q", ErrDeviceExists, d.Name(), room)
	}
	b.devices = append(b.devices, entry{key: key, device: d})

	r.logger.Info("device added", "room", b.name, "device", d.Name(), "kind", d.Kind().String(), "id", d.ID)
	return nil
}

// MustAddDevice is like AddDevice but panics on error.
// It is meant for fixed setups where a duplicate is a programming error.
func (r *Registry) MustAddDevice(room string, d Device) {
	if err := r.AddDevice(room, d); err != nil {
		panic(err)
	}
}

// DeviceInfo returns a snapshot of the named device in room.
// Room and device names are compared case-insensitively.
func (r *Registry) DeviceInfo(room, name string) (Info, error) {
	b := r.bucket(FoldName(room))
	if b == nil {
		return Info{}, fmt.Errorf("%w: %q", ErrRoomNotFound, room)
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	i := b.index(FoldName(name))
	if i < 0 {
		return Info{}, fmt.Errorf("%w: %q in room %q", ErrDeviceNotFound, name, room)
	}
	return b.devices[i].device.Info(), nil
}

// ExecuteCommand finds the device named in data and applies its command.
//
// Rooms are searched in the order they were first added to and the first
// device whose name matches case-insensitively is used. The room holding
// that device stays locked from lookup until the command has been applied.
// If no room has a match, ErrDeviceNotFound is returned and nothing changes.
func (r *Registry) ExecuteCommand(data CommandData) (Result, error) {
	key := FoldName(data.DeviceName)

	r.mu.RLock()
	buckets := slices.Clone(r.order)
	r.mu.RUnlock()

	for _, b := range buckets {
		res, found, err := b.execute(key, data.Command)
		if !found {
			continue
		}
		if err != nil {
			r.logger.Error("command failed",
				"room", b.name, "device", data.DeviceName, "command", data.Command.String(), "error", err)
			return Result{}, err
		}
		r.logger.Debug("command executed",
			"room", b.name, "device", data.DeviceName, "command", data.Command.String(), "result", res.String())
		return res, nil
	}

	r.logger.Warn("command target not found", "device", data.DeviceName)
	return Result{}, fmt.Errorf("%w: %q", ErrDeviceNotFound, data.DeviceName)
}

// RoomNames returns the rooms holding devices, in first-insertion order.
func (r *Registry) RoomNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.order))
	for i, b := range r.order {
		names[i] = b.name
	}
	return names
}

// Devices returns snapshots of every device in room, in insertion order.
func (r *Registry) Devices(room string) ([]Info, error) {
	b := r.bucket(FoldName(room))
	if b == nil {
		return nil, fmt.Errorf("%w: %q", ErrRoomNotFound, room)
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	infos := make([]Info, len(b.devices))
	for i := range b.devices {
		infos[i] = b.devices[i].device.Info()
	}
	return infos, nil
}

// DeviceCount returns the number of devices across all rooms.
func (r *Registry) DeviceCount() int {
	r.mu.RLock()
	buckets := slices.Clone(r.order)
	r.mu.RUnlock()

	n := 0
	for _, b := range buckets {
		b.mu.RLock()
		n += len(b.devices)
		b.mu.RUnlock()
	}
	return n
}

// Stats returns registry statistics for monitoring.
type Stats struct {
	Rooms          int
	TotalDevices   int
	ByKind         map[Kind]int
	PoweredSockets int
}

// GetStats returns current registry statistics.
func (r *Registry) GetStats() Stats {
	r.mu.RLock()
	buckets := slices.Clone(r.order)
	r.mu.RUnlock()

	stats := Stats{
		Rooms:  len(buckets),
		ByKind: make(map[Kind]int),
	}
	for _, b := range buckets {
		b.mu.RLock()
		for i := range b.devices {
			d := &b.devices[i].device
			stats.TotalDevices++
			stats.ByKind[d.Kind()]++
			if s, ok := d.PowerSocket(); ok && s.IsOn() {
				stats.PoweredSockets++
			}
		}
		b.mu.RUnlock()
	}
	return stats
}

// bucket returns the room stored under key, or nil.
func (r *Registry) bucket(key string) *roomBucket {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.rooms[key]
}

// bucketOrCreate returns the room for name, creating it if needed.
func (r *Registry) bucketOrCreate(name string) *roomBucket {
	key := FoldName(name)
	if b := r.bucket(key); b != nil {
		return b
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Another caller may have created it between the two locks.
	if b, ok := r.rooms[key]; ok {
		return b
	}
	b := &roomBucket{name: name}
	r.rooms[key] = b
	r.order = append(r.order, b)
	return b
}

// index returns the position of the device stored under key, or -1.
// The caller must hold b.mu.
func (b *roomBucket) index(key string) int {
	for i := range b.devices {
		if b.devices[i].key == key {
			return i
		}
	}
	return -1
}

// execute applies cmd to the device stored under key while holding the
// room exclusively. found is false when the room has no such device.
func (b *roomBucket) execute(key string, cmd Command) (res Result, found bool, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	i := b.index(key)
	if i < 0 {
		return Result{}, false, nil
	}
	res, err = b.devices[i].device.Execute(cmd)
	return res, true, err
}
