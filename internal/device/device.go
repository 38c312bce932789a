package device

import "fmt"

// Kind identifies a device variant. The set is closed.
type Kind uint8

// Device kinds.
const (
	KindUnknown Kind = iota
	KindThermometer
	KindPowerSocket
)

// String returns the kind name shown in device info and reports.
func (k Kind) String() string {
	switch k {
	case KindThermometer:
		return "SmartThermometer"
	case KindPowerSocket:
		return "SmartSocket"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Device is one of the device variants. Build it with FromThermometer or
// FromPowerSocket; the zero value has KindUnknown.
//
// Device is a value type. The Registry stores its own copy and hands out
// Info snapshots only.
type Device struct {
	// ID is assigned by the Registry on insertion when empty.
	ID string

	kind        Kind
	thermometer Thermometer
	socket      PowerSocket
}

// FromThermometer wraps a thermometer.
func FromThermometer(t Thermometer) Device {
	return Device{kind: KindThermometer, thermometer: t}
}

// FromPowerSocket wraps a power socket.
func FromPowerSocket(s PowerSocket) Device {
	return Device{kind: KindPowerSocket, socket: s}
}

// Kind returns the variant.
func (d Device) Kind() Kind {
	return d.kind
}

// Name returns the device name as given at construction.
func (d Device) Name() string {
	switch d.kind {
	case KindThermometer:
		return d.thermometer.Name
	case KindPowerSocket:
		return d.socket.Name
	default:
		return ""
	}
}

// State renders the current state, e.g. "Celsius(18)" or "Powered(220)".
func (d Device) State() string {
	switch d.kind {
	case KindThermometer:
		return d.thermometer.Reading.String()
	case KindPowerSocket:
		return d.socket.State().String()
	default:
		return "Unknown"
	}
}

// Thermometer returns the thermometer variant, if that is what d holds.
func (d Device) Thermometer() (Thermometer, bool) {
	return d.thermometer, d.kind == KindThermometer
}

// PowerSocket returns the socket variant, if that is what d holds.
func (d Device) PowerSocket() (PowerSocket, bool) {
	return d.socket, d.kind == KindPowerSocket
}

// Info returns a read-only snapshot of d.
func (d Device) Info() Info {
	return Info{
		ID:    d.ID,
		Kind:  d.kind.String(),
		Name:  d.Name(),
		State: d.State(),
	}
}

// Info is a read-only snapshot of a device's kind, name and state.
type Info struct {
	ID    string `json:"id"`
	Kind  string `json:"kind"`
	Name  string `json:"name"`
	State string `json:"state"`
}

// String renders the snapshot for reports. The ID is left out.
func (i Info) String() string {
	return fmt.Sprintf("kind: %s, name: %s, state: %s", i.Kind, i.Name, i.State)
}
