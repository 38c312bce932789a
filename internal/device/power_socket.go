package device

import "strconv"

// DefaultSocketWattage is what a socket draws once powered when it has no
// rating of its own.
const DefaultSocketWattage = 220

// SocketState is the two-state machine of a power socket.
// Watts is zero when powered without a known draw.
type SocketState struct {
	Powered bool
	Watts   int
}

// NotPowered is the off state.
var NotPowered = SocketState{}

// Powered returns the on state drawing watts.
func Powered(watts int) SocketState {
	return SocketState{Powered: true, Watts: watts}
}

// String renders "NotPowered", "Powered" or "Powered(<watts>)".
func (s SocketState) String() string {
	switch {
	case !s.Powered:
		return "NotPowered"
	case s.Watts == 0:
		return "Powered"
	default:
		return "Powered(" + strconv.Itoa(s.Watts) + ")"
	}
}

// PowerSocket is a switchable socket with a consumption meter.
type PowerSocket struct {
	Name        string
	Description string

	// Rating is the draw reported once powered. Zero means DefaultSocketWattage.
	Rating int

	consumption int
	state       SocketState
}

// NewPowerSocket returns a socket in the NotPowered state.
func NewPowerSocket(name, description string, rating int) PowerSocket {
	return PowerSocket{Name: name, Description: description, Rating: rating}
}

// TurnOn powers the socket. It is a no-op when already powered.
// A socket without a Rating draws DefaultSocketWattage.
func (s *PowerSocket) TurnOn() {
	if s.state.Powered {
		return
	}
	watts := s.Rating
	if watts <= 0 {
		watts = DefaultSocketWattage
	}
	s.state = Powered(watts)
	s.consumption = watts
}

// TurnOff cuts power. It is a no-op when not powered.
func (s *PowerSocket) TurnOff() {
	if !s.state.Powered {
		return
	}
	s.state = NotPowered
	s.consumption = 0
}

// State returns the current state.
func (s PowerSocket) State() SocketState {
	return s.state
}

// IsOn reports whether the socket is powered.
func (s PowerSocket) IsOn() bool {
	return s.state.Powered
}

// PowerConsumption returns the current meter reading.
func (s PowerSocket) PowerConsumption() int {
	return s.consumption
}
