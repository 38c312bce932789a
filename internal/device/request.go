package device

import "strings"

// RequestType classifies an operator request.
type RequestType uint8

// Request types.
const (
	RequestUnknown RequestType = iota
	RequestExit
	RequestExecute
)

// Request is a parsed operator request: quit, run a command, or something
// that could not be understood.
type Request struct {
	Type RequestType
	Data CommandData

	// Err holds the decode failure for RequestUnknown.
	Err error
}

// ParseRequest classifies a (device name, command code) pair.
// An empty name or "exit" in any case asks to quit.
func ParseRequest(name string, code uint8) Request {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, "exit") {
		return Request{Type: RequestExit}
	}

	cmd, err := Decode(code)
	if err != nil {
		return Request{Type: RequestUnknown, Err: err}
	}
	return Request{
		Type: RequestExecute,
		Data: CommandData{DeviceName: name, Command: cmd},
	}
}
