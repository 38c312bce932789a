package device

import "fmt"

// SocketCommand is a power socket command. Values are the wire command digits.
type SocketCommand uint8

// Power socket commands.
const (
	SocketTurnOff  SocketCommand = 0
	SocketTurnOn   SocketCommand = 1
	SocketGetState SocketCommand = 2
)

// String returns the command name.
func (c SocketCommand) String() string {
	switch c {
	case SocketTurnOff:
		return "TurnOff"
	case SocketTurnOn:
		return "TurnOn"
	case SocketGetState:
		return "GetState"
	default:
		return fmt.Sprintf("SocketCommand(%d)", uint8(c))
	}
}

// Wire digits selecting the device kind (tens digit of a command code).
const (
	powerSocketCode = 1
)

// Command is a device-specific command. Kind selects which payload is set.
type Command struct {
	Kind   Kind
	Socket SocketCommand
}

// SocketCmd returns a power socket command.
func SocketCmd(c SocketCommand) Command {
	return Command{Kind: KindPowerSocket, Socket: c}
}

// String returns e.g. "SmartSocket.TurnOn".
func (c Command) String() string {
	switch c.Kind {
	case KindPowerSocket:
		return c.Kind.String() + "." + c.Socket.String()
	default:
		return c.Kind.String()
	}
}

// Code returns the wire form of c. It is the inverse of Decode.
func (c Command) Code() (uint8, bool) {
	switch c.Kind {
	case KindPowerSocket:
		return powerSocketCode*10 + uint8(c.Socket), true
	default:
		return 0, false
	}
}

// Decode turns a one-byte command code into a Command.
// The ones digit selects the command and the tens digit the device kind;
// higher digits are ignored. Failures are *DecodeError values.
func Decode(code uint8) (Command, error) {
	cmd := code % 10
	kind := (code / 10) % 10

	switch kind {
	case powerSocketCode:
		switch c := SocketCommand(cmd); c {
		case SocketTurnOff, SocketTurnOn, SocketGetState:
			return SocketCmd(c), nil
		default:
			return Command{}, &DecodeError{Code: code, Err: ErrUnknownCommand}
		}
	default:
		return Command{}, &DecodeError{Code: code, Err: ErrUnknownDeviceKind}
	}
}

// CommandData addresses a command to a device by name.
type CommandData struct {
	DeviceName string
	Command    Command
}

// Result is the outcome of a successful command. Kind selects the payload.
type Result struct {
	Kind   Kind
	Socket SocketState
}

// String renders the payload, e.g. "Powered(220)".
func (r Result) String() string {
	switch r.Kind {
	case KindPowerSocket:
		return r.Socket.String()
	default:
		return r.Kind.String()
	}
}

// Execute applies cmd to d. A command for another device kind yields a
// *FailureError and leaves d untouched.
func (d *Device) Execute(cmd Command) (Result, error) {
	if cmd.Kind != d.kind {
		return Result{}, &FailureError{
			Device: d.Name(),
			Detail: fmt.Sprintf("%s cannot execute %s", d.kind, cmd),
		}
	}

	switch d.kind {
	case KindPowerSocket:
		return d.executeSocket(cmd.Socket)
	default:
		return Result{}, &FailureError{
			Device: d.Name(),
			Detail: fmt.Sprintf("%s accepts no commands", d.kind),
		}
	}
}

func (d *Device) executeSocket(c SocketCommand) (Result, error) {
	switch c {
	case SocketTurnOn:
		d.socket.TurnOn()
	case SocketTurnOff:
		d.socket.TurnOff()
	case SocketGetState:
	default:
		return Result{}, &FailureError{Device: d.socket.Name, Detail: "socket error: unsupported command " + c.String()}
	}
	return Result{Kind: KindPowerSocket, Socket: d.socket.State()}, nil
}
