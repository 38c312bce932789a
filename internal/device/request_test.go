package device

import (
	"errors"
	"testing"
)

func TestParseRequest(t *testing.T) {
	tests := []struct {
		name     string
		device   string
		code     uint8
		wantType RequestType
	}{
		{"empty name exits", "", 11, RequestExit},
		{"blank name exits", "   ", 11, RequestExit},
		{"exit keyword", "exit", 0, RequestExit},
		{"exit keyword any case", "EXIT", 0, RequestExit},
		{"valid command", "socket1", 11, RequestExecute},
		{"bad code", "socket1", 55, RequestUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := ParseRequest(tt.device, tt.code)
			if req.Type != tt.wantType {
				t.Errorf("ParseRequest(%q, %d).Type = %v, want %v", tt.device, tt.code, req.Type, tt.wantType)
			}
		})
	}
}

func TestParseRequest_Execute(t *testing.T) {
	req := ParseRequest(" socket1 ", 10)

	if req.Data.DeviceName != "socket1" {
		t.Errorf("DeviceName = %q, want %q", req.Data.DeviceName, "socket1")
	}
	if req.Data.Command != SocketCmd(SocketTurnOff) {
		t.Errorf("Command = %v, want SmartSocket.TurnOff", req.Data.Command)
	}
}

func TestParseRequest_UnknownKeepsError(t *testing.T) {
	req := ParseRequest("socket1", 13)

	if !errors.Is(req.Err, ErrUnknownCommand) {
		t.Errorf("Err = %v, want ErrUnknownCommand", req.Err)
	}
}
