// Package device provides the device Registry and command dispatch for the
// smart house.
//
// The Registry is the authoritative store of live device objects. Devices are
// grouped by room; the house model only holds device names and asks the
// Registry for state when it builds a report.
//
// # Architecture
//
//	┌──────────────────────────────────────────────────────────────────┐
//	│                            Registry                              │
//	│                                                                  │
//	│  room index (RWMutex)                                            │
//	│   ├── "hall"    ── roomBucket (RWMutex) ── [socket1, therm1]     │
//	│   └── "kitchen" ── roomBucket (RWMutex) ── [kettle]              │
//	│                                                                  │
//	└──────────────────────────────────────────────────────────────────┘
//	          ▲                          ▲
//	          │ AddDevice / DeviceInfo   │ ExecuteCommand(Decode(code))
//	          │                          │
//	   house seed + report         command handler
//
// # Key Types
//
//   - Device: closed set of variants (Thermometer, PowerSocket)
//   - Temperature: a reading tagged Celsius or Fahrenheit
//   - SocketState: NotPowered or Powered with an optional draw
//   - Command: decoded from a one-byte code (tens digit = kind, ones = command)
//   - Info: read-only snapshot returned by lookups
//
// # Command Codes
//
//	10  SmartSocket.TurnOff
//	11  SmartSocket.TurnOn
//	12  SmartSocket.GetState
//
// Every other two-digit code fails to decode.
//
// # Usage
//
//	registry := device.NewRegistry()
//	registry.SetLogger(log)
//
//	socket := device.NewPowerSocket("socket1", "kitchen socket", 0)
//	if err := registry.AddDevice("hall", device.FromPowerSocket(socket)); err != nil {
//	    return err
//	}
//
//	cmd, err := device.Decode(11)
//	if err != nil {
//	    return err
//	}
//	res, err := registry.ExecuteCommand(device.CommandData{DeviceName: "Socket1", Command: cmd})
//
// # Thread Safety
//
// The Registry is safe for concurrent use. Every room has its own lock, so
// work on one room never blocks another. Callers only ever receive copies.
//
// Names are compared case-insensitively everywhere: room keys, per-room
// uniqueness and command dispatch all use FoldName.
package device
