package report

import (
	"strings"
	"testing"

	"github.com/nerrad567/smart-house-core/internal/device"
	"github.com/nerrad567/smart-house-core/internal/house"
)

// fakeHouse is a RoomLister whose DeviceNames can fail for chosen rooms.
type fakeHouse struct {
	rooms   []string
	devices map[string][]string
}

func (f fakeHouse) RoomNames() []string { return f.rooms }

func (f fakeHouse) DeviceNames(room string) ([]string, error) {
	names, ok := f.devices[room]
	if !ok {
		return nil, house.ErrRoomNotFound
	}
	return names, nil
}

func newHouse(t *testing.T, rooms map[string][]string, order ...string) *house.House {
	t.Helper()

	h := house.New()
	for _, name := range order {
		room := house.NewRoom(name)
		for _, d := range rooms[name] {
			if err := room.AddDevice(d); err != nil {
				t.Fatalf("AddDevice(%q) error = %v", d, err)
			}
		}
		if err := h.AddRoom(room); err != nil {
			t.Fatalf("AddRoom(%q) error = %v", name, err)
		}
	}
	return h
}

func newStorage(t *testing.T) *device.Registry {
	t.Helper()

	r := device.NewRegistry()
	for _, d := range []device.Device{
		device.FromPowerSocket(device.NewPowerSocket("socket1", "no desc", 0)),
		device.FromPowerSocket(device.NewPowerSocket("socket2", "no desc", 0)),
		device.FromThermometer(device.Thermometer{Name: "therm1", Reading: device.DegreesCelsius(0)}),
		device.FromThermometer(device.Thermometer{Name: "therm2", Reading: device.DegreesCelsius(0)}),
	} {
		if err := r.AddDevice("hall", d); err != nil {
			t.Fatalf("AddDevice() error = %v", err)
		}
	}
	return r
}

func TestGenerate_AllDevices(t *testing.T) {
	h := newHouse(t, map[string][]string{
		"hall": {"therm1", "therm2", "socket1", "socket2"},
	}, "livingroom", "hall")

	got := Generate(h, newStorage(t))

	want := "room: hall, device: kind: SmartThermometer, name: therm1, state: Celsius(0)\n" +
		"room: hall, device: kind: SmartThermometer, name: therm2, state: Celsius(0)\n" +
		"room: hall, device: kind: SmartSocket, name: socket1, state: NotPowered\n" +
		"room: hall, device: kind: SmartSocket, name: socket2, state: NotPowered\n"
	if got != want {
		t.Errorf("Generate() =\n%s\nwant\n%s", got, want)
	}
}

func TestGenerate_MissingDeviceInline(t *testing.T) {
	h := newHouse(t, map[string][]string{
		"hall": {"therm1", "therm2", "socket"},
	}, "hall")

	got := Generate(h, newStorage(t))

	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), got)
	}
	if !strings.HasPrefix(lines[2], "room: hall, device: device not found") {
		t.Errorf("line 3 = %q, want inline device not found", lines[2])
	}
}

func TestGenerate_MissingRoomInRegistry(t *testing.T) {
	h := newHouse(t, map[string][]string{
		"A": {"x"},
		"B": nil,
	}, "A", "B")

	got := Generate(h, device.NewRegistry())

	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1:\n%s", len(lines), got)
	}
	if !strings.HasPrefix(lines[0], "room: A, device: room not found") {
		t.Errorf("line = %q, want inline room not found", lines[0])
	}
	if strings.Contains(got, "room: B") {
		t.Error("room without devices should produce no lines")
	}
}

func TestGenerate_RoomVanished(t *testing.T) {
	f := fakeHouse{
		rooms:   []string{"hall", "gone"},
		devices: map[string][]string{"hall": {"socket1"}},
	}

	got := Generate(f, newStorage(t))

	want := "room: hall, device: kind: SmartSocket, name: socket1, state: NotPowered\n" +
		"room: gone, device: room not found\n"
	if got != want {
		t.Errorf("Generate() =\n%s\nwant\n%s", got, want)
	}
}

func TestGenerate_ReflectsCommands(t *testing.T) {
	h := newHouse(t, map[string][]string{"hall": {"socket1"}}, "hall")
	storage := newStorage(t)

	cmd, err := device.Decode(11)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := storage.ExecuteCommand(device.CommandData{DeviceName: "socket1", Command: cmd}); err != nil {
		t.Fatal(err)
	}

	if got := Generate(h, storage); !strings.Contains(got, "state: Powered(220)") {
		t.Errorf("Generate() = %q, want powered socket", got)
	}
}

func TestGenerate_EmptyHouse(t *testing.T) {
	if got := Generate(house.New(), device.NewRegistry()); got != "" {
		t.Errorf("Generate() = %q, want empty", got)
	}
}
