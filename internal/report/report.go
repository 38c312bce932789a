// Package report renders the status of every device the house knows about.
package report

import (
	"fmt"
	"strings"

	"github.com/nerrad567/smart-house-core/internal/device"
)

// RoomLister exposes the rooms of a house and the device names in each.
// *house.House satisfies it.
type RoomLister interface {
	RoomNames() []string
	DeviceNames(room string) ([]string, error)
}

// InfoProvider looks up live device state. *device.Registry satisfies it.
type InfoProvider interface {
	DeviceInfo(room, name string) (device.Info, error)
}

// Generate builds a report with one line per (room, device) pair:
//
//	room: <room>, device: <info or error>
//
// Rooms follow the house's order. Lookup failures are written inline and
// never stop the report. Rooms without devices produce no lines.
func Generate(house RoomLister, provider InfoProvider) string {
	var b strings.Builder
	for _, room := range house.RoomNames() {
		names, err := house.DeviceNames(room)
		if err != nil {
			// The room went away between listing and reading it.
			writeLine(&b, room, err.Error())
			continue
		}
		for _, name := range names {
			info, err := provider.DeviceInfo(room, name)
			if err != nil {
				writeLine(&b, room, err.Error())
				continue
			}
			writeLine(&b, room, info.String())
		}
	}
	return b.String()
}

func writeLine(b *strings.Builder, room, detail string) {
	fmt.Fprintf(b, "room: %s, device: %s\n", room, detail)
}
