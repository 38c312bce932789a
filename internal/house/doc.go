// Package house provides the room model of the smart house.
//
// A House is an ordered set of Rooms. Each Room holds the names of the
// devices placed in it, not the devices themselves; live device state is
// owned by the device Registry. Room and device names are unique
// case-insensitively.
//
// # Thread Safety
//
// House is safe for concurrent use from multiple goroutines. Room values are
// plain data and are copied into the House on AddRoom.
package house
