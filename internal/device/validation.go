package device

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

const maxNameLength = 100

// ValidateName checks that a device or room name is usable.
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidName)
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidName, maxNameLength)
	}
	return nil
}

// FoldName returns the identity key for a device or room name.
// Names that differ only in letter case fold to the same key.
func FoldName(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// SameName reports whether two names identify the same device or room.
func SameName(a, b string) bool {
	return FoldName(a) == FoldName(b)
}

// ValidateDevice checks that d holds a variant with a valid name.
func ValidateDevice(d Device) error {
	if d.kind == KindUnknown {
		return fmt.Errorf("%w: no device variant set", ErrInvalidDevice)
	}
	return ValidateName(d.Name())
}
