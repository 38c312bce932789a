package device

import (
	"fmt"
	"math"
	"strconv"
)

// Unit is the scale a temperature reading was taken in.
type Unit uint8

// Supported temperature units.
const (
	Celsius Unit = iota
	Fahrenheit
)

// String returns the unit name.
func (u Unit) String() string {
	switch u {
	case Celsius:
		return "Celsius"
	case Fahrenheit:
		return "Fahrenheit"
	default:
		return fmt.Sprintf("Unit(%d)", uint8(u))
	}
}

// Temperature is a reading tagged with the unit it was taken in.
type Temperature struct {
	Unit  Unit
	Value float64
}

// DegreesCelsius returns a Celsius reading.
func DegreesCelsius(v float64) Temperature {
	return Temperature{Unit: Celsius, Value: v}
}

// DegreesFahrenheit returns a Fahrenheit reading.
func DegreesFahrenheit(v float64) Temperature {
	return Temperature{Unit: Fahrenheit, Value: v}
}

// AsCelsius converts the reading to whole degrees Celsius.
// Halves round away from zero.
func (t Temperature) AsCelsius() int {
	if t.Unit == Fahrenheit {
		return int(math.Round((t.Value - 32) * 5 / 9))
	}
	return int(math.Round(t.Value))
}

// AsFahrenheit converts the reading to whole degrees Fahrenheit.
// Halves round away from zero.
func (t Temperature) AsFahrenheit() int {
	if t.Unit == Fahrenheit {
		return int(math.Round(t.Value))
	}
	return int(math.Round(t.Value*1.8 + 32))
}

// String renders the reading as Unit(value), e.g. "Celsius(18)".
func (t Temperature) String() string {
	return t.Unit.String() + "(" + strconv.FormatFloat(t.Value, 'f', -1, 64) + ")"
}

// Thermometer reports a temperature. No command mutates it.
type Thermometer struct {
	Name    string
	Reading Temperature
}

// Temperature returns the raw reading.
func (t Thermometer) Temperature() Temperature {
	return t.Reading
}

// Celsius returns the reading in whole degrees Celsius.
func (t Thermometer) Celsius() int {
	return t.Reading.AsCelsius()
}

// Fahrenheit returns the reading in whole degrees Fahrenheit.
func (t Thermometer) Fahrenheit() int {
	return t.Reading.AsFahrenheit()
}
