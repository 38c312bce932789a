package device

import "testing"

func TestTemperature_AsFahrenheit(t *testing.T) {
	tests := []struct {
		name string
		temp Temperature
		want int
	}{
		{"celsius below zero", DegreesCelsius(-10), 14},
		{"fahrenheit passthrough", DegreesFahrenheit(35), 35},
		{"celsius rounds up", DegreesCelsius(31), 88},
		{"boiling point", DegreesCelsius(100), 212},
		{"fahrenheit half rounds away from zero", DegreesFahrenheit(-2.5), -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.temp.AsFahrenheit(); got != tt.want {
				t.Errorf("%v.AsFahrenheit() = %d, want %d", tt.temp, got, tt.want)
			}
		})
	}
}

func TestTemperature_AsCelsius(t *testing.T) {
	tests := []struct {
		name string
		temp Temperature
		want int
	}{
		{"minus forty is the same on both scales", DegreesFahrenheit(-40), -40},
		{"fahrenheit zero", DegreesFahrenheit(0), -18},
		{"freezing point", DegreesFahrenheit(32), 0},
		{"boiling point", DegreesFahrenheit(212), 100},
		{"celsius half rounds away from zero", DegreesCelsius(2.5), 3},
		{"negative celsius half rounds away from zero", DegreesCelsius(-0.5), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.temp.AsCelsius(); got != tt.want {
				t.Errorf("%v.AsCelsius() = %d, want %d", tt.temp, got, tt.want)
			}
		})
	}
}

func TestTemperature_RoundTrip(t *testing.T) {
	for _, c := range []int{-40, -10, 0, 18, 37, 100} {
		f := DegreesCelsius(float64(c)).AsFahrenheit()
		back := DegreesFahrenheit(float64(f)).AsCelsius()
		if back != c {
			t.Errorf("Celsius(%d) -> Fahrenheit(%d) -> Celsius(%d), want %d", c, f, back, c)
		}
	}
}

func TestTemperature_String(t *testing.T) {
	tests := []struct {
		temp Temperature
		want string
	}{
		{DegreesCelsius(18), "Celsius(18)"},
		{DegreesCelsius(21.5), "Celsius(21.5)"},
		{DegreesFahrenheit(-4), "Fahrenheit(-4)"},
	}

	for _, tt := range tests {
		if got := tt.temp.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestThermometer_Accessors(t *testing.T) {
	th := Thermometer{Name: "therm1", Reading: DegreesCelsius(-10)}

	if got := th.Celsius(); got != -10 {
		t.Errorf("Celsius() = %d, want -10", got)
	}
	if got := th.Fahrenheit(); got != 14 {
		t.Errorf("Fahrenheit() = %d, want 14", got)
	}
	if got := th.Temperature(); got != DegreesCelsius(-10) {
		t.Errorf("Temperature() = %v, want Celsius(-10)", got)
	}
}
