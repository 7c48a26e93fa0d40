package core

// Meter is a labeled gauge shown by the platform status bar.
type Meter struct {
	Label string
	Value float64
	Max   float64
	Color Color
}

// Fraction returns Value/Max clamped to [0, 1].
func (m Meter) Fraction() float64 {
	if m.Max <= 0 {
		return 0
	}
	return ClampF(m.Value/m.Max, 0, 1)
}

// MeterSource is implemented by games that expose gauges.
type MeterSource interface {
	Meters() []Meter
}
