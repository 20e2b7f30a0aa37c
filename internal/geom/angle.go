package geom

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	Pi  = math.Pi
	Tau = 2 * math.Pi
)

// Unit names the scale an angle value is expressed in.
type Unit int

const (
	Turns Unit = iota
	Radians
	Degrees
	Gradians
)

func (u Unit) String() string {
	switch u {
	case Turns:
		return "turns"
	case Radians:
		return "radians"
	case Degrees:
		return "degrees"
	case Gradians:
		return "gradians"
	default:
		return fmt.Sprintf("unit(%d)", int(u))
	}
}

// ParseUnit accepts the unit names used by String plus the usual short forms.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "turns", "turn", "tr":
		return Turns, nil
	case "radians", "radian", "rad", "":
		return Radians, nil
	case "degrees", "degree", "deg":
		return Degrees, nil
	case "gradians", "gradian", "grad", "gon":
		return Gradians, nil
	}
	return 0, &InvalidUnitError{Name: s}
}

// factor converts a value in unit u to radians.
func (u Unit) factor() (float64, bool) {
	switch u {
	case Turns:
		return Tau, true
	case Radians:
		return 1, true
	case Degrees:
		return Pi / 180, true
	case Gradians:
		return Pi / 200, true
	}
	return 0, false
}

// Angle is a unit-agnostic angle. The value is stored in radians; units only
// matter when converting in or out.
type Angle struct {
	rad float64
}

func NewAngle(value float64, unit Unit) (Angle, error) {
	var a Angle
	if err := a.Set(value, unit); err != nil {
		return Angle{}, err
	}
	return a, nil
}

func Rad(v float64) Angle  { return Angle{rad: v} }
func Deg(v float64) Angle  { return Angle{rad: v * (Pi / 180)} }
func Turn(v float64) Angle { return Angle{rad: v * Tau} }

// Set replaces the angle with value expressed in unit. The angle is left
// untouched when the unit is unknown.
func (a *Angle) Set(value float64, unit Unit) error {
	f, ok := unit.factor()
	if !ok {
		return &InvalidUnitError{Unit: unit}
	}
	a.rad = value * f
	return nil
}

func (a Angle) Turns() float64    { return a.rad / Tau }
func (a Angle) Radians() float64  { return a.rad }
func (a Angle) Degrees() float64  { return a.rad * (180 / Pi) }
func (a Angle) Gradians() float64 { return a.rad * (200 / Pi) }

// In converts the angle to unit.
func (a Angle) In(unit Unit) (float64, error) {
	f, ok := unit.factor()
	if !ok {
		return 0, &InvalidUnitError{Unit: unit}
	}
	return a.rad / f, nil
}

// Mod wraps the angle into [0, m). Negative angles wrap from the top, so
// -90° mod 180° is 90°.
func (a Angle) Mod(m Angle) Angle {
	r := math.Mod(a.rad, m.rad)
	if r < 0 {
		r += m.rad
	}
	if r >= m.rad {
		r = 0
	}
	return Angle{rad: r}
}

// Wrap is Mod with a full turn.
func (a Angle) Wrap() Angle {
	return a.Mod(Angle{rad: Tau})
}

func (a Angle) Add(o Angle) Angle   { return Angle{rad: a.rad + o.rad} }
func (a Angle) Sub(o Angle) Angle   { return Angle{rad: a.rad - o.rad} }
func (a Angle) Mul(s float64) Angle { return Angle{rad: a.rad * s} }
func (a Angle) Div(s float64) Angle { return Angle{rad: a.rad / s} }
func (a Angle) Neg() Angle          { return Angle{rad: -a.rad} }
func (a Angle) Sin() float64        { return math.Sin(a.rad) }
func (a Angle) Cos() float64        { return math.Cos(a.rad) }

// Equal is exact. Storage is canonical so no cross-unit tolerance is needed,
// but arithmetic results usually want ApproxEqual.
func (a Angle) Equal(o Angle) bool { return a.rad == o.rad }

func (a Angle) String() string { return fmt.Sprintf("%grad", a.rad) }

func (a Angle) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(a.rad, 'g', -1, 64)), nil
}

// ApproxEqual compares the radian values within tol.
func (a Angle) ApproxEqual(o Angle, tol float64) bool {
	return math.Abs(a.rad-o.rad) <= tol
}
