// SPDX-License-Identifier: Unlicense OR MIT

package temperature

import "strconv"

// State is the converter's input value with its source and target
// units. From and To are always different.
type State struct {
	Value Temp
	From  Unit
	To    Unit
}

// NewState returns the startup state: 0°C converted to Fahrenheit.
func NewState() State {
	return State{Value: 0, From: Celsius, To: Fahrenheit}
}

// Valid reports whether s holds two distinct, declared units.
func (s State) Valid() bool {
	return s.From.Valid() && s.To.Valid() && s.From != s.To
}

// WithSource switches the source unit to u. The value is converted
// into u so the same temperature stays selected. If the target was u,
// it moves to the first unit in canonical order other than u.
func (s State) WithSource(u Unit) State {
	s.Value = Convert(s.Value, s.From, u)
	s.From = u
	if s.To == u {
		s.To = firstOther(u)
	}
	return s
}

// WithTarget selects u as the target unit. Selecting the source unit
// leaves s unchanged.
func (s State) WithTarget(u Unit) State {
	if u == s.From || !u.Valid() {
		return s
	}
	s.To = u
	return s
}

// WithValue sets the input value, clamped to the slider bounds of the
// source unit.
func (s State) WithValue(v Temp) State {
	lo, hi := SliderBounds(s.From)
	switch {
	case v < lo:
		v = lo
	case v > hi:
		v = hi
	}
	s.Value = v
	return s
}

// Targets returns the units selectable as target.
func (s State) Targets() []Unit {
	var us []Unit
	for _, u := range Units() {
		if u != s.From {
			us = append(us, u)
		}
	}
	return us
}

// Result returns the input value converted to the target unit.
func (s State) Result() Temp {
	return Convert(s.Value, s.From, s.To)
}

// String formats the result as shown in the window, for example "212°F".
func (s State) String() string {
	return Format(s.Result(), s.To)
}

// Format formats v followed by the symbol of u.
func Format(v Temp, u Unit) string {
	return strconv.Itoa(int(v)) + u.Symbol()
}

func firstOther(u Unit) Unit {
	for _, o := range Units() {
		if o != u {
			return o
		}
	}
	panic("unreachable")
}
