// SPDX-License-Identifier: Unlicense OR MIT

// Package temperature implements integer temperature conversion between
// Celsius, Fahrenheit and Kelvin, and the state record behind the
// converter window.
package temperature

import (
	"errors"
	"fmt"
	"strings"
)

// Unit is a temperature scale.
type Unit uint8

// The declaration order is the canonical unit order.
const (
	Celsius Unit = iota
	Fahrenheit
	Kelvin
)

// ErrUnknownUnit is returned for unit names and values outside the
// three supported scales.
var ErrUnknownUnit = errors.New("unknown temperature unit")

var units = [...]struct {
	name, sym string
	aliases   []string
}{
	Celsius:    {"Celsius", "°C", []string{"c", "celsius", "°c", "degc"}},
	Fahrenheit: {"Fahrenheit", "°F", []string{"f", "fahrenheit", "°f", "degf"}},
	Kelvin:     {"Kelvin", "K", []string{"k", "kelvin"}},
}

// Units returns all units in canonical order.
func Units() []Unit {
	return []Unit{Celsius, Fahrenheit, Kelvin}
}

// Valid reports whether u is one of the declared units.
func (u Unit) Valid() bool {
	return int(u) < len(units)
}

// Name returns the display name of u.
func (u Unit) Name() string {
	if !u.Valid() {
		return fmt.Sprintf("Unit(%d)", uint8(u))
	}
	return units[u].name
}

// Symbol returns the symbol appended to values of u, such as "°F".
func (u Unit) Symbol() string {
	if !u.Valid() {
		return "?"
	}
	return units[u].sym
}

func (u Unit) String() string {
	return u.Name()
}

// ParseUnit parses a unit name, symbol or single letter,
// ignoring case.
func ParseUnit(s string) (Unit, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, u := range Units() {
		for _, a := range units[u].aliases {
			if key == a {
				return u, nil
			}
		}
	}
	return 0, fmt.Errorf("temperature: %q: %w", s, ErrUnknownUnit)
}
