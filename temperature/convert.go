// SPDX-License-Identifier: Unlicense OR MIT

package temperature

import (
	"errors"
	"fmt"
	"math"
)

// Temp is a whole-degree temperature value.
type Temp int16

// ErrOutOfRange is returned by ConvertChecked when a conversion does not
// fit in a Temp.
var ErrOutOfRange = errors.New("temperature out of range")

// Offsets of the Kelvin intermediate. Absolute zero is taken as -273°C
// and -459°F.
const (
	kelvinOffset     = 273
	fahrenheitOffset = 32
	fahrenheitZero   = 459
)

// Convert converts v from one unit to another through Kelvin. All
// arithmetic is done in Temp: division truncates toward zero, and values
// outside the int16 range wrap around. Use ConvertChecked where wrapping
// must be detected.
//
// Invalid units are treated as Kelvin.
func Convert(v Temp, from, to Unit) Temp {
	if from == to {
		return v
	}
	var k Temp
	switch from {
	case Celsius:
		k = v + kelvinOffset
	case Fahrenheit:
		k = (v-fahrenheitOffset)*5/9 + kelvinOffset
	default:
		k = v
	}
	switch to {
	case Celsius:
		return k - kelvinOffset
	case Fahrenheit:
		return k*9/5 - fahrenheitZero
	default:
		return k
	}
}

// ConvertChecked is like Convert but reports an error wrapping
// ErrOutOfRange instead of wrapping around. Whenever it succeeds the
// result equals Convert(v, from, to).
func ConvertChecked(v Temp, from, to Unit) (Temp, error) {
	if !from.Valid() {
		return 0, fmt.Errorf("temperature: from %d: %w", from, ErrUnknownUnit)
	}
	if !to.Valid() {
		return 0, fmt.Errorf("temperature: to %d: %w", to, ErrUnknownUnit)
	}
	if from == to {
		return v, nil
	}
	c := checker{v: int32(v)}
	var k int32
	switch from {
	case Celsius:
		k = c.step(c.v + kelvinOffset)
	case Fahrenheit:
		d := c.step(c.v - fahrenheitOffset)
		d = c.step(d * 5)
		k = c.step(d/9 + kelvinOffset)
	case Kelvin:
		k = c.v
	}
	var r int32
	switch to {
	case Celsius:
		r = c.step(k - kelvinOffset)
	case Fahrenheit:
		m := c.step(k * 9)
		r = c.step(m/5 - fahrenheitZero)
	case Kelvin:
		r = k
	}
	if c.overflow {
		return 0, fmt.Errorf("temperature: %d%s in %s: %w", v, from.Symbol(), to.Name(), ErrOutOfRange)
	}
	return Temp(r), nil
}

// checker records whether any intermediate value left the Temp range.
type checker struct {
	v        int32
	overflow bool
}

func (c *checker) step(x int32) int32 {
	if x < math.MinInt16 || x > math.MaxInt16 {
		c.overflow = true
	}
	return x
}

// SliderBounds returns the input range for u: 0 to 100 degrees Celsius
// expressed in u.
func SliderBounds(u Unit) (lo, hi Temp) {
	return Convert(0, Celsius, u), Convert(100, Celsius, u)
}
