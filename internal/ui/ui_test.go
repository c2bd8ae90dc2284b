// SPDX-License-Identifier: Unlicense OR MIT

package ui

import (
	"image"
	"testing"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tempconv/temperature"
)

func newContext() layout.Context {
	return layout.Context{
		Ops:         new(op.Ops),
		Metric:      unit.Metric{PxPerDp: 1, PxPerSp: 1},
		Constraints: layout.Exact(image.Pt(Width, Height)),
	}
}

func TestInitialState(t *testing.T) {
	u := New(NewTheme())
	dims := u.Layout(newContext())
	assert.NotZero(t, dims.Size.Y)
	assert.Equal(t, temperature.NewState(), u.State())
	assert.Equal(t, "Celsius", u.from.Value)
	assert.Equal(t, "Fahrenheit", u.to.Value)
}

func TestSourceSelection(t *testing.T) {
	u := New(NewTheme())
	gtx := newContext()
	u.Layout(gtx)

	u.from.Value = temperature.Fahrenheit.Name()
	u.Layout(gtx)
	want := temperature.State{Value: 32, From: temperature.Fahrenheit, To: temperature.Celsius}
	assert.Equal(t, want, u.State())
	assert.Equal(t, "Celsius", u.to.Value)
	assert.Equal(t, float32(0), u.slider.Value)
}

func TestSourceSelectionKeepsTemperature(t *testing.T) {
	u := New(NewTheme())
	u.SetState(temperature.State{Value: 100, From: temperature.Celsius, To: temperature.Fahrenheit})
	gtx := newContext()

	u.from.Value = temperature.Kelvin.Name()
	u.Layout(gtx)
	s := u.State()
	assert.Equal(t, temperature.Temp(373), s.Value)
	assert.Equal(t, temperature.Fahrenheit, s.To)
	assert.Equal(t, "212°F", s.String())
	assert.Equal(t, float32(1), u.slider.Value)
}

func TestTargetSelection(t *testing.T) {
	u := New(NewTheme())
	gtx := newContext()

	u.to.Value = temperature.Kelvin.Name()
	u.Layout(gtx)
	assert.Equal(t, temperature.Kelvin, u.State().To)

	// The source unit is not a valid target.
	u.to.Value = temperature.Celsius.Name()
	u.Layout(gtx)
	assert.Equal(t, temperature.Kelvin, u.State().To)
	assert.Equal(t, "Kelvin", u.to.Value)
}

func TestSliderMovesValue(t *testing.T) {
	tests := []struct {
		from temperature.Unit
		pos  float32
		want temperature.Temp
	}{
		{temperature.Celsius, 1, 100},
		{temperature.Celsius, 0.5, 50},
		{temperature.Celsius, 0.254, 25},
		{temperature.Fahrenheit, 0.5, 122},
		{temperature.Kelvin, 0, 273},
		{temperature.Kelvin, 1, 373},
	}
	for _, tc := range tests {
		u := New(NewTheme())
		s := temperature.NewState().WithSource(tc.from)
		u.SetState(s)
		u.slider.Value = tc.pos
		u.Layout(newContext())
		assert.Equal(t, tc.want, u.State().Value, "%s at %v", tc.from, tc.pos)
		require.True(t, u.State().Valid())
	}
}

func TestPositionValue(t *testing.T) {
	for _, from := range temperature.Units() {
		lo, hi := temperature.SliderBounds(from)
		for v := lo; v <= hi; v++ {
			assert.Equal(t, v, value(position(v, lo, hi), lo, hi))
		}
		assert.Equal(t, float32(0), position(lo-10, lo, hi))
		assert.Equal(t, float32(1), position(hi+10, lo, hi))
	}
	assert.Equal(t, float32(0), position(5, 5, 5))
}

func BenchmarkUI(b *testing.B) {
	u := New(NewTheme())
	gtx := newContext()
	for i := 0; i < b.N; i++ {
		gtx.Ops.Reset()
		u.Layout(gtx)
	}
}
