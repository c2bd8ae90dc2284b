// SPDX-License-Identifier: Unlicense OR MIT

// Package ui lays out the temperature converter window with Gio.
package ui

import (
	"gioui.org/app"
	"gioui.org/font"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"tempconv/temperature"
)

const Title = "Temperature Converter"

// Window size in dp. The window is not resizable.
const (
	Width  = 500
	Height = 250
)

const instructions = "Select a temperature unit to convert from:"

// UI is the converter window's widget state. It owns the
// temperature.State shown in the window.
type UI struct {
	th    *material.Theme
	state temperature.State

	slider   widget.Float
	from, to widget.Enum

	// pos is the slider position matching state.Value.
	pos float32
}

// NewTheme returns a material theme using the Go fonts.
func NewTheme() *material.Theme {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.NoSystemFonts(), text.WithCollection(gofont.Collection()))
	th.TextSize = unit.Sp(14)
	return th
}

// Options returns the window options for the converter.
func Options() []app.Option {
	sz := unit.Dp(Width)
	h := unit.Dp(Height)
	return []app.Option{
		app.Title(Title),
		app.Size(sz, h),
		app.MinSize(sz, h),
		app.MaxSize(sz, h),
	}
}

// Run handles window events until the window is destroyed.
func Run(w *app.Window) error {
	th := NewTheme()
	u := New(th)
	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			paint.Fill(gtx.Ops, th.Bg)
			u.Layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

func New(th *material.Theme) *UI {
	u := &UI{th: th}
	u.SetState(temperature.NewState())
	return u
}

func (u *UI) State() temperature.State {
	return u.state
}

// SetState replaces the state and moves the widgets to match it.
// s must be valid.
func (u *UI) SetState(s temperature.State) {
	u.state = s
	u.from.Value = s.From.Name()
	u.to.Value = s.To.Name()
	lo, hi := temperature.SliderBounds(s.From)
	u.slider.Value = position(s.Value, lo, hi)
	u.pos = u.slider.Value
}

// Layout folds pending widget input into the state, then draws the
// window contents.
func (u *UI) Layout(gtx layout.Context) layout.Dimensions {
	u.from.Update(gtx)
	u.to.Update(gtx)
	u.slider.Update(gtx)
	u.update()
	return u.layout(gtx)
}

func (u *UI) update() {
	s := u.state
	if u.slider.Value != u.pos {
		lo, hi := temperature.SliderBounds(s.From)
		s = s.WithValue(value(u.slider.Value, lo, hi))
	}
	if t, err := temperature.ParseUnit(u.from.Value); err == nil && t != s.From {
		s = s.WithSource(t)
	}
	if t, err := temperature.ParseUnit(u.to.Value); err == nil && t != s.To {
		s = s.WithTarget(t)
	}
	// Resync even when nothing changed: a rejected target selection
	// must snap back.
	u.SetState(s)
}

func (u *UI) layout(gtx layout.Context) layout.Dimensions {
	th := u.th
	return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				gtx.Constraints.Min.X = gtx.Constraints.Max.X
				l := material.H6(th, Title)
				l.Alignment = text.Middle
				l.Font.Weight = font.Bold
				return l.Layout(gtx)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
			layout.Rigid(material.Body1(th, instructions).Layout),
			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
			layout.Rigid(u.layoutSlider),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return u.layoutUnits(gtx, "Start Unit", &u.from, temperature.Units())
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return u.layoutUnits(gtx, "Final Unit", &u.to, u.state.Targets())
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
			layout.Rigid(u.layoutResult),
		)
	})
}

func (u *UI) layoutSlider(gtx layout.Context) layout.Dimensions {
	return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
		layout.Flexed(1, material.Slider(u.th, &u.slider).Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			gtx.Constraints.Min.X = gtx.Dp(64)
			l := material.Body1(u.th, temperature.Format(u.state.Value, u.state.From))
			l.Alignment = text.End
			return l.Layout(gtx)
		}),
	)
}

func (u *UI) layoutUnits(gtx layout.Context, caption string, group *widget.Enum, units []temperature.Unit) layout.Dimensions {
	children := []layout.FlexChild{
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			gtx.Constraints.Min.X = gtx.Dp(96)
			return material.Body2(u.th, caption).Layout(gtx)
		}),
	}
	for _, t := range units {
		name := t.Name()
		children = append(children, layout.Rigid(
			material.RadioButton(u.th, group, name, name).Layout,
		))
	}
	return layout.Flex{Alignment: layout.Middle}.Layout(gtx, children...)
}

func (u *UI) layoutResult(gtx layout.Context) layout.Dimensions {
	return layout.Flex{Alignment: layout.Baseline}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			l := material.Body1(u.th, "Result: ")
			l.Font.Weight = font.Bold
			return l.Layout(gtx)
		}),
		layout.Rigid(material.Body1(u.th, u.state.String()).Layout),
	)
}

// position maps v in [lo, hi] to a slider position in [0, 1].
func position(v, lo, hi temperature.Temp) float32 {
	if hi <= lo {
		return 0
	}
	p := float32(v-lo) / float32(hi-lo)
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

// value maps a slider position to the nearest whole degree in [lo, hi].
func value(pos float32, lo, hi temperature.Temp) temperature.Temp {
	return lo + temperature.Temp(pos*float32(hi-lo)+0.5)
}
