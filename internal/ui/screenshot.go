// SPDX-License-Identifier: Unlicense OR MIT

package ui

import (
	"image"

	"gioui.org/gpu/headless"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/unit"

	"tempconv/temperature"
)

// Screenshot renders a single frame of the window showing s, scaled by
// scale pixels per dp.
func Screenshot(s temperature.State, scale float32) (*image.RGBA, error) {
	sz := image.Point{X: int(Width * scale), Y: int(Height * scale)}
	w, err := headless.NewWindow(sz.X, sz.Y)
	if err != nil {
		return nil, err
	}
	defer w.Release()

	th := NewTheme()
	u := New(th)
	u.SetState(s)
	gtx := layout.Context{
		Ops: new(op.Ops),
		Metric: unit.Metric{
			PxPerDp: scale,
			PxPerSp: scale,
		},
		Constraints: layout.Exact(sz),
	}
	paint.Fill(gtx.Ops, th.Bg)
	u.Layout(gtx)
	if err := w.Frame(gtx.Ops); err != nil {
		return nil, err
	}
	img := image.NewRGBA(image.Rectangle{Max: sz})
	if err := w.Screenshot(img); err != nil {
		return nil, err
	}
	return img, nil
}
