// SPDX-License-Identifier: Unlicense OR MIT

package commands

import (
	"bytes"
	"fmt"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	"tempconv/internal/ui"
	"tempconv/temperature"
)

func screenshotCmd() *cobra.Command {
	var (
		value    string
		from, to string
		scale    float32
	)
	cmd := &cobra.Command{
		Use:   "screenshot FILE",
		Short: "Save a PNG screenshot of the window and exit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := screenshotState(value, from, to)
			if err != nil {
				return err
			}
			if scale <= 0 {
				return fmt.Errorf("invalid scale %v", scale)
			}
			img, err := ui.Screenshot(s, scale)
			if err != nil {
				return fmt.Errorf("failed to render screenshot: %w", err)
			}
			var buf bytes.Buffer
			if err := png.Encode(&buf, img); err != nil {
				return err
			}
			return os.WriteFile(args[0], buf.Bytes(), 0o666)
		},
	}
	cmd.Flags().StringVar(&value, "value", "0", "input value, clamped to the slider range")
	cmd.Flags().StringVarP(&from, "from", "f", "C", "source unit")
	cmd.Flags().StringVarP(&to, "to", "t", "F", "target unit")
	cmd.Flags().Float32Var(&scale, "scale", 1.5, "pixels per dp")
	return cmd
}

func screenshotState(value, from, to string) (temperature.State, error) {
	v, err := parseTemp(value)
	if err != nil {
		return temperature.State{}, err
	}
	f, err := temperature.ParseUnit(from)
	if err != nil {
		return temperature.State{}, err
	}
	t, err := temperature.ParseUnit(to)
	if err != nil {
		return temperature.State{}, err
	}
	if f == t {
		return temperature.State{}, fmt.Errorf("source and target unit are both %s", f)
	}
	s := temperature.State{From: f, To: t}
	return s.WithValue(v), nil
}
