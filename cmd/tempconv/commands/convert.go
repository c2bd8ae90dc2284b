// SPDX-License-Identifier: Unlicense OR MIT

package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tempconv/temperature"
)

func convertCmd() *cobra.Command {
	var from, to string
	var checked bool
	cmd := &cobra.Command{
		Use:   "convert VALUE",
		Short: "Convert a single value and print the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseTemp(args[0])
			if err != nil {
				return err
			}
			f, err := temperature.ParseUnit(from)
			if err != nil {
				return err
			}
			t, err := temperature.ParseUnit(to)
			if err != nil {
				return err
			}
			r := temperature.Convert(v, f, t)
			if checked {
				if r, err = temperature.ConvertChecked(v, f, t); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), temperature.Format(r, t))
			return nil
		},
	}
	cmd.Flags().StringVarP(&from, "from", "f", "C", "unit to convert from")
	cmd.Flags().StringVarP(&to, "to", "t", "F", "unit to convert to")
	cmd.Flags().BoolVar(&checked, "checked", false, "fail instead of wrapping on overflow")
	return cmd
}

func parseTemp(s string) (temperature.Temp, error) {
	v, err := strconv.ParseInt(s, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid temperature %q: %w", s, err)
	}
	return temperature.Temp(v), nil
}
