// SPDX-License-Identifier: Unlicense OR MIT

// Package commands implements the tempconv command line.
package commands

import (
	"log"
	"os"

	"gioui.org/app"
	"github.com/spf13/cobra"

	"tempconv/internal/ui"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "tempconv",
		Short:        "Convert temperatures between Celsius, Fahrenheit and Kelvin",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			go func() {
				w := new(app.Window)
				w.Option(ui.Options()...)
				if err := ui.Run(w); err != nil {
					log.Fatal(err)
				}
				os.Exit(0)
			}()
			app.Main()
			return nil
		},
	}
	root.AddCommand(convertCmd(), screenshotCmd())
	return root
}
