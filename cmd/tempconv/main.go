// SPDX-License-Identifier: Unlicense OR MIT

package main

// A Gio program that converts temperatures between Celsius, Fahrenheit
// and Kelvin.

import (
	"os"

	"tempconv/cmd/tempconv/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
