// Package ui holds the terminal styling shared by every command
package ui

import (
	"github.com/pterm/pterm"
)

// DarkTheme selects the light colour variants that read better on a dark
// terminal background.
var DarkTheme bool

// UnknownMuscleGroup is shown for exercises logged without a muscle group.
const UnknownMuscleGroup = "Unknown"

func Green(a any) string {
	if DarkTheme {
		return pterm.LightGreen(a)
	}

	return pterm.Green(a)
}

func Cyan(a any) string {
	if DarkTheme {
		return pterm.LightCyan(a)
	}

	return pterm.Cyan(a)
}

func Yellow(a any) string {
	if DarkTheme {
		return pterm.LightYellow(a)
	}

	return pterm.Yellow(a)
}

func Red(a any) string {
	if DarkTheme {
		return pterm.LightRed(a)
	}

	return pterm.Red(a)
}

func Highlight(a any) string {
	if DarkTheme {
		return pterm.LightWhite(a)
	}

	return pterm.Black(a)
}

// MuscleGroup returns m, or the placeholder if m is empty.
func MuscleGroup(m string) string {
	if m == "" {
		return UnknownMuscleGroup
	}

	return m
}

// DisableStyling turns off all colours and prefixes provided by pterm.
func DisableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}
