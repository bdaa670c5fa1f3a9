package ui

import (
	"os"
	"runtime"
)

// ANSI Color codes
const (
	colorReset = "\033[0m"
	colorBold  = "\033[1m"
	colorDim   = "\033[2m"

	colorBrightRed    = "\033[91m"
	colorBrightGreen  = "\033[92m"
	colorBrightYellow = "\033[93m"
	colorBrightBlue   = "\033[94m"
	colorBrightPurple = "\033[95m"
	colorBrightCyan   = "\033[96m"
	colorBrightWhite  = "\033[97m"
)

// colorsEnabled is false on Windows consoles and when NO_COLOR is set.
func colorsEnabled() bool {
	if runtime.GOOS == "windows" {
		return false
	}
	_, noColor := os.LookupEnv("NO_COLOR")
	return !noColor
}

// Text coloring helpers
func Colorize(text, color string) string {
	if !colorsEnabled() {
		return text
	}

	return color + text + colorReset
}

func BrightRed(text string) string    { return Colorize(text, colorBrightRed) }
func BrightGreen(text string) string  { return Colorize(text, colorBrightGreen) }
func BrightYellow(text string) string { return Colorize(text, colorBrightYellow) }
func BrightBlue(text string) string   { return Colorize(text, colorBrightBlue) }
func BrightPurple(text string) string { return Colorize(text, colorBrightPurple) }
func BrightCyan(text string) string   { return Colorize(text, colorBrightCyan) }
func BrightWhite(text string) string  { return Colorize(text, colorBrightWhite) }

func Bold(text string) string { return Colorize(text, colorBold) }
func Dim(text string) string  { return Colorize(text, colorDim) }

// Shortcuts for common message types
func Success(text string) string { return BrightGreen("✅ " + text) }
func Error(text string) string   { return BrightRed("❌ " + text) }
func Warning(text string) string { return BrightYellow("⚠️  " + text) }
func Info(text string) string    { return BrightBlue("ℹ️  " + text) }
func Tool(text string) string    { return BrightCyan("🔧 " + text) }
