package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

const (
	// BoxWidth is the standard width for display boxes
	BoxWidth = 80
)

// ColorScheme defines a set of colors for consistent UI formatting
type ColorScheme struct {
	Header   *color.Color // For box borders and section headers
	Title    *color.Color // For main titles
	Subtitle *color.Color // For section titles
	Normal   *color.Color // For normal text
	Param    *color.Color // For parameter names
	Label    *color.Color // For result field labels
	Value    *color.Color // For result field values
	Example  *color.Color // For example commands
	Result   *color.Color // For result messages
	Error    *color.Color // For error messages
}

// DefaultColorScheme returns the default color scheme for the application
func DefaultColorScheme() *ColorScheme {
	return &ColorScheme{
		Header:   color.New(color.FgBlue, color.Bold),
		Title:    color.New(color.FgHiWhite, color.Bold),
		Subtitle: color.New(color.FgBlue),
		Normal:   color.New(color.FgWhite),
		Param:    color.New(color.FgCyan),
		Label:    color.New(color.FgCyan),
		Value:    color.New(color.FgHiCyan),
		Example:  color.New(color.FgGreen),
		Result:   color.New(color.FgBlue),
		Error:    color.New(color.FgRed),
	}
}

// PrintHeader prints a formatted header box with the given title
func PrintHeader(cs *ColorScheme, title string) {
	if len(title) > BoxWidth-6 {
		title = title[:BoxWidth-9] + "..."
	}

	padding := BoxWidth - 4 - len(title)
	if padding < 0 {
		padding = 0
	}

	fmt.Println()
	cs.Header.Println("╭─────────────────────────────────────────────────────────────────────────────╮")
	cs.Header.Printf("│  ")
	cs.Title.Print(title)
	cs.Header.Printf("%s│\n", strings.Repeat(" ", padding))
	cs.Header.Println("╰─────────────────────────────────────────────────────────────────────────────╯")
	fmt.Println()
}

// PrintFooter prints a formatted footer box with the given message
func PrintFooter(cs *ColorScheme, message string) {
	if len(message) > BoxWidth-6 {
		message = message[:BoxWidth-9] + "..."
	}

	padding := BoxWidth - 4 - len(message)
	if padding < 0 {
		padding = 0
	}

	fmt.Println()
	cs.Header.Println("╭──────────────────────────────────────────────────────────────────────────────╮")
	cs.Header.Printf("│  ")
	cs.Result.Print(message)
	cs.Header.Printf("%s│\n", strings.Repeat(" ", padding))
	cs.Header.Println("╰──────────────────────────────────────────────────────────────────────────────╯")
	fmt.Println()
}

// PrintField prints an aligned label/value pair from a conversion result
func PrintField(cs *ColorScheme, label, value string) {
	cs.Label.Printf("  %-14s", label)
	cs.Value.Println(value)
}

// PrintOption prints a command line option with description
func PrintOption(cs *ColorScheme, flag, description string) {
	cs.Normal.Print("  ")
	cs.Param.Print(flag)
	cs.Normal.Println(description)
}

// PrintExample prints a usage example
func PrintExample(cs *ColorScheme, example, description string) {
	cs.Example.Printf("  %s", example)
	if description != "" {
		cs.Example.Printf("  # %s", description)
	}
	fmt.Println()
}

// PrintSectionHeader prints a section header
func PrintSectionHeader(cs *ColorScheme, title string) {
	cs.Subtitle.Println(title)
}
