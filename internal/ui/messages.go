// Package ui provides message printing utilities.
package ui

import (
	"fmt"
	"strings"

	"golang.org/x/term"
)

// quietMode suppresses non-essential output when --quiet is set.
var quietMode bool

// SetQuietMode enables or disables quiet mode for all Print helpers.
// Errors and warnings are always printed; everything else is suppressed
// when quiet mode is on.
func SetQuietMode(quiet bool) {
	quietMode = quiet
}

// QuietMode reports whether quiet mode is active.
func QuietMode() bool {
	return quietMode
}

// Println prints an empty line.
func Println() {
	if quietMode {
		return
	}
	fmt.Println()
}

// PrintSuccess prints a success message.
//
// Parameters:
//   - format: Printf format string
//   - args: Printf arguments
func PrintSuccess(format string, args ...interface{}) {
	if quietMode {
		return
	}
	msg := fmt.Sprintf(format, args...)
	fmt.Println(SuccessStyle.Render("✓ " + msg))
}

// PrintError prints an error message. Never suppressed by quiet mode.
//
// Parameters:
//   - format: Printf format string
//   - args: Printf arguments
func PrintError(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(ErrorStyle.Render("✗ " + msg))
}

// PrintWarning prints a warning message. Never suppressed by quiet mode.
//
// Parameters:
//   - format: Printf format string
//   - args: Printf arguments
func PrintWarning(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(WarningStyle.Render("⚠ " + msg))
}

// PrintInfo prints an informational message.
//
// Parameters:
//   - format: Printf format string
//   - args: Printf arguments
func PrintInfo(format string, args ...interface{}) {
	if quietMode {
		return
	}
	msg := fmt.Sprintf(format, args...)
	fmt.Println(InfoStyle.Render(msg))
}

// PrintDim prints a dimmed message.
//
// Parameters:
//   - format: Printf format string
//   - args: Printf arguments
func PrintDim(format string, args ...interface{}) {
	if quietMode {
		return
	}
	msg := fmt.Sprintf(format, args...)
	fmt.Println(DimStyle.Render(msg))
}

// PrintTitle prints a bold section title.
//
// Parameters:
//   - format: Printf format string
//   - args: Printf arguments
func PrintTitle(format string, args ...interface{}) {
	if quietMode {
		return
	}
	msg := fmt.Sprintf(format, args...)
	fmt.Println(TitleStyle.Render(msg))
}

// PrintLink prints a labeled link or file path.
//
// Parameters:
//   - label: The link label
//   - target: The URL or path
func PrintLink(label, target string) {
	if quietMode {
		return
	}
	fmt.Printf("%s %s\n", DimStyle.Render(label+":"), LinkStyle.Render(target))
}

// PrintBox prints content in a styled box.
//
// Parameters:
//   - title: Box title
//   - content: Box content
func PrintBox(title, content string) {
	if quietMode {
		return
	}
	titleStyled := BoxTitleStyle.Render(title)
	box := BoxStyle.Render(titleStyled + "\n" + content)
	fmt.Println(box)
}

// PrintRaw prints text exactly as given, bypassing styling but not
// quiet mode. Used for captured subprocess output that must be shown
// verbatim.
//
// Parameters:
//   - text: The text to print
func PrintRaw(text string) {
	if quietMode {
		return
	}
	fmt.Print(text)
	if !strings.HasSuffix(text, "\n") {
		fmt.Println()
	}
}

// TerminalWidth returns the current terminal width, or a sensible
// default when stdout is not a terminal.
func TerminalWidth() int {
	if w, _, err := term.GetSize(0); err == nil && w > 0 {
		return w
	}
	return 80
}

// PrintTableHeader prints a table header row followed by a separator.
//
// Parameters:
//   - columns: Column names
func PrintTableHeader(columns ...string) {
	if quietMode {
		return
	}
	var cells []string
	for _, col := range columns {
		cells = append(cells, TableHeaderStyle.Render(col))
	}
	fmt.Println(strings.Join(cells, ""))

	width := TerminalWidth()
	if width > 100 {
		width = 100
	}
	fmt.Println(DimStyle.Render(strings.Repeat("─", width)))
}

// PrintTableRow prints a table data row.
//
// Parameters:
//   - values: Cell values
func PrintTableRow(values ...string) {
	if quietMode {
		return
	}
	var cells []string
	for _, val := range values {
		cells = append(cells, TableCellStyle.Render(val))
	}
	fmt.Println(strings.Join(cells, ""))
}

// PrintCheck prints a single diagnostic check result line.
// Status must be one of "ok", "warning", "error".
//
// Parameters:
//   - status: The check status
//   - name: The check name
//   - message: The human-readable result
func PrintCheck(status, name, message string) {
	var icon string
	switch status {
	case "ok":
		icon = SuccessStyle.Render("✓")
	case "warning":
		icon = WarningStyle.Render("⚠")
	case "error":
		icon = ErrorStyle.Render("✗")
	default:
		icon = DimStyle.Render("•")
	}
	fmt.Printf("%s %s %s\n", icon, TableHeaderStyle.Render(name), message)
}
