// Package ui provides interactive input components.
package ui

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Prompt displays a prompt and reads a line of user input.
//
// Parameters:
//   - message: The prompt message to display
//
// Returns:
//   - string: The user's input, trimmed
//   - error: Any error that occurred
func Prompt(message string) (string, error) {
	fmt.Printf("%s ", InfoStyle.Render(message))

	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(input), nil
}

// PromptDefault displays a prompt with a default value used when the
// user presses enter without typing anything.
//
// Parameters:
//   - message: The prompt message to display
//   - defaultValue: Value returned on empty input
//
// Returns:
//   - string: The user's input or the default
//   - error: Any error that occurred
func PromptDefault(message, defaultValue string) (string, error) {
	input, err := Prompt(fmt.Sprintf("%s %s", message, DimStyle.Render("["+defaultValue+"]")))
	if err != nil {
		return "", err
	}
	if input == "" {
		return defaultValue, nil
	}
	return input, nil
}

// PromptConfirm displays a yes/no confirmation prompt.
//
// Parameters:
//   - message: The prompt message to display
//   - defaultYes: Whether the default is yes (true) or no (false)
//
// Returns:
//   - bool: True if user confirmed, false otherwise
//   - error: Any error that occurred
func PromptConfirm(message string, defaultYes bool) (bool, error) {
	suffix := "[y/N]"
	if defaultYes {
		suffix = "[Y/n]"
	}

	input, err := Prompt(fmt.Sprintf("%s %s", message, suffix))
	if err != nil {
		return false, err
	}

	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return defaultYes, nil
	}

	return input == "y" || input == "yes", nil
}

// PromptSelect displays a numbered selection prompt.
//
// Parameters:
//   - message: The prompt message to display
//   - options: List of options to choose from
//
// Returns:
//   - int: Index of the selected option
//   - error: Any error that occurred, including invalid selection
func PromptSelect(message string, options []string) (int, error) {
	fmt.Println(InfoStyle.Render(message))
	for i, opt := range options {
		fmt.Printf("  %s %s\n", DimStyle.Render(fmt.Sprintf("%d)", i+1)), opt)
	}

	input, err := Prompt("Select:")
	if err != nil {
		return 0, err
	}

	idx, err := strconv.Atoi(input)
	if err != nil || idx < 1 || idx > len(options) {
		return 0, fmt.Errorf("invalid selection '%s': enter a number between 1 and %d", input, len(options))
	}

	return idx - 1, nil
}
