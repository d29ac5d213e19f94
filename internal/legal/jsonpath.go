package legal

import (
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// GetField reads a dotted-path value from a legal config file without
// unmarshalling the whole document (e.g. "compliance.gdpr",
// "company.email").
//
// Parameters:
//   - path: Path to legal-config.json
//   - field: Dotted field path
//
// Returns:
//   - string: The raw JSON value at the path
//   - error: If the file is unreadable, invalid JSON, or the field is absent
func GetField(path, field string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read legal config %s: %w", path, err)
	}

	if !gjson.ValidBytes(data) {
		return "", fmt.Errorf("legal config %s is not valid JSON", path)
	}

	result := gjson.GetBytes(data, field)
	if !result.Exists() {
		return "", fmt.Errorf("field %q not found in %s", field, path)
	}

	return result.Raw, nil
}

// SetField writes a dotted-path value into a legal config file,
// preserving all unrelated fields and key order. Values "true",
// "false", and numbers are stored with their JSON type; everything
// else is stored as a string.
//
// Parameters:
//   - path: Path to legal-config.json
//   - field: Dotted field path
//   - value: The value to set
//
// Returns:
//   - error: Any read, parse, or write error
func SetField(path, field, value string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read legal config %s: %w", path, err)
	}

	if !gjson.ValidBytes(data) {
		return fmt.Errorf("legal config %s is not valid JSON", path)
	}

	updated, err := sjson.SetBytes(data, field, coerceJSONValue(value))
	if err != nil {
		return fmt.Errorf("failed to set %q: %w", field, err)
	}

	if err := os.WriteFile(path, updated, 0o644); err != nil {
		return fmt.Errorf("failed to write legal config %s: %w", path, err)
	}

	return nil
}

// coerceJSONValue maps CLI string input to a typed JSON value.
func coerceJSONValue(value string) interface{} {
	switch strings.ToLower(value) {
	case "true":
		return true
	case "false":
		return false
	}

	// Integers are common (retention_months); keep everything else a string.
	var n int
	if _, err := fmt.Sscanf(value, "%d", &n); err == nil && fmt.Sprintf("%d", n) == value {
		return n
	}

	return value
}
