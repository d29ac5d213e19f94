// Package main provides tests for shared CLI helpers.
package main

import (
	"strings"
	"testing"
)

func TestValidateTargetName_Valid(t *testing.T) {
	valid := []string{
		"backend",
		"frontend",
		"web-api",
		"worker_2",
		"a",
	}

	for _, name := range valid {
		if err := validateTargetName(name); err != nil {
			t.Errorf("validateTargetName(%q) = %v, want nil", name, err)
		}
	}
}

func TestValidateTargetName_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		wantErr string
	}{
		{"empty", "", "cannot be empty"},
		{"spaces", "my target", "cannot contain spaces"},
		{"path separator", "foo/bar", "path separators"},
		{"uppercase", "Backend", "invalid character"},
		{"reserved", "check", "reserved command name"},
		{"too long", strings.Repeat("a", maxTargetNameLen+1), "too long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTargetName(tt.target)
			if err == nil {
				t.Fatalf("validateTargetName(%q) = nil, want error", tt.target)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestParseNonNegative(t *testing.T) {
	if n, err := parseNonNegative("25"); err != nil || n != 25 {
		t.Errorf("parseNonNegative(25) = %d, %v", n, err)
	}
	if _, err := parseNonNegative("-1"); err == nil {
		t.Error("expected error for negative value")
	}
	if _, err := parseNonNegative("abc"); err == nil {
		t.Error("expected error for non-integer value")
	}
}
