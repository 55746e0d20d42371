package errors

import (
	"strings"
	"testing"
)

func TestValidateTaskID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"object id", "65f1c0a9e4b0d2a1c3f4e5d6", false},
		{"with spaces", "task 12", false},
		{"unicode", "tâche-1", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", MaxTaskIDLength+1), true},
		{"newline", "a\nb", true},
		{"null byte", "a\x00b", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTaskID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTaskID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidTask) {
				t.Errorf("ValidateTaskID(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidTask)
			}
		})
	}
}

func TestValidateProjectID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"object id", "65f1c0a9e4b0d2a1c3f4e5d6", false},
		{"slug", "website-redesign", false},
		{"underscore", "q3_launch", false},

		{"empty", "", true},
		{"leading dash", "-x", true},
		{"slash", "a/b", true},
		{"dot", "a.b", true},
		{"space", "a b", true},
		{"too long", strings.Repeat("a", MaxProjectIDLength+1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProjectID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateProjectID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "tasks.json", false},
		{"absolute", "/tmp/out/graph.svg", false},
		{"nested", "out/graph.svg", false},

		{"empty", "", true},
		{"null byte", "a\x00.json", true},
		{"control", "a\x01.json", true},
		{"too long", strings.Repeat("a", MaxPathLength+1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateFormat(t *testing.T) {
	got, err := ValidateFormat(" SVG ", "svg", "png")
	if err != nil || got != "svg" {
		t.Errorf("ValidateFormat(SVG) = %q, %v, want svg, nil", got, err)
	}
	if _, err := ValidateFormat("gif", "svg", "png"); !Is(err, ErrCodeInvalidFormat) {
		t.Errorf("ValidateFormat(gif) error = %v, want %v", err, ErrCodeInvalidFormat)
	}
}
