package io

import (
	"path/filepath"
	"strings"

	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/errors"
)

// Format is a task file encoding.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat parses a format name ("json", "yaml" or "yml").
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported task file format %q (want json or yaml)", s)
}

// DetectFormat picks the format from a file extension.
func DetectFormat(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", errors.New(errors.ErrCodeInvalidFormat, "cannot detect format of %s: no extension", path)
	}
	return ParseFormat(ext)
}

// document is the wrapped file form.
type document struct {
	Project string     `json:"project,omitempty" yaml:"project,omitempty"`
	Tasks   []taskJSON `json:"tasks" yaml:"tasks"`
}
