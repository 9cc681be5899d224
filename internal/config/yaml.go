package config

import (
	"bytes"
	"fmt"
	"os"

	yaml "go.yaml.in/yaml/v3"
)

// LoadDocument reads the YAML document at path.
//
// Returns (nil, nil) when path cannot be stat'ed as a regular file (missing,
// a directory, a device, an unreachable parent). Read and parse failures of
// an existing file are a *DocumentError.
func LoadDocument(path string) (*Document, error) {
	fi, err := os.Stat(path)
	if err != nil || !fi.Mode().IsRegular() {
		return nil, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &DocumentError{Path: path, Err: err}
	}
	doc, err := parseDocument(b)
	if err != nil {
		return nil, &DocumentError{Path: path, Err: err}
	}
	return doc, nil
}

func parseDocument(data []byte) (*Document, error) {
	var doc Document
	// Empty or comment-only files decode to the zero Document.
	if len(bytes.TrimSpace(data)) == 0 {
		return &doc, nil
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return &doc, nil
}

// Redacted renders the document as YAML with credentials masked, for debug output.
func (d *Document) Redacted() string {
	if d == nil {
		return ""
	}
	cp := *d
	cp.APIKey = mask(d.APIKey)
	cp.AppKey = mask(d.AppKey)
	b, err := yaml.Marshal(&cp)
	if err != nil {
		return fmt.Sprintf("<unprintable: %v>", err)
	}
	return string(b)
}

func mask(s *string) *string {
	if s == nil {
		return nil
	}
	m := Mask(*s)
	return &m
}

// Mask hides all but the last four characters of a secret.
func Mask(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 4 {
		return "****"
	}
	return "****" + s[len(s)-4:]
}
