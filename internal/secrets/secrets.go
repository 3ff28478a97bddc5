// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads contact settings from a directory of plain-text files.
// Each file in the directory represents one value: the filename is the key name and the
// file contents (trimmed) are the value.
//
// Supported key files: ncbi-email, ncbi-tool.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Key names recognized by the CLI.
const (
	NCBIEmail = "ncbi-email"
	NCBITool  = "ncbi-tool"
)

// Load reads all files in dir and returns a map of filename to trimmed contents.
// A missing directory or missing files are not errors; Load returns an empty map.
// Unreadable files are reported through warn, when non-nil, and skipped.
func Load(dir string, warn func(name string, err error)) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			if warn != nil {
				warn(name, err)
			}
			continue
		}

		value := strings.TrimSpace(string(data))
		if value != "" {
			secrets[name] = value
		}
	}

	return secrets, nil
}
