/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package actionsenv handles the file-based outputs of a GitHub Actions
// step: exported environment variables and the prompt file handed to the
// next step.
package actionsenv

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExportVariable appends name=value to the environment file the runner
// watches (the path in $GITHUB_ENV), making it visible to subsequent steps.
// Multiline values use the runner's heredoc framing.
func ExportVariable(envFile, name, value string) error {
	f, err := os.OpenFile(envFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening environment file %q: %w", envFile, err)
	}
	defer f.Close()

	var entry string
	if strings.Contains(value, "\n") {
		delimiter := "AGENTPREP_EOF"
		for strings.Contains(value, delimiter) {
			delimiter += "_"
		}
		entry = fmt.Sprintf("%s<<%s\n%s\n%s\n", name, delimiter, value, delimiter)
	} else {
		entry = fmt.Sprintf("%s=%s\n", name, value)
	}

	if _, err := f.WriteString(entry); err != nil {
		return fmt.Errorf("writing to environment file %q: %w", envFile, err)
	}
	return nil
}

// WritePromptFile writes the prompt to path, creating parent directories.
// The content lands in a temp file first and is renamed into place, so a
// failure mid-write never leaves a truncated prompt observable at path.
func WritePromptFile(path, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating prompt directory %q: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp prompt file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return fmt.Errorf("writing prompt: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp prompt file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("moving prompt into place: %w", err)
	}
	return nil
}
