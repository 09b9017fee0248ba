/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package actionsenv_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"chainguard.dev/agentprep/actionsenv"
	"github.com/stretchr/testify/require"
)

func TestExportVariable(t *testing.T) {
	t.Run("single line", func(t *testing.T) {
		envFile := filepath.Join(t.TempDir(), "env")
		require.NoError(t, actionsenv.ExportVariable(envFile, "ALLOWED_TOOLS", "Edit,Glob"))

		got, err := os.ReadFile(envFile)
		require.NoError(t, err)
		if string(got) != "ALLOWED_TOOLS=Edit,Glob\n" {
			t.Errorf("env file: got = %q, wanted = %q", got, "ALLOWED_TOOLS=Edit,Glob\n")
		}
	})

	t.Run("appends to existing entries", func(t *testing.T) {
		envFile := filepath.Join(t.TempDir(), "env")
		require.NoError(t, actionsenv.ExportVariable(envFile, "A", "1"))
		require.NoError(t, actionsenv.ExportVariable(envFile, "B", "2"))

		got, err := os.ReadFile(envFile)
		require.NoError(t, err)
		if string(got) != "A=1\nB=2\n" {
			t.Errorf("env file: got = %q, wanted = %q", got, "A=1\nB=2\n")
		}
	})

	t.Run("multiline value uses heredoc framing", func(t *testing.T) {
		envFile := filepath.Join(t.TempDir(), "env")
		require.NoError(t, actionsenv.ExportVariable(envFile, "NOTES", "line one\nline two"))

		got, err := os.ReadFile(envFile)
		require.NoError(t, err)
		want := "NOTES<<AGENTPREP_EOF\nline one\nline two\nAGENTPREP_EOF\n"
		if string(got) != want {
			t.Errorf("env file: got = %q, wanted = %q", got, want)
		}
	})

	t.Run("delimiter collision extends the delimiter", func(t *testing.T) {
		envFile := filepath.Join(t.TempDir(), "env")
		value := "sneaky\nAGENTPREP_EOF\ntail"
		require.NoError(t, actionsenv.ExportVariable(envFile, "NOTES", value))

		got, err := os.ReadFile(envFile)
		require.NoError(t, err)
		if !strings.HasPrefix(string(got), "NOTES<<AGENTPREP_EOF_\n") {
			t.Errorf("delimiter not extended past the colliding value: %q", got)
		}
	})
}

func TestWritePromptFile(t *testing.T) {
	t.Run("creates parent directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "agentprep", "prompt.txt")
		require.NoError(t, actionsenv.WritePromptFile(path, "do the thing"))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		if string(got) != "do the thing" {
			t.Errorf("prompt file: got = %q, wanted = %q", got, "do the thing")
		}
	})

	t.Run("overwrites an existing prompt", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "prompt.txt")
		require.NoError(t, actionsenv.WritePromptFile(path, "first"))
		require.NoError(t, actionsenv.WritePromptFile(path, "second"))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		if string(got) != "second" {
			t.Errorf("prompt file: got = %q, wanted = %q", got, "second")
		}
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "prompt.txt")
		require.NoError(t, actionsenv.WritePromptFile(path, "content"))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		if len(entries) != 1 || entries[0].Name() != "prompt.txt" {
			names := make([]string, 0, len(entries))
			for _, e := range entries {
				names = append(names, e.Name())
			}
			t.Errorf("directory contents: got = %v, wanted only prompt.txt", names)
		}
	})
}
