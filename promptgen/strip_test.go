/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package promptgen_test

import (
	"strings"
	"testing"

	"chainguard.dev/agentprep/promptgen"
)

func TestStripHTMLComments(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"leading comment", "<!-- hidden -->do the thing", "do the thing"},
		{"trailing comment", "do the thing<!-- hidden -->", "do the thing"},
		{"embedded comment", "do<!-- hidden --> the thing", "do the thing"},
		{"multiline comment", "do the thing<!--\nline one\nline two\n-->", "do the thing"},
		{"multiple comments", "<!-- a -->do<!-- b --> the thing<!-- c -->", "do the thing"},
		{"no comments", "do the thing", "do the thing"},
		{"only a comment", "<!-- nothing else -->", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := promptgen.StripHTMLComments(tc.in)
			if got != tc.want {
				t.Errorf("StripHTMLComments(%q): got = %q, wanted = %q", tc.in, got, tc.want)
			}
			if strings.Contains(got, "<!--") || strings.Contains(got, "-->") {
				t.Errorf("residual comment markers in %q", got)
			}
		})
	}
}
