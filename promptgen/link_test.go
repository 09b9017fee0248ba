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

func TestPRCreationLink(t *testing.T) {
	link := promptgen.PRCreationLink("https://github.com", "o/r", "main", "feature-x", "Fix the bug", "Fixes #7")

	if !strings.Contains(link, "o/r/compare/main...feature-x") {
		t.Errorf("link missing three-dot compare range: %s", link)
	}
	if strings.Contains(link, "main..feature-x") {
		t.Errorf("link contains two-dot compare range: %s", link)
	}
	if !strings.Contains(link, "quick_pull=1") {
		t.Errorf("link missing quick_pull flag: %s", link)
	}
	if !strings.Contains(link, "title=Fix%20the%20bug") {
		t.Errorf("link title not percent-escaped with %%20: %s", link)
	}
	if !strings.Contains(link, "body=Fixes%20%237") {
		t.Errorf("link body not percent-escaped: %s", link)
	}
}

func TestPRCreationLinkTrailingSlash(t *testing.T) {
	link := promptgen.PRCreationLink("https://github.example.com/", "o/r", "main", "wb", "t", "b")
	if !strings.HasPrefix(link, "https://github.example.com/o/r/compare/") {
		t.Errorf("server URL join wrong: %s", link)
	}
}
