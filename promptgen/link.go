/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package promptgen

import (
	"fmt"
	"net/url"
	"strings"
)

// PRCreationLink builds the quick-pull URL a human can follow to open a PR
// from the agent's working branch. GitHub's compare syntax wants three dots
// between the branch names; two dots means a different comparison and the
// quick-pull page rejects it. Title and body are percent-escaped.
func PRCreationLink(serverURL, repository, defaultBranch, workingBranch, title, body string) string {
	return fmt.Sprintf("%s/%s/compare/%s...%s?quick_pull=1&title=%s&body=%s",
		strings.TrimSuffix(serverURL, "/"),
		repository,
		defaultBranch,
		workingBranch,
		escapeQuery(title),
		escapeQuery(body),
	)
}

// escapeQuery percent-escapes a query value, using %20 rather than '+' for
// spaces so the value survives strict URL parsers.
func escapeQuery(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
