/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package toolperms derives the capability allow and deny lists for an
// agent run from the normalized event.
package toolperms

import (
	"strings"

	"chainguard.dev/agentprep/eventcontext"
)

// baseAllowed is granted on every run: local file read/write/search plus
// the commit and delete file operations.
var baseAllowed = []string{
	"Edit",
	"Glob",
	"Grep",
	"LS",
	"Read",
	"Write",
	"mcp__github_file_ops__commit_files",
	"mcp__github_file_ops__delete_files",
}

// baseDisallowed blocks outbound web access on every run.
var baseDisallowed = []string{
	"WebSearch",
	"WebFetch",
}

// Comment-update capabilities. Exactly one of the two is granted per run,
// chosen by UsesReviewCommentTool; never both.
const (
	updatePRCommentTool    = "mcp__github__update_pull_request_comment"
	updateIssueCommentTool = "mcp__github__update_issue_comment"
)

// UsesReviewCommentTool reports whether the event updates its tracking
// comment through the PR review-comment API rather than the issue-comment
// API. Only inline review comments do. The prompt's tool-usage example is
// keyed off this same switch so the granted capability and the example can
// never diverge.
func UsesReviewCommentTool(ev eventcontext.EventData) bool {
	_, ok := ev.(eventcontext.ReviewCommentEvent)
	return ok
}

// UpdateCommentTool returns the comment-update capability name for the
// event.
func UpdateCommentTool(ev eventcontext.EventData) string {
	if UsesReviewCommentTool(ev) {
		return updatePRCommentTool
	}
	return updateIssueCommentTool
}

// Allowed builds the comma-separated allow list for the event. extra is a
// caller-supplied CSV of additional tool names, appended verbatim: no
// de-duplication, no validation.
func Allowed(ev eventcontext.EventData, extra string) string {
	tools := append([]string{}, baseAllowed...)
	tools = append(tools, UpdateCommentTool(ev))
	if extra != "" {
		tools = append(tools, extra)
	}
	return strings.Join(tools, ",")
}

// Disallowed builds the comma-separated deny list, with the same verbatim
// append policy for extra.
func Disallowed(extra string) string {
	tools := append([]string{}, baseDisallowed...)
	if extra != "" {
		tools = append(tools, extra)
	}
	return strings.Join(tools, ",")
}
