/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package promptgen_test

import (
	"strings"
	"testing"

	"chainguard.dev/agentprep/eventcontext"
	"chainguard.dev/agentprep/githubdata"
	"chainguard.dev/agentprep/promptgen"
)

func mustClassify(t *testing.T, prepared *eventcontext.PreparedContext) eventcontext.Classification {
	t.Helper()
	classification, err := eventcontext.Classify(prepared)
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	return classification
}

func issueFetchedData() *githubdata.FetchedData {
	return &githubdata.FetchedData{
		Metadata: githubdata.Metadata{
			Title:     "Crash on empty input",
			Body:      "Steps to reproduce: run with no args",
			Author:    "alice",
			State:     "OPEN",
			CreatedAt: "2026-08-01T10:00:00Z",
		},
		Comments: []githubdata.Comment{
			{Author: "bob", Body: "confirmed on my machine", CreatedAt: "2026-08-01T11:00:00Z"},
		},
	}
}

func TestRenderIssueComment(t *testing.T) {
	prepared := &eventcontext.PreparedContext{
		Repository:      "o/r",
		AgentCommentID:  "555",
		TriggerPhrase:   "@claude",
		TriggerUsername: "alice",
		WorkingBranch:   "agent/issue-42",
		Event: eventcontext.IssueCommentEvent{
			CommentID:     "12345",
			IssueNumber:   "42",
			CommentBody:   "<!-- hidden instructions -->do the thing",
			WorkingBranch: "agent/issue-42",
			DefaultBranch: "main",
		},
	}

	out, err := promptgen.Render(prepared, mustClassify(t, prepared), issueFetchedData(), "https://github.com")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	for _, want := range []string{
		"<trigger_comment>\ndo the thing\n</trigger_comment>",
		"<event_type>GENERAL_COMMENT</event_type>",
		"<is_pr>false</is_pr>",
		"<repository>o/r</repository>",
		"<issue_number>42</issue_number>",
		"<agent_comment_id>555</agent_comment_id>",
		"<trigger_username>alice</trigger_username>",
		"<trigger_phrase>@claude</trigger_phrase>",
		"Issue Title: Crash on empty input",
		"confirmed on my machine",
		"mcp__github__update_issue_comment",
		"Commit every change to branch agent/issue-42",
		"o/r/compare/main...agent/issue-42",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("prompt missing %q", want)
		}
	}

	for _, never := range []string{
		"<!-- hidden instructions -->",
		"<pr_number>",
		"mcp__github__update_pull_request_comment",
		"<direct_prompt>",
		"<images_info>",
		"main..agent",
	} {
		if strings.Contains(out, never) {
			t.Errorf("prompt must not contain %q", never)
		}
	}
}

func TestRenderReviewComment(t *testing.T) {
	prepared := &eventcontext.PreparedContext{
		Repository:      "o/r",
		AgentCommentID:  "556",
		TriggerPhrase:   "@claude",
		TriggerUsername: "bob",
		Event: eventcontext.ReviewCommentEvent{
			PRNumber:      "7",
			CommentID:     "67890",
			CommentBody:   "@claude tighten this loop",
			DefaultBranch: "main",
		},
	}

	fetched := &githubdata.FetchedData{
		Metadata: githubdata.Metadata{
			Title:      "Add retry logic",
			Body:       "Adds retries to the fetcher",
			Author:     "carol",
			State:      "OPEN",
			BaseBranch: "main",
			HeadBranch: "retry-logic",
			Additions:  40,
			Deletions:  3,
		},
		Reviews: []githubdata.Review{{
			Author:      "bob",
			State:       "CHANGES_REQUESTED",
			SubmittedAt: "2026-08-02T09:00:00Z",
			Comments: []githubdata.ReviewComment{
				{Author: "bob", Body: "O(n^2) here", Path: "fetch.go", Line: 120},
			},
		}},
		ChangedFiles: []githubdata.ChangedFile{
			{Path: "fetch.go", Status: "modified", SHA: "abc123", Additions: 40, Deletions: 3, Hunks: 2},
		},
	}

	out, err := promptgen.Render(prepared, mustClassify(t, prepared), fetched, "")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	for _, want := range []string{
		"<event_type>REVIEW_COMMENT</event_type>",
		"<is_pr>true</is_pr>",
		"<pr_number>7</pr_number>",
		"mcp__github__update_pull_request_comment",
		"PR Branch: retry-logic -> main",
		"O(n^2) here",
		"- fetch.go (modified) +40/-3 SHA: abc123",
		"Push changes directly to the existing PR branch",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if strings.Contains(out, "mcp__github__update_issue_comment") {
		t.Error("prompt names the issue comment tool for an inline review comment event")
	}
	if strings.Contains(out, "<issue_number>") {
		t.Error("prompt renders an issue number for a PR event")
	}
}

func TestRenderDirectPrompt(t *testing.T) {
	prepared := &eventcontext.PreparedContext{
		Repository:     "o/r",
		AgentCommentID: "557",
		TriggerPhrase:  "@claude",
		DirectPrompt:   "<!-- sneak -->update the changelog",
		Event: eventcontext.IssueOpenedEvent{
			IssueNumber:   "9",
			WorkingBranch: "agent/issue-9",
			DefaultBranch: "main",
		},
		WorkingBranch: "agent/issue-9",
	}

	out, err := promptgen.Render(prepared, mustClassify(t, prepared), issueFetchedData(), "")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if !strings.Contains(out, "<direct_prompt>\nupdate the changelog\n</direct_prompt>") {
		t.Errorf("prompt missing stripped direct prompt block:\n%s", out)
	}
	if strings.Contains(out, "sneak") {
		t.Error("HTML comment from direct prompt leaked into the prompt")
	}
	if !strings.Contains(out, "the <direct_prompt> block") {
		t.Error("instructions do not point at the direct prompt block")
	}
	if strings.Contains(out, "<trigger_comment>") {
		t.Error("issue opened event must not render a trigger comment block")
	}
	if !strings.Contains(out, "<trigger_username>Unknown</trigger_username>") {
		t.Error("absent trigger username must render as Unknown")
	}
}

func TestRenderImagesNotice(t *testing.T) {
	prepared := &eventcontext.PreparedContext{
		Repository:     "o/r",
		AgentCommentID: "558",
		TriggerPhrase:  "@claude",
		Event: eventcontext.IssueOpenedEvent{
			IssueNumber:   "9",
			WorkingBranch: "agent/issue-9",
			DefaultBranch: "main",
		},
		WorkingBranch: "agent/issue-9",
	}

	fetched := issueFetchedData()
	fetched.Metadata.Body = "See ![screenshot](https://example.com/shot.png)"
	fetched.ImagePaths = map[string]string{
		"https://example.com/shot.png": "/tmp/agentprep-images/image-0.png",
	}

	out, err := promptgen.Render(prepared, mustClassify(t, prepared), fetched, "")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if !strings.Contains(out, "<images_info>") {
		t.Error("prompt missing images notice")
	}
	if !strings.Contains(out, "/tmp/agentprep-images/image-0.png") {
		t.Error("prompt missing downloaded image path")
	}
	if !strings.Contains(out, "See ![screenshot](/tmp/agentprep-images/image-0.png)") {
		t.Error("body image URL not rewritten to the local path")
	}
}

func TestRenderCustomInstructions(t *testing.T) {
	prepared := &eventcontext.PreparedContext{
		Repository:         "o/r",
		AgentCommentID:     "559",
		TriggerPhrase:      "@claude",
		CustomInstructions: "Always run the linter before committing.",
		Event:              eventcontext.PullRequestEvent{PRNumber: "3", Action: "opened"},
	}

	out, err := promptgen.Render(prepared, mustClassify(t, prepared), issueFetchedData(), "")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(out, "Always run the linter before committing.") {
		t.Error("prompt missing custom instructions")
	}
	if !strings.HasSuffix(strings.TrimSpace(out), "Always run the linter before committing.") {
		t.Error("custom instructions are not the final block")
	}
}
