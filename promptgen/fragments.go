/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package promptgen

import (
	"fmt"

	"chainguard.dev/agentprep/eventcontext"
	"chainguard.dev/agentprep/promptbuilder"
)

// triggerComment returns the raw comment or review body that triggered the
// run, empty for event kinds with no triggering comment.
func triggerComment(ev eventcontext.EventData) string {
	switch e := ev.(type) {
	case eventcontext.ReviewCommentEvent:
		return e.CommentBody
	case eventcontext.ReviewEvent:
		return e.CommentBody
	case eventcontext.PRCommentEvent:
		return e.CommentBody
	case eventcontext.IssueCommentEvent:
		return e.CommentBody
	}
	return ""
}

// hasTriggerComment reports whether the event kind carries a triggering
// comment at all: the issue_comment, pull_request_review, and
// pull_request_review_comment events.
func hasTriggerComment(ev eventcontext.EventData) bool {
	switch ev.EventName() {
	case "issue_comment", "pull_request_review", "pull_request_review_comment":
		return true
	}
	return false
}

// defaultBranch returns the variant's default branch, empty when the
// variant carries none.
func defaultBranch(ev eventcontext.EventData) string {
	switch e := ev.(type) {
	case eventcontext.ReviewCommentEvent:
		return e.DefaultBranch
	case eventcontext.ReviewEvent:
		return e.DefaultBranch
	case eventcontext.PRCommentEvent:
		return e.DefaultBranch
	case eventcontext.IssueCommentEvent:
		return e.DefaultBranch
	case eventcontext.IssueAssignedEvent:
		return e.DefaultBranch
	case eventcontext.IssueOpenedEvent:
		return e.DefaultBranch
	case eventcontext.PullRequestEvent:
		return e.DefaultBranch
	}
	return ""
}

// numberTag renders exactly one of the PR or issue number metadata tags,
// chosen by the is-PR flag.
func numberTag(ev eventcontext.EventData) string {
	if ev.IsPR() {
		return fmt.Sprintf("<pr_number>%s</pr_number>", ev.Number())
	}
	return fmt.Sprintf("<issue_number>%s</issue_number>", ev.Number())
}

// triggerCommentBlock renders the trigger-comment section, present only
// for comment-carrying event kinds and only when a body survives comment
// stripping.
func triggerCommentBlock(ev eventcontext.EventData) string {
	if !hasTriggerComment(ev) {
		return ""
	}
	body := StripHTMLComments(triggerComment(ev))
	if body == "" {
		return ""
	}
	return fmt.Sprintf("\n<trigger_comment>\n%s\n</trigger_comment>", body)
}

// directPromptBlock renders the direct-prompt override section when one
// was supplied.
func directPromptBlock(directPrompt string) string {
	stripped := StripHTMLComments(directPrompt)
	if stripped == "" {
		return ""
	}
	return fmt.Sprintf("\n<direct_prompt>\n%s\n</direct_prompt>", stripped)
}

// customInstructionsBlock appends the user's custom instructions when
// supplied.
func customInstructionsBlock(instructions string) string {
	if instructions == "" {
		return ""
	}
	return fmt.Sprintf("\n\nCustom instructions from the workflow configuration:\n\n%s", instructions)
}

var imagesInfoTemplate = promptbuilder.MustNewPrompt(`

<images_info>
Images referenced in the discussion above have been downloaded locally.
Original URL to local path:
{{image_paths}}
Read the local files when the images matter to the task.
</images_info>`)

// imagesInfo renders the downloaded-images notice, empty when nothing was
// downloaded.
func imagesInfo(paths map[string]string) (string, error) {
	if len(paths) == 0 {
		return "", nil
	}
	p, err := imagesInfoTemplate.BindJSON("image_paths", paths)
	if err != nil {
		return "", err
	}
	return p.Build()
}
