/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package promptgen

import (
	"fmt"
	"strconv"

	"chainguard.dev/agentprep/eventcontext"
	"chainguard.dev/agentprep/githubdata"
	"chainguard.dev/agentprep/toolperms"
)

// DefaultServerURL is used when the caller does not supply the GitHub
// server URL.
const DefaultServerURL = "https://github.com"

// Render synthesizes the instruction document for one agent run. It is a
// pure function of its inputs: no I/O, no state.
func Render(prepared *eventcontext.PreparedContext, classification eventcontext.Classification, fetched *githubdata.FetchedData, serverURL string) (string, error) {
	if serverURL == "" {
		serverURL = DefaultServerURL
	}
	isPR := prepared.Event.IsPR()

	// Review and changed-file sections only exist for pull requests.
	reviewSection := ""
	changedSection := ""
	if isPR {
		reviewSection = githubdata.FormatReviews(fetched.Reviews, fetched.ImagePaths)
		changedSection = githubdata.FormatChangedFiles(fetched.ChangedFiles)
	}

	images, err := imagesInfo(fetched.ImagePaths)
	if err != nil {
		return "", err
	}

	instructions, err := renderInstructions(prepared, fetched, serverURL)
	if err != nil {
		return "", err
	}

	username := prepared.TriggerUsername
	if username == "" {
		username = "Unknown"
	}

	binds := []struct {
		name  string
		value string
	}{
		{"repository", prepared.Repository},
		{"formatted_context", githubdata.FormatContext(fetched.Metadata, isPR)},
		{"body", githubdata.FormatBody(fetched.Metadata.Body, fetched.ImagePaths)},
		{"comments", githubdata.FormatComments(fetched.Comments, fetched.ImagePaths)},
		{"review_comments", reviewSection},
		{"changed_files", changedSection},
		{"images_info", images},
		{"event_type", string(classification.Category)},
		{"is_pr", strconv.FormatBool(isPR)},
		{"trigger_context", classification.TriggerDescription},
		{"number_tag", numberTag(prepared.Event)},
		{"agent_comment_id", prepared.AgentCommentID},
		{"trigger_username", username},
		{"trigger_phrase", prepared.TriggerPhrase},
		{"trigger_comment_block", triggerCommentBlock(prepared.Event)},
		{"direct_prompt_block", directPromptBlock(prepared.DirectPrompt)},
		{"instructions", instructions},
		{"custom_instructions_block", customInstructionsBlock(prepared.CustomInstructions)},
	}

	p := masterTemplate
	for _, b := range binds {
		if p, err = p.BindText(b.name, b.value); err != nil {
			return "", err
		}
	}
	return p.Build()
}

// renderInstructions fills the workflow body's conditional fragments from
// the event facts. The update tool named here and the capability granted
// by the permission builder both derive from toolperms.UpdateCommentTool,
// so the example can never name a tool the run was not granted.
func renderInstructions(prepared *eventcontext.PreparedContext, fetched *githubdata.FetchedData, serverURL string) (string, error) {
	ev := prepared.Event
	updateTool := toolperms.UpdateCommentTool(ev)

	triggerInstruction := ""
	if hasTriggerComment(ev) && StripHTMLComments(triggerComment(ev)) != "" {
		triggerInstruction = "\n   - Pay particular attention to the request in the <trigger_comment> block."
	}

	requestSource := "the discussion above"
	switch {
	case StripHTMLComments(prepared.DirectPrompt) != "":
		requestSource = "the <direct_prompt> block"
	case triggerInstruction != "":
		requestSource = "the <trigger_comment> block"
	case !ev.IsPR():
		requestSource = "the issue body above"
	}

	branchInstruction := ""
	switch {
	case prepared.WorkingBranch != "":
		branchInstruction = fmt.Sprintf("\n   - Commit every change to branch %s; never push to any other branch.", prepared.WorkingBranch)
	case ev.IsPR():
		branchInstruction = "\n   - Push changes directly to the existing PR branch; it is already checked out."
	}

	prLinkInstruction := ""
	if base := defaultBranch(ev); prepared.WorkingBranch != "" && base != "" {
		linkBody := fmt.Sprintf("Fixes #%s", ev.Number())
		if ev.IsPR() {
			linkBody = fmt.Sprintf("Related to #%s", ev.Number())
		}
		link := PRCreationLink(serverURL, prepared.Repository, base, prepared.WorkingBranch, fetched.Metadata.Title, linkBody)
		prLinkInstruction = fmt.Sprintf("\n   - If you committed changes, end the comment with a link for opening a PR, in this exact markdown form: [Create a PR](%s)", link)
	}

	p, err := instructionsTemplate.BindText("agent_comment_id", prepared.AgentCommentID)
	if err != nil {
		return "", err
	}
	for _, b := range []struct {
		name  string
		value string
	}{
		{"update_tool_name", updateTool},
		{"trigger_instruction", triggerInstruction},
		{"request_source", requestSource},
		{"branch_instruction", branchInstruction},
		{"pr_link_instruction", prLinkInstruction},
	} {
		if p, err = p.BindText(b.name, b.value); err != nil {
			return "", err
		}
	}

	// The example shares the tool name with the granted capability by
	// construction.
	p, err = p.BindJSON("tool_example", map[string]any{
		"tool":       updateTool,
		"comment_id": prepared.AgentCommentID,
		"body":       "- [x] Investigated the request\n- [ ] Implement the fix",
	})
	if err != nil {
		return "", err
	}
	return p.Build()
}
