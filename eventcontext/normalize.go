/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package eventcontext

import (
	"strconv"

	"github.com/google/go-github/v84/github"
)

// PreparedContext is the normalized, validated event context. Built exactly
// once per invocation and never mutated afterwards. Optional string fields
// are empty when their source data was absent.
type PreparedContext struct {
	Repository     string
	AgentCommentID string
	TriggerPhrase  string

	TriggerUsername    string
	CustomInstructions string
	AllowedTools       string
	DisallowedTools    string
	DirectPrompt       string
	WorkingBranch      string

	Event EventData
}

// commentSource holds the trigger identity and body extracted from whichever
// payload sub-object is present. The four payload shapes (issue comment, PR
// review, PR review comment, bare issue) are mutually exclusive; the shape
// is resolved by inspecting the payload, not by trusting the event name.
type commentSource struct {
	body     string
	username string
	id       string
}

func extractCommentSource(payload any) commentSource {
	switch p := payload.(type) {
	case *github.IssueCommentEvent:
		return commentSource{
			body:     p.GetComment().GetBody(),
			username: p.GetComment().GetUser().GetLogin(),
			id:       strconv.FormatInt(p.GetComment().GetID(), 10),
		}
	case *github.PullRequestReviewEvent:
		return commentSource{
			body:     p.GetReview().GetBody(),
			username: p.GetReview().GetUser().GetLogin(),
		}
	case *github.PullRequestReviewCommentEvent:
		return commentSource{
			body:     p.GetComment().GetBody(),
			username: p.GetComment().GetUser().GetLogin(),
			id:       strconv.FormatInt(p.GetComment().GetID(), 10),
		}
	case *github.IssuesEvent:
		return commentSource{
			username: p.GetIssue().GetUser().GetLogin(),
		}
	}
	return commentSource{}
}

// Prepare validates the raw context and produces the PreparedContext for
// this run. agentCommentID identifies the tracking comment the agent
// updates with progress. defaultBranch and workingBranch come from the
// branch-setup step and may be empty for event kinds that do not require
// them.
//
// Every required field of the resolved variant is asserted here;
// the first missing one fails with a MissingFieldError naming the event
// and the field. An empty comment body counts as missing for every variant
// except pull_request_review, where an empty review body is legitimate.
func Prepare(raw *Context, agentCommentID, defaultBranch, workingBranch string) (*PreparedContext, error) {
	src := extractCommentSource(raw.Payload)
	number := ""
	if raw.EntityNumber > 0 {
		number = strconv.Itoa(raw.EntityNumber)
	}

	event, err := resolveVariant(raw, src, number, defaultBranch, workingBranch)
	if err != nil {
		return nil, err
	}

	triggerPhrase := raw.Inputs.TriggerPhrase
	if triggerPhrase == "" {
		triggerPhrase = DefaultTriggerPhrase
	}

	return &PreparedContext{
		Repository:         raw.Repository,
		AgentCommentID:     agentCommentID,
		TriggerPhrase:      triggerPhrase,
		TriggerUsername:    src.username,
		CustomInstructions: raw.Inputs.CustomInstructions,
		AllowedTools:       raw.Inputs.AllowedTools,
		DisallowedTools:    raw.Inputs.DisallowedTools,
		DirectPrompt:       raw.Inputs.DirectPrompt,
		WorkingBranch:      workingBranch,
		Event:              event,
	}, nil
}

// resolveVariant dispatches on the event name and asserts the required
// fields of the target variant, short-circuiting on the first missing one.
func resolveVariant(raw *Context, src commentSource, number, defaultBranch, workingBranch string) (EventData, error) {
	switch raw.EventName {
	case "pull_request_review_comment":
		if number == "" {
			return nil, &MissingFieldError{Event: raw.EventName, Field: "PR number"}
		}
		if src.body == "" {
			return nil, &MissingFieldError{Event: raw.EventName, Field: "comment body"}
		}
		return ReviewCommentEvent{
			PRNumber:      number,
			CommentID:     src.id,
			CommentBody:   src.body,
			WorkingBranch: workingBranch,
			DefaultBranch: defaultBranch,
		}, nil

	case "pull_request_review":
		if number == "" {
			return nil, &MissingFieldError{Event: raw.EventName, Field: "PR number"}
		}
		// A review can carry no text; the empty body stays valid here.
		return ReviewEvent{
			PRNumber:      number,
			CommentBody:   src.body,
			WorkingBranch: workingBranch,
			DefaultBranch: defaultBranch,
		}, nil

	case "issue_comment":
		if src.id == "" {
			return nil, &MissingFieldError{Event: raw.EventName, Field: "comment ID"}
		}
		if src.body == "" {
			return nil, &MissingFieldError{Event: raw.EventName, Field: "comment body"}
		}
		if raw.IsPR {
			if number == "" {
				return nil, &MissingFieldError{Event: raw.EventName, Field: "PR number"}
			}
			return PRCommentEvent{
				CommentID:     src.id,
				PRNumber:      number,
				CommentBody:   src.body,
				WorkingBranch: workingBranch,
				DefaultBranch: defaultBranch,
			}, nil
		}
		if defaultBranch == "" {
			return nil, &MissingFieldError{Event: raw.EventName, Field: "default branch"}
		}
		if workingBranch == "" {
			return nil, &MissingFieldError{Event: raw.EventName, Field: "working branch"}
		}
		if number == "" {
			return nil, &MissingFieldError{Event: raw.EventName, Field: "issue number"}
		}
		return IssueCommentEvent{
			CommentID:     src.id,
			IssueNumber:   number,
			CommentBody:   src.body,
			WorkingBranch: workingBranch,
			DefaultBranch: defaultBranch,
		}, nil

	case "issues":
		if number == "" {
			return nil, &MissingFieldError{Event: raw.EventName, Field: "issue number"}
		}
		if defaultBranch == "" {
			return nil, &MissingFieldError{Event: raw.EventName, Field: "default branch"}
		}
		if workingBranch == "" {
			return nil, &MissingFieldError{Event: raw.EventName, Field: "working branch"}
		}
		switch raw.EventAction {
		case "assigned":
			if raw.Inputs.AssigneeTrigger == "" {
				return nil, &MissingFieldError{Event: raw.EventName, Field: "assignee trigger"}
			}
			return IssueAssignedEvent{
				IssueNumber:     number,
				WorkingBranch:   workingBranch,
				DefaultBranch:   defaultBranch,
				AssigneeTrigger: raw.Inputs.AssigneeTrigger,
			}, nil
		case "opened":
			return IssueOpenedEvent{
				IssueNumber:   number,
				WorkingBranch: workingBranch,
				DefaultBranch: defaultBranch,
			}, nil
		default:
			return nil, &UnsupportedActionError{Action: raw.EventAction}
		}

	case "pull_request":
		if number == "" {
			return nil, &MissingFieldError{Event: raw.EventName, Field: "PR number"}
		}
		return PullRequestEvent{
			PRNumber:      number,
			Action:        raw.EventAction,
			WorkingBranch: workingBranch,
			DefaultBranch: defaultBranch,
		}, nil

	default:
		return nil, &UnsupportedEventError{Event: raw.EventName}
	}
}
