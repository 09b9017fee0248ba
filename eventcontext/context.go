/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package eventcontext

import (
	"fmt"

	"github.com/google/go-github/v84/github"
)

// Context is the raw event context supplied by the workflow run: the
// repository, the webhook event identity, and the typed payload parsed by
// go-github. It is read-only to this package once constructed.
type Context struct {
	// Repository is the "owner/name" slug of the repository the event
	// fired in.
	Repository string

	// EventName is the webhook event name (issue_comment, issues, ...).
	EventName string

	// EventAction is the event action when the payload carries one
	// (opened, assigned, created, ...).
	EventAction string

	// IsPR reports whether the event targets a pull request, resolved
	// from the payload rather than the event name: an issue_comment on a
	// PR sets it, an issue_comment on a plain issue does not.
	IsPR bool

	// EntityNumber is the issue or pull request number the event refers
	// to. Zero when the payload carried none.
	EntityNumber int

	// Payload is the parsed webhook payload, one of the go-github event
	// types.
	Payload any

	// Inputs are the user-supplied action inputs.
	Inputs Inputs
}

// New parses the raw webhook payload for eventName and derives the
// action, target number, and is-PR flag from its shape.
func New(repository, eventName string, payload []byte, inputs Inputs) (*Context, error) {
	parsed, err := github.ParseWebHook(eventName, payload)
	if err != nil {
		return nil, fmt.Errorf("parsing %s payload: %w", eventName, err)
	}

	c := &Context{
		Repository: repository,
		EventName:  eventName,
		Payload:    parsed,
		Inputs:     inputs,
	}

	switch p := parsed.(type) {
	case *github.IssueCommentEvent:
		c.EventAction = p.GetAction()
		c.EntityNumber = p.GetIssue().GetNumber()
		c.IsPR = p.GetIssue().IsPullRequest()
	case *github.PullRequestReviewEvent:
		c.EventAction = p.GetAction()
		c.EntityNumber = p.GetPullRequest().GetNumber()
		c.IsPR = true
	case *github.PullRequestReviewCommentEvent:
		c.EventAction = p.GetAction()
		c.EntityNumber = p.GetPullRequest().GetNumber()
		c.IsPR = true
	case *github.IssuesEvent:
		c.EventAction = p.GetAction()
		c.EntityNumber = p.GetIssue().GetNumber()
		c.IsPR = false
	case *github.PullRequestEvent:
		c.EventAction = p.GetAction()
		c.EntityNumber = p.GetPullRequest().GetNumber()
		c.IsPR = true
	default:
		return nil, &UnsupportedEventError{Event: eventName}
	}

	return c, nil
}
