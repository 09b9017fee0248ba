/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package eventcontext

// EventData is the closed set of normalized event variants. Exactly one
// variant is produced per invocation, selected by (event name, action, isPR).
// Consumers type-switch over the concrete types; the unexported marker
// method keeps the set closed to this package.
type EventData interface {
	// EventName returns the originating webhook event name.
	EventName() string

	// IsPR reports whether the event targets a pull request.
	IsPR() bool

	// Number returns the PR or issue number as a decimal string: the PR
	// number when IsPR, the issue number otherwise.
	Number() string

	isEventData()
}

// ReviewCommentEvent is a pull_request_review_comment event: an inline
// comment on a pull request diff.
type ReviewCommentEvent struct {
	PRNumber      string
	CommentID     string // optional
	CommentBody   string
	WorkingBranch string // optional
	DefaultBranch string // optional
}

func (ReviewCommentEvent) EventName() string { return "pull_request_review_comment" }
func (ReviewCommentEvent) IsPR() bool { return true }
func (e ReviewCommentEvent) Number() string { return e.PRNumber }
func (ReviewCommentEvent) isEventData() {}

// ReviewEvent is a pull_request_review event. CommentBody holds the review
// body, which may legitimately be empty: a review can carry no text.
type ReviewEvent struct {
	PRNumber      string
	CommentBody   string
	WorkingBranch string // optional
	DefaultBranch string // optional
}

func (ReviewEvent) EventName() string { return "pull_request_review" }
func (ReviewEvent) IsPR() bool { return true }
func (e ReviewEvent) Number() string { return e.PRNumber }
func (ReviewEvent) isEventData() {}

// PRCommentEvent is an issue_comment event whose target issue is a pull
// request.
type PRCommentEvent struct {
	CommentID     string
	PRNumber      string
	CommentBody   string
	WorkingBranch string // optional
	DefaultBranch string // optional
}

func (PRCommentEvent) EventName() string { return "issue_comment" }
func (PRCommentEvent) IsPR() bool { return true }
func (e PRCommentEvent) Number() string { return e.PRNumber }
func (PRCommentEvent) isEventData() {}

// IssueCommentEvent is an issue_comment event on a plain issue. This is the
// strictest variant: the agent will push work to a branch, so both branches
// and the issue number are mandatory.
type IssueCommentEvent struct {
	CommentID     string
	IssueNumber   string
	CommentBody   string
	WorkingBranch string
	DefaultBranch string
}

func (IssueCommentEvent) EventName() string { return "issue_comment" }
func (IssueCommentEvent) IsPR() bool { return false }
func (e IssueCommentEvent) Number() string { return e.IssueNumber }
func (IssueCommentEvent) isEventData() {}

// IssueAssignedEvent is an issues event with action "assigned". The
// AssigneeTrigger is the login whose assignment triggers the agent; it must
// be supplied through the action inputs, it is not derivable from the
// payload.
type IssueAssignedEvent struct {
	IssueNumber     string
	WorkingBranch   string
	DefaultBranch   string
	AssigneeTrigger string
}

func (IssueAssignedEvent) EventName() string { return "issues" }
func (IssueAssignedEvent) IsPR() bool { return false }
func (e IssueAssignedEvent) Number() string { return e.IssueNumber }
func (IssueAssignedEvent) isEventData() {}

// IssueOpenedEvent is an issues event with action "opened".
type IssueOpenedEvent struct {
	IssueNumber   string
	WorkingBranch string
	DefaultBranch string
}

func (IssueOpenedEvent) EventName() string { return "issues" }
func (IssueOpenedEvent) IsPR() bool { return false }
func (e IssueOpenedEvent) Number() string { return e.IssueNumber }
func (IssueOpenedEvent) isEventData() {}

// PullRequestEvent is a pull_request event (opened, synchronize, etc).
type PullRequestEvent struct {
	PRNumber      string
	Action        string // optional
	WorkingBranch string // optional
	DefaultBranch string // optional
}

func (PullRequestEvent) EventName() string { return "pull_request" }
func (PullRequestEvent) IsPR() bool { return true }
func (e PullRequestEvent) Number() string { return e.PRNumber }
func (PullRequestEvent) isEventData() {}
