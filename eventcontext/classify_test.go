/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package eventcontext

import (
	"errors"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name         string
		event        EventData
		wantCategory Category
	}{
		{"review comment", ReviewCommentEvent{PRNumber: "1", CommentBody: "x"}, CategoryReviewComment},
		{"review", ReviewEvent{PRNumber: "1"}, CategoryPRReview},
		{"comment on PR", PRCommentEvent{PRNumber: "1", CommentID: "2", CommentBody: "x"}, CategoryGeneralComment},
		{"comment on issue", IssueCommentEvent{IssueNumber: "1", CommentID: "2", CommentBody: "x", WorkingBranch: "b", DefaultBranch: "main"}, CategoryGeneralComment},
		{"issue opened", IssueOpenedEvent{IssueNumber: "1", WorkingBranch: "b", DefaultBranch: "main"}, CategoryIssueCreated},
		{"issue assigned", IssueAssignedEvent{IssueNumber: "1", WorkingBranch: "b", DefaultBranch: "main", AssigneeTrigger: "alice"}, CategoryIssueAssigned},
		{"pull request", PullRequestEvent{PRNumber: "1", Action: "opened"}, CategoryPullRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			prepared := &PreparedContext{
				Repository:    "o/r",
				TriggerPhrase: DefaultTriggerPhrase,
				Event:         tc.event,
			}
			got, err := Classify(prepared)
			if err != nil {
				t.Fatalf("Classify() error = %v", err)
			}
			if got.Category != tc.wantCategory {
				t.Errorf("category: got = %q, wanted = %q", got.Category, tc.wantCategory)
			}
			if got.TriggerDescription == "" {
				t.Error("trigger description: got = empty, wanted non-empty")
			}
		})
	}
}

func TestClassifyDescriptions(t *testing.T) {
	prepared := &PreparedContext{
		Repository:    "o/r",
		TriggerPhrase: "@bot",
		Event:         IssueAssignedEvent{IssueNumber: "1", WorkingBranch: "b", DefaultBranch: "main", AssigneeTrigger: "alice"},
	}
	got, err := Classify(prepared)
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	want := `issue assigned to "alice"`
	if got.TriggerDescription != want {
		t.Errorf("trigger description: got = %q, wanted = %q", got.TriggerDescription, want)
	}
}

// fakeEvent stands in for a variant Classify has no mapping for.
type fakeEvent struct{}

func (fakeEvent) EventName() string { return "fake" }
func (fakeEvent) IsPR() bool        { return false }
func (fakeEvent) Number() string    { return "0" }
func (fakeEvent) isEventData()      {}

func TestClassifyUnknownVariant(t *testing.T) {
	prepared := &PreparedContext{Event: fakeEvent{}}
	_, err := Classify(prepared)
	var unexpected *UnexpectedVariantError
	if !errors.As(err, &unexpected) {
		t.Fatalf("Classify() error = %v, wanted UnexpectedVariantError", err)
	}
}
