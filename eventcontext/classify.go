/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package eventcontext

import "fmt"

// Category labels the kind of event that triggered the agent. Used only for
// display inside the synthesized prompt.
type Category string

const (
	CategoryReviewComment  Category = "REVIEW_COMMENT"
	CategoryPRReview       Category = "PR_REVIEW"
	CategoryGeneralComment Category = "GENERAL_COMMENT"
	CategoryIssueCreated   Category = "ISSUE_CREATED"
	CategoryIssueAssigned  Category = "ISSUE_ASSIGNED"
	CategoryPullRequest    Category = "PULL_REQUEST"
)

// Classification pairs the category label with a short human sentence
// describing how the agent was triggered.
type Classification struct {
	Category           Category
	TriggerDescription string
}

// Classify maps a prepared context to its classification. The mapping is
// total over the EventData variant set; the error branch is only reachable
// if a variant is added without extending this switch.
func Classify(prepared *PreparedContext) (Classification, error) {
	switch ev := prepared.Event.(type) {
	case ReviewCommentEvent:
		return Classification{
			Category:           CategoryReviewComment,
			TriggerDescription: "PR review comment",
		}, nil
	case ReviewEvent:
		return Classification{
			Category:           CategoryPRReview,
			TriggerDescription: "PR review",
		}, nil
	case PRCommentEvent:
		return Classification{
			Category:           CategoryGeneralComment,
			TriggerDescription: "issue comment on a pull request",
		}, nil
	case IssueCommentEvent:
		return Classification{
			Category:           CategoryGeneralComment,
			TriggerDescription: "issue comment",
		}, nil
	case IssueOpenedEvent:
		return Classification{
			Category:           CategoryIssueCreated,
			TriggerDescription: fmt.Sprintf("new issue with %q in body", prepared.TriggerPhrase),
		}, nil
	case IssueAssignedEvent:
		return Classification{
			Category:           CategoryIssueAssigned,
			TriggerDescription: fmt.Sprintf("issue assigned to %q", ev.AssigneeTrigger),
		}, nil
	case PullRequestEvent:
		desc := "pull request event"
		if ev.Action != "" {
			desc = fmt.Sprintf("pull request %s", ev.Action)
		}
		return Classification{
			Category:           CategoryPullRequest,
			TriggerDescription: desc,
		}, nil
	default:
		return Classification{}, &UnexpectedVariantError{Variant: fmt.Sprintf("%T", prepared.Event)}
	}
}
