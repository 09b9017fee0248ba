/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package githubdata

import (
	"fmt"
	"strings"
)

// FormatContext renders the issue/PR header block for the prompt.
func FormatContext(md Metadata, isPR bool) string {
	if isPR {
		return strings.Join([]string{
			fmt.Sprintf("PR Title: %s", md.Title),
			fmt.Sprintf("PR Author: %s", md.Author),
			fmt.Sprintf("PR Branch: %s -> %s", md.HeadBranch, md.BaseBranch),
			fmt.Sprintf("PR State: %s", md.State),
			fmt.Sprintf("PR Additions: %d", md.Additions),
			fmt.Sprintf("PR Deletions: %d", md.Deletions),
			fmt.Sprintf("Total Commits: %d", md.CommitCount),
		}, "\n")
	}
	return strings.Join([]string{
		fmt.Sprintf("Issue Title: %s", md.Title),
		fmt.Sprintf("Issue Author: %s", md.Author),
		fmt.Sprintf("Issue State: %s", md.State),
	}, "\n")
}

// FormatBody substitutes downloaded local image paths for the original
// image URLs in body text.
func FormatBody(body string, imagePaths map[string]string) string {
	for url, local := range imagePaths {
		body = strings.ReplaceAll(body, url, local)
	}
	return body
}

// FormatComments renders the top-level comment thread, oldest first.
func FormatComments(comments []Comment, imagePaths map[string]string) string {
	formatted := make([]string, 0, len(comments))
	for _, c := range comments {
		formatted = append(formatted, fmt.Sprintf("[%s at %s]: %s",
			c.Author, c.CreatedAt, FormatBody(c.Body, imagePaths)))
	}
	return strings.Join(formatted, "\n\n")
}

// FormatReviews renders submitted reviews with their inline comment
// threads nested beneath them.
func FormatReviews(reviews []Review, imagePaths map[string]string) string {
	formatted := make([]string, 0, len(reviews))
	for _, r := range reviews {
		var b strings.Builder
		fmt.Fprintf(&b, "[Review by %s at %s]: %s", r.Author, r.SubmittedAt, r.State)
		if body := FormatBody(r.Body, imagePaths); body != "" {
			fmt.Fprintf(&b, "\n%s", body)
		}
		for _, c := range r.Comments {
			fmt.Fprintf(&b, "\n  [Comment on %s:%d]: %s",
				c.Path, c.Line, FormatBody(c.Body, imagePaths))
		}
		formatted = append(formatted, b.String())
	}
	return strings.Join(formatted, "\n\n")
}

// FormatChangedFiles renders the changed-file list with per-file diff
// stats and blob SHAs.
func FormatChangedFiles(files []ChangedFile) string {
	formatted := make([]string, 0, len(files))
	for _, f := range files {
		formatted = append(formatted, fmt.Sprintf("- %s (%s) +%d/-%d SHA: %s",
			f.Path, f.Status, f.Additions, f.Deletions, f.SHA))
	}
	return strings.Join(formatted, "\n")
}
