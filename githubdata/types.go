/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package githubdata

// Metadata is the issue or pull request header data. The branch and count
// fields are only populated for pull requests.
type Metadata struct {
	Title     string
	Body      string
	Author    string
	State     string
	CreatedAt string

	BaseBranch  string
	HeadBranch  string
	Additions   int
	Deletions   int
	CommitCount int
}

// Comment is a top-level issue or PR comment.
type Comment struct {
	Author    string
	Body      string
	CreatedAt string
}

// ReviewComment is an inline comment attached to a review, anchored to a
// file position in the diff.
type ReviewComment struct {
	Author    string
	Body      string
	CreatedAt string
	Path      string
	Line      int
}

// Review is a submitted PR review with its inline comment thread.
type Review struct {
	Author      string
	State       string
	Body        string
	SubmittedAt string
	Comments    []ReviewComment
}

// ChangedFile is one file touched by a pull request. SHA is the blob hash
// of the file's head version; Hunks counts the diff hunks touching it.
type ChangedFile struct {
	Path      string
	Status    string
	SHA       string
	Additions int
	Deletions int
	Hunks     int
}

// FetchedData is the bundle of everything fetched for one run. Slices are
// nil-safe for the formatters; ImagePaths maps the original image URL to
// the downloaded local path and is empty when the bodies reference no
// images.
type FetchedData struct {
	Metadata     Metadata
	Comments     []Comment
	Reviews      []Review
	ChangedFiles []ChangedFile
	ImagePaths   map[string]string
}
