/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package githubdata fetches and formats the issue or pull request data an
// agent run needs: metadata, comments, review threads, changed files, and
// referenced images.
//
// Fetching combines the GraphQL API (metadata, comments, reviews) with the
// REST API (changed files with blob SHAs, the unified diff). The formatters
// are pure functions over the fetched bundle and are what the prompt
// synthesizer consumes.
package githubdata
