/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package promptgen synthesizes the instruction document an agent run
// receives.
//
// Render is a pure function from the prepared event context and the fetched
// data bundle to the final prompt text. The document is a fixed template
// whose sections are computed independently from a small set of facts
// (is-PR, has-working-branch, event category, presence of images and custom
// instructions), so each fragment stays testable on its own.
package promptgen
