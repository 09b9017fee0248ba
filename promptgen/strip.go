/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package promptgen

import (
	"regexp"
	"strings"
)

// htmlCommentPattern matches HTML comments, including multi-line ones.
var htmlCommentPattern = regexp.MustCompile(`(?s)<!--.*?-->`)

// StripHTMLComments removes HTML comments from author-supplied text before
// it is embedded in the prompt. Invisible comments are an injection channel
// for instructions the triggering user never saw, so every user-authored
// body goes through this; system-authored text does not.
func StripHTMLComments(text string) string {
	return strings.TrimSpace(htmlCommentPattern.ReplaceAllString(text, ""))
}
