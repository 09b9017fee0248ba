/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package promptbuilder assembles prompts from templates with {{name}}
// placeholders.
//
// Templates are authored as literals; values are bound one placeholder at a
// time and the final Build fails if any placeholder is left unbound, so a
// prompt can never ship with a hole in it. Binding methods return a new
// Prompt, leaving the receiver untouched.
package promptbuilder
