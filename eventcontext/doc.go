/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package eventcontext normalizes GitHub webhook event payloads into a
// single validated context for an agent run.
//
// A raw workflow event (parsed with go-github) plus the action's inputs are
// turned into a PreparedContext holding exactly one EventData variant. Each
// variant carries only the fields meaningful for its event kind, and a
// variant's required fields are guaranteed present by construction: a
// missing field is a normalization failure, never a downstream nil check.
package eventcontext
