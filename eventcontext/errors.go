/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package eventcontext

import "fmt"

// MissingFieldError reports a required field that was absent for the
// resolved event variant. The message names both the event and the field so
// the operator can see exactly which upstream input was insufficient.
type MissingFieldError struct {
	Event string
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s event missing %s", e.Event, e.Field)
}

// UnsupportedEventError reports an event name outside the supported set.
type UnsupportedEventError struct {
	Event string
}

func (e *UnsupportedEventError) Error() string {
	return fmt.Sprintf("unsupported event type: %s", e.Event)
}

// UnsupportedActionError reports an issues action we do not handle.
type UnsupportedActionError struct {
	Action string
}

func (e *UnsupportedActionError) Error() string {
	return fmt.Sprintf("unsupported issues action: %s", e.Action)
}

// UnexpectedVariantError is returned by Classify when it encounters an
// EventData variant it has no mapping for. Prepare only constructs variants
// Classify knows about, so hitting this means the variant set grew without
// updating the classification table.
type UnexpectedVariantError struct {
	Variant string
}

func (e *UnexpectedVariantError) Error() string {
	return fmt.Sprintf("unexpected event variant in classification: %s", e.Variant)
}
