/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package eventcontext

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultTriggerPhrase is used when neither the action inputs nor the
// settings file supply one.
const DefaultTriggerPhrase = "@claude"

// Inputs are the user-supplied action inputs, read from the INPUT_*
// environment the runner exposes. All fields are optional; empty means
// unset.
type Inputs struct {
	// TriggerPhrase is the mention that summons the agent in comment
	// bodies. Defaults to DefaultTriggerPhrase during normalization.
	TriggerPhrase string `env:"INPUT_TRIGGER_PHRASE"`

	// AssigneeTrigger is the login whose issue assignment triggers the
	// agent. Required for issues/assigned events.
	AssigneeTrigger string `env:"INPUT_ASSIGNEE_TRIGGER"`

	// CustomInstructions is appended verbatim to the synthesized prompt.
	CustomInstructions string `env:"INPUT_CUSTOM_INSTRUCTIONS"`

	// AllowedTools and DisallowedTools extend the capability lists the
	// permission builder derives for the event.
	AllowedTools    string `env:"INPUT_ALLOWED_TOOLS"`
	DisallowedTools string `env:"INPUT_DISALLOWED_TOOLS"`

	// DirectPrompt overrides the trigger comment as the agent's
	// instruction source.
	DirectPrompt string `env:"INPUT_DIRECT_PROMPT"`

	// SettingsFile optionally points at a repo-level YAML file whose
	// values fill any inputs left unset above.
	SettingsFile string `env:"INPUT_SETTINGS_FILE"`
}

// settings mirrors the YAML settings file schema.
type settings struct {
	TriggerPhrase      string `yaml:"trigger_phrase"`
	AssigneeTrigger    string `yaml:"assignee_trigger"`
	CustomInstructions string `yaml:"custom_instructions"`
	AllowedTools       string `yaml:"allowed_tools"`
	DisallowedTools    string `yaml:"disallowed_tools"`
}

// ApplySettings overlays the YAML settings file at SettingsFile onto any
// unset inputs. Explicit action inputs always win over file values. A
// missing SettingsFile is a no-op.
func (in *Inputs) ApplySettings() error {
	if in.SettingsFile == "" {
		return nil
	}

	raw, err := os.ReadFile(in.SettingsFile)
	if err != nil {
		return fmt.Errorf("reading settings file %q: %w", in.SettingsFile, err)
	}

	var s settings
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return fmt.Errorf("parsing settings file %q: %w", in.SettingsFile, err)
	}

	if in.TriggerPhrase == "" {
		in.TriggerPhrase = s.TriggerPhrase
	}
	if in.AssigneeTrigger == "" {
		in.AssigneeTrigger = s.AssigneeTrigger
	}
	if in.CustomInstructions == "" {
		in.CustomInstructions = s.CustomInstructions
	}
	if in.AllowedTools == "" {
		in.AllowedTools = s.AllowedTools
	}
	if in.DisallowedTools == "" {
		in.DisallowedTools = s.DisallowedTools
	}
	return nil
}
