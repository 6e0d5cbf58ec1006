// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ConfPub
// Source: github.com/confpub/namerules

package namerules

import "github.com/rs/zerolog"

// Options controls rule loading and name matching behavior.
type Options struct {
	// Source is the rules file name, resolved against the base directory
	// passed at construction. Required.
	Source string `json:"source" yaml:"source"`
	// Extension narrows inclusion to names carrying this suffix.
	// A missing leading dot is added during normalization ("md" -> ".md").
	Extension string `json:"extension,omitempty" yaml:"extension,omitempty"`
	// KeepDirectories exempts directory entries from the extension check
	// during Scan, so an extension-restricted matcher does not block
	// recursive traversal. Hidden-name and rule checks still apply.
	KeepDirectories bool `json:"keep_directories,omitempty" yaml:"keep_directories,omitempty"`
	// Logger receives debug events for rule loading and directory scans.
	// Nil disables logging.
	Logger *zerolog.Logger `json:"-" yaml:"-"`
}

// Reason identifies the check that excluded a name.
type Reason uint8

const (
	// ReasonNone means no check excluded the name.
	ReasonNone Reason = iota
	// ReasonHidden means the name starts with a dot.
	ReasonHidden
	// ReasonExtension means the name lacks the configured extension suffix.
	ReasonExtension
	// ReasonRule means the name matched a rules file pattern.
	ReasonRule
)

// Decision is a deterministic exclusion verdict for one name.
type Decision struct {
	// Pattern is the matched rule pattern, empty when no rule matched.
	Pattern string `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	// RuleIndex is the matched rule index in rules file order, -1 when no
	// rule matched.
	RuleIndex int `json:"rule_index" yaml:"rule_index"`
	// Reason is the check that excluded the name, ReasonNone otherwise.
	Reason Reason `json:"reason" yaml:"reason"`
	// Excluded reports the final exclusion outcome.
	Excluded bool `json:"excluded" yaml:"excluded"`
}

// applyDefaults normalizes shorthand option fields.
func (opts *Options) applyDefaults() {
	opts.Extension = normalizeExtension(opts.Extension)
}
