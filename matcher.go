// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ConfPub
// Source: github.com/confpub/namerules

package namerules

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Matcher evaluates exclusion decisions for file and directory names against
// options and rules fixed at construction.
//
// Rules are loaded once and never reloaded; a constructed Matcher has no
// mutable state and is safe for concurrent readers.
type Matcher struct {
	fs        afero.Fs
	log       zerolog.Logger
	rules     []string
	extension string
	keepDirs  bool
}

// New loads rules from the options source file in dir and builds a matcher
// backed by the operating system filesystem.
//
// A missing rules file yields a matcher with an empty rule set; only the
// hidden-name and extension checks apply then.
func New(opts Options, dir string) (*Matcher, error) {
	return NewWithFs(afero.NewReadOnlyFs(afero.NewOsFs()), opts, dir)
}

// NewWithFs is New over a caller-supplied filesystem.
func NewWithFs(fsys afero.Fs, opts Options, dir string) (*Matcher, error) {
	opts.applyDefaults()
	if opts.Source == "" {
		return nil, ErrInvalidSource
	}

	rules, err := LoadRules(fsys, dir, opts.Source)
	if err != nil {
		return nil, err
	}

	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}

	log.Debug().
		Str("dir", dir).
		Str("source", opts.Source).
		Int("rules", len(rules)).
		Msg("rules loaded")

	return &Matcher{
		fs:        fsys,
		log:       log,
		rules:     rules,
		extension: opts.Extension,
		keepDirs:  opts.KeepDirectories,
	}, nil
}

// Rules returns the loaded patterns in rules file order.
func (m *Matcher) Rules() []string {
	out := make([]string, len(m.rules))
	copy(out, m.rules)
	return out
}

// Evaluate returns a deterministic exclusion decision for one name.
//
// Decision policy, first check wins:
// - hidden names (leading dot) are excluded
// - names failing the extension check are excluded
// - names matching any rule pattern are excluded
// - everything else is included
//
// Patterns are not validated at load time; a pattern the glob engine rejects
// fails with ErrInvalidPattern on first use.
func (m *Matcher) Evaluate(name string) (Decision, error) {
	return m.evaluate(name, false)
}

func (m *Matcher) evaluate(name string, isDir bool) (Decision, error) {
	if strings.HasPrefix(name, ".") {
		return Decision{Excluded: true, Reason: ReasonHidden, RuleIndex: -1}, nil
	}

	if !(isDir && m.keepDirs) && !m.ExtensionMatches(name) {
		return Decision{Excluded: true, Reason: ReasonExtension, RuleIndex: -1}, nil
	}

	for i, rule := range m.rules {
		ok, err := doublestar.Match(rule, name)
		if err != nil {
			return Decision{RuleIndex: -1}, fmt.Errorf("%w: %q", ErrInvalidPattern, rule)
		}

		if ok {
			return Decision{
				Excluded:  true,
				Reason:    ReasonRule,
				RuleIndex: i,
				Pattern:   rule,
			}, nil
		}
	}

	return Decision{RuleIndex: -1}, nil
}

// IsExcluded reports whether name is excluded by the decision policy.
func (m *Matcher) IsExcluded(name string) (bool, error) {
	res, err := m.Evaluate(name)
	if err != nil {
		return false, err
	}

	return res.Excluded, nil
}

// IsIncluded reports whether name is included by the decision policy.
// Always the exact negation of IsExcluded.
func (m *Matcher) IsIncluded(name string) (bool, error) {
	excluded, err := m.IsExcluded(name)
	if err != nil {
		return false, err
	}

	return !excluded, nil
}
