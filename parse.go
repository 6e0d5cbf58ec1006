// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ConfPub
// Source: github.com/confpub/namerules

package namerules

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseRules reads glob patterns from reader, one pattern per line.
//
// Semantics:
// - empty lines are skipped
// - "#" lines are comments
// - remaining lines are kept verbatim, in input order
//
// Lines are not trimmed: a whitespace-only line is a literal pattern, and
// "!pattern" is a literal pattern starting with "!", not a negation.
func ParseRules(r io.Reader) ([]string, error) {
	s := bufio.NewScanner(r)
	rules := make([]string, 0, 16)

	for s.Scan() {
		line := strings.TrimSuffix(s.Text(), "\r")
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "#") {
			continue
		}

		rules = append(rules, line)
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scan rules: %w", err)
	}

	return rules, nil
}

// ParseRulesString parses rules from string input.
func ParseRulesString(src string) ([]string, error) {
	return ParseRules(strings.NewReader(src))
}
