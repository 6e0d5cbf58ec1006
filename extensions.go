// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ConfPub
// Source: github.com/confpub/namerules

package namerules

import "strings"

// normalizeExtension converts shorthand extension input to suffix form.
//
// Accepted forms:
//   - ""      (no extension filter)
//   - "md"
//   - ".md"
//
// Non-empty values always come out with a leading dot. No case folding:
// the suffix check is case-sensitive.
func normalizeExtension(ext string) string {
	if ext == "" {
		return ""
	}

	if !strings.HasPrefix(ext, ".") {
		return "." + ext
	}

	return ext
}

// ExtensionMatches reports whether name satisfies the extension option.
//
// True when no extension is configured or name ends with the configured
// suffix, leading dot included. Exact case-sensitive suffix comparison.
func (m *Matcher) ExtensionMatches(name string) bool {
	return m.extension == "" || strings.HasSuffix(name, m.extension)
}
