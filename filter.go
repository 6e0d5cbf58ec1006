// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ConfPub
// Source: github.com/confpub/namerules

package namerules

import (
	"fmt"

	"github.com/spf13/afero"
)

// Filter returns the subsequence of names included by the decision policy,
// preserving input order.
//
// The call is all-or-nothing: a pattern error fails the whole call and no
// partial output is returned.
func (m *Matcher) Filter(names []string) ([]string, error) {
	out := make([]string, 0, len(names))
	for _, name := range names {
		included, err := m.IsIncluded(name)
		if err != nil {
			return nil, err
		}

		if included {
			out = append(out, name)
		}
	}

	return out, nil
}

// Scan lists the immediate entries of dir and filters them by name.
//
// Files and subdirectories pass through the same checks. When
// Options.KeepDirectories is set, subdirectory entries skip the extension
// check so extension-restricted matchers do not block recursive traversal.
//
// Scan is non-recursive and all-or-nothing: a listing failure surfaces as
// ErrDirectoryScan, a pattern error as ErrInvalidPattern, and no partial
// name list is returned.
func (m *Matcher) Scan(dir string) ([]string, error) {
	entries, err := afero.ReadDir(m.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrDirectoryScan, dir, err)
	}

	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		res, err := m.evaluate(entry.Name(), entry.IsDir())
		if err != nil {
			return nil, err
		}

		if !res.Excluded {
			out = append(out, entry.Name())
		}
	}

	m.log.Debug().
		Str("dir", dir).
		Int("entries", len(entries)).
		Int("kept", len(out)).
		Msg("directory scanned")

	return out, nil
}
