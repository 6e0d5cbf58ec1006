// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ConfPub
// Source: github.com/confpub/namerules

package namerules

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// LoadRules reads and parses rules from the source file resolved against dir.
//
// A missing rules file is not an error and yields an empty rule set. A file
// that exists but cannot be opened or read fails with ErrRulesRead wrapping
// the underlying error.
func LoadRules(fsys afero.Fs, dir, source string) ([]string, error) {
	path := filepath.Join(dir, source)

	exists, err := afero.Exists(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("%w: stat %q: %w", ErrRulesRead, path, err)
	}

	if !exists {
		return nil, nil
	}

	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %q: %w", ErrRulesRead, path, err)
	}
	defer func() { _ = f.Close() }()

	rules, err := ParseRules(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrRulesRead, path, err)
	}

	return rules, nil
}
