// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ConfPub
// Source: github.com/confpub/namerules

package namerules

import "errors"

// Sentinel errors for namerules operations.
var (
	// ErrInvalidSource indicates a missing or invalid rules file name.
	ErrInvalidSource = errors.New("invalid rules file name")
	// ErrRulesRead indicates the rules file exists but could not be read.
	ErrRulesRead = errors.New("read rules file")
	// ErrDirectoryScan indicates the scan target could not be listed.
	ErrDirectoryScan = errors.New("scan directory")
	// ErrInvalidPattern indicates a rule pattern rejected by the glob engine.
	ErrInvalidPattern = errors.New("invalid pattern")
)
