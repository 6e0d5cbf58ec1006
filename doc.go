// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ConfPub
// Source: github.com/confpub/namerules

/*
Package namerules filters file and directory names against an ignore-style
rules file during directory traversal.

The package operates on bare names, never paths: one shell-style glob pattern
per rules file line ("*", "?", "[seq]", "[!seq]"), "#" lines as comments,
empty lines skipped. There is no negation operator; a line starting with "!"
is a literal pattern. Hidden names (leading dot) are always excluded, and an
optional extension filter narrows inclusion to names carrying a specific
suffix.

Basic flow:
  - construct a matcher for one directory (`New` / `NewWithFs`)
  - ask for decisions (`Evaluate` / `IsExcluded` / `IsIncluded`)
  - filter name batches (`Filter`) or directory listings (`Scan`)

`Scan` is non-recursive. A recursive walker calls `Scan` once per directory
level and descends into the surviving subdirectories itself.
*/
package namerules
