// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ConfPub
// Source: github.com/confpub/namerules

package namerules

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/spf13/afero"
)

func TestLoadRules(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	err := afero.WriteFile(fsys, "docs/.mdignore", []byte("# drafts\n\ndraft*\n*.tmp\n"), 0o600)
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	rules, err := LoadRules(fsys, "docs", ".mdignore")
	if err != nil {
		t.Fatalf("LoadRules: %v", err)
	}

	if len(rules) != 2 || rules[0] != "draft*" || rules[1] != "*.tmp" {
		t.Fatalf("rules=%q, want [draft* *.tmp]", rules)
	}
}

func TestLoadRules_MissingFile(t *testing.T) {
	t.Parallel()

	rules, err := LoadRules(afero.NewMemMapFs(), "docs", ".mdignore")
	if err != nil {
		t.Fatalf("LoadRules: %v", err)
	}

	if len(rules) != 0 {
		t.Fatalf("len(rules)=%d, want 0", len(rules))
	}
}

func TestLoadRules_OpenError(t *testing.T) {
	t.Parallel()

	base := afero.NewMemMapFs()
	if err := afero.WriteFile(base, "docs/.mdignore", []byte("*.tmp\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, err := LoadRules(openFailFs{base}, "docs", ".mdignore")
	if !errors.Is(err, ErrRulesRead) {
		t.Fatalf("err=%v, want ErrRulesRead", err)
	}

	if !errors.Is(err, fs.ErrPermission) {
		t.Fatalf("err=%v, want wrapped fs.ErrPermission", err)
	}
}

// openFailFs fails every Open call while keeping stat behavior intact.
type openFailFs struct {
	afero.Fs
}

func (openFailFs) Open(string) (afero.File, error) {
	return nil, fs.ErrPermission
}
