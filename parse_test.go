// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ConfPub
// Source: github.com/confpub/namerules

package namerules

import "testing"

func TestParseRules(t *testing.T) {
	t.Parallel()

	rules, err := ParseRulesString("# comment\n\ndraft*\n!literal\n   \n*.tmp\r\n")
	if err != nil {
		t.Fatalf("ParseRulesString: %v", err)
	}

	want := []string{"draft*", "!literal", "   ", "*.tmp"}
	if len(rules) != len(want) {
		t.Fatalf("len(rules)=%d, want %d: %q", len(rules), len(want), rules)
	}

	for i := range want {
		if rules[i] != want[i] {
			t.Fatalf("rules[%d]=%q, want %q", i, rules[i], want[i])
		}
	}
}

func TestParseRules_CommentAndBlank(t *testing.T) {
	t.Parallel()

	rules, err := ParseRulesString("# ignore drafts\n\ndraft*\n")
	if err != nil {
		t.Fatalf("ParseRulesString: %v", err)
	}

	if len(rules) != 1 || rules[0] != "draft*" {
		t.Fatalf("rules=%q, want [draft*]", rules)
	}
}

func TestParseRules_NoTrimming(t *testing.T) {
	t.Parallel()

	rules, err := ParseRulesString(" *.tmp\nname \n")
	if err != nil {
		t.Fatalf("ParseRulesString: %v", err)
	}

	if len(rules) != 2 || rules[0] != " *.tmp" || rules[1] != "name " {
		t.Fatalf("rules=%q, want leading/trailing spaces preserved", rules)
	}
}

func TestParseRules_Empty(t *testing.T) {
	t.Parallel()

	rules, err := ParseRulesString("")
	if err != nil {
		t.Fatalf("ParseRulesString: %v", err)
	}

	if len(rules) != 0 {
		t.Fatalf("len(rules)=%d, want 0", len(rules))
	}
}
