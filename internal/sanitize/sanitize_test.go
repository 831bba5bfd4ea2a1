package sanitize

import (
	"strings"
	"testing"
)

func TestCleanPairedMarkers(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"single pair", "A<think>secret</think>B", "AB"},
		{"multiple pairs", "<think>one</think>はい<think>two</think>です", "はいです"},
		{"pair spanning lines", "回答: はい\n<think>line one\nline two</think>\n残りターン数: 9", "回答: はい\n\n残りターン数: 9"},
		{"only a pair", "<think>everything hidden</think>", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Clean(tc.in); got != tc.want {
				t.Fatalf("Clean(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestCleanStrayClosingMarker(t *testing.T) {
	in := "unsolved\nhint: x</think>leaked reasoning</think>"
	want := "unsolved\nhint: x"
	if got := Clean(in); got != want {
		t.Fatalf("Clean(%q) = %q, want %q", in, got, want)
	}
}

func TestCleanStrayOpeningMarker(t *testing.T) {
	if got := Clean("はい<think>"); got != "はい" {
		t.Fatalf("got %q, want %q", got, "はい")
	}
}

func TestCleanEmpty(t *testing.T) {
	if got := Clean(""); got != "" {
		t.Fatalf("Clean(\"\") = %q, want empty", got)
	}
}

func TestCleanPlainTextUntouched(t *testing.T) {
	in := "テーマは『日本のG1出走経験がある競走馬名』ですね。\nはい/いいえで答えられる質問をしてください。"
	if got := Clean(in); got != in {
		t.Fatalf("plain text modified: %q", got)
	}
}

func TestCleanIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"A<think>secret</think>B",
		"unsolved\nhint: x</think>leaked</think>",
		"  padded answer  ",
		"<think>unclosed opener leaks nothing visible",
	}
	for _, in := range inputs {
		once := Clean(in)
		if twice := Clean(once); twice != once {
			t.Fatalf("Clean not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestCleanOutputNeverContainsMarkers(t *testing.T) {
	inputs := []string{
		"<think>a</think><think>b</think>",
		"x</think>y",
		"<think>",
		"</think>",
		"mixed<think>pair</think>and stray</think>tail",
	}
	for _, in := range inputs {
		got := Clean(in)
		for _, marker := range []string{"<think>", "</think>"} {
			if strings.Contains(got, marker) {
				t.Fatalf("Clean(%q) = %q still contains %q", in, got, marker)
			}
		}
	}
}
