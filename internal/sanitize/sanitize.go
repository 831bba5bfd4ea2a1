// Package sanitize removes leaked internal-reasoning markup from model output.
//
// Some reasoning-tuned models leak their chain of thought wrapped in
// <think>...</think>, and a few emit only a stray closing tag with the
// reasoning appended after the visible answer. Both shapes are cleaned here
// before a reply is stored or shown to players.
package sanitize

import (
	"regexp"
	"strings"
)

const closeTag = "</think>"

var (
	pairPattern = regexp.MustCompile(`(?s)<think>.*?</think>`)
	tagPattern  = regexp.MustCompile(`</?think>`)
)

// Clean strips reasoning markup from raw model output. It is a total function:
// any input, including the empty string, yields a defined result, and the
// result never contains the marker text. Clean is idempotent.
func Clean(raw string) string {
	if raw == "" {
		return ""
	}

	text := raw
	if stripped := pairPattern.ReplaceAllString(text, ""); stripped != text {
		text = strings.TrimSpace(stripped)
	} else if idx := strings.Index(text, closeTag); idx >= 0 {
		// A lone closing tag with no opener: the visible answer is whatever
		// came before it, the rest is leaked reasoning.
		text = strings.TrimSpace(text[:idx])
	}

	// Belt and braces for any markers still dangling.
	text = tagPattern.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}
