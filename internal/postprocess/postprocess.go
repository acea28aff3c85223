// Package postprocess strips chatter that LLM-backed translation models add
// around the actual translation. It only runs when --clean is given, so the
// default output matches what the service returned.
package postprocess

import (
	"regexp"
	"strings"
)

// Clean removes reasoning blocks and a leading "Here is the translation:"
// style preamble, then trims the result.
func Clean(text string) string {
	text = removeThinkingBlocks(text)
	text = removePreamble(text)
	return strings.TrimSpace(text)
}

// RE2 has no backreferences, so each tag pair is spelled out.
var thinkingBlockRe = regexp.MustCompile(
	`(?is)<think>.*?</think>|<thinking>.*?</thinking>|<reasoning>.*?</reasoning>`,
)

// Only closed blocks are removed: an unterminated <think> may be markup the
// user asked to keep.
func removeThinkingBlocks(text string) string {
	return strings.TrimSpace(thinkingBlockRe.ReplaceAllString(text, ""))
}

// preambleRes are anchored at the start and require a colon, so a sentence
// that merely begins with "Here is" survives.
var preambleRes = []*regexp.Regexp{
	// Here is / Here's [the] [translated] translation|text [from X] [into|to Y]:
	regexp.MustCompile(`(?i)^(?:(?:certainly|sure|of course)[,.!]?\s+)?here(?:'s| is)(?: the| your)? (?:translated )?(?:translation|text)(?: from [\p{L} ]+?)?(?: (?:in|into|to) [\p{L} ]+?)?\s*:`),
	// [The] translation|translated text [into Y]:
	regexp.MustCompile(`(?i)^(?:the )?(?:translation|translated text)(?: (?:in|into|to) [\p{L} ]+?)?\s*:`),
}

func removePreamble(text string) string {
	for _, re := range preambleRes {
		if loc := re.FindStringIndex(text); loc != nil {
			return strings.TrimSpace(text[loc[1]:])
		}
	}
	return text
}
