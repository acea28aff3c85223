// Package prompt holds the default instruction templates sent with text
// translation requests. The {src}, {tgt} and {text} placeholders are filled
// in by the translation service, not by this client.
package prompt

import "regexp"

const (
	// Plain asks for a bare translation.
	Plain = "Translate the following text from {src} into {tgt}. Only output the translated text, without any explanations. Source text: {text} "

	// Markup asks the model to carry inline tags over into the translation.
	Markup = "Translate the following text from {src} to {tgt}, including correctly transferring the markup from the source sentence into the translation. Make sure to keep all the tags, it is very important to copy all the tags from the source into the correct places in the translation. Do not add any new tags not present in the source, only produce the source tags. Do not add any explanations, make sure to only output the translated text including the transferred markup tags and nothing else. Source text: {text}"
)

// opening, closing and self-closing tags
var reTag = regexp.MustCompile(`<[^>]+>`)

// HasMarkup reports whether text contains anything that looks like a tag.
func HasMarkup(text string) bool {
	return reTag.MatchString(text)
}

// Default picks the template used when no prompt was given. Markup is chosen
// only for tagged input that is not sent inside the XML envelope; in tag mode
// the service handles the markup itself.
func Default(text string, tags bool) string {
	if !HasMarkup(text) || tags {
		return Plain
	}
	return Markup
}

// Resolve returns explicit when the user set a prompt, even an empty one,
// otherwise Default(text, tags). An empty result means no prompt is sent.
func Resolve(explicit string, set bool, text string, tags bool) string {
	if set {
		return explicit
	}
	return Default(text, tags)
}
