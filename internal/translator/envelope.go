package translator

import (
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

const (
	envelopeOpen  = "<mytestdoc>"
	envelopeClose = "</mytestdoc>"

	envelopeExt = ".inxml"
)

// Wrap embeds text in the synthetic root element so the service treats inline
// tags as markup.
func Wrap(text string) string {
	return envelopeOpen + text + envelopeClose
}

// Strip trims the response and removes every envelope marker from it. This is
// plain substring removal: a marker that legitimately occurs inside the
// translated text is removed as well.
func Strip(text string) string {
	text = strings.TrimSpace(text)
	text = strings.ReplaceAll(text, envelopeOpen, "")
	return strings.ReplaceAll(text, envelopeClose, "")
}

// envelopeFileName returns a random name of the form line<32 hex>.inxml used
// for the uploaded envelope part.
func envelopeFileName() string {
	id := uuid.New()
	return "line" + hex.EncodeToString(id[:]) + envelopeExt
}
