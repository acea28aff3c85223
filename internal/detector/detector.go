// Package detector guesses the source language of input text when the user
// passes "auto" instead of a language code.
package detector

import (
	"fmt"
	"strings"

	lingua "github.com/pemistahl/lingua-go"
)

// Auto is the pseudo language code that triggers detection.
const Auto = "auto"

type Detector struct {
	detector lingua.LanguageDetector
}

// New builds a detector over all languages lingua knows. Building it loads the
// language models, so keep one instance per process.
func New() *Detector {
	detector := lingua.NewLanguageDetectorBuilder().
		FromAllLanguages().
		Build()

	return &Detector{detector: detector}
}

func (d *Detector) Detect(text string) (lingua.Language, bool) {
	if strings.TrimSpace(text) == "" {
		return lingua.Unknown, false
	}
	return d.detector.DetectLanguageOf(text)
}

// DetectISO returns the lower-case ISO 639-1 code of text's language, the form
// the translation service expects in src/tgt.
func (d *Detector) DetectISO(text string) (string, bool) {
	lang, ok := d.Detect(text)
	if !ok {
		return "", false
	}
	return strings.ToLower(lang.IsoCode639_1().String()), true
}

// Resolve returns lang unchanged unless it is Auto, in which case the language
// of text is detected.
func (d *Detector) Resolve(lang, text string) (string, error) {
	if !strings.EqualFold(lang, Auto) {
		return lang, nil
	}
	code, ok := d.DetectISO(text)
	if !ok {
		return "", fmt.Errorf("could not detect source language, pass --src explicitly")
	}
	return code, nil
}
