// Package validator checks that a translation came back in the requested
// target language.
package validator

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/language"

	"github.com/valpere/lindatran/internal/detector"
)

// minValidationLength is the rune count below which detection is too
// unreliable to judge a translation.
const minValidationLength = 20

var tagRe = regexp.MustCompile(`<[^>]+>`)

// MismatchError reports a translation detected in the wrong language.
type MismatchError struct {
	Expected string
	Detected string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("expected %s but detected %s", e.Expected, e.Detected)
}

// Validator checks translations against their target language. It reuses the
// detector it is given; building one loads every language model.
type Validator struct {
	det *detector.Detector
}

func New(det *detector.Detector) *Validator {
	if det == nil {
		det = detector.New()
	}
	return &Validator{det: det}
}

// Check returns nil when translation appears to be in targetLang, is too short
// to judge, or its language cannot be determined. Markup is ignored. Region
// and script subtags of targetLang are not compared.
func (v *Validator) Check(translation, targetLang string) error {
	if targetLang == "" {
		return nil
	}

	text := strings.TrimSpace(tagRe.ReplaceAllString(translation, " "))
	if text == "" {
		return fmt.Errorf("translation is empty")
	}
	if len([]rune(text)) < minValidationLength {
		return nil
	}

	detected, ok := v.det.DetectISO(text)
	if !ok {
		return nil
	}

	if !strings.EqualFold(detected, baseLanguage(targetLang)) {
		return &MismatchError{Expected: targetLang, Detected: detected}
	}
	return nil
}

func baseLanguage(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	base, _ := tag.Base()
	return base.String()
}
