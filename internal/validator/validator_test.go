package validator

import (
	"errors"
	"testing"
)

// One detector for the whole package; building it is slow.
var shared = New(nil)

const englishText = "This is a longer piece of text that should be detected as English."

func TestCheck_EmptyTargetLang(t *testing.T) {
	if err := shared.Check("Some translated text", ""); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCheck_EmptyTranslation(t *testing.T) {
	for _, in := range []string{"", "   ", "<p> </p>"} {
		if err := shared.Check(in, "en"); err == nil {
			t.Errorf("Check(%q) expected error for empty translation", in)
		}
	}
}

func TestCheck_ShortText(t *testing.T) {
	if err := shared.Check("Hi", "uk"); err != nil {
		t.Errorf("unexpected error for short text: %v", err)
	}
}

func TestCheck_Matching(t *testing.T) {
	tests := []struct {
		name string
		text string
		lang string
	}{
		{name: "english", text: englishText, lang: "en"},
		{name: "upper case code", text: englishText, lang: "EN"},
		{name: "region subtag", text: englishText, lang: "en-GB"},
		{name: "ukrainian", text: "Це є тестовий текст українською мовою для перевірки роботи валідатора.", lang: "uk"},
		{name: "markup ignored", text: "<p>" + englishText + "</p>", lang: "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := shared.Check(tt.text, tt.lang); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestCheck_Mismatch(t *testing.T) {
	err := shared.Check(englishText, "uk")
	if err == nil {
		t.Fatal("expected error for mismatched language")
	}

	var mismatch *MismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected *MismatchError, got %T", err)
	}
	if mismatch.Expected != "uk" || mismatch.Detected != "en" {
		t.Errorf("got %+v", mismatch)
	}
	if err.Error() != "expected uk but detected en" {
		t.Errorf("Error() = %q", err.Error())
	}
}
