package translator

import (
	"strings"
	"testing"
)

func TestWrap(t *testing.T) {
	if got := Wrap("<b>Hi</b>"); got != "<mytestdoc><b>Hi</b></mytestdoc>" {
		t.Errorf("Wrap() = %q", got)
	}
}

func TestStrip(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain text", in: "Bonjour", want: "Bonjour"},
		{name: "surrounding whitespace", in: "\n  Bonjour \n", want: "Bonjour"},
		{name: "envelope", in: "<mytestdoc><b>Salut</b></mytestdoc>", want: "<b>Salut</b>"},
		{name: "envelope with whitespace", in: " <mytestdoc>a</mytestdoc>\n", want: "a"},
		{name: "only closing marker", in: "a</mytestdoc>", want: "a"},
		{name: "repeated markers", in: "<mytestdoc>a</mytestdoc><mytestdoc>b</mytestdoc>", want: "ab"},
		{name: "whitespace inside envelope kept", in: "<mytestdoc> a </mytestdoc>", want: " a "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Strip(tt.in); got != tt.want {
				t.Errorf("Strip(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStrip_NoMarkersSurvive(t *testing.T) {
	inputs := []string{
		"",
		"Hello",
		"<p>x</p>",
		"a\nb\n",
		"<mytestdoc></mytestdoc>",
		"<mytestdoc>\n<i>line</i>\n</mytestdoc>",
	}
	for _, in := range inputs {
		got := Strip(Wrap(in))
		if strings.Contains(got, envelopeOpen) || strings.Contains(got, envelopeClose) {
			t.Errorf("Strip(Wrap(%q)) still contains a marker: %q", in, got)
		}
	}
}

func TestEnvelopeFileName(t *testing.T) {
	name := envelopeFileName()
	if !envelopeNameRe.MatchString(name) {
		t.Errorf("unexpected envelope file name %q", name)
	}
}

func TestStatusError_Error(t *testing.T) {
	err := &StatusError{StatusCode: 500, Body: "boom"}
	if err.Error() != "500 - boom" {
		t.Errorf("Error() = %q", err.Error())
	}
}
