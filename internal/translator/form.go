package translator

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"net/url"
	"strings"
)

const (
	fieldInput  = "input_text"
	fieldSource = "src"
	fieldTarget = "tgt"
	fieldPrompt = "prompt"

	xmlContentType  = "text/xml"
	formContentType = "application/x-www-form-urlencoded"
)

type formField struct {
	name  string
	value string
}

// metaFields returns the language and prompt fields in the order the service
// expects them. An empty prompt is left out entirely.
func metaFields(src, tgt, prompt string) []formField {
	fields := []formField{
		{name: fieldSource, value: src},
		{name: fieldTarget, value: tgt},
	}
	if prompt != "" {
		fields = append(fields, formField{name: fieldPrompt, value: prompt})
	}
	return fields
}

// formBody encodes input and the meta fields as application/x-www-form-urlencoded.
func formBody(input string, fields []formField) (io.Reader, string) {
	values := url.Values{}
	values.Set(fieldInput, input)
	for _, f := range fields {
		values.Set(f.name, f.value)
	}
	return strings.NewReader(values.Encode()), formContentType
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// multipartBody writes the meta fields as ordinary form fields followed by
// content as an XML file part named fileName.
func multipartBody(fields []formField, fileName string, content []byte) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, f := range fields {
		if err := w.WriteField(f.name, f.value); err != nil {
			return nil, "", fmt.Errorf("failed to write field %s: %w", f.name, err)
		}
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		fieldInput, quoteEscaper.Replace(fileName)))
	h.Set("Content-Type", xmlContentType)

	part, err := w.CreatePart(h)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create file part: %w", err)
	}
	if _, err := part.Write(content); err != nil {
		return nil, "", fmt.Errorf("failed to write file part: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to close multipart body: %w", err)
	}

	return &buf, w.FormDataContentType(), nil
}
