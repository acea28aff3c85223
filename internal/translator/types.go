package translator

import "fmt"

// TextRequest describes one plain-text translation call.
type TextRequest struct {
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
	Model      string `json:"model"`
	Text       string `json:"text"`
	Prompt     string `json:"prompt,omitempty"`
	Tags       bool   `json:"tags"`
}

// FileRequest describes one whole-file translation call. The file at Path is
// read by the client right before the request is built.
type FileRequest struct {
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
	Model      string `json:"model"`
	Path       string `json:"path"`
	Prompt     string `json:"prompt,omitempty"`
	Tags       bool   `json:"tags"`
}

// StatusError is returned when the service answers with anything but 200.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%d - %s", e.StatusCode, e.Body)
}
