// Package translator talks to the remote translation service. Every call is a
// single POST to {base_url}/{model}; there are no retries.
package translator

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Client sends translation requests to one service base URL.
type Client struct {
	baseURL string
	client  *http.Client
	logger  zerolog.Logger
}

// NewClient returns a Client for baseURL. A nil httpClient is replaced by a
// client without timeout.
func NewClient(baseURL string, httpClient *http.Client, logger zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  httpClient,
		logger:  logger.With().Str("component", "translator").Logger(),
	}
}

// Endpoint returns the URL requests for model are posted to.
func (c *Client) Endpoint(model string) string {
	return c.baseURL + "/" + model
}

// TranslateText sends req.Text to the service and returns the translation
// with the envelope markers removed. HTML entities are left as the service
// returned them.
func (c *Client) TranslateText(ctx context.Context, req TextRequest) (string, error) {
	fields := metaFields(req.SourceLang, req.TargetLang, req.Prompt)

	var (
		body        io.Reader
		contentType string
		err         error
	)
	if req.Tags {
		body, contentType, err = multipartBody(fields, envelopeFileName(), []byte(Wrap(req.Text)))
		if err != nil {
			return "", err
		}
	} else {
		body, contentType = formBody(req.Text, fields)
	}

	data, err := c.post(ctx, req.Model, body, contentType)
	if err != nil {
		return "", err
	}

	return Strip(strings.ToValidUTF8(string(data), "�")), nil
}

// TranslateFile reads the file at req.Path and sends its raw bytes to the
// service. The response body is returned untouched. An unreadable file fails
// before any network I/O.
func (c *Client) TranslateFile(ctx context.Context, req FileRequest) ([]byte, error) {
	content, err := os.ReadFile(req.Path)
	if err != nil {
		return nil, fmt.Errorf("reading file '%s': %w", req.Path, err)
	}

	fields := metaFields(req.SourceLang, req.TargetLang, req.Prompt)

	var (
		body        io.Reader
		contentType string
	)
	if req.Tags {
		body, contentType, err = multipartBody(fields, filepath.Base(req.Path), content)
		if err != nil {
			return nil, err
		}
	} else {
		body, contentType = formBody(string(content), fields)
	}

	return c.post(ctx, req.Model, body, contentType)
}

// post sends body to the model endpoint and returns the body of a 200 response.
func (c *Client) post(ctx context.Context, model string, body io.Reader, contentType string) ([]byte, error) {
	endpoint := c.Endpoint(model)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", contentType)

	c.logger.Debug().
		Str("endpoint", endpoint).
		Str("content_type", contentType).
		Msg("sending translation request")

	start := time.Now()
	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug().
		Int("status", resp.StatusCode).
		Int("bytes", len(data)).
		Dur("latency", time.Since(start)).
		Msg("translation response received")

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	return data, nil
}
