package capture

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/go-faster/errors"
)

// HTTPSubmitter posts detected codes to the ingestion endpoint.
type HTTPSubmitter struct {
	httpClient *http.Client
	url        string
	token      string
}

// NewHTTPSubmitter constructs a submitter for the given scan endpoint URL and
// device token.
func NewHTTPSubmitter(httpClient *http.Client, url, token string) *HTTPSubmitter {
	return &HTTPSubmitter{
		httpClient: httpClient,
		url:        url,
		token:      token,
	}
}

// Submit posts one detected code.
func (s *HTTPSubmitter) Submit(ctx context.Context, code string) error {
	body, err := json.Marshal(map[string]string{
		"barcode": code,
		"token":   s.token,
	})
	if err != nil {
		return errors.Wrap(err, "could not marshal scan payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "could not create scan request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "could not send scan request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))

		return errors.Errorf("scan rejected with status %d: %s",
			resp.StatusCode, strings.TrimSpace(string(b)))
	}

	return nil
}
