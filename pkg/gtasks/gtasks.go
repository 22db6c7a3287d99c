// Package gtasks is a minimal client for the Google Tasks REST API, covering
// just what the scan journal needs: enumerating task lists, creating one and
// inserting tasks.
package gtasks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-faster/errors"
	"golang.org/x/oauth2"
)

const (
	// DefaultBaseURL is the Google Tasks API root.
	DefaultBaseURL = "https://tasks.googleapis.com/tasks/v1"
	// tokenURL is Google's OAuth2 token endpoint.
	tokenURL = "https://oauth2.googleapis.com/token"
)

// TaskList is one Google Tasks list.
type TaskList struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Task is a single task to insert into a list.
type Task struct {
	Title string `json:"title"`
	Notes string `json:"notes,omitempty"`
}

// OAuthClient builds an http.Client that authenticates every request with an
// access token minted from the given refresh token.
func OAuthClient(ctx context.Context, clientID, clientSecret, refreshToken string) *http.Client {
	conf := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     oauth2.Endpoint{TokenURL: tokenURL},
	}

	return oauth2.NewClient(ctx, conf.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken}))
}

// Client talks to the Google Tasks API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// New constructs a Client. An empty baseURL selects the public API.
func New(httpClient *http.Client, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// Lists enumerates the task lists of the authenticated user.
func (c *Client) Lists(ctx context.Context) ([]TaskList, error) {
	b, err := c.do(ctx, http.MethodGet, "/users/@me/lists", nil)
	if err != nil {
		return nil, err
	}

	var body struct {
		Items []TaskList `json:"items"`
	}
	if err := json.Unmarshal(b, &body); err != nil {
		return nil, errors.Wrap(err, "could not decode task lists")
	}

	return body.Items, nil
}

// CreateList creates a new task list with the given title.
func (c *Client) CreateList(ctx context.Context, title string) (TaskList, error) {
	b, err := c.do(ctx, http.MethodPost, "/users/@me/lists", map[string]string{"title": title})
	if err != nil {
		return TaskList{}, err
	}

	var list TaskList
	if err := json.Unmarshal(b, &list); err != nil {
		return TaskList{}, errors.Wrap(err, "could not decode created task list")
	}

	return list, nil
}

// InsertTask appends a task to the given list.
func (c *Client) InsertTask(ctx context.Context, listID string, task Task) error {
	path := fmt.Sprintf("/lists/%s/tasks", url.PathEscape(listID))
	if _, err := c.do(ctx, http.MethodPost, path, task); err != nil {
		return err
	}

	return nil
}

func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		body, err := json.Marshal(payload)
		if err != nil {
			return nil, errors.Wrap(err, "could not marshal request")
		}
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, errors.Wrap(err, "could not create request")
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "could not send request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "could not read response body")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("tasks api returned status %d: %s",
			resp.StatusCode, strings.TrimSpace(string(b)))
	}

	return b, nil
}
