package picnic

import (
	"bytes"
	"cartscan/pkg/barcode"
	"cartscan/pkg/domain"
	"context"
	"crypto/md5" //nolint: gosec // the storefront login exchange requires an md5 secret
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-faster/errors"
)

const (
	// apiVersion is the storefront API version this client speaks.
	apiVersion = "15"
	// clientID identifies the client type to the login endpoint.
	clientID = 1
	// authHeader carries the session credential on authenticated calls.
	authHeader = "x-picnic-auth"
	// agentHeader mimics the mobile app agent the storefront expects.
	agentHeader = "30100;1.15.232-15154"
)

// Options configure the REST client.
type Options struct {
	// CountryCode selects the regional storefront, e.g. "NL" or "DE".
	CountryCode string
	// BaseURL overrides the derived storefront API base URL when non-empty.
	BaseURL string
}

// Client talks to the Picnic storefront REST API and fulfills the Catalog
// interface. It is safe for concurrent use; session state lives in the
// Session values passed per call, not in the client.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests to the storefront
	baseURL    string       // baseURL is the storefront API root without trailing slash
}

// Ensure Client conforms to the Catalog interface at compile time.
var _ Catalog = (*Client)(nil)

// New constructs a Client that uses the provided http.Client and options to
// interact with the storefront API.
func New(httpClient *http.Client, opts Options) *Client {
	baseURL := opts.BaseURL
	if baseURL == "" {
		country := strings.ToLower(opts.CountryCode)
		if country == "" {
			country = "nl"
		}
		baseURL = fmt.Sprintf("https://storefront.picnic.app/%s/api/%s", country, apiVersion)
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// Login performs the credential exchange. The storefront expects the
// password as an md5 hex digest and returns the session key in the
// x-picnic-auth response header.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	secret := md5.Sum([]byte(password)) //nolint: gosec
	body, err := json.Marshal(map[string]any{
		"key":       username,
		"secret":    hex.EncodeToString(secret[:]),
		"client_id": clientID,
	})
	if err != nil {
		return "", errors.Wrap(err, "could not marshal login request")
	}

	resp, b, err := c.do(ctx, http.MethodPost, "/user/login", "", body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errors.Errorf("login rejected: %s", strings.TrimSpace(string(b)))
	}

	authKey := resp.Header.Get(authHeader)
	if authKey == "" {
		return "", errors.New("login response carried no auth key")
	}

	return authKey, nil
}

// Search queries the catalog with the given term and returns candidates in
// the order the storefront returned them. Result sections are flattened: the
// storefront may group products under category entries with an "items" list.
func (c *Client) Search(ctx context.Context, session *Session, term string) ([]domain.ProductCandidate, error) {
	path := "/search?search_term=" + url.QueryEscape(term)
	resp, b, err := c.do(ctx, http.MethodGet, path, session.AuthKey, nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("search failed: %s", strings.TrimSpace(string(b)))
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, errors.Wrap(err, "could not decode search response")
	}

	var out []domain.ProductCandidate
	for _, entry := range entries {
		// category sections carry their products in "items"
		var section struct {
			Items []json.RawMessage `json:"items"`
		}
		if err := json.Unmarshal(entry, &section); err == nil && len(section.Items) > 0 {
			for _, item := range section.Items {
				out = append(out, parseCandidate(item))
			}

			continue
		}
		out = append(out, parseCandidate(entry))
	}

	return out, nil
}

// AddToCart commits an add-to-cart mutation for the given product and count.
func (c *Client) AddToCart(ctx context.Context, session *Session, productID string, quantity int) error {
	body, err := json.Marshal(map[string]any{
		"product_id": productID,
		"count":      quantity,
	})
	if err != nil {
		return errors.Wrap(err, "could not marshal cart request")
	}

	resp, b, err := c.do(ctx, http.MethodPost, "/cart/add_product", session.AuthKey, body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("cart mutation failed: %s", strings.TrimSpace(string(b)))
	}

	return nil
}

// do issues one storefront request and returns the response together with its
// fully read body.
func (c *Client) do(ctx context.Context,
	method, path, authKey string,
	body []byte) (*http.Response, []byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, nil, errors.Wrap(err, "could not create request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-picnic-agent", agentHeader)
	if authKey != "" {
		req.Header.Set(authHeader, authKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, errors.Wrap(err, "could not send request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, errors.Wrap(err, "could not read response body")
	}

	return resp, b, nil
}

// parseCandidate maps one raw search result item onto a ProductCandidate,
// gathering the alias set from every field that could plausibly hold a
// barcode and the identifier candidates in extraction order.
func parseCandidate(raw json.RawMessage) domain.ProductCandidate {
	var item struct {
		ID         json.RawMessage `json:"id"`
		ProductID  json.RawMessage `json:"productId"`
		ProductID2 json.RawMessage `json:"product_id"`
		ArticleID  json.RawMessage `json:"articleId"`
		ArticleID2 json.RawMessage `json:"article_id"`

		Name  string `json:"name"`
		Title string `json:"title"`

		GTIN    json.RawMessage `json:"gtin"`
		Barcode json.RawMessage `json:"barcode"`
	}
	// a candidate that fails to decode keeps its raw payload for diagnostics
	_ = json.Unmarshal(raw, &item)

	name := item.Name
	if name == "" {
		name = item.Title
	}

	var aliases []string
	for _, f := range []json.RawMessage{item.GTIN, item.Barcode, item.ID} {
		if a := barcode.Normalize(stringify(f)); a != "" {
			aliases = append(aliases, a)
		}
	}

	return domain.ProductCandidate{
		Name:    name,
		Aliases: aliases,
		IDCandidates: []string{
			stringify(item.ID),
			stringify(item.ProductID),
			stringify(item.ProductID2),
			stringify(item.ArticleID),
			stringify(item.ArticleID2),
		},
		Raw: raw,
	}
}

// stringify renders a raw JSON scalar as its string value: strings are
// unquoted, numbers keep their literal form, everything else yields "".
func stringify(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}

	return ""
}
