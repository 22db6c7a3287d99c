package picnic_test

import (
	"cartscan/pkg/picnic"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(fn rtFunc) *picnic.Client {
	return picnic.New(&http.Client{Transport: fn}, picnic.Options{CountryCode: "NL"})
}

func TestClient_Login_success(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "storefront.picnic.app", r.URL.Host)
		require.Equal(t, "/nl/api/15/user/login", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "user@example.com", body["key"])
		// md5("hunter2")
		require.Equal(t, "2ab96390c7dbe3439de74d0c9b0b1767", body["secret"])

		h := http.Header{}
		h.Set("x-picnic-auth", "auth-key-123")

		return &http.Response{
			StatusCode: http.StatusOK,
			Header:     h,
			Body:       io.NopCloser(strings.NewReader("{}")),
		}, nil
	})

	authKey, err := c.Login(context.Background(), "user@example.com", "hunter2")
	require.NoError(t, err)
	require.Equal(t, "auth-key-123", authKey)
}

func TestClient_Login_rejected(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusUnauthorized,
			Header:     http.Header{},
			Body:       io.NopCloser(strings.NewReader("bad credentials")),
		}, nil
	})

	_, err := c.Login(context.Background(), "user@example.com", "wrong")
	require.Error(t, err)
	require.Contains(t, err.Error(), "bad credentials")
}

func TestClient_Login_missingAuthKey(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Header:     http.Header{},
			Body:       io.NopCloser(strings.NewReader("{}")),
		}, nil
	})

	_, err := c.Login(context.Background(), "user@example.com", "hunter2")
	require.Error(t, err)
}

func TestClient_Search_flattensSections(t *testing.T) {
	payload := `[
		{"type":"CATEGORY","id":"milk","items":[
			{"id":"s1019822","name":"Whole Milk 1L","gtin":"8718452129911"},
			{"id":12345,"name":"Oat Drink"}
		]},
		{"id":"s2000001","name":"Chocolate Milk","barcode":"87-123"}
	]`
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/nl/api/15/search", r.URL.Path)
		require.Equal(t, "oat milk", r.URL.Query().Get("search_term"))
		require.Equal(t, "auth-key-123", r.Header.Get("x-picnic-auth"))

		return &http.Response{
			StatusCode: http.StatusOK,
			Header:     http.Header{},
			Body:       io.NopCloser(strings.NewReader(payload)),
		}, nil
	})

	session := &picnic.Session{AuthKey: "auth-key-123"}
	got, err := c.Search(context.Background(), session, "oat milk")
	require.NoError(t, err)
	require.Len(t, got, 3)

	require.Equal(t, "Whole Milk 1L", got[0].Name)
	require.True(t, got[0].HasAlias("8718452129911"))
	require.Equal(t, "s1019822", got[0].IDCandidates[0])

	// numeric ids are stringified
	require.Equal(t, "12345", got[1].IDCandidates[0])

	// barcode aliases are normalized to digits
	require.Equal(t, "Chocolate Milk", got[2].Name)
	require.True(t, got[2].HasAlias("87123"))
}

func TestClient_Search_non2xx(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusBadGateway,
			Header:     http.Header{},
			Body:       io.NopCloser(strings.NewReader("upstream bad")),
		}, nil
	})

	_, err := c.Search(context.Background(), &picnic.Session{AuthKey: "k"}, "milk")
	require.Error(t, err)
	require.Contains(t, err.Error(), "upstream bad")
}

func TestClient_AddToCart(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/nl/api/15/cart/add_product", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "s1019822", body["product_id"])
		require.InDelta(t, 2, body["count"], 0)

		return &http.Response{
			StatusCode: http.StatusOK,
			Header:     http.Header{},
			Body:       io.NopCloser(strings.NewReader("{}")),
		}, nil
	})

	err := c.AddToCart(context.Background(), &picnic.Session{AuthKey: "k"}, "s1019822", 2)
	require.NoError(t, err)
}

func TestClient_AddToCart_failure(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusConflict,
			Header:     http.Header{},
			Body:       io.NopCloser(strings.NewReader("out of stock")),
		}, nil
	})

	err := c.AddToCart(context.Background(), &picnic.Session{AuthKey: "k"}, "s1019822", 1)
	require.Error(t, err)
	require.Contains(t, err.Error(), "out of stock")
}

func TestNew_baseURLOverride(t *testing.T) {
	var gotPath string
	fn := rtFunc(func(r *http.Request) (*http.Response, error) {
		gotPath = r.URL.String()

		return &http.Response{
			StatusCode: http.StatusOK,
			Header:     http.Header{"X-Picnic-Auth": []string{"k"}},
			Body:       io.NopCloser(strings.NewReader("{}")),
		}, nil
	})
	c := picnic.New(&http.Client{Transport: fn}, picnic.Options{BaseURL: "https://example.test/api/15/"})

	_, err := c.Login(context.Background(), "u", "p")
	require.NoError(t, err)
	require.Equal(t, "https://example.test/api/15/user/login", gotPath)
}
