// Package foodfacts looks up human-readable product titles for barcodes in
// the Open Food Facts public database. The lookup is best effort: scans keep
// flowing when the service is down or the code is unknown.
package foodfacts

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-faster/errors"
)

// DefaultBaseURL is the public Open Food Facts API root.
const DefaultBaseURL = "https://world.openfoodfacts.org"

// Product is the subset of the Open Food Facts record the pipeline uses.
type Product struct {
	// Title combines brand and product name, e.g. "Alpro - Oat Drink".
	Title string
	// Brands is the raw comma-separated brand list.
	Brands string
	// Name is the bare product name without brand.
	Name string
}

// Client queries the Open Food Facts v2 product API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// New constructs a Client. An empty baseURL selects the public instance.
func New(httpClient *http.Client, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// Lookup fetches the product record for a normalized barcode. An unknown code
// returns ok == false with a nil error; only transport and decoding problems
// are reported as errors.
func (c *Client) Lookup(ctx context.Context, code string) (Product, bool, error) {
	u := fmt.Sprintf("%s/api/v2/product/%s.json", c.baseURL, code)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Product{}, false, errors.Wrap(err, "could not create request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Product{}, false, errors.Wrap(err, "could not send request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNotFound {
		return Product{}, false, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Product{}, false, errors.Errorf("lookup failed with status %d", resp.StatusCode)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return Product{}, false, errors.Wrap(err, "could not read response body")
	}

	var body struct {
		Status  int `json:"status"`
		Product struct {
			ProductName string `json:"product_name"`
			Brands      string `json:"brands"`
		} `json:"product"`
	}
	if err := json.Unmarshal(b, &body); err != nil {
		return Product{}, false, errors.Wrap(err, "could not decode response")
	}
	if body.Status != 1 {
		return Product{}, false, nil
	}

	p := Product{
		Brands: body.Product.Brands,
		Name:   body.Product.ProductName,
	}
	p.Title = title(p.Brands, p.Name)
	if p.Title == "" {
		return Product{}, false, nil
	}

	return p, true, nil
}

// title renders "Brand - Name", dropping whichever side is missing.
func title(brands, name string) string {
	brand := strings.TrimSpace(strings.Split(brands, ",")[0])
	name = strings.TrimSpace(name)

	switch {
	case brand != "" && name != "":
		return brand + " - " + name
	case name != "":
		return name
	default:
		return brand
	}
}
