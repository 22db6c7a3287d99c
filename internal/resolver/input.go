package resolver

import (
	"cartscan/pkg/domain"
	"cartscan/pkg/serrors"
	"encoding/json"
	"strconv"
	"strings"
)

// payload is the wire shape accepted from the CLI argument and the ingestion
// boundary. Identifier and term fields come in several historical spellings.
type payload struct {
	Barcode    string          `json:"barcode"`
	Code       string          `json:"code"`
	Title      string          `json:"title"`
	Name       string          `json:"name"`
	Query      string          `json:"query"`
	SearchTerm string          `json:"searchTerm"`
	ProductID  json.RawMessage `json:"productId"`
	ProductID2 json.RawMessage `json:"product_id"`
	Quantity   json.RawMessage `json:"quantity"`
}

// ParseScanInput decodes a JSON scan payload into a ScanInput. The effective
// search term is the first present of searchTerm, title, name and query; the
// barcode fallback happens later, at resolution time. Quantity accepts a
// number or a numeric string; absent, unparsable or non-positive values all
// yield 1.
func ParseScanInput(raw []byte) (domain.ScanInput, error) {
	var p payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return domain.ScanInput{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid JSON payload")
	}

	rawCode := p.Barcode
	if rawCode == "" {
		rawCode = p.Code
	}

	term := firstNonEmpty(p.SearchTerm, p.Title, p.Name, p.Query)

	productID := scalarString(p.ProductID)
	if productID == "" {
		productID = scalarString(p.ProductID2)
	}

	return domain.ScanInput{
		RawCode:    strings.TrimSpace(rawCode),
		ProductID:  productID,
		Title:      p.Title,
		SearchTerm: term,
		Quantity:   parseQuantity(p.Quantity),
	}, nil
}

// EffectiveQuantity clamps a requested quantity to the valid range.
func EffectiveQuantity(quantity int) int {
	if quantity < 1 {
		return 1
	}

	return quantity
}

func parseQuantity(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 1
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		if f, err := n.Float64(); err == nil {
			return EffectiveQuantity(int(f))
		}
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return EffectiveQuantity(int(f))
		}
	}

	return 1
}

func scalarString(raw json.RawMessage) string {
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

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
