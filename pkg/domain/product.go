package domain

import "encoding/json"

// ScanInput describes one scan to be resolved against the catalog. Exactly
// one of ProductID or a derivable search term (SearchTerm, Title or a barcode)
// must be present for resolution to proceed.
type ScanInput struct {
	// RawCode is the scanned or typed code as captured, before normalization.
	RawCode string `json:"barcode,omitempty"`
	// ProductID, when set, skips resolution entirely.
	ProductID string `json:"productId,omitempty"`
	// Title is a human-entered product title, used as a matching hint.
	Title string `json:"title,omitempty"`
	// SearchTerm overrides the term sent to the catalog search.
	SearchTerm string `json:"searchTerm,omitempty"`
	// Quantity is the number of units to add. Non-positive values mean 1.
	Quantity int `json:"quantity,omitempty"`
}

// ProductCandidate is one item of a catalog search result.
type ProductCandidate struct {
	// Name is the display name of the product.
	Name string `json:"name,omitempty"`
	// Aliases is the normalized set of fields that could plausibly represent
	// a barcode on this candidate (gtin, barcode, id).
	Aliases []string `json:"aliases,omitempty"`
	// IDCandidates holds the possible identifier values in extraction order
	// (id, productId, product_id, articleId, article_id). Empty entries mark
	// fields absent from the payload.
	IDCandidates []string `json:"-"`
	// Raw is the original search result payload, kept for diagnostics.
	Raw json.RawMessage `json:"-"`
}

// HasAlias reports whether the candidate's alias set contains the given
// normalized barcode.
func (c ProductCandidate) HasAlias(code string) bool {
	for _, a := range c.Aliases {
		if a == code {
			return true
		}
	}

	return false
}

// ResolvedProduct is the outcome of product resolution. Source is nil when
// the identifier was supplied explicitly and no search was performed.
type ResolvedProduct struct {
	ProductID string
	Name      string
	Source    *ProductCandidate
}
