// Package resolver implements the scan resolution pipeline: turning a scan
// input into a concrete catalog product and committing the cart mutation.
package resolver

import (
	"cartscan/pkg/barcode"
	"cartscan/pkg/domain"
	"cartscan/pkg/picnic"
	"cartscan/pkg/serrors"
	"context"
	"encoding/json"
	"strings"
)

// Resolver selects one best-guess catalog product for a scan input. It makes
// no assumption about the relevance ordering of search results beyond what
// the catalog returns.
type Resolver struct {
	catalog picnic.Catalog
	creds   picnic.Credentials
}

// New constructs a Resolver over the given catalog and login credentials.
func New(catalog picnic.Catalog, creds picnic.Credentials) *Resolver {
	return &Resolver{catalog: catalog, creds: creds}
}

// Resolve maps a scan input to a product identifier.
//
// An explicit product id short-circuits everything: no search is performed
// and no authentication is required. Otherwise the effective search term is
// the explicit term, falling back to the normalized barcode; without either
// the scan carries no identifying information and resolution fails.
//
// Candidate selection follows a fixed confidence order: an exact normalized
// barcode alias match wins, then a case-insensitive title substring match,
// then the first result as returned by the catalog.
func (r *Resolver) Resolve(ctx context.Context,
	session *picnic.Session,
	input domain.ScanInput) (domain.ResolvedProduct, error) {
	if input.ProductID != "" {
		return domain.ResolvedProduct{ProductID: input.ProductID}, nil
	}

	normalized := barcode.Normalize(input.RawCode)
	term := input.SearchTerm
	if term == "" {
		term = normalized
	}
	if term == "" {
		return domain.ResolvedProduct{},
			serrors.With(serrors.ErrResolution, "no identifying information: provide a product id, barcode or title")
	}

	if err := picnic.EnsureAuthenticated(ctx, r.catalog, session, r.creds); err != nil {
		return domain.ResolvedProduct{}, err
	}

	candidates, err := r.catalog.Search(ctx, session, term)
	if err != nil {
		return domain.ResolvedProduct{},
			serrors.Wrap(serrors.ErrSearch, err, "catalog search failed").Detail("searchTerm", term)
	}
	if len(candidates) == 0 {
		return domain.ResolvedProduct{},
			serrors.With(serrors.ErrNotFound, "no products found for search term").Detail("searchTerm", term)
	}

	selected := selectCandidate(candidates, normalized, input.Title)

	productID := ""
	for _, id := range selected.IDCandidates {
		if id != "" {
			productID = id

			break
		}
	}
	if productID == "" {
		return domain.ResolvedProduct{},
			serrors.With(serrors.ErrResolution, "candidate has no usable identifier").
				Detail("searchTerm", term).
				Detail("candidate", json.RawMessage(selected.Raw))
	}

	return domain.ResolvedProduct{
		ProductID: productID,
		Name:      selected.Name,
		Source:    &selected,
	}, nil
}

// selectCandidate applies the tie-break policy: barcode alias, then title
// substring, then first result.
func selectCandidate(candidates []domain.ProductCandidate, normalized, title string) domain.ProductCandidate {
	if normalized != "" {
		for _, c := range candidates {
			if c.HasAlias(normalized) {
				return c
			}
		}
	}

	if title != "" {
		needle := strings.ToLower(title)
		for _, c := range candidates {
			if strings.Contains(strings.ToLower(c.Name), needle) {
				return c
			}
		}
	}

	return candidates[0]
}
