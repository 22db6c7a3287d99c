// Package picnic defines the catalog client abstraction and the session
// state used to talk to the Picnic grocery storefront API.
package picnic

import (
	"cartscan/pkg/domain"
	"context"
)

// Catalog is the abstraction for the remote grocery catalog. Implementations
// perform the login exchange, free-text product search, and cart mutations.
//
//go:generate mockgen -package mockpicnic -source=interface.go -destination=mock/mockpicnic.go *
type Catalog interface {
	// Login performs the credential exchange and returns a session auth key.
	Login(ctx context.Context, username, password string) (string, error)
	// Search queries the catalog with a free-text term and returns candidate
	// items in the catalog's own result order.
	Search(ctx context.Context, session *Session, term string) ([]domain.ProductCandidate, error)
	// AddToCart commits an add-to-cart mutation for a resolved product.
	AddToCart(ctx context.Context, session *Session, productID string, quantity int) error
}
