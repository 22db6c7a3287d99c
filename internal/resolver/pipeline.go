package resolver

import (
	"cartscan/pkg/domain"
	"cartscan/pkg/logger"
	"cartscan/pkg/picnic"
	"cartscan/pkg/serrors"
	"context"

	"go.uber.org/zap"
)

// Result describes a committed cart mutation. It marshals to the success
// object contract of the one-shot CLI: ok, productId, quantity and name are
// always present, name possibly empty.
type Result struct {
	OK        bool   `json:"ok"`
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
}

// Pipeline sequences the full scan-to-cart flow: resolve the product,
// guarantee an authenticated session and commit the cart mutation.
type Pipeline struct {
	catalog  picnic.Catalog
	creds    picnic.Credentials
	resolver *Resolver
}

// NewPipeline constructs a Pipeline over the given catalog and credentials.
func NewPipeline(catalog picnic.Catalog, creds picnic.Credentials) *Pipeline {
	return &Pipeline{
		catalog:  catalog,
		creds:    creds,
		resolver: New(catalog, creds),
	}
}

// Run adds the product described by input to the shopping cart. On success it
// reports the product id and quantity that were committed. session is mutated
// in place when a login was needed, so callers that reuse a session across
// runs only authenticate once.
func (p *Pipeline) Run(ctx context.Context, session *picnic.Session, input domain.ScanInput) (Result, error) {
	resolved, err := p.resolver.Resolve(ctx, session, input)
	if err != nil {
		return Result{}, err
	}

	if err := picnic.EnsureAuthenticated(ctx, p.catalog, session, p.creds); err != nil {
		return Result{}, err
	}

	quantity := EffectiveQuantity(input.Quantity)
	if err := p.catalog.AddToCart(ctx, session, resolved.ProductID, quantity); err != nil {
		return Result{}, serrors.Wrap(serrors.ErrCartMutation, err, "could not add product to cart").
			Detail("productId", resolved.ProductID)
	}

	logger.Info(ctx, "added product to cart",
		zap.String("productId", resolved.ProductID),
		zap.String("name", resolved.Name),
		zap.Int("quantity", quantity))

	return Result{
		OK:        true,
		ProductID: resolved.ProductID,
		Name:      resolved.Name,
		Quantity:  quantity,
	}, nil
}
