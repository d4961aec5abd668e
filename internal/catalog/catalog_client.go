package catalog

import (
	"context"
	"net/http"

	"go-apparel-api/internal/backend"
	"go-apparel-api/internal/pkg/apperror"
)

//go:generate mockgen -source=catalog_client.go -destination=../mock/catalog/catalog_client_mock.go -package=mock
type Client interface {
	Bundles(ctx context.Context) ([]Bundle, error)
	Bundle(ctx context.Context, bundleID string) (Bundle, error)
	Products(ctx context.Context) ([]Product, error)
}

var ErrBundleNotFound = apperror.New(
	apperror.CodeNotFound,
	"Bundle not found",
	http.StatusNotFound,
)

type client struct {
	backend *backend.Client
}

func NewClient(b *backend.Client) Client {
	return &client{backend: b}
}

func (c *client) Bundles(ctx context.Context) ([]Bundle, error) {
	var res bundlesResponse
	if err := c.backend.GetJSON(ctx, "/bundle", "", &res); err != nil {
		return nil, err
	}
	return res.Bundles, nil
}

func (c *client) Bundle(ctx context.Context, bundleID string) (Bundle, error) {
	bundles, err := c.Bundles(ctx)
	if err != nil {
		return Bundle{}, err
	}
	for _, b := range bundles {
		if b.ID == bundleID {
			return b, nil
		}
	}
	return Bundle{}, ErrBundleNotFound
}

func (c *client) Products(ctx context.Context) ([]Product, error) {
	var res productsResponse
	if err := c.backend.GetJSON(ctx, "/products/", "", &res); err != nil {
		return nil, err
	}

	// Non-customizable products never reach the wizard.
	out := make([]Product, 0, len(res.Products))
	for _, p := range res.Products {
		if p.Customizable() {
			out = append(out, p)
		}
	}
	return out, nil
}
