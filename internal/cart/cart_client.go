package cart

import (
	"context"
	"encoding/json"
	"fmt"

	"go-apparel-api/internal/backend"
	"go-apparel-api/internal/logo"
)

// WriteResult is the backend's acknowledgement of a durable cart write.
type WriteResult struct {
	Message string `json:"message"`
	LogoURL string `json:"logoUrl"`
}

// Writer performs the durable half of the submission pipeline: a multipart
// write against the backend cart endpoint.
//
//go:generate mockgen -source=cart_client.go -destination=../mock/cart/cart_writer_mock.go -package=mock
type Writer interface {
	WriteLineItem(ctx context.Context, token string, item LineItem) (WriteResult, error)
}

type backendWriter struct {
	backend *backend.Client
}

func NewWriter(b *backend.Client) Writer {
	return &backendWriter{backend: b}
}

func (w *backendWriter) WriteLineItem(ctx context.Context, token string, item LineItem) (WriteResult, error) {
	products, err := json.Marshal(item.Products)
	if err != nil {
		return WriteResult{}, err
	}
	positions, err := json.Marshal(item.Position)
	if err != nil {
		return WriteResult{}, err
	}

	form := backend.MultipartForm{
		Fields: map[string]string{
			"isBundle":       "true",
			"bundleId":       item.BundleID,
			"bundleProducts": string(products),
			"price":          fmt.Sprintf("%.2f", item.Price),
			"notes":          item.Notes,
			"method":         item.Method,
			"position":       string(positions),
			"thumbnail":      item.Thumbnail,
		},
	}

	// The logo travels as a binary attachment only when freshly uploaded;
	// text logos and reused logos are plain fields.
	switch content := item.Logo.Content().(type) {
	case logo.TextLogo:
		form.Fields["textLine"] = content.Line
		form.Fields["font"] = string(content.Font)
	case logo.ImageLogo:
		form.FileKey = "logo"
		form.FileName = content.Upload.Filename
		form.FileData = content.Upload.Data
	case logo.ReusedLogo:
		form.Fields["logo"] = content.URL
	case nil:
		// Line items without a logo are legal on the cart endpoint.
	default:
		return WriteResult{}, fmt.Errorf("unknown logo variant %T", content)
	}

	var res WriteResult
	if err := w.backend.PostMultipart(ctx, "/cart/", token, form, &res); err != nil {
		return WriteResult{}, err
	}
	return res, nil
}
