package bundle

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"go-apparel-api/internal/cart"
	"go-apparel-api/internal/catalog"
	"go-apparel-api/internal/logo"
)

// Method is the physical customization technique, applied uniformly to all
// products of one configuration.
const (
	MethodEmbroidery = "Embroidery"
	MethodPrint      = "Print"
)

// allSizes is the last-resort size run when a product carries no explicit
// size information at all.
var allSizes = []string{"S", "M", "L", "XL", "2XL"}

// Config is a finalized wizard configuration, immutable once it reaches the
// assembler.
type Config struct {
	BundleID  string
	Title     string
	Price     float64
	Thumbnail string
	Method    string
	Positions map[string][]string
	Logo      logo.Content
	Notes     string
	Quantity  int32
}

// Options selects between the strict checkout submission path and the
// lenient bundle-popup path.
type Options struct {
	RequireMethod bool
}

// Assemble transforms a validated configuration plus the resolved product
// list into the canonical cart line item. The output carries no reference
// back to wizard state.
func Assemble(cfg Config, products []catalog.Product, opts Options) (cart.LineItem, error) {
	if len(products) == 0 {
		return cart.LineItem{}, ErrNoProducts
	}
	for _, p := range products {
		if strings.TrimSpace(p.ID) == "" {
			return cart.LineItem{}, ErrMissingProductID
		}
	}

	method, err := normalizeMethod(cfg.Method, opts.RequireMethod)
	if err != nil {
		return cart.LineItem{}, err
	}

	lineProducts := make([]cart.LineItemProduct, 0, len(products))
	for _, p := range products {
		for _, unit := range deriveUnits(p) {
			lineProducts = append(lineProducts, cart.LineItemProduct{
				ProductID: p.ID,
				Name:      p.Name,
				Color:     unit.Color,
				Size:      unit.Size,
			})
		}
	}

	quantity := cfg.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	_, usePrevious := cfg.Logo.(logo.ReusedLogo)

	return cart.LineItem{
		ID:              uuid.New().String(),
		BundleID:        cfg.BundleID,
		Title:           cfg.Title,
		Price:           cfg.Price,
		Thumbnail:       cfg.Thumbnail,
		Method:          method,
		Position:        flattenPositions(cfg.Positions),
		Products:        lineProducts,
		Quantity:        quantity,
		Logo:            logo.Wrap(cfg.Logo),
		UsePreviousLogo: usePrevious,
		Notes:           cfg.Notes,
	}, nil
}

// deriveUnits picks the first non-empty size source, in priority order:
// selection log, explicit size array, flattened per-color table, all-sizes
// fallback.
func deriveUnits(p catalog.Product) []catalog.UnitSelection {
	if len(p.SelectionLog) > 0 {
		return p.SelectionLog
	}

	if len(p.Sizes) > 0 {
		color := ""
		if len(p.AvailableColors) > 0 {
			color = p.AvailableColors[0]
		}
		units := make([]catalog.UnitSelection, 0, len(p.Sizes))
		for _, size := range p.Sizes {
			units = append(units, catalog.UnitSelection{Color: color, Size: size})
		}
		return units
	}

	if len(p.SizesByColor) > 0 {
		// Follow the declared color order so the flattening is stable.
		var units []catalog.UnitSelection
		for _, color := range p.AvailableColors {
			for _, opt := range p.SizesByColor[color] {
				units = append(units, catalog.UnitSelection{Color: color, Size: opt.Size})
			}
		}
		if len(units) > 0 {
			return units
		}
	}

	units := make([]catalog.UnitSelection, 0, len(allSizes))
	for _, size := range allSizes {
		units = append(units, catalog.UnitSelection{Size: size})
	}
	return units
}

func normalizeMethod(raw string, required bool) (string, error) {
	trimmed := strings.TrimSpace(raw)
	normalized := ""
	if trimmed != "" {
		normalized = strings.ToUpper(trimmed[:1]) + strings.ToLower(trimmed[1:])
	}

	switch normalized {
	case MethodEmbroidery, MethodPrint:
		return normalized, nil
	}

	if required {
		return "", ErrInvalidMethod
	}
	// Popup path is lenient: an unresolved method falls back to Print.
	return MethodPrint, nil
}

// flattenPositions serializes the selection as a flat, de-duplicated,
// falsy-filtered list across all products.
func flattenPositions(positions map[string][]string) []string {
	productIDs := make([]string, 0, len(positions))
	for id := range positions {
		productIDs = append(productIDs, id)
	}
	sort.Strings(productIDs)

	seen := make(map[string]struct{})
	out := []string{}
	for _, id := range productIDs {
		names := positions[id]
		for _, name := range names {
			if name == "" {
				continue
			}
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			out = append(out, name)
		}
	}
	return out
}
