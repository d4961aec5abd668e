package catalog

// SizeOption is one row of a product's per-color size table.
type SizeOption struct {
	Size              string `json:"size"`
	AvailableQuantity int32  `json:"availableQuantity"`
}

// UnitSelection is one entry of the per-unit color/size selection log the
// storefront records while the shopper picks garments.
type UnitSelection struct {
	Color string `json:"color"`
	Size  string `json:"size"`
}

type Product struct {
	ID              string                  `json:"id"`
	Name            string                  `json:"name"`
	Price           float64                 `json:"price"`
	Thumbnail       string                  `json:"thumbnail"`
	AvailableColors []string                `json:"availableColors"`
	SizesByColor    map[string][]SizeOption `json:"sizesByColor"`
	Sizes           []string                `json:"sizes"`
	SelectionLog    []UnitSelection         `json:"selectionLog"`
}

// Customizable reports whether the product may enter the wizard at all: a
// product with no color carrying available stock is excluded entirely.
func (p Product) Customizable() bool {
	for _, sizes := range p.SizesByColor {
		for _, s := range sizes {
			if s.AvailableQuantity > 0 {
				return true
			}
		}
	}
	return false
}

type Bundle struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Price     float64   `json:"price"`
	Thumbnail string    `json:"thumbnail"`
	Products  []Product `json:"products"`
}

type bundlesResponse struct {
	Bundles []Bundle `json:"bundles"`
}

type productsResponse struct {
	Products []Product `json:"products"`
}
