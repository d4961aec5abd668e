package bundle

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-apparel-api/internal/catalog"
	"go-apparel-api/internal/logo"
)

func baseConfig() Config {
	return Config{
		BundleID:  "bundle-1",
		Title:     "Workwear Hoodie Bundle",
		Price:     89.99,
		Thumbnail: "https://cdn.example/hoodie.jpg",
		Method:    "Embroidery",
		Positions: map[string][]string{"p1": {"Left Breast"}},
		Quantity:  1,
	}
}

func oneProduct() []catalog.Product {
	return []catalog.Product{
		{ID: "p1", Name: "Hoodie", AvailableColors: []string{"Black"}, Sizes: []string{"M", "L"}},
	}
}

func TestAssemble(t *testing.T) {
	t.Run("builds_canonical_line_item", func(t *testing.T) {
		item, err := Assemble(baseConfig(), oneProduct(), Options{})

		assert.NoError(t, err)
		assert.NotEmpty(t, item.ID)
		assert.Equal(t, "bundle-1", item.BundleID)
		assert.Equal(t, MethodEmbroidery, item.Method)
		assert.Equal(t, []string{"Left Breast"}, item.Position)
		assert.Equal(t, int32(1), item.Quantity)
		assert.Len(t, item.Products, 2)
		assert.Equal(t, "Black", item.Products[0].Color)
	})

	t.Run("empty_product_list_rejected", func(t *testing.T) {
		_, err := Assemble(baseConfig(), nil, Options{})
		assert.ErrorIs(t, err, ErrNoProducts)
	})

	t.Run("product_without_id_rejected", func(t *testing.T) {
		products := []catalog.Product{{ID: "  ", Name: "Hoodie"}}
		_, err := Assemble(baseConfig(), products, Options{})
		assert.ErrorIs(t, err, ErrMissingProductID)
	})

	t.Run("non_positive_quantity_defaults_to_one", func(t *testing.T) {
		cfg := baseConfig()
		cfg.Quantity = 0
		item, err := Assemble(cfg, oneProduct(), Options{})

		assert.NoError(t, err)
		assert.Equal(t, int32(1), item.Quantity)
	})

	t.Run("reused_logo_sets_use_previous", func(t *testing.T) {
		cfg := baseConfig()
		cfg.Logo = logo.ReusedLogo{URL: "https://cdn.example/old.png"}
		item, err := Assemble(cfg, oneProduct(), Options{})

		assert.NoError(t, err)
		assert.True(t, item.UsePreviousLogo)
		assert.True(t, item.HasLogo())
	})

	t.Run("fresh_logo_does_not_set_use_previous", func(t *testing.T) {
		cfg := baseConfig()
		cfg.Logo = logo.TextLogo{Line: "ACME", Font: logo.FontStandard}
		item, err := Assemble(cfg, oneProduct(), Options{})

		assert.NoError(t, err)
		assert.False(t, item.UsePreviousLogo)
	})

	t.Run("same_config_assembles_identically_except_id", func(t *testing.T) {
		first, err := Assemble(baseConfig(), oneProduct(), Options{})
		assert.NoError(t, err)
		second, err := Assemble(baseConfig(), oneProduct(), Options{})
		assert.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)
		first.ID, second.ID = "", ""
		assert.Equal(t, first, second)
	})
}

func TestNormalizeMethod(t *testing.T) {
	t.Run("case_is_normalized", func(t *testing.T) {
		for _, raw := range []string{"embroidery", "EMBROIDERY", "Embroidery", " embroidery "} {
			cfg := baseConfig()
			cfg.Method = raw
			item, err := Assemble(cfg, oneProduct(), Options{})
			assert.NoError(t, err)
			assert.Equal(t, MethodEmbroidery, item.Method, "raw %q", raw)
		}
	})

	t.Run("strict_path_rejects_unknown_method", func(t *testing.T) {
		cfg := baseConfig()
		cfg.Method = "Stitching"
		_, err := Assemble(cfg, oneProduct(), Options{RequireMethod: true})
		assert.ErrorIs(t, err, ErrInvalidMethod)
	})

	t.Run("lenient_path_defaults_to_print", func(t *testing.T) {
		cfg := baseConfig()
		cfg.Method = ""
		item, err := Assemble(cfg, oneProduct(), Options{})
		assert.NoError(t, err)
		assert.Equal(t, MethodPrint, item.Method)
	})
}

func TestDeriveUnits(t *testing.T) {
	t.Run("selection_log_wins", func(t *testing.T) {
		p := catalog.Product{
			ID:           "p1",
			SelectionLog: []catalog.UnitSelection{{Color: "Red", Size: "M"}},
			Sizes:        []string{"S", "M", "L"},
		}
		units := deriveUnits(p)
		assert.Equal(t, []catalog.UnitSelection{{Color: "Red", Size: "M"}}, units)
	})

	t.Run("explicit_sizes_use_first_color", func(t *testing.T) {
		p := catalog.Product{
			ID:              "p1",
			AvailableColors: []string{"Navy", "Black"},
			Sizes:           []string{"M", "L"},
		}
		units := deriveUnits(p)
		assert.Equal(t, []catalog.UnitSelection{
			{Color: "Navy", Size: "M"},
			{Color: "Navy", Size: "L"},
		}, units)
	})

	t.Run("per_color_table_follows_declared_color_order", func(t *testing.T) {
		p := catalog.Product{
			ID:              "p1",
			AvailableColors: []string{"Navy", "Black"},
			SizesByColor: map[string][]catalog.SizeOption{
				"Black": {{Size: "S"}},
				"Navy":  {{Size: "M"}},
			},
		}
		units := deriveUnits(p)
		assert.Equal(t, []catalog.UnitSelection{
			{Color: "Navy", Size: "M"},
			{Color: "Black", Size: "S"},
		}, units)
	})

	t.Run("all_sizes_fallback", func(t *testing.T) {
		units := deriveUnits(catalog.Product{ID: "p1"})
		sizes := make([]string, 0, len(units))
		for _, u := range units {
			sizes = append(sizes, u.Size)
		}
		assert.Equal(t, []string{"S", "M", "L", "XL", "2XL"}, sizes)
	})
}

func TestFlattenPositions(t *testing.T) {
	t.Run("deduplicates_and_drops_empty", func(t *testing.T) {
		got := flattenPositions(map[string][]string{
			"a": {"Left Breast", "", "Large Back"},
			"b": {"Left Breast", "Nape of Neck"},
		})
		assert.Equal(t, []string{"Left Breast", "Large Back", "Nape of Neck"}, got)
	})

	t.Run("empty_selection_yields_empty_list", func(t *testing.T) {
		assert.Empty(t, flattenPositions(nil))
	})
}
