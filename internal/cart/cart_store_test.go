package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreActions(t *testing.T) {
	t.Run("append_never_merges", func(t *testing.T) {
		store := NewStore()
		store.AppendLineItem(LineItem{ID: "a", BundleID: "b1", Quantity: 1})
		store.AppendLineItem(LineItem{ID: "b", BundleID: "b1", Quantity: 1})

		snap := store.Snapshot()
		assert.Len(t, snap.Items, 2)
	})

	t.Run("remove_reports_missing_item", func(t *testing.T) {
		store := NewStore()
		store.AppendLineItem(LineItem{ID: "a"})

		assert.True(t, store.RemoveLineItem("a"))
		assert.False(t, store.RemoveLineItem("a"))
		assert.Empty(t, store.Snapshot().Items)
	})

	t.Run("set_quantity_targets_one_item", func(t *testing.T) {
		store := NewStore()
		store.AppendLineItem(LineItem{ID: "a", Quantity: 1})
		store.AppendLineItem(LineItem{ID: "b", Quantity: 1})

		assert.True(t, store.SetQuantity("b", 5))
		assert.False(t, store.SetQuantity("missing", 5))

		snap := store.Snapshot()
		assert.Equal(t, int32(1), snap.Items[0].Quantity)
		assert.Equal(t, int32(5), snap.Items[1].Quantity)
	})

	t.Run("clear_drops_items_and_promo", func(t *testing.T) {
		store := NewStore()
		store.AppendLineItem(LineItem{ID: "a"})
		store.SetPromo(Promo{Code: "SAVE10", DiscountPercent: 10})

		store.Clear()

		snap := store.Snapshot()
		assert.Empty(t, snap.Items)
		assert.Nil(t, snap.Promo)
	})

	t.Run("promo_cleared_when_last_item_removed", func(t *testing.T) {
		store := NewStore()
		store.AppendLineItem(LineItem{ID: "a"})
		store.SetPromo(Promo{Code: "SAVE10", DiscountPercent: 10})

		store.RemoveLineItem("a")

		assert.Nil(t, store.Snapshot().Promo)
	})

	t.Run("promo_survives_while_items_remain", func(t *testing.T) {
		store := NewStore()
		store.AppendLineItem(LineItem{ID: "a"})
		store.AppendLineItem(LineItem{ID: "b"})
		store.SetPromo(Promo{Code: "SAVE10", DiscountPercent: 10})

		store.RemoveLineItem("a")

		assert.NotNil(t, store.Snapshot().Promo)
	})
}

func TestStoreSubscribe(t *testing.T) {
	t.Run("subscribers_see_every_change", func(t *testing.T) {
		store := NewStore()

		var snaps []Snapshot
		store.Subscribe(func(snap Snapshot) {
			snaps = append(snaps, snap)
		})

		store.AppendLineItem(LineItem{ID: "a"})
		store.SetQuantity("a", 3)
		store.RemoveLineItem("a")

		if assert.Len(t, snaps, 3) {
			assert.Len(t, snaps[0].Items, 1)
			assert.Equal(t, int32(3), snaps[1].Items[0].Quantity)
			assert.Empty(t, snaps[2].Items)
		}
	})

	t.Run("unsubscribe_stops_notifications", func(t *testing.T) {
		store := NewStore()

		calls := 0
		unsubscribe := store.Subscribe(func(Snapshot) { calls++ })

		store.AppendLineItem(LineItem{ID: "a"})
		unsubscribe()
		store.AppendLineItem(LineItem{ID: "b"})

		assert.Equal(t, 1, calls)
	})

	t.Run("snapshots_are_copies", func(t *testing.T) {
		store := NewStore()
		store.AppendLineItem(LineItem{ID: "a", Quantity: 1})

		snap := store.Snapshot()
		snap.Items[0].Quantity = 99

		assert.Equal(t, int32(1), store.Snapshot().Items[0].Quantity)
	})
}

func TestStoreShippingOverride(t *testing.T) {
	store := NewStore()

	cost := 9.99
	store.SetShippingOverride(&cost)

	snap := store.Snapshot()
	if assert.NotNil(t, snap.ShippingOverride) {
		assert.Equal(t, 9.99, *snap.ShippingOverride)
	}

	store.SetShippingOverride(nil)
	assert.Nil(t, store.Snapshot().ShippingOverride)
}
