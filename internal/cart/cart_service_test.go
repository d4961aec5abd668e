package cart_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"go-apparel-api/internal/cart"
	"go-apparel-api/internal/logo"
	mockcart "go-apparel-api/internal/mock/cart"
	mockcloudinary "go-apparel-api/internal/mock/cloudinary"
)

type fixture struct {
	stores   *cart.Manager
	writer   *mockcart.MockWriter
	uploader *mockcloudinary.MockService
	svc      cart.Service
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		stores:   cart.NewManager(nil, zap.NewNop()),
		writer:   mockcart.NewMockWriter(ctrl),
		uploader: mockcloudinary.NewMockService(ctrl),
	}
	f.svc = cart.NewService(cart.Deps{
		Stores:   f.stores,
		Writer:   f.writer,
		Uploader: f.uploader,
		Logger:   zap.NewNop(),
	})
	return f
}

func textItem() cart.LineItem {
	return cart.LineItem{
		ID:       "item-1",
		BundleID: "bundle-1",
		Title:    "Workwear Hoodie Bundle",
		Price:    89.99,
		Quantity: 1,
		Logo:     logo.Wrap(logo.TextLogo{Line: "ACME", Font: logo.FontStandard}),
	}
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("confirmed_after_durable_write", func(t *testing.T) {
		f := newFixture(t)

		f.writer.EXPECT().
			WriteLineItem(ctx, "tok", gomock.Any()).
			Return(cart.WriteResult{Message: "Added to cart"}, nil)

		completed := false
		outcome, err := f.svc.Submit(ctx, "u1", "tok", textItem(), func() { completed = true })

		assert.NoError(t, err)
		assert.Equal(t, cart.PhaseConfirmed, outcome.Phase)
		assert.Equal(t, "Added to cart", outcome.Message)
		assert.True(t, completed)
		assert.Len(t, f.stores.ForUser(ctx, "u1").Snapshot().Items, 1)
	})

	t.Run("failed_write_keeps_optimistic_entry", func(t *testing.T) {
		f := newFixture(t)

		f.writer.EXPECT().
			WriteLineItem(ctx, "tok", gomock.Any()).
			Return(cart.WriteResult{}, cart.ErrSubmitFailed)

		completed := false
		outcome, err := f.svc.Submit(ctx, "u1", "tok", textItem(), func() { completed = true })

		assert.ErrorIs(t, err, cart.ErrSubmitFailed)
		assert.Equal(t, cart.PhaseFailed, outcome.Phase)
		assert.False(t, completed)
		// No rollback: the local item survives the failed durable write.
		assert.Len(t, f.stores.ForUser(ctx, "u1").Snapshot().Items, 1)
	})

	t.Run("optimistic_insert_published_before_durable_write", func(t *testing.T) {
		f := newFixture(t)

		sawOptimistic := false
		f.writer.EXPECT().
			WriteLineItem(ctx, "tok", gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ string, _ cart.LineItem) (cart.WriteResult, error) {
				sawOptimistic = len(f.stores.ForUser(ctx, "u1").Snapshot().Items) == 1
				return cart.WriteResult{}, nil
			})

		_, err := f.svc.Submit(ctx, "u1", "tok", textItem(), nil)

		assert.NoError(t, err)
		assert.True(t, sawOptimistic)
	})

	t.Run("fresh_image_logo_uploaded_first", func(t *testing.T) {
		f := newFixture(t)

		item := textItem()
		item.Logo = logo.Wrap(logo.ImageLogo{Upload: &logo.Upload{
			Filename: "logo.png",
			MIME:     "image/png",
			Data:     []byte{0x89, 0x50},
		}})

		f.uploader.EXPECT().
			UploadLogo(ctx, gomock.Any(), "logo.png").
			Return("https://cdn.example/logo.png", nil)
		f.writer.EXPECT().
			WriteLineItem(ctx, "tok", gomock.Any()).
			Return(cart.WriteResult{}, nil)

		outcome, err := f.svc.Submit(ctx, "u1", "tok", item, nil)

		assert.NoError(t, err)
		assert.Equal(t, "https://cdn.example/logo.png", outcome.LogoURL)
	})

	t.Run("upload_failure_does_not_block_submission", func(t *testing.T) {
		f := newFixture(t)

		item := textItem()
		item.Logo = logo.Wrap(logo.ImageLogo{Upload: &logo.Upload{
			Filename: "logo.png",
			MIME:     "image/png",
			Data:     []byte{0x89, 0x50},
		}})

		f.uploader.EXPECT().
			UploadLogo(ctx, gomock.Any(), "logo.png").
			Return("", assert.AnError)
		f.writer.EXPECT().
			WriteLineItem(ctx, "tok", gomock.Any()).
			Return(cart.WriteResult{LogoURL: "https://backend.example/logo.png"}, nil)

		outcome, err := f.svc.Submit(ctx, "u1", "tok", item, nil)

		assert.NoError(t, err)
		assert.Equal(t, cart.PhaseConfirmed, outcome.Phase)
		assert.Equal(t, "https://backend.example/logo.png", outcome.LogoURL)
	})

	t.Run("concurrent_submission_for_same_bundle_rejected", func(t *testing.T) {
		f := newFixture(t)

		writeStarted := make(chan struct{})
		release := make(chan struct{})

		f.writer.EXPECT().
			WriteLineItem(ctx, "tok", gomock.Any()).
			DoAndReturn(func(context.Context, string, cart.LineItem) (cart.WriteResult, error) {
				close(writeStarted)
				<-release
				return cart.WriteResult{}, nil
			})

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.Submit(ctx, "u1", "tok", textItem(), nil)
			assert.NoError(t, err)
		}()

		<-writeStarted
		_, err := f.svc.Submit(ctx, "u1", "tok", textItem(), nil)
		assert.ErrorIs(t, err, cart.ErrSubmissionInFlight)

		close(release)
		wg.Wait()
	})
}

func TestDetail(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	store := f.stores.ForUser(ctx, "u1")
	store.AppendLineItem(textItem())
	store.SetPromo(cart.Promo{Code: "SAVE10", DiscountPercent: 10})

	detail, err := f.svc.Detail(ctx, "u1")

	assert.NoError(t, err)
	if assert.Len(t, detail.Items, 1) {
		assert.True(t, detail.Items[0].HasLogo)
		assert.False(t, detail.Items[0].UsePreviousLogo)
	}
	if assert.NotNil(t, detail.Promo) {
		assert.Equal(t, "SAVE10", detail.Promo.Code)
	}
}

func TestRemoveItem(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.stores.ForUser(ctx, "u1").AppendLineItem(textItem())

	assert.NoError(t, f.svc.RemoveItem(ctx, "u1", "item-1"))
	assert.ErrorIs(t, f.svc.RemoveItem(ctx, "u1", "item-1"), cart.ErrItemNotFound)
}

func TestUpdateQty(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.stores.ForUser(ctx, "u1").AppendLineItem(textItem())

	t.Run("success", func(t *testing.T) {
		err := f.svc.UpdateQty(ctx, "u1", "item-1", cart.UpdateQtyRequest{Qty: 4})
		assert.NoError(t, err)
		assert.Equal(t, int32(4), f.stores.ForUser(ctx, "u1").Snapshot().Items[0].Quantity)
	})

	t.Run("zero_qty_rejected", func(t *testing.T) {
		err := f.svc.UpdateQty(ctx, "u1", "item-1", cart.UpdateQtyRequest{Qty: 0})
		assert.ErrorIs(t, err, cart.ErrInvalidQty)
	})

	t.Run("missing_item", func(t *testing.T) {
		err := f.svc.UpdateQty(ctx, "u1", "missing", cart.UpdateQtyRequest{Qty: 2})
		assert.ErrorIs(t, err, cart.ErrItemNotFound)
	})
}

func TestSetShipping(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	t.Run("pins_the_cost", func(t *testing.T) {
		cost := 9.99
		err := f.svc.SetShipping(ctx, "u1", cart.SetShippingRequest{Cost: &cost})

		assert.NoError(t, err)
		if assert.NotNil(t, f.stores.ForUser(ctx, "u1").Snapshot().ShippingOverride) {
			assert.Equal(t, 9.99, *f.stores.ForUser(ctx, "u1").Snapshot().ShippingOverride)
		}
	})

	t.Run("null_cost_restores_threshold_shipping", func(t *testing.T) {
		err := f.svc.SetShipping(ctx, "u1", cart.SetShippingRequest{})

		assert.NoError(t, err)
		assert.Nil(t, f.stores.ForUser(ctx, "u1").Snapshot().ShippingOverride)
	})

	t.Run("negative_cost_rejected", func(t *testing.T) {
		cost := -1.0
		err := f.svc.SetShipping(ctx, "u1", cart.SetShippingRequest{Cost: &cost})

		assert.ErrorIs(t, err, cart.ErrInvalidShipping)
	})
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	store := f.stores.ForUser(ctx, "u1")
	store.AppendLineItem(textItem())
	store.SetPromo(cart.Promo{Code: "SAVE10", DiscountPercent: 10})

	assert.NoError(t, f.svc.Clear(ctx, "u1"))

	snap := store.Snapshot()
	assert.Empty(t, snap.Items)
	assert.Nil(t, snap.Promo)
}
