package wizard_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"go-apparel-api/internal/bundle"
	"go-apparel-api/internal/cart"
	"go-apparel-api/internal/catalog"
	"go-apparel-api/internal/logo"
	mockcart "go-apparel-api/internal/mock/cart"
	mockcatalog "go-apparel-api/internal/mock/catalog"
	mockwizard "go-apparel-api/internal/mock/wizard"
	"go-apparel-api/internal/wizard"
)

type fixture struct {
	store   *mockwizard.MockStore
	catalog *mockcatalog.MockClient
	cartSvc *mockcart.MockService
	svc     wizard.Service
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		store:   mockwizard.NewMockStore(ctrl),
		catalog: mockcatalog.NewMockClient(ctrl),
		cartSvc: mockcart.NewMockService(ctrl),
	}
	f.svc = wizard.NewService(wizard.Deps{
		Store:   f.store,
		Catalog: f.catalog,
		CartSvc: f.cartSvc,
		Logger:  zap.NewNop(),
	})
	return f
}

func hoodieBundle() catalog.Bundle {
	return catalog.Bundle{
		ID:        "bundle-1",
		Title:     "Workwear Hoodie Bundle",
		Price:     89.99,
		Thumbnail: "https://cdn.example/hoodie.jpg",
		Products: []catalog.Product{
			{ID: "p1", Name: "Hoodie", AvailableColors: []string{"Black"}},
		},
	}
}

func sessionAt(step wizard.Step) *wizard.Session {
	b := hoodieBundle()
	return &wizard.Session{
		ID:        "sess-1",
		UserID:    "u1",
		BundleID:  b.ID,
		Step:      step,
		Positions: map[string][]string{},
		Title:     b.Title,
		Price:     b.Price,
		Thumbnail: b.Thumbnail,
		Products:  b.Products,
	}
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("blank_bundle_id_yields_fatal_error_session", func(t *testing.T) {
		f := newFixture(t)

		session, err := f.svc.Open(ctx, "u1", "  ")

		assert.NoError(t, err)
		assert.Equal(t, wizard.StepError, session.Step)
		// The error session is never persisted; no Save expectation.
	})

	t.Run("new_session_starts_at_method", func(t *testing.T) {
		f := newFixture(t)

		f.store.EXPECT().Load(ctx, "u1", "bundle-1").Return(nil, wizard.ErrSessionNotFound)
		f.catalog.EXPECT().Bundle(ctx, "bundle-1").Return(hoodieBundle(), nil)
		f.store.EXPECT().Save(ctx, gomock.Any()).Return(nil)

		session, err := f.svc.Open(ctx, "u1", "bundle-1")

		assert.NoError(t, err)
		assert.Equal(t, wizard.StepMethod, session.Step)
		assert.Equal(t, "Workwear Hoodie Bundle", session.Title)
		assert.NotEmpty(t, session.ID)
	})

	t.Run("session_with_progress_resumes_at_method", func(t *testing.T) {
		f := newFixture(t)

		existing := sessionAt(wizard.StepLogoMethod)
		existing.Method = "Embroidery"
		existing.Positions = map[string][]string{"p1": {"Left Breast"}}

		f.store.EXPECT().Load(ctx, "u1", "bundle-1").Return(existing, nil)
		f.store.EXPECT().Save(ctx, gomock.Any()).Return(nil)

		session, err := f.svc.Open(ctx, "u1", "bundle-1")

		assert.NoError(t, err)
		assert.Equal(t, wizard.StepMethod, session.Step)
		assert.Equal(t, "Embroidery", session.Method)
		assert.Equal(t, []string{"Left Breast"}, session.Positions["p1"])
	})

	t.Run("stale_empty_session_starts_fresh", func(t *testing.T) {
		f := newFixture(t)

		f.store.EXPECT().Load(ctx, "u1", "bundle-1").Return(sessionAt(wizard.StepMethod), nil)
		f.catalog.EXPECT().Bundle(ctx, "bundle-1").Return(hoodieBundle(), nil)
		f.store.EXPECT().Save(ctx, gomock.Any()).Return(nil)

		session, err := f.svc.Open(ctx, "u1", "bundle-1")

		assert.NoError(t, err)
		assert.Equal(t, wizard.StepMethod, session.Step)
	})

	t.Run("unknown_bundle_propagates_catalog_error", func(t *testing.T) {
		f := newFixture(t)

		f.store.EXPECT().Load(ctx, "u1", "nope").Return(nil, wizard.ErrSessionNotFound)
		f.catalog.EXPECT().Bundle(ctx, "nope").Return(catalog.Bundle{}, catalog.ErrBundleNotFound)

		_, err := f.svc.Open(ctx, "u1", "nope")

		assert.ErrorIs(t, err, catalog.ErrBundleNotFound)
	})
}

func TestSelectMethod(t *testing.T) {
	ctx := context.Background()

	t.Run("first_pass_advances_to_position", func(t *testing.T) {
		f := newFixture(t)

		f.store.EXPECT().Load(ctx, "u1", "bundle-1").Return(sessionAt(wizard.StepMethod), nil)
		f.store.EXPECT().Save(ctx, gomock.Any()).Return(nil)

		result, err := f.svc.SelectMethod(ctx, "u1", "tok", "bundle-1", "Embroidery")

		assert.NoError(t, err)
		assert.False(t, result.Submitted)
		assert.Equal(t, wizard.StepPosition, result.Session.Step)
		assert.Equal(t, "Embroidery", result.Session.Method)
	})

	t.Run("confirmation_pass_with_logo_submits_immediately", func(t *testing.T) {
		f := newFixture(t)

		session := sessionAt(wizard.StepMethod)
		session.Positions = map[string][]string{"p1": {"Left Breast"}}
		session.Logo = logo.Wrap(logo.TextLogo{Line: "ACME", Font: logo.FontStandard})

		f.store.EXPECT().Load(ctx, "u1", "bundle-1").Return(session, nil)
		f.cartSvc.EXPECT().
			Submit(ctx, "u1", "tok", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, item cart.LineItem, onComplete func()) (cart.SubmitOutcome, error) {
				assert.Equal(t, "Embroidery", item.Method)
				assert.Equal(t, []string{"Left Breast"}, item.Position)
				onComplete()
				return cart.SubmitOutcome{Phase: cart.PhaseConfirmed, Item: item}, nil
			})
		f.store.EXPECT().Delete(gomock.Any(), "u1", "bundle-1").Return(nil)

		result, err := f.svc.SelectMethod(ctx, "u1", "tok", "bundle-1", "embroidery")

		assert.NoError(t, err)
		assert.True(t, result.Submitted)
		assert.Equal(t, wizard.StepSubmitted, result.Session.Step)
		assert.Equal(t, cart.PhaseConfirmed, result.Outcome.Phase)
	})

	t.Run("failed_durable_write_leaves_wizard_open", func(t *testing.T) {
		f := newFixture(t)

		session := sessionAt(wizard.StepMethod)
		session.Positions = map[string][]string{"p1": {"Left Breast"}}
		session.Logo = logo.Wrap(logo.TextLogo{Line: "ACME", Font: logo.FontStandard})

		f.store.EXPECT().Load(ctx, "u1", "bundle-1").Return(session, nil)
		f.cartSvc.EXPECT().
			Submit(ctx, "u1", "tok", gomock.Any(), gomock.Any()).
			Return(cart.SubmitOutcome{Phase: cart.PhaseFailed, Message: "backend down"}, cart.ErrSubmitFailed)

		result, err := f.svc.SelectMethod(ctx, "u1", "tok", "bundle-1", "Print")

		assert.ErrorIs(t, err, cart.ErrSubmitFailed)
		assert.False(t, result.Submitted)
		assert.Equal(t, wizard.StepMethod, result.Session.Step)
		assert.Equal(t, cart.PhaseFailed, result.Outcome.Phase)
	})

	t.Run("assembly_error_leaves_wizard_open", func(t *testing.T) {
		f := newFixture(t)

		session := sessionAt(wizard.StepMethod)
		session.Products = nil
		session.Logo = logo.Wrap(logo.TextLogo{Line: "ACME", Font: logo.FontStandard})

		f.store.EXPECT().Load(ctx, "u1", "bundle-1").Return(session, nil)

		_, err := f.svc.SelectMethod(ctx, "u1", "tok", "bundle-1", "Print")

		assert.ErrorIs(t, err, bundle.ErrNoProducts)
	})

	t.Run("wrong_step_rejected", func(t *testing.T) {
		f := newFixture(t)

		f.store.EXPECT().Load(ctx, "u1", "bundle-1").Return(sessionAt(wizard.StepLogoMethod), nil)

		_, err := f.svc.SelectMethod(ctx, "u1", "tok", "bundle-1", "Print")

		assert.ErrorIs(t, err, wizard.ErrIllegalTransition)
	})

	t.Run("blank_bundle_id_is_fatal", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.SelectMethod(ctx, "u1", "tok", "", "Print")

		assert.ErrorIs(t, err, wizard.ErrMissingBundle)
	})
}

func TestCompletePositions(t *testing.T) {
	ctx := context.Background()

	t.Run("at_least_one_position_required", func(t *testing.T) {
		f := newFixture(t)

		f.store.EXPECT().Load(ctx, "u1", "bundle-1").Return(sessionAt(wizard.StepPosition), nil)

		_, err := f.svc.CompletePositions(ctx, "u1", "bundle-1", map[string][]string{"p1": {}})

		assert.ErrorIs(t, err, wizard.ErrNoPositions)
	})

	t.Run("unknown_position_rejected", func(t *testing.T) {
		f := newFixture(t)

		f.store.EXPECT().Load(ctx, "u1", "bundle-1").Return(sessionAt(wizard.StepPosition), nil)

		_, err := f.svc.CompletePositions(ctx, "u1", "bundle-1", map[string][]string{"p1": {"Elbow"}})

		assert.ErrorIs(t, err, wizard.ErrUnknownPosition)
	})

	t.Run("valid_selection_advances_to_logo_method", func(t *testing.T) {
		f := newFixture(t)

		f.store.EXPECT().Load(ctx, "u1", "bundle-1").Return(sessionAt(wizard.StepPosition), nil)
		f.store.EXPECT().Save(ctx, gomock.Any()).Return(nil)

		session, err := f.svc.CompletePositions(ctx, "u1", "bundle-1", map[string][]string{
			"p1": {"Left Breast", "Large Back"},
		})

		assert.NoError(t, err)
		assert.Equal(t, wizard.StepLogoMethod, session.Step)
	})
}

func TestChooseLogoMethod(t *testing.T) {
	ctx := context.Background()

	t.Run("text_routes_to_text_capture", func(t *testing.T) {
		f := newFixture(t)

		f.store.EXPECT().Load(ctx, "u1", "bundle-1").Return(sessionAt(wizard.StepLogoMethod), nil)
		f.store.EXPECT().Save(ctx, gomock.Any()).Return(nil)

		session, err := f.svc.ChooseLogoMethod(ctx, "u1", "bundle-1", "text")

		assert.NoError(t, err)
		assert.Equal(t, wizard.StepAddTextLogo, session.Step)
	})

	t.Run("image_routes_to_upload", func(t *testing.T) {
		f := newFixture(t)

		f.store.EXPECT().Load(ctx, "u1", "bundle-1").Return(sessionAt(wizard.StepLogoMethod), nil)
		f.store.EXPECT().Save(ctx, gomock.Any()).Return(nil)

		session, err := f.svc.ChooseLogoMethod(ctx, "u1", "bundle-1", "image")

		assert.NoError(t, err)
		assert.Equal(t, wizard.StepUploadLogo, session.Step)
	})

	t.Run("unknown_choice_rejected", func(t *testing.T) {
		f := newFixture(t)

		f.store.EXPECT().Load(ctx, "u1", "bundle-1").Return(sessionAt(wizard.StepLogoMethod), nil)

		_, err := f.svc.ChooseLogoMethod(ctx, "u1", "bundle-1", "sticker")

		assert.ErrorIs(t, err, wizard.ErrUnknownLogoChoice)
	})
}

func TestCaptureLogo(t *testing.T) {
	ctx := context.Background()

	t.Run("text_logo_returns_to_method_for_confirmation", func(t *testing.T) {
		f := newFixture(t)

		f.store.EXPECT().Load(ctx, "u1", "bundle-1").Return(sessionAt(wizard.StepAddTextLogo), nil)
		f.store.EXPECT().Save(ctx, gomock.Any()).Return(nil)

		session, err := f.svc.CaptureTextLogo(ctx, "u1", "bundle-1", "ACME Corp", logo.FontSerif)

		assert.NoError(t, err)
		assert.Equal(t, wizard.StepMethod, session.Step)
		assert.True(t, session.LogoCaptured())
	})

	t.Run("empty_text_leaves_step_unchanged", func(t *testing.T) {
		f := newFixture(t)

		f.store.EXPECT().Load(ctx, "u1", "bundle-1").Return(sessionAt(wizard.StepAddTextLogo), nil)

		_, err := f.svc.CaptureTextLogo(ctx, "u1", "bundle-1", "   ", logo.FontStandard)

		assert.ErrorIs(t, err, logo.ErrEmptyText)
	})

	t.Run("oversize_upload_rejected", func(t *testing.T) {
		f := newFixture(t)

		f.store.EXPECT().Load(ctx, "u1", "bundle-1").Return(sessionAt(wizard.StepUploadLogo), nil)

		_, err := f.svc.CaptureImageLogo(ctx, "u1", "bundle-1", &logo.Upload{
			Filename: "big.png",
			MIME:     "image/png",
			Data:     make([]byte, logo.MaxUploadSize+1),
		})

		assert.ErrorIs(t, err, logo.ErrTooLarge)
	})

	t.Run("unsupported_type_rejected", func(t *testing.T) {
		f := newFixture(t)

		f.store.EXPECT().Load(ctx, "u1", "bundle-1").Return(sessionAt(wizard.StepUploadLogo), nil)

		_, err := f.svc.CaptureImageLogo(ctx, "u1", "bundle-1", &logo.Upload{
			Filename: "logo.gif",
			MIME:     "image/gif",
			Data:     []byte(strings.Repeat("x", 64)),
		})

		assert.ErrorIs(t, err, logo.ErrUnsupportedType)
	})

	t.Run("previous_logo_returns_to_method", func(t *testing.T) {
		f := newFixture(t)

		f.store.EXPECT().Load(ctx, "u1", "bundle-1").Return(sessionAt(wizard.StepUploadLogo), nil)
		f.store.EXPECT().Save(ctx, gomock.Any()).Return(nil)

		session, err := f.svc.SelectPreviousLogo(ctx, "u1", "bundle-1", "https://cdn.example/old-logo.png")

		assert.NoError(t, err)
		assert.Equal(t, wizard.StepMethod, session.Step)
		assert.True(t, session.LogoCaptured())
	})
}

func TestBack(t *testing.T) {
	ctx := context.Background()

	t.Run("backing_out_of_position_clears_method", func(t *testing.T) {
		f := newFixture(t)

		session := sessionAt(wizard.StepPosition)
		session.Method = "Embroidery"

		f.store.EXPECT().Load(ctx, "u1", "bundle-1").Return(session, nil)
		f.store.EXPECT().Save(ctx, gomock.Any()).Return(nil)

		got, err := f.svc.Back(ctx, "u1", "bundle-1")

		assert.NoError(t, err)
		assert.Equal(t, wizard.StepMethod, got.Step)
		assert.Empty(t, got.Method)
	})

	t.Run("method_survives_back_once_logo_is_captured", func(t *testing.T) {
		f := newFixture(t)

		session := sessionAt(wizard.StepPosition)
		session.Method = "Embroidery"
		session.Logo = logo.Wrap(logo.TextLogo{Line: "ACME", Font: logo.FontStandard})

		f.store.EXPECT().Load(ctx, "u1", "bundle-1").Return(session, nil)
		f.store.EXPECT().Save(ctx, gomock.Any()).Return(nil)

		got, err := f.svc.Back(ctx, "u1", "bundle-1")

		assert.NoError(t, err)
		assert.Equal(t, "Embroidery", got.Method)
	})

	t.Run("no_predecessor_from_first_step", func(t *testing.T) {
		f := newFixture(t)

		f.store.EXPECT().Load(ctx, "u1", "bundle-1").Return(sessionAt(wizard.StepMethod), nil)

		_, err := f.svc.Back(ctx, "u1", "bundle-1")

		assert.ErrorIs(t, err, wizard.ErrIllegalTransition)
	})
}

func TestClose(t *testing.T) {
	ctx := context.Background()

	t.Run("blank_bundle_id_is_a_noop", func(t *testing.T) {
		f := newFixture(t)

		assert.NoError(t, f.svc.Close(ctx, "u1", ""))
	})

	t.Run("discards_the_session", func(t *testing.T) {
		f := newFixture(t)

		f.store.EXPECT().Delete(ctx, "u1", "bundle-1").Return(nil)

		assert.NoError(t, f.svc.Close(ctx, "u1", "bundle-1"))
	})
}
