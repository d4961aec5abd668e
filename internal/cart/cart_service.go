package cart

import (
	"context"
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"go-apparel-api/internal/cloudinary"
	"go-apparel-api/internal/logo"
	"go-apparel-api/internal/pkg/apperror"
)

// Phase tags the outcome of a two-phase submission so callers can reconcile
// local state deterministically.
type Phase string

const (
	// PhaseOptimistic: the item is in the local store, durable write pending.
	PhaseOptimistic Phase = "OPTIMISTIC"
	// PhaseConfirmed: the backend acknowledged the write.
	PhaseConfirmed Phase = "CONFIRMED"
	// PhaseFailed: the durable write failed. The optimistic entry stays in
	// the local store; callers may compensate via RemoveItem.
	PhaseFailed Phase = "FAILED"
)

type SubmitOutcome struct {
	Phase   Phase
	Item    LineItem
	Message string
	LogoURL string
}

//go:generate mockgen -source=cart_service.go -destination=../mock/cart/cart_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, userID, token string, item LineItem, onComplete func()) (SubmitOutcome, error)
	Detail(ctx context.Context, userID string) (DetailResponse, error)
	RemoveItem(ctx context.Context, userID, itemID string) error
	UpdateQty(ctx context.Context, userID, itemID string, req UpdateQtyRequest) error
	SetShipping(ctx context.Context, userID string, req SetShippingRequest) error
	Clear(ctx context.Context, userID string) error
}

type service struct {
	stores   *Manager
	writer   Writer
	uploader cloudinary.Service
	validate *validator.Validate
	logger   *zap.Logger

	// One durable write per (user, bundle) at a time; the submit button is
	// disabled while a prior submission is pending.
	inflight sync.Map
}

type Deps struct {
	Stores   *Manager
	Writer   Writer
	Uploader cloudinary.Service
	Logger   *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.Stores == nil {
		panic("cart store manager cannot be nil")
	}
	if deps.Writer == nil {
		panic("cart writer cannot be nil")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &service{
		stores:   deps.Stores,
		writer:   deps.Writer,
		uploader: deps.Uploader,
		validate: validator.New(),
		logger:   deps.Logger.Named("cart.service"),
	}
}

// Submit runs the two-phase pipeline: optimistic local insert first, then
// the durable multipart write. A failed durable write does NOT roll the
// optimistic entry back.
func (s *service) Submit(ctx context.Context, userID, token string, item LineItem, onComplete func()) (SubmitOutcome, error) {
	logger := s.logger.With(
		zap.String("user_id", userID),
		zap.String("bundle_id", item.BundleID),
	)

	flightKey := userID + ":" + item.BundleID
	if _, busy := s.inflight.LoadOrStore(flightKey, struct{}{}); busy {
		return SubmitOutcome{}, ErrSubmissionInFlight
	}
	defer s.inflight.Delete(flightKey)

	// 1. Optimistic insert, visible to subscribers before any network I/O.
	store := s.stores.ForUser(ctx, userID)
	store.AppendLineItem(item)
	logger.Debug("optimistic cart insert", zap.String("item_id", item.ID))

	// 2. Fresh image logos get a CDN copy before the write. The binary still
	// travels with the durable write: the backend keeps the original file as
	// the production embroidery asset, while the CDN URL serves previews.
	var uploadedURL string
	if img, ok := item.Logo.Content().(logo.ImageLogo); ok && s.uploader != nil {
		url, err := s.uploader.UploadLogo(ctx, img.Upload.Data, img.Upload.Filename)
		if err != nil {
			logger.Warn("logo upload failed, continuing with binary attachment", zap.Error(err))
		} else {
			uploadedURL = url
		}
	}

	// 3. Durable write.
	res, err := s.writer.WriteLineItem(ctx, token, item)
	if err != nil {
		logger.Error("durable cart write failed", zap.Error(err))

		message := ErrSubmitFailed.Message
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Message != "" {
			message = appErr.Message
		}
		return SubmitOutcome{
			Phase:   PhaseFailed,
			Item:    item,
			Message: message,
		}, err
	}

	if res.LogoURL != "" {
		uploadedURL = res.LogoURL
	}

	// 4. Completion callback clears the wizard's in-progress configuration.
	if onComplete != nil {
		onComplete()
	}

	logger.Info("cart submission confirmed", zap.String("item_id", item.ID))

	return SubmitOutcome{
		Phase:   PhaseConfirmed,
		Item:    item,
		Message: res.Message,
		LogoURL: uploadedURL,
	}, nil
}

func (s *service) Detail(ctx context.Context, userID string) (DetailResponse, error) {
	snap := s.stores.ForUser(ctx, userID).Snapshot()

	items := make([]ItemResponse, 0, len(snap.Items))
	for _, item := range snap.Items {
		items = append(items, ItemResponse{
			ID:              item.ID,
			BundleID:        item.BundleID,
			Title:           item.Title,
			Price:           item.Price,
			Thumbnail:       item.Thumbnail,
			Method:          item.Method,
			Position:        item.Position,
			Products:        item.Products,
			Quantity:        item.Quantity,
			HasLogo:         item.HasLogo(),
			UsePreviousLogo: item.UsePreviousLogo,
			Notes:           item.Notes,
		})
	}

	return DetailResponse{Items: items, Promo: snap.Promo}, nil
}

func (s *service) RemoveItem(ctx context.Context, userID, itemID string) error {
	if !s.stores.ForUser(ctx, userID).RemoveLineItem(itemID) {
		return ErrItemNotFound
	}
	return nil
}

func (s *service) UpdateQty(ctx context.Context, userID, itemID string, req UpdateQtyRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return ErrInvalidQty
	}
	if !s.stores.ForUser(ctx, userID).SetQuantity(itemID, req.Qty) {
		return ErrItemNotFound
	}
	return nil
}

func (s *service) SetShipping(ctx context.Context, userID string, req SetShippingRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return ErrInvalidShipping
	}
	s.stores.ForUser(ctx, userID).SetShippingOverride(req.Cost)
	return nil
}

func (s *service) Clear(ctx context.Context, userID string) error {
	s.stores.ForUser(ctx, userID).Clear()
	return nil
}
