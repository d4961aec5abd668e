package wizard

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"go-apparel-api/internal/bundle"
	"go-apparel-api/internal/cart"
	"go-apparel-api/internal/catalog"
	"go-apparel-api/internal/logo"
	"go-apparel-api/internal/position"
)

// SelectMethodResult distinguishes the first method pass (advance to
// position) from the confirmation pass (immediate submission).
type SelectMethodResult struct {
	Session   *Session
	Submitted bool
	Outcome   *cart.SubmitOutcome
}

//go:generate mockgen -source=wizard_service.go -destination=../mock/wizard/wizard_service_mock.go -package=mock
type Service interface {
	Open(ctx context.Context, userID, bundleID string) (*Session, error)
	SelectMethod(ctx context.Context, userID, token, bundleID, method string) (SelectMethodResult, error)
	CompletePositions(ctx context.Context, userID, bundleID string, positions map[string][]string) (*Session, error)
	ChooseLogoMethod(ctx context.Context, userID, bundleID, choice string) (*Session, error)
	CaptureTextLogo(ctx context.Context, userID, bundleID, line string, font logo.Font) (*Session, error)
	CaptureImageLogo(ctx context.Context, userID, bundleID string, upload *logo.Upload) (*Session, error)
	SelectPreviousLogo(ctx context.Context, userID, bundleID, url string) (*Session, error)
	UpdateNotes(ctx context.Context, userID, bundleID, notes string) (*Session, error)
	Back(ctx context.Context, userID, bundleID string) (*Session, error)
	Close(ctx context.Context, userID, bundleID string) error
}

type service struct {
	store   Store
	catalog catalog.Client
	cartSvc cart.Service
	logger  *zap.Logger
}

type Deps struct {
	Store   Store
	Catalog catalog.Client
	CartSvc cart.Service
	Logger  *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.Store == nil {
		panic("wizard store cannot be nil")
	}
	if deps.Catalog == nil {
		panic("catalog client cannot be nil")
	}
	if deps.CartSvc == nil {
		panic("cart service cannot be nil")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &service{
		store:   deps.Store,
		catalog: deps.Catalog,
		cartSvc: deps.CartSvc,
		logger:  deps.Logger.Named("wizard.service"),
	}
}

// Open starts or resumes a customization session. A missing bundle id is a
// fatal configuration error: the returned session sits in the error step and
// accepts only Close.
func (s *service) Open(ctx context.Context, userID, bundleID string) (*Session, error) {
	if strings.TrimSpace(bundleID) == "" {
		s.logger.Warn("wizard opened without bundle id", zap.String("user_id", userID))
		return &Session{
			ID:        uuid.New().String(),
			UserID:    userID,
			Step:      StepError,
			UpdatedAt: time.Now(),
		}, nil
	}

	// Resume a prior incomplete session when it captured anything; otherwise
	// start clean.
	if existing, err := s.store.Load(ctx, userID, bundleID); err == nil {
		if existing.hasProgress() && !existing.Step.Terminal() {
			existing.Step = StepMethod
			existing.UpdatedAt = time.Now()
			if err := s.store.Save(ctx, existing); err != nil {
				return nil, err
			}
			return existing, nil
		}
	}

	b, err := s.catalog.Bundle(ctx, bundleID)
	if err != nil {
		return nil, err
	}

	session := &Session{
		ID:        uuid.New().String(),
		UserID:    userID,
		BundleID:  bundleID,
		Step:      StepMethod,
		Positions: make(map[string][]string),
		Title:     b.Title,
		Price:     b.Price,
		Thumbnail: b.Thumbnail,
		Products:  b.Products,
		UpdatedAt: time.Now(),
	}
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SelectMethod records the customization method. On the confirmation pass
// (logo already captured) it submits the configuration instead of advancing.
func (s *service) SelectMethod(ctx context.Context, userID, token, bundleID, method string) (SelectMethodResult, error) {
	session, err := s.loadActive(ctx, userID, bundleID)
	if err != nil {
		return SelectMethodResult{}, err
	}
	if session.Step != StepMethod {
		return SelectMethodResult{}, ErrIllegalTransition
	}

	session.Method = method

	if session.LogoCaptured() {
		return s.submit(ctx, token, session)
	}

	if err := session.transition(StepPosition); err != nil {
		return SelectMethodResult{}, err
	}
	if err := s.store.Save(ctx, session); err != nil {
		return SelectMethodResult{}, err
	}
	return SelectMethodResult{Session: session}, nil
}

func (s *service) submit(ctx context.Context, token string, session *Session) (SelectMethodResult, error) {
	logger := s.logger.With(
		zap.String("user_id", session.UserID),
		zap.String("bundle_id", session.BundleID),
	)

	item, err := bundle.Assemble(bundle.Config{
		BundleID:  session.BundleID,
		Title:     session.Title,
		Price:     session.Price,
		Thumbnail: session.Thumbnail,
		Method:    session.Method,
		Positions: session.Positions,
		Logo:      session.Logo.Content(),
		Notes:     session.Notes,
		Quantity:  1,
	}, session.Products, bundle.Options{})
	if err != nil {
		// Assembly errors leave the wizard open for correction.
		logger.Warn("assembly rejected", zap.Error(err))
		return SelectMethodResult{}, err
	}

	outcome, err := s.cartSvc.Submit(ctx, session.UserID, token, item, func() {
		// Completion callback: the in-progress configuration is done with.
		if delErr := s.store.Delete(context.WithoutCancel(ctx), session.UserID, session.BundleID); delErr != nil {
			logger.Warn("session cleanup failed", zap.Error(delErr))
		}
	})
	if err != nil {
		// The durable write failed; the wizard stays open and finish can be
		// retried. The optimistic cart entry remains by design of the
		// pipeline.
		return SelectMethodResult{
			Session:   session,
			Submitted: false,
			Outcome:   &outcome,
		}, err
	}

	session.Step = StepSubmitted
	logger.Info("bundle configuration submitted", zap.String("item_id", item.ID))

	return SelectMethodResult{
		Session:   session,
		Submitted: true,
		Outcome:   &outcome,
	}, nil
}

// CompletePositions stores the position selection. The step is guarded: at
// least one position across all products.
func (s *service) CompletePositions(ctx context.Context, userID, bundleID string, positions map[string][]string) (*Session, error) {
	session, err := s.loadActive(ctx, userID, bundleID)
	if err != nil {
		return nil, err
	}
	if session.Step != StepPosition {
		return nil, ErrIllegalTransition
	}

	total := 0
	for _, names := range positions {
		for _, name := range names {
			if !position.Valid(name) {
				return nil, ErrUnknownPosition
			}
			total++
		}
	}
	if total == 0 {
		return nil, ErrNoPositions
	}

	session.Positions = positions
	if err := session.transition(StepLogoMethod); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *service) ChooseLogoMethod(ctx context.Context, userID, bundleID, choice string) (*Session, error) {
	session, err := s.loadActive(ctx, userID, bundleID)
	if err != nil {
		return nil, err
	}
	if session.Step != StepLogoMethod {
		return nil, ErrIllegalTransition
	}

	var next Step
	switch choice {
	case "text":
		next = StepAddTextLogo
	case "image":
		next = StepUploadLogo
	default:
		return nil, ErrUnknownLogoChoice
	}

	if err := session.transition(next); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// CaptureTextLogo validates and stores a text logo, then returns to the
// method step for confirmation. Validation failures leave the step
// unchanged.
func (s *service) CaptureTextLogo(ctx context.Context, userID, bundleID, line string, font logo.Font) (*Session, error) {
	session, err := s.loadActive(ctx, userID, bundleID)
	if err != nil {
		return nil, err
	}
	if session.Step != StepAddTextLogo {
		return nil, ErrIllegalTransition
	}

	selector := logo.NewSelector()
	if err := selector.SetTextLogo(line, font); err != nil {
		return nil, err
	}

	return s.finishLogo(ctx, session, selector.Active())
}

func (s *service) CaptureImageLogo(ctx context.Context, userID, bundleID string, upload *logo.Upload) (*Session, error) {
	session, err := s.loadActive(ctx, userID, bundleID)
	if err != nil {
		return nil, err
	}
	if session.Step != StepUploadLogo {
		return nil, ErrIllegalTransition
	}

	selector := logo.NewSelector()
	if err := selector.SetImageLogo(upload); err != nil {
		return nil, err
	}

	return s.finishLogo(ctx, session, selector.Active())
}

func (s *service) SelectPreviousLogo(ctx context.Context, userID, bundleID, url string) (*Session, error) {
	session, err := s.loadActive(ctx, userID, bundleID)
	if err != nil {
		return nil, err
	}
	if session.Step != StepUploadLogo {
		return nil, ErrIllegalTransition
	}

	selector := logo.NewSelector()
	if err := selector.SelectPreviousLogo(url); err != nil {
		return nil, err
	}

	return s.finishLogo(ctx, session, selector.Active())
}

// finishLogo carries the captured content forward into the confirmation
// view.
func (s *service) finishLogo(ctx context.Context, session *Session, content logo.Content) (*Session, error) {
	session.Logo = logo.Wrap(content)
	if err := session.transition(StepMethod); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *service) UpdateNotes(ctx context.Context, userID, bundleID, notes string) (*Session, error) {
	session, err := s.loadActive(ctx, userID, bundleID)
	if err != nil {
		return nil, err
	}

	session.Notes = notes
	session.UpdatedAt = time.Now()
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Back moves exactly one step backward along the path. Backing out of the
// position step clears the chosen method only while no logo is captured.
func (s *service) Back(ctx context.Context, userID, bundleID string) (*Session, error) {
	session, err := s.loadActive(ctx, userID, bundleID)
	if err != nil {
		return nil, err
	}

	prev, ok := backSteps[session.Step]
	if !ok {
		return nil, ErrIllegalTransition
	}

	if session.Step == StepPosition && !session.LogoCaptured() {
		session.Method = ""
	}

	if err := session.transition(prev); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Close abandons the session and discards all in-progress configuration. It
// is accepted from every state, including the fatal error display.
func (s *service) Close(ctx context.Context, userID, bundleID string) error {
	if strings.TrimSpace(bundleID) == "" {
		return nil
	}
	return s.store.Delete(ctx, userID, bundleID)
}

func (s *service) loadActive(ctx context.Context, userID, bundleID string) (*Session, error) {
	if strings.TrimSpace(bundleID) == "" {
		return nil, ErrMissingBundle
	}
	session, err := s.store.Load(ctx, userID, bundleID)
	if err != nil {
		return nil, err
	}
	if session.Step.Terminal() {
		return nil, ErrSessionNotFound
	}
	if session.Step == StepError {
		return nil, ErrMissingBundle
	}
	return session, nil
}
