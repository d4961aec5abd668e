package wizard

import (
	"time"

	"go-apparel-api/internal/catalog"
	"go-apparel-api/internal/logo"
)

// Session is the in-progress bundle configuration. It is created empty when
// the wizard opens, mutated step by step through the service's event
// methods only, and discarded on close or successful submission.
type Session struct {
	ID       string `json:"id"`
	UserID   string `json:"userId"`
	BundleID string `json:"bundleId"`

	Step      Step                `json:"step"`
	Method    string              `json:"method"`
	Positions map[string][]string `json:"positions"`
	Logo      *logo.Envelope      `json:"logo,omitempty"`
	Notes     string              `json:"notes"`

	// Resolved at open time from the catalog.
	Title     string            `json:"title"`
	Price     float64           `json:"price"`
	Thumbnail string            `json:"thumbnail"`
	Products  []catalog.Product `json:"products"`

	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Session) transition(to Step) error {
	if !canTransition(s.Step, to) {
		return ErrIllegalTransition
	}
	s.Step = to
	s.UpdatedAt = time.Now()
	return nil
}

func (s *Session) LogoCaptured() bool {
	return s.Logo.Content() != nil
}

// positionCount counts selected positions across all products.
func (s *Session) positionCount() int {
	n := 0
	for _, names := range s.Positions {
		n += len(names)
	}
	return n
}

// hasProgress reports whether the session carries anything worth resuming.
func (s *Session) hasProgress() bool {
	return s.LogoCaptured() || s.positionCount() > 0
}
