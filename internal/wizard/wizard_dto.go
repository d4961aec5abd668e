package wizard

import (
	"go-apparel-api/internal/cart"
	"go-apparel-api/internal/logo"
)

// ==================== REQUEST STRUCTS ====================

type OpenRequest struct {
	BundleID string `json:"bundleId"`
}

type SelectMethodRequest struct {
	Method string `json:"method" binding:"required"`
}

type PositionsRequest struct {
	Positions map[string][]string `json:"positions" binding:"required"`
}

type LogoMethodRequest struct {
	Choice string `json:"choice" binding:"required"`
}

type TextLogoRequest struct {
	Line string    `json:"line"`
	Font logo.Font `json:"font"`
}

type PreviousLogoRequest struct {
	URL string `json:"url"`
}

type NotesRequest struct {
	Notes string `json:"notes"`
}

// ==================== RESPONSE STRUCTS ====================

type SessionResponse struct {
	ID          string              `json:"id"`
	BundleID    string              `json:"bundleId"`
	Step        Step                `json:"step"`
	Method      string              `json:"method,omitempty"`
	Positions   map[string][]string `json:"positions,omitempty"`
	LogoKind    logo.Kind           `json:"logoKind,omitempty"`
	LogoPreview string              `json:"logoPreview,omitempty"`
	Notes       string              `json:"notes,omitempty"`
	Title       string              `json:"title"`
	Price       float64             `json:"price"`
}

type SubmitResponse struct {
	Submitted bool                 `json:"submitted"`
	Session   *SessionResponse     `json:"session,omitempty"`
	Outcome   *cart.SubmitResponse `json:"outcome,omitempty"`
}

func toSessionResponse(s *Session) *SessionResponse {
	if s == nil {
		return nil
	}
	res := &SessionResponse{
		ID:        s.ID,
		BundleID:  s.BundleID,
		Step:      s.Step,
		Method:    s.Method,
		Positions: s.Positions,
		Notes:     s.Notes,
		Title:     s.Title,
		Price:     s.Price,
	}

	switch content := s.Logo.Content().(type) {
	case logo.TextLogo:
		res.LogoKind = logo.KindText
		res.LogoPreview = content.Line
	case logo.ImageLogo:
		res.LogoKind = logo.KindImage
		res.LogoPreview = content.Upload.PreviewDataURL()
	case logo.ReusedLogo:
		res.LogoKind = logo.KindReused
		res.LogoPreview = content.URL
	}
	return res
}
