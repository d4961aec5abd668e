package logo

import (
	"strings"
)

// MaxUploadSize is the upload ceiling for logo images.
const MaxUploadSize = 5 << 20 // 5 MB

var allowedMIME = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
}

// Selector owns the in-progress logo choice. Exactly one of text, new image
// or reused image is active; selecting one discards the others. The empty
// selector is valid only before the wizard captures anything.
type Selector struct {
	active Content
}

func NewSelector() *Selector {
	return &Selector{}
}

// SetTextLogo validates and activates a text logo, replacing any image
// selection.
func (s *Selector) SetTextLogo(line string, font Font) error {
	if strings.TrimSpace(line) == "" {
		return ErrEmptyText
	}
	if font == "" {
		font = FontStandard
	}
	if !ValidFont(font) {
		return ErrInvalidFont
	}

	s.active = TextLogo{Line: line, Font: font}
	return nil
}

// SetImageLogo validates and activates a freshly uploaded image logo.
func (s *Selector) SetImageLogo(upload *Upload) error {
	if upload == nil || len(upload.Data) == 0 {
		return ErrUnsupportedType
	}
	if _, ok := allowedMIME[upload.MIME]; !ok {
		return ErrUnsupportedType
	}
	if len(upload.Data) > MaxUploadSize {
		return ErrTooLarge
	}

	s.active = ImageLogo{Upload: upload}
	return nil
}

// SelectPreviousLogo activates a logo already used on an earlier order.
// Mutually exclusive with SetImageLogo.
func (s *Selector) SelectPreviousLogo(url string) error {
	if strings.TrimSpace(url) == "" {
		return ErrEmptyURL
	}

	s.active = ReusedLogo{URL: url}
	return nil
}

// Clear resets to the no-logo state.
func (s *Selector) Clear() {
	s.active = nil
}

// Active returns the current selection, nil when nothing is captured.
func (s *Selector) Active() Content {
	return s.active
}

// Captured reports whether any logo variant is active.
func (s *Selector) Captured() bool {
	return s.active != nil
}

// Restore seeds the selector from a persisted session.
func (s *Selector) Restore(content Content) {
	s.active = content
}
