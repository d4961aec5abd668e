package logo

import (
	"encoding/base64"
	"fmt"
	"sync"
)

type Font string

const (
	FontStandard  Font = "Standard"
	FontSerif     Font = "Serif"
	FontSansSerif Font = "Sans-serif"
)

func ValidFont(f Font) bool {
	switch f {
	case FontStandard, FontSerif, FontSansSerif:
		return true
	}
	return false
}

type Kind string

const (
	KindText   Kind = "text"
	KindImage  Kind = "image"
	KindReused Kind = "reused"
)

// Content is the logo sum type. Exactly one variant is active at a time;
// consumers switch on the concrete type and must treat an unknown variant as
// an error.
type Content interface {
	Kind() Kind
}

type TextLogo struct {
	Line string `json:"line"`
	Font Font   `json:"font"`
}

func (TextLogo) Kind() Kind { return KindText }

type ImageLogo struct {
	Upload *Upload `json:"upload"`
}

func (ImageLogo) Kind() Kind { return KindImage }

type ReusedLogo struct {
	URL string `json:"url"`
}

func (ReusedLogo) Kind() Kind { return KindReused }

// Upload holds a freshly uploaded logo file. The preview data URL is built
// lazily from the bytes already in memory; it never touches the network.
type Upload struct {
	Filename string `json:"filename"`
	MIME     string `json:"mime"`
	Data     []byte `json:"data"`

	previewOnce sync.Once
	preview     string
}

func (u *Upload) PreviewDataURL() string {
	u.previewOnce.Do(func() {
		u.preview = fmt.Sprintf(
			"data:%s;base64,%s",
			u.MIME,
			base64.StdEncoding.EncodeToString(u.Data),
		)
	})
	return u.preview
}

// Envelope is the persistence shape of Content. Wizard sessions live in
// redis as JSON, so the union is stored tagged.
type Envelope struct {
	Kind   Kind        `json:"kind"`
	Text   *TextLogo   `json:"text,omitempty"`
	Image  *ImageLogo  `json:"image,omitempty"`
	Reused *ReusedLogo `json:"reused,omitempty"`
}

func Wrap(content Content) *Envelope {
	switch v := content.(type) {
	case TextLogo:
		return &Envelope{Kind: KindText, Text: &v}
	case *TextLogo:
		return &Envelope{Kind: KindText, Text: v}
	case ImageLogo:
		return &Envelope{Kind: KindImage, Image: &v}
	case *ImageLogo:
		return &Envelope{Kind: KindImage, Image: v}
	case ReusedLogo:
		return &Envelope{Kind: KindReused, Reused: &v}
	case *ReusedLogo:
		return &Envelope{Kind: KindReused, Reused: v}
	}
	return nil
}

func (e *Envelope) Content() Content {
	if e == nil {
		return nil
	}
	switch e.Kind {
	case KindText:
		if e.Text != nil {
			return *e.Text
		}
	case KindImage:
		if e.Image != nil {
			return *e.Image
		}
	case KindReused:
		if e.Reused != nil {
			return *e.Reused
		}
	}
	return nil
}
