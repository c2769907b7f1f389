package board

import "time"

// BannerDuration is how long a banner stays visible.
const BannerDuration = 5 * time.Second

// Kind is the styling of a banner.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Banner is the transient status message shown after an action.
//
// Each Show returns a token. Hide only takes effect for the token of the
// most recent Show, so an older pending hide cannot clear a newer message.
type Banner struct {
	Text    string
	Kind    Kind
	Visible bool
	token   uint64
}

// Show makes the banner visible with text and returns the token to hide it.
func (b *Banner) Show(text string, kind Kind) uint64 {
	b.token++
	b.Text = text
	b.Kind = kind
	b.Visible = true
	return b.token
}

// Hide hides the banner if token belongs to the current message. It reports
// whether the banner was hidden.
func (b *Banner) Hide(token uint64) bool {
	if token != b.token || !b.Visible {
		return false
	}
	b.Visible = false
	return true
}
