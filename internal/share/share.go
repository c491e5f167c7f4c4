// Package share builds the text users send to friends and puts it on the
// clipboard.
package share

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

const (
	pageTitle = "Ready to move to China?"
	pageText  = "Check out this site helping people decide on moving to China!"
)

// Payload is what a share sheet would receive. URL is empty when the page
// address isn't a web URL.
type Payload struct {
	Title string
	Text  string
	URL   string
}

// PageShare builds the "Share with friends" payload for the site.
func PageShare(url string) Payload {
	p := Payload{Title: pageTitle, Text: pageText}
	if strings.HasPrefix(url, "http") {
		p.URL = url
	}
	return p
}

// CopyText is the single string copied when no share sheet exists.
func (p Payload) CopyText() string {
	if p.URL == "" {
		return p.Text
	}
	return p.Text + " " + p.URL
}

// Challenge is the text copied from the quiz result view.
func Challenge(score int, city, url string) string {
	return fmt.Sprintf("I'm %d%% ready for %s. Test your survival score: %s", score, city, url)
}

// Clipboard writes text somewhere the user can paste it from.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard uses the OS clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnsupported
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}

// MemoryClipboard keeps the last copied text. Used for --ephemeral runs and tests.
type MemoryClipboard struct {
	Text string
}

func (m *MemoryClipboard) WriteAll(text string) error {
	m.Text = text
	return nil
}
