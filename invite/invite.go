// Package invite builds referral links and places them on the system clipboard.
package invite

import (
	"errors"
	"net/url"
	"strings"

	"github.com/atotto/clipboard"
)

// ErrClipboardUnavailable is returned when no clipboard utility is installed
var ErrClipboardUnavailable = errors.New("clipboard unavailable")

// Clipboard writes text to a clipboard
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard uses the desktop clipboard through xclip, xsel, wl-copy, pbcopy or clip.exe
type SystemClipboard struct{}

// WriteAll copies text to the system clipboard
func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnavailable
	}
	return clipboard.WriteAll(text)
}

// Link joins the base URL and the escaped invite code
func Link(base, code string) string {
	code = url.QueryEscape(code)
	if base == "" {
		return code
	}
	if strings.Contains(base, "?") || strings.HasSuffix(base, "=") || strings.HasSuffix(base, "/") {
		return base + code
	}
	return base + "/" + code
}

// Share copies the link to cb and reports whether the copy succeeded
// The link is returned either way so the caller can show it
func Share(cb Clipboard, base, code string) (string, error) {
	link := Link(base, code)
	if cb == nil {
		return link, ErrClipboardUnavailable
	}
	if err := cb.WriteAll(link); err != nil {
		return link, err
	}
	return link, nil
}
