package render

import (
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lixenwraith/abcedion/constants"
)

var numberPrinter = message.NewPrinter(language.English)

// FormatInt renders n with thousands separators
func FormatInt(n int64) string {
	return numberPrinter.Sprintf("%d", n)
}

// FormatPoints renders a balance with its fractional part dropped
func FormatPoints(v float64) string {
	return FormatInt(int64(math.Floor(v)))
}

// FormatTon renders a TON price with one decimal
func FormatTon(v float64) string {
	return numberPrinter.Sprintf("%.1f TON", v)
}

// ShortWallet abbreviates a wallet address for the header
func ShortWallet(addr string) string {
	head, tail := constants.WalletShortHead, constants.WalletShortTail
	if len(addr) <= head+tail+3 {
		return addr
	}
	return addr[:head] + "..." + addr[len(addr)-tail:]
}

// percentLabel renders a percentage with two decimals
func percentLabel(p float64) string {
	return strings.TrimSpace(numberPrinter.Sprintf("%.2f%%", p))
}
