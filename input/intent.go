// Package input resolves key presses to intents through a rebindable key table.
package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit          // q, Ctrl+C
	IntentEscape        // Esc: cancels the payment dialog
	IntentConfirm       // Enter: confirms the dialog or activates the selected row
	IntentToggleMute    // s
	IntentToggleOverlay // F12

	// Game actions
	IntentTap      // Space: taps the icon centre
	IntentMint     // m
	IntentWallet   // w
	IntentLanguage // l
	IntentInvite   // i

	// Navigation
	IntentView     // 1-6, View carries the target
	IntentNextView // Tab
	IntentPrevView // Shift+Tab
	IntentSelectUp
	IntentSelectDown
)

var intentNames = map[IntentType]string{
	IntentNone:          "none",
	IntentQuit:          "quit",
	IntentEscape:        "escape",
	IntentConfirm:       "confirm",
	IntentToggleMute:    "toggle_mute",
	IntentToggleOverlay: "toggle_overlay",
	IntentTap:           "tap",
	IntentMint:          "mint",
	IntentWallet:        "wallet",
	IntentLanguage:      "language",
	IntentInvite:        "invite",
	IntentView:          "view",
	IntentNextView:      "next_view",
	IntentPrevView:      "prev_view",
	IntentSelectUp:      "select_up",
	IntentSelectDown:    "select_down",
}

func (t IntentType) String() string {
	if s, ok := intentNames[t]; ok {
		return s
	}
	return "unknown"
}
