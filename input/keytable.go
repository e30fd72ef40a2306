package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/abcedion/engine"
)

// KeyEntry is the intent bound to one key
type KeyEntry struct {
	Intent IntentType
	View   engine.View // IntentView only
}

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, function keys)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable rune bindings
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC:   {Intent: IntentQuit},
			tcell.KeyEscape:  {Intent: IntentEscape},
			tcell.KeyEnter:   {Intent: IntentConfirm},
			tcell.KeyF12:     {Intent: IntentToggleOverlay},
			tcell.KeyTab:     {Intent: IntentNextView},
			tcell.KeyBacktab: {Intent: IntentPrevView},
			tcell.KeyUp:      {Intent: IntentSelectUp},
			tcell.KeyDown:    {Intent: IntentSelectDown},
		},
		Runes: map[rune]KeyEntry{
			'q': {Intent: IntentQuit},
			' ': {Intent: IntentTap},
			'm': {Intent: IntentMint},
			'w': {Intent: IntentWallet},
			'l': {Intent: IntentLanguage},
			'i': {Intent: IntentInvite},
			's': {Intent: IntentToggleMute},
			'k': {Intent: IntentSelectUp},
			'j': {Intent: IntentSelectDown},
			'1': {Intent: IntentView, View: engine.ViewHome},
			'2': {Intent: IntentView, View: engine.ViewUpgrades},
			'3': {Intent: IntentView, View: engine.ViewShop},
			'4': {Intent: IntentView, View: engine.ViewTasks},
			'5': {Intent: IntentView, View: engine.ViewEriDrop},
			'6': {Intent: IntentView, View: engine.ViewInvite},
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	out := &KeyTable{
		SpecialKeys: make(map[tcell.Key]KeyEntry, len(kt.SpecialKeys)),
		Runes:       make(map[rune]KeyEntry, len(kt.Runes)),
	}
	for k, v := range kt.SpecialKeys {
		out.SpecialKeys[k] = v
	}
	for k, v := range kt.Runes {
		out.Runes[k] = v
	}
	return out
}

// Lookup resolves a key event; unbound keys report false
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (KeyEntry, bool) {
	if ev.Key() == tcell.KeyRune {
		e, ok := kt.Runes[ev.Rune()]
		return e, ok && e.Intent != IntentNone
	}
	e, ok := kt.SpecialKeys[ev.Key()]
	return e, ok && e.Intent != IntentNone
}
