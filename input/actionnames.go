package input

import "github.com/lixenwraith/abcedion/engine"

// actionRegistry maps canonical action names to KeyEntry structs
// Used by the keymap loader to resolve TOML action strings to bindings
var actionRegistry = map[string]KeyEntry{
	// Unbind sentinel
	"none": {},

	"quit":           {Intent: IntentQuit},
	"escape":         {Intent: IntentEscape},
	"confirm":        {Intent: IntentConfirm},
	"toggle_mute":    {Intent: IntentToggleMute},
	"toggle_overlay": {Intent: IntentToggleOverlay},

	"tap":      {Intent: IntentTap},
	"mint":     {Intent: IntentMint},
	"wallet":   {Intent: IntentWallet},
	"language": {Intent: IntentLanguage},
	"invite":   {Intent: IntentInvite},

	"next_view":   {Intent: IntentNextView},
	"prev_view":   {Intent: IntentPrevView},
	"select_up":   {Intent: IntentSelectUp},
	"select_down": {Intent: IntentSelectDown},

	"view_home":     {Intent: IntentView, View: engine.ViewHome},
	"view_upgrades": {Intent: IntentView, View: engine.ViewUpgrades},
	"view_shop":     {Intent: IntentView, View: engine.ViewShop},
	"view_tasks":    {Intent: IntentView, View: engine.ViewTasks},
	"view_eridrop":  {Intent: IntentView, View: engine.ViewEriDrop},
	"view_invite":   {Intent: IntentView, View: engine.ViewInvite},
}

// ActionEntry returns the binding for an action name
func ActionEntry(name string) (KeyEntry, bool) {
	e, ok := actionRegistry[name]
	return e, ok
}
