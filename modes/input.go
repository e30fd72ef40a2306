// Package modes routes terminal input to game operations.
package modes

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/abcedion/engine"
	"github.com/lixenwraith/abcedion/input"
	"github.com/lixenwraith/abcedion/invite"
	"github.com/lixenwraith/abcedion/locale"
	"github.com/lixenwraith/abcedion/render"
	"github.com/lixenwraith/abcedion/status"
)

// Game is the set of operations input can trigger
type Game interface {
	Tap(x, y int) error
	CollectMote(id uint64) error
	BuyUpgrade(id string) error
	Mint() (int64, error)
	ToggleLanguage()
	SetView(v engine.View)
	ClaimTask(id string) error
	ConnectWallet()
	SelectItem(id string) error
	ConfirmPurchase() error
	CancelPurchase() error
	InviteCode() string
}

// Muter toggles sound output
type Muter interface {
	ToggleMute() bool
	Muted() bool
}

// Options configures an InputHandler; nil fields are optional
type Options struct {
	Keys          *input.KeyTable
	Sound         Muter
	Clipboard     invite.Clipboard
	InviteBaseURL string
	Status        *status.Registry
	Logger        *zap.Logger
	Screen        tcell.Screen // Synced on resize
}

// InputHandler processes user input events
type InputHandler struct {
	game Game
	opts Options

	hits *render.HitMap
	view engine.View
	lang locale.Language

	frame   render.Frame
	overlay bool
	buttons tcell.ButtonMask
}

// NewInputHandler creates an input handler for game
func NewInputHandler(game Game, opts Options) *InputHandler {
	if opts.Keys == nil {
		opts.Keys = input.DefaultKeyTable()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	h := &InputHandler{
		game: game,
		opts: opts,
		lang: locale.Default,
	}
	h.frame.Selected = -1
	if opts.Sound != nil {
		h.frame.Muted = opts.Sound.Muted()
	}
	return h
}

// Update records what the last frame showed so clicks and list selection
// resolve against it
func (h *InputHandler) Update(snap engine.Snapshot, hits *render.HitMap) {
	if snap.View != h.view {
		h.frame.Selected = -1
		h.frame.InviteLink = ""
	}
	h.view = snap.View
	h.lang = locale.Normalize(snap.State.Language)
	h.hits = hits
	if n := len(hits.Rows(h.view)); h.frame.Selected >= n {
		h.frame.Selected = n - 1
	}
}

// Frame returns the UI state for the next draw
func (h *InputHandler) Frame() render.Frame {
	f := h.frame
	f.Overlay = nil
	if h.overlay {
		f.Overlay = h.opts.Status.Lines()
		if f.Overlay == nil {
			f.Overlay = []string{}
		}
	}
	return f
}

// HandleEvent processes a tcell event and returns false if the game should exit
func (h *InputHandler) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKeyEvent(ev)
	case *tcell.EventMouse:
		h.handleMouseEvent(ev)
	case *tcell.EventResize:
		if h.opts.Screen != nil {
			h.opts.Screen.Sync()
		}
	}
	return true
}

// handleKeyEvent resolves the key through the table and dispatches the intent
func (h *InputHandler) handleKeyEvent(ev *tcell.EventKey) bool {
	// Some terminals report Ctrl+C as a rune with the modifier
	if ev.Key() == tcell.KeyRune && ev.Rune() == 'c' && ev.Modifiers()&tcell.ModCtrl != 0 {
		return false
	}
	entry, ok := h.opts.Keys.Lookup(ev)
	if !ok {
		return true
	}
	if entry.Intent == input.IntentQuit {
		return false
	}

	// The payment dialog swallows everything but confirm and cancel
	if h.modalOpen() {
		switch entry.Intent {
		case input.IntentConfirm:
			h.activate(render.Target{Kind: render.TargetConfirm}, 0, 0)
		case input.IntentEscape:
			h.activate(render.Target{Kind: render.TargetCancel}, 0, 0)
		}
		return true
	}

	h.clearMessage()
	switch entry.Intent {
	case input.IntentTap:
		if r, ok := h.hits.Find(render.TargetIcon); ok {
			h.activate(render.Target{Kind: render.TargetIcon}, r.X+r.W/2, r.Y+r.H/2)
		}
	case input.IntentMint:
		h.activate(render.Target{Kind: render.TargetMint}, 0, 0)
	case input.IntentWallet:
		h.activate(render.Target{Kind: render.TargetWallet}, 0, 0)
	case input.IntentLanguage:
		h.activate(render.Target{Kind: render.TargetLanguage}, 0, 0)
	case input.IntentInvite:
		h.activate(render.Target{Kind: render.TargetInvite}, 0, 0)
	case input.IntentView:
		h.setView(entry.View)
	case input.IntentNextView:
		h.setView((h.view + 1) % engine.ViewCount)
	case input.IntentPrevView:
		h.setView((h.view + engine.ViewCount - 1) % engine.ViewCount)
	case input.IntentSelectUp:
		h.moveSelection(-1)
	case input.IntentSelectDown:
		h.moveSelection(1)
	case input.IntentConfirm:
		rows := h.hits.Rows(h.view)
		if sel := h.frame.Selected; sel >= 0 && sel < len(rows) {
			h.activate(rows[sel], 0, 0)
		}
	case input.IntentToggleMute:
		if h.opts.Sound != nil {
			h.frame.Muted = h.opts.Sound.ToggleMute()
		}
	case input.IntentToggleOverlay:
		h.overlay = !h.overlay
	}
	return true
}

// handleMouseEvent acts on the primary button press edge only
func (h *InputHandler) handleMouseEvent(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && h.buttons&tcell.Button1 == 0
	h.buttons = buttons
	if !pressed {
		return
	}
	x, y := ev.Position()
	target, ok := h.hits.At(x, y)
	if !ok || target.Kind == render.TargetBlocked {
		return
	}
	h.clearMessage()
	h.activate(target, x, y)
}

// activate performs the operation behind a target
func (h *InputHandler) activate(t render.Target, x, y int) {
	var err error
	switch t.Kind {
	case render.TargetIcon:
		err = h.game.Tap(x, y)
	case render.TargetMote:
		err = h.game.CollectMote(t.Mote)
	case render.TargetTab:
		h.setView(t.View)
	case render.TargetUpgrade:
		err = h.game.BuyUpgrade(t.ID)
	case render.TargetShopItem:
		err = h.game.SelectItem(t.ID)
	case render.TargetTask:
		err = h.game.ClaimTask(t.ID)
	case render.TargetMint:
		var n int64
		if n, err = h.game.Mint(); err == nil {
			h.setMessage(fmt.Sprintf("+%d ◆ %s", n, locale.Lookup(h.lang).Obsidian), false)
		}
	case render.TargetWallet:
		h.game.ConnectWallet()
	case render.TargetLanguage:
		h.game.ToggleLanguage()
	case render.TargetInvite:
		h.share()
	case render.TargetConfirm:
		err = h.game.ConfirmPurchase()
	case render.TargetCancel:
		err = h.game.CancelPurchase()
	}
	if err == nil {
		return
	}
	h.opts.Logger.Debug("action rejected",
		zap.Int("target", int(t.Kind)),
		zap.String("id", t.ID),
		zap.Error(err),
	)
	// Shop selection without a wallet starts the handshake instead of the dialog
	if errors.Is(err, engine.ErrWalletRequired) {
		text := locale.Lookup(h.lang)
		h.setMessage(text.ConnectWallet+" "+text.Connecting, false)
	}
}

// share copies the invite link, or shows it when the clipboard fails
func (h *InputHandler) share() {
	text := locale.Lookup(h.lang)
	link, err := invite.Share(h.opts.Clipboard, h.opts.InviteBaseURL, h.game.InviteCode())
	h.frame.InviteLink = link
	if err != nil {
		h.opts.Logger.Info("clipboard unavailable", zap.Error(err))
		h.setMessage(text.InviteManual+" "+link, false)
		return
	}
	h.setMessage(text.InviteCopied, false)
}

func (h *InputHandler) setView(v engine.View) {
	if !v.Valid() {
		return
	}
	h.game.SetView(v)
	if v != h.view {
		h.frame.Selected = -1
		h.frame.InviteLink = ""
	}
	h.view = v
}

// moveSelection steps through the selectable rows of the current view
func (h *InputHandler) moveSelection(delta int) {
	n := len(h.hits.Rows(h.view))
	if n == 0 {
		h.frame.Selected = -1
		return
	}
	sel := h.frame.Selected + delta
	if h.frame.Selected < 0 {
		sel = 0
	}
	if sel < 0 {
		sel = 0
	}
	if sel >= n {
		sel = n - 1
	}
	h.frame.Selected = sel
}

func (h *InputHandler) modalOpen() bool {
	_, ok := h.hits.Find(render.TargetBlocked)
	return ok
}

func (h *InputHandler) setMessage(msg string, isErr bool) {
	h.frame.Message = msg
	h.frame.Error = isErr
}

func (h *InputHandler) clearMessage() {
	h.setMessage("", false)
}
