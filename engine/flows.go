package engine

import (
	"strings"

	"go.uber.org/zap"

	"github.com/lixenwraith/abcedion/catalog"
	"github.com/lixenwraith/abcedion/constants"
	"github.com/lixenwraith/abcedion/core"
	"github.com/lixenwraith/abcedion/status"
)

// PurchasePhase is the state of the simulated payment dialog
type PurchasePhase int

const (
	PhaseIdle PurchasePhase = iota
	PhasePending
	PhaseProcessing
)

func (p PurchasePhase) String() string {
	switch p {
	case PhasePending:
		return "pending"
	case PhaseProcessing:
		return "processing"
	default:
		return "idle"
	}
}

const hexDigits = "0123456789abcdef"

// walletAddress generates a simulated address; caller holds mu
func (g *Game) walletAddress() string {
	var b strings.Builder
	b.Grow(len(constants.WalletPrefix) + constants.WalletHexDigits)
	b.WriteString(constants.WalletPrefix)
	for i := 0; i < constants.WalletHexDigits; i++ {
		b.WriteByte(hexDigits[g.rng.Intn(len(hexDigits))])
	}
	return b.String()
}

// ConnectWallet starts the simulated wallet handshake
// No-op when a wallet is stored or a handshake is already running
func (g *Game) ConnectWallet() {
	g.mu.Lock()
	started := g.startConnectLocked()
	g.mu.Unlock()
	if started {
		g.emit(CueTap)
	}
}

// startConnectLocked arms the connect timer before the goroutine starts so
// the delay is measured from the request; caller holds mu
func (g *Game) startConnectLocked() bool {
	if g.closed || g.connecting || g.state.HasWallet() {
		return false
	}
	g.connecting = true
	timer := g.time.After(constants.WalletConnectDelay)

	g.flows.Add(1)
	core.Go(func() {
		defer g.flows.Done()
		select {
		case <-timer:
			g.finishConnect()
		case <-g.done:
		}
	})
	return true
}

func (g *Game) finishConnect() {
	g.mu.Lock()
	if g.closed || !g.connecting {
		g.mu.Unlock()
		return
	}
	g.connecting = false

	next, err := ConnectWallet(g.state, g.walletAddress())
	if err != nil {
		g.mu.Unlock()
		return
	}
	g.commit(next, g.time.Now())
	g.log.Info("wallet connected", zap.String("address", next.WalletAddress))
	g.mu.Unlock()

	g.emit(CueMint)
}

// SelectItem opens the payment dialog for a shop item
// Without a wallet it starts the handshake instead and returns ErrWalletRequired
func (g *Game) SelectItem(id string) error {
	item, ok := catalog.ShopItemByID(id)
	if !ok {
		g.emit(CueError)
		return ErrUnknownItem
	}

	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return ErrClosed
	}
	if g.purchase == PhaseProcessing {
		g.mu.Unlock()
		g.emit(CueError)
		return ErrFlowInFlight
	}
	if !g.state.HasWallet() {
		g.startConnectLocked()
		g.mu.Unlock()
		g.emit(CueTap)
		return ErrWalletRequired
	}
	g.pending = &item
	g.purchase = PhasePending
	g.mu.Unlock()

	g.emit(CueTap)
	return nil
}

// ConfirmPurchase starts the simulated settlement of the selected item
func (g *Game) ConfirmPurchase() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return ErrClosed
	}
	switch g.purchase {
	case PhaseProcessing:
		return ErrFlowInFlight
	case PhaseIdle:
		return ErrNoPendingPurchase
	}

	g.purchase = PhaseProcessing
	item := *g.pending
	timer := g.time.After(constants.PaymentDelay)

	g.flows.Add(1)
	core.Go(func() {
		defer g.flows.Done()
		select {
		case <-timer:
			g.settle(item)
		case <-g.done:
		}
	})
	return nil
}

func (g *Game) settle(item catalog.ShopItem) {
	g.mu.Lock()
	if g.closed || g.purchase != PhaseProcessing {
		g.mu.Unlock()
		return
	}

	now := g.time.Now()
	receipt := Receipt{
		ID:         g.newID(),
		ItemID:     item.ID,
		PriceTon:   item.PriceTon,
		Reward:     item.Reward,
		ResolvedAt: now,
	}
	g.commit(SettlePurchase(g.state, item, receipt), now)
	g.purchase = PhaseIdle
	g.pending = nil
	g.stats.Inc(status.Payments)
	g.log.Info("payment settled", zap.String("item", item.ID), zap.String("receipt", receipt.ID), zap.Float64("reward", item.Reward))
	g.mu.Unlock()

	g.emit(CueMint)
}

// CancelPurchase closes the dialog without touching state
// Ignored while a payment is processing
func (g *Game) CancelPurchase() error {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return ErrClosed
	}
	if g.purchase == PhaseProcessing {
		g.mu.Unlock()
		return ErrFlowInFlight
	}
	wasPending := g.purchase == PhasePending
	g.purchase = PhaseIdle
	g.pending = nil
	g.mu.Unlock()

	if wasPending {
		g.emit(CueTap)
	}
	return nil
}
