package engine

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/abcedion/catalog"
	"github.com/lixenwraith/abcedion/constants"
	"github.com/lixenwraith/abcedion/status"
)

// Persister stores a full copy of the state after each mutation
type Persister interface {
	Save(GameState) error
}

// Options configures a Game; zero fields get working defaults
type Options struct {
	Time           TimeProvider
	Rand           *rand.Rand
	Persister      Persister
	Logger         *zap.Logger
	Status         *status.Registry
	ResetSchedule  ResetSchedule
	ConversionRate float64

	// OnCue is called outside the state lock for every cue produced by an action
	OnCue func(Cue)

	// NewID generates receipt ids and invite codes
	NewID func() string
}

// Game owns the single GameState and all transient entities
// Every operation applies a reducer to the latest state under mu and replaces it whole
type Game struct {
	mu    sync.Mutex
	state GameState

	motes   []Mote
	effects []ClickEffect
	nextID  uint64
	view    View

	connecting bool
	purchase   PurchasePhase
	pending    *catalog.ShopItem

	pulseUntil time.Time

	time      TimeProvider
	rng       *rand.Rand
	persister Persister
	log       *zap.Logger
	stats     *status.Registry
	sched     ResetSchedule
	rate      float64
	onCue     func(Cue)
	newID     func() string

	closed bool
	done   chan struct{}
	flows  sync.WaitGroup
}

// New creates the state owner from a loaded or default state
func New(initial GameState, opts Options) *Game {
	if opts.Time == nil {
		opts.Time = NewMonotonicTimeProvider()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(opts.Time.Now().UnixNano()))
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.ResetSchedule == nil {
		sched, err := ParseResetSchedule(constants.DefaultTaskResetSchedule)
		if err != nil {
			panic(fmt.Sprintf("default reset schedule: %v", err))
		}
		opts.ResetSchedule = sched
	}
	if opts.ConversionRate <= 0 {
		opts.ConversionRate = constants.ConversionRate
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}

	now := opts.Time.Now()
	return &Game{
		state:     initial.Normalize(now).Clone(),
		view:      ViewHome,
		time:      opts.Time,
		rng:       opts.Rand,
		persister: opts.Persister,
		log:       opts.Logger.Named("engine"),
		stats:     opts.Status,
		sched:     opts.ResetSchedule,
		rate:      opts.ConversionRate,
		onCue:     opts.OnCue,
		newID:     opts.NewID,
		done:      make(chan struct{}),
	}
}

// commit replaces the state and persists it; caller holds mu
func (g *Game) commit(next GameState, now time.Time) {
	if math.Floor(next.Balance) != math.Floor(g.state.Balance) {
		g.pulseUntil = now.Add(constants.BalancePulseDuration)
	}
	g.state = next

	if g.persister == nil {
		return
	}
	if err := g.persister.Save(next.Clone()); err != nil {
		g.stats.Inc(status.SaveFailures)
		g.log.Warn("save failed", zap.Error(err))
		return
	}
	g.stats.Inc(status.Saves)
}

func (g *Game) emit(c Cue) {
	if c == CueNone || g.onCue == nil {
		return
	}
	g.onCue(c)
}

func (g *Game) allocID() uint64 {
	g.nextID++
	return g.nextID
}

// Tick accrues passive income and energy, spawns and expires motes
func (g *Game) Tick() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return
	}

	now := g.time.Now()
	elapsed := now.Sub(g.state.LastUpdate).Seconds()
	if g.stats != nil {
		g.stats.Gauges.Get(status.LastElapsed).Set(elapsed)
	}
	g.stats.Inc(status.Ticks)

	g.commit(Advance(g.state, now), now)

	if g.view == ViewHome && g.rng.Float64() < constants.MoteSpawnChance {
		m := newMote(g.allocID(), g.rng, g.state.TapPower, now)
		g.motes = append(g.motes, m)
		g.stats.Inc(status.MotesSpawned)
		g.log.Debug("mote spawned", zap.Uint64("id", m.ID), zap.Float64("value", m.Value))
	}

	var expired int
	g.motes, expired = pruneMotes(g.motes, now)
	for i := 0; i < expired; i++ {
		g.stats.Inc(status.MotesExpired)
	}
}

// Tap spends one energy for TapPower points and leaves a marker at x,y
func (g *Game) Tap(x, y int) error {
	cue, err := g.tap(x, y)
	g.emit(cue)
	return err
}

func (g *Game) tap(x, y int) (Cue, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return CueNone, ErrClosed
	}

	now := g.time.Now()
	g.effects = pruneEffects(g.effects, now)

	next, err := Tap(g.state)
	if err != nil {
		g.stats.Inc(status.TapsRejected)
		return CueError, err
	}
	g.commit(next, now)
	g.effects = append(g.effects, ClickEffect{
		ID:        g.allocID(),
		X:         x,
		Y:         y,
		Value:     next.TapPower,
		CreatedAt: now,
	})
	g.stats.Inc(status.Taps)
	return CueTap, nil
}

// CollectMote credits a live mote and removes it
// An expired or already collected id returns ErrMoteGone without a cue
func (g *Game) CollectMote(id uint64) error {
	cue, err := g.collectMote(id)
	g.emit(cue)
	return err
}

func (g *Game) collectMote(id uint64) (Cue, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return CueNone, ErrClosed
	}

	now := g.time.Now()
	var expired int
	g.motes, expired = pruneMotes(g.motes, now)
	for i := 0; i < expired; i++ {
		g.stats.Inc(status.MotesExpired)
	}

	for i, m := range g.motes {
		if m.ID != id {
			continue
		}
		g.motes = append(g.motes[:i], g.motes[i+1:]...)
		g.commit(Credit(g.state, m.Value), now)
		g.stats.Inc(status.MotesCollected)
		return CueCollect, nil
	}
	return CueNone, ErrMoteGone
}

// BuyUpgrade purchases one level of the named upgrade
func (g *Game) BuyUpgrade(id string) error {
	cue, err := g.buyUpgrade(id)
	g.emit(cue)
	return err
}

func (g *Game) buyUpgrade(id string) (Cue, error) {
	u, ok := catalog.UpgradeByID(id)
	if !ok {
		return CueError, ErrUnknownItem
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return CueNone, ErrClosed
	}

	next, err := PurchaseUpgrade(g.state, u)
	if err != nil {
		return CueError, err
	}
	g.commit(next, g.time.Now())
	g.stats.Inc(status.Upgrades)
	g.log.Info("upgrade purchased", zap.String("upgrade", u.ID), zap.Int("count", next.UpgradeCounts[u.ID]))
	return CueBuy, nil
}

// Mint converts whole units of balance into obsidian and returns the units minted
func (g *Game) Mint() (int64, error) {
	units, cue, err := g.mint()
	g.emit(cue)
	return units, err
}

func (g *Game) mint() (int64, Cue, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return 0, CueNone, ErrClosed
	}

	next, units, err := Mint(g.state, g.rate)
	if err != nil {
		return 0, CueError, err
	}
	g.commit(next, g.time.Now())
	g.stats.Inc(status.Mints)
	g.log.Info("obsidian minted", zap.Int64("units", units), zap.Int64("obsidian", next.ObsidianBalance))
	return units, CueMint, nil
}

// ToggleLanguage switches between the two supported languages
func (g *Game) ToggleLanguage() {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return
	}
	g.commit(ToggleLanguage(g.state), g.time.Now())
	g.mu.Unlock()
	g.emit(CueTap)
}

// SetView changes the active tab; only the home tab spawns motes
func (g *Game) SetView(v View) {
	if !v.Valid() {
		return
	}
	g.mu.Lock()
	changed := g.view != v
	g.view = v
	g.mu.Unlock()
	if changed {
		g.emit(CueTap)
	}
}

// ClaimTask credits a daily task reward once per reset window
func (g *Game) ClaimTask(id string) error {
	cue, err := g.claimTask(id)
	g.emit(cue)
	return err
}

func (g *Game) claimTask(id string) (Cue, error) {
	task, ok := catalog.TaskByID(id)
	if !ok {
		return CueError, ErrUnknownItem
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return CueNone, ErrClosed
	}

	now := g.time.Now()
	next, err := ClaimTask(g.state, task, now, g.sched)
	if err != nil {
		return CueError, err
	}
	g.commit(next, now)
	g.stats.Inc(status.TaskClaims)
	return CueCollect, nil
}

// SetCustomIcon stores the reference to a generated logo
func (g *Game) SetCustomIcon(ref string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return
	}
	g.commit(SetCustomIcon(g.state, ref), g.time.Now())
}

// InviteCode returns the persistent invite code, creating it on first use
func (g *Game) InviteCode() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state.InviteCode == "" && !g.closed {
		code := strings.ReplaceAll(g.newID(), "-", "")
		g.commit(EnsureInviteCode(g.state, code), g.time.Now())
	}
	return g.state.InviteCode
}

// Close cancels in-flight flows and waits for their goroutines
// Pending simulated payments are dropped without credit
func (g *Game) Close() {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return
	}
	g.closed = true
	g.connecting = false
	g.purchase = PhaseIdle
	g.pending = nil
	close(g.done)
	g.mu.Unlock()

	g.flows.Wait()
}

// WaitIdle blocks until no wallet or payment flow goroutine is running
func (g *Game) WaitIdle() {
	g.flows.Wait()
}
