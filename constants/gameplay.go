package constants

import "time"

// Clock
const (
	// TickInterval is the fixed period of the passive income / regen / spawn loop
	TickInterval = 1 * time.Second

	// FrameInterval paces redraws for transient effects between ticks
	FrameInterval = 33 * time.Millisecond
)

// Energy
const (
	// InitialEnergy is both the starting energy and the default cap
	InitialEnergy = 1000

	// EnergyRegenRate is energy restored per elapsed second
	EnergyRegenRate = 1.0

	// TapEnergyCost is energy consumed by one tap
	TapEnergyCost = 1.0
)

// Currency
const (
	// ConversionRate is the number of points minted into one obsidian
	ConversionRate = 10000

	// MilestoneUsers is the community size target shown on the milestone view
	MilestoneUsers = 10_000_000

	// SimulatedUserBase is added to half of lifetime earnings to fake a user count
	SimulatedUserBase = 4_200_000
)

// Motes
const (
	// MoteSpawnChance is the per-tick probability of spawning a mote on the home view
	MoteSpawnChance = 0.1

	// MoteLifespan is how long an uncollected mote stays alive
	MoteLifespan = 8 * time.Second

	// MoteRewardFactor multiplies tap power into the mote reward
	MoteRewardFactor = 5

	// Mote position bounds, percent of the play area
	MoteMinXPercent  = 10.0
	MoteSpanXPercent = 80.0
	MoteMinYPercent  = 20.0
	MoteSpanYPercent = 60.0
)

// Transient feedback
const (
	// ClickEffectDuration is how long a "+N" marker stays at the tap location
	ClickEffectDuration = 800 * time.Millisecond

	// BalancePulseDuration is how long the balance highlights after its integer part changes
	BalancePulseDuration = 200 * time.Millisecond
)

// Simulated wallet and payment
const (
	// WalletConnectDelay is the fake handshake latency
	WalletConnectDelay = 1500 * time.Millisecond

	// PaymentDelay is the fake settlement latency
	PaymentDelay = 2000 * time.Millisecond

	// WalletPrefix and WalletHexDigits shape a generated wallet address
	WalletPrefix    = "UQ"
	WalletHexDigits = 40

	// OwnerWallet is the destination reference displayed on the payment dialog
	OwnerWallet = "UQBM8p...YOUR_REAL_TON_WALLET_ADDRESS_HERE"

	// MaxReceipts bounds the persisted receipt history
	MaxReceipts = 20
)

// Daily tasks
const (
	// DefaultTaskResetSchedule resets daily task claims at local midnight
	DefaultTaskResetSchedule = "0 0 * * *"
)
