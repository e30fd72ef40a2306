package engine

import "errors"

// Precondition failures; all of them leave state untouched
var (
	ErrOutOfEnergy         = errors.New("out of energy")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrMoteGone            = errors.New("mote expired or already collected")
	ErrUnknownItem         = errors.New("unknown catalog item")
	ErrWalletRequired      = errors.New("wallet not connected")
	ErrWalletConnected     = errors.New("wallet already connected")
	ErrFlowInFlight        = errors.New("operation already in progress")
	ErrNoPendingPurchase   = errors.New("no pending purchase")
	ErrTaskClaimed         = errors.New("task already claimed in this window")
	ErrClosed              = errors.New("game closed")
)
