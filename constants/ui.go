package constants

// Layout rows
const (
	// HeaderHeight is the top bar with level, obsidian, wallet and language buttons
	HeaderHeight = 1

	// NavHeight is the bottom tab bar plus its separator
	NavHeight = 2

	// StatusHeight is the one-line status/message row above the nav bar
	StatusHeight = 1

	// MinWidth and MinHeight are the smallest usable terminal size
	MinWidth  = 40
	MinHeight = 16
)

// Widgets
const (
	// BarMaxWidth caps progress bar length
	BarMaxWidth = 40

	// IconMaxWidth caps the tappable icon width in cells
	IconMaxWidth = 24

	// ModalWidth is the payment dialog width
	ModalWidth = 48

	// WalletShortHead and WalletShortTail shorten the connected address on the header
	WalletShortHead = 4
	WalletShortTail = 3
)
