// Package locale holds the two supported translation tables and the layout
// direction each one implies.
package locale

// Language is a supported locale tag
type Language string

const (
	Arabic  Language = "ar"
	English Language = "en"
)

// Default is the locale used when none is stored
const Default = Arabic

// Direction is the horizontal reading direction of a locale
type Direction int

const (
	LeftToRight Direction = iota
	RightToLeft
)

// Valid reports whether l is one of the supported tags
func (l Language) Valid() bool {
	return l == Arabic || l == English
}

// Toggle returns the other supported locale; unknown tags fall back to the default's partner
func (l Language) Toggle() Language {
	if l == Arabic {
		return English
	}
	if l == English {
		return Arabic
	}
	return Default.Toggle()
}

// Direction returns the layout direction for the locale
func (l Language) Direction() Direction {
	if l == Arabic {
		return RightToLeft
	}
	return LeftToRight
}

// RTL is shorthand for Direction() == RightToLeft
func (l Language) RTL() bool {
	return l.Direction() == RightToLeft
}

// Normalize maps an empty or unknown tag to Default
func Normalize(l Language) Language {
	if l.Valid() {
		return l
	}
	return Default
}

// Text is a string available in every supported locale
type Text struct {
	AR string
	EN string
}

// In returns the text for the locale, English for unknown tags
func (t Text) In(l Language) string {
	if l == Arabic {
		return t.AR
	}
	return t.EN
}

// Lookup returns the string table for a locale
func Lookup(l Language) *Strings {
	if l == Arabic {
		return &arabic
	}
	return &english
}
