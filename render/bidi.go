package render

import (
	"unicode"
)

// isRTLRune reports whether r has strong right-to-left direction
func isRTLRune(r rune) bool {
	return unicode.Is(unicode.Arabic, r) || unicode.Is(unicode.Hebrew, r)
}

// isLTRRune reports whether r starts or continues a left-to-right run
func isLTRRune(r rune) bool {
	return (unicode.IsLetter(r) || unicode.IsDigit(r)) && !isRTLRune(r)
}

var mirrored = map[rune]rune{
	'(': ')', ')': '(',
	'[': ']', ']': '[',
	'{': '}', '}': '{',
	'<': '>', '>': '<',
	'«': '»', '»': '«',
}

// Visual converts a logical string into the cell order a terminal needs
// In rtl mode right-to-left runs are reversed and run order is flipped, while
// embedded left-to-right runs such as numbers and Latin words keep their order
func Visual(s string, rtl bool) string {
	if !rtl || s == "" {
		return s
	}

	runes := []rune(s)
	type run struct {
		text []rune
		ltr  bool
	}
	var runs []run

	for i := 0; i < len(runes); {
		if isLTRRune(runes[i]) {
			// LTR run absorbs neutrals only when another LTR rune follows them
			j := i + 1
			end := j
			for j < len(runes) && !isRTLRune(runes[j]) {
				if isLTRRune(runes[j]) {
					end = j + 1
				}
				j++
			}
			runs = append(runs, run{text: runes[i:end], ltr: true})
			i = end
			continue
		}
		j := i + 1
		for j < len(runes) && !isLTRRune(runes[j]) {
			j++
		}
		runs = append(runs, run{text: runes[i:j]})
		i = j
	}

	out := make([]rune, 0, len(runes))
	for k := len(runs) - 1; k >= 0; k-- {
		r := runs[k]
		if r.ltr {
			out = append(out, r.text...)
			continue
		}
		for i := len(r.text) - 1; i >= 0; i-- {
			c := r.text[i]
			if m, ok := mirrored[c]; ok {
				c = m
			}
			out = append(out, c)
		}
	}
	return string(out)
}
