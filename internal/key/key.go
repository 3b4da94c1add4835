package key

import "strings"

// Class identifies which vocabulary a key token belongs to.
type Class uint8

const (
	// ClassNone indicates the token is not part of the grammar.
	ClassNone Class = iota

	// ClassFunction is a function key (F1-F12).
	ClassFunction

	// ClassLetter is a single letter (A-Z).
	ClassLetter

	// ClassDigit is a single digit (0-9).
	ClassDigit

	// ClassSpecial is a named special key (Enter, Space, arrows, ...).
	ClassSpecial

	// ClassModifier is a modifier key (Ctrl, Alt, Shift, Win).
	ClassModifier
)

// String returns a human-readable name for the class.
func (c Class) String() string {
	switch c {
	case ClassNone:
		return "None"
	case ClassFunction:
		return "Function"
	case ClassLetter:
		return "Letter"
	case ClassDigit:
		return "Digit"
	case ClassSpecial:
		return "Special"
	case ClassModifier:
		return "Modifier"
	default:
		return "Unknown"
	}
}

// functionKeys maps canonical function-key names to their membership.
// Only F1 through F12 exist; F13 and above are rejected.
var functionKeys = map[string]bool{
	"F1":  true,
	"F2":  true,
	"F3":  true,
	"F4":  true,
	"F5":  true,
	"F6":  true,
	"F7":  true,
	"F8":  true,
	"F9":  true,
	"F10": true,
	"F11": true,
	"F12": true,
}

// specialKeys maps canonical special-key names to their membership.
var specialKeys = map[string]bool{
	"SPACE":     true,
	"ENTER":     true,
	"TAB":       true,
	"ESC":       true,
	"BACKSPACE": true,
	"DELETE":    true,
	"HOME":      true,
	"END":       true,
	"PAGEUP":    true,
	"PAGEDOWN":  true,
	"INSERT":    true,
	"UP":        true,
	"DOWN":      true,
	"LEFT":      true,
	"RIGHT":     true,
}

// modifierKeys maps canonical modifier names to their membership.
var modifierKeys = map[string]bool{
	"CTRL":  true,
	"ALT":   true,
	"SHIFT": true,
	"WIN":   true,
}

// Classify returns the vocabulary a token belongs to, or ClassNone.
// Matching is case-insensitive; surrounding whitespace is ignored.
func Classify(token string) Class {
	canon := Canonical(token)
	if canon == "" {
		return ClassNone
	}

	switch {
	case functionKeys[canon]:
		return ClassFunction
	case specialKeys[canon]:
		return ClassSpecial
	case modifierKeys[canon]:
		return ClassModifier
	}

	if len(canon) == 1 {
		c := canon[0]
		switch {
		case c >= 'A' && c <= 'Z':
			return ClassLetter
		case c >= '0' && c <= '9':
			return ClassDigit
		}
	}

	return ClassNone
}

// IsValid reports whether a token belongs to the key grammar.
func IsValid(token string) bool {
	return Classify(token) != ClassNone
}

// Canonical returns the canonical form of a token: trimmed and upper-cased.
// It does not check grammar membership.
func Canonical(token string) string {
	return strings.ToUpper(strings.TrimSpace(token))
}
