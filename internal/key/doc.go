// Package key defines the fixed grammar of key tokens accepted in macro
// definitions.
//
// A key combination is one or more tokens joined by '+', such as
// "Ctrl+Shift+F" or "F1". Each token must belong to exactly one of five
// vocabularies:
//
//   - Function keys: F1..F12
//   - Single letters: A..Z
//   - Single digits: 0..9
//   - Named special keys: Space, Enter, Tab, Esc, Backspace, Delete,
//     Home, End, PageUp, PageDown, Insert, Up, Down, Left, Right
//   - Modifiers: Ctrl, Alt, Shift, Win
//
// Matching is case-insensitive against the canonical upper-case forms.
// The grammar enforces no composition rules: any '+'-joined list of valid
// tokens is structurally acceptable, including modifier-only chords.
package key
