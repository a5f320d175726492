/*
Package alphabet declares the finite character set over which the edit
generator operates and the per-character code used to index trie child
bitmaps.

Only one locale is defined today (EnUS, the 26 lowercase Latin letters),
but the package is shaped so that a second locale could be added without
touching any caller: every consumer goes through Alphabet, never the
underlying array directly.
*/
package alphabet

// Locale names a supported character set. Only EnUS is defined; the type
// exists so config.Config can carry a locale tag even though a second one
// isn't implemented yet.
type Locale string

// EnUS is the only locale this package currently implements.
const EnUS Locale = "en-us"

// enUSLetters is the ordered rune sequence for the en-us locale, 'a'
// through 'z'.
var enUSLetters = [26]rune{
	'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm',
	'n', 'o', 'p', 'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z',
}

// Alphabet is an immutable ordered character set plus the locale it was
// built for.
type Alphabet struct {
	locale  Locale
	letters []rune
}

// For returns the Alphabet for the given locale. Unknown locales fall
// back to EnUS, the only one this package defines.
func For(locale Locale) Alphabet {
	switch locale {
	case EnUS:
		return Alphabet{locale: EnUS, letters: enUSLetters[:]}
	default:
		return Alphabet{locale: EnUS, letters: enUSLetters[:]}
	}
}

// Locale reports the locale this Alphabet was built for.
func (a Alphabet) Locale() Locale {
	return a.locale
}

// Letters returns the ordered rune sequence of this alphabet. Callers
// must not mutate the returned slice.
func (a Alphabet) Letters() []rune {
	return a.letters
}

// Len returns the number of characters in the alphabet.
func (a Alphabet) Len() int {
	return len(a.letters)
}

// Code maps a rune in the alphabet to its bitmap index, 0-25 for en-us.
// Behavior is undefined for runes outside the alphabet; callers must only
// pass runes obtained from Letters or already known to be lowercase
// Latin letters.
func Code(r rune) uint32 {
	return uint32(r - 'a')
}

// In reports whether r is a member of this alphabet.
func (a Alphabet) In(r rune) bool {
	return r >= 'a' && r <= 'z'
}
