package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ukrainianLatin follows the official Ukrainian romanization table (2010).
var ukrainianLatin = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "h", 'ґ': "g", 'д': "d", 'е': "e", 'є': "ie",
	'ж': "zh", 'з': "z", 'и': "y", 'і': "i", 'ї': "i", 'й': "i", 'к': "k", 'л': "l",
	'м': "m", 'н': "n", 'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t", 'у': "u",
	'ф': "f", 'х': "kh", 'ц': "ts", 'ч': "ch", 'ш': "sh", 'щ': "shch", 'ь': "", 'ю': "iu",
	'я': "ia", 'ё': "io", 'ы': "y", 'э': "e", 'ъ': "", '\'': "", '’': "", 'ʼ': "",
}

// foldAccents strips combining marks after canonical decomposition.
func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Slugify converts a display name into an ASCII URL slug.
// Cyrillic is transliterated, accents are dropped and every run of
// other characters collapses into a single hyphen.
func Slugify(s string) string {
	// Transliterate before folding: NFD would split й and ї into base + mark.
	lowered := cases.Lower(language.Ukrainian).String(s)
	var translit strings.Builder
	for _, r := range lowered {
		if latin, ok := ukrainianLatin[r]; ok {
			translit.WriteString(latin)
			continue
		}
		translit.WriteRune(r)
	}

	var b strings.Builder
	pendingDash := false
	for _, r := range foldAccents(translit.String()) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
		case r == '_' || r == '-' || unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsSymbol(r):
			pendingDash = true
		}
	}
	return b.String()
}

// IsValidSlug reports whether s is already in canonical slug form
func IsValidSlug(s string) bool {
	if s == "" || len(s) > 200 {
		return false
	}
	return Slugify(s) == s
}
