package slug

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Letters that carry no combining mark under NFD and need an explicit mapping.
var foldTable = map[rune]string{
	'ß': "s",
	'æ': "a", 'Æ': "A",
	'œ': "o", 'Œ': "O",
	'ø': "o", 'Ø': "O",
	'ł': "l", 'Ł': "L",
	'đ': "d", 'Đ': "D",
	'ı': "i",
}

// Make converts s into a URL-safe slug: diacritics are folded to ASCII, every
// run of other characters becomes one separator, and MaxLength is applied
// without leaving a dangling separator.
func Make(s string, opts ...Option) string {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o.truncate(normalize(s, o))
}

// Truncate cuts s to at most n runes. It does not look at word boundaries.
// Zero or negative n returns s unchanged.
func Truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

func normalize(s string, o *options) string {
	if s == "" {
		return ""
	}

	s = applyReplacements(s, o.replacements)
	if o.stripChars != "" {
		s = strings.Map(func(r rune) rune {
			if strings.ContainsRune(o.stripChars, r) {
				return -1
			}
			return r
		}, s)
	}
	s = foldDiacritics(s)
	if o.lowercase {
		s = strings.ToLower(s)
	}

	var b strings.Builder
	b.Grow(len(s))
	pending := false
	for _, r := range s {
		if !isASCIIAlnum(r) {
			pending = true
			continue
		}
		if pending && b.Len() > 0 {
			b.WriteString(o.separator)
		}
		pending = false
		b.WriteRune(r)
	}
	return b.String()
}

func applyReplacements(s string, replacements map[string]string) string {
	if len(replacements) == 0 {
		return s
	}
	// Longest keys first so overlapping patterns resolve deterministically.
	keys := make([]string, 0, len(replacements))
	for k := range replacements {
		if k != "" {
			keys = append(keys, k)
		}
	}
	slices.SortFunc(keys, func(a, b string) int {
		if len(a) != len(b) {
			return len(b) - len(a)
		}
		return strings.Compare(a, b)
	})
	pairs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		pairs = append(pairs, k, replacements[k])
	}
	return strings.NewReplacer(pairs...).Replace(s)
}

func foldDiacritics(s string) string {
	ascii := true
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			ascii = false
			break
		}
	}
	if ascii {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if rep, ok := foldTable[r]; ok {
			b.WriteString(rep)
			continue
		}
		b.WriteRune(r)
	}

	// transform.Chain keeps internal state, so it is built per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, b.String())
	if err != nil {
		return b.String()
	}
	return out
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// truncate applies maxLength and drops a dangling separator.
func (o *options) truncate(s string) string {
	if o.maxLength <= 0 {
		return s
	}
	return o.trimSeparator(Truncate(s, o.maxLength))
}

func (o *options) trimSeparator(s string) string {
	if o.separator == "" {
		return s
	}
	return strings.TrimRight(s, o.separator)
}
