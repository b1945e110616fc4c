package slug

const defaultSeparator = "-"

// Option configures slug generation.
type Option func(*options)

type options struct {
	replacements map[string]string
	separator    string
	stripChars   string
	maxLength    int
	lowercase    bool
}

func defaultOptions() *options {
	return &options{
		separator: defaultSeparator,
		lowercase: true,
	}
}

// MaxLength limits the slug length in runes. Zero or negative disables the limit.
func MaxLength(n int) Option {
	return func(o *options) {
		o.maxLength = n
	}
}

// Separator sets the string placed between words. Default: "-".
func Separator(sep string) Option {
	return func(o *options) {
		o.separator = sep
	}
}

// Lowercase controls case conversion. Default: true.
func Lowercase(enabled bool) Option {
	return func(o *options) {
		o.lowercase = enabled
	}
}

// StripChars removes every listed character before processing.
func StripChars(chars string) Option {
	return func(o *options) {
		o.stripChars = chars
	}
}

// CustomReplace applies string replacements before slugification.
func CustomReplace(replacements map[string]string) Option {
	return func(o *options) {
		o.replacements = replacements
	}
}
