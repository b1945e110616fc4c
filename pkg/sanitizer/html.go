// Package sanitizer cleans user supplied source values before they are slugified.
package sanitizer

import (
	"html"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	initOnce     sync.Once
)

func initPolicy() {
	initOnce.Do(func() {
		// StrictPolicy strips ALL HTML and drops script/style bodies.
		strictPolicy = bluemonday.StrictPolicy()
	})
}

// StripHTML removes every tag from s and returns the plain text.
// Entities escaped by the policy are decoded again, so "&" stays "&"
// and a title like "Fish &amp; Chips" slugifies as "fish-chips".
func StripHTML(s string) string {
	if s == "" {
		return ""
	}
	initPolicy()
	return html.UnescapeString(strictPolicy.Sanitize(s))
}
