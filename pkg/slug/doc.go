// Package slug turns arbitrary text into URL-safe slugs.
//
// Letters with diacritics are folded to ASCII, every run of other characters
// becomes a single separator and the result is lower-cased:
//
//	slug.Make("Crème brûlée, 2024!") // "creme-brulee-2024"
//	slug.Make("Zażółć gęślą jaźń")   // "zazolc-gesla-jazn"
//
// Combining marks are removed through golang.org/x/text normalization (NFD,
// drop non-spacing marks, NFC). Letters without a decomposition (ß, æ, œ, ø,
// ł, đ, ı) use a fixed mapping. Other scripts are treated as separators.
//
// # Options
//
//	slug.Make("Product Name", slug.Separator("_"))     // "product_name"
//	slug.Make("Product Name", slug.Lowercase(false))   // "Product-Name"
//	slug.Make("Price: $100", slug.StripChars("$:"))     // "price-100"
//	slug.Make("Fish & Chips", slug.CustomReplace(map[string]string{"&": "and"}))
//	slug.Make("Very long title", slug.MaxLength(9))     // "very-long"
//
// # Truncation
//
// Truncate is a hard rune cutoff that ignores word boundaries. Slug columns
// with a fixed width use it on already slugged text:
//
//	slug.Truncate("testing-123", 5) // "testi"
package slug
