// Package readme extracts structured usage information from raw markdown
// README documents.
//
// The [Extractor] offers three independent, side-effect-free operations:
//
//   - [Extractor.Examples]: titled, language-tagged code examples pulled
//     from usage-indicating sections (with a whole-document fallback)
//   - [Extractor.Installation]: installation snippets for Swift Package
//     Manager, Carthage, and CocoaPods
//   - [Extractor.Keywords]: topical keywords from a fixed vocabulary plus
//     short heading texts
//
// All three degrade to empty results on malformed or adversarial input;
// none of them ever panics outward or returns an error. Markdown structure
// (headings, fenced code blocks) is recognized by an explicit line scanner
// rather than document-spanning regular expressions, so runtime stays
// linear in the input size by construction.
//
// The usage-heading phrases, keyword vocabulary, and fence-language
// synonyms are configuration data, embedded as a TOML word list and
// replaceable via [LoadConfig].
package readme
