package readme

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/swiftscout/swiftscout/pkg/observability"
)

// Extractor turns raw markdown into usage examples, installation snippets,
// and keywords. It holds no mutable state and is safe for concurrent use
// without synchronization.
type Extractor struct {
	cfg    Config
	logger *log.Logger
}

// New creates an Extractor with the given word lists.
// A nil logger selects log.Default().
func New(cfg Config, logger *log.Logger) (*Extractor, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Extractor{cfg: cfg, logger: logger}, nil
}

// Examples extracts up to 10 titled code examples from doc, in document
// order. It never fails: malformed input and internal faults both degrade
// to an empty result.
func (e *Extractor) Examples(doc string) (examples []UsageExample) {
	defer e.guard("examples", time.Now(), func() int { return len(examples) }, func() { examples = nil })()
	examples = e.extractExamples(doc)
	return examples
}

// Installation extracts installation snippets for the known packaging
// tools. A document without any recognizable signature yields the zero
// value, never an error.
func (e *Extractor) Installation(doc string) (info InstallationInfo) {
	count := func() int {
		if info.IsEmpty() {
			return 0
		}
		return 1
	}
	defer e.guard("installation", time.Now(), count, func() { info = InstallationInfo{} })()
	info = e.extractInstallation(doc)
	return info
}

// Keywords extracts up to 10 topical keywords from doc.
// Empty input yields an empty result, never an error.
func (e *Extractor) Keywords(doc string) (keywords []string) {
	defer e.guard("keywords", time.Now(), func() int { return len(keywords) }, func() { keywords = nil })()
	keywords = e.extractKeywords(doc)
	return keywords
}

// guard converts any internal fault into an empty result plus a logged
// diagnostic, and emits extraction hooks. Extraction must never propagate
// a panic to its caller.
func (e *Extractor) guard(op string, start time.Time, count func() int, reset func()) func() {
	return func() {
		ctx := context.Background()
		if r := recover(); r != nil {
			reset()
			e.logger.Error("readme: extraction fault, returning empty result", "operation", op, "fault", r)
			observability.Extract().OnExtractFault(ctx, op, r)
		}
		observability.Extract().OnExtract(ctx, op, count(), time.Since(start))
	}
}

// normalizeLanguage lowercases a fence tag and maps it through the synonym
// table. Unrecognized tags pass through; an absent tag becomes "text".
func (e *Extractor) normalizeLanguage(tag string) string {
	tag = toLowerTrim(tag)
	if tag == "" {
		return "text"
	}
	if canonical, ok := e.cfg.LanguageSynonyms[tag]; ok {
		return canonical
	}
	return tag
}
