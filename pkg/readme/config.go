package readme

import (
	_ "embed"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/swiftscout/swiftscout/pkg/errors"
)

//go:embed wordlist.toml
var embeddedWordlist string

// Config holds the word lists the extraction algorithms consume.
// The zero value is not usable; start from [DefaultConfig] or [LoadConfig].
type Config struct {
	// UsageHeadings are the case-insensitive phrases that mark a heading
	// as opening a usage section.
	UsageHeadings []string `toml:"usage_headings"`

	// Vocabulary is the fixed term list scanned for keyword extraction.
	Vocabulary []string `toml:"vocabulary"`

	// LanguageSynonyms maps fence language tags to their canonical form.
	LanguageSynonyms map[string]string `toml:"language_synonyms"`
}

// DefaultConfig returns the word lists shipped with the binary.
func DefaultConfig() Config {
	cfg, err := parseConfig(embeddedWordlist)
	if err != nil {
		// The embedded wordlist is validated by tests; reaching this means
		// a broken build, not a data-dependent condition.
		panic("readme: embedded wordlist is invalid: " + err.Error())
	}
	return cfg
}

// LoadConfig reads a word-list file in the same TOML format as the embedded
// default. Missing sections fall back to the defaults, so a file may extend
// just the vocabulary without restating the heading phrases.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	var loaded Config
	if _, err := toml.DecodeFile(path, &loaded); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load word list %s", path)
	}
	if len(loaded.UsageHeadings) > 0 {
		cfg.UsageHeadings = loaded.UsageHeadings
	}
	if len(loaded.Vocabulary) > 0 {
		cfg.Vocabulary = loaded.Vocabulary
	}
	if len(loaded.LanguageSynonyms) > 0 {
		cfg.LanguageSynonyms = loaded.LanguageSynonyms
	}
	return cfg, cfg.validate()
}

func parseConfig(data string) (Config, error) {
	var cfg Config
	if _, err := toml.Decode(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if len(c.UsageHeadings) == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "word list has no usage headings")
	}
	if len(c.Vocabulary) == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "word list has no vocabulary")
	}
	for _, h := range c.UsageHeadings {
		if strings.TrimSpace(h) == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "word list contains a blank usage heading")
		}
	}
	return nil
}
