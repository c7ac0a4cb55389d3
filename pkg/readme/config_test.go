package readme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/swiftscout/swiftscout/pkg/errors"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if len(cfg.UsageHeadings) == 0 {
		t.Error("embedded word list has no usage headings")
	}
	if len(cfg.Vocabulary) == 0 {
		t.Error("embedded word list has no vocabulary")
	}
	if cfg.LanguageSynonyms["js"] != "javascript" {
		t.Errorf("synonym js = %q, want javascript", cfg.LanguageSynonyms["js"])
	}
}

func TestLoadConfig_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordlist.toml")
	if err := os.WriteFile(path, []byte("vocabulary = [\"metal\", \"arkit\"]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if len(cfg.Vocabulary) != 2 {
		t.Errorf("vocabulary = %v, want the override", cfg.Vocabulary)
	}
	// Sections absent from the file keep their embedded defaults.
	if len(cfg.UsageHeadings) == 0 {
		t.Error("usage headings should fall back to the embedded defaults")
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("got code %v, want ErrCodeInvalidConfig", errors.GetCode(err))
	}
}

func TestLoadConfig_MalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	if err := os.WriteFile(path, []byte("vocabulary = [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected an error for malformed TOML")
	}
}

func TestNew_RejectsEmptyWordLists(t *testing.T) {
	_, err := New(Config{}, nil)
	if err == nil {
		t.Fatal("expected an error for a zero config")
	}
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("got code %v, want ErrCodeInvalidConfig", errors.GetCode(err))
	}
}
