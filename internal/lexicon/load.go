package lexicon

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"
)

// Load reads a YAML override file, validates it against the embedded schema,
// and returns the default lexicon with the overrides applied. Malformed
// configuration is a caller error and is always reported; it never degrades
// into a partial lexicon.
func Load(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading lexicon file: %w", err)
	}
	lex, err := LoadBytes(data)
	if err != nil {
		return nil, fmt.Errorf("lexicon %s: %w", path, err)
	}
	return lex, nil
}

// LoadBytes is Load over in-memory YAML.
func LoadBytes(data []byte) (*Lexicon, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if doc == nil {
		// An empty override file selects the defaults.
		return Default(), nil
	}

	if errs := ValidateOverride(doc); len(errs) > 0 {
		return nil, fmt.Errorf("invalid lexicon override:\n  %s", strings.Join(errs, "\n  "))
	}

	lex := Default()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      lex,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, fmt.Errorf("building decoder: %w", err)
	}
	if err := decoder.Decode(doc); err != nil {
		return nil, fmt.Errorf("applying overrides: %w", err)
	}

	if err := lex.Validate(); err != nil {
		return nil, err
	}
	return lex, nil
}
