package audit

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

var (
	// ErrEmptyVocabulary is returned when a qualifiers file defines no qualifiers
	ErrEmptyVocabulary = errors.New("qualifier vocabulary must not be empty")
	// ErrEmptySeparators is returned when a qualifiers file defines no separators
	ErrEmptySeparators = errors.New("separator list must not be empty")
)

// Vocabulary is the recognized pre-release naming convention: a separator
// character followed by a qualifier, anchored at the start of the
// remainder after the installed package's name.
type Vocabulary struct {
	Separators []string `toml:"separators"`
	Qualifiers []string `toml:"qualifiers"`
}

// DefaultVocabulary returns the built-in naming convention.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Separators: []string{"@", "-"},
		Qualifiers: []string{"beta", "alpha", "nightly", "insider", "preview", "dev", "next", "canary", "edge"},
	}
}

// QualifiersPath returns the optional vocabulary override file path.
func QualifiersPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		xdgConfig = filepath.Join(home, ".config")
	}
	return filepath.Join(xdgConfig, "brewdeck", "qualifiers.toml"), nil
}

// LoadVocabulary reads a vocabulary override from a TOML file. A missing
// file yields the defaults; a present but invalid file is an error.
func LoadVocabulary(path string) (Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultVocabulary(), nil
		}
		return Vocabulary{}, fmt.Errorf("failed to read qualifiers file: %w", err)
	}

	var v Vocabulary
	if err := toml.Unmarshal(data, &v); err != nil {
		return Vocabulary{}, fmt.Errorf("failed to parse qualifiers file: %w", err)
	}

	if len(v.Separators) == 0 {
		v.Separators = DefaultVocabulary().Separators
	}
	if len(v.Qualifiers) == 0 {
		return Vocabulary{}, ErrEmptyVocabulary
	}
	for _, s := range v.Separators {
		if s == "" {
			return Vocabulary{}, ErrEmptySeparators
		}
	}

	return v, nil
}

// SearchPattern renders the vocabulary as the regex handed to the package
// manager's name search, e.g. /(@|-)(beta|alpha|...)/.
func (v Vocabulary) SearchPattern() string {
	return fmt.Sprintf("/(%s)(%s)/",
		strings.Join(v.Separators, "|"),
		strings.Join(v.Qualifiers, "|"))
}

// MatchRemainder reports whether the remainder of a candidate name, after
// stripping an installed package's exact name, starts with a recognized
// separator immediately followed by a qualifier. The anchor prevents
// prefix-only false positives such as "foobar-beta" matching "foo".
func (v Vocabulary) MatchRemainder(remainder string) bool {
	for _, sep := range v.Separators {
		if !strings.HasPrefix(remainder, sep) {
			continue
		}
		rest := remainder[len(sep):]
		for _, q := range v.Qualifiers {
			if strings.HasPrefix(rest, q) {
				return true
			}
		}
	}
	return false
}
