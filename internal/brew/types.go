// Package brew provides the inventory client for the Homebrew CLI.
// It shells out to brew for structured (--json=v2) listings, free-text
// search, and info lookups, and never caches between calls.
package brew

import "encoding/json"

// Kind distinguishes the two Homebrew namespaces. A name may exist in both.
type Kind string

const (
	KindFormula Kind = "formula"
	KindCask    Kind = "cask"
)

// NotInstalled is the sentinel local version for packages brew reports
// without an installed version.
const NotInstalled = "not installed"

// Entry is one raw installed-package row extracted from brew's JSON output.
type Entry struct {
	Name          string
	Kind          Kind
	LocalVersion  string
	StableVersion string
	Outdated      bool
}

// InfoDocument mirrors the relevant parts of `brew info --json=v2` output.
type InfoDocument struct {
	Formulae []Formula `json:"formulae"`
	Casks    []Cask    `json:"casks"`
}

// Formula is a single formula record from the v2 JSON schema.
type Formula struct {
	Name      string             `json:"name"`
	Desc      string             `json:"desc"`
	Homepage  string             `json:"homepage"`
	License   string             `json:"license"`
	Outdated  bool               `json:"outdated"`
	Versions  FormulaVersions    `json:"versions"`
	Installed []InstalledFormula `json:"installed"`
}

// FormulaVersions holds the published version channels of a formula.
type FormulaVersions struct {
	Stable string `json:"stable"`
}

// InstalledFormula is one installed version entry of a formula.
type InstalledFormula struct {
	Version string `json:"version"`
}

// Cask is a single cask record from the v2 JSON schema.
// Cask "name" is a list of display names; Token is the identifier.
type Cask struct {
	Token     string   `json:"token"`
	Names     []string `json:"name"`
	Desc      string   `json:"desc"`
	Homepage  string   `json:"homepage"`
	Version   string   `json:"version"`
	Installed string   `json:"installed"`
	Outdated  bool     `json:"outdated"`
}

// ParseInfoDocument decodes `brew info --json=v2` output.
func ParseInfoDocument(data []byte) (*InfoDocument, error) {
	var doc InfoDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Entries flattens the document into raw installed-package rows,
// casks first, matching the order the original console displayed.
func (d *InfoDocument) Entries() []Entry {
	entries := make([]Entry, 0, len(d.Casks)+len(d.Formulae))

	for _, c := range d.Casks {
		local := c.Installed
		if local == "" {
			local = NotInstalled
		}
		entries = append(entries, Entry{
			Name:          c.Token,
			Kind:          KindCask,
			LocalVersion:  local,
			StableVersion: c.Version,
			Outdated:      c.Outdated,
		})
	}

	for _, f := range d.Formulae {
		local := NotInstalled
		if len(f.Installed) > 0 {
			local = f.Installed[0].Version
		}
		entries = append(entries, Entry{
			Name:          f.Name,
			Kind:          KindFormula,
			LocalVersion:  local,
			StableVersion: f.Versions.Stable,
			Outdated:      f.Outdated,
		})
	}

	return entries
}

// Descriptions maps every token and name in the document to its
// description text.
func (d *InfoDocument) Descriptions() map[string]string {
	descs := make(map[string]string)
	for _, f := range d.Formulae {
		if f.Name != "" {
			descs[f.Name] = f.Desc
		}
	}
	for _, c := range d.Casks {
		if c.Token != "" {
			descs[c.Token] = c.Desc
		}
	}
	return descs
}

// Versions maps every token and name in the document to its published
// version: stable channel for formulae, the cask version for casks.
func (d *InfoDocument) Versions() map[string]string {
	versions := make(map[string]string)
	for _, f := range d.Formulae {
		if f.Name != "" {
			versions[f.Name] = f.Versions.Stable
		}
	}
	for _, c := range d.Casks {
		if c.Token != "" {
			versions[c.Token] = c.Version
		}
		for _, n := range c.Names {
			if n != "" {
				versions[n] = c.Version
			}
		}
	}
	return versions
}
