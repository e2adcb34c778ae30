// Package audit builds the per-session package ledger: it correlates
// installed packages with pre-release candidates and ranks every record
// into a priority tier for operator review.
package audit

import "github.com/brewdeck/brewdeck/internal/brew"

// Priority is the 1/2/3 tier used to sort and color the ledger.
type Priority int

const (
	// PriorityNeedsUpdate marks packages behind the stable channel
	PriorityNeedsUpdate Priority = 1
	// PriorityPreRelease marks up-to-date packages with a pre-release alternative
	PriorityPreRelease Priority = 2
	// PriorityNominal marks packages with nothing to do
	PriorityNominal Priority = 3
)

func (p Priority) String() string {
	switch p {
	case PriorityNeedsUpdate:
		return "needs update"
	case PriorityPreRelease:
		return "pre-release available"
	default:
		return "nominal"
	}
}

// VersionUnknown is the sentinel pre-release version used when the
// metadata lookup for a correlated candidate failed.
const VersionUnknown = "unknown"

// PackageRecord is one row of the ledger. Records are created fresh each
// session from inventory output, mutated only by the correlation and
// classification passes, and discarded at session end.
type PackageRecord struct {
	Name              string
	Kind              brew.Kind
	LocalVersion      string
	StableVersion     string
	Outdated          bool
	PreReleaseName    string
	PreReleaseVersion string
	Priority          Priority
}

// HasPreRelease reports whether a pre-release candidate was correlated.
func (r PackageRecord) HasPreRelease() bool {
	return r.PreReleaseName != ""
}

// Ledger is the ordered collection of records produced for one session.
type Ledger []PackageRecord

// Outdated returns the records behind the stable channel.
func (l Ledger) Outdated() []PackageRecord {
	var out []PackageRecord
	for _, r := range l {
		if r.Outdated {
			out = append(out, r)
		}
	}
	return out
}

// Swappable returns the records with a correlated pre-release candidate.
func (l Ledger) Swappable() []PackageRecord {
	var out []PackageRecord
	for _, r := range l {
		if r.HasPreRelease() {
			out = append(out, r)
		}
	}
	return out
}

// recordFromEntry converts a raw inventory entry into an unclassified record.
func recordFromEntry(e brew.Entry) PackageRecord {
	return PackageRecord{
		Name:          e.Name,
		Kind:          e.Kind,
		LocalVersion:  e.LocalVersion,
		StableVersion: e.StableVersion,
		Outdated:      e.Outdated,
	}
}
