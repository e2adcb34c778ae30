package audit

import "strings"

// Correlator matches installed packages to pre-release candidates using
// the exact-prefix + anchored-suffix rule.
type Correlator struct {
	vocab Vocabulary
}

// NewCorrelator creates a Correlator for the given vocabulary.
func NewCorrelator(vocab Vocabulary) *Correlator {
	return &Correlator{vocab: vocab}
}

// Correlate assigns at most one pre-release candidate to each record and
// returns the distinct matched candidate names, in first-use order, for a
// single batched metadata lookup.
//
// When several candidates match one package, the winner is the one with
// the shortest remainder after the shared prefix (the most specific
// family match), with bytewise candidate-name order as the final
// tie-break. This keeps correlation reproducible regardless of the
// enumeration order of the underlying name set.
func (c *Correlator) Correlate(records []PackageRecord, candidates []string) []string {
	var matched []string
	seen := make(map[string]bool)

	for i := range records {
		best := c.bestCandidate(records[i].Name, candidates)
		if best == "" {
			continue
		}
		records[i].PreReleaseName = best
		if !seen[best] {
			seen[best] = true
			matched = append(matched, best)
		}
	}

	return matched
}

// bestCandidate returns the winning candidate for a package name, or ""
// when nothing matches.
func (c *Correlator) bestCandidate(name string, candidates []string) string {
	best := ""
	bestRemainder := -1

	for _, cand := range candidates {
		if !strings.HasPrefix(cand, name) {
			continue
		}
		remainder := cand[len(name):]
		if !c.vocab.MatchRemainder(remainder) {
			continue
		}

		switch {
		case best == "":
			best = cand
			bestRemainder = len(remainder)
		case len(remainder) < bestRemainder:
			best = cand
			bestRemainder = len(remainder)
		case len(remainder) == bestRemainder && cand < best:
			best = cand
		}
	}

	return best
}

// ApplyMetadata fills in pre-release versions from a batched metadata
// lookup. Correlated records missing from the map keep their candidate
// name but fall back to the unknown-version sentinel, so the audit view
// stays usable with partial data.
func ApplyMetadata(records []PackageRecord, versions map[string]string) {
	for i := range records {
		if records[i].PreReleaseName == "" {
			continue
		}
		if v, ok := versions[records[i].PreReleaseName]; ok && v != "" {
			records[i].PreReleaseVersion = v
		} else {
			records[i].PreReleaseVersion = VersionUnknown
		}
	}
}
