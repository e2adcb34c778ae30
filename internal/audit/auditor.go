package audit

import (
	"context"

	"github.com/brewdeck/brewdeck/internal/brew"
	"github.com/brewdeck/brewdeck/internal/common/logger"
)

// Auditor assembles the session ledger. It holds no state across runs:
// every BuildLedger call re-derives the ledger from fresh inventory so
// the result reflects current system reality.
type Auditor struct {
	client *brew.Client
	vocab  Vocabulary
}

// NewAuditor creates an Auditor over the given inventory client.
func NewAuditor(client *brew.Client, vocab Vocabulary) *Auditor {
	return &Auditor{client: client, vocab: vocab}
}

// Vocabulary returns the active pre-release naming convention.
func (a *Auditor) Vocabulary() Vocabulary {
	return a.vocab
}

// BuildLedger fetches inventory, correlates pre-release candidates, and
// returns the classified, sorted ledger. Individual fetch failures
// degrade to empty data with a warning; only a missing brew binary is
// fatal, and that is checked before the session starts.
func (a *Auditor) BuildLedger(ctx context.Context) (Ledger, error) {
	entries, err := a.client.FetchInstalled(ctx)
	if err != nil {
		logger.Warn("inventory listing unavailable: %v", err)
		entries = nil
	}

	candidates, err := a.client.FetchPreReleaseNames(ctx, a.vocab.SearchPattern())
	if err != nil {
		logger.Warn("pre-release scan unavailable: %v", err)
		candidates = nil
	}

	records := make([]PackageRecord, 0, len(entries))
	for _, e := range entries {
		records = append(records, recordFromEntry(e))
	}

	matched := NewCorrelator(a.vocab).Correlate(records, candidates)

	versions, err := a.client.FetchMetadata(ctx, matched)
	if err != nil {
		logger.Warn("pre-release metadata unavailable: %v", err)
	}
	ApplyMetadata(records, versions)

	return Rank(records), nil
}
