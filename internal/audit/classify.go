package audit

import "sort"

// ClassifyPriority derives the priority tier. It is a pure function of
// the outdated flag and whether a pre-release candidate was correlated.
func ClassifyPriority(outdated, hasPreRelease bool) Priority {
	switch {
	case outdated:
		return PriorityNeedsUpdate
	case hasPreRelease:
		return PriorityPreRelease
	default:
		return PriorityNominal
	}
}

// Rank assigns priorities and returns the ledger sorted ascending by
// (priority, name). Name comparison is bytewise, so the order is
// deterministic and locale-independent.
func Rank(records []PackageRecord) Ledger {
	ledger := make(Ledger, len(records))
	copy(ledger, records)

	for i := range ledger {
		ledger[i].Priority = ClassifyPriority(ledger[i].Outdated, ledger[i].HasPreRelease())
	}

	sort.SliceStable(ledger, func(a, b int) bool {
		if ledger[a].Priority != ledger[b].Priority {
			return ledger[a].Priority < ledger[b].Priority
		}
		return ledger[a].Name < ledger[b].Name
	})

	return ledger
}
