package merge

import (
	"cmp"
	"slices"

	"termsync/internal/models"
)

// Refine filters the tentative action sequence against a baseline snapshot,
// the state Local and Remote are presumed to have agreed on before any
// divergent edits. TwoWay alone cannot tell "I changed this locally" apart
// from "someone changed it remotely and my file is merely stale"; the
// baseline supplies the common ancestor that disambiguates.
//
// A nil baseline bypasses refinement entirely and returns the tentative
// sequence as-is. A non-nil baseline applies, per key:
//
//   - Remove, key absent from baseline: dropped. The term has no history and
//     no local entry, so it was most likely created remotely; nothing proves
//     it was ever locally owned, and it must not be deleted.
//   - Remove, key in baseline: kept, a provable local deletion.
//   - Add, key in baseline: dropped. The term existed at the baseline and is
//     gone from the remote store now, so it was deleted remotely; re-creating
//     it would fight that deletion.
//   - Update, local text equal to the baseline text: dropped. The local side
//     did not move since the baseline, so the divergence comes from a remote
//     edit that must win.
//   - Update, local text differs from the baseline text: kept, a real local
//     edit.
//   - Add or Update, key absent from baseline: kept. The baseline predates
//     the term, there is no history to disambiguate with.
//
// The result is always a subset of tentative, in the same ascending key
// order; Refine never invents actions.
func Refine(tentative []models.Action, baseline *models.Baseline) []models.Action {
	if baseline == nil {
		return tentative
	}

	actions := slices.SortedFunc(slices.Values(tentative), func(a, b models.Action) int {
		return cmp.Compare(a.Key, b.Key)
	})
	base := sortTerms(baseline.Terms)

	kept := make([]models.Action, 0, len(actions))
	Join(actions, base,
		func(a models.Action) string { return a.Key },
		func(t models.Term) string { return t.Key },
		func(a models.Action, b models.Term) {
			switch a.Kind {
			case models.ActionRemove:
				kept = append(kept, a)
			case models.ActionAdd:
				// deleted remotely after the baseline, do not resurrect
			case models.ActionUpdate:
				if a.Text != b.Text {
					kept = append(kept, a)
				}
			}
		},
		func(a models.Action) {
			// no history for this key, trust the tentative classification,
			// except for removals: a remote-only term with no baseline entry
			// was never provably owned by the local file
			if a.Kind != models.ActionRemove {
				kept = append(kept, a)
			}
		},
		func(models.Term) {
			// baseline-only key: deleted identically on both sides, nothing to do
		},
	)
	return kept
}
