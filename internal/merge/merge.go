// Package merge computes which remote mutations bring a Traduora project in
// line with the local translation file. It is a pure two-stage pipeline:
// TwoWay classifies every key by comparing the local and remote snapshots,
// Refine re-checks that classification against an optional baseline snapshot
// so that independent remote edits are never overwritten.
//
// The engine performs no I/O, never mutates its inputs, and is fully
// deterministic: identical snapshots always produce the identical,
// key-ordered action sequence.
package merge

import (
	"cmp"
	"slices"

	"termsync/internal/models"
)

// TwoWay compares the local and remote snapshots key by key and returns the
// tentative action sequence, ascending by key. Keys present on both sides
// with equal text produce no action. A differing but empty local text also
// produces no action: an empty local value means the user has not written
// the translation yet, not that the remote one should be blanked out.
func TwoWay(local []models.Term, remote []models.RemoteTerm) []models.Action {
	local = sortTerms(local)
	remote = slices.SortedFunc(slices.Values(remote), func(a, b models.RemoteTerm) int {
		return cmp.Compare(a.Key, b.Key)
	})

	var actions []models.Action
	Join(local, remote,
		func(t models.Term) string { return t.Key },
		func(t models.RemoteTerm) string { return t.Key },
		func(l models.Term, r models.RemoteTerm) {
			if l.Text != r.Text && l.Text != "" {
				actions = append(actions, models.Action{
					Kind:     models.ActionUpdate,
					Key:      l.Key,
					Text:     l.Text,
					RemoteID: r.ID,
				})
			}
		},
		func(l models.Term) {
			actions = append(actions, models.Action{
				Kind: models.ActionAdd,
				Key:  l.Key,
				Text: l.Text,
			})
		},
		func(r models.RemoteTerm) {
			actions = append(actions, models.Action{
				Kind:     models.ActionRemove,
				Key:      r.Key,
				RemoteID: r.ID,
			})
		},
	)
	return actions
}

// sortTerms returns a copy of terms sorted ascending by key.
func sortTerms(terms []models.Term) []models.Term {
	return slices.SortedFunc(slices.Values(terms), func(a, b models.Term) int {
		return cmp.Compare(a.Key, b.Key)
	})
}
