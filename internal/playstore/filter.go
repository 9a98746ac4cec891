package playstore

import "github.com/riversnfl/predictor/internal/domain"

// Scrimmage is a Predicate matching only scrimmage plays (spec §3: pass,
// run, qb_kneel, qb_spike). Every component scorer filters through this
// first; special-teams and timing plays never reach a scorer.
func Scrimmage(row *domain.PlayRow) bool {
	return row.PlayKind.IsScrimmage()
}

// And combines predicates with logical AND. A nil predicate is treated as
// "always true", so callers can compose situational filters without nil
// checks at every call site.
func And(preds ...func(*domain.PlayRow) bool) func(*domain.PlayRow) bool {
	return func(row *domain.PlayRow) bool {
		for _, p := range preds {
			if p == nil {
				continue
			}
			if !p(row) {
				return false
			}
		}
		return true
	}
}
