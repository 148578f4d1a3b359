package ownership

import "strconv"

// DefaultSubject is the reserved subject identifier for the vault-wide
// default ownership level. It is valid anywhere a user identifier is.
const DefaultSubject = "default"

// Assignment maps subject identifiers to ownership levels. It is built
// fresh for each cascade invocation and never persisted as-is; the store
// owns the durable representation.
type Assignment map[string]Level

// Normalize parses a raw subject -> value mapping, as submitted by an
// ownership form, into an Assignment. A value is kept only if it parses to
// a number that is a member of the Level set. Everything else is dropped
// silently: non-numeric strings, and any numeric sentinel a client uses for
// "inherit" or "no change" (validation is by set membership, not by
// recognizing particular sentinels, so clients are free to disagree about
// the sentinel encoding).
//
// An empty result is not an error. It means no field held a concrete
// ownership decision, and the caller is expected to treat it as "nothing to
// apply".
func Normalize(raw map[string]string) Assignment {
	assignment := make(Assignment)
	for subject, value := range raw {
		n, err := strconv.Atoi(value)
		if err != nil {
			continue
		}
		level := Level(n)
		if !level.IsALevel() {
			continue
		}
		assignment[subject] = level
	}
	return assignment
}
