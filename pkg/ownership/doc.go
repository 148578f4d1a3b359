// Package ownership defines document ownership levels and the normalization
// of raw, form-submitted ownership values.
//
// # Levels
//
// Ownership is a closed ordered set of four levels, encoded as small
// integers that are part of the client and database contract:
//
//   - 0: none
//   - 1: limited
//   - 2: observer
//   - 3: owner
//
// Clients additionally use out-of-set numeric sentinels (commonly -1 or -2)
// to mean "leave unchanged". Those are not levels and Normalize drops them.
//
// # Normalization
//
//	raw := map[string]string{"default": "2", "user1": "-1", "user2": "owner"}
//	assignment := ownership.Normalize(raw)
//	// assignment == Assignment{"default": LevelObserver}
//
// Normalize is a pure function: no I/O, no side effects, deterministic.
package ownership
