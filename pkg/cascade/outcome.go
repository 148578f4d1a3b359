package cascade

//go:generate go run github.com/dmarkham/enumer -type Outcome -trimprefix Outcome -transform snake -json -output outcome.gen.go

// Outcome is the terminal state of one cascade invocation. Every invocation
// reaches exactly one of these; nothing in the engine is fatal to the host
// process.
type Outcome int

const (
	// OutcomeNoAssignment: the assignment was empty, nothing to apply.
	// The store was not called.
	OutcomeNoAssignment Outcome = iota
	// OutcomeNoDocuments: every collected folder held zero documents.
	// The store was not called.
	OutcomeNoDocuments
	// OutcomeApplied: the batch was submitted and the store accepted it.
	OutcomeApplied
	// OutcomeFailed: the store rejected the batch. Result.Err carries the
	// cause for diagnostic logging.
	OutcomeFailed
)
