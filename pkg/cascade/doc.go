// Package cascade applies one ownership assignment to every document in a
// folder subtree.
//
// The operator edits ownership once, at the top folder; the engine
// enumerates the folder's full descendant tree, flattens every contained
// document into a single batch of update operations, and submits that batch
// to the store in one call. Folders themselves are never touched: folder
// visibility is a property the host platform derives from document
// visibility.
//
// # Basic Usage
//
//	tree := cascade.NewGormTree(db)
//	store := cascade.NewGormStore(db)
//	engine := cascade.NewEngine(tree, store)
//	result := engine.Cascade(root, ownership.Normalize(rawForm))
//	switch result.Outcome {
//	case cascade.OutcomeApplied:
//	    fmt.Printf("updated %d document(s) across %d sub-folder(s)\n",
//	        result.DocumentCount, result.SubfolderCount)
//	}
//
// # Outcomes
//
// Every invocation terminates in exactly one outcome. Empty assignments and
// empty subtrees are reported, not raised; only a store rejection produces
// OutcomeFailed, and even then the error travels inside the Result rather
// than as a panic or a raised error.
//
// # Traversal Strategies
//
// The engine prefers the tree's own recursive descendant enumeration (one
// recursive CTE on the gorm backend). If that capability fails, it falls
// back to an iterative explicit-stack walk over direct children, with a
// visited guard so a corrupt cyclic tree still terminates. Both strategies
// collect the same folder set; the fallback is surfaced only as an audit
// diagnostic.
//
// # Settling
//
// A cascade begins with a short wait so that the caller's own save of the
// folder's ownership can land first. With no completion signal available
// this is a fixed delay (WithSettleDelay); callers that can signal
// completion should use WithSaveBarrier instead.
package cascade
