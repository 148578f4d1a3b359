package cascade

import (
	"github.com/inkwell-vtt/inkwell/pkg/model"
	"github.com/inkwell-vtt/inkwell/pkg/ownership"
)

// Operation is one pending ownership update: apply Assignment to the
// document identified by DocumentID. Operations are constructed, submitted
// in one batch, and discarded.
type Operation struct {
	DocumentID string
	Assignment ownership.Assignment
}

// Tree abstracts folder tree enumeration for the engine.
// This allows the engine to work with different backends (e.g., database,
// fake for testing).
type Tree interface {
	// Descendants returns every folder below the given folder, at any
	// depth, not including the folder itself. This is the primary
	// enumeration capability and may fail on backends that cannot provide
	// it; the engine then falls back to walking Children.
	Descendants(folderID string) ([]model.Folder, error)

	// Children returns the direct child folders of the given folder.
	Children(folderID string) ([]model.Folder, error)

	// Documents returns the IDs of the documents directly inside the given
	// folder. An empty slice means the folder holds no documents; it is not
	// an error.
	Documents(folderID string) ([]string, error)
}

// Store abstracts the ownership write path. One cascade invocation makes at
// most one ApplyOwnership call; the store's atomicity and partial-failure
// semantics for that call are its own concern.
type Store interface {
	// ApplyOwnership replaces the ownership state of every document named
	// in ops with the assignment carried by its operation, as one logical
	// batch scoped to a single document kind.
	ApplyOwnership(kind string, ops []Operation) error
}
