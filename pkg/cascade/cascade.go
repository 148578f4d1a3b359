package cascade

import (
	"fmt"
	"time"

	"github.com/inkwell-vtt/inkwell/pkg/audit"
	"github.com/inkwell-vtt/inkwell/pkg/model"
	"github.com/inkwell-vtt/inkwell/pkg/ownership"
)

// DefaultSettleDelay is how long a cascade waits before traversal when no
// save barrier is configured. The delay exists to let the host's own save
// of the folder's ownership finish first; there is no signal for that, so
// the engine sleeps and assumes completion. Under slow store latency the
// assumption can be wrong. Prefer WithSaveBarrier where the caller can
// provide a real completion signal.
const DefaultSettleDelay = 500 * time.Millisecond

// Result is the terminal report of one cascade invocation.
type Result struct {
	Outcome        Outcome `json:"outcome"`
	DocumentCount  int     `json:"documents"`
	SubfolderCount int     `json:"subfolders"`
	Err            error   `json:"-"`
}

// Engine applies one ownership assignment to every document in a folder
// subtree, in a single batch store call per invocation.
type Engine struct {
	tree        Tree
	store       Store
	settleDelay time.Duration
	saveBarrier <-chan struct{}
	auditor     *audit.Logger
}

// NewEngine creates a cascade engine over the given tree and store.
func NewEngine(tree Tree, store Store) *Engine {
	return &Engine{
		tree:        tree,
		store:       store,
		settleDelay: DefaultSettleDelay,
		auditor:     audit.DefaultLogger,
	}
}

// WithSettleDelay sets the fixed wait before traversal. Zero disables the
// wait entirely.
func (e *Engine) WithSettleDelay(d time.Duration) *Engine {
	e.settleDelay = d
	return e
}

// WithSaveBarrier sets a channel the engine waits on (for a close or one
// receive) instead of sleeping the settle delay. Use this when the caller
// can signal that its own save of the folder has completed.
func (e *Engine) WithSaveBarrier(barrier <-chan struct{}) *Engine {
	e.saveBarrier = barrier
	return e
}

// WithAuditor sets the audit logger used for traversal diagnostics.
func (e *Engine) WithAuditor(auditor *audit.Logger) *Engine {
	e.auditor = auditor
	return e
}

// Cascade applies assignment to every document inside root's subtree,
// including documents in nested sub-folders at any depth. It always returns
// a Result; it never panics past this boundary. Exactly one store call is
// made, and only when the assignment and the flattened document list are
// both non-empty. On store failure the whole invocation is failed, even if
// the store applied part of the batch before erroring; the engine does not
// retry or inspect per-document results.
func (e *Engine) Cascade(root model.Folder, assignment ownership.Assignment) Result {
	if len(assignment) == 0 {
		return Result{Outcome: OutcomeNoAssignment}
	}

	e.settle()

	folders, err := e.collectFolders(root)
	if err != nil {
		return Result{Outcome: OutcomeFailed, Err: fmt.Errorf("collecting folders under %s: %w", root.FolderID, err)}
	}

	ops, err := e.flatten(folders, assignment)
	if err != nil {
		return Result{Outcome: OutcomeFailed, Err: fmt.Errorf("listing documents under %s: %w", root.FolderID, err)}
	}

	subfolders := len(folders) - 1
	if len(ops) == 0 {
		return Result{Outcome: OutcomeNoDocuments, SubfolderCount: subfolders}
	}

	if err := e.store.ApplyOwnership(root.Kind, ops); err != nil {
		return Result{
			Outcome:        OutcomeFailed,
			SubfolderCount: subfolders,
			Err:            fmt.Errorf("applying ownership batch for folder %s: %w", root.FolderID, err),
		}
	}

	return Result{
		Outcome:        OutcomeApplied,
		DocumentCount:  len(ops),
		SubfolderCount: subfolders,
	}
}

// settle waits for the caller's own folder save before reading the tree.
// A configured save barrier takes priority over the fixed delay.
func (e *Engine) settle() {
	if e.saveBarrier != nil {
		<-e.saveBarrier
		return
	}
	if e.settleDelay > 0 {
		time.Sleep(e.settleDelay)
	}
}

// collectFolders returns root plus every folder below it, each exactly
// once. The primary strategy asks the tree for all descendants in one call;
// if that fails the engine logs a diagnostic and walks direct children with
// an explicit stack.
func (e *Engine) collectFolders(root model.Folder) ([]model.Folder, error) {
	descendants, err := e.tree.Descendants(root.FolderID)
	if err != nil {
		e.logFallback(root, err)
		return walkFolders(e.tree, root)
	}
	return append([]model.Folder{root}, descendants...), nil
}

// flatten builds one operation per document across the collected folders,
// every operation carrying the identical assignment.
func (e *Engine) flatten(folders []model.Folder, assignment ownership.Assignment) ([]Operation, error) {
	var ops []Operation
	for _, folder := range folders {
		docIDs, err := e.tree.Documents(folder.FolderID)
		if err != nil {
			return nil, err
		}
		for _, docID := range docIDs {
			ops = append(ops, Operation{DocumentID: docID, Assignment: assignment})
		}
	}
	return ops, nil
}

func (e *Engine) logFallback(root model.Folder, err error) {
	if e.auditor == nil {
		return
	}
	e.auditor.Log(audit.TraversalFallbackEvent{
		FolderID:     root.FolderID,
		Kind:         root.Kind,
		ErrorMessage: err.Error(),
	})
}
