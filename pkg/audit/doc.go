// Package audit provides audit logging for Inkwell operations.
//
// This package implements structured audit logging for security-relevant
// operations, chiefly ownership cascades and their traversal diagnostics.
//
// # Event Types
//
//   - CascadeEvent: one cascade invocation reaching a terminal outcome
//   - TraversalFallbackEvent: the primary descendant enumeration failed and
//     the engine recovered via the manual folder walk
//
// # Usage
//
//	audit.Log(audit.CascadeEvent{
//	    SubjectID:  "gm",
//	    FolderID:   "folder-1",
//	    Kind:       "journal",
//	    Outcome:    "applied",
//	    Documents:  5,
//	    Subfolders: 2,
//	})
//
// Events are written to stdout in RFC5424 syslog format and, when
// AUDIT_DATABASE_URL is set, persisted to the audit database.
package audit
