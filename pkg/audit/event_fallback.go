package audit

import "fmt"

// TraversalFallbackEvent records that the primary descendant enumeration
// failed and the engine recovered via the manual folder walk. Diagnostic
// only; this never reaches end users.
type TraversalFallbackEvent struct {
	FolderID     string
	Kind         string
	ErrorMessage string
}

func (e TraversalFallbackEvent) MessageID() string {
	return "traversal-fallback"
}

func (e TraversalFallbackEvent) Message() string {
	return fmt.Sprintf("descendant enumeration failed for folder %s, fell back to manual walk: %s",
		e.FolderID, e.ErrorMessage)
}

func (e TraversalFallbackEvent) Severity() Severity {
	return SeverityNotice
}

func (e TraversalFallbackEvent) Facility() int {
	return FacilityAuthPriv
}

func (e TraversalFallbackEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDFolder: {
			"id":   e.FolderID,
			"kind": e.Kind,
		},
		SDIDAction: {
			"operation": "traversal-fallback",
			"error":     e.ErrorMessage,
		},
	}
}
