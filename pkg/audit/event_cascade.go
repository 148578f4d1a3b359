package audit

import "fmt"

// CascadeEvent represents one ownership cascade invocation reaching a
// terminal outcome.
type CascadeEvent struct {
	SubjectID    string // who triggered the cascade
	ClientIP     string
	FolderID     string
	Kind         string
	Outcome      string // terminal outcome name, e.g. "applied"
	Documents    int
	Subfolders   int
	ErrorMessage string
}

func (e CascadeEvent) MessageID() string {
	return "cascade"
}

func (e CascadeEvent) Message() string {
	switch e.Outcome {
	case "applied":
		return fmt.Sprintf("%s cascaded ownership from folder %s to %d document(s) across %d sub-folder(s)",
			e.SubjectID, e.FolderID, e.Documents, e.Subfolders)
	case "failed":
		msg := fmt.Sprintf("%s failed to cascade ownership from folder %s", e.SubjectID, e.FolderID)
		if e.ErrorMessage != "" {
			msg += ": " + e.ErrorMessage
		}
		return msg
	default:
		return fmt.Sprintf("%s cascaded ownership from folder %s with no effect (%s)",
			e.SubjectID, e.FolderID, e.Outcome)
	}
}

func (e CascadeEvent) Severity() Severity {
	if e.Outcome == "failed" {
		return SeverityWarning
	}
	return SeverityInfo
}

func (e CascadeEvent) Facility() int {
	return FacilityAuthPriv
}

func (e CascadeEvent) StructuredData() map[string]map[string]string {
	sd := map[string]map[string]string{
		SDIDSubject: {
			"id": e.SubjectID,
		},
		SDIDFolder: {
			"id":   e.FolderID,
			"kind": e.Kind,
		},
		SDIDAction: {
			"operation":  "cascade",
			"outcome":    e.Outcome,
			"documents":  fmt.Sprintf("%d", e.Documents),
			"subfolders": fmt.Sprintf("%d", e.Subfolders),
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
	}
	return sd
}
