package audit

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger()
	logger.SetWriter(&buf)

	logger.Log(CascadeEvent{
		SubjectID:  "gm",
		ClientIP:   "203.0.113.9",
		FolderID:   "campaign",
		Kind:       "journal",
		Outcome:    "applied",
		Documents:  5,
		Subfolders: 2,
	})

	line := buf.String()

	// PRI = authpriv (10) * 8 + info (6)
	assert.True(t, len(line) > 0 && line[len(line)-1] == '\n')
	assert.Regexp(t, regexp.MustCompile(`^<86>1 \d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}Z `), line)
	assert.Contains(t, line, " inkwell ")
	assert.Contains(t, line, " cascade ")
	assert.Contains(t, line, `id="gm"`)
	assert.Contains(t, line, `kind="journal"`)
	assert.Contains(t, line, `outcome="applied"`)
	assert.Contains(t, line, `documents="5"`)
	assert.Contains(t, line, `ip="203.0.113.9"`)
	assert.Contains(t, line, "gm cascaded ownership from folder campaign to 5 document(s) across 2 sub-folder(s)")
}

func TestEscapeSDValue(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"plain", `"plain"`},
		{`back\slash`, `"back\\slash"`},
		{`quo"te`, `"quo\"te"`},
		{"brack]et", `"brack\]et"`},
		{"", `""`},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, escapeSDValue(tc.input))
	}
}

func TestCascadeEventMessages(t *testing.T) {
	testCases := []struct {
		name     string
		event    CascadeEvent
		message  string
		severity Severity
	}{
		{
			name: "applied",
			event: CascadeEvent{
				SubjectID: "gm", FolderID: "campaign",
				Outcome: "applied", Documents: 3, Subfolders: 1,
			},
			message:  "gm cascaded ownership from folder campaign to 3 document(s) across 1 sub-folder(s)",
			severity: SeverityInfo,
		},
		{
			name: "failed with detail",
			event: CascadeEvent{
				SubjectID: "gm", FolderID: "campaign",
				Outcome: "failed", ErrorMessage: "connection refused",
			},
			message:  "gm failed to cascade ownership from folder campaign: connection refused",
			severity: SeverityWarning,
		},
		{
			name: "no documents",
			event: CascadeEvent{
				SubjectID: "gm", FolderID: "campaign", Outcome: "no_documents",
			},
			message:  "gm cascaded ownership from folder campaign with no effect (no_documents)",
			severity: SeverityInfo,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, "cascade", tc.event.MessageID())
			assert.Equal(t, tc.message, tc.event.Message())
			assert.Equal(t, tc.severity, tc.event.Severity())
			assert.Equal(t, FacilityAuthPriv, tc.event.Facility())
		})
	}
}

func TestTraversalFallbackEvent(t *testing.T) {
	event := TraversalFallbackEvent{
		FolderID:     "campaign",
		Kind:         "journal",
		ErrorMessage: "recursive query unsupported",
	}

	assert.Equal(t, "traversal-fallback", event.MessageID())
	assert.Equal(t, SeverityNotice, event.Severity())
	assert.Contains(t, event.Message(), "campaign")
	assert.Contains(t, event.Message(), "recursive query unsupported")

	sd := event.StructuredData()
	require.Contains(t, sd, SDIDFolder)
	assert.Equal(t, "campaign", sd[SDIDFolder]["id"])
}
