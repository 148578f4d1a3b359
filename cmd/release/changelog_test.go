package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validChangelog = `# Changelog

All notable changes to this project will be documented in this file.

The format is based on [Keep a Changelog](https://keepachangelog.com/en/1.1.0/),
and this project adheres to [Semantic Versioning](https://semver.org/spec/v2.0.0.html).

## [Unreleased]

### Added
- New feature in progress

## [1.2.0] - 2025-06-10

### Added
- Ownership cascade endpoint
- Audit messages for cascades

### Fixed
- Folder walk on servers without recursive queries

## [1.0.0] - 2025-01-20

### Added
- Initial release

[Unreleased]: https://github.com/inkwell-vtt/inkwell/compare/v1.2.0...HEAD
[1.2.0]: https://github.com/inkwell-vtt/inkwell/compare/v1.0.0...v1.2.0
[1.0.0]: https://github.com/inkwell-vtt/inkwell/releases/tag/v1.0.0
`

func TestParseChangelog(t *testing.T) {
	changelog, err := ParseChangelog([]byte(validChangelog))
	require.NoError(t, err)
	require.Len(t, changelog.Entries, 3)

	assert.Equal(t, "Unreleased", changelog.Entries[0].Version)
	assert.Empty(t, changelog.Entries[0].Date)

	assert.Equal(t, "1.2.0", changelog.Entries[1].Version)
	assert.Equal(t, "2025-06-10", changelog.Entries[1].Date)
	assert.Contains(t, changelog.Entries[1].Notes, "Ownership cascade endpoint")
	assert.NotContains(t, changelog.Entries[1].Notes, "Initial release")

	assert.Len(t, changelog.Links, 3)
	assert.Equal(t, "https://github.com/inkwell-vtt/inkwell/compare/v1.0.0...v1.2.0", changelog.Links["1.2.0"])
}

func TestFindVersion(t *testing.T) {
	changelog, _ := ParseChangelog([]byte(validChangelog))

	tests := []struct {
		name     string
		version  string
		expected string
	}{
		{"exact version", "1.2.0", "1.2.0"},
		{"with v prefix", "v1.2.0", "1.2.0"},
		{"older version", "1.0.0", "1.0.0"},
		{"unreleased", "Unreleased", "Unreleased"},
		{"non-existent", "2.0.0", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := changelog.FindVersion(tt.version)
			if tt.expected == "" {
				assert.Nil(t, entry)
			} else {
				require.NotNil(t, entry)
				assert.Equal(t, tt.expected, entry.Version)
			}
		})
	}
}

func TestManifestFromEntry(t *testing.T) {
	changelog, err := ParseChangelog([]byte(validChangelog))
	require.NoError(t, err)

	entry := changelog.FindVersion("1.2.0")
	require.NotNil(t, entry)

	manifest := Manifest{
		Service: "inkwell",
		Version: entry.Version,
		Date:    entry.Date,
		Notes:   stripLinkDefinitions(entry.Notes),
	}

	data, err := json.Marshal(manifest)
	require.NoError(t, err)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "inkwell", decoded["service"])
	assert.Equal(t, "1.2.0", decoded["version"])
	assert.Equal(t, "2025-06-10", decoded["date"])
	assert.NotContains(t, decoded["notes"], "https://github.com")
}

func TestStripLinkDefinitions(t *testing.T) {
	content := "### Added\n- A thing\n\n[1.0.0]: https://example.com/v1.0.0\n"
	stripped := stripLinkDefinitions(content)
	assert.Contains(t, stripped, "- A thing")
	assert.NotContains(t, stripped, "example.com")
}

func TestValidate_Valid(t *testing.T) {
	result := Validate([]byte(validChangelog))
	assert.True(t, result.IsValid(), "Expected valid changelog, got errors: %v", result.Errors)
}

func TestValidate_MissingTitle(t *testing.T) {
	changelog := `## [Unreleased]

## [1.0.0] - 2025-01-20

### Added
- Something

[Unreleased]: https://example.com
[1.0.0]: https://example.com
`
	result := Validate([]byte(changelog))
	assert.False(t, result.IsValid())
	assert.True(t, hasError(result, "Missing changelog title (# Changelog)"))
}

func TestValidate_MissingUnreleased(t *testing.T) {
	changelog := `# Changelog

## [1.0.0] - 2025-01-20

### Added
- Something

[1.0.0]: https://example.com
`
	result := Validate([]byte(changelog))
	assert.False(t, result.IsValid())
	assert.True(t, hasError(result, "Missing [Unreleased] section"))
}

func TestValidate_InvalidDate(t *testing.T) {
	changelog := `# Changelog

## [Unreleased]

## [1.0.0] - 20-01-2025

### Added
- Something

[Unreleased]: https://example.com
[1.0.0]: https://example.com
`
	result := Validate([]byte(changelog))
	assert.False(t, result.IsValid())
	assert.True(t, hasErrorContaining(result, "ISO 8601"))
}

func TestValidate_InvalidChangeType(t *testing.T) {
	changelog := `# Changelog

## [Unreleased]

### New
- Something

[Unreleased]: https://example.com
`
	result := Validate([]byte(changelog))
	assert.False(t, result.IsValid())
	assert.True(t, hasErrorContaining(result, "Invalid change type"))
}

func TestValidate_MissingLinkDefinition(t *testing.T) {
	changelog := `# Changelog

## [Unreleased]

## [1.0.0] - 2025-01-20

### Added
- Something
`
	result := Validate([]byte(changelog))
	assert.False(t, result.IsValid())
	assert.True(t, hasErrorContaining(result, "Missing link definition for [Unreleased]"))
	assert.True(t, hasErrorContaining(result, "Missing link definition for version [1.0.0]"))
}

func hasError(result *ValidationResult, message string) bool {
	for _, e := range result.Errors {
		if e.Message == message {
			return true
		}
	}
	return false
}

func hasErrorContaining(result *ValidationResult, substr string) bool {
	for _, e := range result.Errors {
		if strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
