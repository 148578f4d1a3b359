package main

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/spf13/cobra"
)

// Manifest is the release manifest stamped into a build. The version feeds
// the server's /status endpoint via -ldflags.
type Manifest struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Date    string `json:"date"`
	Notes   string `json:"notes"`
}

var linkDefPattern = regexp.MustCompile(`(?m)^\[[^\]]+\]:\s+\S+\s*$`)

func stripLinkDefinitions(content string) string {
	lines := strings.Split(content, "\n")
	var result []string
	for _, line := range lines {
		if !linkDefPattern.MatchString(line) {
			result = append(result, line)
		}
	}
	return strings.TrimSpace(strings.Join(result, "\n"))
}

var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Generate a release manifest for a version",
	Long: `Generate a JSON release manifest from the changelog entry for a version.

The manifest version is what CI stamps into the server binary:

  go build -ldflags "-X github.com/inkwell-vtt/inkwell/pkg/server/endpoints.Version=1.2.0" ./cmd/inkwellctl

Example:
  release manifest --version 1.2.0
  release manifest --version 1.2.0 --output release.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")
		version, _ := cmd.Flags().GetString("version")
		output, _ := cmd.Flags().GetString("output")

		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}

		changelog, err := ParseChangelog(content)
		if err != nil {
			return fmt.Errorf("parsing changelog: %w", err)
		}

		entry := changelog.FindVersion(version)
		if entry == nil {
			return fmt.Errorf("version %s not found in changelog", version)
		}
		if entry.Date == "" {
			return fmt.Errorf("version %s has no release date; release it in the changelog first", entry.Version)
		}

		manifest := Manifest{
			Service: "inkwell",
			Version: entry.Version,
			Date:    entry.Date,
			Notes:   stripLinkDefinitions(entry.Notes),
		}

		data, err := json.MarshalIndent(manifest, "", "  ")
		if err != nil {
			return err
		}
		data = append(data, '\n')

		if output == "" {
			_, err = os.Stdout.Write(data)
			return err
		}
		return os.WriteFile(output, data, 0o644)
	},
}

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract a version's changelog entry",
	Long:  `Extract the changelog content for a specific version, for release notes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")
		version, _ := cmd.Flags().GetString("version")

		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}

		changelog, err := ParseChangelog(content)
		if err != nil {
			return fmt.Errorf("parsing changelog: %w", err)
		}

		entry := changelog.FindVersion(version)
		if entry == nil {
			return fmt.Errorf("version %s not found in changelog", version)
		}

		if entry.Date != "" {
			fmt.Printf("## [%s] - %s\n\n", entry.Version, entry.Date)
		} else {
			fmt.Printf("## [%s]\n\n", entry.Version)
		}

		fmt.Print(stripLinkDefinitions(entry.Notes))

		if url, ok := changelog.Links[entry.Version]; ok {
			fmt.Printf("\n\n[%s]: %s\n", entry.Version, url)
		}

		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all versions in the changelog",
	Long:  `List all version entries found in the changelog.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")

		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}

		changelog, err := ParseChangelog(content)
		if err != nil {
			return fmt.Errorf("parsing changelog: %w", err)
		}

		for _, entry := range changelog.Entries {
			if entry.Date != "" {
				fmt.Printf("%s (%s)\n", entry.Version, entry.Date)
			} else {
				fmt.Println(entry.Version)
			}
		}

		return nil
	},
}

func init() {
	manifestCmd.Flags().StringP("file", "f", "CHANGELOG.md", "Path to the changelog file")
	manifestCmd.Flags().StringP("version", "v", "", "Version to release (with or without 'v' prefix)")
	manifestCmd.Flags().StringP("output", "o", "", "Write the manifest to a file instead of stdout")
	_ = manifestCmd.MarkFlagRequired("version")

	extractCmd.Flags().StringP("file", "f", "CHANGELOG.md", "Path to the changelog file")
	extractCmd.Flags().StringP("version", "v", "", "Version to extract (with or without 'v' prefix)")
	_ = extractCmd.MarkFlagRequired("version")

	listCmd.Flags().StringP("file", "f", "CHANGELOG.md", "Path to the changelog file")

	rootCmd.AddCommand(manifestCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(listCmd)
}
