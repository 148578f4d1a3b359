package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/inkwell-vtt/inkwell/pkg/cascade"
	"github.com/inkwell-vtt/inkwell/pkg/config"
	"github.com/inkwell-vtt/inkwell/pkg/db"
	"github.com/inkwell-vtt/inkwell/pkg/ownership"
)

// ownershipApplyCmd represents the ownership apply command
var ownershipApplyCmd = &cobra.Command{
	Use:   "apply <kind> <folder> [subject=value ...]",
	Short: "Cascade an ownership assignment from a folder",
	Long: `Cascade an ownership assignment from a folder to every document
in its subtree.

Each argument after the folder is a subject=value pair, where value is a
numeric ownership level (0=none, 1=limited, 2=observer, 3=owner). Values
that do not name a concrete ownership level are dropped during
normalization, the same way the server treats a submitted ownership form.

Example:
  inkwellctl ownership apply journal campaign default=2 gm=3`,
	Args: cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		kind := args[0]
		folderID := args[1]

		raw, err := parsePairs(args[2:])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		result, err := applyOwnership(kind, folderID, ownership.Normalize(raw))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to apply ownership: %v\n", err)
			os.Exit(1)
		}

		fmt.Println(outcomeMessage(result))

		output, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(output))

		if result.Outcome == cascade.OutcomeFailed {
			os.Exit(1)
		}
	},
}

func init() {
	ownershipCmd.AddCommand(ownershipApplyCmd)
}

func parsePairs(args []string) (map[string]string, error) {
	raw := make(map[string]string, len(args))
	for _, arg := range args {
		subject, value, ok := strings.Cut(arg, "=")
		if !ok || subject == "" {
			return nil, fmt.Errorf("invalid assignment %q, expected subject=value", arg)
		}
		raw[subject] = value
	}
	return raw, nil
}

func applyOwnership(kind, folderID string, assignment ownership.Assignment) (*cascade.Result, error) {
	database, err := db.Connect(db.Config{})
	if err != nil {
		return nil, err
	}

	return runCascade(database, kind, folderID, assignment)
}

func runCascade(database *gorm.DB, kind, folderID string, assignment ownership.Assignment) (*cascade.Result, error) {
	tree := cascade.NewGormTree(database)
	folder, err := tree.Folder(kind, folderID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve folder %s/%s: %w", kind, folderID, err)
	}

	engine := cascade.NewEngine(tree, cascade.NewGormStore(database)).
		WithSettleDelay(config.Get().SettleDelay())

	result := engine.Cascade(*folder, assignment)
	return &result, nil
}

func outcomeMessage(result *cascade.Result) string {
	switch result.Outcome {
	case cascade.OutcomeNoAssignment:
		return "No ownership changes to apply"
	case cascade.OutcomeNoDocuments:
		return "No documents found"
	case cascade.OutcomeApplied:
		return fmt.Sprintf("Updated %d document(s) across %d sub-folder(s)",
			result.DocumentCount, result.SubfolderCount)
	default:
		return "An error occurred while updating ownership, see the diagnostic log"
	}
}
