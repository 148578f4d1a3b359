package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/inkwell-vtt/inkwell/pkg/db"
	"github.com/inkwell-vtt/inkwell/pkg/ownership"
)

// ownershipWatchCmd represents the ownership watch command
var ownershipWatchCmd = &cobra.Command{
	Use:   "watch <kind> <folder> <file>",
	Short: "Watch an assignment file and re-cascade ownership when it changes",
	Long: `Watch a YAML assignment file and cascade ownership from the folder
whenever the file changes.

The file is a YAML mapping of subject IDs to ownership level values.
Values that do not name a concrete ownership level are dropped during
normalization.

Example:
  inkwellctl ownership watch journal campaign /run/inkwell/ownership.yml`,
	Args: cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		kind := args[0]
		folderID := args[1]
		filename := args[2]

		if err := watchOwnership(kind, folderID, filename); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to watch ownership: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	ownershipCmd.AddCommand(ownershipWatchCmd)
}

func watchOwnership(kind, folderID, filename string) error {
	database, err := db.Connect(db.Config{})
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(filename); err != nil {
		return fmt.Errorf("failed to watch file %s: %w", filename, err)
	}

	fmt.Printf("Watching %s for ownership changes (folder: %s/%s)\n", filename, kind, folderID)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				fmt.Printf("[%s] File modified, cascading ownership...\n", time.Now().Format(time.RFC3339))

				if err := cascadeFromFile(database, kind, folderID, filename); err != nil {
					fmt.Fprintf(os.Stderr, "Error cascading ownership: %v\n", err)
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Watcher error: %v\n", err)
		case <-sigChan:
			fmt.Println("\nShutting down...")
			return nil
		}
	}
}

func cascadeFromFile(database *gorm.DB, kind, folderID, filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read assignment file: %w", err)
	}

	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse assignment file %s: %w", filename, err)
	}

	result, err := runCascade(database, kind, folderID, ownership.Normalize(raw))
	if err != nil {
		return err
	}
	if result.Err != nil {
		return result.Err
	}

	fmt.Println(outcomeMessage(result))
	return nil
}
