package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// ownershipCmd represents the ownership command
var ownershipCmd = &cobra.Command{
	Use:   "ownership",
	Short: "Manage document ownership",
	Long:  `Cascade ownership changes from a folder to every document in its subtree.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'ownership' requires a subcommand (apply, watch)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(ownershipCmd)
}
