package cli

import (
	"context"

	"github.com/spf13/cobra"
)

var batchLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List all batches",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		names, err := eng.ListBatches(context.Background())
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(names)
		}

		PrintSection("Batches")
		if len(names) == 0 {
			PrintEmptyState("No batches found")
			return nil
		}
		PrintList(names, 1)
		return nil
	},
}
