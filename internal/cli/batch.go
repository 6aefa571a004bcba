package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/timetable/internal/engine"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Manage batches",
	Long:  `Create, generate, list and remove batches.`,
}

var batchAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create an empty batch",
	Long: `Create a batch whose days all start as
Free, Free, Lunch, Free, Free, Free.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.AddBatch(context.Background(), &engine.AddBatchRequest{Name: args[0]})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		PrintSuccess(fmt.Sprintf("Created batch: %s", result.Name))
		return nil
	},
}

func init() {
	batchCmd.AddCommand(batchAddCmd)
	batchCmd.AddCommand(batchGenerateCmd)
	batchCmd.AddCommand(batchLsCmd)
	batchCmd.AddCommand(batchRmCmd)
}
