package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/timetable/internal/engine"
)

var batchRmYes bool

var batchRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Delete a batch and its whole schedule",
	Long: `Delete a batch permanently.

You'll be prompted to confirm unless --yes is used. Without a terminal the
prompt is answered no. With --json there is no prompt, so --yes is required.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		ctx := context.Background()
		name := args[0]

		// Unknown batches fail before anyone is asked
		if _, err := eng.Show(ctx, &engine.ShowRequest{Batch: name}); err != nil {
			return err
		}

		if !batchRmYes {
			if jsonOutput {
				return fmt.Errorf("deleting batch %q needs confirmation; rerun with --yes", name)
			}
			if !promptConfirm(fmt.Sprintf("Delete batch '%s'?", name)) {
				return fmt.Errorf("deletion cancelled by user")
			}
		}

		result, err := eng.RemoveBatch(ctx, &engine.RemoveBatchRequest{Name: name})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		PrintSuccess(fmt.Sprintf("Deleted batch: %s", result.Name))
		return nil
	},
}

func init() {
	batchRmCmd.Flags().BoolVarP(&batchRmYes, "yes", "y", false, "Delete without confirmation")
}
