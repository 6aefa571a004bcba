package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/timetable/internal/engine"
)

var clearCmd = &cobra.Command{
	Use:   "clear <batch> <day> <slot>",
	Short: "Remove the subject from a slot",
	Long: `Remove the subject from a slot.

The slot becomes Free, or Lunch again when the removed subject is the one
currently sitting in that day's lunch slot. Free and Lunch slots have
nothing to clear.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		slot, err := engine.ParseSlot(args[2])
		if err != nil {
			return err
		}

		eng, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.Clear(context.Background(), &engine.ClearRequest{
			Batch: args[0],
			Day:   args[1],
			Slot:  slot,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		PrintSuccess(fmt.Sprintf("Removed %s from %s, %s slot %d", result.Removed, result.Batch, result.Day, result.Slot))
		PrintLabelValue("Time", result.Time)
		PrintLabelValue("Now", result.Now)
		return nil
	},
}
