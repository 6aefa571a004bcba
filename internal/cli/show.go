package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/timetable/internal/engine"
)

var showCmd = &cobra.Command{
	Use:   "show [batch]",
	Short: "Show the timetable",
	Long: `Show every batch, or only the named one, day by day with slot times.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		req := &engine.ShowRequest{}
		if len(args) == 1 {
			req.Batch = args[0]
		}

		result, err := eng.Show(context.Background(), req)
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result.Timetable)
		}

		names := result.Timetable.BatchNames()
		if len(names) == 0 {
			PrintSection("Timetable")
			PrintEmptyState("No batches found")
			return nil
		}

		for _, name := range names {
			PrintSection(name)
			PrintSchedule(result.Timetable[name])
		}
		return nil
	},
}
