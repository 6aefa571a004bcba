package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/timetable/internal/engine"
)

var freeCmd = &cobra.Command{
	Use:   "free <batch> <day>",
	Short: "List the free slots of a day",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.FreeSlots(context.Background(), &engine.FreeSlotsRequest{
			Batch: args[0],
			Day:   args[1],
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		PrintSection(fmt.Sprintf("Free Slots: %s, %s", result.Batch, result.Day))
		if len(result.Slots) == 0 {
			PrintEmptyState("No free slots available")
			return nil
		}

		rows := make([][]string, 0, len(result.Slots))
		for _, s := range result.Slots {
			rows = append(rows, []string{strconv.Itoa(s.Slot), s.Time})
		}
		PrintTable([]string{"Slot", "Time"}, rows)
		fmt.Println()
		PrintInfo(PrintCount(len(result.Slots), "free slot", "free slots"))
		return nil
	},
}
